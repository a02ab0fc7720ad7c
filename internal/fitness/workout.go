package fitness

import (
	"fmt"
	"strings"
	"time"
)

type WorkoutType string

const (
	WorkoutTypeCardio   WorkoutType = "Cardio"
	WorkoutTypeStrength WorkoutType = "Strength"
	WorkoutTypeYoga     WorkoutType = "Yoga"
	WorkoutTypeHIIT     WorkoutType = "HIIT"
	WorkoutTypeCycling  WorkoutType = "Cycling"
	WorkoutTypeRunning  WorkoutType = "Running"
	WorkoutTypeWalking  WorkoutType = "Walking"
	WorkoutTypePilates  WorkoutType = "Pilates"
	WorkoutTypeSwimming WorkoutType = "Swimming"
	WorkoutTypeOther    WorkoutType = "Other"
)

type Mood string

const (
	MoodGreat     Mood = "Great"
	MoodGood      Mood = "Good"
	MoodOkay      Mood = "Okay"
	MoodTired     Mood = "Tired"
	MoodExhausted Mood = "Exhausted"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodOkay, MoodTired, MoodExhausted:
		return true
	default:
		return false
	}
}

type Workout struct {
	ID             int         `json:"id"`
	UserID         int         `json:"userId"`
	Type           WorkoutType `json:"type"`
	Duration       int         `json:"duration"` // minutes
	CaloriesBurned int         `json:"caloriesBurned"`
	Distance       *float64    `json:"distance,omitempty"`
	Steps          *int        `json:"steps,omitempty"`
	Intensity      *int        `json:"intensity,omitempty"`
	Mood           *Mood       `json:"mood,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	Date           time.Time   `json:"date"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// WorkoutSubmission is a workout as sent by a user. Nil CaloriesBurned means
// the value is estimated from the workout type, duration and body weight.
type WorkoutSubmission struct {
	Type           WorkoutType `json:"type"`
	Duration       int         `json:"duration"`
	CaloriesBurned *int        `json:"caloriesBurned,omitempty"`
	Distance       *float64    `json:"distance,omitempty"`
	Steps          *int        `json:"steps,omitempty"`
	Intensity      *int        `json:"intensity,omitempty"`
	Mood           *Mood       `json:"mood,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	Date           *time.Time  `json:"date,omitempty"`
}

func (s WorkoutSubmission) Validate() error {
	if strings.TrimSpace(string(s.Type)) == "" {
		return NewValidationError("type", "workout type is required")
	}
	if s.Duration <= 0 {
		return NewValidationError("duration", "duration must be greater than zero")
	}
	if s.CaloriesBurned != nil && *s.CaloriesBurned < 0 {
		return NewValidationError("caloriesBurned", "values must be positive")
	}
	if s.Distance != nil && *s.Distance < 0 {
		return NewValidationError("distance", "values must be positive")
	}
	if s.Steps != nil && *s.Steps < 0 {
		return NewValidationError("steps", "values must be positive")
	}
	if s.Intensity != nil && (*s.Intensity < 1 || *s.Intensity > 10) {
		return NewValidationError("intensity", fmt.Sprintf("intensity must be between 1 and 10, got %d", *s.Intensity))
	}
	if s.Mood != nil && !s.Mood.Valid() {
		return NewValidationError("mood", fmt.Sprintf("unknown mood: %s", *s.Mood))
	}
	return nil
}

// ToWorkout builds the workout record. Calories are left at zero when not
// supplied, the caller estimates them once the body weight is known.
func (s WorkoutSubmission) ToWorkout(userID int, now time.Time) Workout {
	w := Workout{
		UserID:    userID,
		Type:      s.Type,
		Duration:  s.Duration,
		Distance:  s.Distance,
		Steps:     s.Steps,
		Intensity: s.Intensity,
		Mood:      s.Mood,
		Notes:     s.Notes,
		Date:      now,
	}
	if s.Date != nil && !s.Date.IsZero() {
		w.Date = *s.Date
	}
	if s.CaloriesBurned != nil {
		w.CaloriesBurned = *s.CaloriesBurned
	}
	return w
}

// WorkoutStats are the cumulative stats of a user's workouts.
type WorkoutStats struct {
	TotalWorkouts int
	TotalCalories int
}
