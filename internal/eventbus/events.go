package eventbus

import (
	"time"

	"github.com/adithyatb/fittrack/internal/fitness"
)

const (
	TypeWorkoutLogged = "workout.logged"
	TypeBadgesAwarded = "achievements.awarded"
	TypeStreakReset   = "streak.reset"
)

type WorkoutLogged struct {
	EventID        string              `json:"eventId"`
	UserID         int                 `json:"userId"`
	WorkoutID      int                 `json:"workoutId"`
	Type           fitness.WorkoutType `json:"type"`
	Duration       int                 `json:"duration"`
	CaloriesBurned int                 `json:"caloriesBurned"`
	Estimated      bool                `json:"estimated"`
	Date           time.Time           `json:"date"`
	Streak         int                 `json:"streak"`
	OccurredAt     time.Time           `json:"occurredAt"`
}

type BadgesAwarded struct {
	EventID      string                `json:"eventId"`
	UserID       int                   `json:"userId"`
	Achievements []fitness.Achievement `json:"achievements"`
	OccurredAt   time.Time             `json:"occurredAt"`
}

type StreakReset struct {
	EventID         string    `json:"eventId"`
	UserID          int       `json:"userId"`
	LastWorkoutDate time.Time `json:"lastWorkoutDate"`
	OccurredAt      time.Time `json:"occurredAt"`
}
