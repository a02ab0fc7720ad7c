package fitness

import (
	"fmt"
	"time"
)

type Gender string

const (
	GenderMale           Gender = "Male"
	GenderFemale         Gender = "Female"
	GenderOther          Gender = "Other"
	GenderPreferNotToSay Gender = "Prefer not to say"
)

type Goal string

const (
	GoalLose        Goal = "lose"
	GoalGain        Goal = "gain"
	GoalMaintain    Goal = "maintain"
	GoalBuildMuscle Goal = "build_muscle"
)

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "Beginner"
	LevelIntermediate FitnessLevel = "Intermediate"
	LevelPro          FitnessLevel = "Pro"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly Active"
	ActivityModeratelyActive ActivityLevel = "Moderately Active"
	ActivityVeryActive       ActivityLevel = "Very Active"
	ActivitySuperActive      ActivityLevel = "Super Active"
)

type Profile struct {
	UserID         int           `json:"userId"`
	Age            int           `json:"age"`
	Gender         Gender        `json:"gender,omitempty"`
	Bio            string        `json:"bio"`
	Height         float64       `json:"height"`        // cm
	CurrentWeight  float64       `json:"currentWeight"` // kg
	TargetWeight   float64       `json:"targetWeight"`  // kg
	Goal           Goal          `json:"goal"`
	FitnessLevel   FitnessLevel  `json:"fitnessLevel"`
	ActivityLevel  ActivityLevel `json:"activityLevel"`
	BMI            float64       `json:"bmi"`
	HealthScore    int           `json:"healthScore"`
	ProfilePicture string        `json:"profilePicture"`
	Banner         string        `json:"banner"`

	Streak          int           `json:"streak"`
	LastWorkoutDate *time.Time    `json:"lastWorkoutDate,omitempty"`
	Achievements    []Achievement `json:"achievements"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProfile returns a profile with the defaults a freshly registered user gets.
func NewProfile(userID int) Profile {
	return Profile{
		UserID:        userID,
		Goal:          GoalMaintain,
		FitnessLevel:  LevelBeginner,
		Gender:        GenderPreferNotToSay,
		ActivityLevel: ActivityModeratelyActive,
		Achievements:  []Achievement{},
	}
}

func (p *Profile) StreakState() Streak {
	return Streak{
		Count:           p.Streak,
		LastWorkoutDate: p.LastWorkoutDate,
	}
}

func (p *Profile) SetStreak(s Streak) {
	p.Streak = s.Count
	p.LastWorkoutDate = s.LastWorkoutDate
}

// ApplyBiometrics recomputes bmi and health score from the current height and
// weight. Prior values are kept when either is missing.
func (p *Profile) ApplyBiometrics() {
	health, ok := ComputeBMIAndHealth(p.Height, p.CurrentWeight)
	if !ok {
		return
	}
	p.BMI = health.BMI
	p.HealthScore = health.Score
}

// ProfileUpdate holds the user-editable profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	Age            *int           `json:"age,omitempty"`
	Gender         *Gender        `json:"gender,omitempty"`
	Bio            *string        `json:"bio,omitempty"`
	Height         *float64       `json:"height,omitempty"`
	CurrentWeight  *float64       `json:"currentWeight,omitempty"`
	TargetWeight   *float64       `json:"targetWeight,omitempty"`
	Goal           *Goal          `json:"goal,omitempty"`
	FitnessLevel   *FitnessLevel  `json:"fitnessLevel,omitempty"`
	ActivityLevel  *ActivityLevel `json:"activityLevel,omitempty"`
	ProfilePicture *string        `json:"profilePicture,omitempty"`
	Banner         *string        `json:"banner,omitempty"`
}

func (u ProfileUpdate) Validate() error {
	var age, height, weight, target float64
	if u.Age != nil {
		age = float64(*u.Age)
	}
	if u.Height != nil {
		height = *u.Height
	}
	if u.CurrentWeight != nil {
		weight = *u.CurrentWeight
	}
	if u.TargetWeight != nil {
		target = *u.TargetWeight
	}
	if err := ValidateBiometrics(age, height, weight, target); err != nil {
		return err
	}

	if u.Gender != nil {
		switch *u.Gender {
		case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		default:
			return NewValidationError("gender", fmt.Sprintf("unknown gender: %s", *u.Gender))
		}
	}
	if u.Goal != nil {
		switch *u.Goal {
		case GoalLose, GoalGain, GoalMaintain, GoalBuildMuscle:
		default:
			return NewValidationError("goal", fmt.Sprintf("unknown goal: %s", *u.Goal))
		}
	}
	if u.FitnessLevel != nil {
		switch *u.FitnessLevel {
		case LevelBeginner, LevelIntermediate, LevelPro:
		default:
			return NewValidationError("fitnessLevel", fmt.Sprintf("unknown fitness level: %s", *u.FitnessLevel))
		}
	}
	if u.ActivityLevel != nil {
		switch *u.ActivityLevel {
		case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivitySuperActive:
		default:
			return NewValidationError("activityLevel", fmt.Sprintf("unknown activity level: %s", *u.ActivityLevel))
		}
	}
	return nil
}

// Apply copies the set fields onto the profile and refreshes the derived
// biometrics. Gamification state is never touched by a profile edit.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
	if u.CurrentWeight != nil {
		p.CurrentWeight = *u.CurrentWeight
	}
	if u.TargetWeight != nil {
		p.TargetWeight = *u.TargetWeight
	}
	if u.Goal != nil {
		p.Goal = *u.Goal
	}
	if u.FitnessLevel != nil {
		p.FitnessLevel = *u.FitnessLevel
	}
	if u.ActivityLevel != nil {
		p.ActivityLevel = *u.ActivityLevel
	}
	if u.ProfilePicture != nil {
		p.ProfilePicture = *u.ProfilePicture
	}
	if u.Banner != nil {
		p.Banner = *u.Banner
	}
	p.ApplyBiometrics()
}
