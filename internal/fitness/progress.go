package fitness

import "time"

type Progress struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Weight      float64   `json:"weight"`
	SleepHours  float64   `json:"sleepHours"`
	WaterIntake float64   `json:"waterIntake"`
	Steps       int       `json:"steps"`
	HeartRate   int       `json:"heartRate"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProgressSubmission struct {
	Weight      float64    `json:"weight"`
	SleepHours  float64    `json:"sleepHours"`
	WaterIntake float64    `json:"waterIntake"`
	Steps       int        `json:"steps"`
	HeartRate   int        `json:"heartRate"`
	Date        *time.Time `json:"date,omitempty"`
}

func (s ProgressSubmission) Validate() error {
	if s.Weight == 0 {
		return NewValidationError("weight", "please add weight")
	}
	if s.Weight < 0 || s.SleepHours < 0 || s.WaterIntake < 0 || s.Steps < 0 || s.HeartRate < 0 {
		return NewValidationError("", "values must be positive")
	}
	return nil
}

func (s ProgressSubmission) ToProgress(userID int, now time.Time) Progress {
	p := Progress{
		UserID:      userID,
		Weight:      s.Weight,
		SleepHours:  s.SleepHours,
		WaterIntake: s.WaterIntake,
		Steps:       s.Steps,
		HeartRate:   s.HeartRate,
		Date:        now,
	}
	if s.Date != nil && !s.Date.IsZero() {
		p.Date = *s.Date
	}
	return p
}
