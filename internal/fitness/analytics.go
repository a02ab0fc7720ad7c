package fitness

import (
	"fmt"
	"math"
	"time"
)

const AnalyticsWindowDays = 14

type WeekSummary struct {
	Calories int `json:"calories"`
	Workouts int `json:"workouts"`
}

type Analytics struct {
	Insights     []string     `json:"insights"`
	Streak       int          `json:"streak"`
	Level        FitnessLevel `json:"level"`
	ThisWeek     WeekSummary  `json:"thisWeek"`
	LastWeek     WeekSummary  `json:"lastWeek"`
	NextMissions []Badge      `json:"nextMissions"`

	// PendingStreakReset is set when the streak expired and the reset still
	// has to be stored by the caller.
	PendingStreakReset *StreakReset `json:"-"`
}

// StreakReset describes the profile write a streak expiry requires.
// LastWorkoutDate guards against overwriting a streak advanced in the meantime.
type StreakReset struct {
	UserID          int
	LastWorkoutDate time.Time
}

// AnalyticsWindowStart is the earliest workout date taken into account by
// ComputeAnalytics for the given now.
func AnalyticsWindowStart(now time.Time) time.Time {
	return Day(now).AddDate(0, 0, -(AnalyticsWindowDays - 1))
}

// ComputeAnalytics builds the analytics view from the workouts of the trailing
// two weeks. The profile may be nil for users without one.
func ComputeAnalytics(workouts []Workout, profile *Profile, now time.Time) Analytics {
	thisWeekStart := Day(now).AddDate(0, 0, -6)
	lastWeekStart := AnalyticsWindowStart(now)

	var thisWeek, lastWeek WeekSummary
	strengthThisWeek := 0
	for _, w := range workouts {
		date := w.Date.In(now.Location())
		switch {
		case !date.Before(thisWeekStart):
			thisWeek.Calories += w.CaloriesBurned
			thisWeek.Workouts++
			if w.Type == WorkoutTypeStrength {
				strengthThisWeek++
			}
		case !date.Before(lastWeekStart):
			lastWeek.Calories += w.CaloriesBurned
			lastWeek.Workouts++
		}
	}

	analytics := Analytics{
		Insights:     weeklyInsights(thisWeek, lastWeek, strengthThisWeek),
		Level:        LevelBeginner,
		ThisWeek:     thisWeek,
		LastWeek:     lastWeek,
		NextMissions: []Badge{},
	}
	if profile == nil {
		return analytics
	}

	streak, expired := ExpireStreak(profile.StreakState(), now)
	if expired {
		analytics.PendingStreakReset = &StreakReset{
			UserID:          profile.UserID,
			LastWorkoutDate: *streak.LastWorkoutDate,
		}
	}

	analytics.Streak = streak.Count
	if profile.FitnessLevel != "" {
		analytics.Level = profile.FitnessLevel
	}
	analytics.NextMissions = NextMissions(profile.Achievements)

	return analytics
}

func weeklyInsights(thisWeek, lastWeek WeekSummary, strengthThisWeek int) []string {
	insights := make([]string, 0)

	if thisWeek.Calories > lastWeek.Calories && lastWeek.Calories > 0 {
		increase := math.Round(float64(thisWeek.Calories-lastWeek.Calories) / float64(lastWeek.Calories) * 100)
		insights = append(insights, fmt.Sprintf("🔥 Your calorie burn increased by %d%% this week!", int(increase)))
	} else if thisWeek.Calories < lastWeek.Calories {
		insights = append(insights, "⚠️ Your calorie burn is down compared to last week.")
	}

	if thisWeek.Workouts >= 3 {
		insights = append(insights, fmt.Sprintf("💪 Great consistency! You worked out %d times this week.", thisWeek.Workouts))
	} else if thisWeek.Workouts == 0 {
		insights = append(insights, "📉 No workouts recorded this week. Let's get moving!")
	}

	if strengthThisWeek > 2 {
		insights = append(insights, "🏋️ You're building serious strength this week!")
	}

	return insights
}
