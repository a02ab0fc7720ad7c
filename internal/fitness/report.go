package fitness

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

type ReportPeriod string

const (
	ReportWeekly  ReportPeriod = "weekly"
	ReportMonthly ReportPeriod = "monthly"
	ReportFull    ReportPeriod = "full"
)

const recentWorkoutsInReport = 5

func ParseReportPeriod(s string) (ReportPeriod, error) {
	switch ReportPeriod(strings.ToLower(s)) {
	case ReportWeekly:
		return ReportWeekly, nil
	case ReportMonthly:
		return ReportMonthly, nil
	case ReportFull, "":
		return ReportFull, nil
	default:
		return "", NewValidationError("type", fmt.Sprintf("unknown report type: %s", s))
	}
}

// Since returns the start of the report window, or nil for the full history.
func (p ReportPeriod) Since(now time.Time) *time.Time {
	var since time.Time
	switch p {
	case ReportWeekly:
		since = now.AddDate(0, 0, -7)
	case ReportMonthly:
		since = now.AddDate(0, -1, 0)
	default:
		return nil
	}
	return &since
}

type CaloriesByType struct {
	Type     WorkoutType `json:"type"`
	Calories int         `json:"calories"`
	Workouts int         `json:"workouts"`
}

type Report struct {
	Period           ReportPeriod     `json:"period"`
	From             *time.Time       `json:"from,omitempty"`
	GeneratedAt      time.Time        `json:"generatedAt"`
	TotalWorkouts    int              `json:"totalWorkouts"`
	TotalCalories    int              `json:"totalCalories"`
	ActiveMinutes    int              `json:"activeMinutes"`
	Streak           int              `json:"streak"`
	ConsistencyScore int              `json:"consistencyScore"`
	CaloriesByType   []CaloriesByType `json:"caloriesByType"`
	RecentWorkouts   []Workout        `json:"recentWorkouts"`
	Insights         []string         `json:"insights"`
}

// SummarizeReport aggregates the workouts falling into the report period.
// Workouts outside of the period are ignored, so callers may pass a superset.
func SummarizeReport(period ReportPeriod, workouts []Workout, profile *Profile, now time.Time) Report {
	report := Report{
		Period:         period,
		From:           period.Since(now),
		GeneratedAt:    now,
		CaloriesByType: []CaloriesByType{},
		RecentWorkouts: []Workout{},
	}

	byType := make(map[WorkoutType]*CaloriesByType)
	inPeriod := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		if report.From != nil && w.Date.Before(*report.From) {
			continue
		}
		inPeriod = append(inPeriod, w)

		report.TotalWorkouts++
		report.TotalCalories += w.CaloriesBurned
		report.ActiveMinutes += w.Duration

		entry, ok := byType[w.Type]
		if !ok {
			entry = &CaloriesByType{Type: w.Type}
			byType[w.Type] = entry
		}
		entry.Calories += w.CaloriesBurned
		entry.Workouts++
	}

	for _, entry := range byType {
		report.CaloriesByType = append(report.CaloriesByType, *entry)
	}
	sort.Slice(report.CaloriesByType, func(i, j int) bool {
		if report.CaloriesByType[i].Calories != report.CaloriesByType[j].Calories {
			return report.CaloriesByType[i].Calories > report.CaloriesByType[j].Calories
		}
		return report.CaloriesByType[i].Type < report.CaloriesByType[j].Type
	})

	sort.SliceStable(inPeriod, func(i, j int) bool {
		return inPeriod[i].Date.After(inPeriod[j].Date)
	})
	if len(inPeriod) > recentWorkoutsInReport {
		inPeriod = inPeriod[:recentWorkoutsInReport]
	}
	report.RecentWorkouts = append(report.RecentWorkouts, inPeriod...)

	if profile != nil {
		// a streak that already lapsed counts as zero, same as in the analytics view
		streak, _ := ExpireStreak(profile.StreakState(), now)
		report.Streak = streak.Count
	}
	report.ConsistencyScore = ConsistencyScore(report.Streak)
	report.Insights = reportInsights(report)

	return report
}

// ConsistencyScore maps a streak onto 0-100, a 30 day streak being the monthly target.
func ConsistencyScore(streak int) int {
	return int(math.Round(math.Min(float64(streak)/30*100, 100)))
}

func reportInsights(r Report) []string {
	insights := make([]string, 0, 3)
	if r.TotalCalories > 5000 {
		insights = append(insights, "Exceptional calorie output. You are performing at an athlete level.")
	} else if r.TotalCalories > 2000 {
		insights = append(insights, "Good maintenance levels. Try to spike intensity next week.")
	}
	if r.ActiveMinutes > 300 {
		insights = append(insights, "High endurance detected based on duration stats.")
	}
	insights = append(insights, fmt.Sprintf("Consistency Score: %d%% based on monthly targets.", r.ConsistencyScore))
	return insights
}
