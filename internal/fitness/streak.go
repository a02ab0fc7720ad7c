package fitness

import "time"

// Streak is the gamification state kept on the profile.
type Streak struct {
	Count           int
	LastWorkoutDate *time.Time
}

// Day truncates t to the start of its calendar day, in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AdvanceStreak applies a workout dated at eventDate to the streak. Calendar
// days are computed in eventDate's location.
func AdvanceStreak(s Streak, eventDate time.Time) Streak {
	eventDay := Day(eventDate)
	if s.LastWorkoutDate == nil || s.Count <= 0 {
		return Streak{Count: 1, LastWorkoutDate: &eventDate}
	}

	lastDay := Day(s.LastWorkoutDate.In(eventDate.Location()))
	switch {
	case eventDay.Equal(lastDay):
		return s
	case eventDay.Before(lastDay):
		// backdated workout, the streak only moves forward
		return s
	case lastDay.Equal(eventDay.AddDate(0, 0, -1)):
		return Streak{Count: s.Count + 1, LastWorkoutDate: &eventDate}
	default:
		return Streak{Count: 1, LastWorkoutDate: &eventDate}
	}
}

// ExpireStreak resets a streak whose last workout is older than yesterday.
// The returned bool reports whether the streak changed and has to be stored.
func ExpireStreak(s Streak, now time.Time) (Streak, bool) {
	if s.Count <= 0 || s.LastWorkoutDate == nil {
		return s, false
	}

	yesterday := Day(now).AddDate(0, 0, -1)
	lastDay := Day(s.LastWorkoutDate.In(now.Location()))
	if !lastDay.Before(yesterday) {
		return s, false
	}

	return Streak{Count: 0, LastWorkoutDate: s.LastWorkoutDate}, true
}
