package fitness

import "time"

// RecordWorkout applies a logged workout to the profile: the streak advances
// by the workout date and newly unlocked badges are appended. stats must
// already include the workout. The awarded badges are returned.
func RecordWorkout(p *Profile, stats WorkoutStats, workoutDate, now time.Time) []Achievement {
	p.SetStreak(AdvanceStreak(p.StreakState(), workoutDate))

	lastWorkout := workoutDate
	awarded := CheckAchievements(Snapshot{
		TotalWorkouts: stats.TotalWorkouts,
		TotalCalories: stats.TotalCalories,
		Streak:        p.Streak,
		LastWorkout:   &lastWorkout,
	}, p.Achievements, now)

	p.Achievements = AwardAchievements(p.Achievements, awarded)
	return awarded
}
