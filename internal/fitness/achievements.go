package fitness

import "time"

// Snapshot is the immutable view of a profile and its cumulative stats the
// badge rules are evaluated against.
type Snapshot struct {
	TotalWorkouts int
	TotalCalories int
	Streak        int
	// LastWorkout is the date of the most recent workout, in the user's local time.
	LastWorkout *time.Time
}

type Badge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	unlocked func(Snapshot) bool
}

// Unlocked reports whether the badge condition holds for the snapshot.
func (b Badge) Unlocked(s Snapshot) bool {
	if b.unlocked == nil {
		return false
	}
	return b.unlocked(s)
}

// Achievement is a badge awarded to a profile.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Date        time.Time `json:"date"`
}

var badgeCatalog = []Badge{
	{
		ID:          "first_workout",
		Title:       "First Step",
		Description: "Complete your first workout",
		Icon:        "👟",
		unlocked:    func(s Snapshot) bool { return s.TotalWorkouts >= 1 },
	},
	{
		ID:          "streak_3",
		Title:       "Consistency Is Key",
		Description: "Reach a 3-day streak",
		Icon:        "🌱",
		unlocked:    func(s Snapshot) bool { return s.Streak >= 3 },
	},
	{
		ID:          "streak_7",
		Title:       "On Fire",
		Description: "Reach a 7-day streak",
		Icon:        "🔥",
		unlocked:    func(s Snapshot) bool { return s.Streak >= 7 },
	},
	{
		ID:          "streak_30",
		Title:       "Unstoppable",
		Description: "Reach a 30-day streak",
		Icon:        "🚀",
		unlocked:    func(s Snapshot) bool { return s.Streak >= 30 },
	},
	{
		ID:          "cal_5000",
		Title:       "Burner",
		Description: "Burn 5,000 total calories",
		Icon:        "⚡",
		unlocked:    func(s Snapshot) bool { return s.TotalCalories >= 5000 },
	},
	{
		ID:          "cal_20000",
		Title:       "Inferno",
		Description: "Burn 20,000 total calories",
		Icon:        "🌋",
		unlocked:    func(s Snapshot) bool { return s.TotalCalories >= 20000 },
	},
	{
		ID:          "early_bird",
		Title:       "Early Bird",
		Description: "Complete a workout before 6 AM",
		Icon:        "🌅",
		unlocked: func(s Snapshot) bool {
			return s.LastWorkout != nil && s.LastWorkout.Hour() < 6
		},
	},
	{
		ID:          "night_owl",
		Title:       "Night Owl",
		Description: "Complete a workout after 10 PM",
		Icon:        "🦉",
		unlocked: func(s Snapshot) bool {
			return s.LastWorkout != nil && s.LastWorkout.Hour() >= 22
		},
	},
	{
		ID:          "weekend_warrior",
		Title:       "Weekend Warrior",
		Description: "Complete workouts on Saturday and Sunday",
		Icon:        "⚔️",
		// TODO: needs the per-day workout history of the current week, the snapshot only carries the last workout
		unlocked: func(Snapshot) bool { return false },
	},
}

// Catalog returns the badge catalog in its fixed order.
func Catalog() []Badge {
	badges := make([]Badge, len(badgeCatalog))
	copy(badges, badgeCatalog)
	return badges
}

func ownedIDs(owned []Achievement) map[string]bool {
	ids := make(map[string]bool, len(owned))
	for _, a := range owned {
		ids[a.ID] = true
	}
	return ids
}

// CheckAchievements returns the badges unlocked by the snapshot that are not
// owned yet, in catalog order, dated now.
func CheckAchievements(s Snapshot, owned []Achievement, now time.Time) []Achievement {
	has := ownedIDs(owned)
	newAchievements := make([]Achievement, 0)
	for _, badge := range badgeCatalog {
		if has[badge.ID] || !badge.Unlocked(s) {
			continue
		}
		newAchievements = append(newAchievements, Achievement{
			ID:          badge.ID,
			Title:       badge.Title,
			Description: badge.Description,
			Icon:        badge.Icon,
			Date:        now,
		})
	}
	return newAchievements
}

// AwardAchievements appends awarded achievements to owned, skipping ids that
// are already present. Owned achievements are never removed or reordered.
func AwardAchievements(owned, awarded []Achievement) []Achievement {
	has := ownedIDs(owned)
	result := make([]Achievement, 0, len(owned)+len(awarded))
	result = append(result, owned...)
	for _, a := range awarded {
		if has[a.ID] {
			continue
		}
		has[a.ID] = true
		result = append(result, a)
	}
	return result
}

// NextMissions returns up to three catalog badges the profile has not earned yet.
func NextMissions(owned []Achievement) []Badge {
	has := ownedIDs(owned)
	missions := make([]Badge, 0, 3)
	for _, badge := range badgeCatalog {
		if has[badge.ID] {
			continue
		}
		missions = append(missions, badge)
		if len(missions) == 3 {
			break
		}
	}
	return missions
}
