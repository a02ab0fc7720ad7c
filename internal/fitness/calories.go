package fitness

import "math"

const (
	DefaultBodyWeightKg = 70.0
	defaultMET          = 5.0
)

var metByType = map[WorkoutType]float64{
	WorkoutTypeCardio:   8,
	WorkoutTypeStrength: 5,
	WorkoutTypeYoga:     3,
	WorkoutTypeHIIT:     9,
	WorkoutTypeCycling:  7,
	WorkoutTypeRunning:  10,
	WorkoutTypeWalking:  3.5,
	WorkoutTypePilates:  3.5,
	WorkoutTypeSwimming: 7,
}

// MET returns the metabolic equivalent for the given workout type.
// Unknown types fall back to a moderate effort value.
func MET(workoutType WorkoutType) float64 {
	if met, ok := metByType[workoutType]; ok {
		return met
	}
	return defaultMET
}

// EstimateCalories estimates calories burned using the MET formula.
// A non-positive body weight means no weight was recorded.
func EstimateCalories(workoutType WorkoutType, durationMinutes int, bodyWeightKg float64) int {
	if bodyWeightKg <= 0 {
		bodyWeightKg = DefaultBodyWeightKg
	}
	return int(math.Round(MET(workoutType) * 3.5 * bodyWeightKg / 200 * float64(durationMinutes)))
}
