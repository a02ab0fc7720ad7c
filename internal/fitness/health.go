package fitness

import "math"

const idealBMI = 22.0

type Health struct {
	BMI   float64 `json:"bmi"`
	Score int     `json:"healthScore"`
}

// ComputeBMIAndHealth returns the bmi (two decimals) and a 0-100 health
// score peaking at bmi 22. ok is false when height or weight is missing.
func ComputeBMIAndHealth(heightCm, weightKg float64) (_ Health, ok bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return Health{}, false
	}

	heightM := heightCm / 100
	bmi := math.Round(weightKg/(heightM*heightM)*100) / 100

	score := math.Round(100 - math.Abs(bmi-idealBMI)*4)
	score = math.Max(0, math.Min(100, score))

	return Health{
		BMI:   bmi,
		Score: int(score),
	}, true
}

// ValidateBiometrics rejects negative biometric values.
func ValidateBiometrics(age, heightCm, weightKg, targetWeightKg float64) error {
	if age < 0 || heightCm < 0 || weightKg < 0 || targetWeightKg < 0 {
		return NewValidationError("", "values must be positive")
	}
	return nil
}
