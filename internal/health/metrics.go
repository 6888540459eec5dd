// ABOUTME: Derived health metric calculators: BMR, TDEE, body fat, BMI.
// ABOUTME: Pure functions with explicit validation of physical inputs.
package health

import (
	"errors"
	"fmt"
	"math"

	"github.com/sporhocam/sporhocam/internal/models"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// activityMultipliers scale BMR to total daily energy expenditure.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:   1.2,
	models.ActivityLight:       1.375,
	models.ActivityModerate:    1.55,
	models.ActivityActive:      1.725,
	models.ActivityExtraActive: 1.9,
}

// BMR computes basal metabolic rate (kcal/day) with the Mifflin-St Jeor
// equation. Weight is in kilograms, height in centimeters.
func BMR(sex models.Sex, weightKg, heightCm float64, age int) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, fmt.Errorf("%w: weight, height, and age must be positive", ErrInvalidInput)
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch sex {
	case models.SexMale:
		return base + 5, nil
	case models.SexFemale:
		return base - 161, nil
	default:
		return 0, fmt.Errorf("%w: unknown sex %q", ErrInvalidInput, sex)
	}
}

// TDEE scales a BMR by the activity-level multiplier.
func TDEE(bmr float64, level models.ActivityLevel) (float64, error) {
	if bmr <= 0 {
		return 0, fmt.Errorf("%w: bmr must be positive", ErrInvalidInput)
	}
	mult, ok := activityMultipliers[level]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, level)
	}
	return bmr * mult, nil
}

// BodyFat estimates body-fat percentage with the US Navy circumference
// method. All circumferences and height are in centimeters; hip is only
// used for females and may be zero for males.
func BodyFat(sex models.Sex, heightCm, neckCm, waistCm, hipCm float64) (float64, error) {
	if heightCm <= 0 || neckCm <= 0 || waistCm <= 0 {
		return 0, fmt.Errorf("%w: height, neck, and waist must be positive", ErrInvalidInput)
	}

	var pct float64
	switch sex {
	case models.SexMale:
		if waistCm <= neckCm {
			return 0, fmt.Errorf("%w: waist must exceed neck circumference", ErrInvalidInput)
		}
		pct = 495/(1.0324-0.19077*math.Log10(waistCm-neckCm)+0.15456*math.Log10(heightCm)) - 450
	case models.SexFemale:
		if hipCm <= 0 {
			return 0, fmt.Errorf("%w: hip circumference required", ErrInvalidInput)
		}
		if waistCm+hipCm <= neckCm {
			return 0, fmt.Errorf("%w: waist plus hip must exceed neck circumference", ErrInvalidInput)
		}
		pct = 495/(1.29579-0.35004*math.Log10(waistCm+hipCm-neckCm)+0.22100*math.Log10(heightCm)) - 450
	default:
		return 0, fmt.Errorf("%w: unknown sex %q", ErrInvalidInput, sex)
	}

	if pct < 0 || pct > 75 {
		return 0, fmt.Errorf("%w: measurements produce an implausible body fat estimate", ErrInvalidInput)
	}
	return pct, nil
}

// BMI computes body mass index from weight in kilograms and height in
// centimeters.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, fmt.Errorf("%w: weight and height must be positive", ErrInvalidInput)
	}
	m := heightCm / 100
	return weightKg / (m * m), nil
}

// BMIClass labels a BMI value with the standard WHO bucket.
func BMIClass(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}
