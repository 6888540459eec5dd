// ABOUTME: Known-value tests for the metric calculators.
package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporhocam/sporhocam/internal/models"
)

func TestBMRKnownValues(t *testing.T) {
	// 80kg, 180cm, 30y male: 10*80 + 6.25*180 - 5*30 + 5 = 1980
	got, err := BMR(models.SexMale, 80, 180, 30)
	require.NoError(t, err)
	assert.InDelta(t, 1980.0, got, 1e-9)

	// 60kg, 165cm, 25y female: 600 + 1031.25 - 125 - 161 = 1345.25
	got, err = BMR(models.SexFemale, 60, 165, 25)
	require.NoError(t, err)
	assert.InDelta(t, 1345.25, got, 1e-9)
}

func TestBMRInvalid(t *testing.T) {
	_, err := BMR(models.SexMale, 0, 180, 30)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = BMR("unknown", 80, 180, 30)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTDEE(t *testing.T) {
	got, err := TDEE(2000, models.ActivitySedentary)
	require.NoError(t, err)
	assert.InDelta(t, 2400.0, got, 1e-9)

	got, err = TDEE(2000, models.ActivityExtraActive)
	require.NoError(t, err)
	assert.InDelta(t, 3800.0, got, 1e-9)

	_, err = TDEE(2000, "couch")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBodyFatMale(t *testing.T) {
	// 180cm, 38cm neck, 85cm waist lands in the mid-teens.
	got, err := BodyFat(models.SexMale, 180, 38, 85, 0)
	require.NoError(t, err)
	assert.Greater(t, got, 10.0)
	assert.Less(t, got, 20.0)
}

func TestBodyFatFemale(t *testing.T) {
	got, err := BodyFat(models.SexFemale, 165, 33, 70, 95)
	require.NoError(t, err)
	assert.Greater(t, got, 15.0)
	assert.Less(t, got, 35.0)

	_, err = BodyFat(models.SexFemale, 165, 33, 70, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBodyFatInvalid(t *testing.T) {
	// Waist not exceeding neck makes the log term undefined.
	_, err := BodyFat(models.SexMale, 180, 40, 38, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBMI(t *testing.T) {
	got, err := BMI(80, 180)
	require.NoError(t, err)
	assert.InDelta(t, 24.69, got, 0.01)
	assert.Equal(t, "normal", BMIClass(got))

	assert.Equal(t, "underweight", BMIClass(18.0))
	assert.Equal(t, "overweight", BMIClass(27.0))
	assert.Equal(t, "obese", BMIClass(31.0))
}
