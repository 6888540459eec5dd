// ABOUTME: User profile model used by the derived-metric calculators.
// ABOUTME: Stored in the config file, not the database.
package models

import "strings"

// Sex is the biological sex used by the BMR and body-fat formulas.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex decodes a sex string; returns false when unrecognized.
func ParseSex(s string) (Sex, bool) {
	switch Sex(strings.ToLower(strings.TrimSpace(s))) {
	case SexMale:
		return SexMale, true
	case SexFemale:
		return SexFemale, true
	}
	return "", false
}

// ActivityLevel scales BMR to TDEE.
type ActivityLevel string

const (
	ActivitySedentary   ActivityLevel = "sedentary"
	ActivityLight       ActivityLevel = "light"
	ActivityModerate    ActivityLevel = "moderate"
	ActivityActive      ActivityLevel = "active"
	ActivityExtraActive ActivityLevel = "extra_active"
)

// ParseActivityLevel decodes an activity level; returns false when unrecognized.
func ParseActivityLevel(s string) (ActivityLevel, bool) {
	switch ActivityLevel(strings.ToLower(strings.TrimSpace(s))) {
	case ActivitySedentary, ActivityLight, ActivityModerate,
		ActivityActive, ActivityExtraActive:
		return ActivityLevel(strings.ToLower(strings.TrimSpace(s))), true
	}
	return "", false
}

// Profile holds the static user attributes needed by the calculators.
// Current weight comes from the measurement log, not the profile.
type Profile struct {
	Sex           Sex           `json:"sex,omitempty"`
	Age           int           `json:"age,omitempty"`
	HeightCm      float64       `json:"height_cm,omitempty"`
	ActivityLevel ActivityLevel `json:"activity_level,omitempty"`
}
