package domain

import (
	"time"
)

// DefaultOnboardingProgress returns the onboarding shape for a user who has
// not started onboarding yet. A missing profile document reads back as this
// default, not as an error.
func DefaultOnboardingProgress() map[string]interface{} {
	return map[string]interface{}{
		"genres":            []interface{}{},
		"artists":           []interface{}{},
		"ratings":           []interface{}{},
		"following":         []interface{}{},
		"rymImported":       false,
		"lastCompletedStep": nil,
	}
}

// DefaultProfileDocument returns the profile document created at
// registration time. The document id always equals the identity's unique
// id; that one-to-one mapping is enforced by construction here, not by the
// platform.
func DefaultProfileDocument(name, email string) map[string]interface{} {
	return map[string]interface{}{
		"name":                name,
		"email":               email,
		"bio":                 "",
		"avatarUrl":           "",
		"preferredGenres":     []interface{}{},
		"favoriteArtists":     []interface{}{},
		"onboardingCompleted": false,
		"preferences": map[string]interface{}{
			"onboarding": DefaultOnboardingProgress(),
		},
	}
}

// MergeOnboardingStep merges a single named step into an existing onboarding
// object, preserving unset fields. lastCompletedStep is updated only when a
// new value is supplied; updatedAt is always stamped.
func MergeOnboardingStep(current map[string]interface{}, step string, data interface{}, lastCompletedStep string, now time.Time) map[string]interface{} {
	merged := make(map[string]interface{}, len(current)+2)
	for k, v := range current {
		merged[k] = v
	}

	merged[step] = data
	if lastCompletedStep != "" {
		merged["lastCompletedStep"] = lastCompletedStep
	} else if _, ok := merged["lastCompletedStep"]; !ok {
		merged["lastCompletedStep"] = nil
	}
	merged["updatedAt"] = now.UTC().Format(time.RFC3339)

	return merged
}

// CompleteOnboarding merges an entire caller-supplied progress object,
// forcing completed=true and stamping the completion timestamp.
func CompleteOnboarding(progress map[string]interface{}, now time.Time) map[string]interface{} {
	completed := make(map[string]interface{}, len(progress)+2)
	for k, v := range progress {
		completed[k] = v
	}

	completed["completed"] = true
	completed["completedAt"] = now.UTC().Format(time.RFC3339)

	return completed
}

// OnboardingFromProfile extracts the onboarding sub-object from a profile
// document, falling back to the default shape when the profile or its
// preference sub-object is absent.
func OnboardingFromProfile(profile Document) map[string]interface{} {
	prefs, ok := profile["preferences"].(map[string]interface{})
	if !ok {
		return DefaultOnboardingProgress()
	}

	onboarding, ok := prefs["onboarding"].(map[string]interface{})
	if !ok {
		return DefaultOnboardingProgress()
	}

	return onboarding
}

// PreferencesFromProfile extracts the preferences sub-object, or an empty
// map when absent, so merges never drop sibling preference fields.
func PreferencesFromProfile(profile Document) map[string]interface{} {
	prefs, ok := profile["preferences"].(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}

	copied := make(map[string]interface{}, len(prefs))
	for k, v := range prefs {
		copied[k] = v
	}
	return copied
}
