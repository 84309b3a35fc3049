package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOnboardingProgress(t *testing.T) {
	progress := DefaultOnboardingProgress()

	assert.Equal(t, []interface{}{}, progress["genres"])
	assert.Equal(t, []interface{}{}, progress["artists"])
	assert.Equal(t, []interface{}{}, progress["ratings"])
	assert.Equal(t, []interface{}{}, progress["following"])
	assert.Equal(t, false, progress["rymImported"])
	assert.Nil(t, progress["lastCompletedStep"])
}

func TestMergeOnboardingStep(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		current           map[string]interface{}
		step              string
		data              interface{}
		lastCompletedStep string
		check             func(*testing.T, map[string]interface{})
	}{
		{
			name:    "merge into empty object",
			current: map[string]interface{}{},
			step:    "genres",
			data:    []interface{}{"rock"},
			check: func(t *testing.T, merged map[string]interface{}) {
				assert.Equal(t, []interface{}{"rock"}, merged["genres"])
				assert.Nil(t, merged["lastCompletedStep"])
				assert.Equal(t, "2025-06-01T12:00:00Z", merged["updatedAt"])
			},
		},
		{
			name: "merge preserves unset fields",
			current: map[string]interface{}{
				"genres":            []interface{}{"rock"},
				"rymImported":       true,
				"lastCompletedStep": "genres",
			},
			step: "artists",
			data: []interface{}{"radiohead"},
			check: func(t *testing.T, merged map[string]interface{}) {
				assert.Equal(t, []interface{}{"rock"}, merged["genres"])
				assert.Equal(t, []interface{}{"radiohead"}, merged["artists"])
				assert.Equal(t, true, merged["rymImported"])
				// lastCompletedStep keeps its prior value when not supplied
				assert.Equal(t, "genres", merged["lastCompletedStep"])
			},
		},
		{
			name: "explicit lastCompletedStep wins",
			current: map[string]interface{}{
				"lastCompletedStep": "genres",
			},
			step:              "artists",
			data:              []interface{}{},
			lastCompletedStep: "artists",
			check: func(t *testing.T, merged map[string]interface{}) {
				assert.Equal(t, "artists", merged["lastCompletedStep"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeOnboardingStep(tt.current, tt.step, tt.data, tt.lastCompletedStep, now)
			tt.check(t, merged)

			// Input must not be mutated
			_, mutated := tt.current["updatedAt"]
			assert.False(t, mutated)
		})
	}
}

func TestCompleteOnboarding(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	progress := map[string]interface{}{
		"genres":    []interface{}{"rock"},
		"completed": false,
	}

	completed := CompleteOnboarding(progress, now)

	assert.Equal(t, true, completed["completed"])
	assert.Equal(t, "2025-06-01T12:00:00Z", completed["completedAt"])
	assert.Equal(t, []interface{}{"rock"}, completed["genres"])
	// Input must not be mutated
	assert.Equal(t, false, progress["completed"])
}

func TestOnboardingFromProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile Document
		want    map[string]interface{}
	}{
		{
			name:    "no preferences",
			profile: Document{"name": "A"},
			want:    DefaultOnboardingProgress(),
		},
		{
			name:    "preferences without onboarding",
			profile: Document{"preferences": map[string]interface{}{"theme": "dark"}},
			want:    DefaultOnboardingProgress(),
		},
		{
			name: "existing onboarding",
			profile: Document{
				"preferences": map[string]interface{}{
					"onboarding": map[string]interface{}{"genres": []interface{}{"jazz"}},
				},
			},
			want: map[string]interface{}{"genres": []interface{}{"jazz"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OnboardingFromProfile(tt.profile))
		})
	}
}

func TestDefaultProfileDocument(t *testing.T) {
	doc := DefaultProfileDocument("A", "a@b.com")

	assert.Equal(t, "A", doc["name"])
	assert.Equal(t, "a@b.com", doc["email"])
	assert.Equal(t, false, doc["onboardingCompleted"])

	prefs, ok := doc["preferences"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, DefaultOnboardingProgress(), prefs["onboarding"])
}
