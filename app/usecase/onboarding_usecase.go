package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"beesides-api/app/domain"
	"beesides-api/app/port"
)

// OnboardingUseCase implements onboarding-state business logic against a
// single per-user profile document. Concurrent writes from the same user
// are not serialized here; the platform's last-write-wins applies.
type OnboardingUseCase struct {
	profiles port.ProfileGateway
	logger   *slog.Logger
	now      func() time.Time
}

// NewOnboardingUseCase creates a new OnboardingUseCase instance
func NewOnboardingUseCase(profiles port.ProfileGateway, logger *slog.Logger) *OnboardingUseCase {
	return &OnboardingUseCase{
		profiles: profiles,
		logger:   logger.With("component", "onboarding_usecase"),
		now:      time.Now,
	}
}

// GetProgress returns the user's onboarding progress. A missing profile is
// "no progress yet", not an error.
func (uc *OnboardingUseCase) GetProgress(ctx context.Context, userID string) (map[string]interface{}, error) {
	profile, err := uc.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.DefaultOnboardingProgress(), nil
		}
		return nil, err
	}

	return domain.OnboardingFromProfile(profile), nil
}

// SetStep merges one named field into the onboarding object, preserving
// unset fields. A missing profile is created on the spot, repairing a
// registration whose best-effort profile write failed.
func (uc *OnboardingUseCase) SetStep(ctx context.Context, userID, step string, data interface{}, lastCompletedStep string) (map[string]interface{}, error) {
	prefs, onboarding, missing, err := uc.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := domain.MergeOnboardingStep(onboarding, step, data, lastCompletedStep, uc.now())
	prefs["onboarding"] = merged

	if err := uc.storePreferences(ctx, userID, prefs, missing, nil); err != nil {
		return nil, err
	}

	uc.logger.Info("onboarding step updated", "user_id", userID, "step", step)
	return merged, nil
}

// Complete merges an entire caller-supplied progress object, forcing
// completed=true and stamping the completion timestamp.
func (uc *OnboardingUseCase) Complete(ctx context.Context, userID string, progress map[string]interface{}) (map[string]interface{}, error) {
	prefs, _, missing, err := uc.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed := domain.CompleteOnboarding(progress, uc.now())
	prefs["onboarding"] = completed

	done := true
	if err := uc.storePreferences(ctx, userID, prefs, missing, &done); err != nil {
		return nil, err
	}

	uc.logger.Info("onboarding completed", "user_id", userID)
	return completed, nil
}

// loadPreferences reads the profile's preferences sub-object, reporting
// whether the profile document itself is missing
func (uc *OnboardingUseCase) loadPreferences(ctx context.Context, userID string) (prefs, onboarding map[string]interface{}, missing bool, err error) {
	profile, err := uc.profiles.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil, false, err
		}
		return map[string]interface{}{}, map[string]interface{}{}, true, nil
	}

	return domain.PreferencesFromProfile(profile), domain.OnboardingFromProfile(profile), false, nil
}

// storePreferences writes the preferences back, creating the profile when
// it did not exist
func (uc *OnboardingUseCase) storePreferences(ctx context.Context, userID string, prefs map[string]interface{}, missing bool, completed *bool) error {
	data := map[string]interface{}{
		"preferences": prefs,
	}
	if completed != nil {
		data["onboardingCompleted"] = *completed
	}

	if missing {
		uc.logger.Info("profile missing, creating during onboarding", "user_id", userID)
		if completed == nil {
			data["onboardingCompleted"] = false
		}
		_, err := uc.profiles.CreateProfile(ctx, userID, data)
		return err
	}

	_, err := uc.profiles.UpdateProfile(ctx, userID, data)
	return err
}
