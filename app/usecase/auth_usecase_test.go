package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"beesides-api/app/domain"
	mock_port "beesides-api/app/mocks"
	apperrors "beesides-api/app/utils/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthUseCase_Register(t *testing.T) {
	req := &domain.RegisterRequest{
		Email:    "a@b.com",
		Password: "supersecret",
		Name:     "A",
	}

	tests := []struct {
		name       string
		setupMocks func(users *mock_port.MockUserGateway, profiles *mock_port.MockProfileGateway)
		expectErr  bool
	}{
		{
			name: "successful registration",
			setupMocks: func(users *mock_port.MockUserGateway, profiles *mock_port.MockProfileGateway) {
				users.EXPECT().
					CreateUser(gomock.Any(), gomock.Any(), "a@b.com", "supersecret", "A", "").
					Return(&domain.Identity{ID: "user-1", Email: "a@b.com", Name: "A"}, nil)
				profiles.EXPECT().
					CreateProfile(gomock.Any(), "user-1", gomock.Any()).
					Return(domain.Document{"$id": "user-1"}, nil)
			},
			expectErr: false,
		},
		{
			name: "profile write failure is swallowed",
			setupMocks: func(users *mock_port.MockUserGateway, profiles *mock_port.MockProfileGateway) {
				users.EXPECT().
					CreateUser(gomock.Any(), gomock.Any(), "a@b.com", "supersecret", "A", "").
					Return(&domain.Identity{ID: "user-1", Email: "a@b.com"}, nil)
				profiles.EXPECT().
					CreateProfile(gomock.Any(), "user-1", gomock.Any()).
					Return(nil, assert.AnError)
			},
			expectErr: false,
		},
		{
			name: "identity creation failure",
			setupMocks: func(users *mock_port.MockUserGateway, profiles *mock_port.MockProfileGateway) {
				users.EXPECT().
					CreateUser(gomock.Any(), gomock.Any(), "a@b.com", "supersecret", "A", "").
					Return(nil, assert.AnError)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock_port.NewMockUserGateway(ctrl)
			account := mock_port.NewMockAccountGateway(ctrl)
			profiles := mock_port.NewMockProfileGateway(ctrl)
			finder := mock_port.NewMockUserFinder(ctrl)
			tt.setupMocks(users, profiles)

			uc := NewAuthUseCase(users, account, profiles, finder, testLogger())

			result, err := uc.Register(context.Background(), req)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "user-1", result.User.ID)
				assert.Equal(t, "user-1", result.Session.UserID)
				assert.Equal(t, "email", result.Session.Provider)
				assert.True(t, result.Session.Current)
				assert.False(t, result.Session.IsExpired())
			}
		})
	}
}

func TestAuthUseCase_Register_ProfileDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock_port.NewMockUserGateway(ctrl)
	account := mock_port.NewMockAccountGateway(ctrl)
	profiles := mock_port.NewMockProfileGateway(ctrl)
	finder := mock_port.NewMockUserFinder(ctrl)

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any(), "a@b.com", "supersecret", "A", "").
		Return(&domain.Identity{ID: "user-1", Email: "a@b.com"}, nil)

	var captured map[string]interface{}
	profiles.EXPECT().
		CreateProfile(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data map[string]interface{}) (domain.Document, error) {
			captured = data
			return domain.Document(data), nil
		})

	uc := NewAuthUseCase(users, account, profiles, finder, testLogger())

	_, err := uc.Register(context.Background(), &domain.RegisterRequest{
		Email:    "a@b.com",
		Password: "supersecret",
		Name:     "A",
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, false, captured["onboardingCompleted"])
	assert.Equal(t, "A", captured["name"])
	assert.Equal(t, "a@b.com", captured["email"])

	prefs, ok := captured["preferences"].(map[string]interface{})
	require.True(t, ok)
	onboarding, ok := prefs["onboarding"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{}, onboarding["genres"])
	assert.Equal(t, false, onboarding["rymImported"])
}

func TestAuthUseCase_Login(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(finder *mock_port.MockUserFinder)
		expectErr  bool
		wantCode   apperrors.ErrorCode
	}{
		{
			name: "successful login",
			setupMocks: func(finder *mock_port.MockUserFinder) {
				finder.EXPECT().
					FindByEmail(gomock.Any(), "a@b.com").
					Return(&domain.Identity{ID: "user-1", Email: "a@b.com"}, nil)
			},
			expectErr: false,
		},
		{
			name: "unknown email yields invalid credentials",
			setupMocks: func(finder *mock_port.MockUserFinder) {
				finder.EXPECT().
					FindByEmail(gomock.Any(), "a@b.com").
					Return(nil, domain.ErrUserNotFound)
			},
			expectErr: true,
			wantCode:  apperrors.ErrCodeInvalidCredentials,
		},
		{
			name: "lookup failure yields invalid credentials",
			setupMocks: func(finder *mock_port.MockUserFinder) {
				finder.EXPECT().
					FindByEmail(gomock.Any(), "a@b.com").
					Return(nil, assert.AnError)
			},
			expectErr: true,
			wantCode:  apperrors.ErrCodeInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock_port.NewMockUserGateway(ctrl)
			account := mock_port.NewMockAccountGateway(ctrl)
			profiles := mock_port.NewMockProfileGateway(ctrl)
			finder := mock_port.NewMockUserFinder(ctrl)
			tt.setupMocks(finder)

			uc := NewAuthUseCase(users, account, profiles, finder, testLogger())

			// Password is deliberately never inspected by this flow.
			result, err := uc.Login(context.Background(), "a@b.com", "whatever")

			if tt.expectErr {
				require.Error(t, err)
				assert.Nil(t, result)
				appErr, ok := apperrors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Equal(t, "Invalid credentials", appErr.Message)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "user-1", result.User.ID)
				assert.Equal(t, "user-1", result.Session.UserID)
			}
		})
	}
}

func TestAuthUseCase_CurrentUser(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(users *mock_port.MockUserGateway)
		expectErr  bool
	}{
		{
			name: "token resolves to user",
			setupMocks: func(users *mock_port.MockUserGateway) {
				users.EXPECT().
					GetUser(gomock.Any(), "user-1").
					Return(&domain.Identity{ID: "user-1"}, nil)
			},
			expectErr: false,
		},
		{
			name: "unknown token",
			setupMocks: func(users *mock_port.MockUserGateway) {
				users.EXPECT().
					GetUser(gomock.Any(), "user-1").
					Return(nil, assert.AnError)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock_port.NewMockUserGateway(ctrl)
			account := mock_port.NewMockAccountGateway(ctrl)
			profiles := mock_port.NewMockProfileGateway(ctrl)
			finder := mock_port.NewMockUserFinder(ctrl)
			tt.setupMocks(users)

			uc := NewAuthUseCase(users, account, profiles, finder, testLogger())

			identity, err := uc.CurrentUser(context.Background(), "user-1")

			if tt.expectErr {
				require.Error(t, err)
				assert.Nil(t, identity)
				appErr, ok := apperrors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, apperrors.ErrCodeInvalidToken, appErr.Code)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "user-1", identity.ID)
			}
		})
	}
}

func TestAuthUseCase_Logout(t *testing.T) {
	tests := []struct {
		name       string
		sessionID  string
		setupMocks func(account *mock_port.MockAccountGateway)
		expectErr  bool
	}{
		{
			name:       "no session id rejected without platform call",
			sessionID:  "",
			setupMocks: func(account *mock_port.MockAccountGateway) {},
			expectErr:  true,
		},
		{
			name:      "session id triggers deletion",
			sessionID: "sess-1",
			setupMocks: func(account *mock_port.MockAccountGateway) {
				account.EXPECT().DeleteSession(gomock.Any(), "sess-1").Return(nil)
			},
			expectErr: false,
		},
		{
			name:      "deletion failure propagates",
			sessionID: "sess-1",
			setupMocks: func(account *mock_port.MockAccountGateway) {
				account.EXPECT().DeleteSession(gomock.Any(), "sess-1").Return(assert.AnError)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock_port.NewMockUserGateway(ctrl)
			account := mock_port.NewMockAccountGateway(ctrl)
			profiles := mock_port.NewMockProfileGateway(ctrl)
			finder := mock_port.NewMockUserFinder(ctrl)
			tt.setupMocks(account)

			uc := NewAuthUseCase(users, account, profiles, finder, testLogger())

			err := uc.Logout(context.Background(), tt.sessionID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthUseCase_Logout_MissingSessionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAuthUseCase(
		mock_port.NewMockUserGateway(ctrl),
		mock_port.NewMockAccountGateway(ctrl),
		mock_port.NewMockProfileGateway(ctrl),
		mock_port.NewMockUserFinder(ctrl),
		testLogger(),
	)

	err := uc.Logout(context.Background(), "")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidInput, appErr.Code)
	assert.Equal(t, "Session ID is required", appErr.Message)
}
