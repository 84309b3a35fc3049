package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"beesides-api/app/domain"
	mock_port "beesides-api/app/mocks"
)

func TestQueryUserFinder_FindByEmail(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(users *mock_port.MockUserGateway)
		wantID     string
		wantErr    error
	}{
		{
			name: "match found",
			setupMocks: func(users *mock_port.MockUserGateway) {
				users.EXPECT().
					FindUsersByEmail(gomock.Any(), "a@b.com").
					Return(&domain.IdentityList{
						Total: 1,
						Users: []domain.Identity{{ID: "user-1", Email: "a@b.com"}},
					}, nil)
			},
			wantID: "user-1",
		},
		{
			name: "zero matches",
			setupMocks: func(users *mock_port.MockUserGateway) {
				users.EXPECT().
					FindUsersByEmail(gomock.Any(), "a@b.com").
					Return(&domain.IdentityList{Total: 0}, nil)
			},
			wantErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock_port.NewMockUserGateway(ctrl)
			tt.setupMocks(users)

			identity, err := NewQueryUserFinder(users).FindByEmail(context.Background(), "a@b.com")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, identity)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, identity.ID)
			}
		})
	}
}

func TestListUserFinder_FindByEmail(t *testing.T) {
	list := &domain.IdentityList{
		Total: 2,
		Users: []domain.Identity{
			{ID: "user-1", Email: "first@b.com"},
			{ID: "user-2", Email: "Second@B.com"},
		},
	}

	tests := []struct {
		name    string
		email   string
		wantID  string
		wantErr error
	}{
		{name: "exact match", email: "first@b.com", wantID: "user-1"},
		{name: "case insensitive match", email: "second@b.com", wantID: "user-2"},
		{name: "no match", email: "missing@b.com", wantErr: domain.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock_port.NewMockUserGateway(ctrl)
			users.EXPECT().ListAllUsers(gomock.Any()).Return(list, nil)

			identity, err := NewListUserFinder(users).FindByEmail(context.Background(), tt.email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, identity.ID)
			}
		})
	}
}

func TestFallbackUserFinder_FindByEmail(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(primary, fallback *mock_port.MockUserFinder)
		wantID     string
		wantErr    error
	}{
		{
			name: "primary succeeds, fallback untouched",
			setupMocks: func(primary, fallback *mock_port.MockUserFinder) {
				primary.EXPECT().
					FindByEmail(gomock.Any(), "a@b.com").
					Return(&domain.Identity{ID: "user-1"}, nil)
			},
			wantID: "user-1",
		},
		{
			name: "clean zero match is final",
			setupMocks: func(primary, fallback *mock_port.MockUserFinder) {
				primary.EXPECT().
					FindByEmail(gomock.Any(), "a@b.com").
					Return(nil, domain.ErrUserNotFound)
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "query failure falls back to listing",
			setupMocks: func(primary, fallback *mock_port.MockUserFinder) {
				primary.EXPECT().
					FindByEmail(gomock.Any(), "a@b.com").
					Return(nil, assert.AnError)
				fallback.EXPECT().
					FindByEmail(gomock.Any(), "a@b.com").
					Return(&domain.Identity{ID: "user-1"}, nil)
			},
			wantID: "user-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			primary := mock_port.NewMockUserFinder(ctrl)
			fallback := mock_port.NewMockUserFinder(ctrl)
			tt.setupMocks(primary, fallback)

			finder := NewFallbackUserFinder(primary, fallback, testLogger())

			identity, err := finder.FindByEmail(context.Background(), "a@b.com")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, identity.ID)
			}
		})
	}
}
