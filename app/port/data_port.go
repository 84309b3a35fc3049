package port

//go:generate mockgen -source=data_port.go -destination=../mocks/mock_data_port.go -package=mocks

import (
	"context"

	"beesides-api/app/domain"
)

// DocumentUsecase defines document passthrough business logic
type DocumentUsecase interface {
	ListDocuments(ctx context.Context, databaseID, collectionID string, queries []string) (*domain.DocumentList, error)
	GetDocument(ctx context.Context, databaseID, collectionID, documentID string) (domain.Document, error)
	CreateDocument(ctx context.Context, databaseID, collectionID string, data map[string]interface{}) (domain.Document, error)
	UpdateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]interface{}) (domain.Document, error)
	DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error
}

// DocumentGateway defines the platform document store surface
type DocumentGateway interface {
	ListDocuments(ctx context.Context, databaseID, collectionID string, queries []string) (*domain.DocumentList, error)
	GetDocument(ctx context.Context, databaseID, collectionID, documentID string) (domain.Document, error)
	CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]interface{}) (domain.Document, error)
	UpdateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]interface{}) (domain.Document, error)
	DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error
}

// ProfileGateway defines access to per-user profile documents. The profile
// document id always equals the identity's unique id.
type ProfileGateway interface {
	GetProfile(ctx context.Context, userID string) (domain.Document, error)
	CreateProfile(ctx context.Context, userID string, data map[string]interface{}) (domain.Document, error)
	UpdateProfile(ctx context.Context, userID string, data map[string]interface{}) (domain.Document, error)
}

// OnboardingUsecase defines onboarding-state business logic
type OnboardingUsecase interface {
	GetProgress(ctx context.Context, userID string) (map[string]interface{}, error)
	SetStep(ctx context.Context, userID, step string, data interface{}, lastCompletedStep string) (map[string]interface{}, error)
	Complete(ctx context.Context, userID string, progress map[string]interface{}) (map[string]interface{}, error)
}
