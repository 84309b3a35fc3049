package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"beesides-api/app/domain"
	mock_port "beesides-api/app/mocks"
	apperrors "beesides-api/app/utils/errors"
)

func TestDataHandler_ListDocuments_Queries(t *testing.T) {
	tests := []struct {
		name        string
		rawQueries  string
		wantQueries []string
	}{
		{
			name:        "valid queries are forwarded",
			rawQueries:  `["{\"method\":\"equal\",\"attribute\":\"genre\",\"values\":[\"rock\"]}"]`,
			wantQueries: []string{`{"method":"equal","attribute":"genre","values":["rock"]}`},
		},
		{
			name:        "unparseable queries fall back to unfiltered",
			rawQueries:  `{not json`,
			wantQueries: nil,
		},
		{
			name:        "absent queries",
			rawQueries:  "",
			wantQueries: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			documents := mock_port.NewMockDocumentUsecase(ctrl)
			documents.EXPECT().
				ListDocuments(gomock.Any(), "db", "albums", tt.wantQueries).
				Return(&domain.DocumentList{Total: 0, Documents: []domain.Document{}}, nil)

			target := "/api/data/db/albums"
			if tt.rawQueries != "" {
				target += "?queries=" + url.QueryEscape(tt.rawQueries)
			}
			c, rec := newJSONContext(http.MethodGet, target, "")
			c.SetParamNames("databaseId", "collectionId")
			c.SetParamValues("db", "albums")

			handler := NewDataHandler(documents, testLogger())

			require.NoError(t, handler.ListDocuments(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestDataHandler_GetDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	documents := mock_port.NewMockDocumentUsecase(ctrl)
	documents.EXPECT().
		GetDocument(gomock.Any(), "db", "albums", "doc-1").
		Return(domain.Document{"$id": "doc-1", "title": "Things We Lost"}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/data/db/albums/doc-1", "")
	c.SetParamNames("databaseId", "collectionId", "documentId")
	c.SetParamValues("db", "albums", "doc-1")

	handler := NewDataHandler(documents, testLogger())

	require.NoError(t, handler.GetDocument(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "doc-1", body["$id"])
}

func TestDataHandler_CreateDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	documents := mock_port.NewMockDocumentUsecase(ctrl)
	documents.EXPECT().
		CreateDocument(gomock.Any(), "db", "albums", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, data map[string]interface{}) (domain.Document, error) {
			assert.Equal(t, "Things We Lost", data["title"])
			return domain.Document{"$id": "doc-1", "title": data["title"]}, nil
		})

	c, rec := newJSONContext(http.MethodPost, "/api/data/db/albums", `{"title":"Things We Lost"}`)
	c.SetParamNames("databaseId", "collectionId")
	c.SetParamValues("db", "albums")

	handler := NewDataHandler(documents, testLogger())

	require.NoError(t, handler.CreateDocument(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDataHandler_CreateDocument_PlatformError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	documents := mock_port.NewMockDocumentUsecase(ctrl)
	documents.EXPECT().
		CreateDocument(gomock.Any(), "db", "albums", gomock.Any()).
		Return(nil, apperrors.NewPlatformError("Collection not found", assert.AnError))

	c, rec := newJSONContext(http.MethodPost, "/api/data/db/albums", `{"title":"x"}`)
	c.SetParamNames("databaseId", "collectionId")
	c.SetParamValues("db", "albums")

	handler := NewDataHandler(documents, testLogger())

	require.NoError(t, handler.CreateDocument(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Collection not found", decodeBody(t, rec)["message"])
}

func TestDataHandler_UpdateDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	documents := mock_port.NewMockDocumentUsecase(ctrl)
	documents.EXPECT().
		UpdateDocument(gomock.Any(), "db", "albums", "doc-1", gomock.Any()).
		Return(domain.Document{"$id": "doc-1", "title": "Renamed"}, nil)

	c, rec := newJSONContext(http.MethodPatch, "/api/data/db/albums/doc-1", `{"title":"Renamed"}`)
	c.SetParamNames("databaseId", "collectionId", "documentId")
	c.SetParamValues("db", "albums", "doc-1")

	handler := NewDataHandler(documents, testLogger())

	require.NoError(t, handler.UpdateDocument(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDataHandler_DeleteDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	documents := mock_port.NewMockDocumentUsecase(ctrl)
	documents.EXPECT().
		DeleteDocument(gomock.Any(), "db", "albums", "doc-1").
		Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/api/data/db/albums/doc-1", "")
	c.SetParamNames("databaseId", "collectionId", "documentId")
	c.SetParamValues("db", "albums", "doc-1")

	handler := NewDataHandler(documents, testLogger())

	require.NoError(t, handler.DeleteDocument(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Document deleted successfully", decodeBody(t, rec)["message"])
}
