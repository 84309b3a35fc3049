package appwrite

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beesides-api/app/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		AppwriteEndpoint:  endpoint,
		AppwriteProjectID: "test-project",
		AppwriteAPIKey:    "test-key",
		RequestTimeout:    5 * time.Second,
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(testConfig(server.URL), testLogger())
	require.NoError(t, err)

	return client, server
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{
			name:    "valid configuration",
			cfg:     testConfig("https://cloud.appwrite.io/v1"),
			wantErr: false,
		},
		{
			name: "missing endpoint",
			cfg: &config.Config{
				AppwriteProjectID: "test-project",
				RequestTimeout:    5 * time.Second,
			},
			wantErr: true,
		},
		{
			name: "missing project id",
			cfg: &config.Config{
				AppwriteEndpoint: "https://cloud.appwrite.io/v1",
				RequestTimeout:   5 * time.Second,
			},
			wantErr: true,
		},
		{
			name: "relative endpoint",
			cfg: &config.Config{
				AppwriteEndpoint:  "/v1",
				AppwriteProjectID: "test-project",
				RequestTimeout:    5 * time.Second,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg, testLogger())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestClient_RequestHeaders(t *testing.T) {
	var gotProject, gotKey, gotJWT string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotProject = r.Header.Get("X-Appwrite-Project")
		gotKey = r.Header.Get("X-Appwrite-Key")
		gotJWT = r.Header.Get("X-Appwrite-JWT")
		w.Write([]byte(`{}`))
	})

	require.NoError(t, client.HealthCheck(context.Background()))
	assert.Equal(t, "test-project", gotProject)
	assert.Equal(t, "test-key", gotKey)
	assert.Empty(t, gotJWT)
}

func TestClient_WithJWT(t *testing.T) {
	var gotKey, gotJWT string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Appwrite-Key")
		gotJWT = r.Header.Get("X-Appwrite-JWT")
		json.NewEncoder(w).Encode(map[string]interface{}{"$id": "user-1", "email": "a@b.com"})
	})

	scoped := client.WithJWT("token-123")
	identity, err := scoped.Account().Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.ID)
	assert.Equal(t, "token-123", gotJWT)
	assert.Empty(t, gotKey, "JWT-scoped client must not send the API key")

	// The base client keeps its API key
	assert.Equal(t, "test-key", client.apiKey)
	assert.Empty(t, client.jwt)
}

func TestClient_PlatformErrorParsing(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid JWT","code":401,"type":"user_jwt_invalid"}`))
	})

	_, err := client.Account().Get(context.Background())
	require.Error(t, err)

	platformErr, ok := err.(*PlatformError)
	require.True(t, ok)
	assert.Equal(t, 401, platformErr.Code)
	assert.Equal(t, "Invalid JWT", platformErr.Message)
	assert.True(t, IsAuthFailure(err))
	assert.False(t, IsNotFound(err))
}

func TestClient_PlatformErrorWithoutBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := client.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Appwrite")
}

func TestClient_HealthCheckHonorsContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.HealthCheck(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUsers_Create(t *testing.T) {
	var gotPath string
	var gotPayload map[string]interface{}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"$id":   gotPayload["userId"],
			"email": gotPayload["email"],
			"name":  gotPayload["name"],
		})
	})

	identity, err := client.Users().Create(context.Background(), "uid-1", "a@b.com", "password123", "A", "")

	require.NoError(t, err)
	assert.Equal(t, "/users", gotPath)
	assert.Equal(t, "uid-1", identity.ID)
	assert.Equal(t, "a@b.com", identity.Email)
	// Empty phone must be omitted so the platform skips phone validation
	_, hasPhone := gotPayload["phone"]
	assert.False(t, hasPhone)
}

func TestUsers_List_Queries(t *testing.T) {
	var gotQueries []string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQueries = r.URL.Query()["queries[]"]
		json.NewEncoder(w).Encode(map[string]interface{}{
			"total": 1,
			"users": []map[string]interface{}{{"$id": "uid-1", "email": "a@b.com"}},
		})
	})

	list, err := client.Users().List(context.Background(), []string{QueryEqual("email", "a@b.com")})

	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Users, 1)
	assert.Equal(t, "uid-1", list.Users[0].ID)
	require.Len(t, gotQueries, 1)
	assert.JSONEq(t, `{"method":"equal","attribute":"email","values":["a@b.com"]}`, gotQueries[0])
}

func TestDatabases_DocumentRoundTrip(t *testing.T) {
	var gotMethod, gotPath string
	var gotPayload map[string]interface{}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&gotPayload)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"$id": "doc-1", "title": "x"})
	})

	doc, err := client.Databases().CreateDocument(context.Background(), "db", "coll", "doc-1", map[string]interface{}{"title": "x"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/databases/db/collections/coll/documents", gotPath)
	assert.Equal(t, "doc-1", gotPayload["documentId"])
	assert.Equal(t, "doc-1", doc["$id"])

	_, err = client.Databases().UpdateDocument(context.Background(), "db", "coll", "doc-1", map[string]interface{}{"title": "y"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/databases/db/collections/coll/documents/doc-1", gotPath)

	err = client.Databases().DeleteDocument(context.Background(), "db", "coll", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestStorage_URLs(t *testing.T) {
	client, err := NewClient(testConfig("https://cloud.appwrite.io/v1"), testLogger())
	require.NoError(t, err)

	downloadURL := client.Storage().FileDownloadURL("bucket-1", "file-1")
	assert.Equal(t,
		"https://cloud.appwrite.io/v1/storage/buckets/bucket-1/files/file-1/download?project=test-project",
		downloadURL)

	uploadURL := client.Storage().FileUploadURL("bucket-1")
	assert.Equal(t, "https://cloud.appwrite.io/v1/storage/buckets/bucket-1/files", uploadURL)
}

func TestStorage_GetFile_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"File with the requested ID could not be found.","code":404,"type":"storage_file_not_found"}`))
	})

	_, err := client.Storage().GetFile(context.Background(), "bucket-1", "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsAuthFailure(err))
}
