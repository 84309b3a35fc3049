package appwrite

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	sdk "github.com/appwrite/sdk-for-go/appwrite"
	sdkclient "github.com/appwrite/sdk-for-go/client"

	"beesides-api/app/config"
)

// Client wraps the official Appwrite SDK. One API-key scoped client is
// built at startup; request-scoped JWT variants are derived per request
// via WithJWT and discarded after use.
//
// The SDK manages its own transport deadlines, so driver methods guard on
// the caller's context before dispatching rather than threading it through.
type Client struct {
	endpoint  string
	projectID string
	apiKey    string
	jwt       string
	timeout   time.Duration
	sdk       sdkclient.Client
	logger    *slog.Logger
}

// NewClient creates a new platform client from configuration
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	// Validate configuration; serving traffic unconfigured is a fatal
	// startup error.
	if !isValidURL(cfg.AppwriteEndpoint) {
		return nil, fmt.Errorf("invalid Appwrite endpoint: %s", cfg.AppwriteEndpoint)
	}
	if cfg.AppwriteProjectID == "" {
		return nil, fmt.Errorf("Appwrite project ID is required")
	}

	endpoint := strings.TrimRight(cfg.AppwriteEndpoint, "/")

	client := &Client{
		endpoint:  endpoint,
		projectID: cfg.AppwriteProjectID,
		apiKey:    cfg.AppwriteAPIKey,
		timeout:   cfg.RequestTimeout,
		sdk: sdk.NewClient(
			sdk.WithEndpoint(endpoint),
			sdk.WithProject(cfg.AppwriteProjectID),
			sdk.WithKey(cfg.AppwriteAPIKey),
		),
		logger: logger,
	}

	logger.Info("Appwrite client initialized",
		"endpoint", client.endpoint,
		"project_id", client.projectID)

	return client, nil
}

// WithJWT returns a request-scoped copy of the client authenticating with
// the caller's bearer credential instead of the static API key. The copy
// must not be cached.
func (c *Client) WithJWT(token string) *Client {
	scoped := *c
	scoped.apiKey = ""
	scoped.jwt = token
	scoped.sdk = sdk.NewClient(
		sdk.WithEndpoint(c.endpoint),
		sdk.WithProject(c.projectID),
		sdk.WithJWT(token),
	)
	return &scoped
}

// Endpoint returns the platform base URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ProjectID returns the configured project identifier
func (c *Client) ProjectID() string {
	return c.projectID
}

// Capability handles

// Account returns the account capability handle
func (c *Client) Account() *Account {
	return &Account{api: sdk.NewAccount(c.sdk)}
}

// Users returns the users capability handle
func (c *Client) Users() *Users {
	return &Users{api: sdk.NewUsers(c.sdk)}
}

// Databases returns the databases capability handle
func (c *Client) Databases() *Databases {
	return &Databases{api: sdk.NewDatabases(c.sdk)}
}

// Storage returns the file storage capability handle
func (c *Client) Storage() *Storage {
	return &Storage{client: c, api: sdk.NewStorage(c.sdk)}
}

// HealthCheck checks if the platform is reachable. The SDK call runs in a
// goroutine so the configured timeout bounds the probe even though the SDK
// does not accept a context.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to connect to Appwrite: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := sdk.NewHealth(c.sdk).Get()
		done <- err
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("failed to connect to Appwrite: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to connect to Appwrite: %w", platformError(err))
		}
		return nil
	}
}

// model is the slice of the SDK response surface the driver consumes:
// every generated model re-exposes its raw payload through Decode.
type model interface {
	Decode(value interface{}) error
}

// decode recovers the platform's wire payload from an SDK model into out
func decode(m model, out interface{}) error {
	if err := m.Decode(out); err != nil {
		return fmt.Errorf("failed to decode platform response: %w", err)
	}
	return nil
}

// isValidURL validates if a URL is properly formatted
func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	// Must have a scheme (http or https) and host
	return parsedURL.Scheme != "" && parsedURL.Host != ""
}
