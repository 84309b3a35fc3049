package appwrite

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	sdkclient "github.com/appwrite/sdk-for-go/client"
)

// PlatformError is an error response from the Appwrite platform. Its
// message is surfaced to API callers largely verbatim: the platform is
// trusted infrastructure, not untrusted input.
type PlatformError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Error implements the error interface
func (e *PlatformError) Error() string {
	return e.Message
}

// platformError normalizes an SDK failure into a PlatformError. Transport
// failures that never reached the platform pass through unchanged.
func platformError(err error) error {
	var sdkErr *sdkclient.AppwriteError
	if !errors.As(err, &sdkErr) {
		return err
	}

	platformErr := &PlatformError{
		Code:    sdkErr.GetStatusCode(),
		Message: sdkErr.GetMessage(),
	}

	// The SDK keeps the raw error body; the platform's error type lives
	// only there.
	if raw := sdkErr.GetResponse(); raw != "" {
		var body struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if json.Unmarshal([]byte(raw), &body) == nil {
			platformErr.Type = body.Type
			if platformErr.Message == "" {
				platformErr.Message = body.Message
			}
		}
	}

	if platformErr.Message == "" {
		platformErr.Message = fmt.Sprintf("appwrite returned status %d", platformErr.Code)
	}

	return platformErr
}

// IsNotFound reports whether err is a platform 404
func IsNotFound(err error) bool {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Code == http.StatusNotFound
	}
	return false
}

// IsAuthFailure reports whether err looks like a credential problem: a
// platform 401, or a JWT-related failure of any status.
func IsAuthFailure(err error) bool {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		if platformErr.Code == http.StatusUnauthorized {
			return true
		}
		if strings.Contains(strings.ToLower(platformErr.Message), "jwt") {
			return true
		}
		return strings.Contains(strings.ToLower(platformErr.Type), "jwt")
	}
	if err != nil {
		return strings.Contains(strings.ToLower(err.Error()), "jwt")
	}
	return false
}
