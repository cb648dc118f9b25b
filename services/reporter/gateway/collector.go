package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/autotoll/tollway/internal/pkg/models"
)

const updateLocationPath = "/api/update_location"

// SendErrorKind classifies a failed transmission
type SendErrorKind int

const (
	// SendErrorNetwork means the request never reached the server
	SendErrorNetwork SendErrorKind = iota
	// SendErrorHTTP means the server answered with a non-2xx status
	SendErrorHTTP
	// SendErrorApplication means the server answered 2xx but reported a
	// non-success status in the body
	SendErrorApplication
)

// SendError is a classified transmission failure. Message is suitable for
// surfacing to the user verbatim.
type SendError struct {
	Kind       SendErrorKind
	StatusCode int
	Message    string
	cause      error
}

func (e *SendError) Error() string {
	return e.Message
}

func (e *SendError) Unwrap() error {
	return e.cause
}

// CollectorGateway delivers position reports to the collector over HTTP
type CollectorGateway struct {
	baseURL      string
	sessionToken string
	httpClient   *http.Client
}

// NewCollectorGateway creates a gateway for the given collector base URL.
// The session token plays the role the browsing context's session cookie
// would: it rides along on every request without the reporting loop
// handling credentials.
func NewCollectorGateway(baseURL, sessionToken string) *CollectorGateway {
	return &CollectorGateway{
		baseURL:      baseURL,
		sessionToken: sessionToken,
		// No request timeout here: only position acquisition is bounded,
		// and a hung send is allowed to coexist with later cycles
		httpClient: &http.Client{},
	}
}

// SendPosition POSTs the coordinate pair to the collector and classifies
// the outcome. Transport-level failures from the HTTP client are network
// errors; everything that produced a response is an HTTP or application
// error depending on status code and body.
func (g *CollectorGateway) SendPosition(ctx context.Context, position models.Position) (string, error) {
	body, err := json.Marshal(models.UpdateLocationRequest{
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal position: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+updateLocationPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+g.sessionToken)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		// The request never produced a response
		return "", &SendError{
			Kind:    SendErrorNetwork,
			Message: "cannot reach server",
			cause:   err,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &SendError{
			Kind:    SendErrorNetwork,
			Message: "cannot reach server",
			cause:   err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &SendError{
			Kind:       SendErrorHTTP,
			StatusCode: resp.StatusCode,
			Message:    errorMessageFromBody(respBody, resp.StatusCode),
		}
	}

	var ack models.UpdateLocationResponse
	if err := json.Unmarshal(respBody, &ack); err != nil {
		return "", &SendError{
			Kind:       SendErrorApplication,
			StatusCode: resp.StatusCode,
			Message:    "invalid server response",
			cause:      err,
		}
	}

	if ack.Status != "success" {
		return "", &SendError{
			Kind:       SendErrorApplication,
			StatusCode: resp.StatusCode,
			Message:    ack.Message,
		}
	}

	return ack.Message, nil
}

// errorMessageFromBody pulls the message field out of an error body,
// falling back to a generic message built from the status code
func errorMessageFromBody(body []byte, statusCode int) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return fmt.Sprintf("HTTP error %d", statusCode)
}
