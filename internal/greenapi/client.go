// Package greenapi is the HTTP client for the Green API WhatsApp provider.
// Each instance is addressed by {instanceId, token}; the API host is either
// stored per instance or derived from a fixed-length prefix of the id.
package greenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/waselhq/wasel/internal/config"
)

// Outcome classifies a provider interaction for callers that must not
// treat expected provider failures as Go errors.
type Outcome string

const (
	OutcomeConnected    Outcome = "connected"
	OutcomeUnauthorized Outcome = "unauthorized"
	OutcomeNotFound     Outcome = "not_found"
	OutcomeTimeout      Outcome = "timeout"
	OutcomeError        Outcome = "error"
)

// Credentials address one provider instance.
type Credentials struct {
	InstanceID string
	Token      string
	// APIURL overrides the derived host when set.
	APIURL string
}

const derivedHostPrefixLen = 4

// endpoint builds the method URL. The per-instance APIURL wins, then the
// configured provider host; with neither, the host is derived from the
// first four characters of the instance id, matching the provider's
// sharded subdomain scheme.
func (c Credentials) endpoint(fallbackBase, method string) string {
	base := strings.TrimSuffix(c.APIURL, "/")
	if base == "" {
		base = strings.TrimSuffix(fallbackBase, "/")
	}
	if base == "" {
		prefix := c.InstanceID
		if len(prefix) > derivedHostPrefixLen {
			prefix = prefix[:derivedHostPrefixLen]
		}
		base = fmt.Sprintf("https://%s.api.greenapi.com", prefix)
	}
	return fmt.Sprintf("%s/waInstance%s/%s/%s", base, c.InstanceID, method, c.Token)
}

// ProviderError is a classified failure talking to the provider.
type ProviderError struct {
	Outcome    Outcome
	StatusCode int
	Reason     string
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s (status %d): %s", e.Outcome, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("provider %s: %s", e.Outcome, e.Reason)
}

// StateCheck is the structured result of a connection test. It is always
// returned; unauthorized, unknown-instance and timeout are results here,
// not errors.
type StateCheck struct {
	Outcome     Outcome `json:"outcome"`
	State       string  `json:"state,omitempty"`
	PhoneNumber string  `json:"phone_number,omitempty"`
	Message     string  `json:"message"`
}

// Connected reports whether the instance is authorized on the provider.
func (s *StateCheck) Connected() bool {
	return s.Outcome == OutcomeConnected
}

// Client sends WhatsApp messages and queries instance state.
type Client interface {
	SendText(ctx context.Context, creds Credentials, phone, message string) error
	SendImage(ctx context.Context, creds Credentials, phone, imageURL, caption string) error
	GetState(ctx context.Context, creds Credentials) *StateCheck
	BreakerStatus() (state BreakerState, requests, failures uint32)
}

type client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewClient(cfg *config.ProviderConfig, logger *zap.Logger) Client {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		baseURL:        cfg.BaseURL,
		logger:         logger,
		circuitBreaker: NewCircuitBreaker(&cfg.CircuitBreaker, logger),
	}
}

type sendMessageRequest struct {
	ChatID  string `json:"chatId"`
	Message string `json:"message"`
}

type sendFileRequest struct {
	ChatID   string `json:"chatId"`
	URLFile  string `json:"urlFile"`
	FileName string `json:"fileName"`
	Caption  string `json:"caption"`
}

type sendResponse struct {
	IDMessage string `json:"idMessage"`
}

type stateResponse struct {
	StateInstance string `json:"stateInstance"`
	PhoneNumber   string `json:"phoneNumber"`
}

// chatID formats a phone number as a provider chat id: digits only plus
// the personal-chat suffix.
func chatID(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String() + "@c.us"
}

// SendText delivers a plain text message to one recipient.
func (c *client) SendText(ctx context.Context, creds Credentials, phone, message string) error {
	body := sendMessageRequest{
		ChatID:  chatID(phone),
		Message: message,
	}
	return c.post(ctx, creds.endpoint(c.baseURL, "sendMessage"), body)
}

// SendImage delivers an image by URL with an optional caption.
func (c *client) SendImage(ctx context.Context, creds Credentials, phone, imageURL, caption string) error {
	body := sendFileRequest{
		ChatID:   chatID(phone),
		URLFile:  imageURL,
		FileName: "campaign.jpg",
		Caption:  caption,
	}
	return c.post(ctx, creds.endpoint(c.baseURL, "sendFileByUrl"), body)
}

func (c *client) post(ctx context.Context, url string, body interface{}) error {
	return c.circuitBreaker.Execute(ctx, func() error {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return classifyTransportError(err)
		}
		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil {
				c.logger.Warn("Failed to close response body", zap.Error(closeErr))
			}
		}()

		if outcome := classifyStatus(resp.StatusCode); outcome != OutcomeConnected {
			return &ProviderError{
				Outcome:    outcome,
				StatusCode: resp.StatusCode,
				Reason:     http.StatusText(resp.StatusCode),
			}
		}

		var sendResp sendResponse
		if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
			// Some provider shards return an empty body on success.
			c.logger.Debug("Provider response had no message id", zap.Error(err))
		}

		return nil
	})
}

// GetState queries the provider's instance state endpoint and classifies
// the outcome. It never returns a Go error for expected provider failures.
func (c *client) GetState(ctx context.Context, creds Credentials) *StateCheck {
	var check *StateCheck

	err := c.circuitBreaker.Execute(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, creds.endpoint(c.baseURL, "getStateInstance"), nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return classifyTransportError(err)
		}
		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil {
				c.logger.Warn("Failed to close response body", zap.Error(closeErr))
			}
		}()

		if outcome := classifyStatus(resp.StatusCode); outcome != OutcomeConnected {
			return &ProviderError{
				Outcome:    outcome,
				StatusCode: resp.StatusCode,
				Reason:     http.StatusText(resp.StatusCode),
			}
		}

		var stateResp stateResponse
		if err := json.NewDecoder(resp.Body).Decode(&stateResp); err != nil {
			return fmt.Errorf("failed to decode state response: %w", err)
		}

		check = &StateCheck{
			State:       stateResp.StateInstance,
			PhoneNumber: stateResp.PhoneNumber,
		}
		if stateResp.StateInstance == "authorized" {
			check.Outcome = OutcomeConnected
			check.Message = "Connection successful"
		} else {
			check.Outcome = OutcomeError
			check.Message = fmt.Sprintf("Instance is not authorized (state: %s)", stateResp.StateInstance)
		}
		return nil
	})

	if err != nil {
		var provErr *ProviderError
		if errors.As(err, &provErr) {
			return &StateCheck{
				Outcome: provErr.Outcome,
				Message: stateMessage(provErr.Outcome),
			}
		}
		return &StateCheck{
			Outcome: OutcomeError,
			Message: err.Error(),
		}
	}

	return check
}

// BreakerStatus exposes circuit breaker state for health reporting.
func (c *client) BreakerStatus() (BreakerState, uint32, uint32) {
	requests, failures := c.circuitBreaker.Counts()
	return c.circuitBreaker.State(), requests, failures
}

func classifyStatus(statusCode int) Outcome {
	switch {
	case statusCode == http.StatusOK || statusCode == http.StatusCreated || statusCode == http.StatusAccepted:
		return OutcomeConnected
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return OutcomeUnauthorized
	case statusCode == http.StatusNotFound:
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ProviderError{Outcome: OutcomeTimeout, Reason: "request timed out"}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ProviderError{Outcome: OutcomeTimeout, Reason: "request timed out"}
	}
	return &ProviderError{Outcome: OutcomeError, Reason: err.Error()}
}

func stateMessage(outcome Outcome) string {
	switch outcome {
	case OutcomeUnauthorized:
		return "Credentials are invalid"
	case OutcomeNotFound:
		return "Instance unknown to provider"
	case OutcomeTimeout:
		return "Provider did not respond in time"
	default:
		return "Failed to connect to instance"
	}
}
