package greenapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/waselhq/wasel/internal/config"
)

func testProviderConfig() *config.ProviderConfig {
	return &config.ProviderConfig{
		Timeout: 5,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      3,
			Interval:         60,
			Timeout:          30,
			FailureRatio:     0.6,
			ConsecutiveFails: 100,
		},
	}
}

func TestCredentials_Endpoint(t *testing.T) {
	tests := []struct {
		name     string
		creds    Credentials
		fallback string
		want     string
	}{
		{
			name:  "host derived from instance id prefix",
			creds: Credentials{InstanceID: "1101000001", Token: "abc"},
			want:  "https://1101.api.greenapi.com/waInstance1101000001/sendMessage/abc",
		},
		{
			name:  "short instance id used whole",
			creds: Credentials{InstanceID: "77", Token: "abc"},
			want:  "https://77.api.greenapi.com/waInstance77/sendMessage/abc",
		},
		{
			name:     "configured host beats derivation",
			creds:    Credentials{InstanceID: "1101000001", Token: "abc"},
			fallback: "https://api.green-api.com/",
			want:     "https://api.green-api.com/waInstance1101000001/sendMessage/abc",
		},
		{
			name:     "explicit api url wins over everything",
			creds:    Credentials{InstanceID: "1101000001", Token: "abc", APIURL: "https://media.example.com/"},
			fallback: "https://api.green-api.com",
			want:     "https://media.example.com/waInstance1101000001/sendMessage/abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.creds.endpoint(tt.fallback, "sendMessage"))
		})
	}
}

func TestChatID(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"12025550101", "12025550101@c.us"},
		{"+1 (202) 555-0101", "12025550101@c.us"},
		{"+201001234567", "201001234567@c.us"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, chatID(tt.phone))
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Outcome
	}{
		{http.StatusOK, OutcomeConnected},
		{http.StatusCreated, OutcomeConnected},
		{http.StatusAccepted, OutcomeConnected},
		{http.StatusUnauthorized, OutcomeUnauthorized},
		{http.StatusForbidden, OutcomeUnauthorized},
		{http.StatusNotFound, OutcomeNotFound},
		{http.StatusInternalServerError, OutcomeError},
		{http.StatusBadGateway, OutcomeError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyStatus(tt.status))
	}
}

func TestClient_SendText(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(sendResponse{IDMessage: "msg-1"})
	}))
	defer server.Close()

	c := NewClient(testProviderConfig(), zap.NewNop())
	creds := Credentials{InstanceID: "1101000001", Token: "secret", APIURL: server.URL}

	err := c.SendText(context.Background(), creds, "+1 (202) 555-0101", "hello")
	require.NoError(t, err)

	assert.Equal(t, "/waInstance1101000001/sendMessage/secret", gotPath)
	assert.Equal(t, "12025550101@c.us", gotBody.ChatID)
	assert.Equal(t, "hello", gotBody.Message)
}

func TestClient_SendText_ConfiguredBaseURL(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := testProviderConfig()
	cfg.BaseURL = server.URL
	c := NewClient(cfg, zap.NewNop())

	// No per-instance APIURL: the configured provider host carries the call.
	creds := Credentials{InstanceID: "1101000001", Token: "secret"}

	err := c.SendText(context.Background(), creds, "12025550101", "hello")
	require.NoError(t, err)
	assert.Equal(t, "/waInstance1101000001/sendMessage/secret", gotPath)
}

func TestClient_SendImage(t *testing.T) {
	var gotBody sendFileRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/waInstance1101000001/sendFileByUrl/secret", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		// Empty success body, as some provider shards return.
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewClient(testProviderConfig(), zap.NewNop())
	creds := Credentials{InstanceID: "1101000001", Token: "secret", APIURL: server.URL}

	err := c.SendImage(context.Background(), creds, "12025550101", "https://cdn.example.com/banner.jpg", "caption")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/banner.jpg", gotBody.URLFile)
	assert.Equal(t, "caption", gotBody.Caption)
}

func TestClient_SendText_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewClient(testProviderConfig(), zap.NewNop())
	creds := Credentials{InstanceID: "1101000001", Token: "wrong", APIURL: server.URL}

	err := c.SendText(context.Background(), creds, "12025550101", "hello")
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, OutcomeUnauthorized, provErr.Outcome)
	assert.Equal(t, http.StatusUnauthorized, provErr.StatusCode)
}

func TestClient_GetState(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantOutcome Outcome
		wantPhone   string
	}{
		{
			name: "authorized instance",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(stateResponse{
					StateInstance: "authorized",
					PhoneNumber:   "12025550101",
				})
			},
			wantOutcome: OutcomeConnected,
			wantPhone:   "12025550101",
		},
		{
			name: "instance pending qr scan",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(stateResponse{StateInstance: "notAuthorized"})
			},
			wantOutcome: OutcomeError,
		},
		{
			name: "bad credentials",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantOutcome: OutcomeUnauthorized,
		},
		{
			name: "unknown instance",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantOutcome: OutcomeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := NewClient(testProviderConfig(), zap.NewNop())
			creds := Credentials{InstanceID: "1101000001", Token: "secret", APIURL: server.URL}

			check := c.GetState(context.Background(), creds)
			require.NotNil(t, check)
			assert.Equal(t, tt.wantOutcome, check.Outcome)
			assert.Equal(t, tt.wantOutcome == OutcomeConnected, check.Connected())
			if tt.wantPhone != "" {
				assert.Equal(t, tt.wantPhone, check.PhoneNumber)
			}
			assert.NotEmpty(t, check.Message)
		})
	}
}

func TestClient_GetState_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	c := NewClient(testProviderConfig(), zap.NewNop())
	creds := Credentials{InstanceID: "1101000001", Token: "secret", APIURL: server.URL}

	check := c.GetState(context.Background(), creds)
	require.NotNil(t, check)
	assert.Equal(t, OutcomeError, check.Outcome)
	assert.False(t, check.Connected())
}

func TestClient_BreakerStatus(t *testing.T) {
	c := NewClient(testProviderConfig(), zap.NewNop())

	state, requests, failures := c.BreakerStatus()
	assert.Equal(t, BreakerClosed, state)
	assert.Zero(t, requests)
	assert.Zero(t, failures)
}
