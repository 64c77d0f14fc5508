// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/MKhiriev/inventory-master/internal/service"
	"github.com/MKhiriev/inventory-master/internal/utils"
	"github.com/MKhiriev/inventory-master/internal/workers"
	"github.com/MKhiriev/inventory-master/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loginForm builds a form-encoded request body for the token endpoint.
func loginForm(username, password string) *strings.Reader {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	return strings.NewReader(form.Encode())
}

func postForm(path string, body *strings.Reader) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ─────────────────────────────────────────────
// POST /token
// ─────────────────────────────────────────────

func TestToken_Success(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, username, password string) (models.User, error) {
			assert.Equal(t, "johndoe", username)
			assert.Equal(t, "secret", password)
			return models.User{UserID: 1, Username: "johndoe"}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, "johndoe", user.Username)
			return models.Token{SignedString: "signed-jwt"}, nil
		},
	}
	h := newTestHandler(t, auth, &mockItemService{})

	rec := httptest.NewRecorder()
	h.token(rec, postForm("/token", loginForm("johndoe", "secret")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload models.AccessToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "signed-jwt", payload.AccessToken)
	assert.Equal(t, "bearer", payload.TokenType)
}

func TestToken_BadCredentials(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, auth, &mockItemService{})

	tests := []struct {
		name string
		body *strings.Reader
	}{
		{name: "unknown user or wrong password", body: loginForm("ghost", "whatever")},
		{name: "missing password", body: loginForm("johndoe", "")},
		{name: "missing username", body: loginForm("", "secret")},
		{name: "empty body", body: strings.NewReader("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.token(rec, postForm("/token", tt.body))

			requireEnvelope(t, rec, "/token", msgBadCredentials, http.StatusBadRequest)
		})
	}
}

func TestToken_TokenCreationFailure(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{Username: "johndoe"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHandler(t, auth, &mockItemService{})

	rec := httptest.NewRecorder()
	h.token(rec, postForm("/token", loginForm("johndoe", "secret")))

	requireEnvelope(t, rec, "/token", http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func TestToken_StorageFailureIsNotACredentialError(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}
	h := newTestHandler(t, auth, &mockItemService{})

	rec := httptest.NewRecorder()
	h.token(rec, postForm("/token", loginForm("johndoe", "secret")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.NotEqual(t, msgBadCredentials, envelope.Message)
}

// ─────────────────────────────────────────────
// POST /signup/
// ─────────────────────────────────────────────

// recordingMailer captures welcome-email deliveries made by the worker.
type recordingMailer struct {
	mu     sync.Mutex
	emails []string
}

func (m *recordingMailer) SendWelcomeEmail(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails = append(m.emails, email)
	return nil
}

func (m *recordingMailer) sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.emails...)
}

func TestSignup_AcceptedAndMailScheduled(t *testing.T) {
	mailer := &recordingMailer{}
	mailWorker := workers.NewMailWorker(mailer, 8, logger.Nop())
	mailWorker.Run()

	h := NewHandler(&service.Services{}, mailWorker, logger.Nop())

	form := url.Values{}
	form.Set("email", "alice@example.com")
	rec := httptest.NewRecorder()
	h.signup(rec, postForm("/signup/", strings.NewReader(form.Encode())))

	require.Equal(t, http.StatusAccepted, rec.Code)

	var payload models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Signup successful! Check your email in a few moments.", payload.Message)

	// Stop drains the queue
	mailWorker.Stop()
	assert.Equal(t, []string{"alice@example.com"}, mailer.sent())
}

func TestSignup_MissingEmail(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockItemService{})

	rec := httptest.NewRecorder()
	h.signup(rec, postForm("/signup/", strings.NewReader("")))

	requireEnvelope(t, rec, "/signup/", "Email is required", http.StatusBadRequest)
}

// A saturated mail queue must not change the signup response.
func TestSignup_QueueFullStillAccepted(t *testing.T) {
	// capacity 1, worker not running, so the second signup cannot schedule
	mailWorker := workers.NewMailWorker(&recordingMailer{}, 1, logger.Nop())
	h := NewHandler(&service.Services{}, mailWorker, logger.Nop())

	for i := 0; i < 2; i++ {
		form := url.Values{}
		form.Set("email", "alice@example.com")
		rec := httptest.NewRecorder()
		h.signup(rec, postForm("/signup/", strings.NewReader(form.Encode())))

		assert.Equal(t, http.StatusAccepted, rec.Code)
	}
}

// ─────────────────────────────────────────────
// GET /users/me
// ─────────────────────────────────────────────

func TestUsersMe_ReturnsPrincipal(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockItemService{})

	principal := models.User{
		UserID:         1,
		Username:       "johndoe",
		Email:          "johndoe@example.com",
		FullName:       "John Doe",
		HashedPassword: "$2b$12$super-secret-hash",
	}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), utils.PrincipalCtxKey, principal))
	rec := httptest.NewRecorder()

	h.usersMe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "johndoe", payload["username"])
	assert.Equal(t, "John Doe", payload["full_name"])

	// credential material never serializes
	body := rec.Body.String()
	assert.NotContains(t, body, "super-secret-hash")
	assert.NotContains(t, body, "hashed_password")
}

func TestUsersMe_NoPrincipal(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockItemService{})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()

	h.usersMe(rec, req)

	requireEnvelope(t, rec, "/users/me", msgCouldNotValidate, http.StatusUnauthorized)
}

// ─────────────────────────────────────────────
// GET /
// ─────────────────────────────────────────────

func TestHello(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockItemService{})

	rec := httptest.NewRecorder()
	h.hello(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Hello World", payload["message"])
	assert.Equal(t, "2.0", payload["version"])
}
