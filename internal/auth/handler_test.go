package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/logging"
)

type noopLimiter struct{}

func (noopLimiter) CheckIPRateLimit(context.Context, string, string) (bool, error) { return false, nil }
func (noopLimiter) RecordIPRequest(context.Context, string, string) error          { return nil }

type blockedLimiter struct{}

func (blockedLimiter) CheckIPRateLimit(context.Context, string, string) (bool, error) {
	return true, nil
}
func (blockedLimiter) RecordIPRequest(context.Context, string, string) error { return nil }

type memUploadStore struct{}

func (memUploadStore) Save(string, io.Reader) (string, error) { return "uploads/avatar.png", nil }

func newTestHandler(t *testing.T, limiter RateLimiter) *Handler {
	t.Helper()

	svc, _ := newTestService()
	tokens, err := NewPasetoService(testKey)
	require.NoError(t, err)

	return NewHandler(svc, tokens, limiter, memUploadStore{}, logging.NewLogger(true), 15*time.Minute)
}

func registerForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func doRegister(t *testing.T, h *Handler, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := registerForm(t, fields)
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Register(rec, req)
	return rec
}

func doLogin(t *testing.T, h *Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(LoginRequest{Email: email, Password: password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestHandler_RegisterLoginFlow(t *testing.T) {
	h := newTestHandler(t, noopLimiter{})

	// Register alice
	rec := doRegister(t, h, map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.UserID)

	// Login with the right password
	rec = doLogin(t, h, "alice@x.com", "secret1")
	require.Equal(t, http.StatusOK, rec.Code)

	var loggedIn LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))
	assert.Equal(t, registered.UserID, loggedIn.UserID)
	assert.Equal(t, "alice", loggedIn.Username)
	assert.NotEmpty(t, loggedIn.Token)

	// The password hash never appears in any response
	assert.NotContains(t, rec.Body.String(), "secret1")
	assert.NotContains(t, rec.Body.String(), "argon2id")

	// Login with the wrong password is a generic 401
	rec = doLogin(t, h, "alice@x.com", "wrong-password")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

func TestHandler_Register_DuplicateConflict(t *testing.T) {
	h := newTestHandler(t, noopLimiter{})

	fields := map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "secret1",
	}

	rec := doRegister(t, h, fields)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRegister(t, h, fields)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Register_Validation(t *testing.T) {
	h := newTestHandler(t, noopLimiter{})

	rec := doRegister(t, h, map[string]string{
		"username": "ab",
		"email":    "alice@x.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRegister(t, h, map[string]string{
		"username": "alice",
		"email":    "nope",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_RateLimited(t *testing.T) {
	h := newTestHandler(t, blockedLimiter{})

	rec := doLogin(t, h, "alice@x.com", "secret1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = doRegister(t, h, map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestMiddleware_RequireAuth(t *testing.T) {
	tokens, err := NewPasetoService(testKey)
	require.NoError(t, err)
	mw := NewMiddleware(tokens)

	h := newTestHandler(t, noopLimiter{})
	protected := mw.RequireAuth(http.HandlerFunc(h.Me))

	// No token
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token from a real login
	rec = doRegister(t, h, map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doLogin(t, h, "alice@x.com", "secret1")
	require.Equal(t, http.StatusOK, rec.Code)

	var loggedIn LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))

	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+loggedIn.Token)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), loggedIn.UserID.String())
	assert.Contains(t, rec.Body.String(), "alice")
}
