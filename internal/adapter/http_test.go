// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "  http://localhost:8080/ ", want: "http://localhost:8080"},
		{raw: "https://api.example.com", want: "https://api.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, errEmptyAddress)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "testuser", r.PostForm.Get("username"))
		assert.Equal(t, "testpass123", r.PostForm.Get("password"))

		writeJSON(t, w, http.StatusOK, models.TokenResponse{AccessToken: "jwt", TokenType: "bearer"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), "testuser", "testpass123")

	require.NoError(t, err)
	assert.Equal(t, "jwt", token.AccessToken)
	assert.Equal(t, "jwt", a.Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Incorrect username or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "testuser", "wrongpassword")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "Incorrect username or password")
	assert.Empty(t, a.Token())
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	request := models.RegisterRequest{Name: "alice", Password: "secret", Age: 28, City: "Boston"}

	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
	}{
		{
			name:   "created",
			status: http.StatusCreated,
			body:   models.RegisterResponse{Message: "User registered successfully", User: models.User{UserID: 5, Name: "alice", Age: 28, City: "Boston"}},
		},
		{
			name:    "duplicate",
			status:  http.StatusBadRequest,
			body:    models.ErrorResponse{Detail: "Username already exists"},
			wantErr: ErrBadRequest,
		},
		{
			name:    "validation",
			status:  http.StatusUnprocessableEntity,
			body:    models.ErrorResponse{Detail: "Validation error", Errors: []models.FieldError{{Field: "city", Message: "is required"}}},
			wantErr: ErrValidation,
		},
		{
			name:    "server failure",
			status:  http.StatusInternalServerError,
			body:    models.ErrorResponse{Detail: "Internal Server Error"},
			wantErr: ErrInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/register", r.URL.Path)
				var got models.RegisterRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, request, got)

				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			user, err := newTestAdapter(t, srv.URL).Register(context.Background(), request)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), user.UserID)
		})
	}
}

func TestRegister_ValidationFieldsInError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.ErrorResponse{
			Detail: "Validation error",
			Errors: []models.FieldError{{Field: "age", Message: "must be 150 or less"}},
		})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{})

	assert.EqualError(t, err, "validation failed: Validation error; age must be 150 or less")
}

// ── VerifyToken ─────────────────────────────────────────────────────────────

func TestVerifyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify-token", r.URL.Path)
		if r.URL.Query().Get("token") != "good" {
			writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid token"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.VerifyTokenResponse{Username: "alice", Valid: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	got, err := a.VerifyToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, models.VerifyTokenResponse{Username: "alice", Valid: true}, got)

	_, err = a.VerifyToken(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── users ───────────────────────────────────────────────────────────────────

func TestAuthenticatedRequests(t *testing.T) {
	alice := models.User{UserID: 1, Name: "Alice", Age: 30, City: "New York"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer jwt" {
			writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Not authenticated"})
			return
		}

		switch {
		case r.URL.Path == "/users/list":
			writeJSON(t, w, http.StatusOK, []models.User{alice})
		case r.URL.Path == "/users/list/" && r.URL.Query().Get("city") == "New York":
			writeJSON(t, w, http.StatusOK, []models.User{alice})
		case r.URL.Path == "/users/list/":
			writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Detail: "No users found in the specified city"})
		case r.URL.Path == "/users/id/1":
			writeJSON(t, w, http.StatusOK, alice)
		default:
			writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Detail: "User not found"})
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	a := newTestAdapter(t, srv.URL)

	_, err := a.ListUsers(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken("  jwt ")
	assert.Equal(t, "jwt", a.Token())

	users, err := a.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{alice}, users)

	users, err = a.ListUsersByCity(ctx, "New York")
	require.NoError(t, err)
	assert.Equal(t, []models.User{alice}, users)

	_, err = a.ListUsersByCity(ctx, "Nowhere")
	assert.ErrorIs(t, err, ErrNotFound)

	user, err := a.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, alice, user)

	_, err = a.GetUser(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "User not found")
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"))
	}))
	defer srv.Close()

	info, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "abc123", info.Commit)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "plain text body", status: http.StatusBadRequest, body: "broken", wantErr: ErrBadRequest, wantMessage: "bad request: broken"},
		{name: "empty body", status: http.StatusNotFound, wantErr: ErrNotFound, wantMessage: "not found: Not Found"},
		{name: "unmapped status", status: http.StatusTeapot, body: `{"detail":"short and stout"}`, wantMessage: "http 418: short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := newTestAdapter(t, srv.URL).client.R().Get("/")
			require.NoError(t, err)

			err = mapHTTPError(resp)
			if tt.wantMessage == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantMessage)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
