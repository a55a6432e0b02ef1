package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bearer(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer token")
	return req
}

var (
	alice = models.User{UserID: 1, Name: "Alice", Email: "alice@example.com", Age: 30, City: "New York"}
	bob   = models.User{UserID: 2, Name: "Bob", Email: "bob@example.com", Age: 25, City: "Boston"}
)

func TestUsers_RequireBearerToken(t *testing.T) {
	router := newTestRouter(t, allowAll(), &mockUserService{}, config.StructuredConfig{})

	requests := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/users/list", nil),
		httptest.NewRequest(http.MethodGet, "/users/list/?city=Boston", nil),
		httptest.NewRequest(http.MethodGet, "/users/id/1", nil),
		httptest.NewRequest(http.MethodPost, "/users/create", strings.NewReader(`{}`)),
		httptest.NewRequest(http.MethodPut, "/users/edit/1", strings.NewReader(`{}`)),
		httptest.NewRequest(http.MethodDelete, "/users/delete/1", nil),
	}

	for _, req := range requests {
		t.Run(req.Method+" "+req.URL.Path, func(t *testing.T) {
			rr := serve(router, req)

			require.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			assert.Equal(t, "Not authenticated", decodeBody[models.ErrorResponse](t, rr.Body).Detail)
		})
	}
}

func TestListUsers(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{alice, bob}, nil
		},
	}
	router := newTestRouter(t, allowAll(), users, config.StructuredConfig{})

	rr := serve(router, bearer(httptest.NewRequest(http.MethodGet, "/users/list", nil)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []models.User{alice, bob}, decodeBody[[]models.User](t, rr.Body))
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) { return []models.User{}, nil },
	}
	router := newTestRouter(t, allowAll(), users, config.StructuredConfig{})

	rr := serve(router, bearer(httptest.NewRequest(http.MethodGet, "/users/list", nil)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListUsersByCity(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		findErr    error
		wantStatus int
		wantDetail string
	}{
		{name: "trailing slash", target: "/users/list/?city=Boston", wantStatus: http.StatusOK},
		{name: "no trailing slash", target: "/users/list?city=Boston", wantStatus: http.StatusOK},
		{name: "nobody there", target: "/users/list/?city=Boston", findErr: service.ErrNoUsersInCity, wantStatus: http.StatusNotFound, wantDetail: "No users found in the specified city"},
		{name: "empty city", target: "/users/list/?city=", findErr: errValidation("city"), wantStatus: http.StatusUnprocessableEntity, wantDetail: "Validation error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				findUsersByCityFn: func(_ context.Context, city string) ([]models.User, error) {
					if tt.findErr != nil {
						return nil, tt.findErr
					}
					assert.Equal(t, "Boston", city)
					return []models.User{bob}, nil
				},
			}
			router := newTestRouter(t, allowAll(), users, config.StructuredConfig{})

			rr := serve(router, bearer(httptest.NewRequest(http.MethodGet, tt.target, nil)))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantDetail == "" {
				assert.Equal(t, []models.User{bob}, decodeBody[[]models.User](t, rr.Body))
				return
			}
			assert.Equal(t, tt.wantDetail, decodeBody[models.ErrorResponse](t, rr.Body).Detail)
		})
	}
}

func TestGetUser(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantDetail string
		wantField  string
	}{
		{name: "found", target: "/users/id/1", wantStatus: http.StatusOK},
		{name: "missing", target: "/users/id/99", wantStatus: http.StatusNotFound, wantDetail: "User not found"},
		{name: "not a number", target: "/users/id/abc", wantStatus: http.StatusUnprocessableEntity, wantDetail: "Validation error", wantField: "user_id"},
		{name: "not positive", target: "/users/id/0", wantStatus: http.StatusUnprocessableEntity, wantDetail: "Validation error", wantField: "user_id"},
	}

	users := &mockUserService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			switch {
			case userID <= 0:
				return models.User{}, errValidation("user_id")
			case userID == 1:
				return alice, nil
			default:
				return models.User{}, service.ErrUserNotFound
			}
		},
	}
	router := newTestRouter(t, allowAll(), users, config.StructuredConfig{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(router, bearer(httptest.NewRequest(http.MethodGet, tt.target, nil)))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, alice, decodeBody[models.User](t, rr.Body))
				return
			}

			body := decodeBody[models.ErrorResponse](t, rr.Body)
			assert.Equal(t, tt.wantDetail, body.Detail)
			if tt.wantField != "" {
				require.Len(t, body.Errors, 1)
				assert.Equal(t, tt.wantField, body.Errors[0].Field)
			}
		})
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		users := &mockUserService{
			createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
				current, ok := utils.GetUserFromContext(ctx)
				require.True(t, ok)
				assert.Equal(t, authorizedUser, current)

				user.UserID = 5
				return user, nil
			},
		}
		router := newTestRouter(t, allowAll(), users, config.StructuredConfig{})

		req := bearer(jsonRequest(http.MethodPost, "/users/create", `{"name":"Dave","age":40,"city":"Denver"}`))
		rr := serve(router, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, models.User{UserID: 5, Name: "Dave", Age: 40, City: "Denver"}, decodeBody[models.User](t, rr.Body))
	})

	t.Run("malformed body", func(t *testing.T) {
		router := newTestRouter(t, allowAll(), &mockUserService{}, config.StructuredConfig{})

		rr := serve(router, bearer(jsonRequest(http.MethodPost, "/users/create", `{"name":`)))

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid data provided", decodeBody[models.ErrorResponse](t, rr.Body).Detail)
	})

	t.Run("duplicate", func(t *testing.T) {
		users := &mockUserService{
			createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, service.ErrDuplicateIdentity
			},
		}
		router := newTestRouter(t, allowAll(), users, config.StructuredConfig{})

		rr := serve(router, bearer(jsonRequest(http.MethodPost, "/users/create", `{"name":"Alice","age":1,"city":"X"}`)))

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Username already exists", decodeBody[models.ErrorResponse](t, rr.Body).Detail)
	})
}

func TestEditUser(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		updateErr  error
		wantStatus int
	}{
		{name: "updated", target: "/users/edit/1", body: `{"name":"Alice","age":31,"city":"Boston"}`, wantStatus: http.StatusNoContent},
		{name: "missing", target: "/users/edit/9", body: `{"name":"Alice","age":31,"city":"Boston"}`, updateErr: service.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid body", target: "/users/edit/1", body: `{"name":"","age":31,"city":"Boston"}`, updateErr: errValidation("name"), wantStatus: http.StatusUnprocessableEntity},
		{name: "bad id", target: "/users/edit/x", body: `{}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "malformed", target: "/users/edit/1", body: `nope`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				updateUserFn: func(_ context.Context, userID int64, user models.User) error {
					if tt.updateErr != nil {
						return tt.updateErr
					}
					assert.Equal(t, int64(1), userID)
					assert.Equal(t, 31, user.Age)
					return nil
				},
			}
			router := newTestRouter(t, allowAll(), users, config.StructuredConfig{})

			rr := serve(router, bearer(jsonRequest(http.MethodPut, tt.target, tt.body)))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func TestDeleteUser(t *testing.T) {
	var deleted []int64
	users := &mockUserService{
		deleteUserFn: func(_ context.Context, userID int64) error {
			if userID != 1 {
				return service.ErrUserNotFound
			}
			deleted = append(deleted, userID)
			return nil
		},
	}
	router := newTestRouter(t, allowAll(), users, config.StructuredConfig{})

	rr := serve(router, bearer(httptest.NewRequest(http.MethodDelete, "/users/delete/1", nil)))
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, []int64{1}, deleted)

	rr = serve(router, bearer(httptest.NewRequest(http.MethodDelete, "/users/delete/2", nil)))
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", decodeBody[models.ErrorResponse](t, rr.Body).Detail)
}

func TestUsers_InternalErrorIsNotLeaked(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return nil, errors.New("disk on fire")
		},
	}
	router := newTestRouter(t, allowAll(), users, config.StructuredConfig{})

	rr := serve(router, bearer(httptest.NewRequest(http.MethodGet, "/users/list", nil)))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal Server Error", decodeBody[models.ErrorResponse](t, rr.Body).Detail)
	assert.NotContains(t, rr.Body.String(), "disk")
}
