package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, name, password string) (models.User, error)
	hashPasswordFn func(ctx context.Context, password string) (string, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authorizeFn    func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, name, password string) (models.User, error) {
	return m.loginFn(ctx, name, password)
}

func (m *mockAuthService) HashPassword(ctx context.Context, password string) (string, error) {
	return m.hashPasswordFn(ctx, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Authorize(ctx context.Context, tokenString string) (models.User, error) {
	return m.authorizeFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	listUsersFn       func(ctx context.Context) ([]models.User, error)
	getUserFn         func(ctx context.Context, userID int64) (models.User, error)
	findUsersByCityFn func(ctx context.Context, city string) ([]models.User, error)
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	updateUserFn      func(ctx context.Context, userID int64, user models.User) error
	deleteUserFn      func(ctx context.Context, userID int64) error
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) FindUsersByCity(ctx context.Context, city string) ([]models.User, error) {
	return m.findUsersByCityFn(ctx, city)
}

func (m *mockUserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID int64, user models.User) error {
	return m.updateUserFn(ctx, userID, user)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	buildInfo models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.buildInfo.Version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.buildInfo
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// authorizedUser is what allowAll resolves every token to.
var authorizedUser = models.User{UserID: 1, Name: "testuser", Age: 30, City: "Boston"}

// allowAll accepts any non-empty bearer token.
func allowAll() *mockAuthService {
	return &mockAuthService{
		authorizeFn: func(_ context.Context, token string) (models.User, error) {
			if token == "" {
				return models.User{}, service.ErrUnauthenticated
			}
			return authorizedUser, nil
		},
	}
}

// newTestRouter builds the full router over the given mocks.
func newTestRouter(t *testing.T, auth service.AuthService, users service.UserService, cfg config.StructuredConfig) http.Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		UserService:    users,
		AppInfoService: &mockAppInfoService{buildInfo: models.NewAppBuildInfo("test", "", "")},
	}
	return NewHandler(svcs, cfg, logger.Nop()).Init()
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// serve runs req through h and returns the recorder.
func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// decodeBody decodes a JSON response body into T.
func decodeBody[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}

// errValidation builds a validation failure on a single field.
func errValidation(field string) error {
	return &validators.ValidationError{Fields: []models.FieldError{{Field: field, Message: "is invalid"}}}
}

// teeBody copies the response body into sink while it is decoded.
func teeBody(resp *http.Response, sink io.Writer) io.Reader {
	return io.TeeReader(resp.Body, sink)
}
