package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The base URL is taken from cfg.HTTPAddress; a missing
// scheme defaults to http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login posts the credentials as an urlencoded form to POST /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&token).
		Post("/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("username", username).Msg("logged in")
	return token, nil
}

// Register posts request as JSON to POST /auth/register and returns the
// created user.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&registered).
		Post("/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return registered.User, nil
}

func (h *httpServerAdapter) VerifyToken(ctx context.Context, token string) (models.VerifyTokenResponse, error) {
	var verified models.VerifyTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("token", token).
		SetResult(&verified).
		Get("/auth/verify-token")
	if err != nil {
		return models.VerifyTokenResponse{}, fmt.Errorf("verify token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerifyTokenResponse{}, err
	}

	return verified, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&users).
		Get("/users/list")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpServerAdapter) ListUsersByCity(ctx context.Context, city string) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).
		SetQueryParam("city", city).
		SetResult(&users).
		Get("/users/list/")
	if err != nil {
		return nil, fmt.Errorf("list users by city request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetPathParam("user_id", strconv.FormatInt(userID, 10)).
		SetResult(&user).
		Get("/users/id/{user_id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
