package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-users-api/internal/adapter"
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

// Supported commands.
const (
	CommandLogin    = "login"
	CommandVerify   = "verify"
	CommandList     = "list"
	CommandGet      = "get"
	CommandRegister = "register"
	CommandVersion  = "version"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArgument  = errors.New("missing argument")
	ErrMissingUsername  = errors.New("username and password are required")
	errInvalidUserIDArg = errors.New("user id must be an integer")
)

type App struct {
	adapter adapter.ServerAdapter
	cfg     *config.ClientConfig
	out     io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || cfg == nil {
		return nil, errors.New("client app requires an adapter and a config")
	}

	return &App{adapter: serverAdapter, cfg: cfg, out: out, logger: logger}, nil
}

// Run executes the configured command and prints its result as JSON.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug().Str("command", a.cfg.Command).Strs("args", a.cfg.Args).Msg("running client command")

	result, err := a.dispatch(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", a.cfg.Command, err)
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func (a *App) dispatch(ctx context.Context) (any, error) {
	switch a.cfg.Command {
	case CommandLogin:
		return a.login(ctx)

	case CommandVerify:
		token := a.arg(0)
		if token == "" {
			loggedIn, err := a.login(ctx)
			if err != nil {
				return nil, err
			}
			token = loggedIn.AccessToken
		}
		return a.adapter.VerifyToken(ctx, token)

	case CommandList:
		if _, err := a.login(ctx); err != nil {
			return nil, err
		}
		if city := a.arg(0); city != "" {
			return a.adapter.ListUsersByCity(ctx, city)
		}
		return a.adapter.ListUsers(ctx)

	case CommandGet:
		userID, err := strconv.ParseInt(a.arg(0), 10, 64)
		if err != nil {
			return nil, errInvalidUserIDArg
		}
		if _, err = a.login(ctx); err != nil {
			return nil, err
		}
		return a.adapter.GetUser(ctx, userID)

	case CommandRegister:
		return a.register(ctx)

	case CommandVersion:
		return a.adapter.Version(ctx)

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, a.cfg.Command)
	}
}

func (a *App) login(ctx context.Context) (models.TokenResponse, error) {
	if a.cfg.Username == "" || a.cfg.Password == "" {
		return models.TokenResponse{}, ErrMissingUsername
	}
	return a.adapter.Login(ctx, a.cfg.Username, a.cfg.Password)
}

// register takes the city and optionally the age and email as arguments.
// The name and password are the configured credentials.
func (a *App) register(ctx context.Context) (models.User, error) {
	if a.cfg.Username == "" || a.cfg.Password == "" {
		return models.User{}, ErrMissingUsername
	}
	city := a.arg(0)
	if city == "" {
		return models.User{}, fmt.Errorf("%w: city", ErrMissingArgument)
	}

	request := models.RegisterRequest{
		Name:     a.cfg.Username,
		Password: a.cfg.Password,
		City:     city,
		Email:    a.arg(2),
	}
	if rawAge := a.arg(1); rawAge != "" {
		age, err := strconv.Atoi(rawAge)
		if err != nil {
			return models.User{}, fmt.Errorf("age must be an integer: %w", err)
		}
		request.Age = age
	}

	return a.adapter.Register(ctx, request)
}

func (a *App) arg(i int) string {
	if i < len(a.cfg.Args) {
		return a.cfg.Args[i]
	}
	return ""
}
