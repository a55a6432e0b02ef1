package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves the user via [service.AuthService.Authorize] and, on success,
// stores the user in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// Every rejection gets the same response: 401 Unauthorized with
// {"detail": "Not authenticated"} and "WWW-Authenticate: Bearer". The reason
// is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthenticated(w)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeUnauthenticated(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authorize(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("bearer token rejected")
			writeUnauthenticated(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteDetail(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. It returns the following
// sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the scheme is not "Bearer" or the
//     header has more than two space-separated parts.
//   - [ErrEmptyToken] if the token part is missing or empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	if !found || tokenString == "" {
		return "", ErrEmptyToken
	}
	if strings.Contains(tokenString, " ") {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
