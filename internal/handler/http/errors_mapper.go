package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
)

type errorResponse struct {
	status int
	detail string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgIncorrectUsernameOrPassword},
	service.ErrInvalidToken:       {http.StatusUnauthorized, app.MsgInvalidToken},
	service.ErrUnauthenticated:    {http.StatusUnauthorized, app.MsgNotAuthenticated},
	service.ErrDuplicateIdentity:  {http.StatusBadRequest, app.MsgUsernameAlreadyExists},
	service.ErrUserNotFound:       {http.StatusNotFound, app.MsgUserNotFound},
	service.ErrNoUsersInCity:      {http.StatusNotFound, app.MsgNoUsersInCity},

	validators.ErrValidation: {http.StatusUnprocessableEntity, app.MsgValidationError},
	ErrInvalidRequestBody:    {http.StatusBadRequest, app.MsgInvalidDataProvided},
}

func responseFromError(err error) errorResponse {
	for target, response := range errorStatusMap {
		if errors.Is(err, target) {
			return response
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError maps err to a status and a fixed detail message. Internal
// errors are logged, never echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	response := responseFromError(err)

	if response.status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", response.status).Msg("request rejected")
	}

	if response.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	body := models.ErrorResponse{
		Detail: response.detail,
		Errors: validators.FieldErrors(err),
	}
	if _, writeErr := utils.WriteJSON(w, body, response.status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
