package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

// listUsers returns every user. A city query parameter switches to the
// city filter, so /users/list?city=X and /users/list/?city=X behave alike.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("city") {
		h.listUsersByCity(w, r)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) listUsersByCity(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.FindUsersByCity(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(w, r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if current, ok := utils.GetUserFromContext(r.Context()); ok {
		logger.FromRequest(r).Debug().Str("by", current.Name).Int64("id", created.UserID).Msg("user created")
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var user models.User
	if err = decodeJSON(w, r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.UpdateUser(r.Context(), userID, user); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
