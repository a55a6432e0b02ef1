package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

// login exchanges the form fields username and password for a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if isJSON(r) {
		if err := decodeJSON(w, r, &request); err != nil {
			writeError(w, r, err)
			return
		}
	} else {
		if err := parseForm(w, r); err != nil {
			writeError(w, r, err)
			return
		}
		request.Username = r.PostForm.Get("username")
		request.Password = r.PostForm.Get("password")
	}

	if request.Username == "" || request.Password == "" {
		log.Debug().Msg("login without username or password")
		writeError(w, r, ErrInvalidRequestBody)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request.Username, request.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

// verifyToken reports the subject of the token passed as ?token=.
func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.services.AuthService.ParseToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.VerifyTokenResponse{Username: token.Subject, Valid: true}, http.StatusOK)
}

// register creates a user with a password. The body is either JSON or a form
// with the fields name, email, password, age and city.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	request, err := registerRequestFrom(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message: app.MsgUserRegistered,
		User:    registeredUser,
	}, http.StatusCreated)
}

func registerRequestFrom(w http.ResponseWriter, r *http.Request) (models.RegisterRequest, error) {
	var request models.RegisterRequest
	if isJSON(r) {
		err := decodeJSON(w, r, &request)
		return request, err
	}

	if err := parseForm(w, r); err != nil {
		return request, err
	}

	request.Name = r.PostForm.Get("name")
	request.Email = r.PostForm.Get("email")
	request.Password = r.PostForm.Get("password")
	request.City = r.PostForm.Get("city")

	if rawAge := r.PostForm.Get("age"); rawAge != "" {
		age, err := intParam("age", rawAge)
		if err != nil {
			return request, err
		}
		request.Age = int(age)
	}

	return request, nil
}

// hashPassword is a development helper returning the stored form of a password.
func (h *Handler) hashPassword(w http.ResponseWriter, r *http.Request) {
	var request models.HashPasswordRequest
	if isJSON(r) {
		if err := decodeJSON(w, r, &request); err != nil {
			writeError(w, r, err)
			return
		}
	} else {
		if err := parseForm(w, r); err != nil {
			writeError(w, r, err)
			return
		}
		request.Password = r.PostForm.Get("password")
	}

	if request.Password == "" {
		writeError(w, r, ErrInvalidRequestBody)
		return
	}

	hash, err := h.services.AuthService.HashPassword(r.Context(), request.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.HashPasswordResponse{HashedPassword: hash}, http.StatusOK)
}
