package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/go-chi/chi/v5"
)

// maxBodySize limits request bodies read by the handlers.
const maxBodySize = 1 << 20

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// decodeJSON decodes the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// parseForm parses an urlencoded or multipart form body.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var err error
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxBodySize)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// intParam parses an integer path or form value named field. A value that is
// not an integer is reported as a validation error on that field.
func intParam(field, raw string) (int64, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &validators.ValidationError{Fields: []models.FieldError{
			{Field: field, Message: "must be an integer"},
		}}
	}
	return value, nil
}

func userIDParam(r *http.Request) (int64, error) {
	return intParam("user_id", chi.URLParam(r, "user_id"))
}
