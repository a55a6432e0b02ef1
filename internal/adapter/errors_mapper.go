package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-users-api/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := detailFromBody(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// detailFromBody prefers the "detail" of an error body and falls back to the
// raw body or the status text.
func detailFromBody(resp *resty.Response) string {
	var errorResponse models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errorResponse); err == nil && errorResponse.Detail != "" {
		message := errorResponse.Detail
		for _, f := range errorResponse.Errors {
			message += "; " + f.Field + " " + f.Message
		}
		return message
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
