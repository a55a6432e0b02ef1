package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-users-api/models"
)

// internalErrorBody is written when a response value cannot be encoded.
var internalErrorBody = []byte(`{"detail":"Internal Server Error"}`)

// WriteJSON encodes data as the JSON body of a response with statusCode.
//
// If data cannot be encoded the response becomes a 500 with the generic
// error body and the encoding error is returned.
//
//	WriteJSON(w, users, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	body, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorBody)
		return 0, fmt.Errorf("error encoding response body: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteDetail writes the error body {"detail": detail} with statusCode.
func WriteDetail(w http.ResponseWriter, detail string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
