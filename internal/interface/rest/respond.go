package rest

import (
	"encoding/json"
	"net/http"

	"airport-registry-service/pkg/apperror"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeError maps service fault codes to HTTP statuses. Unrecognized errors
// become opaque 500s so store failures never leak details to clients.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Code: "INTERNAL", Message: "internal server error"}

	switch apperror.CodeOf(err) {
	case apperror.CodeNotFound:
		status = http.StatusNotFound
		body = errorBody{Code: apperror.CodeNotFound, Message: err.Error()}
	case apperror.CodeConflict:
		status = http.StatusConflict
		body = errorBody{Code: apperror.CodeConflict, Message: err.Error()}
	case apperror.CodeValidation:
		status = http.StatusBadRequest
		body = errorBody{Code: apperror.CodeValidation, Message: err.Error()}
	}

	writeJSON(w, status, map[string]errorBody{"error": body})
}

// decodeJSON decodes the request body into v, writing a validation fault on
// malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, apperror.Validation("malformed request body"))
		return false
	}
	return true
}
