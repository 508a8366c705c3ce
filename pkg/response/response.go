package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Message writes the conventional {"message": ...} body.
func Message(w http.ResponseWriter, status int, msg string) error {
	return JSON(w, status, map[string]string{"message": msg})
}

// Error writes the conventional {"detail": ...} error body.
func Error(w http.ResponseWriter, status int, detail string) error {
	return JSON(w, status, map[string]string{"detail": detail})
}
