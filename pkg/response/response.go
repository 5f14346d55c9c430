// Package response writes the JSON bodies the admin API speaks.
//
// The wire shapes are deliberately flat: `{"data": ...}` for single records,
// `{"data": [...], "total": n}` for collections, `{"ok": true}` for deletes
// and `{"error": "..."}` for failures.
package response

import (
	"encoding/json"
	"net/http"
)

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 with a single data payload.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, map[string]interface{}{"data": data})
}

// Collection sends a 200 with one page of records. total is always the full
// unpaginated collection size, not the length of the returned slice.
func Collection(w http.ResponseWriter, data interface{}, total int) {
	write(w, http.StatusOK, map[string]interface{}{"data": data, "total": total})
}

// Created sends a 201 with the stored record.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, map[string]interface{}{"data": data})
}

// OK sends a 200 `{"ok": true}` acknowledgement.
func OK(w http.ResponseWriter) {
	write(w, http.StatusOK, map[string]bool{"ok": true})
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]string{"error": message})
}

// BadRequest sends a 400.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}

// ValidationError sends a 422 with the field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":  "Validation failed",
		"fields": errs,
	})
}
