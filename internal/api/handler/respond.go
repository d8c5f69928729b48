package handler

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// NotFound replaces chi's plain-text 404 so every response is JSON.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "not found")
}

// MethodNotAllowed replaces chi's plain-text 405.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// InternalError is the body sent when a handler fails unexpectedly.
func InternalError(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusInternalServerError, "internal server error")
}
