package http

import (
	"encoding/json"
	"net/http"
)

type envelope map[string]any

// writeJSON sends a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Success sends 200 {"data": v}.
func Success(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, envelope{"data": v})
}

// Created sends 201 {"data": v}.
func Created(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusCreated, envelope{"data": v})
}

// NoContent sends 204 with no body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Invalid sends 422 with the validation error bag.
func Invalid(w http.ResponseWriter, errs *ValidationErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, errs)
}

// Error sends {"message": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"message": message})
}
