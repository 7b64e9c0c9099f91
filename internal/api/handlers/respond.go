package handlers

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes the error payload shared by every failure branch.
// Each handler branch ends in exactly one respond call: success and failure
// responses are mutually exclusive.
func respondError(w http.ResponseWriter, status int, cause string) {
	respondJSON(w, status, map[string]string{
		"status": "error",
		"error":  cause,
	})
}
