package http

import (
	"encoding/json"
	"net/http"
)

// writeJSON renders v as the 200 response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

// writeConfirmation renders a JSON-encoded confirmation string, e.g.
// "Author created.".
func writeConfirmation(w http.ResponseWriter, message string) {
	writeJSON(w, message)
}

// writeFailure degrades every failure kind to a 400 with the message as
// a plain-text body. Validation, conflict, missing references and
// storage failures are deliberately not told apart here.
func writeFailure(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(err.Error()))
}

// writeNotFound is a 404 with an empty body.
func writeNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}
