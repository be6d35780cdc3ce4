package api

import (
	"net/http"

	json "github.com/goccy/go-json"
)

// envelope is the response shape the web client expects: every body carries
// an "ok" flag, errors carry a "message".
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding failures past this point can only be logged; the status line
	// is already on the wire.
	_ = json.NewEncoder(w).Encode(payload)
}

func writeOK(w http.ResponseWriter, fields envelope) {
	body := envelope{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"ok": false, "message": message})
}
