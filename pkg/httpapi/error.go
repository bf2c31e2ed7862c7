// Package httpapi holds the JSON plumbing shared by the catalog's /api and
// /admin controllers.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorEnvelope is the error body every catalog endpoint returns. Code is a
// stable machine-readable identifier; the catalog uses CATALOG_* values such
// as CATALOG_INVALID_LABEL or CATALOG_CONFLICT. Meta carries optional
// per-field detail, for example validation failures keyed by field name.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// WriteJSON writes payload as a JSON response with the given status. A nil
// payload sends the status and headers only.
func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

// WriteError writes an ErrorEnvelope with the given status. Controllers use
// it directly for transport-level failures like a malformed request body;
// service failures go through the ServiceError mapping instead.
func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}
