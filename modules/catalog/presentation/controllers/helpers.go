package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/akiftaseen/tool-set-app/modules/catalog/services"
	"github.com/akiftaseen/tool-set-app/pkg/httpapi"
)

// queryID reads a uint query parameter. ok is false for a missing or
// unparseable value; list endpoints answer those with an empty list.
func queryID(r *http.Request, key string) (uint, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		_ = httpapi.WriteError(w, svcErr.Status, svcErr.Code, svcErr.Message, nil)
		return
	}
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "CATALOG_INTERNAL", "internal error", nil)
}
