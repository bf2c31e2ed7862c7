package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akiftaseen/tool-set-app/modules/catalog/presentation/controllers/dtos"
	"github.com/akiftaseen/tool-set-app/modules/catalog/services"
	"github.com/akiftaseen/tool-set-app/pkg/application"
	"github.com/akiftaseen/tool-set-app/pkg/composables"
	"github.com/akiftaseen/tool-set-app/pkg/httpapi"
)

// AdminAPIController serves the single update endpoint behind the admin
// panel. The payload carries a type discriminator; every operation is
// idempotent insert-if-absent or delete-if-present.
type AdminAPIController struct {
	app      application.Application
	catalog  *services.CatalogService
	basePath string
}

func NewAdminAPIController(app application.Application) application.Controller {
	return &AdminAPIController{
		app:      app,
		catalog:  app.Service(services.CatalogService{}).(*services.CatalogService),
		basePath: "/admin",
	}
}

func (c *AdminAPIController) Key() string {
	return c.basePath
}

func (c *AdminAPIController) Register(r *mux.Router) {
	admin := r.PathPrefix(c.basePath).Subrouter()
	admin.HandleFunc("/update", c.Update).Methods(http.MethodPost)
}

func (c *AdminAPIController) Update(w http.ResponseWriter, r *http.Request) {
	var dto dtos.AdminUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "CATALOG_INVALID_BODY", "request body is not valid JSON", nil)
		return
	}

	if fields, ok := dto.Ok(); !ok {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "CATALOG_INVALID_BODY", "validation failed", fields)
		return
	}

	var result *services.MutationResult
	var err error
	switch dto.Type {
	case dtos.UpdateTypeToggle:
		result, err = c.catalog.ToggleAssociation(r.Context(), dto.NameID, dto.CategoryID, dto.Checked)
	case dtos.UpdateTypeAddTheme:
		result, err = c.catalog.CreateTheme(r.Context(), dto.Name)
	case dtos.UpdateTypeAddSubtheme:
		result, err = c.catalog.CreateSubtheme(r.Context(), dto.ThemeID, dto.Name)
	case dtos.UpdateTypeAddCategory:
		result, err = c.catalog.CreateCategory(r.Context(), dto.SubthemeID, dto.Name)
	case dtos.UpdateTypeAddName:
		result, err = c.catalog.CreateName(r.Context(), dto.Name)
	case dtos.UpdateTypeDeleteName:
		result, err = c.catalog.DeleteName(r.Context(), dto.NameID)
	}
	if err != nil {
		logger := composables.UseLogger(r.Context())
		logger.WithError(err).WithField("type", dto.Type).Warn("admin update failed")
		writeServiceError(w, err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, result)
}
