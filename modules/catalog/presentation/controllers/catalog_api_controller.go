package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akiftaseen/tool-set-app/modules/catalog/services"
	"github.com/akiftaseen/tool-set-app/pkg/application"
	"github.com/akiftaseen/tool-set-app/pkg/httpapi"
)

// CatalogAPIController serves the read-only picker endpoints consumed by the
// frontend dropdown cascade.
type CatalogAPIController struct {
	app      application.Application
	queries  *services.QueryService
	basePath string
}

func NewCatalogAPIController(app application.Application) application.Controller {
	return &CatalogAPIController{
		app:      app,
		queries:  app.Service(services.QueryService{}).(*services.QueryService),
		basePath: "/api",
	}
}

func (c *CatalogAPIController) Key() string {
	return c.basePath
}

func (c *CatalogAPIController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()

	api.HandleFunc("/themes", c.ListThemes).Methods(http.MethodGet)
	api.HandleFunc("/subthemes", c.ListSubthemes).Methods(http.MethodGet)
	api.HandleFunc("/categories", c.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/random_name", c.RandomName).Methods(http.MethodGet)
	api.HandleFunc("/stats", c.GetStats).Methods(http.MethodGet)
}

func (c *CatalogAPIController) ListThemes(w http.ResponseWriter, r *http.Request) {
	items, err := c.queries.ListThemes(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, items)
}

func (c *CatalogAPIController) ListSubthemes(w http.ResponseWriter, r *http.Request) {
	themeID, ok := queryID(r, "theme_id")
	if !ok {
		_ = httpapi.WriteJSON(w, http.StatusOK, []services.LabeledItem{})
		return
	}

	items, err := c.queries.ListSubthemes(r.Context(), themeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, items)
}

func (c *CatalogAPIController) ListCategories(w http.ResponseWriter, r *http.Request) {
	subthemeID, ok := queryID(r, "subtheme_id")
	if !ok {
		_ = httpapi.WriteJSON(w, http.StatusOK, []services.LabeledItem{})
		return
	}

	items, err := c.queries.ListCategories(r.Context(), subthemeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, items)
}

func (c *CatalogAPIController) RandomName(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := queryID(r, "category_id")
	if !ok {
		_ = httpapi.WriteJSON(w, http.StatusOK, &services.RandomName{})
		return
	}

	result, err := c.queries.PickRandomName(r.Context(), categoryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, result)
}

func (c *CatalogAPIController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.queries.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, stats)
}
