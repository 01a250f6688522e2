package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/logger"
	"github.com/osse101/DofusPlanner_Go/internal/metrics"
)

// CatalogReader is the read-only reference data served by the catalog endpoints
type CatalogReader interface {
	Items(filter domain.ItemFilter) []domain.CatalogItem
	Search(query string, limit int) []domain.CatalogItem
	Recipe(name string) (domain.Recipe, bool)
	Jobs() []domain.Job
}

// ItemsResponse lists catalog items
type ItemsResponse struct {
	Items []domain.CatalogItem `json:"items"`
	Count int                  `json:"count"`
}

// JobsResponse lists crafting jobs
type JobsResponse struct {
	Jobs []domain.Job `json:"jobs"`
}

type CatalogHandler struct {
	catalog CatalogReader
}

func NewCatalogHandler(catalog CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// HandleListItems lists catalog items, optionally filtered
// @Summary List catalog items
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter"
// @Param type query string false "Type filter"
// @Success 200 {object} ItemsResponse
// @Router /catalog/items [get]
func (h *CatalogHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	filter := domain.ItemFilter{
		Category: GetOptionalQueryParam(r, "category", ""),
		Type:     GetOptionalQueryParam(r, "type", ""),
	}

	items := h.catalog.Items(filter)
	respondJSON(w, http.StatusOK, ItemsResponse{Items: items, Count: len(items)})
}

// HandleSearch finds items whose name resembles q
// @Summary Search the catalog
// @Description Accent and case insensitive search with typo tolerance
// @Tags catalog
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum results"
// @Success 200 {object} ItemsResponse
// @Failure 400 {object} ErrorResponse
// @Router /catalog/search [get]
func (h *CatalogHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query, ok := GetQueryParam(r, w, "q")
	if !ok {
		return
	}
	limit, ok := GetOptionalIntQueryParam(r, w, "limit", 0)
	if !ok {
		return
	}

	items := h.catalog.Search(query, limit)
	metrics.SearchesPerformed.Inc()
	logger.FromContext(r.Context()).Debug("Catalog searched", "query", query, "results", len(items))

	respondJSON(w, http.StatusOK, ItemsResponse{Items: items, Count: len(items)})
}

// HandleGetRecipe returns the recipe crafting the named item
// @Summary Get a recipe
// @Tags catalog
// @Produce json
// @Param name path string true "Crafted item name"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /catalog/recipes/{name} [get]
func (h *CatalogHandler) HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}

	recipe, found := h.catalog.Recipe(name)
	if !found {
		respondServiceError(w, r, OpGetRecipe, fmt.Errorf("%w: %q", domain.ErrRecipeNotFound, name))
		return
	}

	respondJSON(w, http.StatusOK, recipe)
}

// HandleListJobs returns all known jobs
// @Summary List jobs
// @Tags catalog
// @Produce json
// @Success 200 {object} JobsResponse
// @Router /catalog/jobs [get]
func (h *CatalogHandler) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, JobsResponse{Jobs: h.catalog.Jobs()})
}
