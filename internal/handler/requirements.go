package handler

import (
	"net/http"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/logger"
	"github.com/osse101/DofusPlanner_Go/internal/planning"
)

// NeedsRequest carries the stock the user already owns, keyed by ingredient id
type NeedsRequest struct {
	Stock map[int]int `json:"stock" validate:"dive,gte=0"`
}

// ShoppingListRequest adds the ingredients the user crafts themselves
type ShoppingListRequest struct {
	Stock    map[int]int `json:"stock" validate:"dive,gte=0"`
	Selected []int       `json:"selected"`
}

// RequirementsResponse is the aggregated need of a plan
type RequirementsResponse struct {
	AccountID    string                       `json:"account_id"`
	Requirements []domain.ResourceRequirement `json:"requirements"`
}

// NeedsResponse is the aggregated need netted against stock
type NeedsResponse struct {
	AccountID string                  `json:"account_id"`
	Needs     []domain.NetRequirement `json:"needs"`
}

// ShoppingListResponse is the list of ingredients to buy
type ShoppingListResponse struct {
	AccountID string                   `json:"account_id"`
	Items     []domain.IngredientTotal `json:"items"`
}

// HandleRequirements
// @Summary Aggregated requirements
// @Description Ingredients needed per day to produce the whole plan
// @Tags requirements
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} RequirementsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /accounts/{accountID}/requirements [get]
func (h *PlanHandler) HandleRequirements(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}

	reqs, err := h.service.Requirements(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, r, OpRequirements, err)
		return
	}

	respondJSON(w, http.StatusOK, RequirementsResponse{AccountID: accountID, Requirements: reqs})
}

// HandleNeeds
// @Summary Requirements net of stock
// @Tags requirements
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param request body NeedsRequest true "Local stock"
// @Success 200 {object} NeedsResponse
// @Failure 400 {object} ErrorResponse
// @Router /accounts/{accountID}/needs [post]
func (h *PlanHandler) HandleNeeds(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}

	var req NeedsRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpNeeds); err != nil {
		return
	}

	LogRequestFields(logger.FromContext(r.Context()), "account_id", accountID, "stock_entries", len(req.Stock))

	needs, err := h.service.Needs(r.Context(), accountID, planning.LocalStock(req.Stock))
	if err != nil {
		respondServiceError(w, r, OpNeeds, err)
		return
	}

	respondJSON(w, http.StatusOK, NeedsResponse{AccountID: accountID, Needs: needs})
}

// HandleShoppingList
// @Summary Shopping list
// @Description Ingredients to buy, expanding the selected craftable ingredients one level
// @Tags requirements
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param request body ShoppingListRequest true "Stock and selection"
// @Success 200 {object} ShoppingListResponse
// @Failure 400 {object} ErrorResponse
// @Router /accounts/{accountID}/shopping-list [post]
func (h *PlanHandler) HandleShoppingList(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}

	var req ShoppingListRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpShoppingList); err != nil {
		return
	}

	LogRequestFields(logger.FromContext(r.Context()),
		"account_id", accountID, "stock_entries", len(req.Stock), "selected", len(req.Selected))

	list, err := h.service.ShoppingList(r.Context(), accountID,
		planning.NewSelection(req.Selected...), planning.LocalStock(req.Stock))
	if err != nil {
		respondServiceError(w, r, OpShoppingList, err)
		return
	}

	respondJSON(w, http.StatusOK, ShoppingListResponse{AccountID: accountID, Items: list})
}
