package handler

import (
	"net/http"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/plan"
)

// Route parameter names
const (
	ParamAccountID = "accountID"
	ParamPlanID    = "id"
	ParamItemName  = "itemName"
)

// AddToPlanRequest adds an item to the plan, or raises it by one lot
type AddToPlanRequest struct {
	ItemName string `json:"item_name" validate:"required,max=200,excludesall=\x00\n\r\t"`
	LotSize  int    `json:"lot_size" validate:"omitempty,lotsize"`
}

// SetQuantityRequest overwrites the daily quantity of a planned item
type SetQuantityRequest struct {
	DailyQuantity int `json:"daily_quantity" validate:"gte=0,lte=1000000"`
	LotSize       int `json:"lot_size" validate:"omitempty,lotsize"`
}

// PlanResponse is an account's production plan
type PlanResponse struct {
	AccountID string               `json:"account_id"`
	Items     []domain.PlannedItem `json:"items"`
}

// JobBreakdownResponse groups the plan by crafting job
type JobBreakdownResponse struct {
	AccountID string           `json:"account_id"`
	Jobs      []domain.JobPlan `json:"jobs"`
}

// PlanHandler serves the account scoped endpoints
type PlanHandler struct {
	service plan.Service
}

func NewPlanHandler(service plan.Service) *PlanHandler {
	return &PlanHandler{service: service}
}

// HandleListPlan returns the planned items of an account
// @Summary List planned items
// @Tags plan
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /accounts/{accountID}/plan [get]
func (h *PlanHandler) HandleListPlan(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}

	items, err := h.service.ListPlan(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, r, OpListPlan, err)
		return
	}

	respondJSON(w, http.StatusOK, PlanResponse{AccountID: accountID, Items: items})
}

// HandleAddToPlan adds an item to the plan
// @Summary Add an item to the plan
// @Description Creates the entry with one lot, or raises an existing entry by one lot
// @Tags plan
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param request body AddToPlanRequest true "Item and lot size"
// @Success 201 {object} domain.PlannedItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /accounts/{accountID}/plan [post]
func (h *PlanHandler) HandleAddToPlan(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}

	var req AddToPlanRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpAddToPlan); err != nil {
		return
	}

	item, err := h.service.AddToPlan(r.Context(), accountID, req.ItemName, req.LotSize)
	if err != nil {
		respondServiceError(w, r, OpAddToPlan, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// HandleSetQuantity overwrites the daily quantity of a planned item
// @Summary Set a planned quantity
// @Tags plan
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param id path string true "Planned item ID"
// @Param request body SetQuantityRequest true "New quantity"
// @Success 200 {object} domain.PlannedItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{accountID}/plan/{id} [put]
func (h *PlanHandler) HandleSetQuantity(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}
	id, ok := GetPathParam(r, w, ParamPlanID)
	if !ok {
		return
	}

	var req SetQuantityRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSetQuantity); err != nil {
		return
	}

	item, err := h.service.SetQuantity(r.Context(), accountID, id, req.DailyQuantity, req.LotSize)
	if err != nil {
		respondServiceError(w, r, OpSetQuantity, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// HandleRemoveFromPlan deletes a planned item
// @Summary Remove a planned item
// @Tags plan
// @Produce json
// @Param accountID path string true "Account ID"
// @Param id path string true "Planned item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{accountID}/plan/{id} [delete]
func (h *PlanHandler) HandleRemoveFromPlan(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}
	id, ok := GetPathParam(r, w, ParamPlanID)
	if !ok {
		return
	}

	if err := h.service.RemoveFromPlan(r.Context(), accountID, id); err != nil {
		respondServiceError(w, r, OpRemoveFromPlan, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemovedSuccess})
}

// HandleJobBreakdown groups the plan by crafting job
// @Summary Plan by job
// @Tags plan
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} JobBreakdownResponse
// @Router /accounts/{accountID}/plan/jobs [get]
func (h *PlanHandler) HandleJobBreakdown(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}

	jobs, err := h.service.JobBreakdown(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, r, OpJobBreakdown, err)
		return
	}

	respondJSON(w, http.StatusOK, JobBreakdownResponse{AccountID: accountID, Jobs: jobs})
}
