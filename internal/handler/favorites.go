package handler

import (
	"net/http"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
)

// FavoritesResponse lists an account's favorite items
type FavoritesResponse struct {
	AccountID string            `json:"account_id"`
	Favorites []domain.Favorite `json:"favorites"`
}

// HandleListFavorites
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} FavoritesResponse
// @Router /accounts/{accountID}/favorites [get]
func (h *PlanHandler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}

	favorites, err := h.service.ListFavorites(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, r, OpListFavorites, err)
		return
	}

	respondJSON(w, http.StatusOK, FavoritesResponse{AccountID: accountID, Favorites: favorites})
}

// HandleAddFavorite
// @Summary Add a favorite
// @Tags favorites
// @Produce json
// @Param accountID path string true "Account ID"
// @Param itemName path string true "Item name"
// @Success 201 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{accountID}/favorites/{itemName} [post]
func (h *PlanHandler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}
	itemName, ok := GetPathParam(r, w, ParamItemName)
	if !ok {
		return
	}

	if err := h.service.AddFavorite(r.Context(), accountID, itemName); err != nil {
		respondServiceError(w, r, OpAddFavorite, err)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgFavoriteAddedSuccess})
}

// HandleRemoveFavorite
// @Summary Remove a favorite
// @Tags favorites
// @Produce json
// @Param accountID path string true "Account ID"
// @Param itemName path string true "Item name"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{accountID}/favorites/{itemName} [delete]
func (h *PlanHandler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetPathParam(r, w, ParamAccountID)
	if !ok {
		return
	}
	itemName, ok := GetPathParam(r, w, ParamItemName)
	if !ok {
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), accountID, itemName); err != nil {
		respondServiceError(w, r, OpRemoveFavorite, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFavoriteRemovedSuccess})
}
