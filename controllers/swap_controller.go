package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"skillswap_server/middleware"
	"skillswap_server/services"
)

// SwapController handles the swap request lifecycle endpoints
type SwapController struct {
	Swaps *services.SwapService
}

// CreateSwapRequest handles POST /api/swaps
func (c *SwapController) CreateSwapRequest(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.UserFromContext(r.Context())

	var input services.CreateSwapInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	swap, err := c.Swaps.CreateSwapRequest(r.Context(), caller.ID, input)
	if err != nil {
		respondError(w, err, "Error creating swap request")
		return
	}
	respondJSON(w, http.StatusCreated, swap)
}

// GetMySwaps handles GET /api/swaps/me
func (c *SwapController) GetMySwaps(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.UserFromContext(r.Context())

	swaps, err := c.Swaps.GetSwapsForUser(r.Context(), caller.ID)
	if err != nil {
		respondError(w, err, "Error fetching swaps")
		return
	}
	respondJSON(w, http.StatusOK, swaps)
}

// UpdateSwapStatus handles PUT /api/swaps/{id}/status
func (c *SwapController) UpdateSwapStatus(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.UserFromContext(r.Context())
	swapID := mux.Vars(r)["id"]

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	swap, err := c.Swaps.UpdateSwapStatus(r.Context(), swapID, caller.ID, body.Status)
	if err != nil {
		respondError(w, err, "Error updating swap status")
		return
	}
	respondJSON(w, http.StatusOK, swap)
}
