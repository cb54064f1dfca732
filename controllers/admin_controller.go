package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"skillswap_server/services"
)

// AdminController handles moderation and reporting endpoints
type AdminController struct {
	Admin *services.AdminService
}

// MonitorPendingSwaps handles GET /api/admin/swaps/pending
func (c *AdminController) MonitorPendingSwaps(w http.ResponseWriter, r *http.Request) {
	swaps, err := c.Admin.PendingSwaps(r.Context())
	if err != nil {
		respondError(w, err, "Error fetching pending swaps")
		return
	}
	respondJSON(w, http.StatusOK, swaps)
}

// GenerateReports handles GET /api/admin/reports
func (c *AdminController) GenerateReports(w http.ResponseWriter, r *http.Request) {
	report, err := c.Admin.Reports(r.Context())
	if err != nil {
		respondError(w, err, "Error generating report")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Report generated successfully",
		"stats":   report,
	})
}

// BanUser handles PUT /api/admin/ban/{userId}
func (c *AdminController) BanUser(w http.ResponseWriter, r *http.Request) {
	user, err := c.Admin.BanUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respondError(w, err, "Error banning user")
		return
	}
	respondMessage(w, http.StatusOK, fmt.Sprintf("User %s banned successfully.", user.Name))
}

// SendPlatformMessage handles POST /api/admin/message
func (c *AdminController) SendPlatformMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if _, err := c.Admin.BroadcastPlatformMessage(body.Type, body.Message); err != nil {
		respondError(w, err, "Failed to broadcast message")
		return
	}
	respondMessage(w, http.StatusOK, "Message broadcast successfully.")
}
