package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/services"
)

// PhotoController issues presigned URLs for profile photo storage
type PhotoController struct {
	Photos *services.PhotoService
}

// GenerateUploadURL handles POST /api/photos/upload-url
func (c *PhotoController) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.FileName == "" || payload.FileType == "" {
		respondMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	url, key, err := c.Photos.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		respondError(w, err, "Failed to generate upload URL")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GenerateReadURL handles POST /api/photos/read-url
func (c *PhotoController) GenerateReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		respondMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	url, err := c.Photos.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		respondError(w, err, "Failed to generate read URL")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
