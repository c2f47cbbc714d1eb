package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"tifosi-api/internal/repository"
	"tifosi-api/internal/utils"
)

type MediaHandler struct {
	media mediaStore
}

func NewMediaHandler(media mediaStore) *MediaHandler {
	return &MediaHandler{media: media}
}

// GET /api/media
func (h *MediaHandler) List(c *gin.Context) {
	page, limit := utils.ParsePagination(c, 50)

	media, total, err := h.media.FindAll(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching media", err)
		return
	}

	respondList(c, media, utils.NewPagination(page, limit, total))
}

// GET /api/media/:publicId
func (h *MediaHandler) Get(c *gin.Context) {
	publicID, err := url.PathUnescape(c.Param("publicId"))
	if err != nil || publicID == "" {
		respondError(c, http.StatusBadRequest, "Public ID is required", err)
		return
	}

	media, err := h.media.FindByPublicID(c.Request.Context(), publicID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Media not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error fetching media", err)
		return
	}

	respondData(c, http.StatusOK, media)
}
