package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"tifosi-api/internal/models"
	"tifosi-api/internal/repository"
	"tifosi-api/internal/utils"
)

type ColorHandler struct {
	colors colorStore
}

func NewColorHandler(colors colorStore) *ColorHandler {
	return &ColorHandler{colors: colors}
}

// GET /api/colors
func (h *ColorHandler) List(c *gin.Context) {
	page, limit := utils.ParsePagination(c, 50)

	colors, total, err := h.colors.FindAll(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching colors", err)
		return
	}

	respondList(c, colors, utils.NewPagination(page, limit, total))
}

// GET /api/colors/:id
func (h *ColorHandler) Get(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	color, err := h.colors.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Color not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error fetching color", err)
		return
	}

	respondData(c, http.StatusOK, color)
}

// POST /api/colors
func (h *ColorHandler) Create(c *gin.Context) {
	var in models.ColorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	color := &models.Color{Name: in.Name, HexCode: in.HexCode}
	if err := h.colors.Create(c.Request.Context(), color); err != nil {
		if repository.IsDuplicateKey(err) {
			respondError(c, http.StatusConflict, "A color with that name already exists", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error creating color", err)
		return
	}

	respondCreated(c, "Color created successfully", color)
}

// PUT /api/colors/:id
func (h *ColorHandler) Update(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var in models.ColorUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	update := bson.M{}
	if in.Name != nil {
		update["name"] = *in.Name
	}
	if in.HexCode != nil {
		update["hex_code"] = *in.HexCode
	}
	if len(update) == 0 {
		respondError(c, http.StatusBadRequest, "No fields to update", nil)
		return
	}

	color, err := h.colors.Update(c.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Color not found", nil)
			return
		}
		if repository.IsDuplicateKey(err) {
			respondError(c, http.StatusConflict, "A color with that name already exists", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error updating color", err)
		return
	}

	respondUpdated(c, "Color updated successfully", color)
}
