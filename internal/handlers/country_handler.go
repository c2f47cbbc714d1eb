package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tifosi-api/internal/models"
	"tifosi-api/internal/repository"
	"tifosi-api/internal/utils"
)

type CountryHandler struct {
	countries countryStore
	media     mediaStore
}

func NewCountryHandler(countries countryStore, media mediaStore) *CountryHandler {
	return &CountryHandler{countries: countries, media: media}
}

// GET /api/countries
func (h *CountryHandler) List(c *gin.Context) {
	page, limit := utils.ParsePagination(c, 50)

	countries, total, err := h.countries.FindAll(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching countries", err)
		return
	}

	details, err := h.populate(c.Request.Context(), countries)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching countries", err)
		return
	}

	respondList(c, details, utils.NewPagination(page, limit, total))
}

// GET /api/countries/:id
func (h *CountryHandler) Get(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	country, err := h.countries.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Country not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error fetching country", err)
		return
	}

	details, err := h.populate(c.Request.Context(), []models.Country{*country})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching country", err)
		return
	}

	respondData(c, http.StatusOK, details[0])
}

// POST /api/countries
func (h *CountryHandler) Create(c *gin.Context) {
	var in models.CountryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	imageID, err := primitive.ObjectIDFromHex(in.Image)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid image ID", err)
		return
	}

	// La imagen referenciada tiene que existir antes del insert
	ctx := c.Request.Context()
	mediaByID, err := h.media.FindMapByIDs(ctx, []primitive.ObjectID{imageID})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error creating country", err)
		return
	}
	image, exists := mediaByID[imageID]
	if !exists {
		respondError(c, http.StatusBadRequest, "Image not found", nil)
		return
	}

	country := &models.Country{Name: in.Name, Image: imageID}
	if err := h.countries.Create(ctx, country); err != nil {
		if repository.IsDuplicateKey(err) {
			respondError(c, http.StatusConflict, "A country with that name already exists", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error creating country", err)
		return
	}

	respondCreated(c, "Country created successfully", models.CountryDetail{
		ID:        country.ID,
		Name:      country.Name,
		Image:     image,
		CreatedAt: country.CreatedAt,
		UpdatedAt: country.UpdatedAt,
	})
}

func (h *CountryHandler) populate(ctx context.Context, countries []models.Country) ([]models.CountryDetail, error) {
	ids := make([]primitive.ObjectID, 0, len(countries))
	for _, country := range countries {
		ids = append(ids, country.Image)
	}

	mediaByID, err := h.media.FindMapByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make([]models.CountryDetail, 0, len(countries))
	for _, country := range countries {
		details = append(details, models.CountryDetail{
			ID:        country.ID,
			Name:      country.Name,
			Image:     mediaByID[country.Image],
			CreatedAt: country.CreatedAt,
			UpdatedAt: country.UpdatedAt,
		})
	}
	return details, nil
}
