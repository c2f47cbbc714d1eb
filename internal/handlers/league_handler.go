package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tifosi-api/internal/models"
	"tifosi-api/internal/repository"
	"tifosi-api/internal/utils"
)

type LeagueHandler struct {
	leagues   leagueStore
	countries countryStore
	media     mediaStore
}

func NewLeagueHandler(leagues leagueStore, countries countryStore, media mediaStore) *LeagueHandler {
	return &LeagueHandler{leagues: leagues, countries: countries, media: media}
}

// GET /api/leagues?country=<id>
func (h *LeagueHandler) List(c *gin.Context) {
	page, limit := utils.ParsePagination(c, 50)

	filter := bson.M{}
	if raw := c.Query("country"); raw != "" {
		countryID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid country ID", err)
			return
		}
		filter["country"] = countryID
	}

	leagues, total, err := h.leagues.FindAll(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching leagues", err)
		return
	}

	details, err := h.populate(c.Request.Context(), leagues)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching leagues", err)
		return
	}

	respondList(c, details, utils.NewPagination(page, limit, total))
}

// GET /api/leagues/:id
func (h *LeagueHandler) Get(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	league, err := h.leagues.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "League not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error fetching league", err)
		return
	}

	details, err := h.populate(c.Request.Context(), []models.League{*league})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching league", err)
		return
	}

	respondData(c, http.StatusOK, details[0])
}

// POST /api/leagues
func (h *LeagueHandler) Create(c *gin.Context) {
	var in models.LeagueInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	imageID, err := primitive.ObjectIDFromHex(in.Image)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid image ID", err)
		return
	}
	countryID, err := primitive.ObjectIDFromHex(in.Country)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid country ID", err)
		return
	}

	// Ambas referencias tienen que existir antes del insert
	ctx := c.Request.Context()
	mediaByID, err := h.media.FindMapByIDs(ctx, []primitive.ObjectID{imageID})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error creating league", err)
		return
	}
	image, exists := mediaByID[imageID]
	if !exists {
		respondError(c, http.StatusBadRequest, "Image not found", nil)
		return
	}

	country, err := h.countries.FindByID(ctx, countryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusBadRequest, "Country not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error creating league", err)
		return
	}

	league := &models.League{Name: in.Name, Image: imageID, Country: countryID}
	if err := h.leagues.Create(ctx, league); err != nil {
		if repository.IsDuplicateKey(err) {
			respondError(c, http.StatusConflict, "A league with that name already exists", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error creating league", err)
		return
	}

	respondCreated(c, "League created successfully", models.LeagueDetail{
		ID:        league.ID,
		Name:      league.Name,
		Image:     image,
		Country:   *country,
		CreatedAt: league.CreatedAt,
		UpdatedAt: league.UpdatedAt,
	})
}

func (h *LeagueHandler) populate(ctx context.Context, leagues []models.League) ([]models.LeagueDetail, error) {
	imageIDs := make([]primitive.ObjectID, 0, len(leagues))
	countryIDs := make([]primitive.ObjectID, 0, len(leagues))
	for _, league := range leagues {
		imageIDs = append(imageIDs, league.Image)
		countryIDs = append(countryIDs, league.Country)
	}

	mediaByID, err := h.media.FindMapByIDs(ctx, imageIDs)
	if err != nil {
		return nil, err
	}
	countriesByID, err := h.countries.FindMapByIDs(ctx, countryIDs)
	if err != nil {
		return nil, err
	}

	details := make([]models.LeagueDetail, 0, len(leagues))
	for _, league := range leagues {
		details = append(details, models.LeagueDetail{
			ID:        league.ID,
			Name:      league.Name,
			Image:     mediaByID[league.Image],
			Country:   countriesByID[league.Country],
			CreatedAt: league.CreatedAt,
			UpdatedAt: league.UpdatedAt,
		})
	}
	return details, nil
}
