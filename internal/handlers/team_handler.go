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

type TeamHandler struct {
	teams   teamStore
	leagues leagueStore
	media   mediaStore
}

func NewTeamHandler(teams teamStore, leagues leagueStore, media mediaStore) *TeamHandler {
	return &TeamHandler{teams: teams, leagues: leagues, media: media}
}

// GET /api/teams?league=<id>
func (h *TeamHandler) List(c *gin.Context) {
	page, limit := utils.ParsePagination(c, 50)

	filter := bson.M{}
	if raw := c.Query("league"); raw != "" {
		leagueID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid league ID", err)
			return
		}
		filter["league"] = leagueID
	}

	teams, total, err := h.teams.FindAll(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching teams", err)
		return
	}

	details, err := h.populate(c.Request.Context(), teams)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching teams", err)
		return
	}

	respondList(c, details, utils.NewPagination(page, limit, total))
}

// GET /api/teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	team, err := h.teams.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Team not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error fetching team", err)
		return
	}

	details, err := h.populate(c.Request.Context(), []models.Team{*team})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching team", err)
		return
	}

	respondData(c, http.StatusOK, details[0])
}

// POST /api/teams
func (h *TeamHandler) Create(c *gin.Context) {
	var in models.TeamInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := in.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	imageID, err := primitive.ObjectIDFromHex(in.Image)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid image ID", err)
		return
	}

	ctx := c.Request.Context()
	if exists, err := h.imageExists(ctx, imageID); err != nil {
		respondError(c, http.StatusInternalServerError, "Error creating team", err)
		return
	} else if !exists {
		respondError(c, http.StatusBadRequest, "Image not found", nil)
		return
	}

	team := &models.Team{
		Name:      in.Name,
		ShortName: in.ShortName,
		Type:      models.TeamType(in.Type),
		Image:     imageID,
		Stadium:   in.Stadium,
	}
	if in.Founded != nil {
		founded := int(*in.Founded)
		team.Founded = &founded
	}

	if in.League != "" {
		leagueID, err := primitive.ObjectIDFromHex(in.League)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid league ID", err)
			return
		}
		if _, err := h.leagues.FindByID(ctx, leagueID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondError(c, http.StatusBadRequest, "League not found", nil)
				return
			}
			respondError(c, http.StatusInternalServerError, "Error creating team", err)
			return
		}
		team.League = &leagueID
	}

	if err := h.teams.Create(ctx, team); err != nil {
		respondError(c, http.StatusInternalServerError, "Error creating team", err)
		return
	}

	details, err := h.populate(ctx, []models.Team{*team})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error creating team", err)
		return
	}

	respondCreated(c, "Team created successfully", details[0])
}

// PUT /api/teams/:id
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var in models.TeamUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	update := bson.M{}
	if in.Name != nil {
		update["name"] = *in.Name
	}
	if in.ShortName != nil {
		update["short_name"] = *in.ShortName
	}
	if in.Type != nil {
		if !models.TeamType(*in.Type).Valid() {
			respondError(c, http.StatusBadRequest, "Invalid team type", nil)
			return
		}
		update["type"] = *in.Type
	}
	if in.Image != nil {
		imageID, err := primitive.ObjectIDFromHex(*in.Image)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid image ID", err)
			return
		}
		if exists, err := h.imageExists(ctx, imageID); err != nil {
			respondError(c, http.StatusInternalServerError, "Error updating team", err)
			return
		} else if !exists {
			respondError(c, http.StatusBadRequest, "Image not found", nil)
			return
		}
		update["image"] = imageID
	}
	if in.League != nil {
		leagueID, err := primitive.ObjectIDFromHex(*in.League)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid league ID", err)
			return
		}
		if _, err := h.leagues.FindByID(ctx, leagueID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondError(c, http.StatusBadRequest, "League not found", nil)
				return
			}
			respondError(c, http.StatusInternalServerError, "Error updating team", err)
			return
		}
		update["league"] = leagueID
	}
	if in.Founded != nil {
		update["founded"] = int(*in.Founded)
	}
	if in.Stadium != nil {
		update["stadium"] = *in.Stadium
	}

	if len(update) == 0 {
		respondError(c, http.StatusBadRequest, "No fields to update", nil)
		return
	}

	team, err := h.teams.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Team not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error updating team", err)
		return
	}

	details, err := h.populate(ctx, []models.Team{*team})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error updating team", err)
		return
	}

	respondUpdated(c, "Team updated successfully", details[0])
}

// DELETE /api/teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	if err := h.teams.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Team not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Error deleting team", err)
		return
	}

	respondMessage(c, "Team deleted successfully")
}

func (h *TeamHandler) imageExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	mediaByID, err := h.media.FindMapByIDs(ctx, []primitive.ObjectID{id})
	if err != nil {
		return false, err
	}
	_, exists := mediaByID[id]
	return exists, nil
}

func (h *TeamHandler) populate(ctx context.Context, teams []models.Team) ([]models.TeamDetail, error) {
	imageIDs := make([]primitive.ObjectID, 0, len(teams))
	leagueIDs := make([]primitive.ObjectID, 0, len(teams))
	for _, team := range teams {
		imageIDs = append(imageIDs, team.Image)
		if team.League != nil {
			leagueIDs = append(leagueIDs, *team.League)
		}
	}

	mediaByID, err := h.media.FindMapByIDs(ctx, imageIDs)
	if err != nil {
		return nil, err
	}
	leaguesByID, err := h.leagues.FindMapByIDs(ctx, leagueIDs)
	if err != nil {
		return nil, err
	}

	details := make([]models.TeamDetail, 0, len(teams))
	for _, team := range teams {
		detail := models.TeamDetail{
			ID:        team.ID,
			Name:      team.Name,
			ShortName: team.ShortName,
			Type:      team.Type,
			Image:     mediaByID[team.Image],
			Founded:   team.Founded,
			Stadium:   team.Stadium,
			CreatedAt: team.CreatedAt,
			UpdatedAt: team.UpdatedAt,
		}
		if team.League != nil {
			if league, exists := leaguesByID[*team.League]; exists {
				detail.League = &league
			}
		}
		details = append(details, detail)
	}
	return details, nil
}
