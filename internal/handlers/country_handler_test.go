package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tifosi-api/internal/models"
)

func newCountryRouter(countries *fakeCountryStore, media *fakeMediaStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCountryHandler(countries, media)
	router := gin.New()
	router.GET("/api/countries", handler.List)
	router.GET("/api/countries/:id", handler.Get)
	router.POST("/api/countries", handler.Create)
	return router
}

func TestGetCountryExpandsImage(t *testing.T) {
	image := models.Media{ID: primitive.NewObjectID(), PublicID: "countries/flag"}
	country := models.Country{ID: primitive.NewObjectID(), Name: "Argentina", Image: image.ID}
	media := newFakeMediaStore(image)
	countries := newFakeCountryStore(country)
	router := newCountryRouter(countries, media)

	w := performRequest(router, http.MethodGet, "/api/countries/"+country.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "Argentina", data["name"])
	assert.Equal(t, "countries/flag", data["image"].(map[string]any)["public_id"])
}

func TestCreateCountryImageNotFound(t *testing.T) {
	countries := newFakeCountryStore()
	router := newCountryRouter(countries, newFakeMediaStore())

	w := performRequest(router, http.MethodPost, "/api/countries", gin.H{
		"name":  "Argentina",
		"image": primitive.NewObjectID().Hex(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Image not found", decodeBody(t, w)["message"])
	assert.Empty(t, countries.byID)
}

func TestCreateCountry(t *testing.T) {
	image := models.Media{ID: primitive.NewObjectID(), PublicID: "countries/flag"}
	media := newFakeMediaStore(image)
	countries := newFakeCountryStore()
	router := newCountryRouter(countries, media)

	w := performRequest(router, http.MethodPost, "/api/countries", gin.H{
		"name":  "Argentina",
		"image": image.ID.Hex(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "countries/flag", data["image"].(map[string]any)["public_id"])
	assert.Len(t, countries.byID, 1)
}
