package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"tifosi-api/internal/handlers"
	"tifosi-api/internal/repository"
	"tifosi-api/internal/upload"
)

// RegisterRoutes arma repositorios y handlers sobre la base y el uploader
// inyectados, y cuelga todo bajo /api.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, uploader upload.Uploader, env string) {
	media := repository.NewMediaRepository(db.Collection("media"))
	colors := repository.NewColorRepository(db.Collection("colors"))
	countries := repository.NewCountryRepository(db.Collection("countries"))
	leagues := repository.NewLeagueRepository(db.Collection("leagues"))
	teams := repository.NewTeamRepository(db.Collection("teams"))
	products := repository.NewProductRepository(db.Collection("products"))

	uploadService := upload.NewService(uploader, media)

	health := handlers.NewHealthHandler(env)
	router.GET("/health", health.Status)

	api := router.Group("/api")
	{
		colorHandler := handlers.NewColorHandler(colors)
		api.GET("/colors", colorHandler.List)
		api.POST("/colors", colorHandler.Create)
		api.GET("/colors/:id", colorHandler.Get)
		api.PUT("/colors/:id", colorHandler.Update)

		countryHandler := handlers.NewCountryHandler(countries, media)
		api.GET("/countries", countryHandler.List)
		api.POST("/countries", countryHandler.Create)
		api.GET("/countries/:id", countryHandler.Get)

		leagueHandler := handlers.NewLeagueHandler(leagues, countries, media)
		api.GET("/leagues", leagueHandler.List)
		api.POST("/leagues", leagueHandler.Create)
		api.GET("/leagues/:id", leagueHandler.Get)

		teamHandler := handlers.NewTeamHandler(teams, leagues, media)
		api.GET("/teams", teamHandler.List)
		api.POST("/teams", teamHandler.Create)
		api.GET("/teams/:id", teamHandler.Get)
		api.PUT("/teams/:id", teamHandler.Update)
		api.DELETE("/teams/:id", teamHandler.Delete)

		productHandler := handlers.NewProductHandler(products, media, colors, teams, leagues, countries)
		api.GET("/products", productHandler.List)
		api.GET("/products/:slug", productHandler.GetBySlug)
		api.POST("/products/create", productHandler.Create)
		api.PUT("/products/:id", productHandler.Update)

		uploadHandler := handlers.NewUploadHandler(uploadService)
		uploadGroup := api.Group("/upload")
		uploadGroup.POST("/single", uploadHandler.Single)
		uploadGroup.POST("/multiple", uploadHandler.Multiple)
		uploadGroup.POST("/upload-images", uploadHandler.UploadImages)
		uploadGroup.DELETE("/:publicId", uploadHandler.Delete)

		mediaHandler := handlers.NewMediaHandler(media)
		api.GET("/media", mediaHandler.List)
		api.GET("/media/:publicId", mediaHandler.Get)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
			"path":    c.Request.URL.Path,
		})
	})
}
