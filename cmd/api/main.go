package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tifosi-api/internal/cloudinary"
	"tifosi-api/internal/config"
	"tifosi-api/internal/database"
	"tifosi-api/internal/middleware"
	"tifosi-api/internal/ratelimit"
	"tifosi-api/internal/routes"
)

func main() {
	cfg := config.Load()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("error disconnecting from MongoDB")
		}
	}()
	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("could not create indexes")
	}

	uploader, err := cloudinary.New(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatal().Err(err).Msg("could not configure Cloudinary")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20
	// Los public_id llevan "/" codificado como %2F en la URL
	router.UseRawPath = true
	router.Use(
		gin.Recovery(),
		middleware.Logger(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow)),
	)

	routes.RegisterRoutes(router, db, uploader, cfg.Env)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("🚀 Server running")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
