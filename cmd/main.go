package main

import (
	"database/sql"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/Mulith/create-video-short/application/services"
	"github.com/Mulith/create-video-short/config"
	"github.com/Mulith/create-video-short/infrastructure/adapters"
	"github.com/Mulith/create-video-short/infrastructure/gin_interface/controllers"
	"github.com/Mulith/create-video-short/middleware"
)

const maxConcurrentPipelines = 16

func main() {
	// Missing .env is fine in deployed environments; configs below still
	// fail hard on absent variables.
	_ = godotenv.Load()

	elevenLabsConfig, err := config.GetElevenLabsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get eleven labs config")
	}

	rendererConfig, err := config.GetRendererConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get renderer config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	postgresConfig, err := config.GetPostgresConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get postgres config")
	}

	serverConfig := config.GetServerConfig()

	logger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		logger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(maxConcurrentPipelines, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	db, err := sql.Open("postgres", postgresConfig.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database connection")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to reach database")
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(s3Config.Region)})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create aws session")
	}
	s3Client := s3.New(sess)

	contentStore := adapters.NewPostgresContentStore(db, logger)
	narrator := adapters.NewElevenLabsNarrator(nil, elevenLabsConfig, logger)
	renderer := adapters.NewRendererClient(nil, rendererConfig, logger)
	publisher := adapters.NewS3ArtifactPublisher(s3Client, s3Config, logger)

	videoPipeline := services.NewVideoPipeline(logger, contentStore, narrator, renderer, publisher)

	videoController := controllers.NewVideoController(logger, workerPool, videoPipeline)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies")
	}

	router.Use(middleware.CORSMiddleware(serverConfig.AllowedOrigins))
	router.Use(middleware.RequestLogger(logger))

	videoController.RegisterRoutes(router)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
