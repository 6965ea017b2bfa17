package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"jobportal/internal/config"
	"jobportal/internal/database"
	"jobportal/internal/handlers"
	"jobportal/internal/logger"
	"jobportal/internal/services"
	"jobportal/internal/store"
)

func main() {
	logger.Init()

	cfg := config.Load()

	// Pick the store backing: volatile memory for single-node dev runs,
	// the relational engine for everything else.
	var stores *store.Stores
	switch cfg.StoreBackend {
	case "memory":
		log.Info().Msg("Using in-memory stores (volatile)")
		stores = store.NewMemoryStores()
	case "database":
		db, err := database.Connect(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		stores = store.NewGormStores(db)
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("Unknown STORE_BACKEND")
	}

	if cfg.DigestSchedule != "" {
		digest := services.NewDigestService(stores)
		if err := digest.Start(cfg.DigestSchedule); err != nil {
			log.Fatal().Err(err).Msg("Failed to start digest service")
		}
		defer digest.Stop()
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(rateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	handlers.RegisterRoutes(r, stores)

	log.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
