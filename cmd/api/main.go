package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Expertman131/beauty-track-sub001/internal/cache"
	"github.com/Expertman131/beauty-track-sub001/internal/config"
	dbpkg "github.com/Expertman131/beauty-track-sub001/internal/db"
	"github.com/Expertman131/beauty-track-sub001/internal/routes"
)

func main() {

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	availabilityCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	if availabilityCache.Enabled() {
		log.Printf("Availability cache enabled (redis %s)", cfg.RedisAddr)
	} else {
		log.Printf("Availability cache disabled")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, availabilityCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
