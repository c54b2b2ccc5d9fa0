package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"go-burjo-pos/config"
	"go-burjo-pos/router"
	"go-burjo-pos/services"
	"go-burjo-pos/utils"
)

func main() {
	utils.InitLogger()
	utils.InitJWT()

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.SeedAdmin(db, cfg); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := config.SeedSampleData(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed sample data: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := services.NewRestaurantService(db, cfg.Restaurant)
	r := router.SetupRouter(db, svc)

	utils.InfoLogger.Printf("%s listening on port %s", cfg.Restaurant.Name, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
