package main

import (
	"log"
	"time"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/controllers"
	"github.com/Govind-619/BrewPoints/loyalty"
	"github.com/Govind-619/BrewPoints/routes"
	"github.com/Govind-619/BrewPoints/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	_, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Create sample admin
	if err := controllers.CreateSampleAdmin(); err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		log.Fatal("Failed to create sample admin:", err)
	}

	// Create default category if none exists
	if err := controllers.CreateDefaultCategory(); err != nil {
		utils.LogError("Failed to create default category: %v", err)
		log.Fatal("Failed to create default category:", err)
	}

	// The host owns the maintenance schedule; the loyalty engine never
	// schedules itself.
	go runDailySweepLoop()

	// Set up router
	router := routes.SetupRouter()

	// Add middleware
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	utils.LogInfo("Server starting on port 8080")
	// Start server
	if err := router.Run(":8080"); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}

// runDailySweepLoop triggers the voucher-expiry and tier-downgrade sweep
// once every 24 hours
func runDailySweepLoop() {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for now := range ticker.C {
		result, err := loyalty.RunDailySweep(config.DB, now)
		if err != nil {
			utils.LogError("Daily sweep failed: %v", err)
			continue
		}
		utils.LogInfo("Daily sweep: %d vouchers expired, %d users downgraded",
			result.VouchersExpired, result.UsersDowngraded)
	}
}
