package routes

import (
	"github.com/Govind-619/BrewPoints/controllers"
	"github.com/Govind-619/BrewPoints/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes wires the admin surface
func initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.POST("/login", controllers.AdminLogin)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Menu management
		protected.POST("/menu", controllers.CreateMenuItem)
		protected.PUT("/menu/:id", controllers.UpdateMenuItem)
		protected.DELETE("/menu/:id", controllers.DeleteMenuItem)
		protected.POST("/categories", controllers.CreateCategory)

		// Missions
		protected.GET("/missions", controllers.ListAllMissions)
		protected.POST("/missions", controllers.CreateMission)
		protected.PUT("/missions/:id", controllers.UpdateMission)
		protected.DELETE("/missions/:id", controllers.DeactivateMission)

		// Vouchers
		protected.GET("/vouchers", controllers.ListAllVouchers)
		protected.POST("/vouchers", controllers.CreateVoucher)
		protected.DELETE("/vouchers/:code", controllers.DeactivateVoucher)

		// Users & ledger
		protected.GET("/users", controllers.ListUsers)
		protected.PUT("/users/:id/block", controllers.BlockUser)
		protected.POST("/users/:id/points", controllers.AdjustUserPoints)
		protected.GET("/users/:id/reconcile", controllers.ReconcileUserLedger)
		protected.GET("/ledger/export", controllers.ExportLedger)

		// Maintenance
		protected.POST("/maintenance/sweep", controllers.RunMaintenanceSweep)
	}
}
