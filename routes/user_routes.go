package routes

import (
	"github.com/Govind-619/BrewPoints/controllers"
	"github.com/Govind-619/BrewPoints/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes wires public and authenticated user routes
func initUserRoutes(api *gin.RouterGroup) {
	// Public routes
	api.POST("/register", controllers.Register)
	api.POST("/login", controllers.Login)
	api.GET("/menu", controllers.ListMenu)
	api.GET("/menu/:id", controllers.GetMenuItem)
	api.GET("/categories", controllers.ListCategories)

	// Authenticated routes
	user := api.Group("")
	user.Use(middleware.AuthMiddleware())
	{
		// Loyalty
		user.GET("/points", controllers.GetPointsBalance)
		user.GET("/points/history", controllers.GetPointsHistory)

		// Missions
		user.GET("/missions", controllers.ListMissions)
		user.POST("/missions/:id/checkin", controllers.CheckInMission)
		user.POST("/missions/:id/claim", controllers.ClaimMissionReward)

		// Vouchers
		user.GET("/vouchers", controllers.ListVouchers)
		user.POST("/vouchers/redeem", controllers.RedeemVoucher)

		// Referrals
		user.GET("/referrals", controllers.GetMyReferrals)
		user.POST("/referrals", controllers.CreateReferral)
		user.POST("/referrals/apply", controllers.ApplyReferral)

		// Orders
		user.POST("/orders", controllers.PlaceOrder)
		user.GET("/orders", controllers.ListOrders)
		user.GET("/orders/:id", controllers.GetOrder)
		user.GET("/orders/:id/receipt", controllers.DownloadReceipt)
	}
}
