package controllers

import (
	"time"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/loyalty"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
)

// RunMaintenanceSweep triggers the daily voucher-expiry and tier-downgrade
// sweep on demand. The sweep is idempotent, so re-running it is safe.
func RunMaintenanceSweep(c *gin.Context) {
	utils.LogInfo("RunMaintenanceSweep called")

	result, err := loyalty.RunDailySweep(config.DB, time.Now())
	if err != nil {
		utils.LogError("Maintenance sweep failed: %v", err)
		utils.InternalServerError(c, "Maintenance sweep failed", err.Error())
		return
	}

	utils.LogInfo("Maintenance sweep done: %d vouchers expired, %d users downgraded",
		result.VouchersExpired, result.UsersDowngraded)
	utils.Success(c, "Maintenance sweep completed", gin.H{
		"vouchers_expired": result.VouchersExpired,
		"users_downgraded": result.UsersDowngraded,
	})
}
