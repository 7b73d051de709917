package controllers

import (
	"errors"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/loyalty"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
)

// GetPointsBalance returns the user's current balance, tier and multiplier
func GetPointsBalance(c *gin.Context) {
	utils.LogInfo("GetPointsBalance called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	balance, err := loyalty.Balance(config.DB, user.ID)
	if err != nil {
		if errors.Is(err, loyalty.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		utils.LogError("Failed to get balance for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to get balance", nil)
		return
	}

	tier := loyalty.Tier(user.Tier)
	utils.Success(c, "Balance retrieved successfully", gin.H{
		"points":          balance,
		"lifetime_points": user.LifetimePoints,
		"tier":            user.Tier,
		"multiplier":      loyalty.MultiplierFor(tier),
	})
}

// GetPointsHistory returns the user's ledger entries, most recent first
func GetPointsHistory(c *gin.Context) {
	utils.LogInfo("GetPointsHistory called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	entries, total, err := loyalty.History(config.DB, user.ID, limit, offset)
	if err != nil {
		utils.LogError("Failed to get ledger history for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to get points history", nil)
		return
	}

	formatted := make([]gin.H, len(entries))
	for i, entry := range entries {
		formatted[i] = gin.H{
			"id":          entry.ID,
			"points":      entry.Points,
			"source":      entry.Source,
			"description": entry.Description,
			"created_at":  entry.CreatedAt,
		}
	}

	utils.SuccessWithPagination(c, "Points history retrieved successfully", formatted, total, page, limit)
}
