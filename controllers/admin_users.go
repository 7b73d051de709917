package controllers

import (
	"errors"
	"strconv"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/loyalty"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
)

// ListUsers returns users with their loyalty state
func ListUsers(c *gin.Context) {
	utils.LogInfo("ListUsers called")

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.User{})
	if tier := c.Query("tier"); tier != "" {
		query = query.Where("tier = ?", tier)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("username ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to list users", nil)
		return
	}

	var users []models.User
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		utils.LogError("Failed to list users: %v", err)
		utils.InternalServerError(c, "Failed to list users", nil)
		return
	}

	formatted := make([]gin.H, len(users))
	for i, user := range users {
		formatted[i] = gin.H{
			"id":                   user.ID,
			"username":             user.Username,
			"email":                user.Email,
			"points":               user.Points,
			"lifetime_points":      user.LifetimePoints,
			"tier":                 user.Tier,
			"tier_last_updated_at": user.TierLastUpdatedAt,
			"is_blocked":           user.IsBlocked,
		}
	}

	utils.SuccessWithPagination(c, "Users retrieved successfully", formatted, total, page, limit)
}

// AdjustUserPoints applies an administrative point correction through the
// ledger, never by writing the balance directly
func AdjustUserPoints(c *gin.Context) {
	utils.LogInfo("AdjustUserPoints called")

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	var req struct {
		Points      int    `json:"points" binding:"required"`
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	newBalance, err := loyalty.Post(config.DB, uint(userID), req.Points, models.LedgerSourceAdmin, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrUserNotFound):
			utils.NotFound(c, "User not found")
		case errors.Is(err, loyalty.ErrInsufficientPoints):
			utils.BadRequest(c, "Adjustment would take the balance below zero", nil)
		default:
			utils.LogError("Failed to adjust points for user %d: %v", userID, err)
			utils.InternalServerError(c, "Failed to adjust points", nil)
		}
		return
	}

	utils.LogInfo("Admin adjusted user %d by %d points", userID, req.Points)
	utils.Success(c, "Points adjusted successfully", gin.H{"new_balance": newBalance})
}

// ReconcileUserLedger verifies the ledger sum against the stored balance
func ReconcileUserLedger(c *gin.Context) {
	utils.LogInfo("ReconcileUserLedger called")

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	if err := loyalty.Reconcile(config.DB, uint(userID)); err != nil {
		var consistencyErr *loyalty.ConsistencyError
		switch {
		case errors.Is(err, loyalty.ErrUserNotFound):
			utils.NotFound(c, "User not found")
		case errors.As(err, &consistencyErr):
			// Never swallowed: a mismatch is a bug that needs eyes on it.
			utils.LogError("Ledger inconsistency detected: %v", consistencyErr)
			utils.InternalServerError(c, "Ledger inconsistency detected", gin.H{
				"ledger_sum": consistencyErr.LedgerSum,
				"balance":    consistencyErr.Balance,
			})
		default:
			utils.LogError("Failed to reconcile user %d: %v", userID, err)
			utils.InternalServerError(c, "Failed to reconcile ledger", nil)
		}
		return
	}

	utils.Success(c, "Ledger is consistent", gin.H{"consistent": true})
}

// BlockUser blocks a user account
func BlockUser(c *gin.Context) {
	utils.LogInfo("BlockUser called")

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	res := config.DB.Model(&models.User{}).Where("id = ?", userID).Update("is_blocked", true)
	if res.Error != nil {
		utils.LogError("Failed to block user %d: %v", userID, res.Error)
		utils.InternalServerError(c, "Failed to block user", nil)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, "User blocked successfully", nil)
}
