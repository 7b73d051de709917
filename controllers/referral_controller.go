package controllers

import (
	"errors"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/loyalty"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
)

// ApplyReferralRequest represents the referral application request body
type ApplyReferralRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetMyReferrals returns the user's invite codes and whether each was used
func GetMyReferrals(c *gin.Context) {
	utils.LogInfo("GetMyReferrals called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var referrals []models.Referral
	if err := config.DB.Where("referrer_id = ?", user.ID).Order("created_at DESC").Find(&referrals).Error; err != nil {
		utils.LogError("Failed to list referrals for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to list referrals", nil)
		return
	}

	formatted := make([]gin.H, len(referrals))
	for i, ref := range referrals {
		formatted[i] = gin.H{
			"code":       ref.Code,
			"used":       ref.UsedBy != nil,
			"created_at": ref.CreatedAt,
		}
	}

	utils.Success(c, "Referrals retrieved successfully", gin.H{
		"referrals":    formatted,
		"bonus_points": loyalty.ReferralBonusPoints,
	})
}

// CreateReferral generates a fresh single-use invite code for the user
func CreateReferral(c *gin.Context) {
	utils.LogInfo("CreateReferral called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	referral, err := loyalty.GenerateReferral(config.DB, user.ID, func() string {
		return utils.GenerateCode("", 8)
	})
	if err != nil {
		utils.LogError("Failed to generate referral for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate referral code", nil)
		return
	}

	utils.Created(c, "Referral code created", gin.H{"code": referral.Code})
}

// ApplyReferral uses another user's invite code, crediting the referrer
func ApplyReferral(c *gin.Context) {
	utils.LogInfo("ApplyReferral called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req ApplyReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	bonus, err := loyalty.UseReferral(config.DB, req.Code, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrReferralNotFound):
			utils.NotFound(c, "Referral code not found")
		case errors.Is(err, loyalty.ErrReferralAlreadyUsed):
			utils.Conflict(c, "Referral code has already been used", nil)
		case errors.Is(err, loyalty.ErrSelfReferral):
			utils.BadRequest(c, "You cannot use your own referral code", nil)
		default:
			utils.LogError("Failed to apply referral %s for user %d: %v", req.Code, user.ID, err)
			utils.InternalServerError(c, "Failed to apply referral code", nil)
		}
		return
	}

	utils.LogInfo("User %d used referral code %s", user.ID, req.Code)
	utils.Success(c, "Referral applied successfully", gin.H{
		"success":        true,
		"referrer_bonus": bonus,
	})
}
