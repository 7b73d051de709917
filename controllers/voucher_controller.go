package controllers

import (
	"errors"
	"time"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/loyalty"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
)

// RedeemVoucherRequest represents the voucher redemption request body
type RedeemVoucherRequest struct {
	Code string `json:"code" binding:"required"`
}

// ListVouchers returns the catalog of redeemable vouchers plus the user's
// own unused vouchers
func ListVouchers(c *gin.Context) {
	utils.LogInfo("ListVouchers called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)
	now := time.Now()

	var catalog []models.Voucher
	if err := config.DB.Where("user_id IS NULL AND is_active = ? AND expires_at > ?", true, now).
		Order("points_cost ASC").Find(&catalog).Error; err != nil {
		utils.LogError("Failed to list voucher catalog: %v", err)
		utils.InternalServerError(c, "Failed to list vouchers", nil)
		return
	}

	var mine []models.Voucher
	if err := config.DB.Where("user_id = ? AND used = ? AND is_active = ? AND expires_at > ?", user.ID, false, true, now).
		Order("expires_at ASC").Find(&mine).Error; err != nil {
		utils.LogError("Failed to list user vouchers: %v", err)
		utils.InternalServerError(c, "Failed to list vouchers", nil)
		return
	}

	utils.Success(c, "Vouchers retrieved successfully", gin.H{
		"catalog":     catalog,
		"my_vouchers": mine,
	})
}

// RedeemVoucher exchanges points for a personal copy of a catalog voucher
func RedeemVoucher(c *gin.Context) {
	utils.LogInfo("RedeemVoucher called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req RedeemVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	voucher, err := loyalty.Redeem(config.DB, user.ID, req.Code, func() string {
		return utils.GenerateCode("BREW", 8)
	})
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrInvalidVoucher):
			utils.BadRequest(c, "Invalid or inactive voucher", nil)
		case errors.Is(err, loyalty.ErrInsufficientPoints):
			utils.BadRequest(c, "Not enough points to redeem this voucher", nil)
		default:
			utils.LogError("Failed to redeem voucher %s for user %d: %v", req.Code, user.ID, err)
			utils.InternalServerError(c, "Failed to redeem voucher", nil)
		}
		return
	}

	balance, _ := loyalty.Balance(config.DB, user.ID)
	utils.LogInfo("User %d redeemed voucher %s, issued %s", user.ID, req.Code, voucher.Code)
	utils.Success(c, "Voucher redeemed successfully", gin.H{
		"success":     true,
		"voucher":     voucher,
		"new_balance": balance,
	})
}
