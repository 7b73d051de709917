package controllers

import (
	"time"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
)

// VoucherRequest represents the create promo voucher request body
type VoucherRequest struct {
	Code          string    `json:"code"`
	Description   string    `json:"description"`
	DiscountType  string    `json:"discount_type" binding:"required"`
	DiscountValue float64   `json:"discount_value" binding:"required"`
	PointsCost    *int      `json:"points_cost"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// CreateVoucher adds a shared catalog/promo voucher. Users redeem
// personal copies of it; the template itself is never consumed.
func CreateVoucher(c *gin.Context) {
	utils.LogInfo("CreateVoucher called")

	var req VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.DiscountType != models.DiscountTypePercentage && req.DiscountType != models.DiscountTypeFixedAmount {
		utils.BadRequest(c, "Discount type must be PERCENTAGE or FIXED_AMOUNT", nil)
		return
	}
	if req.DiscountValue <= 0 {
		utils.BadRequest(c, "Discount value must be positive", nil)
		return
	}
	if req.DiscountType == models.DiscountTypePercentage && req.DiscountValue > 100 {
		utils.BadRequest(c, "Percentage discount cannot exceed 100", nil)
		return
	}
	if req.PointsCost != nil && *req.PointsCost < 0 {
		utils.BadRequest(c, "Points cost cannot be negative", nil)
		return
	}

	code := req.Code
	if code == "" {
		code = utils.GenerateCode("PROMO", 8)
	}
	expiresAt := req.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().AddDate(0, 0, utils.DefaultVoucherValidityDays)
	}

	voucher := models.Voucher{
		Code:          code,
		Description:   req.Description,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		PointsCost:    req.PointsCost,
		ExpiresAt:     expiresAt,
		IsActive:      true,
	}
	if err := config.DB.Create(&voucher).Error; err != nil {
		utils.LogError("Failed to create voucher: %v", err)
		utils.Conflict(c, "Failed to create voucher, code may already exist", nil)
		return
	}

	utils.Created(c, "Voucher created successfully", voucher)
}

// ListAllVouchers returns all vouchers, templates and personal copies
func ListAllVouchers(c *gin.Context) {
	utils.LogInfo("ListAllVouchers called")

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	var total int64
	if err := config.DB.Model(&models.Voucher{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count vouchers: %v", err)
		utils.InternalServerError(c, "Failed to list vouchers", nil)
		return
	}

	var vouchers []models.Voucher
	if err := config.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&vouchers).Error; err != nil {
		utils.LogError("Failed to list vouchers: %v", err)
		utils.InternalServerError(c, "Failed to list vouchers", nil)
		return
	}

	utils.SuccessWithPagination(c, "Vouchers retrieved successfully", vouchers, total, page, limit)
}

// DeactivateVoucher turns a voucher off before its natural expiry
func DeactivateVoucher(c *gin.Context) {
	utils.LogInfo("DeactivateVoucher called")

	code := c.Param("code")
	res := config.DB.Model(&models.Voucher{}).Where("code = ?", code).Update("is_active", false)
	if res.Error != nil {
		utils.LogError("Failed to deactivate voucher %s: %v", code, res.Error)
		utils.InternalServerError(c, "Failed to deactivate voucher", nil)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "Voucher not found")
		return
	}

	utils.Success(c, "Voucher deactivated successfully", nil)
}
