package models

import (
	"time"

	"gorm.io/gorm"
)

// Voucher discount type constants
const (
	DiscountTypePercentage  = "PERCENTAGE"
	DiscountTypeFixedAmount = "FIXED_AMOUNT"
)

// Voucher is a single-use, time-boxed discount instrument. A nil UserID
// marks a shared catalog/promo voucher that users redeem personal copies
// of; a set UserID marks a personal voucher consumable at checkout.
// IsActive only ever flips false (single use or expiry sweep).
type Voucher struct {
	gorm.Model
	UserID        *uint     `json:"user_id" gorm:"index"`
	Code          string    `json:"code" gorm:"uniqueIndex"`
	Description   string    `json:"description"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue float64   `json:"discount_value"`
	PointsCost    *int      `json:"points_cost"`
	ExpiresAt     time.Time `json:"expires_at"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	Used          bool      `json:"used" gorm:"default:false"`
	UsedAt        *time.Time `json:"used_at"`
}
