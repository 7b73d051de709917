package loyalty

import (
	"errors"
	"fmt"
	"time"

	"github.com/Govind-619/BrewPoints/models"
	"gorm.io/gorm"
)

// ApplyToCheckout computes the discount a voucher grants against a
// subtotal. Percentage vouchers take value% of the subtotal, fixed
// vouchers take their value outright; either way the discount is capped
// at the subtotal so the total can never go below zero.
func ApplyToCheckout(voucher *models.Voucher, subtotal float64) float64 {
	var discount float64
	switch voucher.DiscountType {
	case models.DiscountTypePercentage:
		discount = subtotal * voucher.DiscountValue / 100
	case models.DiscountTypeFixedAmount:
		discount = voucher.DiscountValue
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// Redeem exchanges points for a personal copy of a shared catalog
// voucher. The catalog template (nil UserID) is never consumed; the
// issued copy carries a fresh code, no points cost, and the template's
// expiry. The points deduction and the issuance commit together or not
// at all. Personal voucher codes cannot be redeemed again.
func Redeem(db *gorm.DB, userID uint, code string, issueCode func() string) (*models.Voucher, error) {
	var issued models.Voucher
	err := db.Transaction(func(tx *gorm.DB) error {
		var template models.Voucher
		if err := tx.Where("code = ?", code).First(&template).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidVoucher
			}
			return err
		}
		if template.UserID != nil || !template.IsActive || template.Used {
			return ErrInvalidVoucher
		}
		// Expiry is checked live, never left to the sweep.
		if time.Now().After(template.ExpiresAt) {
			return ErrInvalidVoucher
		}

		if template.PointsCost != nil && *template.PointsCost > 0 {
			if _, err := Post(tx, userID, -*template.PointsCost, models.LedgerSourceRedemption,
				fmt.Sprintf("Redeemed voucher %s", template.Code)); err != nil {
				return err
			}
		}

		issued = models.Voucher{
			UserID:        &userID,
			Code:          issueCode(),
			Description:   template.Description,
			DiscountType:  template.DiscountType,
			DiscountValue: template.DiscountValue,
			ExpiresAt:     template.ExpiresAt,
			IsActive:      true,
		}
		return tx.Create(&issued).Error
	})
	if err != nil {
		return nil, err
	}
	return &issued, nil
}

// ConsumeAtCheckout applies a personal voucher to an order subtotal and
// burns it. The used/active flags are checked conditionally at write
// time, so a concurrent second use of the same voucher gets
// ErrInvalidVoucher. Expired vouchers are rejected even before the sweep
// has deactivated them. Returns the discount and the consumed voucher.
func ConsumeAtCheckout(db *gorm.DB, userID uint, code string, subtotal float64) (float64, *models.Voucher, error) {
	var voucher models.Voucher
	var discount float64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("code = ? AND user_id = ?", code, userID).First(&voucher).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidVoucher
			}
			return err
		}
		if !voucher.IsActive || voucher.Used {
			return ErrInvalidVoucher
		}
		now := time.Now()
		if now.After(voucher.ExpiresAt) {
			return ErrInvalidVoucher
		}

		discount = ApplyToCheckout(&voucher, subtotal)

		res := tx.Model(&models.Voucher{}).
			Where("id = ? AND used = ? AND is_active = ?", voucher.ID, false, true).
			Updates(map[string]interface{}{
				"used":      true,
				"is_active": false,
				"used_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidVoucher
		}
		voucher.Used = true
		voucher.IsActive = false
		voucher.UsedAt = &now
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return discount, &voucher, nil
}
