package loyalty

import (
	"errors"
	"fmt"

	"github.com/Govind-619/BrewPoints/models"
	"gorm.io/gorm"
)

// GenerateReferral creates a fresh single-use referral code for a
// referrer. newCode supplies candidate codes; generation retries a few
// times on a unique-index collision before giving up.
func GenerateReferral(db *gorm.DB, referrerID uint, newCode func() string) (*models.Referral, error) {
	var lastErr error
	for attempt := 0; attempt < 5; attempt++ {
		referral := models.Referral{Code: newCode(), ReferrerID: referrerID}
		if err := db.Create(&referral).Error; err != nil {
			lastErr = err
			continue
		}
		return &referral, nil
	}
	return nil, fmt.Errorf("failed to generate a unique referral code: %w", lastErr)
}

// UseReferral marks a referral code used by a new user and credits the
// fixed referrer bonus, both in one transaction. UsedBy transitions from
// nil exactly once (conditional update at write time); self-referral is
// rejected. Returns the bonus credited to the referrer.
func UseReferral(db *gorm.DB, code string, newUserID uint) (int, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var referral models.Referral
		if err := tx.Where("code = ?", code).First(&referral).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReferralNotFound
			}
			return err
		}
		if referral.ReferrerID == newUserID {
			return ErrSelfReferral
		}
		if referral.UsedBy != nil {
			return ErrReferralAlreadyUsed
		}

		res := tx.Model(&models.Referral{}).
			Where("id = ? AND used_by IS NULL", referral.ID).
			Update("used_by", newUserID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrReferralAlreadyUsed
		}

		_, err := Post(tx, referral.ReferrerID, ReferralBonusPoints, models.LedgerSourceReferral,
			fmt.Sprintf("Referral bonus for code %s", referral.Code))
		return err
	})
	if err != nil {
		return 0, err
	}
	return ReferralBonusPoints, nil
}
