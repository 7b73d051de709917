package loyalty

import (
	"errors"
	"time"

	"github.com/Govind-619/BrewPoints/models"
	"gorm.io/gorm"
)

// Points are credited at BasePointsPerDollar per currency unit spent,
// scaled by the tier multiplier.
const BasePointsPerDollar = 10

// ReferralBonusPoints is the fixed bonus credited to a referrer when
// their code is used.
const ReferralBonusPoints = 200

// Post appends one ledger entry and applies the same delta to the user's
// balance as a single atomic unit. Negative points are a spend; the
// balance is guarded at write time so it can never go below zero
// (ErrInsufficientPoints). Returns the new balance.
func Post(db *gorm.DB, userID uint, points int, source, description string) (int, error) {
	newBalance := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		update := tx.Model(&models.User{}).Where("id = ?", userID)
		if points < 0 {
			// Conditional at write time, not read time, so two
			// concurrent spends cannot overdraw the balance.
			update = update.Where("points >= ?", -points)
		}
		res := update.Update("points", gorm.Expr("points + ?", points))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientPoints
		}

		if points > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				Update("lifetime_points", gorm.Expr("lifetime_points + ?", points)).Error; err != nil {
				return err
			}
		}

		entry := models.LedgerEntry{
			UserID:      userID,
			Points:      points,
			Source:      source,
			Description: description,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		newBalance = user.Points
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Balance returns the user's current redeemable point balance.
func Balance(db *gorm.DB, userID uint) (int, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.Points, nil
}

// History returns the user's ledger entries most-recent-first. It is a
// pure query and safe to re-run.
func History(db *gorm.DB, userID uint, limit, offset int) ([]models.LedgerEntry, int64, error) {
	if _, err := Balance(db, userID); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.Model(&models.LedgerEntry{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.LedgerEntry
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// Reconcile checks that the ledger sum for a user matches the stored
// balance, returning a ConsistencyError on mismatch. Exposed for tests
// and debugging; a mismatch in production is a bug.
func Reconcile(db *gorm.DB, userID uint) error {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	var sum int64
	if err := db.Model(&models.LedgerEntry{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&sum).Error; err != nil {
		return err
	}

	if int(sum) != user.Points {
		return &ConsistencyError{UserID: userID, LedgerSum: int(sum), Balance: user.Points}
	}
	return nil
}
