package loyalty

import (
	"math"

	"github.com/Govind-619/BrewPoints/models"
	"gorm.io/gorm"
)

// PointsForSpend computes points earned for a monetary spend under a
// tier multiplier. Fractional points truncate toward zero; a spend is
// never rounded up.
func PointsForSpend(spendAmount float64, tier Tier) int {
	if spendAmount <= 0 {
		return 0
	}
	return int(math.Floor(spendAmount * BasePointsPerDollar * MultiplierFor(tier)))
}

// AccrueForSpend credits points for a completed spend and posts the
// matching ORDER ledger entry. A zero-point result skips the ledger post
// entirely rather than recording an empty entry. Returns the points
// awarded and the user's new balance.
func AccrueForSpend(db *gorm.DB, userID uint, spendAmount float64, tier Tier, description string) (int, int, error) {
	if spendAmount < 0 {
		return 0, 0, ErrNegativeSpend
	}

	awarded := PointsForSpend(spendAmount, tier)
	if awarded == 0 {
		balance, err := Balance(db, userID)
		return 0, balance, err
	}

	newBalance, err := Post(db, userID, awarded, models.LedgerSourceOrder, description)
	if err != nil {
		return 0, 0, err
	}
	return awarded, newBalance, nil
}
