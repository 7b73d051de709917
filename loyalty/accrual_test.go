package loyalty

import (
	"testing"

	"github.com/Govind-619/BrewPoints/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsForSpend(t *testing.T) {
	// 100.00 at Gold (x1.2): floor(100 * 10 * 1.2) = 1200
	assert.Equal(t, 1200, PointsForSpend(100.00, TierGold))

	// 4.25 at Bronze: floor(4.25 * 10 * 1.0) = 42
	assert.Equal(t, 42, PointsForSpend(4.25, TierBronze))

	// Fractions truncate, never round up: 4.25 at Silver = floor(46.75)
	assert.Equal(t, 46, PointsForSpend(4.25, TierSilver))

	assert.Equal(t, 0, PointsForSpend(0, TierElite))
	assert.Equal(t, 0, PointsForSpend(0.09, TierBronze))
}

func TestAccrueForSpend(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierGold)

	awarded, balance, err := AccrueForSpend(db, user.ID, 100.00, TierGold, "order #1")
	require.NoError(t, err)
	assert.Equal(t, 1200, awarded)
	assert.Equal(t, 1200, balance)

	var entry models.LedgerEntry
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&entry).Error)
	assert.Equal(t, models.LedgerSourceOrder, entry.Source)
	assert.Equal(t, 1200, entry.Points)

	assert.NoError(t, Reconcile(db, user.ID))
}

func TestAccrueForSpendZeroSkipsLedger(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)

	awarded, balance, err := AccrueForSpend(db, user.ID, 0, TierBronze, "free refill")
	require.NoError(t, err)
	assert.Zero(t, awarded)
	assert.Zero(t, balance)

	// No zero-value entries pollute the ledger.
	var count int64
	require.NoError(t, db.Model(&models.LedgerEntry{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAccrueForSpendNegativeAmount(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)

	_, _, err := AccrueForSpend(db, user.ID, -3.50, TierBronze, "refund")
	assert.ErrorIs(t, err, ErrNegativeSpend)
}
