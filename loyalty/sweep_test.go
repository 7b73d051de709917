package loyalty

import (
	"testing"
	"time"

	"github.com/Govind-619/BrewPoints/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setTierAge(t *testing.T, db *gorm.DB, userID uint, updatedAt time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", userID).
		Update("tier_last_updated_at", updatedAt).Error)
}

func TestSweepExpiresVouchers(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)
	now := time.Now()

	createCatalogVoucher(t, db, "DEAD1", models.DiscountTypePercentage, 10, nil, now.Add(-48*time.Hour))
	createPersonalVoucher(t, db, user.ID, "DEAD2", models.DiscountTypeFixedAmount, 5, now.Add(-time.Hour))
	createCatalogVoucher(t, db, "ALIVE", models.DiscountTypePercentage, 10, nil, now.Add(24*time.Hour))

	result, err := RunDailySweep(db, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.VouchersExpired)

	var alive models.Voucher
	require.NoError(t, db.Where("code = ?", "ALIVE").First(&alive).Error)
	assert.True(t, alive.IsActive)

	var dead models.Voucher
	require.NoError(t, db.Where("code = ?", "DEAD1").First(&dead).Error)
	assert.False(t, dead.IsActive)

	// Re-running finds nothing left to expire.
	result, err = RunDailySweep(db, now)
	require.NoError(t, err)
	assert.Zero(t, result.VouchersExpired)
}

func TestSweepDowngradesOneStepPerRun(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierElite)
	now := time.Now()
	// Frozen for three years, but each sweep drops exactly one step.
	setTierAge(t, db, user.ID, now.AddDate(-3, 0, 0))

	result, err := RunDailySweep(db, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.UsersDowngraded)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, string(TierPlatinum), reloaded.Tier)

	// The downgrade reset the staleness clock, so an immediate second
	// sweep leaves the user alone.
	result, err = RunDailySweep(db, now)
	require.NoError(t, err)
	assert.Zero(t, result.UsersDowngraded)

	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, string(TierPlatinum), reloaded.Tier)
}

func TestSweepSkipsFreshAndBronzeUsers(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	fresh := createTestUser(t, db, TierGold)
	setTierAge(t, db, fresh.ID, now.AddDate(0, -6, 0))

	bronze := createTestUser(t, db, TierBronze)
	setTierAge(t, db, bronze.ID, now.AddDate(-5, 0, 0))

	result, err := RunDailySweep(db, now)
	require.NoError(t, err)
	assert.Zero(t, result.UsersDowngraded)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, fresh.ID).Error)
	assert.Equal(t, string(TierGold), reloaded.Tier)
	var reloadedBronze models.User
	require.NoError(t, db.First(&reloadedBronze, bronze.ID).Error)
	assert.Equal(t, string(TierBronze), reloadedBronze.Tier)
}

func TestSweepDowngradeExactlyOneYear(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	user := createTestUser(t, db, TierSilver)
	setTierAge(t, db, user.ID, now.AddDate(-1, 0, 0))

	result, err := RunDailySweep(db, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.UsersDowngraded)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, string(TierBronze), reloaded.Tier)
}
