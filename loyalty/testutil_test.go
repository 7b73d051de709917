package loyalty

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testUserSeq int64

// newTestDB opens an in-memory database with the full schema so the
// transactional paths run for real.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateModels(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, tier Tier) *models.User {
	t.Helper()

	seq := atomic.AddInt64(&testUserSeq, 1)
	user := &models.User{
		Username:          fmt.Sprintf("user_%d", seq),
		Email:             fmt.Sprintf("user_%d@example.com", seq),
		Password:          "hashed",
		Tier:              string(tier),
		TierLastUpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedPoints funds a user through the ledger so balances stay consistent
// with the entries.
func seedPoints(t *testing.T, db *gorm.DB, userID uint, points int) {
	t.Helper()

	_, err := Post(db, userID, points, models.LedgerSourceAdmin, "test seed")
	require.NoError(t, err)
}

func createTestMission(t *testing.T, db *gorm.DB, target, reward int) *models.Mission {
	t.Helper()

	mission := &models.Mission{
		Title:        "Espresso Explorer",
		Type:         models.MissionTypeOrder,
		TargetCount:  target,
		RewardPoints: reward,
		StartDate:    time.Now().AddDate(0, 0, -1),
		EndDate:      time.Now().AddDate(0, 1, 0),
		Active:       true,
	}
	require.NoError(t, db.Create(mission).Error)
	return mission
}

func createCatalogVoucher(t *testing.T, db *gorm.DB, code string, discountType string, value float64, pointsCost *int, expiresAt time.Time) *models.Voucher {
	t.Helper()

	voucher := &models.Voucher{
		Code:          code,
		DiscountType:  discountType,
		DiscountValue: value,
		PointsCost:    pointsCost,
		ExpiresAt:     expiresAt,
		IsActive:      true,
	}
	require.NoError(t, db.Create(voucher).Error)
	return voucher
}

func createPersonalVoucher(t *testing.T, db *gorm.DB, userID uint, code string, discountType string, value float64, expiresAt time.Time) *models.Voucher {
	t.Helper()

	voucher := &models.Voucher{
		UserID:        &userID,
		Code:          code,
		DiscountType:  discountType,
		DiscountValue: value,
		ExpiresAt:     expiresAt,
		IsActive:      true,
	}
	require.NoError(t, db.Create(voucher).Error)
	return voucher
}

func intPtr(v int) *int { return &v }
