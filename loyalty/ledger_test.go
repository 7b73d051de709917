package loyalty

import (
	"testing"

	"github.com/Govind-619/BrewPoints/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCreditAndDebit(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)

	balance, err := Post(db, user.ID, 100, models.LedgerSourceOrder, "first order")
	require.NoError(t, err)
	assert.Equal(t, 100, balance)

	balance, err = Post(db, user.ID, -40, models.LedgerSourceRedemption, "voucher redemption")
	require.NoError(t, err)
	assert.Equal(t, 60, balance)

	var entries []models.LedgerEntry
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&entries).Error)
	assert.Len(t, entries, 2)

	assert.NoError(t, Reconcile(db, user.ID))
}

func TestPostTracksLifetimePointsOnCreditOnly(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)

	_, err := Post(db, user.ID, 500, models.LedgerSourceOrder, "order")
	require.NoError(t, err)
	_, err = Post(db, user.ID, -200, models.LedgerSourceRedemption, "spend")
	require.NoError(t, err)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, 300, updated.Points)
	assert.Equal(t, 500, updated.LifetimePoints)
}

func TestPostRejectsOverdraft(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)
	seedPoints(t, db, user.ID, 30)

	_, err := Post(db, user.ID, -50, models.LedgerSourceRedemption, "too expensive")
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	// The failed debit left no trace: balance intact, no entry appended.
	balance, err := Balance(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, balance)

	var count int64
	require.NoError(t, db.Model(&models.LedgerEntry{}).
		Where("user_id = ? AND points < 0", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPostUnknownUser(t *testing.T) {
	db := newTestDB(t)

	_, err := Post(db, 9999, 10, models.LedgerSourceOrder, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHistoryMostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)

	for _, points := range []int{10, 20, 30} {
		_, err := Post(db, user.ID, points, models.LedgerSourceOrder, "order")
		require.NoError(t, err)
	}

	entries, total, err := History(db, user.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, entries, 3)
	assert.Equal(t, 30, entries[0].Points)
	assert.Equal(t, 10, entries[2].Points)

	// Restartable: the same query returns the same page.
	again, _, err := History(db, user.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, entries[0].ID, again[0].ID)
}

func TestHistoryUnknownUser(t *testing.T) {
	db := newTestDB(t)

	_, _, err := History(db, 4242, 10, 0)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestReconcileDetectsDrift(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)
	seedPoints(t, db, user.ID, 100)

	require.NoError(t, Reconcile(db, user.ID))

	// Corrupt the balance behind the ledger's back.
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("points", 150).Error)

	err := Reconcile(db, user.ID)
	require.Error(t, err)

	var consistencyErr *ConsistencyError
	require.ErrorAs(t, err, &consistencyErr)
	assert.Equal(t, user.ID, consistencyErr.UserID)
	assert.Equal(t, 100, consistencyErr.LedgerSum)
	assert.Equal(t, 150, consistencyErr.Balance)
}
