package loyalty

import (
	"fmt"
	"testing"

	"github.com/Govind-619/BrewPoints/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReferral(t *testing.T) {
	db := newTestDB(t)
	referrer := createTestUser(t, db, TierBronze)

	referral, err := GenerateReferral(db, referrer.ID, func() string { return "REF-ABC" })
	require.NoError(t, err)
	assert.Equal(t, "REF-ABC", referral.Code)
	assert.Equal(t, referrer.ID, referral.ReferrerID)
	assert.Nil(t, referral.UsedBy)
}

func TestGenerateReferralRetriesOnCollision(t *testing.T) {
	db := newTestDB(t)
	referrer := createTestUser(t, db, TierBronze)

	_, err := GenerateReferral(db, referrer.ID, func() string { return "REF-DUP" })
	require.NoError(t, err)

	// First candidate collides with the existing code, second succeeds.
	attempt := 0
	referral, err := GenerateReferral(db, referrer.ID, func() string {
		attempt++
		if attempt == 1 {
			return "REF-DUP"
		}
		return fmt.Sprintf("REF-DUP-%d", attempt)
	})
	require.NoError(t, err)
	assert.NotEqual(t, "REF-DUP", referral.Code)
}

func TestUseReferral(t *testing.T) {
	db := newTestDB(t)
	referrer := createTestUser(t, db, TierBronze)
	friend := createTestUser(t, db, TierBronze)
	_, err := GenerateReferral(db, referrer.ID, func() string { return "REF-1" })
	require.NoError(t, err)

	bonus, err := UseReferral(db, "REF-1", friend.ID)
	require.NoError(t, err)
	assert.Equal(t, ReferralBonusPoints, bonus)

	balance, err := Balance(db, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, ReferralBonusPoints, balance)

	var entry models.LedgerEntry
	require.NoError(t, db.Where("user_id = ? AND source = ?",
		referrer.ID, models.LedgerSourceReferral).First(&entry).Error)
	assert.Equal(t, ReferralBonusPoints, entry.Points)

	assert.NoError(t, Reconcile(db, referrer.ID))
}

func TestUseReferralTwiceCreditsOnce(t *testing.T) {
	db := newTestDB(t)
	referrer := createTestUser(t, db, TierBronze)
	first := createTestUser(t, db, TierBronze)
	second := createTestUser(t, db, TierBronze)
	_, err := GenerateReferral(db, referrer.ID, func() string { return "REF-1" })
	require.NoError(t, err)

	_, err = UseReferral(db, "REF-1", first.ID)
	require.NoError(t, err)

	_, err = UseReferral(db, "REF-1", second.ID)
	assert.ErrorIs(t, err, ErrReferralAlreadyUsed)

	// Exactly one bonus landed.
	balance, err := Balance(db, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, ReferralBonusPoints, balance)

	var count int64
	require.NoError(t, db.Model(&models.LedgerEntry{}).
		Where("user_id = ? AND source = ?", referrer.ID, models.LedgerSourceReferral).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUseReferralSelf(t *testing.T) {
	db := newTestDB(t)
	referrer := createTestUser(t, db, TierBronze)
	_, err := GenerateReferral(db, referrer.ID, func() string { return "REF-ME" })
	require.NoError(t, err)

	_, err = UseReferral(db, "REF-ME", referrer.ID)
	assert.ErrorIs(t, err, ErrSelfReferral)

	// The code stays unused.
	var referral models.Referral
	require.NoError(t, db.Where("code = ?", "REF-ME").First(&referral).Error)
	assert.Nil(t, referral.UsedBy)
}

func TestUseReferralUnknownCode(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)

	_, err := UseReferral(db, "NO-SUCH-CODE", user.ID)
	assert.ErrorIs(t, err, ErrReferralNotFound)
}
