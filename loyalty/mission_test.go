package loyalty

import (
	"testing"

	"github.com/Govind-619/BrewPoints/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementProgress(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)
	mission := createTestMission(t, db, 3, 150)

	um, err := IncrementProgress(db, user.ID, mission.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, um.Progress)
	assert.False(t, um.Completed)

	um, err = IncrementProgress(db, user.ID, mission.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, um.Progress)
	assert.False(t, um.Completed)

	um, err = IncrementProgress(db, user.ID, mission.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, um.Progress)
	assert.True(t, um.Completed)

	// Progress keeps counting past the target; completed stays set.
	um, err = IncrementProgress(db, user.ID, mission.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, um.Progress)
	assert.True(t, um.Completed)
}

func TestIncrementProgressCompletesImmediatelyOnFirstStep(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)
	mission := createTestMission(t, db, 1, 50)

	um, err := IncrementProgress(db, user.ID, mission.ID, 1)
	require.NoError(t, err)
	assert.True(t, um.Completed)
}

func TestIncrementProgressInactiveMission(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)
	mission := createTestMission(t, db, 3, 150)
	require.NoError(t, db.Model(mission).Update("active", false).Error)

	_, err := IncrementProgress(db, user.ID, mission.ID, 1)
	assert.ErrorIs(t, err, ErrMissionNotFound)
}

func TestClaimLifecycle(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)
	mission := createTestMission(t, db, 2, 150)

	// Never started
	_, err := Claim(db, user.ID, mission.ID)
	assert.ErrorIs(t, err, ErrMissionNotStarted)

	// Started but not completed
	_, err = IncrementProgress(db, user.ID, mission.ID, 1)
	require.NoError(t, err)
	_, err = Claim(db, user.ID, mission.ID)
	assert.ErrorIs(t, err, ErrMissionNotCompleted)

	// Completed: claim pays out once
	_, err = IncrementProgress(db, user.ID, mission.ID, 1)
	require.NoError(t, err)
	awarded, err := Claim(db, user.ID, mission.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, awarded)

	balance, err := Balance(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, balance)

	var entry models.LedgerEntry
	require.NoError(t, db.Where("user_id = ? AND source = ?", user.ID, models.LedgerSourceMission).First(&entry).Error)
	assert.Equal(t, 150, entry.Points)
}

func TestClaimTwiceAwardsOnce(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)
	mission := createTestMission(t, db, 1, 200)

	_, err := IncrementProgress(db, user.ID, mission.ID, 1)
	require.NoError(t, err)

	awarded, err := Claim(db, user.ID, mission.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, awarded)

	// Second claim is rejected and moves nothing.
	_, err = Claim(db, user.ID, mission.ID)
	assert.ErrorIs(t, err, ErrRewardAlreadyClaimed)

	balance, err := Balance(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, balance)

	var count int64
	require.NoError(t, db.Model(&models.LedgerEntry{}).
		Where("user_id = ? AND source = ?", user.ID, models.LedgerSourceMission).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.NoError(t, Reconcile(db, user.ID))
}

func TestClaimZeroRewardStillMarksClaimed(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)
	mission := createTestMission(t, db, 1, 0)

	_, err := IncrementProgress(db, user.ID, mission.ID, 1)
	require.NoError(t, err)

	awarded, err := Claim(db, user.ID, mission.ID)
	require.NoError(t, err)
	assert.Zero(t, awarded)

	var um models.UserMission
	require.NoError(t, db.Where("user_id = ? AND mission_id = ?", user.ID, mission.ID).First(&um).Error)
	assert.True(t, um.RewardClaimed)

	// No ledger entry for a zero reward.
	var count int64
	require.NoError(t, db.Model(&models.LedgerEntry{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)

	_, err = Claim(db, user.ID, mission.ID)
	assert.ErrorIs(t, err, ErrRewardAlreadyClaimed)
}

func TestClaimUnknownMission(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, TierBronze)

	_, err := Claim(db, user.ID, 777)
	assert.ErrorIs(t, err, ErrMissionNotFound)
}
