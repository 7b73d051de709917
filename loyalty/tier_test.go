package loyalty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMultiplierFor(t *testing.T) {
	assert.Equal(t, 1.0, MultiplierFor(TierBronze))
	assert.Equal(t, 1.1, MultiplierFor(TierSilver))
	assert.Equal(t, 1.2, MultiplierFor(TierGold))
	assert.Equal(t, 1.5, MultiplierFor(TierPlatinum))
	assert.Equal(t, 2.0, MultiplierFor(TierElite))

	// Unknown tiers earn at the Bronze rate
	assert.Equal(t, 1.0, MultiplierFor(Tier("Diamond")))
}

func TestMultipliersIncreaseWithTier(t *testing.T) {
	for i := 1; i < len(tierOrder); i++ {
		assert.Greater(t, MultiplierFor(tierOrder[i]), MultiplierFor(tierOrder[i-1]),
			"%s must out-earn %s", tierOrder[i], tierOrder[i-1])
	}
}

func TestIsDowngradeEligible(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	// Bronze is the floor and never downgrades
	assert.False(t, IsDowngradeEligible(TierBronze, now.AddDate(-5, 0, 0), now))

	// Stale for over a year
	assert.True(t, IsDowngradeEligible(TierGold, now.AddDate(-1, -1, 0), now))

	// Exactly a year counts as stale
	assert.True(t, IsDowngradeEligible(TierGold, now.AddDate(-1, 0, 0), now))

	// Refreshed recently
	assert.False(t, IsDowngradeEligible(TierGold, now.AddDate(0, -11, 0), now))
	assert.False(t, IsDowngradeEligible(TierElite, now, now.Add(time.Hour)))
}

func TestDowngradeTarget(t *testing.T) {
	assert.Equal(t, TierPlatinum, DowngradeTarget(TierElite))
	assert.Equal(t, TierGold, DowngradeTarget(TierPlatinum))
	assert.Equal(t, TierSilver, DowngradeTarget(TierGold))
	assert.Equal(t, TierBronze, DowngradeTarget(TierSilver))
	assert.Equal(t, TierBronze, DowngradeTarget(TierBronze))
}

func TestTierForLifetimePoints(t *testing.T) {
	assert.Equal(t, TierBronze, TierForLifetimePoints(0))
	assert.Equal(t, TierBronze, TierForLifetimePoints(999))
	assert.Equal(t, TierSilver, TierForLifetimePoints(1000))
	assert.Equal(t, TierGold, TierForLifetimePoints(5000))
	assert.Equal(t, TierPlatinum, TierForLifetimePoints(15000))
	assert.Equal(t, TierElite, TierForLifetimePoints(50000))
	assert.Equal(t, TierElite, TierForLifetimePoints(1000000))
}
