// Package loyalty implements the BrewPoints ledger and tier engine: point
// accrual, mission reward claims, voucher redemption and the daily
// maintenance sweep. It has no HTTP dependencies; every operation takes a
// *gorm.DB handle so callers can compose it into their own transactions.
package loyalty

import "time"

// Tier is a named loyalty level conferring a point-earning multiplier.
type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
	TierElite    Tier = "Elite"
)

// tierOrder lists tiers from lowest to highest.
var tierOrder = []Tier{TierBronze, TierSilver, TierGold, TierPlatinum, TierElite}

var tierMultipliers = map[Tier]float64{
	TierBronze:   1.0,
	TierSilver:   1.1,
	TierGold:     1.2,
	TierPlatinum: 1.5,
	TierElite:    2.0,
}

// Lifetime point thresholds for promotion. The host application does not
// auto-promote yet, but the policy supports it.
var tierThresholds = map[Tier]int{
	TierBronze:   0,
	TierSilver:   1000,
	TierGold:     5000,
	TierPlatinum: 15000,
	TierElite:    50000,
}

// MultiplierFor returns the point-earning multiplier for a tier. Unknown
// tiers fall back to the Bronze multiplier.
func MultiplierFor(tier Tier) float64 {
	if m, ok := tierMultipliers[tier]; ok {
		return m
	}
	return tierMultipliers[TierBronze]
}

// IsDowngradeEligible reports whether a user's tier is stale enough to
// drop: non-Bronze and not refreshed for a year or more.
func IsDowngradeEligible(tier Tier, tierLastUpdatedAt, now time.Time) bool {
	if tier == TierBronze {
		return false
	}
	cutoff := now.AddDate(-1, 0, 0)
	return !tierLastUpdatedAt.After(cutoff)
}

// DowngradeTarget returns the tier one step below, with Bronze as the
// floor. The sweep applies exactly one step per run.
func DowngradeTarget(tier Tier) Tier {
	for i, t := range tierOrder {
		if t == tier {
			if i == 0 {
				return TierBronze
			}
			return tierOrder[i-1]
		}
	}
	return TierBronze
}

// TierForLifetimePoints maps lifetime accrual to the highest tier whose
// threshold it meets.
func TierForLifetimePoints(lifetimePoints int) Tier {
	result := TierBronze
	for _, t := range tierOrder {
		if lifetimePoints >= tierThresholds[t] {
			result = t
		}
	}
	return result
}
