package loyalty

import (
	"time"

	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"gorm.io/gorm"
)

// SweepResult reports what a maintenance sweep changed.
type SweepResult struct {
	VouchersExpired int64 `json:"vouchers_expired"`
	UsersDowngraded int64 `json:"users_downgraded"`
}

// RunDailySweep runs the two maintenance passes: deactivate expired
// vouchers, then drop stale tiers one step. Each pass is idempotent and
// safe to re-run; a user whose tier has been frozen for years loses one
// step per run, not all at once. Per-user failures are logged and the
// sweep continues. The engine never schedules this itself - the host
// owns the trigger.
func RunDailySweep(db *gorm.DB, now time.Time) (SweepResult, error) {
	var result SweepResult

	res := db.Model(&models.Voucher{}).
		Where("expires_at < ? AND is_active = ?", now, true).
		Update("is_active", false)
	if res.Error != nil {
		return result, res.Error
	}
	result.VouchersExpired = res.RowsAffected

	cutoff := now.AddDate(-1, 0, 0)
	var users []models.User
	if err := db.Where("tier <> ? AND tier_last_updated_at <= ?", string(TierBronze), cutoff).
		Find(&users).Error; err != nil {
		return result, err
	}

	for _, user := range users {
		target := DowngradeTarget(Tier(user.Tier))
		// Conditional on the current tier so a concurrent promotion is
		// not clobbered.
		res := db.Model(&models.User{}).
			Where("id = ? AND tier = ?", user.ID, user.Tier).
			Updates(map[string]interface{}{
				"tier":                 string(target),
				"tier_last_updated_at": now,
			})
		if res.Error != nil {
			utils.LogError("Sweep: failed to downgrade user %d: %v", user.ID, res.Error)
			continue
		}
		if res.RowsAffected > 0 {
			result.UsersDowngraded++
		}
	}

	return result, nil
}
