package loyalty

import (
	"errors"
	"fmt"

	"github.com/Govind-619/BrewPoints/models"
	"gorm.io/gorm"
)

// IncrementProgress advances a user's progress on a mission, creating the
// tracking row lazily on first progress. Progress is monotonically
// non-decreasing; Completed flips true once progress reaches the target.
// Points are never posted here - claiming is always a separate, explicit
// step.
func IncrementProgress(db *gorm.DB, userID, missionID uint, amount int) (*models.UserMission, error) {
	if amount < 1 {
		amount = 1
	}

	var um models.UserMission
	err := db.Transaction(func(tx *gorm.DB) error {
		var mission models.Mission
		if err := tx.Where("id = ? AND active = ?", missionID, true).First(&mission).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMissionNotFound
			}
			return err
		}

		if err := tx.Where("user_id = ? AND mission_id = ?", userID, missionID).First(&um).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			um = models.UserMission{UserID: userID, MissionID: missionID, Progress: amount}
			if um.Progress >= mission.TargetCount {
				um.Completed = true
			}
			return tx.Create(&um).Error
		}

		um.Progress += amount
		if !um.Completed && um.Progress >= mission.TargetCount {
			um.Completed = true
		}
		return tx.Save(&um).Error
	})
	if err != nil {
		return nil, err
	}
	return &um, nil
}

// Claim posts a completed mission's reward to the ledger and marks it
// claimed in one atomic unit. The claimed flag is checked conditionally
// at write time, so two concurrent claims for the same (user, mission)
// produce exactly one success and one ErrRewardAlreadyClaimed. Missions
// with no reward still mark claimed but post nothing. Returns the points
// awarded.
func Claim(db *gorm.DB, userID, missionID uint) (int, error) {
	awarded := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var mission models.Mission
		if err := tx.First(&mission, missionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMissionNotFound
			}
			return err
		}

		var um models.UserMission
		if err := tx.Where("user_id = ? AND mission_id = ?", userID, missionID).First(&um).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMissionNotStarted
			}
			return err
		}
		if !um.Completed {
			return ErrMissionNotCompleted
		}
		if um.RewardClaimed {
			return ErrRewardAlreadyClaimed
		}

		res := tx.Model(&models.UserMission{}).
			Where("id = ? AND reward_claimed = ?", um.ID, false).
			Update("reward_claimed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race against a concurrent claim.
			return ErrRewardAlreadyClaimed
		}

		if mission.RewardPoints > 0 {
			if _, err := Post(tx, userID, mission.RewardPoints, models.LedgerSourceMission,
				fmt.Sprintf("Reward for mission: %s", mission.Title)); err != nil {
				return err
			}
			awarded = mission.RewardPoints
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return awarded, nil
}
