package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/loyalty"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListMissions returns currently running missions with the user's progress
func ListMissions(c *gin.Context) {
	utils.LogInfo("ListMissions called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	now := time.Now()
	var missions []models.Mission
	if err := config.DB.Where("active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("end_date ASC").Find(&missions).Error; err != nil {
		utils.LogError("Failed to list missions: %v", err)
		utils.InternalServerError(c, "Failed to list missions", nil)
		return
	}

	result := make([]gin.H, len(missions))
	for i, mission := range missions {
		entry := gin.H{
			"id":            mission.ID,
			"title":         mission.Title,
			"description":   mission.Description,
			"type":          mission.Type,
			"target_count":  mission.TargetCount,
			"reward_points": mission.RewardPoints,
			"end_date":      mission.EndDate,
			"progress":      0,
			"completed":     false,
			"claimed":       false,
		}
		var um models.UserMission
		if err := config.DB.Where("user_id = ? AND mission_id = ?", user.ID, mission.ID).First(&um).Error; err == nil {
			entry["progress"] = um.Progress
			entry["completed"] = um.Completed
			entry["claimed"] = um.RewardClaimed
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError("Failed to load mission progress for user %d: %v", user.ID, err)
		}
		result[i] = entry
	}

	utils.Success(c, "Missions retrieved successfully", gin.H{"missions": result})
}

// CheckInMission advances progress on a check-in type mission
func CheckInMission(c *gin.Context) {
	utils.LogInfo("CheckInMission called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	missionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid mission ID", nil)
		return
	}

	var mission models.Mission
	if err := config.DB.Where("id = ? AND active = ?", missionID, true).First(&mission).Error; err != nil {
		utils.NotFound(c, "Mission not found")
		return
	}
	if mission.Type != models.MissionTypeCheckin {
		utils.BadRequest(c, "This mission does not support check-in", nil)
		return
	}

	um, err := loyalty.IncrementProgress(config.DB, user.ID, uint(missionID), 1)
	if err != nil {
		if errors.Is(err, loyalty.ErrMissionNotFound) {
			utils.NotFound(c, "Mission not found")
			return
		}
		utils.LogError("Failed to increment mission progress for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update mission progress", nil)
		return
	}

	utils.Success(c, "Check-in recorded", gin.H{
		"mission_id": missionID,
		"progress":   um.Progress,
		"completed":  um.Completed,
	})
}

// ClaimMissionReward posts a completed mission's reward to the ledger
func ClaimMissionReward(c *gin.Context) {
	utils.LogInfo("ClaimMissionReward called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	missionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid mission ID", nil)
		return
	}

	awarded, err := loyalty.Claim(config.DB, user.ID, uint(missionID))
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrMissionNotFound):
			utils.NotFound(c, "Mission not found")
		case errors.Is(err, loyalty.ErrMissionNotStarted):
			utils.BadRequest(c, "You have not started this mission", nil)
		case errors.Is(err, loyalty.ErrMissionNotCompleted):
			utils.BadRequest(c, "Mission is not completed yet", nil)
		case errors.Is(err, loyalty.ErrRewardAlreadyClaimed):
			utils.Conflict(c, "Reward has already been claimed", nil)
		default:
			utils.LogError("Failed to claim mission %d for user %d: %v", missionID, user.ID, err)
			utils.InternalServerError(c, "Failed to claim reward", nil)
		}
		return
	}

	balance, _ := loyalty.Balance(config.DB, user.ID)
	utils.LogInfo("User %d claimed mission %d for %d points", user.ID, missionID, awarded)

	if awarded > 0 {
		go func(email string, points int) {
			body := fmt.Sprintf("<p>You earned <b>%d</b> BrewPoints for completing a mission. Keep sipping!</p>", points)
			if err := utils.SendEmail(email, "Mission reward claimed", body); err != nil {
				utils.LogError("Failed to send reward email: %v", err)
			}
		}(user.Email, awarded)
	}

	utils.Success(c, "Reward claimed successfully", gin.H{
		"success":        true,
		"points_awarded": awarded,
		"new_balance":    balance,
	})
}
