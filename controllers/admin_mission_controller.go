package controllers

import (
	"strconv"
	"time"

	"github.com/Govind-619/BrewPoints/config"
	"github.com/Govind-619/BrewPoints/models"
	"github.com/Govind-619/BrewPoints/utils"
	"github.com/gin-gonic/gin"
)

// MissionRequest represents the create/update mission request body
type MissionRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	Type         string    `json:"type" binding:"required"`
	TargetCount  int       `json:"target_count" binding:"required"`
	RewardPoints int       `json:"reward_points"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	Active       *bool     `json:"active"`
}

func validateMissionRequest(req *MissionRequest) (string, bool) {
	if req.Type != models.MissionTypeOrder && req.Type != models.MissionTypeCheckin {
		return "Mission type must be 'order' or 'checkin'", false
	}
	if req.TargetCount < 1 {
		return "Target count must be at least 1", false
	}
	if req.RewardPoints < 0 {
		return "Reward points cannot be negative", false
	}
	if !req.EndDate.After(req.StartDate) {
		return "End date must be after start date", false
	}
	return "", true
}

// CreateMission adds a new mission
func CreateMission(c *gin.Context) {
	utils.LogInfo("CreateMission called")

	var req MissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if msg, ok := validateMissionRequest(&req); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	mission := models.Mission{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		TargetCount:  req.TargetCount,
		RewardPoints: req.RewardPoints,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Active:       true,
	}
	if req.Active != nil {
		mission.Active = *req.Active
	}

	if err := config.DB.Create(&mission).Error; err != nil {
		utils.LogError("Failed to create mission: %v", err)
		utils.InternalServerError(c, "Failed to create mission", nil)
		return
	}

	utils.Created(c, "Mission created successfully", mission)
}

// UpdateMission edits an existing mission definition
func UpdateMission(c *gin.Context) {
	utils.LogInfo("UpdateMission called")

	missionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid mission ID", nil)
		return
	}

	var mission models.Mission
	if err := config.DB.First(&mission, missionID).Error; err != nil {
		utils.NotFound(c, "Mission not found")
		return
	}

	var req MissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if msg, ok := validateMissionRequest(&req); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	mission.Title = req.Title
	mission.Description = req.Description
	mission.Type = req.Type
	mission.TargetCount = req.TargetCount
	mission.RewardPoints = req.RewardPoints
	mission.StartDate = req.StartDate
	mission.EndDate = req.EndDate
	if req.Active != nil {
		mission.Active = *req.Active
	}

	if err := config.DB.Save(&mission).Error; err != nil {
		utils.LogError("Failed to update mission %d: %v", missionID, err)
		utils.InternalServerError(c, "Failed to update mission", nil)
		return
	}

	utils.Success(c, "Mission updated successfully", mission)
}

// ListAllMissions returns every mission, running or not
func ListAllMissions(c *gin.Context) {
	utils.LogInfo("ListAllMissions called")

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	var total int64
	if err := config.DB.Model(&models.Mission{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count missions: %v", err)
		utils.InternalServerError(c, "Failed to list missions", nil)
		return
	}

	var missions []models.Mission
	if err := config.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&missions).Error; err != nil {
		utils.LogError("Failed to list missions: %v", err)
		utils.InternalServerError(c, "Failed to list missions", nil)
		return
	}

	utils.SuccessWithPagination(c, "Missions retrieved successfully", missions, total, page, limit)
}

// DeactivateMission turns a mission off without deleting claim history
func DeactivateMission(c *gin.Context) {
	utils.LogInfo("DeactivateMission called")

	missionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid mission ID", nil)
		return
	}

	res := config.DB.Model(&models.Mission{}).Where("id = ?", missionID).Update("active", false)
	if res.Error != nil {
		utils.LogError("Failed to deactivate mission %d: %v", missionID, res.Error)
		utils.InternalServerError(c, "Failed to deactivate mission", nil)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "Mission not found")
		return
	}

	utils.Success(c, "Mission deactivated successfully", nil)
}
