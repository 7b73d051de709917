package models

import (
	"time"

	"gorm.io/gorm"
)

// Mission type constants
const (
	MissionTypeOrder   = "order"   // progress advances when an order completes
	MissionTypeCheckin = "checkin" // progress advances on explicit check-in
)

// Mission is a challenge definition with a progress target and a point reward
type Mission struct {
	gorm.Model
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	TargetCount  int       `json:"target_count"`
	RewardPoints int       `json:"reward_points"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Active       bool      `json:"active" gorm:"default:true"`
}

// UserMission tracks one user's progress on one mission. At most one row
// exists per (user, mission) pair; RewardClaimed flips true exactly once.
type UserMission struct {
	gorm.Model
	UserID        uint `json:"user_id" gorm:"uniqueIndex:idx_user_missions_user_mission"`
	MissionID     uint `json:"mission_id" gorm:"uniqueIndex:idx_user_missions_user_mission"`
	Progress      int  `json:"progress"`
	Completed     bool `json:"completed" gorm:"default:false"`
	RewardClaimed bool `json:"reward_claimed" gorm:"default:false"`
}
