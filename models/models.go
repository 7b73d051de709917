package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a regular user in the system
type User struct {
	gorm.Model
	Username   string `gorm:"uniqueIndex;not null" json:"username"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `json:"-"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	IsBlocked  bool   `json:"is_blocked"`
	IsVerified bool   `json:"is_verified" gorm:"default:false"`

	// Loyalty state. Points is the redeemable balance and is only ever
	// mutated through the loyalty ledger, never written directly.
	Points            int       `json:"points" gorm:"default:0"`
	LifetimePoints    int       `json:"lifetime_points" gorm:"default:0"`
	Tier              string    `json:"tier" gorm:"default:'Bronze'"`
	TierLastUpdatedAt time.Time `json:"tier_last_updated_at"`

	LastLoginAt time.Time `json:"last_login_at"`
}

// Admin represents an administrator in the system
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}
