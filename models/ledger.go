package models

import "time"

// LedgerEntry source constants
const (
	LedgerSourceOrder      = "ORDER"
	LedgerSourceMission    = "MISSION"
	LedgerSourceReferral   = "REFERRAL"
	LedgerSourceRedemption = "REDEMPTION"
	LedgerSourceAdmin      = "ADMIN"
)

// LedgerEntry is one immutable point-affecting event. Rows are only ever
// appended; the sum of a user's entries always equals User.Points.
type LedgerEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Points      int       `json:"points"` // positive = earned, negative = spent
	Source      string    `json:"source"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
