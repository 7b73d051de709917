package models

import (
	"gorm.io/gorm"
)

// Referral ties a generated invite code to its referrer. UsedBy moves
// from nil to a user id exactly once; the referral bonus ledger entry is
// posted in the same transaction as that transition.
type Referral struct {
	gorm.Model
	Code       string `json:"code" gorm:"uniqueIndex"`
	ReferrerID uint   `json:"referrer_id" gorm:"index"`
	UsedBy     *uint  `json:"used_by"`
}
