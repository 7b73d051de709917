package loyalty

import (
	"errors"
	"fmt"
)

// Business-rule rejections. These surface to the end user as a rejected
// action; the engine never retries internally and leaves state unchanged
// on every failure path.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrMissionNotFound      = errors.New("mission not found")
	ErrMissionNotStarted    = errors.New("mission not started")
	ErrMissionNotCompleted  = errors.New("mission not completed")
	ErrRewardAlreadyClaimed = errors.New("mission reward already claimed")
	ErrInvalidVoucher       = errors.New("invalid or inactive voucher")
	ErrInsufficientPoints   = errors.New("insufficient points")
	ErrReferralNotFound     = errors.New("referral code not found")
	ErrReferralAlreadyUsed  = errors.New("referral code already used")
	ErrSelfReferral         = errors.New("cannot use your own referral code")
	ErrNegativeSpend        = errors.New("spend amount cannot be negative")
)

// ConsistencyError means the ledger sum for a user disagrees with the
// stored balance. It indicates a bug, never a normal runtime condition,
// and must be logged and investigated rather than swallowed.
type ConsistencyError struct {
	UserID    uint
	LedgerSum int
	Balance   int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("ledger inconsistency for user %d: ledger sum %d, stored balance %d",
		e.UserID, e.LedgerSum, e.Balance)
}
