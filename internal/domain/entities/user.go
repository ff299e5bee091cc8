package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents a registered wallet on the investment ledger.
// Address is the primary lookup key and is always stored lowercase.
type User struct {
	ID                       uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	Address                  string      `json:"address" gorm:"uniqueIndex"`
	ReferrerAddress          null.String `json:"referrerAddress,omitempty"`
	TotalInvestment          string      `json:"totalInvestment" gorm:"type:decimal(36,18)"`
	TotalWithdrawn           string      `json:"totalWithdrawn" gorm:"type:decimal(36,18)"`
	MaxWithdrawalLimit       string      `json:"maxWithdrawalLimit" gorm:"type:decimal(36,18)"`
	PendingReferralRewards   string      `json:"pendingReferralRewards" gorm:"type:decimal(36,18)"`
	LastProfitClaimTimestamp time.Time   `json:"lastProfitClaimTimestamp"`
	RegistrationTimestamp    time.Time   `json:"registrationTimestamp"`
	IsRegistered             bool        `json:"isRegistered"`
	ReferralCount            int         `json:"referralCount"`
}

// UserUpdate is a partial update applied over an existing user.
// Only valid (set) fields are merged; everything else is left untouched.
type UserUpdate struct {
	TotalInvestment          null.String
	TotalWithdrawn           null.String
	MaxWithdrawalLimit       null.String
	PendingReferralRewards   null.String
	LastProfitClaimTimestamp null.Time
	ReferralCount            null.Int
}

// RegisterUserInput represents input for registering a wallet
type RegisterUserInput struct {
	Address         string `json:"address" binding:"required"`
	ReferrerAddress string `json:"referrerAddress"`
}
