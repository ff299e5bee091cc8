package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// EarningType distinguishes own-investment profit from downstream rewards
type EarningType string

const (
	EarningTypeSelfProfit     EarningType = "self_profit"
	EarningTypeReferralReward EarningType = "referral_reward"
)

// Earning is one append-only credit record for a user.
// FromUserAddress and Level are set for referral_reward entries only.
type Earning struct {
	ID              uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	UserAddress     string      `json:"userAddress" gorm:"index"`
	Amount          string      `json:"amount" gorm:"type:decimal(36,18)"`
	Type            EarningType `json:"type"`
	FromUserAddress null.String `json:"fromUserAddress,omitempty"`
	Level           null.Int    `json:"level,omitempty"`
	TransactionHash null.String `json:"transactionHash,omitempty"`
	Timestamp       time.Time   `json:"timestamp"`
}

// RecordEarningInput represents input for recording an earning event
type RecordEarningInput struct {
	UserAddress     string `json:"userAddress" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	Type            string `json:"type" binding:"required"`
	FromUserAddress string `json:"fromUserAddress"`
	Level           *int   `json:"level"`
	TransactionHash string `json:"transactionHash"`
}
