package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Investment is one append-only deposit record for a user.
// Amount is a decimal string; it is never mutated after creation.
type Investment struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	UserAddress     string     `json:"userAddress" gorm:"index"`
	Amount          string     `json:"amount" gorm:"type:decimal(36,18)"`
	TransactionHash string     `json:"transactionHash"`
	BlockNumber     null.Int64 `json:"blockNumber,omitempty"`
	Timestamp       time.Time  `json:"timestamp"`
}

// RecordInvestmentInput represents input for recording an on-chain deposit
type RecordInvestmentInput struct {
	UserAddress     string `json:"userAddress" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	TransactionHash string `json:"transactionHash" binding:"required"`
	BlockNumber     *int64 `json:"blockNumber"`
}
