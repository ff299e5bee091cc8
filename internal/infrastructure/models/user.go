package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address                  string    `gorm:"type:varchar(42);uniqueIndex;not null"`
	ReferrerAddress          *string   `gorm:"type:varchar(42)"`
	TotalInvestment          string    `gorm:"type:decimal(36,18);not null;default:'0'"`
	TotalWithdrawn           string    `gorm:"type:decimal(36,18);not null;default:'0'"`
	MaxWithdrawalLimit       string    `gorm:"type:decimal(36,18);not null;default:'0'"`
	PendingReferralRewards   string    `gorm:"type:decimal(36,18);not null;default:'0'"`
	LastProfitClaimTimestamp time.Time
	RegistrationTimestamp    time.Time
	IsRegistered             bool `gorm:"not null;default:true"`
	ReferralCount            int  `gorm:"not null;default:0"`
}

func (User) TableName() string {
	return "users"
}
