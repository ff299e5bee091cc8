package models

import (
	"time"

	"github.com/google/uuid"
)

type Referral struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReferrerAddress string    `gorm:"type:varchar(42);index;not null"`
	ReferredAddress string    `gorm:"type:varchar(42);not null"`
	Level           int       `gorm:"not null"`
	Timestamp       time.Time
}

func (Referral) TableName() string {
	return "referrals"
}
