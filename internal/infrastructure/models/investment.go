package models

import (
	"time"

	"github.com/google/uuid"
)

type Investment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserAddress     string    `gorm:"type:varchar(42);index;not null"`
	Amount          string    `gorm:"type:decimal(36,18);not null"`
	TransactionHash string    `gorm:"type:varchar(66);not null"`
	BlockNumber     *int64
	Timestamp       time.Time `gorm:"index"`
}

func (Investment) TableName() string {
	return "investments"
}
