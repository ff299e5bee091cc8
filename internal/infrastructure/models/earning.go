package models

import (
	"time"

	"github.com/google/uuid"
)

type Earning struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserAddress     string    `gorm:"type:varchar(42);index;not null"`
	Amount          string    `gorm:"type:decimal(36,18);not null"`
	Type            string    `gorm:"type:varchar(32);not null"`
	FromUserAddress *string   `gorm:"type:varchar(42)"`
	Level           *int
	TransactionHash *string   `gorm:"type:varchar(66)"`
	Timestamp       time.Time `gorm:"index"`
}

func (Earning) TableName() string {
	return "earnings"
}
