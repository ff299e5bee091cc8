package entities

import (
	"time"

	"github.com/google/uuid"
)

// Referral is one directed edge of the referral graph.
// Level is the graph distance from the referrer (1 = direct referral).
type Referral struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	ReferrerAddress string    `json:"referrerAddress" gorm:"index"`
	ReferredAddress string    `json:"referredAddress"`
	Level           int       `json:"level"`
	Timestamp       time.Time `json:"timestamp"`
}
