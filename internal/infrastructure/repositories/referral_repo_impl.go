package repositories

import (
	"context"

	"gorm.io/gorm"
	"stake-chain.backend/internal/domain/entities"
	"stake-chain.backend/internal/infrastructure/models"
	"stake-chain.backend/pkg/utils"
)

// ReferralRepository implements referral edges on gorm
type ReferralRepository struct {
	db *gorm.DB
}

// NewReferralRepository creates a new referral repository
func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// Create appends an immutable referral edge
func (r *ReferralRepository) Create(ctx context.Context, referral *entities.Referral) error {
	m := &models.Referral{
		ID:              referral.ID,
		ReferrerAddress: utils.NormalizeAddress(referral.ReferrerAddress),
		ReferredAddress: utils.NormalizeAddress(referral.ReferredAddress),
		Level:           referral.Level,
		Timestamp:       referral.Timestamp,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByReferrer returns the direct edges of one referrer only
func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerAddress string) ([]*entities.Referral, error) {
	var rows []models.Referral
	err := r.db.WithContext(ctx).
		Where("referrer_address = ?", utils.NormalizeAddress(referrerAddress)).
		Order("timestamp ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := []*entities.Referral{}
	for _, m := range rows {
		out = append(out, &entities.Referral{
			ID:              m.ID,
			ReferrerAddress: m.ReferrerAddress,
			ReferredAddress: m.ReferredAddress,
			Level:           m.Level,
			Timestamp:       m.Timestamp,
		})
	}
	return out, nil
}
