package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"stake-chain.backend/internal/domain/entities"
	"stake-chain.backend/internal/infrastructure/models"
	"stake-chain.backend/pkg/utils"
)

// EarningRepository implements the append-only earning log on gorm
type EarningRepository struct {
	db *gorm.DB
}

// NewEarningRepository creates a new earning repository
func NewEarningRepository(db *gorm.DB) *EarningRepository {
	return &EarningRepository{db: db}
}

// Create appends an immutable earning record
func (r *EarningRepository) Create(ctx context.Context, earning *entities.Earning) error {
	m := &models.Earning{
		ID:              earning.ID,
		UserAddress:     utils.NormalizeAddress(earning.UserAddress),
		Amount:          earning.Amount,
		Type:            string(earning.Type),
		TransactionHash: earning.TransactionHash.Ptr(),
		Timestamp:       earning.Timestamp,
	}
	if earning.FromUserAddress.Valid {
		from := utils.NormalizeAddress(earning.FromUserAddress.String)
		m.FromUserAddress = &from
	}
	if earning.Level.Valid {
		level := earning.Level.Int
		m.Level = &level
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByUser returns the user's earnings in insertion order
func (r *EarningRepository) ListByUser(ctx context.Context, userAddress string) ([]*entities.Earning, error) {
	var rows []models.Earning
	err := r.db.WithContext(ctx).
		Where("user_address = ?", utils.NormalizeAddress(userAddress)).
		Order("timestamp ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := []*entities.Earning{}
	for _, m := range rows {
		e := &entities.Earning{
			ID:              m.ID,
			UserAddress:     m.UserAddress,
			Amount:          m.Amount,
			Type:            entities.EarningType(m.Type),
			FromUserAddress: null.StringFromPtr(m.FromUserAddress),
			TransactionHash: null.StringFromPtr(m.TransactionHash),
			Timestamp:       m.Timestamp,
		}
		if m.Level != nil {
			e.Level = null.IntFrom(*m.Level)
		}
		out = append(out, e)
	}
	return out, nil
}
