package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"stake-chain.backend/internal/domain/entities"
	"stake-chain.backend/internal/infrastructure/models"
	"stake-chain.backend/pkg/utils"
)

// InvestmentRepository implements the append-only investment log on gorm
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// Create appends an immutable investment record
func (r *InvestmentRepository) Create(ctx context.Context, investment *entities.Investment) error {
	m := &models.Investment{
		ID:              investment.ID,
		UserAddress:     utils.NormalizeAddress(investment.UserAddress),
		Amount:          investment.Amount,
		TransactionHash: investment.TransactionHash,
		BlockNumber:     investment.BlockNumber.Ptr(),
		Timestamp:       investment.Timestamp,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByUser returns the user's investments in insertion order
func (r *InvestmentRepository) ListByUser(ctx context.Context, userAddress string) ([]*entities.Investment, error) {
	var rows []models.Investment
	err := r.db.WithContext(ctx).
		Where("user_address = ?", utils.NormalizeAddress(userAddress)).
		Order("timestamp ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := []*entities.Investment{}
	for _, m := range rows {
		out = append(out, &entities.Investment{
			ID:              m.ID,
			UserAddress:     m.UserAddress,
			Amount:          m.Amount,
			TransactionHash: m.TransactionHash,
			BlockNumber:     null.Int64FromPtr(m.BlockNumber),
			Timestamp:       m.Timestamp,
		})
	}
	return out, nil
}
