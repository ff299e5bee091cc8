package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"stake-chain.backend/internal/domain/entities"
	domainerrors "stake-chain.backend/internal/domain/errors"
	"stake-chain.backend/internal/infrastructure/models"
	"stake-chain.backend/pkg/utils"
)

// UserRepository implements user record operations on gorm
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user record
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	addr := utils.NormalizeAddress(user.Address)

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("address = ?", addr).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domainerrors.ErrAlreadyExists
	}

	m := &models.User{
		ID:                       user.ID,
		Address:                  addr,
		TotalInvestment:          user.TotalInvestment,
		TotalWithdrawn:           user.TotalWithdrawn,
		MaxWithdrawalLimit:       user.MaxWithdrawalLimit,
		PendingReferralRewards:   user.PendingReferralRewards,
		LastProfitClaimTimestamp: user.LastProfitClaimTimestamp,
		RegistrationTimestamp:    user.RegistrationTimestamp,
		IsRegistered:             user.IsRegistered,
		ReferralCount:            user.ReferralCount,
	}
	if user.ReferrerAddress.Valid {
		referrer := utils.NormalizeAddress(user.ReferrerAddress.String)
		m.ReferrerAddress = &referrer
	}

	return r.db.WithContext(ctx).Create(m).Error
}

// GetByAddress gets a user by address, case-insensitively
func (r *UserRepository) GetByAddress(ctx context.Context, address string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("address = ?", utils.NormalizeAddress(address)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// Update applies a shallow merge of the set fields over an existing user
func (r *UserRepository) Update(ctx context.Context, address string, updates *entities.UserUpdate) (*entities.User, error) {
	fields := map[string]interface{}{}
	if updates.TotalInvestment.Valid {
		fields["total_investment"] = updates.TotalInvestment.String
	}
	if updates.TotalWithdrawn.Valid {
		fields["total_withdrawn"] = updates.TotalWithdrawn.String
	}
	if updates.MaxWithdrawalLimit.Valid {
		fields["max_withdrawal_limit"] = updates.MaxWithdrawalLimit.String
	}
	if updates.PendingReferralRewards.Valid {
		fields["pending_referral_rewards"] = updates.PendingReferralRewards.String
	}
	if updates.LastProfitClaimTimestamp.Valid {
		fields["last_profit_claim_timestamp"] = updates.LastProfitClaimTimestamp.Time
	}
	if updates.ReferralCount.Valid {
		fields["referral_count"] = updates.ReferralCount.Int
	}

	addr := utils.NormalizeAddress(address)
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&models.User{}).Where("address = ?", addr).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, domainerrors.ErrNotFound
		}
	}

	return r.GetByAddress(ctx, addr)
}

func toUserEntity(m *models.User) *entities.User {
	u := &entities.User{
		ID:                       m.ID,
		Address:                  m.Address,
		TotalInvestment:          m.TotalInvestment,
		TotalWithdrawn:           m.TotalWithdrawn,
		MaxWithdrawalLimit:       m.MaxWithdrawalLimit,
		PendingReferralRewards:   m.PendingReferralRewards,
		LastProfitClaimTimestamp: m.LastProfitClaimTimestamp,
		RegistrationTimestamp:    m.RegistrationTimestamp,
		IsRegistered:             m.IsRegistered,
		ReferralCount:            m.ReferralCount,
	}
	u.ReferrerAddress = null.StringFromPtr(m.ReferrerAddress)
	return u
}
