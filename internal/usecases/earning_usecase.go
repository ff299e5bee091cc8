package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"stake-chain.backend/internal/domain/entities"
	domainerrors "stake-chain.backend/internal/domain/errors"
	"stake-chain.backend/internal/domain/repositories"
	"stake-chain.backend/pkg/utils"
)

// EarningUsecase handles the append-only earning log
type EarningUsecase struct {
	earningRepo repositories.EarningRepository
}

// NewEarningUsecase creates a new earning usecase
func NewEarningUsecase(earningRepo repositories.EarningRepository) *EarningUsecase {
	return &EarningUsecase{earningRepo: earningRepo}
}

// RecordEarning validates and appends an earning event
func (u *EarningUsecase) RecordEarning(ctx context.Context, input *entities.RecordEarningInput) (*entities.Earning, error) {
	if !utils.IsValidAddress(input.UserAddress) {
		return nil, domainerrors.BadRequest("invalid wallet address")
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || amount.IsNegative() {
		return nil, domainerrors.BadRequest("earning amount must be a non-negative decimal")
	}

	earningType := entities.EarningType(input.Type)
	if earningType != entities.EarningTypeSelfProfit && earningType != entities.EarningTypeReferralReward {
		return nil, domainerrors.BadRequest("earning type must be self_profit or referral_reward")
	}

	earning := &entities.Earning{
		ID:          uuid.New(),
		UserAddress: utils.NormalizeAddress(input.UserAddress),
		Amount:      amount.String(),
		Type:        earningType,
		Timestamp:   time.Now().UTC(),
	}

	if input.FromUserAddress != "" {
		if !utils.IsValidAddress(input.FromUserAddress) {
			return nil, domainerrors.BadRequest("invalid fromUserAddress")
		}
		earning.FromUserAddress = null.StringFrom(utils.NormalizeAddress(input.FromUserAddress))
	}
	if input.Level != nil {
		if *input.Level < 1 {
			return nil, domainerrors.BadRequest("referral level must be at least 1")
		}
		earning.Level = null.IntFrom(*input.Level)
	}
	if input.TransactionHash != "" {
		if !utils.IsValidTxHash(input.TransactionHash) {
			return nil, domainerrors.BadRequest("invalid transaction hash")
		}
		earning.TransactionHash = null.StringFrom(input.TransactionHash)
	}

	if err := u.earningRepo.Create(ctx, earning); err != nil {
		return nil, err
	}
	return earning, nil
}

// ListEarnings returns the user's earning log
func (u *EarningUsecase) ListEarnings(ctx context.Context, userAddress string) ([]*entities.Earning, error) {
	return u.earningRepo.ListByUser(ctx, userAddress)
}
