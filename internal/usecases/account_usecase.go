package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"stake-chain.backend/internal/domain/entities"
	domainerrors "stake-chain.backend/internal/domain/errors"
	"stake-chain.backend/internal/domain/repositories"
	"stake-chain.backend/pkg/utils"
)

// AccountUsecase handles registration and investment accounting
type AccountUsecase struct {
	userRepo       repositories.UserRepository
	investmentRepo repositories.InvestmentRepository
	referralRepo   repositories.ReferralRepository
	treeCache      ReferralTreeCache

	// one mutex per address; the read-compute-write sequence in
	// RecordInvestment must not interleave for the same user
	investLocks sync.Map
}

// NewAccountUsecase creates a new account usecase. treeCache may be nil.
func NewAccountUsecase(
	userRepo repositories.UserRepository,
	investmentRepo repositories.InvestmentRepository,
	referralRepo repositories.ReferralRepository,
	treeCache ReferralTreeCache,
) *AccountUsecase {
	return &AccountUsecase{
		userRepo:       userRepo,
		investmentRepo: investmentRepo,
		referralRepo:   referralRepo,
		treeCache:      treeCache,
	}
}

// Register registers a wallet, optionally under a referrer. The level-1
// referral edge is created here so tree queries see it immediately.
func (u *AccountUsecase) Register(ctx context.Context, input *entities.RegisterUserInput) (*entities.User, error) {
	if !utils.IsValidAddress(input.Address) {
		return nil, domainerrors.BadRequest("invalid wallet address")
	}
	addr := utils.NormalizeAddress(input.Address)

	if _, err := u.userRepo.GetByAddress(ctx, addr); err == nil {
		return nil, domainerrors.Conflict("User already registered")
	} else if err != domainerrors.ErrNotFound {
		return nil, err
	}

	var referrer null.String
	if input.ReferrerAddress != "" {
		if !utils.IsValidAddress(input.ReferrerAddress) {
			return nil, domainerrors.BadRequest("invalid referrer address")
		}
		referrerAddr := utils.NormalizeAddress(input.ReferrerAddress)
		if _, err := u.userRepo.GetByAddress(ctx, referrerAddr); err != nil {
			if err == domainerrors.ErrNotFound {
				return nil, domainerrors.NotFound("Referrer not found")
			}
			return nil, err
		}
		referrer = null.StringFrom(referrerAddr)
	}

	now := time.Now().UTC()
	user := &entities.User{
		ID:                       uuid.New(),
		Address:                  addr,
		ReferrerAddress:          referrer,
		TotalInvestment:          "0",
		TotalWithdrawn:           "0",
		MaxWithdrawalLimit:       "0",
		PendingReferralRewards:   "0",
		LastProfitClaimTimestamp: now,
		RegistrationTimestamp:    now,
		IsRegistered:             true,
		ReferralCount:            0,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if err == domainerrors.ErrAlreadyExists {
			return nil, domainerrors.Conflict("User already registered")
		}
		return nil, err
	}

	if referrer.Valid {
		edge := &entities.Referral{
			ID:              uuid.New(),
			ReferrerAddress: referrer.String,
			ReferredAddress: addr,
			Level:           1,
			Timestamp:       now,
		}
		if err := u.referralRepo.Create(ctx, edge); err != nil {
			return nil, err
		}

		referrerUser, err := u.userRepo.GetByAddress(ctx, referrer.String)
		if err != nil {
			return nil, err
		}
		_, err = u.userRepo.Update(ctx, referrer.String, &entities.UserUpdate{
			ReferralCount: null.IntFrom(referrerUser.ReferralCount + 1),
		})
		if err != nil {
			return nil, err
		}

		if u.treeCache != nil {
			u.treeCache.InvalidateReferrer(ctx, referrer.String)
		}
	}

	return user, nil
}

// GetUser returns the user record for an address
func (u *AccountUsecase) GetUser(ctx context.Context, address string) (*entities.User, error) {
	user, err := u.userRepo.GetByAddress(ctx, address)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// RecordInvestment appends a deposit and recomputes the user's cumulative
// total and withdrawal cap. The whole sequence runs under a per-address lock
// so concurrent deposits from one user cannot lose an update.
func (u *AccountUsecase) RecordInvestment(ctx context.Context, input *entities.RecordInvestmentInput) (*entities.Investment, error) {
	if !utils.IsValidAddress(input.UserAddress) {
		return nil, domainerrors.BadRequest("invalid wallet address")
	}
	if !utils.IsValidTxHash(input.TransactionHash) {
		return nil, domainerrors.BadRequest("invalid transaction hash")
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, domainerrors.InvalidAmount("investment amount must be a positive decimal")
	}

	addr := utils.NormalizeAddress(input.UserAddress)
	unlock := u.lockAddress(addr)
	defer unlock()

	user, err := u.userRepo.GetByAddress(ctx, addr)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}

	investment := &entities.Investment{
		ID:              uuid.New(),
		UserAddress:     addr,
		Amount:          amount.String(),
		TransactionHash: input.TransactionHash,
		BlockNumber:     null.Int64FromPtr(input.BlockNumber),
		Timestamp:       time.Now().UTC(),
	}
	if err := u.investmentRepo.Create(ctx, investment); err != nil {
		return nil, err
	}

	newTotal, newLimit, err := applyInvestment(user.TotalInvestment, amount)
	if err != nil {
		return nil, err
	}

	_, err = u.userRepo.Update(ctx, addr, &entities.UserUpdate{
		TotalInvestment:    null.StringFrom(newTotal.String()),
		MaxWithdrawalLimit: null.StringFrom(newLimit.String()),
	})
	if err != nil {
		return nil, err
	}

	return investment, nil
}

// ListInvestments returns the user's investment log
func (u *AccountUsecase) ListInvestments(ctx context.Context, userAddress string) ([]*entities.Investment, error) {
	return u.investmentRepo.ListByUser(ctx, userAddress)
}

func (u *AccountUsecase) lockAddress(address string) func() {
	v, _ := u.investLocks.LoadOrStore(address, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// applyInvestment computes the new cumulative total and the derived
// withdrawal cap, fixed at 200% of total investment.
func applyInvestment(currentTotal string, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, decimal.Zero, domainerrors.InvalidAmount("investment amount must be positive")
	}

	total := decimal.Zero
	if currentTotal != "" {
		parsed, err := decimal.NewFromString(currentTotal)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		total = parsed
	}

	newTotal := total.Add(amount)
	return newTotal, newTotal.Mul(decimal.NewFromInt(2)), nil
}
