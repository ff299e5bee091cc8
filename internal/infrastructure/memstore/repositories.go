package memstore

import (
	"context"

	"stake-chain.backend/internal/domain/entities"
)

// The four repository views share one Store, the way the gorm-backed
// repositories share one *gorm.DB.

// UserRepository implements user record operations on the in-memory store
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	return r.store.Create(ctx, user)
}

func (r *UserRepository) GetByAddress(ctx context.Context, address string) (*entities.User, error) {
	return r.store.GetByAddress(ctx, address)
}

func (r *UserRepository) Update(ctx context.Context, address string, updates *entities.UserUpdate) (*entities.User, error) {
	return r.store.Update(ctx, address, updates)
}

// InvestmentRepository implements the investment log on the in-memory store
type InvestmentRepository struct {
	store *Store
}

// NewInvestmentRepository creates a new in-memory investment repository
func NewInvestmentRepository(store *Store) *InvestmentRepository {
	return &InvestmentRepository{store: store}
}

func (r *InvestmentRepository) Create(ctx context.Context, investment *entities.Investment) error {
	return r.store.CreateInvestment(ctx, investment)
}

func (r *InvestmentRepository) ListByUser(ctx context.Context, userAddress string) ([]*entities.Investment, error) {
	return r.store.ListInvestmentsByUser(ctx, userAddress)
}

// EarningRepository implements the earning log on the in-memory store
type EarningRepository struct {
	store *Store
}

// NewEarningRepository creates a new in-memory earning repository
func NewEarningRepository(store *Store) *EarningRepository {
	return &EarningRepository{store: store}
}

func (r *EarningRepository) Create(ctx context.Context, earning *entities.Earning) error {
	return r.store.CreateEarning(ctx, earning)
}

func (r *EarningRepository) ListByUser(ctx context.Context, userAddress string) ([]*entities.Earning, error) {
	return r.store.ListEarningsByUser(ctx, userAddress)
}

// ReferralRepository implements referral edges on the in-memory store
type ReferralRepository struct {
	store *Store
}

// NewReferralRepository creates a new in-memory referral repository
func NewReferralRepository(store *Store) *ReferralRepository {
	return &ReferralRepository{store: store}
}

func (r *ReferralRepository) Create(ctx context.Context, referral *entities.Referral) error {
	return r.store.CreateReferral(ctx, referral)
}

func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerAddress string) ([]*entities.Referral, error) {
	return r.store.ListReferralsByReferrer(ctx, referrerAddress)
}
