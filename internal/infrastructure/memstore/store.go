package memstore

import (
	"context"
	"sync"

	"stake-chain.backend/internal/domain/entities"
	domainerrors "stake-chain.backend/internal/domain/errors"
	"stake-chain.backend/pkg/utils"
)

// Store is the in-memory ledger store. It owns all four collections; the
// investment, earning and referral logs are append-only slices kept in
// insertion order. Users are keyed by lowercase address.
//
// The repository views in this package expose Store through the interfaces in
// internal/domain/repositories. A fresh instance per test gives full isolation.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*entities.User
	investments []*entities.Investment
	earnings    []*entities.Earning
	referrals   []*entities.Referral
}

// NewStore creates an empty in-memory ledger store
func NewStore() *Store {
	return &Store{
		users: make(map[string]*entities.User),
	}
}

// Create creates a new user record
func (s *Store) Create(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	addr := utils.NormalizeAddress(user.Address)
	if _, ok := s.users[addr]; ok {
		return domainerrors.ErrAlreadyExists
	}

	stored := *user
	stored.Address = addr
	if stored.ReferrerAddress.Valid {
		stored.ReferrerAddress.String = utils.NormalizeAddress(stored.ReferrerAddress.String)
	}
	s.users[addr] = &stored
	return nil
}

// GetByAddress gets a user by address, case-insensitively
func (s *Store) GetByAddress(ctx context.Context, address string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[utils.NormalizeAddress(address)]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// Update applies a shallow merge of the set fields over an existing user
func (s *Store) Update(ctx context.Context, address string, updates *entities.UserUpdate) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[utils.NormalizeAddress(address)]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}

	if updates.TotalInvestment.Valid {
		user.TotalInvestment = updates.TotalInvestment.String
	}
	if updates.TotalWithdrawn.Valid {
		user.TotalWithdrawn = updates.TotalWithdrawn.String
	}
	if updates.MaxWithdrawalLimit.Valid {
		user.MaxWithdrawalLimit = updates.MaxWithdrawalLimit.String
	}
	if updates.PendingReferralRewards.Valid {
		user.PendingReferralRewards = updates.PendingReferralRewards.String
	}
	if updates.LastProfitClaimTimestamp.Valid {
		user.LastProfitClaimTimestamp = updates.LastProfitClaimTimestamp.Time
	}
	if updates.ReferralCount.Valid {
		user.ReferralCount = updates.ReferralCount.Int
	}

	copied := *user
	return &copied, nil
}

// CreateInvestment appends an immutable investment record
func (s *Store) CreateInvestment(ctx context.Context, investment *entities.Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *investment
	stored.UserAddress = utils.NormalizeAddress(stored.UserAddress)
	s.investments = append(s.investments, &stored)
	return nil
}

// ListInvestmentsByUser returns the user's investments in insertion order
func (s *Store) ListInvestmentsByUser(ctx context.Context, userAddress string) ([]*entities.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addr := utils.NormalizeAddress(userAddress)
	out := []*entities.Investment{}
	for _, inv := range s.investments {
		if inv.UserAddress == addr {
			copied := *inv
			out = append(out, &copied)
		}
	}
	return out, nil
}

// CreateEarning appends an immutable earning record
func (s *Store) CreateEarning(ctx context.Context, earning *entities.Earning) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *earning
	stored.UserAddress = utils.NormalizeAddress(stored.UserAddress)
	if stored.FromUserAddress.Valid {
		stored.FromUserAddress.String = utils.NormalizeAddress(stored.FromUserAddress.String)
	}
	s.earnings = append(s.earnings, &stored)
	return nil
}

// ListEarningsByUser returns the user's earnings in insertion order
func (s *Store) ListEarningsByUser(ctx context.Context, userAddress string) ([]*entities.Earning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addr := utils.NormalizeAddress(userAddress)
	out := []*entities.Earning{}
	for _, e := range s.earnings {
		if e.UserAddress == addr {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

// CreateReferral appends an immutable referral edge
func (s *Store) CreateReferral(ctx context.Context, referral *entities.Referral) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *referral
	stored.ReferrerAddress = utils.NormalizeAddress(stored.ReferrerAddress)
	stored.ReferredAddress = utils.NormalizeAddress(stored.ReferredAddress)
	s.referrals = append(s.referrals, &stored)
	return nil
}

// ListReferralsByReferrer returns the direct edges of one referrer only
func (s *Store) ListReferralsByReferrer(ctx context.Context, referrerAddress string) ([]*entities.Referral, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addr := utils.NormalizeAddress(referrerAddress)
	out := []*entities.Referral{}
	for _, ref := range s.referrals {
		if ref.ReferrerAddress == addr {
			copied := *ref
			out = append(out, &copied)
		}
	}
	return out, nil
}
