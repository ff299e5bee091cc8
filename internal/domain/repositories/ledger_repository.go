package repositories

import (
	"context"

	"stake-chain.backend/internal/domain/entities"
)

// UserRepository defines user record operations.
// Implementations normalize addresses to lowercase on both read and write.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByAddress(ctx context.Context, address string) (*entities.User, error)
	Update(ctx context.Context, address string, updates *entities.UserUpdate) (*entities.User, error)
}

// InvestmentRepository defines the append-only investment log
type InvestmentRepository interface {
	Create(ctx context.Context, investment *entities.Investment) error
	ListByUser(ctx context.Context, userAddress string) ([]*entities.Investment, error)
}

// EarningRepository defines the append-only earning log
type EarningRepository interface {
	Create(ctx context.Context, earning *entities.Earning) error
	ListByUser(ctx context.Context, userAddress string) ([]*entities.Earning, error)
}

// ReferralRepository defines referral edge operations.
// ListByReferrer returns only the direct (level-1 from that referrer) edges.
type ReferralRepository interface {
	Create(ctx context.Context, referral *entities.Referral) error
	ListByReferrer(ctx context.Context, referrerAddress string) ([]*entities.Referral, error)
}
