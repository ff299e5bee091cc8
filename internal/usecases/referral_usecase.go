package usecases

import (
	"context"

	"stake-chain.backend/internal/domain/entities"
	"stake-chain.backend/internal/domain/repositories"
	"stake-chain.backend/pkg/utils"
)

// DefaultMaxTreeDepth is the commission-level ceiling of the on-chain
// contract; tree traversal never descends past it.
const DefaultMaxTreeDepth = 30

// ReferralTreeCache caches serialized referral subtrees per (root, depth).
// A nil cache disables caching; correctness never depends on it.
type ReferralTreeCache interface {
	GetTree(ctx context.Context, root string, maxDepth int) ([]*entities.Referral, bool)
	SetTree(ctx context.Context, root string, maxDepth int, tree []*entities.Referral)
	InvalidateReferrer(ctx context.Context, referrer string)
}

// ReferralUsecase handles referral queries and the subtree traversal
type ReferralUsecase struct {
	referralRepo repositories.ReferralRepository
	treeCache    ReferralTreeCache
	maxDepth     int
}

// NewReferralUsecase creates a new referral usecase. treeCache may be nil;
// maxDepth <= 0 falls back to DefaultMaxTreeDepth.
func NewReferralUsecase(referralRepo repositories.ReferralRepository, treeCache ReferralTreeCache, maxDepth int) *ReferralUsecase {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxTreeDepth
	}
	return &ReferralUsecase{
		referralRepo: referralRepo,
		treeCache:    treeCache,
		maxDepth:     maxDepth,
	}
}

// ListReferrals returns the direct (level-1) referrals of an address
func (u *ReferralUsecase) ListReferrals(ctx context.Context, referrerAddress string) ([]*entities.Referral, error) {
	return u.referralRepo.ListByReferrer(ctx, referrerAddress)
}

type treeFrame struct {
	address string
	depth   int
}

// GetReferralTree returns every edge of the subtree reachable from root,
// bounded by maxDepth (clamped to the configured ceiling). The traversal
// uses an explicit work list and a visited set, so it terminates on cyclic
// input and never grows the call stack. Edge order is not guaranteed.
func (u *ReferralUsecase) GetReferralTree(ctx context.Context, rootAddress string, maxDepth int) ([]*entities.Referral, error) {
	if maxDepth <= 0 || maxDepth > u.maxDepth {
		maxDepth = u.maxDepth
	}
	root := utils.NormalizeAddress(rootAddress)

	if u.treeCache != nil {
		if tree, ok := u.treeCache.GetTree(ctx, root, maxDepth); ok {
			return tree, nil
		}
	}

	tree := []*entities.Referral{}
	visited := map[string]bool{root: true}
	stack := []treeFrame{{address: root, depth: 0}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// edges found under this node would sit at frame.depth+1
		if frame.depth >= maxDepth {
			continue
		}

		edges, err := u.referralRepo.ListByReferrer(ctx, frame.address)
		if err != nil {
			return nil, err
		}
		for _, edge := range edges {
			if visited[edge.ReferredAddress] {
				continue
			}
			visited[edge.ReferredAddress] = true
			tree = append(tree, edge)
			stack = append(stack, treeFrame{address: edge.ReferredAddress, depth: frame.depth + 1})
		}
	}

	if u.treeCache != nil {
		u.treeCache.SetTree(ctx, root, maxDepth, tree)
	}
	return tree, nil
}
