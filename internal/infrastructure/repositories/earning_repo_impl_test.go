package repositories

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"stake-chain.backend/internal/domain/entities"
)

func TestEarningRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	createEarningTable(t, db)
	repo := NewEarningRepository(db)
	ctx := context.Background()

	base := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &entities.Earning{
		ID:          uuid.New(),
		UserAddress: "0xAbCd000000000000000000000000000000000001",
		Amount:      "5",
		Type:        entities.EarningTypeSelfProfit,
		Timestamp:   base,
	}))
	require.NoError(t, repo.Create(ctx, &entities.Earning{
		ID:              uuid.New(),
		UserAddress:     "0xabcd000000000000000000000000000000000001",
		Amount:          "2",
		Type:            entities.EarningTypeReferralReward,
		FromUserAddress: null.StringFrom("0xBEEF000000000000000000000000000000000003"),
		Level:           null.IntFrom(2),
		TransactionHash: null.StringFrom("0x" + strings.Repeat("cd", 32)),
		Timestamp:       base.Add(time.Second),
	}))

	list, err := repo.ListByUser(ctx, "0xABCD000000000000000000000000000000000001")
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.Equal(t, entities.EarningTypeSelfProfit, list[0].Type)
	require.False(t, list[0].FromUserAddress.Valid)
	require.False(t, list[0].Level.Valid)

	require.Equal(t, entities.EarningTypeReferralReward, list[1].Type)
	require.Equal(t, "0xbeef000000000000000000000000000000000003", list[1].FromUserAddress.String)
	require.Equal(t, 2, list[1].Level.Int)
	require.True(t, list[1].TransactionHash.Valid)
}

func TestEarningRepository_List_EmptyForUnknownUser(t *testing.T) {
	db := newTestDB(t)
	createEarningTable(t, db)
	repo := NewEarningRepository(db)

	list, err := repo.ListByUser(context.Background(), "0xdead000000000000000000000000000000000001")
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}
