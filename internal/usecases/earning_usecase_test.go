package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"stake-chain.backend/internal/domain/entities"
	domainerrors "stake-chain.backend/internal/domain/errors"
	"stake-chain.backend/internal/infrastructure/memstore"
)

func newEarningFixture() *EarningUsecase {
	return NewEarningUsecase(memstore.NewEarningRepository(memstore.NewStore()))
}

func TestEarningUsecase_RecordEarning_SelfProfit(t *testing.T) {
	usecase := newEarningFixture()

	earning, err := usecase.RecordEarning(context.Background(), &entities.RecordEarningInput{
		UserAddress: addrA,
		Amount:      "12.5",
		Type:        "self_profit",
	})
	require.NoError(t, err)
	require.Equal(t, entities.EarningTypeSelfProfit, earning.Type)
	require.Equal(t, "12.5", earning.Amount)
	require.False(t, earning.FromUserAddress.Valid)
	require.False(t, earning.Level.Valid)
}

func TestEarningUsecase_RecordEarning_ReferralReward(t *testing.T) {
	usecase := newEarningFixture()
	level := 3

	earning, err := usecase.RecordEarning(context.Background(), &entities.RecordEarningInput{
		UserAddress:     addrA,
		Amount:          "1",
		Type:            "referral_reward",
		FromUserAddress: addrB,
		Level:           &level,
		TransactionHash: testTxHash,
	})
	require.NoError(t, err)
	require.Equal(t, entities.EarningTypeReferralReward, earning.Type)
	require.Equal(t, 3, earning.Level.Int)
	require.True(t, earning.FromUserAddress.Valid)
	require.Equal(t, testTxHash, earning.TransactionHash.String)
}

func TestEarningUsecase_RecordEarning_ValidationFailures(t *testing.T) {
	usecase := newEarningFixture()
	ctx := context.Background()
	badLevel := 0

	cases := []struct {
		name  string
		input entities.RecordEarningInput
	}{
		{"bad address", entities.RecordEarningInput{UserAddress: "nope", Amount: "1", Type: "self_profit"}},
		{"negative amount", entities.RecordEarningInput{UserAddress: addrA, Amount: "-1", Type: "self_profit"}},
		{"non-numeric amount", entities.RecordEarningInput{UserAddress: addrA, Amount: "xx", Type: "self_profit"}},
		{"unknown type", entities.RecordEarningInput{UserAddress: addrA, Amount: "1", Type: "bonus"}},
		{"bad from address", entities.RecordEarningInput{UserAddress: addrA, Amount: "1", Type: "referral_reward", FromUserAddress: "zz"}},
		{"level below one", entities.RecordEarningInput{UserAddress: addrA, Amount: "1", Type: "referral_reward", Level: &badLevel}},
		{"bad tx hash", entities.RecordEarningInput{UserAddress: addrA, Amount: "1", Type: "self_profit", TransactionHash: "0xzz"}},
	}
	for _, tc := range cases {
		input := tc.input
		_, err := usecase.RecordEarning(ctx, &input)
		require.ErrorIs(t, err, domainerrors.ErrInvalidInput, tc.name)
	}
}

func TestEarningUsecase_ListEarnings(t *testing.T) {
	usecase := newEarningFixture()
	ctx := context.Background()

	for _, amount := range []string{"1", "2"} {
		_, err := usecase.RecordEarning(ctx, &entities.RecordEarningInput{
			UserAddress: addrA,
			Amount:      amount,
			Type:        "self_profit",
		})
		require.NoError(t, err)
	}

	list, err := usecase.ListEarnings(ctx, addrA)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "1", list[0].Amount)
	require.Equal(t, "2", list[1].Amount)
}
