package blockchain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotto-engine/domain/entities"
	"lotto-engine/test/helpers"
	"lotto-engine/test/mocks"
)

func TestBlockHashSource_Draw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := helpers.TestContext(t)
	round := &entities.Round{ID: 1, StartHeight: 100, CloseHeight: 105, DeadlineHeight: 110}
	blockHash := common.HexToHash("0xdeadbeef00000000000000000000000000000000000000000000000000000001")

	t.Run("deterministic for the same block", func(t *testing.T) {
		mockChain := mocks.NewMockChainReader(ctrl)
		mockChain.EXPECT().BlockHash(ctx, round.CloseHeight).Return(blockHash, nil).Times(2)

		source := NewBlockHashSource(mockChain, helpers.NopLogger{})
		first, err := source.Draw(ctx, round)
		require.NoError(t, err)
		second, err := source.Draw(ctx, round)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("valid numbers", func(t *testing.T) {
		mockChain := mocks.NewMockChainReader(ctrl)
		mockChain.EXPECT().BlockHash(ctx, round.CloseHeight).Return(blockHash, nil)

		source := NewBlockHashSource(mockChain, helpers.NopLogger{})
		picks, err := source.Draw(ctx, round)
		require.NoError(t, err)
		assert.True(t, picks.Valid())
		for _, n := range picks {
			assert.GreaterOrEqual(t, n, int64(1))
			assert.LessOrEqual(t, n, int64(drawNumberMax))
		}
	})

	t.Run("round id changes the draw", func(t *testing.T) {
		mockChain := mocks.NewMockChainReader(ctrl)
		other := &entities.Round{ID: 2, StartHeight: 100, CloseHeight: 105, DeadlineHeight: 110}
		mockChain.EXPECT().BlockHash(ctx, round.CloseHeight).Return(blockHash, nil)
		mockChain.EXPECT().BlockHash(ctx, other.CloseHeight).Return(blockHash, nil)

		source := NewBlockHashSource(mockChain, helpers.NopLogger{})
		first, err := source.Draw(ctx, round)
		require.NoError(t, err)
		second, err := source.Draw(ctx, other)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("chain failure surfaces", func(t *testing.T) {
		mockChain := mocks.NewMockChainReader(ctrl)
		mockChain.EXPECT().BlockHash(ctx, round.CloseHeight).Return(common.Hash{}, assert.AnError)

		source := NewBlockHashSource(mockChain, helpers.NopLogger{})
		_, err := source.Draw(ctx, round)
		require.Error(t, err)
	})
}

func TestNewRandomnessSource(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		source, err := NewRandomnessSource("none", nil, helpers.NopLogger{})
		require.NoError(t, err)
		assert.Nil(t, source)
	})

	t.Run("fixed", func(t *testing.T) {
		source, err := NewRandomnessSource("fixed:1,2,5,6,7,1", nil, helpers.NopLogger{})
		require.NoError(t, err)
		require.NotNil(t, source)

		picks, err := source.Draw(helpers.TestContext(t), &entities.Round{ID: 1})
		require.NoError(t, err)
		assert.Equal(t, "1,2,5,6,7,1", picks.String())
	})

	t.Run("fixed with bad numbers", func(t *testing.T) {
		_, err := NewRandomnessSource("fixed:1,2,3", nil, helpers.NopLogger{})
		require.Error(t, err)
	})

	t.Run("blockhash requires chain", func(t *testing.T) {
		_, err := NewRandomnessSource("blockhash", nil, helpers.NopLogger{})
		require.Error(t, err)
	})

	t.Run("unknown ref", func(t *testing.T) {
		_, err := NewRandomnessSource("vrf", nil, helpers.NopLogger{})
		require.Error(t, err)
	})
}
