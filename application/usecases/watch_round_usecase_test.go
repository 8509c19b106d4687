package usecases

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotto-engine/application/engine"
	"lotto-engine/domain/dto"
	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
	"lotto-engine/test/helpers"
	"lotto-engine/test/mocks"
)

func TestWatchRoundUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	ctx := context.Background()

	t.Run("open round", func(t *testing.T) {
		eng, round := newDrawnableEngine(t)
		mockChain := mocks.NewMockChainReader(ctrl)
		mockChain.EXPECT().BlockHeight(ctx).Return(round.StartHeight+1, nil)

		useCase := NewWatchRoundUseCase(eng, mockChain, nil, mockLogger)
		result, err := useCase.Execute(ctx, interfaces.WatchRoundParams{})
		require.NoError(t, err)
		assert.Equal(t, entities.RoundStatusOpen, result.Status)
		assert.True(t, result.SaleOpen)
		assert.False(t, result.DrawEligible)
		assert.False(t, result.DrawTriggered)
	})

	t.Run("draw eligible without trigger", func(t *testing.T) {
		eng, round := newDrawnableEngine(t)
		mockChain := mocks.NewMockChainReader(ctrl)
		mockChain.EXPECT().BlockHeight(ctx).Return(round.CloseHeight, nil)

		useCase := NewWatchRoundUseCase(eng, mockChain, nil, mockLogger)
		result, err := useCase.Execute(ctx, interfaces.WatchRoundParams{})
		require.NoError(t, err)
		assert.Equal(t, entities.RoundStatusAwaitingDraw, result.Status)
		assert.True(t, result.DrawEligible)
		assert.False(t, result.DrawTriggered)
	})

	t.Run("draw eligible with trigger", func(t *testing.T) {
		eng, round := newDrawnableEngine(t)
		mockChain := mocks.NewMockChainReader(ctrl)
		mockDraw := mocks.NewMockDrawRoundUseCase(ctrl)

		mockChain.EXPECT().BlockHeight(ctx).Return(round.CloseHeight, nil)
		mockDraw.EXPECT().
			Execute(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, params interfaces.DrawRoundParams) (*dto.DrawResult, error) {
				require.NotNil(t, params.Height)
				winning, err := eng.CheckWinners(ctx, engineCall(testOperator, *params.Height))
				require.NoError(t, err)
				return &dto.DrawResult{RoundID: round.ID, Height: *params.Height, WinningNumbers: winning}, nil
			})

		useCase := NewWatchRoundUseCase(eng, mockChain, mockDraw, mockLogger)
		result, err := useCase.Execute(ctx, interfaces.WatchRoundParams{TriggerDraw: true})
		require.NoError(t, err)
		assert.True(t, result.DrawTriggered)
		require.NotNil(t, result.Draw)
		assert.Equal(t, entities.RoundStatusDrawn, result.Status)
	})

	t.Run("no round", func(t *testing.T) {
		eng := newEmptyEngine(t)
		mockChain := mocks.NewMockChainReader(ctrl)
		mockChain.EXPECT().BlockHeight(ctx).Return(uint64(50), nil)

		useCase := NewWatchRoundUseCase(eng, mockChain, nil, mockLogger)
		_, err := useCase.Execute(ctx, interfaces.WatchRoundParams{})
		require.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("chain read failure", func(t *testing.T) {
		eng, _ := newDrawnableEngine(t)
		mockChain := mocks.NewMockChainReader(ctrl)
		mockChain.EXPECT().BlockHeight(ctx).Return(uint64(0), assert.AnError)

		useCase := NewWatchRoundUseCase(eng, mockChain, nil, mockLogger)
		_, err := useCase.Execute(ctx, interfaces.WatchRoundParams{})
		require.Error(t, err)
	})
}

func engineCall(caller entities.Address, height uint64) engine.Call {
	return engine.Call{Caller: caller, Height: height}
}

func newEmptyEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng := engine.New(&helpers.FixedSource{Numbers: helpers.MustPicks(t, "1,2,5,6,7,1")}, helpers.NopLogger{})
	cfg := entities.GameConfig{TicketPrice: 10, SaleCloseOffset: 5, ClaimDeadlineOffset: 10}
	require.NoError(t, eng.Configure(engineCall(testOperator, 0), cfg))
	return eng
}
