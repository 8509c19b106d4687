package usecases

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotto-engine/application/engine"
	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
	"lotto-engine/test/helpers"
	"lotto-engine/test/mocks"
)

var testOperator = helpers.Addr(0x01)

func withHeight(h uint64) interfaces.DrawRoundParams {
	return interfaces.DrawRoundParams{Height: &h}
}

func newDrawnableEngine(t *testing.T) (*engine.Engine, entities.Round) {
	t.Helper()
	eng := engine.New(&helpers.FixedSource{Numbers: helpers.MustPicks(t, "1,2,5,6,7,1")}, helpers.NopLogger{})
	cfg := entities.GameConfig{TicketPrice: 10, SaleCloseOffset: 5, ClaimDeadlineOffset: 10}
	require.NoError(t, eng.Configure(engine.Call{Caller: testOperator, Height: 0, Value: 1000}, cfg))
	round, err := eng.StartRound(engine.Call{Caller: testOperator, Height: 100})
	require.NoError(t, err)
	_, err = eng.BuyTicket(engine.Call{Caller: helpers.Addr(0x02), Height: 100, Value: 10},
		helpers.MustPicks(t, "1,2,5,6,7,1"))
	require.NoError(t, err)
	return eng, round
}

func expectPersist(uow *mocks.MockUnitOfWork, rounds *mocks.MockRoundRepository, state *mocks.MockStateRepository) {
	uow.EXPECT().Begin().Return(nil)
	uow.EXPECT().Rounds().Return(rounds)
	rounds.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	uow.EXPECT().State().Return(state)
	state.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	uow.EXPECT().Commit().Return(nil)
}

func TestDrawRoundUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	ctx := context.Background()

	t.Run("successful draw at chain height", func(t *testing.T) {
		eng, round := newDrawnableEngine(t)
		mockChain := mocks.NewMockChainReader(ctrl)
		mockUow := mocks.NewMockUnitOfWork(ctrl)
		mockRounds := mocks.NewMockRoundRepository(ctrl)
		mockState := mocks.NewMockStateRepository(ctrl)
		mockNotifier := mocks.NewMockNotifier(ctrl)

		mockChain.EXPECT().BlockHeight(ctx).Return(round.CloseHeight, nil)
		expectPersist(mockUow, mockRounds, mockState)
		mockNotifier.EXPECT().IsConfigured().Return(true)
		mockNotifier.EXPECT().AnnounceDraw(ctx, gomock.Any()).Return(nil)

		useCase := NewDrawRoundUseCase(eng, mockChain, mockUow, mockNotifier, mockLogger)
		result, err := useCase.Execute(ctx, interfaces.DrawRoundParams{})
		require.NoError(t, err)
		assert.Equal(t, round.ID, result.RoundID)
		assert.Equal(t, "1,2,5,6,7,1", result.WinningNumbers.String())
		assert.Equal(t, int64(1), result.WinnerCounts[10])
		assert.Equal(t, int64(1), result.TicketCount)
	})

	t.Run("height override skips chain read", func(t *testing.T) {
		eng, round := newDrawnableEngine(t)
		mockUow := mocks.NewMockUnitOfWork(ctrl)
		mockRounds := mocks.NewMockRoundRepository(ctrl)
		mockState := mocks.NewMockStateRepository(ctrl)

		expectPersist(mockUow, mockRounds, mockState)

		height := round.CloseHeight + 3
		useCase := NewDrawRoundUseCase(eng, nil, mockUow, nil, mockLogger)
		result, err := useCase.Execute(ctx, withHeight(height))
		require.NoError(t, err)
		assert.Equal(t, height, result.Height)
	})

	t.Run("draw before close fails", func(t *testing.T) {
		eng, round := newDrawnableEngine(t)
		mockChain := mocks.NewMockChainReader(ctrl)
		mockChain.EXPECT().BlockHeight(ctx).Return(round.CloseHeight-1, nil)

		useCase := NewDrawRoundUseCase(eng, mockChain, nil, nil, mockLogger)
		_, err := useCase.Execute(ctx, interfaces.DrawRoundParams{})
		require.ErrorIs(t, err, errors.ErrTooEarly)
	})

	t.Run("notifier failure does not fail the draw", func(t *testing.T) {
		eng, round := newDrawnableEngine(t)
		mockUow := mocks.NewMockUnitOfWork(ctrl)
		mockRounds := mocks.NewMockRoundRepository(ctrl)
		mockState := mocks.NewMockStateRepository(ctrl)
		mockNotifier := mocks.NewMockNotifier(ctrl)

		expectPersist(mockUow, mockRounds, mockState)
		mockNotifier.EXPECT().IsConfigured().Return(true)
		mockNotifier.EXPECT().AnnounceDraw(ctx, gomock.Any()).Return(assert.AnError)

		useCase := NewDrawRoundUseCase(eng, nil, mockUow, mockNotifier, mockLogger)
		result, err := useCase.Execute(ctx, withHeight(round.CloseHeight))
		require.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("persist failure rolls back", func(t *testing.T) {
		eng, round := newDrawnableEngine(t)
		mockUow := mocks.NewMockUnitOfWork(ctrl)
		mockRounds := mocks.NewMockRoundRepository(ctrl)

		mockUow.EXPECT().Begin().Return(nil)
		mockUow.EXPECT().Rounds().Return(mockRounds)
		mockRounds.EXPECT().Save(gomock.Any(), gomock.Any()).Return(assert.AnError)
		mockUow.EXPECT().Rollback().Return(nil)

		useCase := NewDrawRoundUseCase(eng, nil, mockUow, nil, mockLogger)
		_, err := useCase.Execute(ctx, withHeight(round.CloseHeight))
		require.Error(t, err)
	})
}
