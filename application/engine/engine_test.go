package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
	"lotto-engine/test/helpers"
)

var (
	operator = helpers.Addr(0x01)
	alice    = helpers.Addr(0x02)
	bob      = helpers.Addr(0x03)
)

const (
	ticketPrice    = int64(10)
	closeOffset    = uint64(5)
	deadlineOffset = uint64(10)
)

// testTable pays tier 5 (two positional matches, bonus mismatch) 101 and
// tier 10 (full match including bonus) 1000.
func testTable() entities.PayoutTable {
	var t entities.PayoutTable
	t[5] = 101
	t[10] = 1000
	return t
}

func newTestEngine(t *testing.T, funding int64) *Engine {
	t.Helper()
	e := New(&helpers.FixedSource{Numbers: helpers.MustPicks(t, "1,2,5,6,7,1")}, helpers.NopLogger{})
	cfg := entities.GameConfig{
		TicketPrice:         ticketPrice,
		SaleCloseOffset:     closeOffset,
		ClaimDeadlineOffset: deadlineOffset,
	}
	require.NoError(t, e.Configure(Call{Caller: operator, Height: 0, Value: funding}, cfg))
	require.NoError(t, e.SetPayouts(Call{Caller: operator, Height: 0}, testTable()))
	return e
}

func startedEngine(t *testing.T, funding int64) (*Engine, entities.Round) {
	t.Helper()
	e := newTestEngine(t, funding)
	r, err := e.StartRound(Call{Caller: operator, Height: 100})
	require.NoError(t, err)
	return e, r
}

func buy(t *testing.T, e *Engine, owner entities.Address, height uint64, picks string) uint64 {
	t.Helper()
	id, err := e.BuyTicket(Call{Caller: owner, Height: height, Value: ticketPrice}, helpers.MustPicks(t, picks))
	require.NoError(t, err)
	return id
}

func drawAt(t *testing.T, e *Engine, height uint64) entities.Picks {
	t.Helper()
	winning, err := e.CheckWinners(context.Background(), Call{Caller: alice, Height: height})
	require.NoError(t, err)
	return winning
}

func TestConfigurePinsOperator(t *testing.T) {
	e := New(nil, helpers.NopLogger{})
	cfg := entities.GameConfig{TicketPrice: ticketPrice, SaleCloseOffset: closeOffset, ClaimDeadlineOffset: deadlineOffset}

	require.NoError(t, e.Configure(Call{Caller: operator, Height: 0}, cfg))
	assert.Equal(t, operator, e.Operator())

	err := e.Configure(Call{Caller: alice, Height: 1}, cfg)
	require.ErrorIs(t, err, errors.ErrNotOperator)

	// Operator may reconfigure between rounds.
	cfg.TicketPrice = 25
	require.NoError(t, e.Configure(Call{Caller: operator, Height: 2}, cfg))
	assert.Equal(t, int64(25), e.Config().TicketPrice)
}

func TestConfigureNormalizesDeadline(t *testing.T) {
	e := New(nil, helpers.NopLogger{})
	cfg := entities.GameConfig{TicketPrice: 1, SaleCloseOffset: 20, ClaimDeadlineOffset: 5}
	require.NoError(t, e.Configure(Call{Caller: operator, Height: 0}, cfg))
	assert.Equal(t, uint64(20), e.Config().ClaimDeadlineOffset)
}

func TestConfigureRejectsNegativePrice(t *testing.T) {
	e := New(nil, helpers.NopLogger{})
	cfg := entities.GameConfig{TicketPrice: -1, SaleCloseOffset: closeOffset, ClaimDeadlineOffset: deadlineOffset}

	err := e.Configure(Call{Caller: operator, Height: 0}, cfg)
	require.ErrorIs(t, err, errors.ErrInvalidAmount)

	// A rejected first configure must not pin its caller as the operator.
	assert.True(t, e.Operator().IsZero())
}

func TestSetPayoutsRejectsNegativePool(t *testing.T) {
	e := newTestEngine(t, 0)

	table := testTable()
	table[3] = -500
	err := e.SetPayouts(Call{Caller: operator, Height: 0}, table)
	require.ErrorIs(t, err, errors.ErrInvalidAmount)

	// The previous table stays in force.
	assert.Equal(t, testTable(), e.PayoutTable())
}

func TestConfigureRejectedWhileRoundActive(t *testing.T) {
	e, r := startedEngine(t, 0)
	cfg := e.Config()

	err := e.Configure(Call{Caller: operator, Height: r.StartHeight + 1}, cfg)
	require.ErrorIs(t, err, errors.ErrRoundActive)

	err = e.SetPayouts(Call{Caller: operator, Height: r.CloseHeight}, testTable())
	require.ErrorIs(t, err, errors.ErrRoundActive)

	// Past the claim deadline the round no longer blocks reconfiguration.
	require.NoError(t, e.Configure(Call{Caller: operator, Height: r.DeadlineHeight}, cfg))
}

func TestStartRoundHeights(t *testing.T) {
	e := newTestEngine(t, 0)
	r, err := e.StartRound(Call{Caller: operator, Height: 100, Value: 500})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), r.ID)
	assert.Equal(t, uint64(100), r.StartHeight)
	assert.Equal(t, uint64(105), r.CloseHeight)
	assert.Equal(t, uint64(110), r.DeadlineHeight)
	assert.Equal(t, int64(500), e.Balance())
}

func TestStartRoundWhileActive(t *testing.T) {
	e, r := startedEngine(t, 0)

	_, err := e.StartRound(Call{Caller: operator, Height: r.StartHeight + 1})
	require.ErrorIs(t, err, errors.ErrRoundActive)
	assert.Equal(t, int64(-1), errors.WireCode(errors.OpStartRound, err))

	// Even drawn rounds block a restart until the claim deadline passes.
	drawAt(t, e, r.CloseHeight)
	_, err = e.StartRound(Call{Caller: operator, Height: r.DeadlineHeight - 1})
	require.ErrorIs(t, err, errors.ErrRoundActive)

	r2, err := e.StartRound(Call{Caller: operator, Height: r.DeadlineHeight})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), r2.ID)
}

func TestStartRoundAnyCaller(t *testing.T) {
	e := newTestEngine(t, 0)

	r, err := e.StartRound(Call{Caller: alice, Height: 100})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), r.ID)
}

func TestBuyTicketAssignsSequentialIDs(t *testing.T) {
	e, r := startedEngine(t, 0)

	id0 := buy(t, e, alice, r.StartHeight, "1,2,3,4,5,6")
	id1 := buy(t, e, bob, r.StartHeight+1, "7,8,9,10,11,12")
	assert.Equal(t, uint64(0), id0)
	assert.Equal(t, uint64(1), id1)

	round, err := e.Round(r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), round.TicketCount)
	assert.Equal(t, 2*ticketPrice, round.Revenue)
	assert.Equal(t, 2*ticketPrice, e.Balance())

	owner, err := e.TicketOwner(id0)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)

	numbers, err := e.TicketNumbers(id1)
	require.NoError(t, err)
	assert.Equal(t, "7,8,9,10,11,12", numbers.String())
}

func TestBuyTicketValidationOrder(t *testing.T) {
	e, r := startedEngine(t, 0)

	// Duplicate main numbers are rejected before anything else, even when
	// the sale window is already closed and the payment is short.
	_, err := e.BuyTicket(Call{Caller: alice, Height: r.CloseHeight, Value: 0}, helpers.MustPicks(t, "3,3,4,5,6,7"))
	require.ErrorIs(t, err, errors.ErrInvalidNumbers)
	assert.Equal(t, int64(-3), errors.WireCode(errors.OpBuyTicket, err))

	// A closed sale window wins over a short payment.
	_, err = e.BuyTicket(Call{Caller: alice, Height: r.CloseHeight, Value: 0}, helpers.MustPicks(t, "1,2,3,4,5,6"))
	require.ErrorIs(t, err, errors.ErrSaleClosed)
	assert.Equal(t, int64(-2), errors.WireCode(errors.OpBuyTicket, err))

	_, err = e.BuyTicket(Call{Caller: alice, Height: r.StartHeight, Value: ticketPrice - 1}, helpers.MustPicks(t, "1,2,3,4,5,6"))
	require.ErrorIs(t, err, errors.ErrInsufficientPayment)
	assert.Equal(t, int64(-1), errors.WireCode(errors.OpBuyTicket, err))

	assert.Equal(t, uint64(0), e.NextTicketID())
}

func TestBuyTicketBonusMayRepeatMain(t *testing.T) {
	e, r := startedEngine(t, 0)

	// Only the five main numbers must be pairwise distinct; the bonus slot
	// may repeat one of them.
	id := buy(t, e, alice, r.StartHeight, "1,2,5,6,7,1")
	assert.Equal(t, uint64(0), id)
}

func TestBuyTicketOverpaymentKept(t *testing.T) {
	e, r := startedEngine(t, 0)

	_, err := e.BuyTicket(Call{Caller: alice, Height: r.StartHeight, Value: ticketPrice + 7}, helpers.MustPicks(t, "1,2,3,4,5,6"))
	require.NoError(t, err)
	assert.Equal(t, ticketPrice+7, e.Balance())
}

func TestCheckWinnersWindow(t *testing.T) {
	e, r := startedEngine(t, 0)
	buy(t, e, alice, r.StartHeight, "1,2,3,4,5,35")

	_, err := e.CheckWinners(context.Background(), Call{Caller: alice, Height: r.CloseHeight - 1})
	require.ErrorIs(t, err, errors.ErrTooEarly)
	assert.Equal(t, int64(-1), errors.WireCode(errors.OpCheckWinners, err))

	winning := drawAt(t, e, r.CloseHeight)
	assert.Equal(t, "1,2,5,6,7,1", winning.String())

	_, err = e.CheckWinners(context.Background(), Call{Caller: bob, Height: r.CloseHeight + 1})
	require.ErrorIs(t, err, errors.ErrAlreadyDrawn)
	assert.Equal(t, int64(-2), errors.WireCode(errors.OpCheckWinners, err))
}

func TestCheckWinnersFixesWinnerCounts(t *testing.T) {
	e, r := startedEngine(t, 0)
	buy(t, e, alice, r.StartHeight, "1,2,3,4,5,35") // two positional matches, bonus mismatch: tier 5
	buy(t, e, alice, r.StartHeight, "1,2,5,6,7,1")  // full match including bonus: tier 10
	buy(t, e, bob, r.StartHeight, "8,9,10,11,12,13")

	drawAt(t, e, r.CloseHeight)
	round, err := e.Round(r.ID)
	require.NoError(t, err)
	require.True(t, round.Drawn)
	assert.Equal(t, int64(1), round.WinnerCounts[5])
	assert.Equal(t, int64(1), round.WinnerCounts[10])
	assert.Equal(t, int64(1), round.WinnerCounts[1]) // no matches, bonus mismatch
}

func TestCheckWinnersNoSource(t *testing.T) {
	e := New(nil, helpers.NopLogger{})
	cfg := entities.GameConfig{TicketPrice: ticketPrice, SaleCloseOffset: closeOffset, ClaimDeadlineOffset: deadlineOffset}
	require.NoError(t, e.Configure(Call{Caller: operator, Height: 0}, cfg))
	r, err := e.StartRound(Call{Caller: operator, Height: 100})
	require.NoError(t, err)

	_, err = e.CheckWinners(context.Background(), Call{Caller: alice, Height: r.CloseHeight})
	require.ErrorIs(t, err, errors.ErrOracleUnavailable)
	assert.Equal(t, int64(-3), errors.WireCode(errors.OpCheckWinners, err))

	// A failed draw leaves the round eligible for another attempt.
	round, err := e.Round(r.ID)
	require.NoError(t, err)
	assert.False(t, round.Drawn)
}

func TestClaimPaysTierShare(t *testing.T) {
	e, r := startedEngine(t, 1000)
	id := buy(t, e, alice, r.StartHeight, "1,2,3,4,5,35")
	drawAt(t, e, r.CloseHeight)

	balanceBefore := e.Balance()
	p, err := e.ClaimWinnings(Call{Caller: alice, Height: r.CloseHeight + 1}, id)
	require.NoError(t, err)
	assert.Equal(t, int64(101), p.Amount)
	assert.Equal(t, 5, p.Tier)
	assert.Equal(t, alice, p.Recipient)
	assert.Equal(t, r.ID, p.RoundID)
	assert.Equal(t, balanceBefore-101, e.Balance())
}

func TestClaimSplitsPoolEvenly(t *testing.T) {
	e, r := startedEngine(t, 2000)
	idA := buy(t, e, alice, r.StartHeight, "1,2,5,6,7,1")
	idB := buy(t, e, bob, r.StartHeight, "1,2,5,6,7,1")
	drawAt(t, e, r.CloseHeight)

	pa, err := e.ClaimWinnings(Call{Caller: alice, Height: r.CloseHeight + 1}, idA)
	require.NoError(t, err)
	pb, err := e.ClaimWinnings(Call{Caller: bob, Height: r.CloseHeight + 1}, idB)
	require.NoError(t, err)
	assert.Equal(t, int64(500), pa.Amount)
	assert.Equal(t, int64(500), pb.Amount)
}

func TestClaimSplitRemainderStaysInTreasury(t *testing.T) {
	e, r := startedEngine(t, 2000)
	owners := []entities.Address{alice, bob, helpers.Addr(0x04)}
	ids := make([]uint64, len(owners))
	for i, o := range owners {
		ids[i] = buy(t, e, o, r.StartHeight, "1,2,5,6,7,1")
	}
	drawAt(t, e, r.CloseHeight)

	balanceBefore := e.Balance()
	for i, o := range owners {
		p, err := e.ClaimWinnings(Call{Caller: o, Height: r.CloseHeight + 1}, ids[i])
		require.NoError(t, err)
		assert.Equal(t, int64(333), p.Amount)
	}
	// 1000 / 3 leaves 1 behind.
	assert.Equal(t, balanceBefore-999, e.Balance())
}

func TestClaimTwice(t *testing.T) {
	e, r := startedEngine(t, 1000)
	id := buy(t, e, alice, r.StartHeight, "1,2,3,4,5,35")
	drawAt(t, e, r.CloseHeight)

	_, err := e.ClaimWinnings(Call{Caller: alice, Height: r.CloseHeight + 1}, id)
	require.NoError(t, err)

	_, err = e.ClaimWinnings(Call{Caller: alice, Height: r.CloseHeight + 2}, id)
	require.ErrorIs(t, err, errors.ErrAlreadyClaimed)
	assert.Equal(t, int64(-2), errors.WireCode(errors.OpClaimWinnings, err))
}

func TestClaimWindow(t *testing.T) {
	e, r := startedEngine(t, 1000)
	id := buy(t, e, alice, r.StartHeight, "1,2,3,4,5,35")

	// Before the draw there is nothing to claim.
	_, err := e.ClaimWinnings(Call{Caller: alice, Height: r.CloseHeight - 1}, id)
	require.ErrorIs(t, err, errors.ErrClaimWindowClosed)
	assert.Equal(t, int64(-1), errors.WireCode(errors.OpClaimWinnings, err))

	drawAt(t, e, r.CloseHeight)

	// At the deadline the window is shut for good.
	_, err = e.ClaimWinnings(Call{Caller: alice, Height: r.DeadlineHeight}, id)
	require.ErrorIs(t, err, errors.ErrClaimWindowClosed)
	assert.Equal(t, 1000+ticketPrice, e.Balance())
}

func TestClaimLosingTicketMarksClaimed(t *testing.T) {
	e, r := startedEngine(t, 1000)
	id := buy(t, e, alice, r.StartHeight, "8,9,10,11,12,13")
	drawAt(t, e, r.CloseHeight)

	balanceBefore := e.Balance()
	p, err := e.ClaimWinnings(Call{Caller: alice, Height: r.CloseHeight + 1}, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Amount)
	assert.Equal(t, balanceBefore, e.Balance())

	_, err = e.ClaimWinnings(Call{Caller: alice, Height: r.CloseHeight + 2}, id)
	require.ErrorIs(t, err, errors.ErrAlreadyClaimed)
}

func TestClaimOwnershipFollowsTransfer(t *testing.T) {
	e, r := startedEngine(t, 1000)
	id := buy(t, e, alice, r.StartHeight, "1,2,3,4,5,35")
	drawAt(t, e, r.CloseHeight)

	_, err := e.ClaimWinnings(Call{Caller: bob, Height: r.CloseHeight + 1}, id)
	require.ErrorIs(t, err, errors.ErrNotOwner)

	err = e.TransferTicket(Call{Caller: bob, Height: r.CloseHeight + 1}, id, bob)
	require.ErrorIs(t, err, errors.ErrNotOwner)
	require.NoError(t, e.TransferTicket(Call{Caller: alice, Height: r.CloseHeight + 1}, id, bob))

	p, err := e.ClaimWinnings(Call{Caller: bob, Height: r.CloseHeight + 2}, id)
	require.NoError(t, err)
	assert.Equal(t, bob, p.Recipient)
	assert.Equal(t, int64(101), p.Amount)
}

func TestClaimUnknownTicket(t *testing.T) {
	e, r := startedEngine(t, 1000)
	drawAt(t, e, r.CloseHeight)

	_, err := e.ClaimWinnings(Call{Caller: alice, Height: r.CloseHeight + 1}, 42)
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestClaimInsufficientTreasury(t *testing.T) {
	e, r := startedEngine(t, 0)
	id := buy(t, e, alice, r.StartHeight, "1,2,3,4,5,35")
	drawAt(t, e, r.CloseHeight)

	// Only the ticket price is in the treasury; the tier pays 101.
	_, err := e.ClaimWinnings(Call{Caller: alice, Height: r.CloseHeight + 1}, id)
	require.ErrorIs(t, err, errors.ErrInsufficientFunds)
	assert.Equal(t, int64(-3), errors.WireCode(errors.OpClaimWinnings, err))

	// The ticket stays claimable for when the treasury is topped up.
	ticket, err := e.Ticket(id)
	require.NoError(t, err)
	assert.False(t, ticket.Claimed)
}

func TestWithdrawLockedUntilDeadline(t *testing.T) {
	e, r := startedEngine(t, 1000)
	drawAt(t, e, r.CloseHeight)

	_, err := e.Withdraw(Call{Caller: operator, Height: r.DeadlineHeight - 1}, 100)
	require.ErrorIs(t, err, errors.ErrLocked)
	assert.Equal(t, int64(-1), errors.WireCode(errors.OpWithdraw, err))

	got, err := e.Withdraw(Call{Caller: operator, Height: r.DeadlineHeight}, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got)
	assert.Equal(t, int64(900), e.Balance())
}

func TestWithdrawOnlyOperator(t *testing.T) {
	e, r := startedEngine(t, 1000)

	_, err := e.Withdraw(Call{Caller: alice, Height: r.DeadlineHeight}, 100)
	require.ErrorIs(t, err, errors.ErrNotOperator)
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	e, r := startedEngine(t, 50)

	_, err := e.Withdraw(Call{Caller: operator, Height: r.DeadlineHeight}, 51)
	require.ErrorIs(t, err, errors.ErrInsufficientFunds)
	assert.Equal(t, int64(-2), errors.WireCode(errors.OpWithdraw, err))

	_, err = e.Withdraw(Call{Caller: operator, Height: r.DeadlineHeight}, -1)
	require.ErrorIs(t, err, errors.ErrInsufficientFunds)
}

func TestTicketIDsSpanRounds(t *testing.T) {
	e, r1 := startedEngine(t, 0)
	buy(t, e, alice, r1.StartHeight, "1,2,3,4,5,6")
	buy(t, e, bob, r1.StartHeight, "7,8,9,10,11,12")
	drawAt(t, e, r1.CloseHeight)

	r2, err := e.StartRound(Call{Caller: operator, Height: r1.DeadlineHeight})
	require.NoError(t, err)

	id := buy(t, e, alice, r2.StartHeight, "1,2,3,4,5,6")
	assert.Equal(t, uint64(2), id)

	// The first round's tickets stay addressable after the new round opens.
	owner, err := e.TicketOwner(0)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)
}

func TestPayoutTablePersistsAcrossRounds(t *testing.T) {
	e, r1 := startedEngine(t, 2000)
	drawAt(t, e, r1.CloseHeight)

	r2, err := e.StartRound(Call{Caller: operator, Height: r1.DeadlineHeight})
	require.NoError(t, err)
	id := buy(t, e, alice, r2.StartHeight, "1,2,3,4,5,35")
	drawAt(t, e, r2.CloseHeight)

	p, err := e.ClaimWinnings(Call{Caller: alice, Height: r2.CloseHeight + 1}, id)
	require.NoError(t, err)
	assert.Equal(t, int64(101), p.Amount)
}

func TestRestoreRoundTrip(t *testing.T) {
	e, r := startedEngine(t, 1000)
	id := buy(t, e, alice, r.StartHeight, "1,2,3,4,5,35")
	buy(t, e, bob, r.StartHeight, "8,9,10,11,12,13")
	drawAt(t, e, r.CloseHeight)

	restored := Restore(e.State(), e.Rounds(), e.TicketsOfRound(r.ID),
		&helpers.FixedSource{}, helpers.NopLogger{})

	assert.Equal(t, e.Balance(), restored.Balance())
	assert.Equal(t, e.Operator(), restored.Operator())
	assert.Equal(t, e.NextTicketID(), restored.NextTicketID())

	p, err := restored.ClaimWinnings(Call{Caller: alice, Height: r.CloseHeight + 1}, id)
	require.NoError(t, err)
	assert.Equal(t, int64(101), p.Amount)

	_, err = restored.StartRound(Call{Caller: operator, Height: r.DeadlineHeight - 1})
	require.ErrorIs(t, err, errors.ErrRoundActive)
}
