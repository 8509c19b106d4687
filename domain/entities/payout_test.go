package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierIndex(t *testing.T) {
	winning := Picks{1, 2, 5, 6, 7, 1}

	tests := []struct {
		name   string
		ticket Picks
		tier   int
	}{
		{"no matches", Picks{10, 11, 12, 13, 14, 15}, 1},
		{"bonus only", Picks{10, 11, 12, 13, 14, 1}, 0},
		{"two mains bonus mismatch", Picks{1, 2, 3, 4, 5, 35}, 5},
		{"two mains bonus match", Picks{1, 2, 3, 4, 5, 1}, 4},
		{"same numbers wrong slots", Picks{2, 1, 6, 5, 8, 35}, 1},
		{"full match", Picks{1, 2, 5, 6, 7, 1}, 10},
		{"all mains bonus mismatch", Picks{1, 2, 5, 6, 7, 35}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.tier, TierIndex(tt.ticket, winning))
		})
	}
}

func TestPicksValid(t *testing.T) {
	assert.True(t, Picks{1, 2, 3, 4, 5, 6}.Valid())
	assert.True(t, Picks{1, 2, 3, 4, 5, 1}.Valid(), "bonus may repeat a main")
	assert.False(t, Picks{1, 1, 2, 3, 5, 8}.Valid(), "duplicate mains")
}

func TestCountWinners(t *testing.T) {
	winning := Picks{1, 2, 5, 6, 7, 1}
	tickets := []Ticket{
		{ID: 0, Numbers: Picks{1, 2, 3, 4, 5, 35}},
		{ID: 1, Numbers: Picks{1, 2, 5, 6, 7, 1}},
		{ID: 2, Numbers: Picks{1, 2, 5, 6, 7, 1}},
		{ID: 3, Numbers: Picks{20, 21, 22, 23, 24, 25}},
	}

	counts := CountWinners(tickets, winning)

	assert.Equal(t, int64(1), counts[5])
	assert.Equal(t, int64(2), counts[10])
	assert.Equal(t, int64(1), counts[1])
	assert.Equal(t, int64(0), counts[11])
}

func TestRoundWindowPredicates(t *testing.T) {
	r := Round{ID: 1, StartHeight: 100, CloseHeight: 110, DeadlineHeight: 130}

	assert.True(t, r.SaleOpen(109))
	assert.False(t, r.SaleOpen(110))

	assert.True(t, r.DrawEligible(110))
	assert.False(t, r.DrawEligible(109))
	assert.False(t, r.ClaimEligible(115), "not drawn yet")

	r.Drawn = true
	assert.False(t, r.DrawEligible(115))
	assert.True(t, r.ClaimEligible(129))
	assert.False(t, r.ClaimEligible(130))
	assert.True(t, r.WithdrawalEligible(130))

	assert.Equal(t, RoundStatusDrawn, r.Status(120))
	assert.Equal(t, RoundStatusFinalized, r.Status(130))
	r.Drawn = false
	assert.Equal(t, RoundStatusOpen, r.Status(105))
	assert.Equal(t, RoundStatusAwaitingDraw, r.Status(115))
	// A round that was never drawn still finalizes at the deadline.
	assert.Equal(t, RoundStatusFinalized, r.Status(130))
}

func TestParsePayoutTable(t *testing.T) {
	table, err := ParsePayoutTable("0,0,0,0,101,101,202,202,505,505,1000,1000")
	assert.NoError(t, err)
	assert.Equal(t, int64(101), table[4])
	assert.Equal(t, int64(1000), table[10])
	assert.Equal(t, "0,0,0,0,101,101,202,202,505,505,1000,1000", table.String())

	_, err = ParsePayoutTable("1,2,3")
	assert.Error(t, err)
}
