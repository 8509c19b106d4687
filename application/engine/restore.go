package engine

import (
	"sort"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/interfaces"
)

// Restore rebuilds an engine from persisted state. Rounds must be supplied in
// id order starting at 1 with no gaps; tickets may arrive in any order and
// are re-indexed by round in ascending ticket id, which is also sale order.
func Restore(
	state *entities.EngineState,
	rounds []entities.Round,
	tickets []entities.Ticket,
	source interfaces.RandomnessSource,
	logger interfaces.Logger,
) *Engine {
	e := New(source, logger)
	if state != nil {
		e.operator = state.Operator
		e.config = state.Config
		e.payouts = state.Payouts
		e.treasury = state.TreasuryBalance
		e.nextTicketID = state.NextTicketID
	}

	e.rounds = make([]*entities.Round, 0, len(rounds))
	for i := range rounds {
		r := rounds[i]
		e.rounds = append(e.rounds, &r)
	}

	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID < tickets[j].ID })
	for i := range tickets {
		t := tickets[i]
		e.tickets[t.ID] = &t
		e.byRound[t.RoundID] = append(e.byRound[t.RoundID], t.ID)
		if t.ID >= e.nextTicketID {
			e.nextTicketID = t.ID + 1
		}
	}
	return e
}
