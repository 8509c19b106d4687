package engine

import (
	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
)

// BuyTicket sells a ticket in the active round. Validation order matches the
// historical surface: numbers first, then the sale window, then the payment.
// The ticket id is unique across the engine's lifetime, counting up from 0,
// and is never reset when a new round starts.
func (e *Engine) BuyTicket(call Call, numbers entities.Picks) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !numbers.Valid() {
		return 0, fail(errors.OpBuyTicket, call.Height, errors.ErrInvalidNumbers)
	}
	r := e.current()
	if r == nil || !r.SaleOpen(call.Height) {
		return 0, fail(errors.OpBuyTicket, call.Height, errors.ErrSaleClosed)
	}
	if call.Value < e.config.TicketPrice {
		return 0, fail(errors.OpBuyTicket, call.Height, errors.ErrInsufficientPayment)
	}

	ticket := &entities.Ticket{
		ID:      e.nextTicketID,
		RoundID: r.ID,
		Owner:   call.Caller,
		Numbers: numbers,
	}
	e.nextTicketID++
	e.tickets[ticket.ID] = ticket
	e.byRound[r.ID] = append(e.byRound[r.ID], ticket.ID)
	r.TicketCount++
	r.Revenue += call.Value
	e.treasury += call.Value

	e.logger.Info("ticket sold",
		"ticket_id", ticket.ID,
		"round_id", r.ID,
		"owner", call.Caller.Hex(),
		"numbers", numbers.String(),
		"payment", call.Value)
	return ticket.ID, nil
}

// TicketOwner returns the current owner of a ticket.
func (e *Engine) TicketOwner(id uint64) (entities.Address, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tickets[id]
	if !ok {
		return entities.Address{}, errors.ErrNotFound
	}
	return t.Owner, nil
}

// TicketNumbers returns the numbers of a ticket.
func (e *Engine) TicketNumbers(id uint64) (entities.Picks, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tickets[id]
	if !ok {
		return entities.Picks{}, errors.ErrNotFound
	}
	return t.Numbers, nil
}

// Ticket returns a copy of a ticket.
func (e *Engine) Ticket(id uint64) (entities.Ticket, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tickets[id]
	if !ok {
		return entities.Ticket{}, errors.ErrNotFound
	}
	return *t, nil
}

// TicketsOfRound returns copies of a round's tickets in sale order.
func (e *Engine) TicketsOfRound(roundID uint64) []entities.Ticket {
	e.mu.Lock()
	defer e.mu.Unlock()

	ptrs := e.roundTickets(roundID)
	out := make([]entities.Ticket, 0, len(ptrs))
	for _, t := range ptrs {
		out = append(out, *t)
	}
	return out
}

// TransferTicket reassigns ownership. Only the current owner may transfer;
// there is no time restriction, and a claim always pays whoever owns the
// ticket at claim time.
func (e *Engine) TransferTicket(call Call, id uint64, newOwner entities.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tickets[id]
	if !ok {
		return fail(errors.OpTransferTicket, call.Height, errors.ErrNotFound)
	}
	if t.Owner != call.Caller {
		return fail(errors.OpTransferTicket, call.Height, errors.ErrNotOwner)
	}

	t.Owner = newOwner
	e.logger.Info("ticket transferred",
		"ticket_id", id,
		"from", call.Caller.Hex(),
		"to", newOwner.Hex())
	return nil
}
