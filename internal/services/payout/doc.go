/*
Package payout implements the creator payout quote engine.

Given a withdrawal request the engine validates it, computes an itemized
fee breakdown, and schedules the settlement date, under two mutually
exclusive tracks:
  - Standard: platform fee + fee tax + flat transfer fee, settling on the
    5th of the month after next.
  - Expedited: the standard fees plus a taxed expedite fee, settling a
    fixed number of business days after the request.

Usage:

	svc, err := payout.NewService(schedule)
	if err != nil {
	    // malformed fee schedule, fail at startup
	}

	quote := svc.Quote(payout.TransferRequest{
	    RequestedAmount:  100000,
	    AvailableBalance: 250000,
	    Track:            payout.TrackStandard,
	    RequestDate:      today,
	})

The engine is pure: no I/O, no clock reads, no shared mutable state. The
same request always yields the same quote, so calls may run concurrently
without coordination. Persisting a confirmed quote is the caller's job;
the engine never writes anything and never transitions a payout's status.

Validation failures are returned as data inside the quote, never as
errors. The only error surface is NewService, which rejects a malformed
FeeSchedule before any request is served.
*/
package payout
