package payout

// Service is the single entry point for payout quoting. It validates
// the request, dispatches to the track's calculator, attaches the
// settlement schedule, and returns one uniform quote.
type Service interface {
	Quote(req TransferRequest) PayoutQuote
	Schedule() FeeSchedule
}
