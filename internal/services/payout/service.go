package payout

import "time"

type service struct {
	schedule  FeeSchedule
	calc      *Calculator
	scheduler Scheduler
}

// NewService builds the quote facade around one immutable fee schedule.
// A malformed schedule is a deployment error and is rejected here, at
// process start, before any request is served.
func NewService(schedule FeeSchedule) (Service, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return &service{
		schedule: schedule,
		calc:     NewCalculator(schedule),
	}, nil
}

// Quote runs validation, fee computation, and settlement scheduling for
// one request. Invalid requests come back with the violations and no
// breakdown or schedule; the engine never partially completes a quote.
func (s *service) Quote(req TransferRequest) PayoutQuote {
	validation := Validate(req.RequestedAmount, req.AvailableBalance, s.schedule)
	if !validation.Valid {
		return PayoutQuote{Request: req, Validation: validation}
	}

	var breakdown FeeBreakdown
	var settlementDate time.Time
	switch req.Track {
	case TrackExpedited:
		breakdown = s.calc.Expedited(req.RequestedAmount)
		settlementDate = s.scheduler.Expedited(req.RequestDate, s.schedule.ExpediteLeadDays)
	default:
		breakdown = s.calc.Standard(req.RequestedAmount)
		settlementDate = s.scheduler.Standard(req.RequestDate)
	}

	return PayoutQuote{
		Request:    req,
		Validation: validation,
		Breakdown:  &breakdown,
		Schedule: &SettlementSchedule{
			Track:          req.Track,
			SettlementDate: settlementDate,
		},
	}
}

// Schedule exposes the immutable rate table, e.g. for rendering the
// effective percentages to the creator.
func (s *service) Schedule() FeeSchedule {
	return s.schedule
}
