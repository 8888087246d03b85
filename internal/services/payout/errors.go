package payout

import "errors"

// Schedule configuration errors. These are deployment mistakes and are
// surfaced by NewService at process start, never per-request.
var (
	ErrInvalidMinimum  = errors.New("minimum transfer amount must be positive")
	ErrInvalidFlatFee  = errors.New("transfer fee flat must be non-negative")
	ErrInvalidRate     = errors.New("fee rate must be in [0, 1)")
	ErrInvalidLeadDays = errors.New("expedite lead days must be positive")
)
