package payout

import (
	"time"

	"github.com/shopspring/decimal"
)

// Track selects the payout path.
type Track string

const (
	TrackStandard  Track = "standard"
	TrackExpedited Track = "expedited"
)

// Valid reports whether t is a known track.
func (t Track) Valid() bool {
	return t == TrackStandard || t == TrackExpedited
}

// FeeSchedule is the immutable rate table. It is loaded once at process
// start and never mutated; changing rates means deploying a new schedule.
// All amounts are whole currency units, all rates are exact decimals in [0, 1).
type FeeSchedule struct {
	MinimumTransferAmount int64
	TransferFeeFlat       int64
	PlatformFeeRate       decimal.Decimal
	PlatformFeeTaxRate    decimal.Decimal
	ExpediteFeeRate       decimal.Decimal
	ExpediteFeeTaxRate    decimal.Decimal
	ExpediteLeadDays      int
}

// TransferRequest is one withdrawal request as the engine sees it.
// RequestDate is injected by the caller; the engine never reads a clock.
type TransferRequest struct {
	RequestedAmount  int64
	AvailableBalance int64
	Track            Track
	RequestDate      time.Time
}

// ViolationReason identifies one validation rule failure.
type ViolationReason string

const (
	ViolationBelowMinimum        ViolationReason = "BELOW_MINIMUM"
	ViolationInsufficientBalance ViolationReason = "INSUFFICIENT_BALANCE"
	ViolationInvalidAmount       ViolationReason = "INVALID_AMOUNT"
)

// ValidationResult collects every rule violation for a request.
// Valid is true exactly when Violations is empty. Ordering is
// deterministic: the minimum-amount check comes before the balance check.
type ValidationResult struct {
	Valid      bool              `json:"valid"`
	Violations []ViolationReason `json:"violations,omitempty"`
}

// FeeBreakdown is the itemized result of a fee computation. Every
// component is a non-negative integer obtained by flooring the exact
// value, so TotalFees is a lower bound on the exact percentage and
// NetAmount + TotalFees == RequestedAmount always holds.
type FeeBreakdown struct {
	RequestedAmount int64 `json:"requested_amount"`
	PlatformFee     int64 `json:"platform_fee"`
	PlatformFeeTax  int64 `json:"platform_fee_tax"`
	ExpediteFee     int64 `json:"expedite_fee"`
	ExpediteFeeTax  int64 `json:"expedite_fee_tax"`
	TransferFee     int64 `json:"transfer_fee"`
	TotalFees       int64 `json:"total_fees"`
	NetAmount       int64 `json:"net_amount"`
}

// SettlementSchedule says when the funds arrive for the selected track.
type SettlementSchedule struct {
	Track          Track     `json:"track"`
	SettlementDate time.Time `json:"settlement_date"`
}

// PayoutQuote is the full, point-in-time result of validating and
// pricing one request. Breakdown and Schedule are nil unless the request
// passed validation. Quotes are built fresh on every input change and
// never mutated.
type PayoutQuote struct {
	Request    TransferRequest     `json:"request"`
	Validation ValidationResult    `json:"validation"`
	Breakdown  *FeeBreakdown       `json:"breakdown,omitempty"`
	Schedule   *SettlementSchedule `json:"schedule,omitempty"`
}
