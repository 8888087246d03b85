package payout

import (
	"github.com/shopspring/decimal"

	"patron/internal/money"
)

// Calculator turns a validated requested amount into an itemized fee
// breakdown for either track. It does not re-validate: callers run
// Validate first.
type Calculator struct {
	schedule FeeSchedule
}

func NewCalculator(schedule FeeSchedule) *Calculator {
	return &Calculator{schedule: schedule}
}

// Standard computes the standard-track breakdown: platform fee, tax on
// the platform fee, and the flat transfer fee. Each component floors the
// exact value, so the total never exceeds the exact percentage.
func (c *Calculator) Standard(requestedAmount int64) FeeBreakdown {
	amount := decimal.NewFromInt(requestedAmount)

	platformFee := money.RoundDown(amount.Mul(c.schedule.PlatformFeeRate))
	platformFeeTax := money.RoundDown(decimal.NewFromInt(platformFee).Mul(c.schedule.PlatformFeeTaxRate))
	transferFee := c.schedule.TransferFeeFlat

	totalFees := platformFee + platformFeeTax + transferFee

	return FeeBreakdown{
		RequestedAmount: requestedAmount,
		PlatformFee:     platformFee,
		PlatformFeeTax:  platformFeeTax,
		TransferFee:     transferFee,
		TotalFees:       totalFees,
		NetAmount:       requestedAmount - totalFees,
	}
}

// Expedited layers the expedite fee, itself taxed, on top of the
// standard computation. For the same amount the expedited net is always
// strictly below the standard net.
func (c *Calculator) Expedited(requestedAmount int64) FeeBreakdown {
	breakdown := c.Standard(requestedAmount)
	amount := decimal.NewFromInt(requestedAmount)

	expediteFee := money.RoundDown(amount.Mul(c.schedule.ExpediteFeeRate))
	expediteFeeTax := money.RoundDown(decimal.NewFromInt(expediteFee).Mul(c.schedule.ExpediteFeeTaxRate))

	breakdown.ExpediteFee = expediteFee
	breakdown.ExpediteFeeTax = expediteFeeTax
	breakdown.TotalFees += expediteFee + expediteFeeTax
	breakdown.NetAmount = requestedAmount - breakdown.TotalFees

	return breakdown
}
