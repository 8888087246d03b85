// Package subscription prices subscriber payments. It carries its own
// fee schedule, configured independently from the payout schedule, but
// shares the platform-wide rounding rule so both sides of the ledger
// floor the same way.
package subscription

import (
	"errors"

	"github.com/shopspring/decimal"

	"patron/internal/money"
)

var ErrInvalidRate = errors.New("subscription fee rate must be in [0, 1)")

// FeeSchedule is the subscription-side rate table, immutable for the
// process lifetime.
type FeeSchedule struct {
	PlatformCutRate    decimal.Decimal
	PlatformCutTaxRate decimal.Decimal
}

func (s FeeSchedule) Validate() error {
	if !money.Rate(s.PlatformCutRate) || !money.Rate(s.PlatformCutTaxRate) {
		return ErrInvalidRate
	}
	return nil
}

// Breakdown splits one subscriber payment between the platform and the
// creator. GrossAmount == PlatformCut + PlatformCutTax + CreatorEarnings.
type Breakdown struct {
	GrossAmount     int64 `json:"gross_amount"`
	PlatformCut     int64 `json:"platform_cut"`
	PlatformCutTax  int64 `json:"platform_cut_tax"`
	CreatorEarnings int64 `json:"creator_earnings"`
}

// Calculator prices subscriber payments against one schedule.
type Calculator struct {
	schedule FeeSchedule
}

func NewCalculator(schedule FeeSchedule) (*Calculator, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{schedule: schedule}, nil
}

// Price computes the platform cut, the tax on that cut, and what the
// creator earns from one gross subscription payment. The cut and its
// tax floor the exact value, so creator earnings absorb the remainder.
func (c *Calculator) Price(grossAmount int64) Breakdown {
	gross := decimal.NewFromInt(grossAmount)

	cut := money.RoundDown(gross.Mul(c.schedule.PlatformCutRate))
	cutTax := money.RoundDown(decimal.NewFromInt(cut).Mul(c.schedule.PlatformCutTaxRate))

	return Breakdown{
		GrossAmount:     grossAmount,
		PlatformCut:     cut,
		PlatformCutTax:  cutTax,
		CreatorEarnings: grossAmount - cut - cutTax,
	}
}
