package payout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"patron/internal/money"
)

// Validate checks the schedule for deployment mistakes. The engine
// additionally assumes, as an operational constraint on any deployed
// schedule, that the combined percentage plus flat fee never exceeds
// 100% of the minimum transfer amount; that keeps NetAmount >= 0 for
// every request that passes validation.
func (s FeeSchedule) Validate() error {
	if s.MinimumTransferAmount <= 0 {
		return ErrInvalidMinimum
	}
	if s.TransferFeeFlat < 0 {
		return ErrInvalidFlatFee
	}
	rates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"platform_fee_rate", s.PlatformFeeRate},
		{"platform_fee_tax_rate", s.PlatformFeeTaxRate},
		{"expedite_fee_rate", s.ExpediteFeeRate},
		{"expedite_fee_tax_rate", s.ExpediteFeeTaxRate},
	}
	for _, r := range rates {
		if !money.Rate(r.rate) {
			return fmt.Errorf("%w: %s", ErrInvalidRate, r.name)
		}
	}
	if s.ExpediteLeadDays <= 0 {
		return ErrInvalidLeadDays
	}
	return nil
}
