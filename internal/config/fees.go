package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"patron/internal/services/payout"
	"patron/internal/services/subscription"
)

// feeEnv mirrors the payout fee-schedule environment variables so the
// whole block can be checked in one pass. Rates stay strings here; they
// are parsed to exact decimals only after the shape checks pass.
type feeEnv struct {
	MinimumTransferAmount int64  `validate:"gt=0"`
	TransferFeeFlat       int64  `validate:"gte=0"`
	PlatformFeeRate       string `validate:"required,numeric"`
	PlatformFeeTaxRate    string `validate:"required,numeric"`
	ExpediteFeeRate       string `validate:"required,numeric"`
	ExpediteFeeTaxRate    string `validate:"required,numeric"`
	ExpediteLeadDays      int    `validate:"gt=0"`
}

var validate = validator.New()

// LoadPayoutSchedule reads the payout fee schedule from the environment
// and fails fast on a malformed value. The returned schedule is loaded
// once at process start and treated as immutable; changing rates means
// deploying a new schedule.
func LoadPayoutSchedule() (payout.FeeSchedule, error) {
	env := feeEnv{
		MinimumTransferAmount: GetInt64Env("PAYOUT_MINIMUM_TRANSFER_AMOUNT", 5000),
		TransferFeeFlat:       GetInt64Env("PAYOUT_TRANSFER_FEE_FLAT", 250),
		PlatformFeeRate:       GetEnv("PAYOUT_PLATFORM_FEE_RATE", "0.15"),
		PlatformFeeTaxRate:    GetEnv("PAYOUT_PLATFORM_FEE_TAX_RATE", "0.10"),
		ExpediteFeeRate:       GetEnv("PAYOUT_EXPEDITE_FEE_RATE", "0.08"),
		ExpediteFeeTaxRate:    GetEnv("PAYOUT_EXPEDITE_FEE_TAX_RATE", "0.10"),
		ExpediteLeadDays:      GetIntEnv("PAYOUT_EXPEDITE_LEAD_DAYS", 3),
	}

	if err := validate.Struct(env); err != nil {
		return payout.FeeSchedule{}, fmt.Errorf("invalid payout fee configuration: %w", err)
	}

	rates, err := parseRates(env.PlatformFeeRate, env.PlatformFeeTaxRate, env.ExpediteFeeRate, env.ExpediteFeeTaxRate)
	if err != nil {
		return payout.FeeSchedule{}, fmt.Errorf("invalid payout fee configuration: %w", err)
	}

	schedule := payout.FeeSchedule{
		MinimumTransferAmount: env.MinimumTransferAmount,
		TransferFeeFlat:       env.TransferFeeFlat,
		PlatformFeeRate:       rates[0],
		PlatformFeeTaxRate:    rates[1],
		ExpediteFeeRate:       rates[2],
		ExpediteFeeTaxRate:    rates[3],
		ExpediteLeadDays:      env.ExpediteLeadDays,
	}
	if err := schedule.Validate(); err != nil {
		return payout.FeeSchedule{}, fmt.Errorf("invalid payout fee configuration: %w", err)
	}
	return schedule, nil
}

// LoadSubscriptionSchedule reads the subscription-side fee schedule.
// It is configured independently from the payout schedule.
func LoadSubscriptionSchedule() (subscription.FeeSchedule, error) {
	rates, err := parseRates(
		GetEnv("SUBSCRIPTION_PLATFORM_CUT_RATE", "0.20"),
		GetEnv("SUBSCRIPTION_PLATFORM_CUT_TAX_RATE", "0.10"),
	)
	if err != nil {
		return subscription.FeeSchedule{}, fmt.Errorf("invalid subscription fee configuration: %w", err)
	}

	schedule := subscription.FeeSchedule{
		PlatformCutRate:    rates[0],
		PlatformCutTaxRate: rates[1],
	}
	if err := schedule.Validate(); err != nil {
		return subscription.FeeSchedule{}, fmt.Errorf("invalid subscription fee configuration: %w", err)
	}
	return schedule, nil
}

func parseRates(raw ...string) ([]decimal.Decimal, error) {
	rates := make([]decimal.Decimal, 0, len(raw))
	for _, r := range raw {
		d, err := decimal.NewFromString(r)
		if err != nil {
			return nil, fmt.Errorf("rate %q: %w", r, err)
		}
		rates = append(rates, d)
	}
	return rates, nil
}
