package payout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatorStandard(t *testing.T) {
	calc := NewCalculator(testSchedule())

	t.Run("concrete example", func(t *testing.T) {
		b := calc.Standard(100000)
		assert.Equal(t, int64(15000), b.PlatformFee)
		assert.Equal(t, int64(1500), b.PlatformFeeTax)
		assert.Equal(t, int64(0), b.ExpediteFee)
		assert.Equal(t, int64(0), b.ExpediteFeeTax)
		assert.Equal(t, int64(250), b.TransferFee)
		assert.Equal(t, int64(16750), b.TotalFees)
		assert.Equal(t, int64(83250), b.NetAmount)
	})

	t.Run("fractional fee floors", func(t *testing.T) {
		// 15% of 5001 is 750.15, 10% of 750 is 75 exactly.
		b := calc.Standard(5001)
		assert.Equal(t, int64(750), b.PlatformFee)
		assert.Equal(t, int64(75), b.PlatformFeeTax)
		assert.Equal(t, int64(1075), b.TotalFees)
		assert.Equal(t, int64(3926), b.NetAmount)
	})
}

func TestCalculatorExpedited(t *testing.T) {
	calc := NewCalculator(testSchedule())

	t.Run("concrete example", func(t *testing.T) {
		b := calc.Expedited(100000)
		assert.Equal(t, int64(15000), b.PlatformFee)
		assert.Equal(t, int64(1500), b.PlatformFeeTax)
		assert.Equal(t, int64(8000), b.ExpediteFee)
		assert.Equal(t, int64(800), b.ExpediteFeeTax)
		assert.Equal(t, int64(250), b.TransferFee)
		assert.Equal(t, int64(25550), b.TotalFees)
		assert.Equal(t, int64(74450), b.NetAmount)
	})
}

func TestCalculatorInvariants(t *testing.T) {
	calc := NewCalculator(testSchedule())

	amounts := []int64{5000, 5001, 5003, 9999, 10000, 33333, 100000, 123457, 999999999}

	t.Run("net plus fees equals gross", func(t *testing.T) {
		for _, amount := range amounts {
			std := calc.Standard(amount)
			exp := calc.Expedited(amount)
			assert.Equal(t, amount, std.NetAmount+std.TotalFees, "standard %d", amount)
			assert.Equal(t, amount, exp.NetAmount+exp.TotalFees, "expedited %d", amount)
		}
	})

	t.Run("total is the sum of components", func(t *testing.T) {
		for _, amount := range amounts {
			b := calc.Expedited(amount)
			sum := b.PlatformFee + b.PlatformFeeTax + b.ExpediteFee + b.ExpediteFeeTax + b.TransferFee
			assert.Equal(t, b.TotalFees, sum, "amount %d", amount)
		}
	})

	t.Run("expedited net strictly below standard net", func(t *testing.T) {
		for _, amount := range amounts {
			std := calc.Standard(amount)
			exp := calc.Expedited(amount)
			assert.Less(t, exp.NetAmount, std.NetAmount, "amount %d", amount)
		}
	})

	t.Run("net is non-decreasing in the requested amount", func(t *testing.T) {
		var prevStd, prevExp int64
		for amount := int64(5000); amount <= 15000; amount++ {
			std := calc.Standard(amount)
			exp := calc.Expedited(amount)
			assert.GreaterOrEqual(t, std.NetAmount, prevStd, "standard %d", amount)
			assert.GreaterOrEqual(t, exp.NetAmount, prevExp, "expedited %d", amount)
			prevStd, prevExp = std.NetAmount, exp.NetAmount
		}
	})

	t.Run("net non-negative for any valid request", func(t *testing.T) {
		for _, amount := range amounts {
			assert.GreaterOrEqual(t, calc.Expedited(amount).NetAmount, int64(0), "amount %d", amount)
		}
	})
}
