package handlers

import (
	"patron/internal/services/subscription"
	"patron/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// SubscriptionHandler exposes subscription price previews: given a
// gross subscriber price, how it splits between platform and creator.
type SubscriptionHandler struct {
	calc *subscription.Calculator
}

func NewSubscriptionHandler(calc *subscription.Calculator) *SubscriptionHandler {
	return &SubscriptionHandler{calc: calc}
}

type priceInput struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *SubscriptionHandler) PricePreview(c *fiber.Ctx) error {
	var input priceInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	amount, ok := parseAmount(input.Amount)
	if !ok || amount < 0 {
		return utils.BadRequest(c, "Amount must be in whole currency units")
	}

	return utils.Success(c, fiber.Map{
		"breakdown": h.calc.Price(amount),
	})
}
