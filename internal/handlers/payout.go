package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"patron/internal/models"
	"patron/internal/repositories"
	"patron/internal/services/payout"
	"patron/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Boundary errors for the shared quote path. They never leave the
// handler layer; quoteError maps each one to its HTTP response.
var (
	errUnknownTrack  = errors.New("unknown payout track")
	errNotWholeUnits = errors.New("amount is not in whole currency units")
)

// PayoutHandler exposes the payout quote engine over HTTP. It owns the
// boundary rules: amounts must be whole currency units before they
// reach the engine, and the request date comes from an injected clock,
// never from inside the engine.
type PayoutHandler struct {
	payoutService payout.Service
	payouts       repositories.PayoutRequestRepository
	creators      repositories.CreatorRepository
	now           func() time.Time
}

func NewPayoutHandler(
	payoutService payout.Service,
	payouts repositories.PayoutRequestRepository,
	creators repositories.CreatorRepository,
) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
		payouts:       payouts,
		creators:      creators,
		now:           time.Now,
	}
}

// extractCreatorClaims is a helper function to reduce duplication
func extractCreatorClaims(c *fiber.Ctx) (*models.CreatorClaims, error) {
	claims, ok := c.Locals("claims").(*models.CreatorClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

// parseAmount enforces the integer-currency boundary: JSON numbers are
// read as exact decimals and rejected unless they are whole units.
// Negative values pass through so the engine can report InvalidAmount.
func parseAmount(d decimal.Decimal) (int64, bool) {
	if !d.IsInteger() {
		return 0, false
	}
	return d.IntPart(), true
}

type quoteInput struct {
	Amount decimal.Decimal `json:"amount"`
	Track  string          `json:"track"`
}

// QuotePayout prices a withdrawal without persisting anything. The
// front end calls this on every input change; only an explicit confirm
// writes a record.
func (h *PayoutHandler) QuotePayout(c *fiber.Ctx) error {
	claims, err := extractCreatorClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input quoteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	quote, err := h.buildQuote(c.Context(), claims.CreatorID, input)
	if err != nil {
		return quoteError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"quote": quote,
	})
}

type confirmInput struct {
	quoteInput
	BankName         string `json:"bank_name"`
	BankAccountName  string `json:"bank_account_name"`
	BankAccountLast4 string `json:"bank_account_last4"`
}

// ConfirmPayout re-quotes the request and, only if validation still
// passes, persists the quote as an immutable pending payout record.
// Suspended creators can preview quotes but never confirm one.
func (h *PayoutHandler) ConfirmPayout(c *fiber.Ctx) error {
	claims, err := extractCreatorClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input confirmInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.BankName == "" || input.BankAccountName == "" {
		return utils.BadRequest(c, "Bank destination is required")
	}

	creator, err := h.creators.GetByID(c.Context(), claims.CreatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrCreatorNotFound) {
			return utils.NotFound(c, "Creator not found")
		}
		return utils.InternalError(c, "Failed to load creator")
	}
	if creator.Status == models.CreatorStatusSuspended {
		return utils.Forbidden(c, "Creator account is suspended")
	}

	quote, err := h.buildQuote(c.Context(), claims.CreatorID, input.quoteInput)
	if err != nil {
		return quoteError(c, err)
	}
	if !quote.Validation.Valid {
		return utils.Respond(c, fiber.StatusBadRequest, fiber.Map{
			"error":      "payout request is not valid",
			"violations": quote.Validation.Violations,
		})
	}

	track := models.PayoutTrackStandard
	if quote.Schedule.Track == payout.TrackExpedited {
		track = models.PayoutTrackExpedited
	}

	record := &models.PayoutRequest{
		PublicID:  uuid.NewString(),
		CreatorID: claims.CreatorID,

		Track:           track,
		RequestedAmount: quote.Breakdown.RequestedAmount,
		PlatformFee:     quote.Breakdown.PlatformFee,
		PlatformFeeTax:  quote.Breakdown.PlatformFeeTax,
		ExpediteFee:     quote.Breakdown.ExpediteFee,
		ExpediteFeeTax:  quote.Breakdown.ExpediteFeeTax,
		TransferFee:     quote.Breakdown.TransferFee,
		TotalFees:       quote.Breakdown.TotalFees,
		NetAmount:       quote.Breakdown.NetAmount,

		RequestDate:    quote.Request.RequestDate,
		SettlementDate: quote.Schedule.SettlementDate,

		BankName:         input.BankName,
		BankAccountName:  input.BankAccountName,
		BankAccountLast4: input.BankAccountLast4,

		Status: models.PayoutStatusPending,
		Metadata: models.NewJSON(map[string]interface{}{
			"ip": c.IP(),
		}),
	}

	if err := h.payouts.Create(c.Context(), record); err != nil {
		return utils.InternalError(c, "Failed to create payout request")
	}

	// The pending payout will reduce the withdrawable balance once the
	// external ledger picks it up; drop the cached read so the next
	// quote sees fresh numbers.
	if err := h.creators.InvalidateBalance(c.Context(), claims.CreatorID); err != nil {
		log.Printf("failed to invalidate balance cache for creator %d: %v", claims.CreatorID, err)
	}

	return utils.Respond(c, fiber.StatusCreated, fiber.Map{
		"payout_request": record,
	})
}

// ListPayouts returns the creator's payout history, newest first.
func (h *PayoutHandler) ListPayouts(c *fiber.Ctx) error {
	claims, err := extractCreatorClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	p := utils.GetPagination(c, 1, 20)
	requests, err := h.payouts.ListByCreator(c.Context(), claims.CreatorID, p.Limit, p.Offset)
	if err != nil {
		return utils.InternalError(c, "Failed to list payout requests")
	}

	total, err := h.payouts.CountByCreator(c.Context(), claims.CreatorID)
	if err != nil {
		return utils.InternalError(c, "Failed to count payout requests")
	}
	p.SetTotal(total)

	return utils.Success(c, utils.NewPaginatedResponse(requests, p))
}

type statusInput struct {
	Status string `json:"status"`
}

// UpdatePayoutStatus is the reconciliation boundary: an operator marks a
// pending payout completed or failed. The quote engine itself never
// transitions status.
func (h *PayoutHandler) UpdatePayoutStatus(c *fiber.Ctx) error {
	publicID := c.Params("id")
	if _, err := uuid.Parse(publicID); err != nil {
		return utils.BadRequest(c, "Invalid payout request id")
	}

	var input statusInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	err := h.payouts.UpdateStatus(c.Context(), publicID, input.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrPayoutRequestNotFound) {
			return utils.NotFound(c, "Payout request not found")
		}
		if errors.Is(err, repositories.ErrInvalidStatusTransition) {
			return utils.BadRequest(c, "Invalid status transition")
		}
		return utils.InternalError(c, "Failed to update payout status")
	}

	return utils.Success(c, fiber.Map{
		"message": "Status updated",
	})
}

// buildQuote runs the shared quote path for the quote and confirm
// endpoints. It writes nothing to the response; boundary failures come
// back as errors for quoteError to map.
func (h *PayoutHandler) buildQuote(ctx context.Context, creatorID uint, input quoteInput) (payout.PayoutQuote, error) {
	track := payout.Track(input.Track)
	if !track.Valid() {
		return payout.PayoutQuote{}, errUnknownTrack
	}

	amount, ok := parseAmount(input.Amount)
	if !ok {
		return payout.PayoutQuote{}, errNotWholeUnits
	}

	balance, err := h.creators.AvailableBalance(ctx, creatorID)
	if err != nil {
		return payout.PayoutQuote{}, err
	}

	return h.payoutService.Quote(payout.TransferRequest{
		RequestedAmount:  amount,
		AvailableBalance: balance,
		Track:            track,
		RequestDate:      h.now(),
	}), nil
}

// quoteError maps a buildQuote failure to its HTTP response.
func quoteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errUnknownTrack):
		return utils.BadRequest(c, "Unknown payout track")
	case errors.Is(err, errNotWholeUnits):
		return utils.BadRequest(c, "Amount must be in whole currency units")
	case errors.Is(err, repositories.ErrCreatorNotFound):
		return utils.NotFound(c, "Creator not found")
	default:
		return utils.InternalError(c, "Failed to read available balance")
	}
}
