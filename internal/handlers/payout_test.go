package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"patron/internal/models"
	"patron/internal/repositories"
	"patron/internal/services/payout"
	"patron/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCreatorRepo struct {
	balance     int64
	status      string
	balanceErr  error
	invalidated []uint
}

func (s *stubCreatorRepo) GetByID(ctx context.Context, id uint) (*models.Creator, error) {
	if s.balanceErr != nil {
		return nil, s.balanceErr
	}
	status := s.status
	if status == "" {
		status = models.CreatorStatusActive
	}
	return &models.Creator{ID: id, AvailableBalance: s.balance, Status: status}, nil
}

func (s *stubCreatorRepo) AvailableBalance(ctx context.Context, id uint) (int64, error) {
	if s.balanceErr != nil {
		return 0, s.balanceErr
	}
	return s.balance, nil
}

func (s *stubCreatorRepo) InvalidateBalance(ctx context.Context, id uint) error {
	s.invalidated = append(s.invalidated, id)
	return nil
}

type stubPayoutRepo struct {
	created   []*models.PayoutRequest
	createErr error
	list      []models.PayoutRequest
	updateErr error
}

func (s *stubPayoutRepo) Create(ctx context.Context, req *models.PayoutRequest) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, req)
	return nil
}

func (s *stubPayoutRepo) GetByPublicID(ctx context.Context, publicID string) (*models.PayoutRequest, error) {
	return nil, repositories.ErrPayoutRequestNotFound
}

func (s *stubPayoutRepo) ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]models.PayoutRequest, error) {
	return s.list, nil
}

func (s *stubPayoutRepo) CountByCreator(ctx context.Context, creatorID uint) (int64, error) {
	return int64(len(s.list)), nil
}

func (s *stubPayoutRepo) UpdateStatus(ctx context.Context, publicID, status string) error {
	return s.updateErr
}

func testFeeSchedule() payout.FeeSchedule {
	return payout.FeeSchedule{
		MinimumTransferAmount: 5000,
		TransferFeeFlat:       250,
		PlatformFeeRate:       decimal.RequireFromString("0.15"),
		PlatformFeeTaxRate:    decimal.RequireFromString("0.10"),
		ExpediteFeeRate:       decimal.RequireFromString("0.08"),
		ExpediteFeeTaxRate:    decimal.RequireFromString("0.10"),
		ExpediteLeadDays:      3,
	}
}

// newTestApp wires a PayoutHandler behind a fiber app with a fixed
// clock and the given stub repositories. Authentication is replaced by
// a middleware that plants the claims directly.
func newTestApp(t *testing.T, creators *stubCreatorRepo, payouts *stubPayoutRepo) *fiber.App {
	t.Helper()

	svc, err := payout.NewService(testFeeSchedule())
	require.NoError(t, err)

	h := NewPayoutHandler(svc, payouts, creators)
	h.now = func() time.Time {
		return time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("claims", &models.CreatorClaims{CreatorID: 7, Role: models.RoleCreator})
		return c.Next()
	})
	app.Post("/payouts/quote", h.QuotePayout)
	app.Post("/payouts", h.ConfirmPayout)
	app.Get("/payouts", h.ListPayouts)
	app.Patch("/payouts/:id/status", h.UpdatePayoutStatus)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]json.RawMessage) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func decodeQuote(t *testing.T, body map[string]json.RawMessage) payout.PayoutQuote {
	t.Helper()
	var quote payout.PayoutQuote
	require.Contains(t, body, "quote")
	require.NoError(t, json.Unmarshal(body["quote"], &quote))
	return quote
}

func TestQuotePayoutStandard(t *testing.T) {
	app := newTestApp(t, &stubCreatorRepo{balance: 250000}, &stubPayoutRepo{})

	status, body := postJSON(t, app, "/payouts/quote", fiber.Map{
		"amount": 100000,
		"track":  "standard",
	})
	require.Equal(t, fiber.StatusOK, status)

	quote := decodeQuote(t, body)
	require.True(t, quote.Validation.Valid)
	require.NotNil(t, quote.Breakdown)
	assert.Equal(t, int64(15000), quote.Breakdown.PlatformFee)
	assert.Equal(t, int64(1500), quote.Breakdown.PlatformFeeTax)
	assert.Equal(t, int64(250), quote.Breakdown.TransferFee)
	assert.Equal(t, int64(16750), quote.Breakdown.TotalFees)
	assert.Equal(t, int64(83250), quote.Breakdown.NetAmount)

	require.NotNil(t, quote.Schedule)
	assert.Equal(t, payout.TrackStandard, quote.Schedule.Track)
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), quote.Schedule.SettlementDate)
}

func TestQuotePayoutExpedited(t *testing.T) {
	app := newTestApp(t, &stubCreatorRepo{balance: 250000}, &stubPayoutRepo{})

	status, body := postJSON(t, app, "/payouts/quote", fiber.Map{
		"amount": 100000,
		"track":  "expedited",
	})
	require.Equal(t, fiber.StatusOK, status)

	quote := decodeQuote(t, body)
	require.True(t, quote.Validation.Valid)
	require.NotNil(t, quote.Breakdown)
	assert.Equal(t, int64(8000), quote.Breakdown.ExpediteFee)
	assert.Equal(t, int64(800), quote.Breakdown.ExpediteFeeTax)
	assert.Equal(t, int64(25550), quote.Breakdown.TotalFees)
	assert.Equal(t, int64(74450), quote.Breakdown.NetAmount)

	// 2025-01-15 is a Wednesday; three business days later is Monday.
	require.NotNil(t, quote.Schedule)
	assert.Equal(t, time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), quote.Schedule.SettlementDate)
}

func TestQuotePayoutViolations(t *testing.T) {
	app := newTestApp(t, &stubCreatorRepo{balance: 4000}, &stubPayoutRepo{})

	status, body := postJSON(t, app, "/payouts/quote", fiber.Map{
		"amount": 4500,
		"track":  "standard",
	})
	require.Equal(t, fiber.StatusOK, status)

	quote := decodeQuote(t, body)
	assert.False(t, quote.Validation.Valid)
	assert.Equal(t, []payout.ViolationReason{
		payout.ViolationBelowMinimum,
		payout.ViolationInsufficientBalance,
	}, quote.Validation.Violations)
	assert.Nil(t, quote.Breakdown)
	assert.Nil(t, quote.Schedule)
}

func TestQuotePayoutBoundaryChecks(t *testing.T) {
	app := newTestApp(t, &stubCreatorRepo{balance: 250000}, &stubPayoutRepo{})

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"fractional amount", fiber.Map{"amount": 100.5, "track": "standard"}},
		{"unknown track", fiber.Map{"amount": 100000, "track": "overnight"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := postJSON(t, app, "/payouts/quote", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})
	}
}

func TestQuotePayoutCreatorNotFound(t *testing.T) {
	app := newTestApp(t, &stubCreatorRepo{balanceErr: repositories.ErrCreatorNotFound}, &stubPayoutRepo{})

	status, _ := postJSON(t, app, "/payouts/quote", fiber.Map{
		"amount": 100000,
		"track":  "standard",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestConfirmPayoutPersistsQuote(t *testing.T) {
	creators := &stubCreatorRepo{balance: 250000}
	payouts := &stubPayoutRepo{}
	app := newTestApp(t, creators, payouts)

	status, body := postJSON(t, app, "/payouts", fiber.Map{
		"amount":             100000,
		"track":              "standard",
		"bank_name":          "First Bank",
		"bank_account_name":  "Ada L.",
		"bank_account_last4": "1234",
	})
	require.Equal(t, fiber.StatusCreated, status)
	require.Contains(t, body, "payout_request")

	require.Len(t, payouts.created, 1)
	record := payouts.created[0]
	assert.NotEmpty(t, record.PublicID)
	assert.Equal(t, uint(7), record.CreatorID)
	assert.Equal(t, models.PayoutTrackStandard, record.Track)
	assert.Equal(t, int64(83250), record.NetAmount)
	assert.Equal(t, int64(16750), record.TotalFees)
	assert.Equal(t, models.PayoutStatusPending, record.Status)
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), record.SettlementDate)
	assert.Contains(t, record.Metadata, "ip")

	// Confirming drops the cached balance read.
	assert.Equal(t, []uint{7}, creators.invalidated)
}

func TestConfirmPayoutExpeditedTrack(t *testing.T) {
	payouts := &stubPayoutRepo{}
	app := newTestApp(t, &stubCreatorRepo{balance: 250000}, payouts)

	status, _ := postJSON(t, app, "/payouts", fiber.Map{
		"amount":            100000,
		"track":             "expedited",
		"bank_name":         "First Bank",
		"bank_account_name": "Ada L.",
	})
	require.Equal(t, fiber.StatusCreated, status)

	require.Len(t, payouts.created, 1)
	record := payouts.created[0]
	assert.Equal(t, models.PayoutTrackExpedited, record.Track)
	assert.Equal(t, int64(74450), record.NetAmount)
	assert.Equal(t, time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), record.SettlementDate)
}

func TestConfirmPayoutSuspendedCreator(t *testing.T) {
	payouts := &stubPayoutRepo{}
	app := newTestApp(t, &stubCreatorRepo{balance: 250000, status: models.CreatorStatusSuspended}, payouts)

	status, _ := postJSON(t, app, "/payouts", fiber.Map{
		"amount":            100000,
		"track":             "standard",
		"bank_name":         "First Bank",
		"bank_account_name": "Ada L.",
	})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Empty(t, payouts.created)
}

func TestConfirmPayoutRejectsInvalidQuote(t *testing.T) {
	payouts := &stubPayoutRepo{}
	app := newTestApp(t, &stubCreatorRepo{balance: 1000}, payouts)

	status, body := postJSON(t, app, "/payouts", fiber.Map{
		"amount":            100000,
		"track":             "standard",
		"bank_name":         "First Bank",
		"bank_account_name": "Ada L.",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Contains(t, body, "violations")
	assert.Empty(t, payouts.created)
}

func TestConfirmPayoutRequiresBankDestination(t *testing.T) {
	payouts := &stubPayoutRepo{}
	app := newTestApp(t, &stubCreatorRepo{balance: 250000}, payouts)

	status, _ := postJSON(t, app, "/payouts", fiber.Map{
		"amount": 100000,
		"track":  "standard",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Empty(t, payouts.created)
}

func TestListPayouts(t *testing.T) {
	payouts := &stubPayoutRepo{list: []models.PayoutRequest{
		{PublicID: "a", CreatorID: 7, NetAmount: 83250},
		{PublicID: "b", CreatorID: 7, NetAmount: 4150},
	}}
	app := newTestApp(t, &stubCreatorRepo{balance: 250000}, payouts)

	req := httptest.NewRequest("GET", "/payouts?page=1&limit=10", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data       []models.PayoutRequest `json:"data"`
		Pagination utils.Pagination       `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, 10, body.Pagination.Limit)
	assert.Equal(t, int64(2), body.Pagination.Total)
	assert.Equal(t, 1, body.Pagination.LastPage)
}

func TestUpdatePayoutStatus(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		status     string
		repoErr    error
		wantStatus int
	}{
		{"completed", "0b84cf7e-9f0e-4a47-9c96-6a13c8a5f001", "completed", nil, fiber.StatusOK},
		{"malformed id", "not-a-uuid", "completed", nil, fiber.StatusBadRequest},
		{"unknown request", "0b84cf7e-9f0e-4a47-9c96-6a13c8a5f001", "completed", repositories.ErrPayoutRequestNotFound, fiber.StatusNotFound},
		{"already settled", "0b84cf7e-9f0e-4a47-9c96-6a13c8a5f001", "completed", repositories.ErrInvalidStatusTransition, fiber.StatusBadRequest},
		{"bad target status", "0b84cf7e-9f0e-4a47-9c96-6a13c8a5f001", "pending", repositories.ErrInvalidStatusTransition, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &stubCreatorRepo{}, &stubPayoutRepo{updateErr: tt.repoErr})

			payload, err := json.Marshal(fiber.Map{"status": tt.status})
			require.NoError(t, err)
			req := httptest.NewRequest("PATCH", "/payouts/"+tt.id+"/status", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
