package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"quicktop/internal/models"
	"quicktop/internal/services/purchase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPurchaseService returns a canned receipt or error.
type stubPurchaseService struct {
	receipt *purchase.Receipt
	err     error
	lastReq purchase.Request
}

func (s *stubPurchaseService) Buy(ctx context.Context, userID uint, req purchase.Request) (*purchase.Receipt, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.receipt, nil
}

func newTestApp(svc purchase.Service) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("claims", &models.UserClaims{UserID: 1, Email: "ada@example.com"})
		return c.Next()
	})

	h := NewServicesHandler(svc)
	app.Post("/api/services/airtime", h.BuyAirtime)
	app.Post("/api/services/data", h.BuyData)
	app.Post("/api/services/cable", h.BuyCable)
	app.Post("/api/services/electricity", h.BuyElectricity)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp.StatusCode, envelope
}

func successfulReceipt(reference string, newBalance float64) *purchase.Receipt {
	txn := &models.Transaction{
		Status:    models.StatusSuccessful,
		Reference: reference,
	}
	txn.ID = 11
	return &purchase.Receipt{Transaction: txn, NewBalance: newBalance}
}

func TestBuyAirtime(t *testing.T) {
	svc := &stubPurchaseService{receipt: successfulReceipt("SRV1000AAAAA", 900)}
	app := newTestApp(svc)

	status, envelope := postJSON(t, app, "/api/services/airtime", fiber.Map{
		"network": "mtn",
		"phone":   "08012345678",
		"amount":  100,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", envelope["status"])
	assert.Contains(t, envelope["message"], "Airtime purchase successful")

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(900), data["newBalance"])
	txn := data["transaction"].(map[string]interface{})
	assert.Equal(t, "SRV1000AAAAA", txn["reference"])
	assert.Equal(t, "08012345678", txn["phone"])

	assert.Equal(t, models.ServiceAirtime, svc.lastReq.ServiceType)
	assert.Equal(t, "Airtime purchase - MTN 08012345678", svc.lastReq.Description)
}

func TestBuyData(t *testing.T) {
	svc := &stubPurchaseService{receipt: successfulReceipt("SRV1001BBBBB", 500)}
	app := newTestApp(svc)

	status, envelope := postJSON(t, app, "/api/services/data", fiber.Map{
		"network": "glo",
		"phone":   "08012345678",
		"plan":    "2GB - 30 days",
		"amount":  1200,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", envelope["status"])
	assert.Equal(t, "2GB - 30 days", svc.lastReq.Plan)
	assert.Equal(t, models.ServiceData, svc.lastReq.ServiceType)
}

func TestBuyCable(t *testing.T) {
	svc := &stubPurchaseService{receipt: successfulReceipt("SRV1002CCCCC", 2000)}
	app := newTestApp(svc)

	status, envelope := postJSON(t, app, "/api/services/cable", fiber.Map{
		"provider":  "dstv",
		"smartcard": "1234567890",
		"package":   fiber.Map{"name": "Compact"},
		"amount":    10500,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", envelope["status"])
	assert.Equal(t, "Compact", svc.lastReq.Plan)
	assert.Equal(t, "1234567890", svc.lastReq.Recipient)
}

func TestBuyElectricity(t *testing.T) {
	svc := &stubPurchaseService{receipt: successfulReceipt("SRV1003DDDDD", 3000)}
	app := newTestApp(svc)

	status, envelope := postJSON(t, app, "/api/services/electricity", fiber.Map{
		"disco":       "ekedc",
		"meterNumber": "45023187651",
		"meterType":   "prepaid",
		"amount":      2000,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", envelope["status"])
	assert.Equal(t, "prepaid meter", svc.lastReq.Plan)
	assert.Equal(t, models.ServiceElectricity, svc.lastReq.ServiceType)
}

func TestPurchaseErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error",
			err:        &purchase.ValidationError{Message: "Minimum airtime purchase is ₦50"},
			wantStatus: fiber.StatusBadRequest,
			wantMsg:    "Minimum airtime purchase is ₦50",
		},
		{
			name:       "provider failure",
			err:        &purchase.ProviderError{Reason: "Service temporarily unavailable. Please try again."},
			wantStatus: fiber.StatusBadRequest,
			wantMsg:    "Service temporarily unavailable. Please try again.",
		},
		{
			name:       "insufficient funds",
			err:        purchase.ErrInsufficientFunds,
			wantStatus: fiber.StatusBadRequest,
			wantMsg:    "Insufficient balance. Please fund your wallet.",
		},
		{
			name:       "user missing",
			err:        purchase.ErrUserNotFound,
			wantStatus: fiber.StatusNotFound,
			wantMsg:    "User no longer exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&stubPurchaseService{err: tt.err})

			status, envelope := postJSON(t, app, "/api/services/airtime", fiber.Map{
				"network": "mtn",
				"phone":   "08012345678",
				"amount":  100,
			})

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, "error", envelope["status"])
			assert.Equal(t, tt.wantMsg, envelope["message"])
		})
	}
}
