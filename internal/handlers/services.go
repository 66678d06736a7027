// Package handlers translates HTTP requests into workflow calls and
// workflow outcomes into the response envelope.
package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"quicktop/internal/models"
	"quicktop/internal/services/purchase"
	"quicktop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ServicesHandler exposes the virtual top-up endpoints. Each endpoint
// parses its category-specific body, builds a purchase request and shapes
// the category-specific response.
type ServicesHandler struct {
	purchaseService purchase.Service
}

func NewServicesHandler(purchaseService purchase.Service) *ServicesHandler {
	return &ServicesHandler{purchaseService: purchaseService}
}

func (h *ServicesHandler) BuyAirtime(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Network string  `json:"network"`
		Phone   string  `json:"phone"`
		Amount  float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	receipt, err := h.purchaseService.Buy(c.Context(), claims.UserID, purchase.Request{
		ServiceType: models.ServiceAirtime,
		Amount:      input.Amount,
		Recipient:   input.Phone,
		Provider:    input.Network,
		Plan:        fmt.Sprintf("%v Airtime", input.Amount),
		Description: fmt.Sprintf("Airtime purchase - %s %s", strings.ToUpper(input.Network), input.Phone),
	})
	if err != nil {
		return purchaseError(c, err)
	}

	return utils.SuccessMessage(c,
		fmt.Sprintf("Airtime purchase successful! ₦%v sent to %s", input.Amount, input.Phone),
		fiber.Map{
			"transaction": fiber.Map{
				"id":        receipt.Transaction.ID,
				"amount":    input.Amount,
				"network":   input.Network,
				"phone":     input.Phone,
				"reference": receipt.Transaction.Reference,
			},
			"newBalance": receipt.NewBalance,
		})
}

func (h *ServicesHandler) BuyData(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Network string  `json:"network"`
		Phone   string  `json:"phone"`
		Plan    string  `json:"plan"`
		Amount  float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	receipt, err := h.purchaseService.Buy(c.Context(), claims.UserID, purchase.Request{
		ServiceType: models.ServiceData,
		Amount:      input.Amount,
		Recipient:   input.Phone,
		Provider:    input.Network,
		Plan:        input.Plan,
		Description: fmt.Sprintf("Data purchase - %s %s", strings.ToUpper(input.Network), input.Plan),
	})
	if err != nil {
		return purchaseError(c, err)
	}

	return utils.SuccessMessage(c,
		fmt.Sprintf("Data purchase successful! %s sent to %s", input.Plan, input.Phone),
		fiber.Map{
			"transaction": fiber.Map{
				"id":        receipt.Transaction.ID,
				"amount":    input.Amount,
				"network":   input.Network,
				"phone":     input.Phone,
				"plan":      input.Plan,
				"reference": receipt.Transaction.Reference,
			},
			"newBalance": receipt.NewBalance,
		})
}

func (h *ServicesHandler) BuyCable(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Provider  string `json:"provider"`
		Smartcard string `json:"smartcard"`
		Package   struct {
			Name string `json:"name"`
		} `json:"package"`
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	receipt, err := h.purchaseService.Buy(c.Context(), claims.UserID, purchase.Request{
		ServiceType: models.ServiceCable,
		Amount:      input.Amount,
		Recipient:   input.Smartcard,
		Provider:    input.Provider,
		Plan:        input.Package.Name,
		Description: fmt.Sprintf("Cable subscription - %s %s", strings.ToUpper(input.Provider), input.Package.Name),
	})
	if err != nil {
		return purchaseError(c, err)
	}

	return utils.SuccessMessage(c,
		fmt.Sprintf("Cable subscription successful! %s activated for %s", input.Package.Name, input.Smartcard),
		fiber.Map{
			"transaction": fiber.Map{
				"id":        receipt.Transaction.ID,
				"amount":    input.Amount,
				"provider":  input.Provider,
				"smartcard": input.Smartcard,
				"package":   input.Package.Name,
				"reference": receipt.Transaction.Reference,
			},
			"newBalance": receipt.NewBalance,
		})
}

func (h *ServicesHandler) BuyElectricity(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Disco       string  `json:"disco"`
		MeterNumber string  `json:"meterNumber"`
		MeterType   string  `json:"meterType"`
		Amount      float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	var plan string
	if input.MeterType != "" {
		plan = input.MeterType + " meter"
	}
	receipt, err := h.purchaseService.Buy(c.Context(), claims.UserID, purchase.Request{
		ServiceType: models.ServiceElectricity,
		Amount:      input.Amount,
		Recipient:   input.MeterNumber,
		Provider:    input.Disco,
		Plan:        plan,
		Description: fmt.Sprintf("Electricity token - %s %s", strings.ToUpper(input.Disco), input.MeterNumber),
	})
	if err != nil {
		return purchaseError(c, err)
	}

	return utils.SuccessMessage(c,
		fmt.Sprintf("Electricity token purchase successful! ₦%v token generated for %s", input.Amount, input.MeterNumber),
		fiber.Map{
			"transaction": fiber.Map{
				"id":          receipt.Transaction.ID,
				"amount":      input.Amount,
				"disco":       input.Disco,
				"meterNumber": input.MeterNumber,
				"meterType":   input.MeterType,
				"reference":   receipt.Transaction.Reference,
			},
			"newBalance": receipt.NewBalance,
		})
}

// purchaseError maps workflow failures onto the response envelope.
func purchaseError(c *fiber.Ctx, err error) error {
	var verr *purchase.ValidationError
	if errors.As(err, &verr) {
		return utils.BadRequest(c, verr.Message)
	}
	var perr *purchase.ProviderError
	if errors.As(err, &perr) {
		return utils.BadRequest(c, perr.Reason)
	}
	if errors.Is(err, purchase.ErrInsufficientFunds) {
		return utils.BadRequest(c, "Insufficient balance. Please fund your wallet.")
	}
	if errors.Is(err, purchase.ErrUserNotFound) {
		log.Printf("purchase requested for missing user: %v", err)
		return utils.NotFound(c, "User no longer exists")
	}
	log.Printf("purchase failed: %v", err)
	return utils.InternalError(c, "Something went wrong. Please try again.")
}
