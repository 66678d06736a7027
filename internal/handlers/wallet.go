package handlers

import (
	"errors"
	"log"

	"quicktop/internal/services/wallet"
	"quicktop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	details, err := h.walletService.GetBalance(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, wallet.ErrUserNotFound) {
			log.Printf("balance requested for missing user %d", claims.UserID)
			return utils.NotFound(c, "User no longer exists")
		}
		log.Printf("get balance failed for user %d: %v", claims.UserID, err)
		return utils.InternalError(c, "Failed to get balance")
	}

	return utils.Success(c, details)
}

func (h *WalletHandler) GetTransactions(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	txns, err := h.walletService.GetTransactions(c.Context(), claims.UserID)
	if err != nil {
		log.Printf("get transactions failed for user %d: %v", claims.UserID, err)
		return utils.InternalError(c, "Failed to get transactions")
	}

	return utils.Success(c, fiber.Map{
		"transactions": txns,
	})
}

func (h *WalletHandler) FundWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount    float64 `json:"amount"`
		Reference string  `json:"reference"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	receipt, err := h.walletService.Fund(c.Context(), claims.UserID, input.Amount, input.Reference)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidAmount):
			return utils.BadRequest(c, "Please provide a valid amount")
		case errors.Is(err, wallet.ErrDuplicateReference):
			return utils.BadRequest(c, "Transaction reference already used")
		case errors.Is(err, wallet.ErrUserNotFound):
			log.Printf("funding requested for missing user %d", claims.UserID)
			return utils.NotFound(c, "User no longer exists")
		}
		log.Printf("fund wallet failed for user %d: %v", claims.UserID, err)
		return utils.InternalError(c, "Failed to fund wallet")
	}

	return utils.SuccessMessage(c, "Wallet funded successfully", fiber.Map{
		"newBalance": receipt.NewBalance,
		"transaction": fiber.Map{
			"amount":      receipt.Transaction.Amount,
			"type":        receipt.Transaction.Type,
			"description": "Wallet Funding",
		},
	})
}
