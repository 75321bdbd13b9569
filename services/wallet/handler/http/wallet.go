package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/internal/utils"
	"github.com/recab/recab/services/wallet"
)

// WalletHandler handles HTTP requests for wallet operations
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet HTTP handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{
		walletUC: walletUC,
	}
}

type openAccountRequest struct {
	UserID string             `json:"userId"`
	Role   models.AccountRole `json:"role"`
}

type transferRequest struct {
	FromID string `json:"fromId"`
	ToID   string `json:"toId"`
	Amount int64  `json:"amount"`
}

type topUpRequest struct {
	UserID string `json:"userId"`
	Amount int64  `json:"amount"`
}

type deductRequest struct {
	UserID   string `json:"userId"`
	Amount   int64  `json:"amount"`
	TripID   string `json:"tripId"`
	DriverID string `json:"driverId"`
	Note     string `json:"note"`
}

type balanceResponse struct {
	Message    string `json:"message"`
	Balance    int64  `json:"balance"`
	Payout     *int64 `json:"payout,omitempty"`
	Commission *int64 `json:"commission,omitempty"`
}

// OpenAccount registers a wallet for a rider or driver
func (h *WalletHandler) OpenAccount(c echo.Context) error {
	var req openAccountRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	account, err := h.walletUC.OpenAccount(c.Request().Context(), req.UserID, req.Role)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"account": account})
}

// GetAccount returns the wallet of a user
func (h *WalletHandler) GetAccount(c echo.Context) error {
	account, err := h.walletUC.GetAccount(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"account": account})
}

// Transfer moves money from one wallet to another
func (h *WalletHandler) Transfer(c echo.Context) error {
	var req transferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	entry, err := h.walletUC.Transfer(c.Request().Context(), req.FromID, req.ToID, req.Amount)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Transfer successful",
		"entry":   entry,
	})
}

// TopUp credits a wallet
func (h *WalletHandler) TopUp(c echo.Context) error {
	var req topUpRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	account, err := h.walletUC.TopUp(c.Request().Context(), req.UserID, req.Amount)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, balanceResponse{
		Message: "Top-up successful",
		Balance: account.WalletBalance,
	})
}

// Deduct debits a wallet, optionally paying a driver
func (h *WalletHandler) Deduct(c echo.Context) error {
	var req deductRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	result, err := h.walletUC.Deduct(c.Request().Context(), ledger.DeductInput{
		AccountID: req.UserID,
		Amount:    req.Amount,
		TripID:    req.TripID,
		DriverID:  req.DriverID,
		Note:      req.Note,
	})
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	resp := balanceResponse{
		Message: "Deduction successful",
		Balance: result.Account.WalletBalance,
	}
	if result.Settlement != nil {
		resp.Payout = &result.Settlement.Payout
		resp.Commission = &result.Settlement.Commission
	}
	return c.JSON(http.StatusOK, resp)
}

// ListTransactions returns the wallet history of a user, newest first
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return utils.BadRequestResponse(c, "limit must be a positive integer")
		}
		limit = parsed
	}

	entries, err := h.walletUC.ListTransactions(c.Request().Context(), c.Param("userId"), limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"transactions": entries})
}
