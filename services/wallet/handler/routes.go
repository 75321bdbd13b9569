package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/recab/recab/services/wallet"
	httpHandler "github.com/recab/recab/services/wallet/handler/http"
)

// HTTPHandler wires the wallet HTTP routes
type HTTPHandler struct {
	walletHTTP *httpHandler.WalletHandler
}

// NewHTTPHandler creates a new wallet route handler
func NewHTTPHandler(walletUC wallet.WalletUC) *HTTPHandler {
	return &HTTPHandler{
		walletHTTP: httpHandler.NewWalletHandler(walletUC),
	}
}

// RegisterRoutes registers the wallet routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/wallet")

	g.POST("/accounts", h.walletHTTP.OpenAccount)
	g.POST("/transfer", h.walletHTTP.Transfer)
	g.POST("/topup", h.walletHTTP.TopUp)
	g.POST("/deduct", h.walletHTTP.Deduct)
	g.GET("/transactions/:userId", h.walletHTTP.ListTransactions)
	g.GET("/:userId", h.walletHTTP.GetAccount)
}
