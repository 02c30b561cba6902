package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/ports"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/apperror"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/response"
)

// WalletHandler handles custodial wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

type createWalletRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

type importWalletRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	PrivateKey  string `json:"private_key" binding:"required"`
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	var req createWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.walletSvc.Create(c.Request.Context(), req.DisplayName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, wallet)
}

// Import handles POST /api/v1/wallets/import.
func (h *WalletHandler) Import(c *gin.Context) {
	var req importWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.walletSvc.Import(c.Request.Context(), req.DisplayName, req.PrivateKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, wallet)
}

// List handles GET /api/v1/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	wallets, err := h.walletSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, wallets)
}

// Balances handles GET /api/v1/wallets/:address/balances.
func (h *WalletHandler) Balances(c *gin.Context) {
	balances, err := h.walletSvc.Balances(c.Request.Context(), c.Param("address"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, balances)
}
