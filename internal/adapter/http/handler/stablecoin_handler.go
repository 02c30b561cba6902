package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/ports"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/apperror"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/response"
)

const defaultHistoryLimit = 50

// StablecoinHandler handles BRLx settlement endpoints.
type StablecoinHandler struct {
	settlementSvc ports.SettlementService
}

// NewStablecoinHandler creates a new StablecoinHandler.
func NewStablecoinHandler(settlementSvc ports.SettlementService) *StablecoinHandler {
	return &StablecoinHandler{settlementSvc: settlementSvc}
}

type mintRequest struct {
	Amount string `json:"amount" binding:"required"`
	To     string `json:"to" binding:"required"`
}

type burnRequest struct {
	Amount string `json:"amount" binding:"required"`
	From   string `json:"from" binding:"required"`
}

type transferRequest struct {
	Amount string `json:"amount" binding:"required"`
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
}

type crossBorderRequest struct {
	From           string `json:"from" binding:"required"`
	To             string `json:"to" binding:"required"`
	Amount         string `json:"amount" binding:"required"`
	TargetCurrency string `json:"target_currency" binding:"required"`
}

// Mint handles POST /api/v1/stablecoin/mint.
func (h *StablecoinHandler) Mint(c *gin.Context) {
	var req mintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	tx, err := h.settlementSvc.Mint(c.Request.Context(), req.Amount, req.To)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, tx)
}

// Burn handles POST /api/v1/stablecoin/burn.
func (h *StablecoinHandler) Burn(c *gin.Context) {
	var req burnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	tx, err := h.settlementSvc.Burn(c.Request.Context(), req.Amount, req.From)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, tx)
}

// Transfer handles POST /api/v1/stablecoin/transfer.
func (h *StablecoinHandler) Transfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	tx, err := h.settlementSvc.Transfer(c.Request.Context(), req.Amount, req.From, req.To)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, tx)
}

// CrossBorder handles POST /api/v1/payments/cross-border.
func (h *StablecoinHandler) CrossBorder(c *gin.Context) {
	var req crossBorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payment, err := h.settlementSvc.SendCrossBorder(c.Request.Context(), req.From, req.To, req.Amount, req.TargetCurrency)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, payment)
}

// CrossBorderPayments handles GET /api/v1/payments/cross-border/:address.
func (h *StablecoinHandler) CrossBorderPayments(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	payments, err := h.settlementSvc.CrossBorderPayments(c.Request.Context(), c.Param("address"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, payments)
}

// Transactions handles GET /api/v1/stablecoin/transactions/:address.
func (h *StablecoinHandler) Transactions(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	txs, err := h.settlementSvc.StablecoinTransactions(c.Request.Context(), c.Param("address"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, txs)
}

// History handles GET /api/v1/history/:address.
func (h *StablecoinHandler) History(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, err := h.settlementSvc.History(c.Request.Context(), c.Param("address"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, entries)
}

func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultHistoryLimit, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0, apperror.Validation("limit must be a positive integer")
	}
	return parsed, nil
}
