package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/ports"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/apperror"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/response"
)

// MarketplaceHandler handles asset tokenization and marketplace endpoints.
type MarketplaceHandler struct {
	tokenizationSvc ports.TokenizationService
	settlementSvc   ports.SettlementService
}

// NewMarketplaceHandler creates a new MarketplaceHandler.
func NewMarketplaceHandler(tokenizationSvc ports.TokenizationService, settlementSvc ports.SettlementService) *MarketplaceHandler {
	return &MarketplaceHandler{
		tokenizationSvc: tokenizationSvc,
		settlementSvc:   settlementSvc,
	}
}

type tokenizeRequest struct {
	OwnerAddress string `json:"owner_address" binding:"required"`
	AssetType    string `json:"asset_type" binding:"required"`
	Description  string `json:"description"`
	Value        string `json:"value" binding:"required"`
	MaturityDate string `json:"maturity_date" binding:"required"`
}

type listForSaleRequest struct {
	AssetTokenID  string `json:"asset_token_id" binding:"required"`
	SellerAddress string `json:"seller_address" binding:"required"`
	Price         string `json:"price" binding:"required"`
}

type buyRequest struct {
	ListingID    string `json:"listing_id" binding:"required"`
	BuyerAddress string `json:"buyer_address" binding:"required"`
}

type cancelListingRequest struct {
	SellerAddress string `json:"seller_address" binding:"required"`
}

// Tokenize handles POST /api/v1/assets/tokenize.
func (h *MarketplaceHandler) Tokenize(c *gin.Context) {
	var req tokenizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	maturity, err := time.Parse("2006-01-02", req.MaturityDate)
	if err != nil {
		response.Error(c, apperror.Validation("maturity_date must be YYYY-MM-DD"))
		return
	}

	token, err := h.tokenizationSvc.Tokenize(
		c.Request.Context(), req.OwnerAddress, req.AssetType, req.Description, req.Value, maturity,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, token)
}

// AssetsByOwner handles GET /api/v1/assets/:address.
func (h *MarketplaceHandler) AssetsByOwner(c *gin.Context) {
	tokens, err := h.tokenizationSvc.AssetsByOwner(c.Request.Context(), c.Param("address"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, tokens)
}

// ListForSale handles POST /api/v1/marketplace/listings.
func (h *MarketplaceHandler) ListForSale(c *gin.Context) {
	var req listForSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	assetTokenID, err := uuid.Parse(req.AssetTokenID)
	if err != nil {
		response.Error(c, apperror.Validation("asset_token_id must be a UUID"))
		return
	}

	listing, err := h.tokenizationSvc.ListForSale(c.Request.Context(), assetTokenID, req.SellerAddress, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, listing)
}

// ActiveListings handles GET /api/v1/marketplace/listings.
func (h *MarketplaceHandler) ActiveListings(c *gin.Context) {
	listings, err := h.tokenizationSvc.ActiveListings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, listings)
}

// Buy handles POST /api/v1/marketplace/buy.
func (h *MarketplaceHandler) Buy(c *gin.Context) {
	var req buyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		response.Error(c, apperror.Validation("listing_id must be a UUID"))
		return
	}

	order, err := h.settlementSvc.Buy(c.Request.Context(), listingID, req.BuyerAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, order)
}

// CancelListing handles POST /api/v1/marketplace/listings/:id/cancel.
func (h *MarketplaceHandler) CancelListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("listing id must be a UUID"))
		return
	}

	var req cancelListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	listing, err := h.tokenizationSvc.CancelListing(c.Request.Context(), listingID, req.SellerAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, listing)
}

// OrdersByBuyer handles GET /api/v1/marketplace/orders/:address.
func (h *MarketplaceHandler) OrdersByBuyer(c *gin.Context) {
	orders, err := h.settlementSvc.OrdersByBuyer(c.Request.Context(), c.Param("address"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, orders)
}
