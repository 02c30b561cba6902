package service

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/ports"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/apperror"
)

const (
	settlementLockTTL = 30 * time.Second

	// crossBorderHoldingAddress receives the BRLX leg of a cross-border
	// payment. The liquidation partner pays the recipient out in the
	// target currency and confirms the foreign leg afterwards.
	crossBorderHoldingAddress = "0x742d35Cc6634C0532925a3b844Bc9e7595f0c3a8"
	liquidationPartner        = "ubyx"

	// partnerSettleDelay stands in for the partner's confirmation
	// callback until a real webhook integration exists.
	partnerSettleDelay = 5 * time.Second
)

// fxRates quotes BRL against supported target currencies. Static quotes;
// a live FX feed would slot in behind the same lookup.
var fxRates = map[string]string{
	"USD": "0.18",
	"EUR": "0.165",
	"GBP": "0.14",
	"JPY": "27.5",
	"CNY": "1.31",
}

// SettlementServiceImpl implements ports.SettlementService. Every flow is
// a strict sequence: vault, chain, bookkeeping, notification. Later steps
// depend on references produced by earlier ones, so nothing runs in
// parallel within one flow.
type SettlementServiceImpl struct {
	walletRepo  ports.WalletRepository
	assetRepo   ports.AssetTokenRepository
	listingRepo ports.ListingRepository
	orderRepo   ports.OrderRepository
	stableRepo  ports.StablecoinTransactionRepository
	historyRepo ports.HistoryRepository
	crossRepo   ports.CrossBorderPaymentRepository
	vault       ports.KeyVault
	backend     ports.ChainBackend
	notifier    ports.Notifier
	listingLock ports.ListingLock
	log         zerolog.Logger

	// partnerDelay is how long after the BRLX leg the simulated partner
	// confirmation fires. Zero or negative settles inline.
	partnerDelay time.Duration
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	walletRepo ports.WalletRepository,
	assetRepo ports.AssetTokenRepository,
	listingRepo ports.ListingRepository,
	orderRepo ports.OrderRepository,
	stableRepo ports.StablecoinTransactionRepository,
	historyRepo ports.HistoryRepository,
	crossRepo ports.CrossBorderPaymentRepository,
	vault ports.KeyVault,
	backend ports.ChainBackend,
	notifier ports.Notifier,
	listingLock ports.ListingLock,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		walletRepo:   walletRepo,
		assetRepo:    assetRepo,
		listingRepo:  listingRepo,
		orderRepo:    orderRepo,
		stableRepo:   stableRepo,
		historyRepo:  historyRepo,
		crossRepo:    crossRepo,
		vault:        vault,
		backend:      backend,
		notifier:     notifier,
		listingLock:  listingLock,
		log:          log,
		partnerDelay: partnerSettleDelay,
	}
}

// Mint issues BRLX to a wallet.
func (s *SettlementServiceImpl) Mint(ctx context.Context, amount, to string) (*domain.StablecoinTransaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	wallet, err := s.loadWallet(ctx, to)
	if err != nil {
		return nil, err
	}
	// Opening the key proves the wallet's custody material is intact
	// before any supply change happens.
	if _, err := s.vault.Open(wallet.EncryptedSigningKey); err != nil {
		return nil, err
	}

	txRef, err := s.backend.MintStablecoin(ctx, wallet.Address, amount)
	if err != nil {
		return nil, err
	}

	tx := s.newStablecoinTx(domain.StablecoinKindMint, "", wallet.Address, amount, txRef)
	if err := s.recordStablecoinTx(ctx, tx); err != nil {
		return nil, err
	}
	s.notifier.Publish(wallet.Address, domain.NewEvent(domain.EventStablecoinMint, tx))
	s.log.Info().Str("to", wallet.Address).Str("amount", amount).Str("tx_ref", txRef).Msg("stablecoin minted")
	return tx, nil
}

// Burn destroys BRLX held by a wallet.
func (s *SettlementServiceImpl) Burn(ctx context.Context, amount, from string) (*domain.StablecoinTransaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	wallet, err := s.loadWallet(ctx, from)
	if err != nil {
		return nil, err
	}
	privHex, err := s.vault.Open(wallet.EncryptedSigningKey)
	if err != nil {
		return nil, err
	}

	txRef, err := s.backend.BurnStablecoin(ctx, privHex, amount)
	if err != nil {
		return nil, err
	}

	tx := s.newStablecoinTx(domain.StablecoinKindBurn, wallet.Address, "", amount, txRef)
	if err := s.recordStablecoinTx(ctx, tx); err != nil {
		return nil, err
	}
	s.notifier.Publish(wallet.Address, domain.NewEvent(domain.EventStablecoinBurn, tx))
	s.log.Info().Str("from", wallet.Address).Str("amount", amount).Str("tx_ref", txRef).Msg("stablecoin burned")
	return tx, nil
}

// Transfer moves BRLX between two wallets.
func (s *SettlementServiceImpl) Transfer(ctx context.Context, amount, from, to string) (*domain.StablecoinTransaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if !common.IsHexAddress(to) {
		return nil, apperror.ErrInvalidAddress(to)
	}
	wallet, err := s.loadWallet(ctx, from)
	if err != nil {
		return nil, err
	}
	privHex, err := s.vault.Open(wallet.EncryptedSigningKey)
	if err != nil {
		return nil, err
	}

	toAddr := domain.NormalizeAddress(to)
	txRef, err := s.backend.TransferStablecoin(ctx, privHex, toAddr, amount)
	if err != nil {
		return nil, err
	}

	tx := s.newStablecoinTx(domain.StablecoinKindTransfer, wallet.Address, toAddr, amount, txRef)
	if err := s.recordStablecoinTx(ctx, tx); err != nil {
		return nil, err
	}
	ev := domain.NewEvent(domain.EventTransaction, tx)
	s.notifier.Publish(wallet.Address, ev)
	s.notifier.Publish(toAddr, ev)
	return tx, nil
}

// Buy settles a marketplace purchase: payment leg, then asset leg, then
// bookkeeping. There is no atomic rollback across legs. The listing is
// claimed (active -> sold) before any money moves so concurrent buys of
// the same listing cannot both pay; if a later leg fails the claim is
// released and the listing becomes active again.
//
// If the payment leg succeeds and the asset leg fails, the buyer has paid
// without receiving the asset. That surfaces as a partial-settlement error
// carrying the payment reference, and the order records both facts for
// reconciliation.
func (s *SettlementServiceImpl) Buy(ctx context.Context, listingID uuid.UUID, buyerAddress string) (*domain.Order, error) {
	release, ok, err := s.listingLock.Acquire(ctx, listingID, settlementLockTTL)
	if err != nil {
		// The lock is a best-effort serializer; the claim below is the
		// correctness gate. Proceed without it.
		s.log.Warn().Err(err).Str("listing_id", listingID.String()).Msg("listing lock unavailable, relying on claim")
	} else if !ok {
		return nil, apperror.ErrInvalidState("listing settlement already in progress")
	} else {
		defer release()
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("getting listing: %w", err))
	}
	if listing == nil {
		return nil, apperror.ErrNotFound("listing")
	}
	if listing.Status != domain.ListingStatusActive {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("listing is %s, not active", listing.Status))
	}

	buyer, err := s.loadWallet(ctx, buyerAddress)
	if err != nil {
		return nil, err
	}
	if buyer.Address == domain.NormalizeAddress(listing.SellerAddress) {
		return nil, apperror.ErrInvalidState("buyer and seller are the same wallet")
	}
	seller, err := s.loadWallet(ctx, listing.SellerAddress)
	if err != nil {
		return nil, err
	}
	asset, err := s.assetRepo.GetByID(ctx, listing.AssetTokenID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("getting asset token: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset token")
	}

	// Claim the listing before moving money. Exactly one concurrent buy
	// can win this transition.
	claimed, err := s.listingRepo.ClaimActive(ctx, listing.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("claiming listing: %w", err))
	}
	if !claimed {
		return nil, apperror.ErrInvalidState("listing is no longer active")
	}

	order := &domain.Order{
		ID:            uuid.New(),
		ListingID:     listing.ID,
		BuyerAddress:  buyer.Address,
		SellerAddress: seller.Address,
		Price:         listing.Price,
		Status:        domain.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.releaseClaim(ctx, listing.ID)
		return nil, apperror.ErrDatabaseError(fmt.Errorf("creating order: %w", err))
	}

	buyerKey, err := s.vault.Open(buyer.EncryptedSigningKey)
	if err != nil {
		s.failOrder(ctx, order, "buyer key unavailable")
		s.releaseClaim(ctx, listing.ID)
		return nil, err
	}

	// Leg 1: payment, buyer -> seller.
	paymentTxRef, err := s.backend.TransferStablecoin(ctx, buyerKey, seller.Address, listing.Price)
	if err != nil {
		s.failOrder(ctx, order, fmt.Sprintf("payment failed: %v", err))
		s.releaseClaim(ctx, listing.ID)
		return nil, err
	}
	order.PaymentTxRef = paymentTxRef

	sellerKey, err := s.vault.Open(seller.EncryptedSigningKey)
	if err != nil {
		s.failOrder(ctx, order, "seller key unavailable after payment")
		s.releaseClaim(ctx, listing.ID)
		return nil, apperror.ErrPartialSettlement(paymentTxRef, err)
	}

	// Leg 2: asset transfer, seller -> buyer. Failure past this point is
	// the half-settled case: payment is irrevocable.
	transferTxRef, err := s.backend.TransferAssetToken(ctx, sellerKey, buyer.Address, asset.OnChainTokenID)
	if err != nil {
		s.log.Error().Err(err).
			Str("listing_id", listing.ID.String()).
			Str("payment_tx_ref", paymentTxRef).
			Msg("asset transfer failed after payment settled")
		s.failOrder(ctx, order, fmt.Sprintf("asset transfer failed: %v", err))
		s.releaseClaim(ctx, listing.ID)
		return nil, apperror.ErrPartialSettlement(paymentTxRef, err)
	}
	order.TransferTxRef = transferTxRef

	// Bookkeeping. The trade has settled on the ledger; record failures
	// here are logged, not surfaced as settlement failures.
	order.Status = domain.OrderStatusCompleted
	order.UpdatedAt = time.Now().UTC()
	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.log.Error().Err(err).Str("order_id", order.ID.String()).Msg("recording completed order failed")
	}
	if err := s.listingRepo.SetSettlementTxRef(ctx, listing.ID, transferTxRef); err != nil {
		s.log.Error().Err(err).Str("listing_id", listing.ID.String()).Msg("recording settlement ref failed")
	}
	if err := s.assetRepo.UpdateOwner(ctx, asset.ID, buyer.Address); err != nil {
		s.log.Error().Err(err).Str("asset_id", asset.ID.String()).Msg("updating asset owner failed")
	}
	s.appendHistory(ctx, domain.EventMarketplacePurchase, buyer.Address, seller.Address, listing.Price, asset.OnChainTokenID, transferTxRef)

	s.notifier.Publish(buyer.Address, domain.NewEvent(domain.EventMarketplacePurchase, map[string]interface{}{
		"side":  "buy",
		"order": order,
		"asset": asset,
	}))
	s.notifier.Publish(seller.Address, domain.NewEvent(domain.EventMarketplacePurchase, map[string]interface{}{
		"side":  "sell",
		"order": order,
		"asset": asset,
	}))

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("listing_id", listing.ID.String()).
		Str("payment_tx_ref", paymentTxRef).
		Str("transfer_tx_ref", transferTxRef).
		Msg("purchase settled")
	return order, nil
}

// SendCrossBorder sends BRLX abroad in two legs. The on-chain leg moves
// the amount from the sender into the holding address and records the
// payment as processing with a partner reference; the foreign payout is
// confirmed later through the partner leg, which flips the payment to
// completed.
func (s *SettlementServiceImpl) SendCrossBorder(ctx context.Context, from, to, amount, targetCurrency string) (*domain.CrossBorderPayment, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	rate, ok := fxRates[strings.ToUpper(targetCurrency)]
	if !ok {
		return nil, apperror.Validation(fmt.Sprintf("unsupported target currency: %s", targetCurrency))
	}
	if !common.IsHexAddress(to) {
		return nil, apperror.ErrInvalidAddress(to)
	}

	tx, err := s.Transfer(ctx, amount, from, crossBorderHoldingAddress)
	if err != nil {
		return nil, err
	}

	payment := &domain.CrossBorderPayment{
		ID:             uuid.New(),
		FromAddress:    tx.FromAddress,
		ToAddress:      domain.NormalizeAddress(to),
		AmountBRLX:     amount,
		TargetCurrency: strings.ToUpper(targetCurrency),
		FXRate:         rate,
		TargetAmount:   convertFX(amount, rate),
		TxRef:          tx.TxRef,
		PartnerTxID:    newPartnerTxID(),
		Status:         domain.CrossBorderStatusProcessing,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.crossRepo.Create(ctx, payment); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("recording cross-border payment: %w", err))
	}

	ev := domain.NewEvent(domain.EventCrossBorderPayment, payment)
	s.notifier.Publish(payment.FromAddress, ev)
	s.notifier.Publish(payment.ToAddress, ev)

	s.log.Info().
		Str("payment_id", payment.ID.String()).
		Str("partner_tx_id", payment.PartnerTxID).
		Str("tx_ref", payment.TxRef).
		Msg("cross-border payment processing")

	if s.partnerDelay <= 0 {
		s.settlePartnerLeg(payment)
	} else {
		time.AfterFunc(s.partnerDelay, func() { s.settlePartnerLeg(payment) })
	}
	return payment, nil
}

// settlePartnerLeg marks a processing payment completed once the partner
// confirms the foreign payout. In production this runs off the partner's
// webhook; here a timer stands in for it.
func (s *SettlementServiceImpl) settlePartnerLeg(p *domain.CrossBorderPayment) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.crossRepo.UpdateStatus(ctx, p.ID, domain.CrossBorderStatusCompleted); err != nil {
		s.log.Error().Err(err).Str("payment_id", p.ID.String()).Msg("settling partner leg failed")
		return
	}
	p.Status = domain.CrossBorderStatusCompleted

	ev := domain.NewEvent(domain.EventCrossBorderPayment, p)
	s.notifier.Publish(p.FromAddress, ev)
	s.notifier.Publish(p.ToAddress, ev)
}

func newPartnerTxID() string {
	return fmt.Sprintf("%s-%s", strings.ToUpper(liquidationPartner), uuid.New().String()[:8])
}

// CrossBorderPayments returns a wallet's international transfers, newest
// first, in either direction.
func (s *SettlementServiceImpl) CrossBorderPayments(ctx context.Context, address string, limit int) ([]*domain.CrossBorderPayment, error) {
	if !common.IsHexAddress(address) {
		return nil, apperror.ErrInvalidAddress(address)
	}
	payments, err := s.crossRepo.ListByAddress(ctx, domain.NormalizeAddress(address), limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing cross-border payments: %w", err))
	}
	return payments, nil
}

// StablecoinTransactions returns a wallet's BRLX movements, newest first.
func (s *SettlementServiceImpl) StablecoinTransactions(ctx context.Context, address string, limit int) ([]*domain.StablecoinTransaction, error) {
	if !common.IsHexAddress(address) {
		return nil, apperror.ErrInvalidAddress(address)
	}
	txs, err := s.stableRepo.ListByAddress(ctx, domain.NormalizeAddress(address), limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing stablecoin transactions: %w", err))
	}
	return txs, nil
}

// OrdersByBuyer returns the marketplace orders a wallet has placed.
func (s *SettlementServiceImpl) OrdersByBuyer(ctx context.Context, address string) ([]*domain.Order, error) {
	if !common.IsHexAddress(address) {
		return nil, apperror.ErrInvalidAddress(address)
	}
	orders, err := s.orderRepo.ListByBuyer(ctx, domain.NormalizeAddress(address))
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing orders: %w", err))
	}
	return orders, nil
}

// History returns the merged activity feed for a wallet, newest first.
func (s *SettlementServiceImpl) History(ctx context.Context, address string, limit int) ([]*domain.HistoryEntry, error) {
	if !common.IsHexAddress(address) {
		return nil, apperror.ErrInvalidAddress(address)
	}
	entries, err := s.historyRepo.ListByAddress(ctx, domain.NormalizeAddress(address), limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing history: %w", err))
	}
	return entries, nil
}

func (s *SettlementServiceImpl) loadWallet(ctx context.Context, address string) (*domain.Wallet, error) {
	if !common.IsHexAddress(address) {
		return nil, apperror.ErrInvalidAddress(address)
	}
	wallet, err := s.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("getting wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return wallet, nil
}

func (s *SettlementServiceImpl) newStablecoinTx(kind domain.StablecoinKind, from, to, amount, txRef string) *domain.StablecoinTransaction {
	return &domain.StablecoinTransaction{
		ID:          uuid.New(),
		Kind:        kind,
		FromAddress: from,
		ToAddress:   to,
		Amount:      amount,
		TxRef:       txRef,
		Status:      domain.StablecoinTxConfirmed,
		CreatedAt:   time.Now().UTC(),
	}
}

func (s *SettlementServiceImpl) recordStablecoinTx(ctx context.Context, tx *domain.StablecoinTransaction) error {
	if err := s.stableRepo.Create(ctx, tx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("recording stablecoin transaction: %w", err))
	}
	s.appendHistory(ctx, string(tx.Kind), tx.FromAddress, tx.ToAddress, tx.Amount, "", tx.TxRef)
	return nil
}

func (s *SettlementServiceImpl) appendHistory(ctx context.Context, kind, from, to, amount, tokenID, txRef string) {
	entry := &domain.HistoryEntry{
		ID:          uuid.New(),
		Kind:        kind,
		FromAddress: from,
		ToAddress:   to,
		Amount:      amount,
		TokenID:     tokenID,
		TxRef:       txRef,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.historyRepo.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("tx_ref", txRef).Msg("appending history entry failed")
	}
}

// releaseClaim returns a claimed listing to active after a failed
// settlement so it can be bought again.
func (s *SettlementServiceImpl) releaseClaim(ctx context.Context, listingID uuid.UUID) {
	if err := s.listingRepo.Reactivate(ctx, listingID); err != nil {
		s.log.Error().Err(err).Str("listing_id", listingID.String()).Msg("reactivating listing failed")
	}
}

func (s *SettlementServiceImpl) failOrder(ctx context.Context, order *domain.Order, reason string) {
	order.Status = domain.OrderStatusFailed
	order.FailReason = reason
	order.UpdatedAt = time.Now().UTC()
	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.log.Error().Err(err).Str("order_id", order.ID.String()).Msg("recording failed order failed")
	}
}

// validateAmount accepts positive decimal strings.
// validateAmount accepts the same decimal-string grammar the chain
// gateway converts with: digits with at most one decimal point, strictly
// positive. Rational ("3/4") and exponent ("2e3") forms are rejected at
// this boundary instead of failing deeper in the flow.
func validateAmount(amount string) error {
	s := strings.TrimSpace(amount)
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return apperror.ErrInvalidAmount(fmt.Sprintf("malformed amount: %s", amount))
	}
	for _, r := range whole + frac {
		if r < '0' || r > '9' {
			return apperror.ErrInvalidAmount(fmt.Sprintf("malformed amount: %s", amount))
		}
	}
	if strings.Trim(whole+frac, "0") == "" {
		return apperror.ErrInvalidAmount("amount must be positive")
	}
	return nil
}

// convertFX multiplies a decimal amount by a rate, quoting to 2 places.
func convertFX(amount, rate string) string {
	a, _ := new(big.Rat).SetString(amount)
	r, _ := new(big.Rat).SetString(rate)
	if a == nil || r == nil {
		return "0.00"
	}
	return new(big.Rat).Mul(a, r).FloatString(2)
}
