package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/ports"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[string]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	addr := domain.NormalizeAddress(w.Address)
	if _, ok := r.wallets[addr]; ok {
		return fmt.Errorf("wallet already exists")
	}
	cp := *w
	cp.Address = addr
	r.wallets[addr] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByAddress(ctx context.Context, address string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[domain.NormalizeAddress(address)]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) List(ctx context.Context) ([]*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Wallet, 0, len(r.wallets))
	for _, w := range r.wallets {
		cp := *w
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// --- In-Memory Asset Token Repo ---

type inMemoryAssetTokenRepo struct {
	mu     sync.RWMutex
	tokens map[uuid.UUID]*domain.AssetToken
}

func newInMemoryAssetTokenRepo() *inMemoryAssetTokenRepo {
	return &inMemoryAssetTokenRepo{tokens: make(map[uuid.UUID]*domain.AssetToken)}
}

func (r *inMemoryAssetTokenRepo) Create(ctx context.Context, t *domain.AssetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.tokens[t.ID] = &cp
	return nil
}

func (r *inMemoryAssetTokenRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AssetToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tokens[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryAssetTokenRepo) ListByOwner(ctx context.Context, address string) ([]*domain.AssetToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr := domain.NormalizeAddress(address)
	var out []*domain.AssetToken
	for _, t := range r.tokens {
		if t.OwnerAddress == addr {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *inMemoryAssetTokenRepo) UpdateOwner(ctx context.Context, id uuid.UUID, newOwner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[id]
	if !ok {
		return fmt.Errorf("asset token not found")
	}
	t.OwnerAddress = domain.NormalizeAddress(newOwner)
	return nil
}

// --- In-Memory Listing Repo ---

type inMemoryListingRepo struct {
	mu       sync.Mutex
	listings map[uuid.UUID]*domain.Listing
}

func newInMemoryListingRepo() *inMemoryListingRepo {
	return &inMemoryListingRepo{listings: make(map[uuid.UUID]*domain.Listing)}
}

func (r *inMemoryListingRepo) Create(ctx context.Context, l *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *inMemoryListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *inMemoryListingRepo) ListActive(ctx context.Context) ([]*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Listing
	for _, l := range r.listings {
		if l.Status == domain.ListingStatusActive {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ClaimActive mirrors the SQL compare-and-swap: the status flips to sold
// only when it is still active, atomically under the repo mutex.
func (r *inMemoryListingRepo) ClaimActive(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok || l.Status != domain.ListingStatusActive {
		return false, nil
	}
	now := time.Now().UTC()
	l.Status = domain.ListingStatusSold
	l.SoldAt = &now
	return true, nil
}

func (r *inMemoryListingRepo) Reactivate(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return fmt.Errorf("listing not found")
	}
	if l.Status == domain.ListingStatusSold {
		l.Status = domain.ListingStatusActive
		l.SoldAt = nil
		l.SettlementTxRef = ""
	}
	return nil
}

func (r *inMemoryListingRepo) SetSettlementTxRef(ctx context.Context, id uuid.UUID, txRef string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return fmt.Errorf("listing not found")
	}
	l.SettlementTxRef = txRef
	return nil
}

func (r *inMemoryListingRepo) Cancel(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok || l.Status != domain.ListingStatusActive {
		return fmt.Errorf("listing %s is not active", id)
	}
	l.Status = domain.ListingStatusCancelled
	return nil
}

// --- In-Memory Order Repo ---

type inMemoryOrderRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

func newInMemoryOrderRepo() *inMemoryOrderRepo {
	return &inMemoryOrderRepo{orders: make(map[uuid.UUID]*domain.Order)}
}

func (r *inMemoryOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *inMemoryOrderRepo) Update(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.orders[o.ID]
	if !ok {
		return fmt.Errorf("order not found")
	}
	if existing.Status != domain.OrderStatusPending {
		return fmt.Errorf("order %s is terminal", o.ID)
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *inMemoryOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *inMemoryOrderRepo) ListByBuyer(ctx context.Context, address string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr := domain.NormalizeAddress(address)
	var out []*domain.Order
	for _, o := range r.orders {
		if o.BuyerAddress == addr {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- In-Memory Stablecoin Transaction Repo ---

type inMemoryStablecoinTxRepo struct {
	mu  sync.RWMutex
	txs []*domain.StablecoinTransaction
}

func newInMemoryStablecoinTxRepo() *inMemoryStablecoinTxRepo {
	return &inMemoryStablecoinTxRepo{}
}

func (r *inMemoryStablecoinTxRepo) Create(ctx context.Context, tx *domain.StablecoinTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *tx
	r.txs = append(r.txs, &cp)
	return nil
}

func (r *inMemoryStablecoinTxRepo) ListByAddress(ctx context.Context, address string, limit int) ([]*domain.StablecoinTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr := domain.NormalizeAddress(address)
	var out []*domain.StablecoinTransaction
	for i := len(r.txs) - 1; i >= 0 && len(out) < limit; i-- {
		tx := r.txs[i]
		if tx.FromAddress == addr || tx.ToAddress == addr {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- In-Memory History Repo ---

type inMemoryHistoryRepo struct {
	mu      sync.RWMutex
	entries []*domain.HistoryEntry
}

func newInMemoryHistoryRepo() *inMemoryHistoryRepo {
	return &inMemoryHistoryRepo{}
}

func (r *inMemoryHistoryRepo) Create(ctx context.Context, e *domain.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *inMemoryHistoryRepo) ListByAddress(ctx context.Context, address string, limit int) ([]*domain.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr := domain.NormalizeAddress(address)
	var out []*domain.HistoryEntry
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.entries[i]
		if e.FromAddress == addr || e.ToAddress == addr {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- In-Memory Cross-Border Payment Repo ---

type inMemoryCrossBorderRepo struct {
	mu       sync.RWMutex
	payments []*domain.CrossBorderPayment
}

func newInMemoryCrossBorderRepo() *inMemoryCrossBorderRepo {
	return &inMemoryCrossBorderRepo{}
}

func (r *inMemoryCrossBorderRepo) Create(ctx context.Context, p *domain.CrossBorderPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.payments = append(r.payments, &cp)
	return nil
}

func (r *inMemoryCrossBorderRepo) ListByAddress(ctx context.Context, address string, limit int) ([]*domain.CrossBorderPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr := domain.NormalizeAddress(address)
	var out []*domain.CrossBorderPayment
	for i := len(r.payments) - 1; i >= 0 && len(out) < limit; i-- {
		p := r.payments[i]
		if p.FromAddress == addr || p.ToAddress == addr {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *inMemoryCrossBorderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CrossBorderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.ID == id {
			p.Status = status
			return nil
		}
	}
	return fmt.Errorf("cross-border payment %s not found", id)
}

// Compile-time interface checks.
var (
	_ ports.WalletRepository                 = (*inMemoryWalletRepo)(nil)
	_ ports.AssetTokenRepository             = (*inMemoryAssetTokenRepo)(nil)
	_ ports.ListingRepository                = (*inMemoryListingRepo)(nil)
	_ ports.OrderRepository                  = (*inMemoryOrderRepo)(nil)
	_ ports.StablecoinTransactionRepository  = (*inMemoryStablecoinTxRepo)(nil)
	_ ports.HistoryRepository                = (*inMemoryHistoryRepo)(nil)
	_ ports.CrossBorderPaymentRepository     = (*inMemoryCrossBorderRepo)(nil)
)
