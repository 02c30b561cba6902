package chain

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/apperror"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/logger"
)

// ModeMock identifies the simulated backend.
const ModeMock = "mock"

// MockBackend simulates the ledger in memory: every submission succeeds
// synchronously with a fresh random reference, balances move in an
// in-process ledger, and nothing leaves the process. Used for demos and
// tests when no contract addresses are configured.
type MockBackend struct {
	log zerolog.Logger

	mu       sync.Mutex
	balances map[string]*big.Int // BRLX base units by normalized address
	tokens   map[string]string   // on-chain token id -> owner address
	history  []*domain.HistoryEntry
	failOn   map[string]error
	nextTok  int
}

// NewMockBackend builds an empty simulated ledger.
func NewMockBackend(log zerolog.Logger) *MockBackend {
	return &MockBackend{
		log:      logger.Component(log, "chain_mock"),
		balances: make(map[string]*big.Int),
		tokens:   make(map[string]string),
		failOn:   make(map[string]error),
	}
}

func (m *MockBackend) Mode() string { return ModeMock }

// FailOn makes the named capability ("mint", "burn", "transfer",
// "create_asset", "transfer_asset") return err until cleared with nil.
// Test and demo hook only.
func (m *MockBackend) FailOn(capability string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failOn, capability)
		return
	}
	m.failOn[capability] = err
}

// Credit seeds a BRLX balance directly, bypassing mint bookkeeping.
func (m *MockBackend) Credit(address, amount string) error {
	v, err := toBaseUnits(amount)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credit(domain.NormalizeAddress(address), v)
	return nil
}

func (m *MockBackend) GenerateKey() (string, string, error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return "", "", fmt.Errorf("generating keypair: %w", err)
	}
	address := ethcrypto.PubkeyToAddress(key.PublicKey).Hex()
	privHex := hex.EncodeToString(ethcrypto.FromECDSA(key))
	return address, privHex, nil
}

func (m *MockBackend) NativeBalance(_ context.Context, address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", apperror.ErrInvalidAddress(address)
	}
	// The simulated chain has no gas economy; report a comfortable stipend.
	return "10", nil
}

func (m *MockBackend) TokenBalance(_ context.Context, address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", apperror.ErrInvalidAddress(address)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.balances[domain.NormalizeAddress(address)]
	if !ok {
		return "0", nil
	}
	return fromBaseUnits(v), nil
}

func (m *MockBackend) MintStablecoin(_ context.Context, to, amount string) (string, error) {
	v, err := toBaseUnits(amount)
	if err != nil {
		return "", apperror.ErrInvalidAmount(err.Error())
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("mint"); err != nil {
		return "", err
	}
	addr := domain.NormalizeAddress(to)
	m.credit(addr, v)
	ref := mockTxRef()
	m.record(domain.EventStablecoinMint, "", addr, amount, "", ref)
	m.log.Debug().Str("to", addr).Str("amount", amount).Str("tx_ref", ref).Msg("mock mint")
	return ref, nil
}

func (m *MockBackend) BurnStablecoin(_ context.Context, privateKeyHex, amount string) (string, error) {
	from, err := addressOfKey(privateKeyHex)
	if err != nil {
		return "", err
	}
	v, err := toBaseUnits(amount)
	if err != nil {
		return "", apperror.ErrInvalidAmount(err.Error())
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("burn"); err != nil {
		return "", err
	}
	if err := m.debit(from, v); err != nil {
		return "", err
	}
	ref := mockTxRef()
	m.record(domain.EventStablecoinBurn, from, "", amount, "", ref)
	return ref, nil
}

func (m *MockBackend) TransferStablecoin(_ context.Context, privateKeyHex, to, amount string) (string, error) {
	from, err := addressOfKey(privateKeyHex)
	if err != nil {
		return "", err
	}
	if !common.IsHexAddress(to) {
		return "", apperror.ErrInvalidAddress(to)
	}
	v, err := toBaseUnits(amount)
	if err != nil {
		return "", apperror.ErrInvalidAmount(err.Error())
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("transfer"); err != nil {
		return "", err
	}
	if err := m.debit(from, v); err != nil {
		return "", err
	}
	m.credit(domain.NormalizeAddress(to), v)
	ref := mockTxRef()
	m.record(domain.EventTransaction, from, domain.NormalizeAddress(to), amount, "", ref)
	return ref, nil
}

func (m *MockBackend) CreateAssetToken(_ context.Context, privateKeyHex, assetType, value string, _ time.Time) (string, string, error) {
	owner, err := addressOfKey(privateKeyHex)
	if err != nil {
		return "", "", err
	}
	if _, err := toBaseUnits(value); err != nil {
		return "", "", apperror.ErrInvalidAmount(err.Error())
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("create_asset"); err != nil {
		return "", "", err
	}
	m.nextTok++
	tokenID := fmt.Sprintf("%d", m.nextTok)
	m.tokens[tokenID] = owner
	ref := mockTxRef()
	m.record(domain.EventTransaction, "", owner, value, tokenID, ref)
	m.log.Debug().Str("owner", owner).Str("asset_type", assetType).Str("token_id", tokenID).Msg("mock asset mint")
	return tokenID, ref, nil
}

func (m *MockBackend) TransferAssetToken(_ context.Context, privateKeyHex, to, tokenID string) (string, error) {
	from, err := addressOfKey(privateKeyHex)
	if err != nil {
		return "", err
	}
	if !common.IsHexAddress(to) {
		return "", apperror.ErrInvalidAddress(to)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("transfer_asset"); err != nil {
		return "", err
	}
	owner, ok := m.tokens[tokenID]
	if ok && owner != from {
		return "", apperror.ErrChainExecution(fmt.Errorf("token %s not owned by %s", tokenID, from))
	}
	m.tokens[tokenID] = domain.NormalizeAddress(to)
	ref := mockTxRef()
	m.record(domain.EventTransaction, from, domain.NormalizeAddress(to), "", tokenID, ref)
	return ref, nil
}

func (m *MockBackend) TransferHistory(_ context.Context, address string, limit int) ([]*domain.HistoryEntry, error) {
	addr := domain.NormalizeAddress(address)
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.HistoryEntry
	for i := len(m.history) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		e := m.history[i]
		if e.FromAddress == addr || e.ToAddress == addr {
			out = append(out, e)
		}
	}
	return out, nil
}

// callers hold m.mu for the helpers below.

func (m *MockBackend) failure(capability string) error {
	if err, ok := m.failOn[capability]; ok {
		return apperror.ErrChainExecution(err)
	}
	return nil
}

func (m *MockBackend) credit(addr string, v *big.Int) {
	cur, ok := m.balances[addr]
	if !ok {
		cur = new(big.Int)
		m.balances[addr] = cur
	}
	cur.Add(cur, v)
}

func (m *MockBackend) debit(addr string, v *big.Int) error {
	cur, ok := m.balances[addr]
	if !ok || cur.Cmp(v) < 0 {
		return apperror.ErrChainExecution(fmt.Errorf("insufficient balance for %s", addr))
	}
	cur.Sub(cur, v)
	return nil
}

func (m *MockBackend) record(kind, from, to, amount, tokenID, txRef string) {
	m.history = append(m.history, &domain.HistoryEntry{
		ID:          uuid.New(),
		Kind:        kind,
		FromAddress: from,
		ToAddress:   to,
		Amount:      amount,
		TokenID:     tokenID,
		TxRef:       txRef,
		CreatedAt:   time.Now().UTC(),
	})
}

// mockTxRef returns a fresh 32-byte reference in transaction-hash shape.
func mockTxRef() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return "0x" + hex.EncodeToString(b)
}

// addressOfKey derives the normalized address controlled by a private key.
func addressOfKey(privateKeyHex string) (string, error) {
	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return "", apperror.ErrChainExecution(fmt.Errorf("parsing private key: %w", err))
	}
	return domain.NormalizeAddress(ethcrypto.PubkeyToAddress(key.PublicKey).Hex()), nil
}
