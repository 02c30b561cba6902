package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fillipeguerrabtc/agro-token-kaleido/config"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/apperror"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/logger"
)

// ModeLive identifies the real-network backend.
const ModeLive = "live"

var transferEventSig = ethcrypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// EthClient is the subset of the Ethereum RPC the live backend uses.
// *ethclient.Client satisfies it.
type EthClient interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *gethtypes.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*gethtypes.Receipt, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]gethtypes.Log, error)
}

// LiveBackend submits transactions to a real EVM network: a BRLX ERC-20
// contract for the stablecoin and an ERC-721 contract for asset tokens.
// Supply operations (mint) are signed by the configured operator key;
// everything else is signed by the wallet key the caller supplies.
type LiveBackend struct {
	log zerolog.Logger

	client        EthClient
	chainID       *big.Int
	gasLimit      uint64
	confirmWait   time.Duration
	historyBlocks uint64

	brlxAddr common.Address
	agroAddr common.Address
	brlxABI  abi.ABI
	agroABI  abi.ABI

	operatorKey *ecdsa.PrivateKey
}

const brlxABIJSON = `[
	{"name":"mint","type":"function","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"name":"burn","type":"function","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"name":"transfer","type":"function","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

const agroTokenABIJSON = `[
	{"name":"mintAsset","type":"function","inputs":[{"name":"to","type":"address"},{"name":"assetType","type":"string"},{"name":"value","type":"uint256"},{"name":"maturity","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"safeTransferFrom","type":"function","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]}
]`

// NewLiveBackend dials the RPC endpoint and prepares contract bindings.
func NewLiveBackend(cfg config.ChainConfig, log zerolog.Logger) (*LiveBackend, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing rpc %s: %w", cfg.RPCURL, err)
	}
	return newLiveBackend(cfg, client, log)
}

func newLiveBackend(cfg config.ChainConfig, client EthClient, log zerolog.Logger) (*LiveBackend, error) {
	if !common.IsHexAddress(cfg.BRLXContract) {
		return nil, fmt.Errorf("invalid BRLX contract address: %s", cfg.BRLXContract)
	}
	if !common.IsHexAddress(cfg.AgroTokenContract) {
		return nil, fmt.Errorf("invalid asset token contract address: %s", cfg.AgroTokenContract)
	}

	brlxABI, err := abi.JSON(strings.NewReader(brlxABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parsing BRLX ABI: %w", err)
	}
	agroABI, err := abi.JSON(strings.NewReader(agroTokenABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parsing asset token ABI: %w", err)
	}

	opKey, err := ethcrypto.HexToECDSA(strings.TrimPrefix(cfg.OperatorKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parsing operator key: %w", err)
	}

	return &LiveBackend{
		log:           logger.Component(log, "chain_live"),
		client:        client,
		chainID:       big.NewInt(cfg.ChainID),
		gasLimit:      cfg.GasLimit,
		confirmWait:   cfg.ConfirmTimeout,
		historyBlocks: cfg.HistoryBlocks,
		brlxAddr:      common.HexToAddress(cfg.BRLXContract),
		agroAddr:      common.HexToAddress(cfg.AgroTokenContract),
		brlxABI:       brlxABI,
		agroABI:       agroABI,
		operatorKey:   opKey,
	}, nil
}

func (b *LiveBackend) Mode() string { return ModeLive }

func (b *LiveBackend) GenerateKey() (string, string, error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return "", "", fmt.Errorf("generating keypair: %w", err)
	}
	address := ethcrypto.PubkeyToAddress(key.PublicKey).Hex()
	return address, common.Bytes2Hex(ethcrypto.FromECDSA(key)), nil
}

func (b *LiveBackend) NativeBalance(ctx context.Context, address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", apperror.ErrInvalidAddress(address)
	}
	bal, err := b.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return "", apperror.ErrChainExecution(fmt.Errorf("querying native balance: %w", err))
	}
	return fromBaseUnits(bal), nil
}

func (b *LiveBackend) TokenBalance(ctx context.Context, address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", apperror.ErrInvalidAddress(address)
	}
	input, err := b.brlxABI.Pack("balanceOf", common.HexToAddress(address))
	if err != nil {
		return "", apperror.ErrChainExecution(fmt.Errorf("packing balanceOf: %w", err))
	}
	out, err := b.client.CallContract(ctx, ethereum.CallMsg{To: &b.brlxAddr, Data: input}, nil)
	if err != nil {
		return "", apperror.ErrChainExecution(fmt.Errorf("calling balanceOf: %w", err))
	}
	results, err := b.brlxABI.Unpack("balanceOf", out)
	if err != nil || len(results) != 1 {
		return "", apperror.ErrChainExecution(fmt.Errorf("unpacking balanceOf: %w", err))
	}
	bal, ok := results[0].(*big.Int)
	if !ok {
		return "", apperror.ErrChainExecution(fmt.Errorf("unexpected balanceOf result type %T", results[0]))
	}
	return fromBaseUnits(bal), nil
}

func (b *LiveBackend) MintStablecoin(ctx context.Context, to, amount string) (string, error) {
	if !common.IsHexAddress(to) {
		return "", apperror.ErrInvalidAddress(to)
	}
	v, err := toBaseUnits(amount)
	if err != nil {
		return "", apperror.ErrInvalidAmount(err.Error())
	}
	input, err := b.brlxABI.Pack("mint", common.HexToAddress(to), v)
	if err != nil {
		return "", apperror.ErrChainExecution(fmt.Errorf("packing mint: %w", err))
	}
	receipt, err := b.submit(ctx, b.operatorKey, b.brlxAddr, input)
	if err != nil {
		return "", err
	}
	return receipt.TxHash.Hex(), nil
}

func (b *LiveBackend) BurnStablecoin(ctx context.Context, privateKeyHex, amount string) (string, error) {
	key, err := parseKey(privateKeyHex)
	if err != nil {
		return "", err
	}
	v, err := toBaseUnits(amount)
	if err != nil {
		return "", apperror.ErrInvalidAmount(err.Error())
	}
	input, err := b.brlxABI.Pack("burn", v)
	if err != nil {
		return "", apperror.ErrChainExecution(fmt.Errorf("packing burn: %w", err))
	}
	receipt, err := b.submit(ctx, key, b.brlxAddr, input)
	if err != nil {
		return "", err
	}
	return receipt.TxHash.Hex(), nil
}

func (b *LiveBackend) TransferStablecoin(ctx context.Context, privateKeyHex, to, amount string) (string, error) {
	key, err := parseKey(privateKeyHex)
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
	input, err := b.brlxABI.Pack("transfer", common.HexToAddress(to), v)
	if err != nil {
		return "", apperror.ErrChainExecution(fmt.Errorf("packing transfer: %w", err))
	}
	receipt, err := b.submit(ctx, key, b.brlxAddr, input)
	if err != nil {
		return "", err
	}
	return receipt.TxHash.Hex(), nil
}

func (b *LiveBackend) CreateAssetToken(ctx context.Context, privateKeyHex, assetType, value string, maturity time.Time) (string, string, error) {
	key, err := parseKey(privateKeyHex)
	if err != nil {
		return "", "", err
	}
	v, err := toBaseUnits(value)
	if err != nil {
		return "", "", apperror.ErrInvalidAmount(err.Error())
	}
	owner := ethcrypto.PubkeyToAddress(key.PublicKey)
	input, err := b.agroABI.Pack("mintAsset", owner, assetType, v, big.NewInt(maturity.Unix()))
	if err != nil {
		return "", "", apperror.ErrChainExecution(fmt.Errorf("packing mintAsset: %w", err))
	}
	receipt, err := b.submit(ctx, key, b.agroAddr, input)
	if err != nil {
		return "", "", err
	}
	tokenID, err := mintedTokenID(receipt, b.agroAddr)
	if err != nil {
		return "", "", apperror.ErrChainExecution(err)
	}
	return tokenID, receipt.TxHash.Hex(), nil
}

func (b *LiveBackend) TransferAssetToken(ctx context.Context, privateKeyHex, to, tokenID string) (string, error) {
	key, err := parseKey(privateKeyHex)
	if err != nil {
		return "", err
	}
	if !common.IsHexAddress(to) {
		return "", apperror.ErrInvalidAddress(to)
	}
	id, ok := new(big.Int).SetString(tokenID, 10)
	if !ok {
		return "", apperror.ErrChainExecution(fmt.Errorf("malformed token id: %s", tokenID))
	}
	from := ethcrypto.PubkeyToAddress(key.PublicKey)
	input, err := b.agroABI.Pack("safeTransferFrom", from, common.HexToAddress(to), id)
	if err != nil {
		return "", apperror.ErrChainExecution(fmt.Errorf("packing safeTransferFrom: %w", err))
	}
	receipt, err := b.submit(ctx, key, b.agroAddr, input)
	if err != nil {
		return "", err
	}
	return receipt.TxHash.Hex(), nil
}

// TransferHistory scans recent BRLX Transfer events touching address.
func (b *LiveBackend) TransferHistory(ctx context.Context, address string, limit int) ([]*domain.HistoryEntry, error) {
	if !common.IsHexAddress(address) {
		return nil, apperror.ErrInvalidAddress(address)
	}
	head, err := b.client.BlockNumber(ctx)
	if err != nil {
		return nil, apperror.ErrChainExecution(fmt.Errorf("fetching head: %w", err))
	}
	from := uint64(0)
	if head > b.historyBlocks {
		from = head - b.historyBlocks
	}
	topic := common.BytesToHash(common.HexToAddress(address).Bytes())
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		Addresses: []common.Address{b.brlxAddr},
		Topics:    [][]common.Hash{{transferEventSig}},
	}
	logs, err := b.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, apperror.ErrChainExecution(fmt.Errorf("filtering logs: %w", err))
	}

	var out []*domain.HistoryEntry
	for i := len(logs) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		lg := logs[i]
		if len(lg.Topics) < 3 {
			continue
		}
		if lg.Topics[1] != topic && lg.Topics[2] != topic {
			continue
		}
		out = append(out, &domain.HistoryEntry{
			ID:          uuid.New(),
			Kind:        domain.EventTransaction,
			FromAddress: domain.NormalizeAddress(common.BytesToAddress(lg.Topics[1].Bytes()).Hex()),
			ToAddress:   domain.NormalizeAddress(common.BytesToAddress(lg.Topics[2].Bytes()).Hex()),
			Amount:      fromBaseUnits(new(big.Int).SetBytes(lg.Data)),
			TxRef:       lg.TxHash.Hex(),
		})
	}
	return out, nil
}

// submit signs a contract call, sends it, and waits for inclusion within
// the configured confirmation window. The returned receipt is from a
// successfully executed transaction; reverts surface as errors.
func (b *LiveBackend) submit(ctx context.Context, key *ecdsa.PrivateKey, to common.Address, input []byte) (*gethtypes.Receipt, error) {
	sender := ethcrypto.PubkeyToAddress(key.PublicKey)

	nonce, err := b.client.PendingNonceAt(ctx, sender)
	if err != nil {
		return nil, apperror.ErrChainExecution(fmt.Errorf("fetching nonce: %w", err))
	}
	gasPrice, err := b.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, apperror.ErrChainExecution(fmt.Errorf("fetching gas price: %w", err))
	}

	tx := gethtypes.NewTx(&gethtypes.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Gas:      b.gasLimit,
		GasPrice: gasPrice,
		Data:     input,
	})
	signed, err := gethtypes.SignTx(tx, gethtypes.LatestSignerForChainID(b.chainID), key)
	if err != nil {
		return nil, apperror.ErrChainExecution(fmt.Errorf("signing transaction: %w", err))
	}

	if err := b.client.SendTransaction(ctx, signed); err != nil {
		return nil, apperror.ErrChainExecution(fmt.Errorf("sending transaction: %w", err))
	}
	b.log.Info().
		Str("tx_hash", signed.Hash().Hex()).
		Str("from", sender.Hex()).
		Str("to", to.Hex()).
		Msg("transaction submitted")

	receipt, err := b.waitMined(ctx, signed.Hash())
	if err != nil {
		return nil, err
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return nil, apperror.ErrChainExecution(fmt.Errorf("transaction %s reverted", signed.Hash().Hex()))
	}
	return receipt, nil
}

// waitMined polls for the receipt until inclusion or the confirmation
// window elapses. Once submitted a transaction is irrevocable; a timeout
// here means unknown outcome, not failure to submit.
func (b *LiveBackend) waitMined(ctx context.Context, hash common.Hash) (*gethtypes.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, b.confirmWait)
	defer cancel()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		receipt, err := b.client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		select {
		case <-ctx.Done():
			return nil, apperror.ErrChainExecution(fmt.Errorf("waiting for inclusion of %s: %w", hash.Hex(), ctx.Err()))
		case <-ticker.C:
		}
	}
}

// mintedTokenID extracts the token id from the ERC-721 mint Transfer event
// (from the zero address) in a receipt.
func mintedTokenID(receipt *gethtypes.Receipt, contract common.Address) (string, error) {
	for _, lg := range receipt.Logs {
		if lg == nil || lg.Address != contract {
			continue
		}
		if len(lg.Topics) != 4 || lg.Topics[0] != transferEventSig {
			continue
		}
		if common.BytesToAddress(lg.Topics[1].Bytes()) != (common.Address{}) {
			continue
		}
		return new(big.Int).SetBytes(lg.Topics[3].Bytes()).String(), nil
	}
	return "", fmt.Errorf("no mint event in receipt %s", receipt.TxHash.Hex())
}

func parseKey(privateKeyHex string) (*ecdsa.PrivateKey, error) {
	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, apperror.ErrChainExecution(fmt.Errorf("parsing private key: %w", err))
	}
	return key, nil
}
