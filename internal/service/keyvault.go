package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"

	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/apperror"
)

const (
	vaultNonceSize = 16
	vaultTagSize   = 16

	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

// scryptSalt is fixed: the vault derives one process-wide key from the
// configured secret, so a per-blob salt would buy nothing and a random one
// would make blobs undecryptable after a restart.
var scryptSalt = []byte("salt")

// KeyVault encrypts wallet signing keys with AES-256-GCM under a key
// derived from the process secret via scrypt. Sealed blobs are
// hexNonce:hexTag:hexCiphertext so each segment is independently
// inspectable without being decryptable.
type KeyVault struct {
	key []byte
}

// NewKeyVault derives the vault key from secret. The scrypt parameters are
// deliberately slow; call this once at startup and reuse the vault.
func NewKeyVault(secret string) (*KeyVault, error) {
	if secret == "" {
		return nil, fmt.Errorf("vault secret must not be empty")
	}
	key, err := scrypt.Key([]byte(secret), scryptSalt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("deriving vault key: %w", err)
	}
	return &KeyVault{key: key}, nil
}

// Seal encrypts plaintext and returns the colon-separated blob.
func (v *KeyVault) Seal(plaintext string) (string, error) {
	block, err := aes.NewCipher(v.key)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("creating cipher: %w", err))
	}

	aesGCM, err := cipher.NewGCMWithNonceSize(block, vaultNonceSize)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("creating GCM: %w", err))
	}

	nonce := make([]byte, vaultNonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("generating nonce: %w", err))
	}

	sealed := aesGCM.Seal(nil, nonce, []byte(plaintext), nil)
	ct, tag := sealed[:len(sealed)-vaultTagSize], sealed[len(sealed)-vaultTagSize:]

	return strings.Join([]string{
		hex.EncodeToString(nonce),
		hex.EncodeToString(tag),
		hex.EncodeToString(ct),
	}, ":"), nil
}

// Open decrypts a blob produced by Seal. Any tampering with the nonce, tag
// or ciphertext, and any blob sealed under a different secret, fails with
// an integrity error.
func (v *KeyVault) Open(sealedBlob string) (string, error) {
	parts := strings.Split(sealedBlob, ":")
	if len(parts) != 3 {
		return "", apperror.ErrIntegrity(fmt.Errorf("expected 3 blob segments, got %d", len(parts)))
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", apperror.ErrIntegrity(fmt.Errorf("decoding nonce: %w", err))
	}
	if len(nonce) != vaultNonceSize {
		return "", apperror.ErrIntegrity(fmt.Errorf("nonce must be %d bytes, got %d", vaultNonceSize, len(nonce)))
	}

	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", apperror.ErrIntegrity(fmt.Errorf("decoding auth tag: %w", err))
	}
	if len(tag) != vaultTagSize {
		return "", apperror.ErrIntegrity(fmt.Errorf("auth tag must be %d bytes, got %d", vaultTagSize, len(tag)))
	}

	ct, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", apperror.ErrIntegrity(fmt.Errorf("decoding ciphertext: %w", err))
	}

	block, err := aes.NewCipher(v.key)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("creating cipher: %w", err))
	}

	aesGCM, err := cipher.NewGCMWithNonceSize(block, vaultNonceSize)
	if err != nil {
		return "", apperror.ErrVaultFailure(fmt.Errorf("creating GCM: %w", err))
	}

	plaintext, err := aesGCM.Open(nil, nonce, append(ct, tag...), nil)
	if err != nil {
		return "", apperror.ErrIntegrity(fmt.Errorf("authenticated decryption failed: %w", err))
	}

	return string(plaintext), nil
}
