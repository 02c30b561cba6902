package service

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/apperror"
)

const testVaultSecret = "an-adequately-long-vault-secret!"

func newTestVault(t *testing.T) *KeyVault {
	t.Helper()
	v, err := NewKeyVault(testVaultSecret)
	require.NoError(t, err)
	return v
}

func TestNewKeyVault_EmptySecret(t *testing.T) {
	_, err := NewKeyVault("")
	assert.Error(t, err)
}

func TestKeyVault_RoundTrip(t *testing.T) {
	v := newTestVault(t)

	plaintext := "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	sealed, err := v.Seal(plaintext)
	require.NoError(t, err)

	opened, err := v.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestKeyVault_BlobFormat(t *testing.T) {
	v := newTestVault(t)

	sealed, err := v.Seal("secret-key-material")
	require.NoError(t, err)

	parts := strings.Split(sealed, ":")
	require.Len(t, parts, 3)

	nonce, err := hex.DecodeString(parts[0])
	require.NoError(t, err)
	assert.Len(t, nonce, 16)

	tag, err := hex.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Len(t, tag, 16)

	ct, err := hex.DecodeString(parts[2])
	require.NoError(t, err)
	assert.Len(t, ct, len("secret-key-material"))
}

func TestKeyVault_NonceVariesPerSeal(t *testing.T) {
	v := newTestVault(t)

	a, err := v.Seal("same-plaintext")
	require.NoError(t, err)
	b, err := v.Seal("same-plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestKeyVault_TamperedBlob(t *testing.T) {
	v := newTestVault(t)

	sealed, err := v.Seal("secret-key-material")
	require.NoError(t, err)
	parts := strings.Split(sealed, ":")

	flip := func(hexStr string) string {
		b, err := hex.DecodeString(hexStr)
		require.NoError(t, err)
		b[0] ^= 0xff
		return hex.EncodeToString(b)
	}

	tests := []struct {
		name string
		blob string
	}{
		{"tampered nonce", strings.Join([]string{flip(parts[0]), parts[1], parts[2]}, ":")},
		{"tampered tag", strings.Join([]string{parts[0], flip(parts[1]), parts[2]}, ":")},
		{"tampered ciphertext", strings.Join([]string{parts[0], parts[1], flip(parts[2])}, ":")},
		{"missing segment", parts[0] + ":" + parts[1]},
		{"extra segment", sealed + ":deadbeef"},
		{"non-hex nonce", "zz:" + parts[1] + ":" + parts[2]},
		{"truncated nonce", parts[0][:8] + ":" + parts[1] + ":" + parts[2]},
		{"empty blob", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Open(tt.blob)
			require.Error(t, err)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperror.CodeIntegrity, appErr.Code)
		})
	}
}

func TestKeyVault_WrongSecret(t *testing.T) {
	v1 := newTestVault(t)
	v2, err := NewKeyVault("a-different-but-also-long-secret")
	require.NoError(t, err)

	sealed, err := v1.Seal("secret-key-material")
	require.NoError(t, err)

	_, err = v2.Open(sealed)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeIntegrity, appErr.Code)
}

func TestKeyVault_EmptyPlaintext(t *testing.T) {
	v := newTestVault(t)

	sealed, err := v.Seal("")
	require.NoError(t, err)

	opened, err := v.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "", opened)
}
