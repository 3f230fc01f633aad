package encryption

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	codec, err := NewCodec("test-secret")
	require.NoError(t, err)
	return codec
}

func TestNewCodecRequiresSecret(t *testing.T) {
	_, err := NewCodec("  ")
	require.Error(t, err)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	for _, plaintext := range []string{
		"Jane Doe",
		"jane@example.com",
		"",
		"exactly sixteen!",
		"names with unicode: Çağla Ñoño 日本語",
	} {
		envelope, err := codec.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, envelope)

		got, err := codec.Decrypt(envelope)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestEncryptEnvelopeShape(t *testing.T) {
	codec := newTestCodec(t)

	envelope, err := codec.Encrypt("Jane Doe")
	require.NoError(t, err)

	parts := strings.SplitN(envelope, ":", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 32, "hex-encoded 16-byte IV")
	assert.NotEmpty(t, parts[1])
	assert.Zero(t, len(parts[1])%32, "ciphertext is whole AES blocks")
}

func TestEncryptUsesFreshIV(t *testing.T) {
	codec := newTestCodec(t)

	first, err := codec.Encrypt("Jane Doe")
	require.NoError(t, err)
	second, err := codec.Encrypt("Jane Doe")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	got1, err := codec.Decrypt(first)
	require.NoError(t, err)
	got2, err := codec.Decrypt(second)
	require.NoError(t, err)
	assert.Equal(t, got1, got2)
}

func TestDecryptMalformedEnvelope(t *testing.T) {
	codec := newTestCodec(t)

	for name, envelope := range map[string]string{
		"no separator":  "deadbeef",
		"iv not hex":    "zzzz:deadbeef",
		"iv wrong size": "dead:deadbeefdeadbeefdeadbeefdeadbeef",
		"ct not hex":    strings.Repeat("ab", 16) + ":not-hex-at-all",
	} {
		_, err := codec.Decrypt(envelope)
		assert.ErrorIs(t, err, ErrMalformedEnvelope, name)
	}
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	codec := newTestCodec(t)

	envelope, err := codec.Encrypt("Jane Doe")
	require.NoError(t, err)

	// Flip the last hex character of the ciphertext; padding validation must
	// reject it rather than silently returning the original plaintext.
	tampered := []byte(envelope)
	last := tampered[len(tampered)-1]
	if last == 'a' {
		tampered[len(tampered)-1] = 'b'
	} else {
		tampered[len(tampered)-1] = 'a'
	}

	got, err := codec.Decrypt(string(tampered))
	if err == nil {
		assert.NotEqual(t, "Jane Doe", got)
	} else {
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	}
}

func TestDecryptWrongKey(t *testing.T) {
	codec := newTestCodec(t)
	other, err := NewCodec("another-secret")
	require.NoError(t, err)

	envelope, err := codec.Encrypt("Jane Doe")
	require.NoError(t, err)

	got, err := other.Decrypt(envelope)
	if err == nil {
		assert.NotEqual(t, "Jane Doe", got)
	} else {
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	}
}

func TestDecryptTruncatedCiphertext(t *testing.T) {
	codec := newTestCodec(t)

	envelope, err := codec.Encrypt("Jane Doe")
	require.NoError(t, err)

	// Drop one full hex block from the ciphertext half.
	iv, _, _ := strings.Cut(envelope, ":")
	_, err = codec.Decrypt(iv + ":" + strings.Repeat("ab", 8))
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
