package credential_test

import (
	"testing"

	"github.com/Triyambak-CA/client-dashboard/internal/credential"

	"github.com/stretchr/testify/assert"
)

func newTestCodec(t *testing.T) *credential.Codec {
	t.Helper()
	key, err := credential.GenerateKey()
	assert.NoError(t, err)

	codec, err := credential.NewCodec(key)
	assert.NoError(t, err)
	return codec
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	plaintext := "S3cret@Portal!"
	ciphertext := codec.Encrypt(&plaintext)

	assert.NotNil(t, ciphertext)
	assert.NotEqual(t, plaintext, *ciphertext)

	decrypted := codec.Decrypt(ciphertext)
	assert.NotNil(t, decrypted)
	assert.Equal(t, plaintext, *decrypted)
}

func TestCodec_NilAndEmptyPassThrough(t *testing.T) {
	codec := newTestCodec(t)

	assert.Nil(t, codec.Encrypt(nil))
	assert.Nil(t, codec.Decrypt(nil))

	empty := ""
	assert.Equal(t, &empty, codec.Encrypt(&empty))
	assert.Equal(t, &empty, codec.Decrypt(&empty))
}

func TestCodec_WrongKeyYieldsNil(t *testing.T) {
	codec := newTestCodec(t)
	other := newTestCodec(t)

	plaintext := "netbanking-password"
	ciphertext := codec.Encrypt(&plaintext)
	assert.NotNil(t, ciphertext)

	// simulates a rotated key: decryption is swallowed into null, not an error
	assert.Nil(t, other.Decrypt(ciphertext))
}

func TestCodec_GarbageCiphertextYieldsNil(t *testing.T) {
	codec := newTestCodec(t)

	garbage := "not-a-fernet-token"
	assert.Nil(t, codec.Decrypt(&garbage))
}

func TestNewCodec_RejectsBadKey(t *testing.T) {
	_, err := credential.NewCodec("")
	assert.Error(t, err)

	_, err = credential.NewCodec("too-short")
	assert.Error(t, err)
}
