package credential

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	"go.uber.org/zap"
)

// Stored credentials never expire on their own; the Fernet timestamp is only
// used to reject malformed tokens.
const maxCredentialAge = 100 * 365 * 24 * time.Hour

// Codec encrypts and decrypts individual credential fields with a single
// process-wide Fernet key. It is constructed once at startup and injected
// into the services that store portal passwords.
type Codec struct {
	keys []*fernet.Key
}

// NewCodec builds a codec from the base64-encoded key in
// CREDENTIAL_ENCRYPTION_KEY. A missing or undecodable key is an error; the
// composition root treats it as fatal.
func NewCodec(encodedKey string) (*Codec, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("decode credential encryption key: %w", err)
	}
	return &Codec{keys: []*fernet.Key{key}}, nil
}

// GenerateKey returns a fresh base64-encoded Fernet key.
func GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", err
	}
	return key.Encode(), nil
}

// Encrypt returns the Fernet token for value. Nil and empty values pass
// through unchanged.
func (c *Codec) Encrypt(value *string) *string {
	if value == nil || *value == "" {
		return value
	}
	tok, err := fernet.EncryptAndSign([]byte(*value), c.keys[0])
	if err != nil {
		// only reachable if the random source fails
		zap.L().Error("credential encryption failed", zap.Error(err))
		return nil
	}
	s := string(tok)
	return &s
}

// Decrypt reverses Encrypt. Nil and empty values pass through unchanged.
//
// Any integrity or format failure yields nil instead of an error: a rotated
// key silently turns previously stored passwords into null fields. The
// warning log is the only signal.
func (c *Codec) Decrypt(value *string) *string {
	if value == nil || *value == "" {
		return value
	}
	msg := fernet.VerifyAndDecrypt([]byte(*value), maxCredentialAge, c.keys)
	if msg == nil {
		zap.L().Warn("stored credential could not be decrypted, returning null")
		return nil
	}
	s := string(msg)
	return &s
}
