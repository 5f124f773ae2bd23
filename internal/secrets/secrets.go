// Package secrets wraps fernet symmetric encryption for data stored at rest.
// Saved investor profiles contain income figures, so they are never written to
// the database in plaintext.
package secrets

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Cipher encrypts and decrypts byte payloads with a single fernet key.
type Cipher struct {
	key *fernet.Key
}

// NewCipher creates a Cipher from a base64-encoded fernet key.
func NewCipher(encodedKey string) (*Cipher, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("decode fernet key: %w", err)
	}
	return &Cipher{key: key}, nil
}

// GenerateKey returns a fresh base64-encoded fernet key.
func GenerateKey() (string, error) {
	key := new(fernet.Key)
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("generate fernet key: %w", err)
	}
	return key.Encode(), nil
}

// Encrypt signs and encrypts the payload, returning a fernet token.
func (c *Cipher) Encrypt(plaintext []byte) (string, error) {
	token, err := fernet.EncryptAndSign(plaintext, c.key)
	if err != nil {
		return "", fmt.Errorf("encrypt payload: %w", err)
	}
	return string(token), nil
}

// Decrypt verifies and decrypts a fernet token. Tokens do not expire; stored
// plans remain readable indefinitely.
func (c *Cipher) Decrypt(token string) ([]byte, error) {
	plaintext := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{c.key})
	if plaintext == nil {
		return nil, fmt.Errorf("fernet token verification failed")
	}
	return plaintext, nil
}
