package web

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 100_000
	keyLength        = 32
	saltLength       = 16
	tokenLength      = 24
)

// ErrInvalidPassphrase is returned when the presented passphrase does
// not match the configured one.
var ErrInvalidPassphrase = errors.New("invalid passphrase")

// Authenticator exchanges the service passphrase for bearer tokens.
// The passphrase is kept only as a PBKDF2-SHA256 key over a per-process
// random salt; presented passphrases are derived the same way and
// compared in constant time.
type Authenticator struct {
	salt []byte
	key  []byte

	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewAuthenticator derives the verification key for a passphrase
func NewAuthenticator(passphrase string) (*Authenticator, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	return &Authenticator{
		salt:   salt,
		key:    pbkdf2.Key([]byte(passphrase), salt, pbkdf2Iterations, keyLength, sha256.New),
		tokens: make(map[string]struct{}),
	}, nil
}

// IssueToken verifies the passphrase and returns a new bearer token
func (a *Authenticator) IssueToken(passphrase string) (string, error) {
	candidate := pbkdf2.Key([]byte(passphrase), a.salt, pbkdf2Iterations, keyLength, sha256.New)
	if subtle.ConstantTimeCompare(candidate, a.key) != 1 {
		return "", ErrInvalidPassphrase
	}

	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	token := hex.EncodeToString(buf)

	a.mu.Lock()
	a.tokens[token] = struct{}{}
	a.mu.Unlock()
	return token, nil
}

// ValidToken reports whether token was issued by this authenticator
func (a *Authenticator) ValidToken(token string) bool {
	a.mu.RLock()
	_, ok := a.tokens[token]
	a.mu.RUnlock()
	return ok
}
