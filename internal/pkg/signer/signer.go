// Package signer provides keyed integrity signatures for voucher payloads.
package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// MinKeyLength is the minimum accepted key size in bytes.
const MinKeyLength = 32

var ErrKeyTooShort = errors.New("signing key must be at least 32 bytes")

type Signer interface {
	Sign(payload []byte) string
	Verify(payload []byte, signature string) bool
}

// HMACSigner signs payloads with HMAC-SHA256 and emits fixed-length hex
// digests. Verification is constant-time.
type HMACSigner struct {
	key []byte
}

func NewHMACSigner(key []byte) (*HMACSigner, error) {
	if len(key) < MinKeyLength {
		return nil, ErrKeyTooShort
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &HMACSigner{key: k}, nil
}

func (s *HMACSigner) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *HMACSigner) Verify(payload []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, s.key)
	mac.Write(payload)
	// hmac.Equal is constant-time
	return hmac.Equal(mac.Sum(nil), expected)
}
