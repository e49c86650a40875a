//go:build unit

package signer_test

import (
	"strings"
	"testing"

	"mealvoucher/internal/pkg/signer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHMACSigner(t *testing.T) {
	t.Run("accepts 32 byte key", func(t *testing.T) {
		s, err := signer.NewHMACSigner([]byte(strings.Repeat("k", 32)))
		require.NoError(t, err)
		require.NotNil(t, s)
	})

	t.Run("rejects short key", func(t *testing.T) {
		s, err := signer.NewHMACSigner([]byte("too-short"))
		require.Nil(t, s)
		require.ErrorIs(t, err, signer.ErrKeyTooShort)
	})

	t.Run("copies the key", func(t *testing.T) {
		key := []byte(strings.Repeat("k", 32))
		s, err := signer.NewHMACSigner(key)
		require.NoError(t, err)

		sig := s.Sign([]byte("payload"))
		key[0] = 'x'
		assert.Equal(t, sig, s.Sign([]byte("payload")))
	})
}

func TestHMACSigner_SignAndVerify(t *testing.T) {
	key := []byte(strings.Repeat("k", 32))
	s, err := signer.NewHMACSigner(key)
	require.NoError(t, err)

	payload := []byte("MEAL-2025-0001|2025-06-01T00:00:00Z|2025-06-05T00:00:00Z|00000000-0000-0000-0000-000000000001")

	t.Run("signature verifies against original payload", func(t *testing.T) {
		sig := s.Sign(payload)
		assert.Len(t, sig, 64) // hex SHA-256
		assert.True(t, s.Verify(payload, sig))
	})

	t.Run("signing is deterministic", func(t *testing.T) {
		assert.Equal(t, s.Sign(payload), s.Sign(payload))
	})

	t.Run("rejects tampered payload", func(t *testing.T) {
		sig := s.Sign(payload)
		tampered := []byte(strings.Replace(string(payload), "0001", "0002", 1))
		assert.False(t, s.Verify(tampered, sig))
	})

	t.Run("rejects signature from different key", func(t *testing.T) {
		other, err := signer.NewHMACSigner([]byte(strings.Repeat("x", 32)))
		require.NoError(t, err)
		assert.False(t, s.Verify(payload, other.Sign(payload)))
	})

	t.Run("rejects non-hex signature", func(t *testing.T) {
		assert.False(t, s.Verify(payload, "not-hex!"))
	})

	t.Run("rejects truncated signature", func(t *testing.T) {
		sig := s.Sign(payload)
		assert.False(t, s.Verify(payload, sig[:32]))
	})
}
