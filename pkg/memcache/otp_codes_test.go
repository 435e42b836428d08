package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOtpCodesSingleUse(t *testing.T) {
	store := NewOtpCodes()
	store.Set("dev@example.com", "hashed", time.Minute)

	hash, ok := store.Peek("dev@example.com")
	require.True(t, ok)
	require.Equal(t, "hashed", hash)

	require.Equal(t, "hashed", store.Consume("dev@example.com"))
	require.Equal(t, "", store.Consume("dev@example.com"))

	_, ok = store.Peek("dev@example.com")
	require.False(t, ok)
}

func TestOtpCodesExpiry(t *testing.T) {
	store := NewOtpCodes()
	store.Set("dev@example.com", "hashed", -time.Second)

	_, ok := store.Peek("dev@example.com")
	require.False(t, ok)
	require.Equal(t, "", store.Consume("dev@example.com"))
}

func TestOtpCodesOverwrite(t *testing.T) {
	store := NewOtpCodes()
	store.Set("dev@example.com", "first", time.Minute)
	store.Set("dev@example.com", "second", time.Minute)
	require.Equal(t, "second", store.Consume("dev@example.com"))
}
