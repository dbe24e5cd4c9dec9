package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func randomSecretKey() string {
	return strings.Repeat("s", minSecretKeySize)
}

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(randomSecretKey())
	require.NoError(t, err)

	userID := int64(42)
	duration := time.Minute

	issuedAt := time.Now()
	expiresAt := issuedAt.Add(duration)

	token, payload, err := maker.CreateToken(userID, duration)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, payload)

	payload, err = maker.VerifyToken(token)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	gotUserID, err := payload.UserID()
	require.NoError(t, err)
	require.Equal(t, userID, gotUserID)
	require.WithinDuration(t, issuedAt, payload.IssuedAt.Time, time.Second)
	require.WithinDuration(t, expiresAt, payload.ExpiresAt.Time, time.Second)
}

func TestExpiredJWTToken(t *testing.T) {
	maker, err := NewJWTMaker(randomSecretKey())
	require.NoError(t, err)

	token, payload, err := maker.CreateToken(42, -time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, payload)

	payload, err = maker.VerifyToken(token)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrExpiredToken)
	require.Nil(t, payload)
}

func TestInvalidJWTToken(t *testing.T) {
	maker, err := NewJWTMaker(randomSecretKey())
	require.NoError(t, err)

	payload, err := maker.VerifyToken("not-a-token")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Nil(t, payload)
}

func TestTooShortSecretKey(t *testing.T) {
	maker, err := NewJWTMaker("short")
	require.Error(t, err)
	require.Nil(t, maker)
}
