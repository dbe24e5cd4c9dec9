package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	password := "Secret!Pass123"

	hashedPassword, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashedPassword)

	err = CheckPassword(password, hashedPassword)
	require.NoError(t, err)

	err = CheckPassword("WrongPass456!", hashedPassword)
	require.Error(t, err)

	// Same password hashes differently each time.
	hashedAgain, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, hashedPassword, hashedAgain)
}

func TestGenerateRandomSlug(t *testing.T) {
	slug := GenerateRandomSlug("Our Summer Album")
	require.True(t, strings.HasPrefix(slug, "our-summer-album-"))

	other := GenerateRandomSlug("Our Summer Album")
	require.NotEqual(t, slug, other)
}

func TestGenerateCapsuleCode(t *testing.T) {
	code := GenerateCapsuleCode()
	require.NotEmpty(t, code)
	require.NotEqual(t, code, GenerateCapsuleCode())
}
