package util

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
)

// GenerateRandomSlug builds a URL-safe slug from a display name with a short
// random suffix to keep it unique.
func GenerateRandomSlug(name string) string {
	baseSlug := slug.Make(name)
	shortID := shortuuid.New()[:8]

	return fmt.Sprintf("%s-%s", baseSlug, shortID)
}

// GenerateCapsuleCode returns the public identifier used in capsule share links.
func GenerateCapsuleCode() string {
	return shortuuid.New()
}

// GenerateRandomNickname is used when a social-login profile name cannot serve
// as a nickname.
func GenerateRandomNickname() string {
	return fmt.Sprintf("user_%s", shortuuid.New()[:8])
}
