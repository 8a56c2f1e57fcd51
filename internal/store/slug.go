package store

import (
	"crypto/rand"
	"fmt"
)

// SlugLength is the length of a generated share slug.
const SlugLength = 10

const slugAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// NewSlug returns a random URL-safe share slug. The alphabet has exactly 64
// symbols so masking a random byte keeps the distribution uniform.
func NewSlug() (string, error) {
	buf := make([]byte, SlugLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	for i, b := range buf {
		buf[i] = slugAlphabet[b&63]
	}
	return string(buf), nil
}

// ValidSlug reports whether s could have been produced by NewSlug. Handlers
// use it to reject junk before touching the database.
func ValidSlug(s string) bool {
	if len(s) != SlugLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
