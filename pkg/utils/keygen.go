package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateBase64Key membuat key acak 32 byte dan mengembalikannya sebagai
// base64 URL-encoded, format yang diminta env PASETO_SECRET.
func GenerateBase64Key(size int) (string, error) {
	if size != 32 {
		return "", fmt.Errorf("PASETO v2 local membutuhkan key 32 byte")
	}

	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("gagal membuat key acak: %w", err)
	}

	return base64.URLEncoding.EncodeToString(key), nil
}
