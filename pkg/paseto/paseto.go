package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"

	"Sistem-Absensi-Karyawan/models"
)

// Maker membungkus enkripsi/dekripsi token PASETO v2 local.
type Maker struct {
	instance     *paseto.V2
	symmetricKey []byte
}

// NewMaker membuat Maker dari secret base64 URL-encoded 32 byte.
func NewMaker(secretBase64 string) (*Maker, error) {
	key, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("PASETO_SECRET bukan base64 URL-encoded yang valid: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("PASETO_SECRET harus tepat 32 byte setelah decode, dapat %d byte", len(key))
	}

	return &Maker{
		instance:     paseto.NewV2(),
		symmetricKey: key,
	}, nil
}

// GenerateToken menerbitkan token untuk satu user, berlaku 24 jam.
func (m *Maker) GenerateToken(user *models.User) (string, error) {
	now := time.Now()

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: now.Add(24 * time.Hour),
		NotBefore:  now,
	}

	token.Set("user_uuid", user.UUID)
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return m.instance.Encrypt(m.symmetricKey, token, "")
}

// ValidateToken mendekripsi dan memvalidasi token lalu mengembalikan claims.
func (m *Maker) ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.instance.Decrypt(tokenString, m.symmetricKey, &token, &footer); err != nil {
		return nil, fmt.Errorf("gagal mendekripsi token paseto: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("validasi token gagal: %w", err)
	}

	claims := &models.Claims{
		UserUUID: token.Get("user_uuid"),
		Email:    token.Get("email"),
		Role:     token.Get("role"),
	}
	if claims.UserUUID == "" {
		return nil, fmt.Errorf("token tidak memuat user_uuid")
	}

	return claims, nil
}
