package paseto

import (
	"encoding/base64"
	"testing"

	"Sistem-Absensi-Karyawan/models"
)

func testSecret() string {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return base64.URLEncoding.EncodeToString(key)
}

func TestNewMaker(t *testing.T) {
	if _, err := NewMaker(testSecret()); err != nil {
		t.Fatalf("secret valid ditolak: %v", err)
	}

	if _, err := NewMaker("bukan base64!!"); err == nil {
		t.Error("secret bukan base64 harus ditolak")
	}

	short := base64.URLEncoding.EncodeToString([]byte("pendek"))
	if _, err := NewMaker(short); err == nil {
		t.Error("secret kurang dari 32 byte harus ditolak")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	maker, err := NewMaker(testSecret())
	if err != nil {
		t.Fatalf("NewMaker returned error: %v", err)
	}

	user := &models.User{
		UUID:  "3b241101-e2bb-4255-8caf-4136c566a962",
		Email: "budi.santoso@gmail.com",
		Role:  models.RoleKaryawan,
	}

	token, err := maker.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := maker.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}

	if claims.UserUUID != user.UUID {
		t.Errorf("UserUUID = %q, want %q", claims.UserUUID, user.UUID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Role != models.RoleKaryawan {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleKaryawan)
	}
	if claims.IsAdmin() {
		t.Error("karyawan tidak boleh dianggap admin")
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	maker, err := NewMaker(testSecret())
	if err != nil {
		t.Fatalf("NewMaker returned error: %v", err)
	}

	other := make([]byte, 32)
	for i := range other {
		other[i] = byte(255 - i)
	}
	otherMaker, err := NewMaker(base64.URLEncoding.EncodeToString(other))
	if err != nil {
		t.Fatalf("NewMaker returned error: %v", err)
	}

	token, err := maker.GenerateToken(&models.User{UUID: "abc", Email: "a@b.c", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := otherMaker.ValidateToken(token); err == nil {
		t.Error("token yang dienkripsi dengan key lain harus ditolak")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	maker, err := NewMaker(testSecret())
	if err != nil {
		t.Fatalf("NewMaker returned error: %v", err)
	}

	if _, err := maker.ValidateToken("v2.local.bukan-token"); err == nil {
		t.Error("string sembarang harus ditolak")
	}
}
