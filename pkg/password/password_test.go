package password

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	plain := "Password123"

	hashed, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hashed == plain {
		t.Fatal("hash tidak boleh sama dengan plaintext")
	}

	if !CheckPasswordHash(plain, hashed) {
		t.Error("password benar harus cocok dengan hash-nya")
	}
	if CheckPasswordHash("PasswordSalah", hashed) {
		t.Error("password salah tidak boleh cocok")
	}
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	first, err := HashPassword("Password123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := HashPassword("Password123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if first == second {
		t.Error("dua hash dari plaintext sama harus berbeda karena salt")
	}
}
