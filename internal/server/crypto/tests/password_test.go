package tests

import (
	"strings"
	"testing"

	crypt "github.com/IvanChernomyrdin/go-userhub/internal/server/crypto"
)

func argonParams() crypt.PasswordParams {
	return crypt.PasswordParams{
		Hasher: "argon2id",
		Argon2: crypt.Argon2Params{
			Time:      1,
			MemoryKiB: 32 * 1024,
			Threads:   1,
			KeyLen:    32,
			SaltLen:   16,
		},
	}
}

func bcryptParams() crypt.PasswordParams {
	// cost минимальный, чтобы тесты не ждали
	return crypt.PasswordParams{
		Hasher:     "bcrypt",
		BcryptCost: 4,
	}
}

// Хэширование и успешная проверка (argon2id)
func TestHashAndVerifyPassword_Argon2_OK(t *testing.T) {
	password := "super-secret-password"

	hash, err := crypt.HashPassword(password, argonParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "argon2id$") {
		t.Fatalf("expected argon2id hash, got %q", hash)
	}

	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to be valid")
	}
}

// Хэширование и успешная проверка (bcrypt)
func TestHashAndVerifyPassword_Bcrypt_OK(t *testing.T) {
	password := "super-secret-password"

	hash, err := crypt.HashPassword(password, bcryptParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to be valid")
	}
}

// Неверный пароль
func TestVerifyPassword_InvalidPassword(t *testing.T) {
	for _, params := range []crypt.PasswordParams{argonParams(), bcryptParams()} {
		hash, err := crypt.HashPassword("correct-password", params)
		if err != nil {
			t.Fatalf("HashPassword error: %v", err)
		}

		ok, err := crypt.VerifyPassword("wrong-password", hash)
		if err != nil {
			t.Fatalf("VerifyPassword error: %v", err)
		}
		if ok {
			t.Fatalf("expected %s hash to reject wrong password", params.Hasher)
		}
	}
}

// Сменили hasher в конфиге — старые хэши всё ещё проверяются
func TestVerifyPassword_HasherSwitch(t *testing.T) {
	hash, err := crypt.HashPassword("secret1", bcryptParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	// проверка идёт по префиксу хэша, параметры argon тут не мешают
	ok, err := crypt.VerifyPassword("secret1", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected bcrypt hash to verify after hasher switch")
	}
}

// Пустой пароль
func TestHashPassword_EmptyPassword(t *testing.T) {
	if _, err := crypt.HashPassword("   ", argonParams()); err == nil {
		t.Fatal("expected error for empty password")
	}
}

// Неизвестный алгоритм
func TestHashPassword_UnknownHasher(t *testing.T) {
	if _, err := crypt.HashPassword("secret1", crypt.PasswordParams{Hasher: "md5"}); err == nil {
		t.Fatal("expected error for unknown hasher")
	}
}

// Битый формат хэша
func TestVerifyPassword_InvalidFormat(t *testing.T) {
	if _, err := crypt.VerifyPassword("secret1", "not-a-hash"); err == nil {
		t.Fatal("expected error for invalid hash format")
	}
}
