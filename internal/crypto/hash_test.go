package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestHashCredentialFormat(t *testing.T) {
	hash, err := HashCredential("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("HashCredential() unexpected error: %v", err)
	}

	// PHC format: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashCredential() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashCredential() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("HashCredential() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("HashCredential() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestVerifyCredentialCorrect(t *testing.T) {
	secret := "my-secure-secret"
	hash, err := HashCredential(secret)
	if err != nil {
		t.Fatalf("HashCredential() unexpected error: %v", err)
	}

	match, err := VerifyCredential(secret, hash)
	if err != nil {
		t.Fatalf("VerifyCredential() unexpected error: %v", err)
	}
	if !match {
		t.Error("VerifyCredential() returned false for correct secret")
	}
}

func TestVerifyCredentialWrong(t *testing.T) {
	hash, err := HashCredential("correct-secret")
	if err != nil {
		t.Fatalf("HashCredential() unexpected error: %v", err)
	}

	match, err := VerifyCredential("wrong-secret", hash)
	if err != nil {
		t.Fatalf("VerifyCredential() unexpected error: %v", err)
	}
	if match {
		t.Error("VerifyCredential() returned true for wrong secret")
	}
}

func TestHashCredentialSaltsEveryHash(t *testing.T) {
	secret := "same-secret"

	hash1, err := HashCredential(secret)
	if err != nil {
		t.Fatalf("HashCredential() unexpected error: %v", err)
	}
	hash2, err := HashCredential(secret)
	if err != nil {
		t.Fatalf("HashCredential() unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("HashCredential() produced identical hashes for same secret (salt should differ)")
	}
}

func TestVerifyCredentialMalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"not phc at all", "invalid-hash-format"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$a2V5"},
		{"missing sections", "$argon2id$v=19$m=65536,t=3,p=2"},
		{"bad base64 salt", "$argon2id$v=19$m=65536,t=3,p=2$!!!$a2V5"},
		{"bad base64 key", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyCredential("secret", tt.encoded); !errors.Is(err, ErrMalformedHash) {
				t.Errorf("VerifyCredential() error = %v, want ErrMalformedHash", err)
			}
		})
	}
}

func TestVerifyCredentialVersionMismatch(t *testing.T) {
	encoded := "$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$a2V5"
	if _, err := VerifyCredential("secret", encoded); !errors.Is(err, ErrHashVersionMismatch) {
		t.Errorf("VerifyCredential() error = %v, want ErrHashVersionMismatch", err)
	}
}
