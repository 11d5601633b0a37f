package adminauth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticator_LoginAndParse(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to generate hash: %v", err)
	}

	a := NewAuthenticator(string(hash), "test-secret")

	token, err := a.Login("correct-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := a.ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if !claims.IsAdmin {
		t.Error("expected IsAdmin true")
	}
}

func TestAuthenticator_LoginWrongKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to generate hash: %v", err)
	}

	a := NewAuthenticator(string(hash), "test-secret")

	if _, err := a.Login("wrong-key"); err == nil {
		t.Error("expected error for wrong key, got nil")
	}
}

func TestAuthenticator_ParseJWTRejectsOtherSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to generate hash: %v", err)
	}

	a := NewAuthenticator(string(hash), "test-secret")
	token, err := a.Login("correct-key")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	other := NewAuthenticator(string(hash), "different-secret")
	if _, err := other.ParseJWT(token); err == nil {
		t.Error("expected error parsing token signed with a different secret")
	}
}
