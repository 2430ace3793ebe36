package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if hash == "admin123" {
		t.Fatal("hash must not equal the plain password")
	}
	if !CheckPassword("admin123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("admin124", hash) {
		t.Error("wrong password accepted")
	}
}

func TestGenerateRefreshTokenUnique(t *testing.T) {
	a, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	b, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	if a == b {
		t.Error("two refresh tokens should not collide")
	}
	if len(a) < 32 {
		t.Errorf("token too short: %d chars", len(a))
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "dra@estudio.com", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("user_id = %q, want user-1", claims.UserID)
	}
	if claims.Email != "dra@estudio.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Role != "ADMIN" {
		t.Errorf("role = %q, want ADMIN", claims.Role)
	}
}

func TestValidateAccessTokenRejectsTampered(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "dra@estudio.com", "USER")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := ValidateAccessToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := ValidateAccessToken("garbage"); err == nil {
		t.Error("garbage token accepted")
	}
}
