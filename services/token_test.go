package services

import (
	"testing"

	"notewell/utils"
)

func initTestJWT() {
	utils.JWTSecretKey = "test_secret_key"
	utils.JWTExpirationTime = 3600
	utils.RefreshTokenExpirationTime = 604800
}

func TestAccessTokenRoundTrip(t *testing.T) {
	initTestJWT()

	token, err := GenerateAccessToken("user-1", "session-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims["user_id"] != "user-1" {
		t.Errorf("user_id = %v, want user-1", claims["user_id"])
	}
	if claims["session_id"] != "session-1" {
		t.Errorf("session_id = %v, want session-1", claims["session_id"])
	}
	if claims["type"] != "access" {
		t.Errorf("type = %v, want access", claims["type"])
	}
}

func TestRefreshTokenType(t *testing.T) {
	initTestJWT()

	token, err := GenerateRefreshToken("user-1", "session-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims["type"] != "refresh" {
		t.Errorf("type = %v, want refresh", claims["type"])
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	initTestJWT()

	token, err := GenerateAccessToken("user-1", "session-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := ParseToken(token + "x"); err == nil {
		t.Error("tampered token parsed successfully")
	}

	utils.JWTSecretKey = "different_secret"
	if _, err := ParseToken(token); err == nil {
		t.Error("token signed with another key parsed successfully")
	}
}
