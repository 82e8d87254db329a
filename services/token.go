package services

import (
	"errors"
	"time"

	"notewell/utils"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "notewell"

// GenerateAccessToken issues a short-lived access token for the user.
func GenerateAccessToken(userID, sessionID string) (string, error) {
	return signToken(userID, sessionID, "access",
		time.Duration(utils.JWTExpirationTime)*time.Second)
}

// GenerateRefreshToken issues the long-lived refresh token.
func GenerateRefreshToken(userID, sessionID string) (string, error) {
	return signToken(userID, sessionID, "refresh",
		time.Duration(utils.RefreshTokenExpirationTime)*time.Second)
}

func signToken(userID, sessionID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    userID,
		"session_id": sessionID,
		"type":       tokenType,
		"iss":        tokenIssuer,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}

// ParseToken validates a signed token and returns its claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
