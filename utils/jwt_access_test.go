package utils

import (
	"fmt"
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	os.Setenv("GO_ENV", "test")
	InitJWT()
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(JWTSecretKey), nil
	})
	if err != nil {
		t.Fatalf("parsing token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token not valid")
	}
	return parsed.Claims.(jwt.MapClaims)
}

func TestGenerateAccessToken(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateAccessToken("user-1", "session-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims := parseClaims(t, token)
	if claims["user_id"] != "user-1" || claims["session_id"] != "session-1" {
		t.Errorf("claims = %v, want user-1/session-1", claims)
	}
	if claims["iss"] != TokenIssuer {
		t.Errorf("issuer = %v, want %q", claims["iss"], TokenIssuer)
	}
	if _, isRefresh := claims["type"]; isRefresh {
		t.Error("access token carries a refresh type claim")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateRefreshToken("user-1", "session-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims := parseClaims(t, token)
	if claims["type"] != "refresh" {
		t.Errorf("type claim = %v, want refresh", claims["type"])
	}
}
