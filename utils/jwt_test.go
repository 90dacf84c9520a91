package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("66408bcd87e2e3971500ce0c", "test-secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, "66408bcd87e2e3971500ce0c", claims["user_id"])
	assert.NotEmpty(t, claims["jti"])
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("66408bcd87e2e3971500ce0c", "test-secret")
	assert.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": "66408bcd87e2e3971500ce0c",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = ParseJWT(token, "test-secret")
	assert.Error(t, err)
}
