package utils

import (
	"database/sql"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"judging-portal/models"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("SECRET", "test-secret")
	os.Exit(m.Run())
}

func TestTokenRoundTrip(t *testing.T) {
	judge := models.Judge{ID: 7, Name: "Sujith Kumar", Email: "sujith@judges.portal", IsAdmin: true}

	token, err := GenerateToken(judge)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	req := httptest.NewRequest("GET", "/scores/teams", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	claims, err := GetAuthClaims(req)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.JudgeID)
	assert.Equal(t, "Sujith Kumar", claims.Name)
	assert.Equal(t, "sujith@judges.portal", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestGetAuthClaimsMissingHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/scores/teams", nil)

	_, err := GetAuthClaims(req)
	assert.EqualError(t, err, "Authorization header missing")
}

func TestGetAuthClaimsBadFormat(t *testing.T) {
	req := httptest.NewRequest("GET", "/scores/teams", nil)
	req.Header.Set("Authorization", "Basic abc123")

	_, err := GetAuthClaims(req)
	assert.EqualError(t, err, "Invalid Authorization header format")
}

func TestExpiredTokenRejected(t *testing.T) {
	claims := jwt.MapClaims{
		"iss":      "judging-portal",
		"judge_id": 7,
		"is_admin": false,
		"iat":      time.Now().Add(-13 * time.Hour).Unix(),
		"exp":      time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(os.Getenv("SECRET")))
	require.NoError(t, err)

	_, err = ParseToken(expired)
	assert.EqualError(t, err, "token expired")

	req := httptest.NewRequest("GET", "/scores/teams", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	_, err = GetAuthClaims(req)
	assert.EqualError(t, err, "Invalid or expired token")
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	claims := jwt.MapClaims{
		"judge_id": 7,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = ParseToken(forged)
	assert.Error(t, err)
}

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("judge123")
	require.NoError(t, err)
	assert.NotEqual(t, "judge123", hash)

	assert.True(t, ComparePasswords(hash, []byte("judge123")))
	assert.False(t, ComparePasswords(hash, []byte("judge124")))
}

func TestNullStringToString(t *testing.T) {
	assert.Equal(t, "x", NullStringToString(sql.NullString{String: "x", Valid: true}))
	assert.Equal(t, "", NullStringToString(sql.NullString{}))
}
