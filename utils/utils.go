package utils

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"judging-portal/models"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the lifetime of an issued session token. There is no
// refresh endpoint; expired tokens require a fresh login.
const TokenTTL = 12 * time.Hour

func RespondWithError(w http.ResponseWriter, status int, error models.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(error); err != nil {
		log.Printf("Error encoding error response: %v", err)
	}
}

func ResponseJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode JSON", http.StatusInternalServerError)
	}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), password)
	return err == nil
}

// GenerateToken issues a signed session token for a judge. The token is
// self-contained; everything the handlers need is in the claims.
func GenerateToken(judge models.Judge) (string, error) {
	secret := os.Getenv("SECRET")
	if secret == "" {
		return "", errors.New("SECRET environment variable is not set")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":      "judging-portal",
		"judge_id": judge.ID,
		"name":     judge.Name,
		"email":    judge.Email,
		"is_admin": judge.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	secret := os.Getenv("SECRET")
	if secret == "" {
		return nil, errors.New("SECRET environment variable is not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, errors.New("token expired")
			}
		}
		return nil, err
	}

	return token, nil
}

// GetAuthClaims extracts the caller's identity from the Authorization
// header. Any failure here means the request is unauthenticated.
func GetAuthClaims(r *http.Request) (models.AuthClaims, error) {
	var auth models.AuthClaims

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return auth, errors.New("Authorization header missing")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return auth, errors.New("Invalid Authorization header format")
	}

	token, err := ParseToken(parts[1])
	if err != nil || !token.Valid {
		return auth, errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return auth, errors.New("Invalid token claims")
	}

	judgeID, ok := claims["judge_id"].(float64)
	if !ok {
		return auth, errors.New("judge_id not found in token")
	}
	auth.JudgeID = int(judgeID)

	if name, ok := claims["name"].(string); ok {
		auth.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		auth.Email = email
	}
	if isAdmin, ok := claims["is_admin"].(bool); ok {
		auth.IsAdmin = isAdmin
	}

	return auth, nil
}

func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
