package controllers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"judging-portal/models"
	"judging-portal/utils"

	"github.com/go-playground/validator/v10"
)

type AuthController struct{}

var validate = validator.New()

func (c AuthController) Login(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		var error models.Error

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			error.Message = "Invalid request body."
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		}

		if err := validate.Struct(req); err != nil {
			error.Message = "Email and password are required."
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var judge models.Judge
		query := "SELECT id, name, email, password_hash, expertise, is_admin FROM judges WHERE email = ?"
		err := db.QueryRow(query, email).Scan(&judge.ID, &judge.Name, &judge.Email, &judge.PasswordHash, &judge.Expertise, &judge.IsAdmin)
		if err == sql.ErrNoRows {
			error.Message = "Invalid email or password"
			utils.RespondWithError(w, http.StatusUnauthorized, error)
			return
		} else if err != nil {
			log.Printf("Error querying judge: %v", err)
			error.Message = "Server error during login"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}

		if !utils.ComparePasswords(judge.PasswordHash, []byte(req.Password)) {
			error.Message = "Invalid email or password"
			utils.RespondWithError(w, http.StatusUnauthorized, error)
			return
		}

		token, err := utils.GenerateToken(judge)
		if err != nil {
			log.Printf("Error generating token: %v", err)
			error.Message = "Server error during login"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}

		utils.ResponseJSON(w, models.LoginResponse{
			Token:     token,
			Name:      judge.Name,
			Email:     judge.Email,
			Expertise: judge.Expertise,
			IsAdmin:   judge.IsAdmin,
		})
	}
}

func (c AuthController) GetMe(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var error models.Error

		claims, err := utils.GetAuthClaims(r)
		if err != nil {
			error.Message = err.Error()
			utils.RespondWithError(w, http.StatusUnauthorized, error)
			return
		}

		var judge models.Judge
		query := "SELECT id, name, email, expertise, is_admin FROM judges WHERE id = ?"
		err = db.QueryRow(query, claims.JudgeID).Scan(&judge.ID, &judge.Name, &judge.Email, &judge.Expertise, &judge.IsAdmin)
		if err == sql.ErrNoRows {
			error.Message = "Judge not found."
			utils.RespondWithError(w, http.StatusNotFound, error)
			return
		} else if err != nil {
			log.Printf("Error querying judge: %v", err)
			error.Message = "Server error."
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}

		utils.ResponseJSON(w, judge)
	}
}
