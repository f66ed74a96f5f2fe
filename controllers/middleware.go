package controllers

import (
	"net/http"

	"judging-portal/models"
	"judging-portal/utils"
)

// TokenVerifyMiddleware rejects requests without a valid bearer token.
// Handlers behind it re-read the claims via utils.GetAuthClaims.
func TokenVerifyMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.GetAuthClaims(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}
		next.ServeHTTP(w, r)
	}
}

// AdminVerifyMiddleware additionally requires the admin claim. A valid
// non-admin token gets 403, never 401; the token check runs first.
func AdminVerifyMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := utils.GetAuthClaims(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}
		if !claims.IsAdmin {
			utils.RespondWithError(w, http.StatusForbidden, models.Error{Message: "Admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	}
}

// CORSMiddleware allows the single-page frontend to call the API from
// another origin and answers preflight requests.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
