package models

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Expertise string `json:"expertise"`
	IsAdmin   bool   `json:"is_admin"`
}

// AuthClaims is the identity extracted from a verified bearer token.
type AuthClaims struct {
	JudgeID int
	Name    string
	Email   string
	IsAdmin bool
}
