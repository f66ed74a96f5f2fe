package models

type Judge struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Expertise    string `json:"expertise,omitempty"`
	IsAdmin      bool   `json:"is_admin"`
}
