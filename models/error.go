package models

type Error struct {
	Message string `json:"error"`
}
