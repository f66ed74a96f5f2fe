package models

type Team struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	College  string `json:"college"`
	LeadName string `json:"lead_name"`
}
