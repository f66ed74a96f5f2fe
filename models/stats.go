package models

type Stats struct {
	TotalTeams       int `json:"total_teams"`
	TotalJudges      int `json:"total_judges"`
	TotalEvaluations int `json:"total_evaluations"`
	EvaluatedTeams   int `json:"evaluated_teams"`
}
