package models

type DetailedScore struct {
	JudgeName      string  `json:"judge_name"`
	Expertise      string  `json:"expertise"`
	TeamName       string  `json:"team_name"`
	SessionType    string  `json:"session_type"`
	Innovation     int     `json:"innovation"`
	Creativity     int     `json:"creativity"`
	Feasibility    int     `json:"feasibility"`
	Presentation   int     `json:"presentation"`
	Design         *int    `json:"design"`
	UserExperience *int    `json:"user_experience"`
	TotalScore     int     `json:"total_score"`
	FinalScore     float64 `json:"final_score"`
	Comments       string  `json:"comments"`
	UpdatedAt      string  `json:"updated_at"`
}
