package models

// Score is one judge's evaluation of one team in one session.
// Design and UserExperience are only present for "judging" sessions.
type Score struct {
	ID             int     `json:"id"`
	JudgeID        int     `json:"judge_id"`
	TeamID         int     `json:"team_id"`
	TeamName       string  `json:"team_name,omitempty"`
	SessionType    string  `json:"session_type"`
	Innovation     int     `json:"innovation"`
	Creativity     int     `json:"creativity"`
	Feasibility    int     `json:"feasibility"`
	Presentation   int     `json:"presentation"`
	Design         *int    `json:"design"`
	UserExperience *int    `json:"user_experience"`
	Comments       string  `json:"comments,omitempty"`
	TotalScore     int     `json:"total_score"`
	FinalScore     float64 `json:"final_score"`
	UpdatedAt      string  `json:"updated_at"`
}

// SubmitScoreRequest carries rubric values as float pointers so that
// missing and fractional inputs can be told apart during validation.
type SubmitScoreRequest struct {
	TeamID         int      `json:"team_id"`
	SessionType    string   `json:"session_type"`
	Innovation     *float64 `json:"innovation"`
	Creativity     *float64 `json:"creativity"`
	Feasibility    *float64 `json:"feasibility"`
	Presentation   *float64 `json:"presentation"`
	Design         *float64 `json:"design"`
	UserExperience *float64 `json:"user_experience"`
	Comments       string   `json:"comments"`
}
