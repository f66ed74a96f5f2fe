package models

// TeamResult is the derived leaderboard row for one team. Per-dimension
// averages are nil when no judge has scored that session; the subtotals
// contribute 0 in that case so every team still ranks.
type TeamResult struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
	College  string `json:"college"`

	MentoringJudgeCount int `json:"mentoring_judge_count"`
	JudgingJudgeCount   int `json:"judging_judge_count"`

	MentoringAvgInnovation   *float64 `json:"mentoring_avg_innovation"`
	MentoringAvgCreativity   *float64 `json:"mentoring_avg_creativity"`
	MentoringAvgFeasibility  *float64 `json:"mentoring_avg_feasibility"`
	MentoringAvgPresentation *float64 `json:"mentoring_avg_presentation"`
	MentoringAvgScore        float64  `json:"mentoring_avg_score"`

	JudgingAvgInnovation     *float64 `json:"judging_avg_innovation"`
	JudgingAvgCreativity     *float64 `json:"judging_avg_creativity"`
	JudgingAvgFeasibility    *float64 `json:"judging_avg_feasibility"`
	JudgingAvgPresentation   *float64 `json:"judging_avg_presentation"`
	JudgingAvgDesign         *float64 `json:"judging_avg_design"`
	JudgingAvgUserExperience *float64 `json:"judging_avg_user_experience"`
	JudgingAvgScore          float64  `json:"judging_avg_score"`

	TotalScore float64 `json:"total_score"`
}
