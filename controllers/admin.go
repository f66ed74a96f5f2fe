package controllers

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"judging-portal/models"
	"judging-portal/utils"
)

type AdminController struct{}

func (c AdminController) GetResults(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := buildTeamResults(db)
		if err != nil {
			log.Printf("Error fetching results: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to fetch results"})
			return
		}
		utils.ResponseJSON(w, results)
	}
}

func (c AdminController) GetDetailedScores(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		judgeID := 0
		if raw := r.URL.Query().Get("judge_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "judge_id must be an integer"})
				return
			}
			judgeID = id
		}

		scores, err := loadDetailedScores(db, judgeID)
		if err != nil {
			log.Printf("Error fetching detailed scores: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to fetch detailed scores"})
			return
		}
		utils.ResponseJSON(w, scores)
	}
}

func (c AdminController) GetStats(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var stats models.Stats

		query := `
			SELECT
				(SELECT COUNT(*) FROM teams),
				(SELECT COUNT(*) FROM judges WHERE is_admin = false),
				(SELECT COUNT(*) FROM scores),
				(SELECT COUNT(DISTINCT team_id) FROM scores)`

		err := db.QueryRow(query).Scan(&stats.TotalTeams, &stats.TotalJudges, &stats.TotalEvaluations, &stats.EvaluatedTeams)
		if err != nil {
			log.Printf("Error fetching stats: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to fetch statistics"})
			return
		}

		utils.ResponseJSON(w, stats)
	}
}

// ExportReport streams the full report as CSV: the ranked leaderboard
// followed by every score row by judge. It reuses the same aggregation
// as GetResults so the export can never disagree with the dashboard.
func (c AdminController) ExportReport(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := buildTeamResults(db)
		if err != nil {
			log.Printf("Error building export: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to export report"})
			return
		}
		detailed, err := loadDetailedScores(db, 0)
		if err != nil {
			log.Printf("Error building export: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to export report"})
			return
		}

		filename := fmt.Sprintf("results_%s.csv", time.Now().UTC().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)

		cw := csv.NewWriter(w)
		defer cw.Flush()

		cw.Write([]string{"Final Results"})
		cw.Write([]string{"Rank", "Team Name", "College", "Mentoring(40)", "Judging(50)", "Total(90)", "Mentoring Judges", "Judging Judges"})
		for i, row := range results {
			cw.Write([]string{
				strconv.Itoa(i + 1),
				row.TeamName,
				row.College,
				formatScore(row.MentoringAvgScore),
				formatScore(row.JudgingAvgScore),
				formatScore(row.TotalScore),
				strconv.Itoa(row.MentoringJudgeCount),
				strconv.Itoa(row.JudgingJudgeCount),
			})
		}

		cw.Write(nil)
		cw.Write([]string{"Detailed Scores by Judge"})
		cw.Write([]string{"Judge Name", "Expertise", "Team Name", "Session Type", "Innovation", "Creativity", "Feasibility", "Presentation", "Design", "User Experience", "Score", "Comments"})
		for _, s := range detailed {
			cw.Write([]string{
				s.JudgeName,
				s.Expertise,
				s.TeamName,
				s.SessionType,
				strconv.Itoa(s.Innovation),
				strconv.Itoa(s.Creativity),
				strconv.Itoa(s.Feasibility),
				strconv.Itoa(s.Presentation),
				formatOptionalInt(s.Design),
				formatOptionalInt(s.UserExperience),
				formatScore(s.FinalScore),
				s.Comments,
			})
		}
	}
}

// buildTeamResults is the single authoritative aggregation: per-dimension
// means per team and session, session subtotals on the 40/50-point
// scales, and the combined total. Teams without scores in a session get
// a 0 subtotal but nil means, so "no data" stays distinct from "scored
// zero". Ordered by total descending, ties broken by team id ascending.
func buildTeamResults(db *sql.DB) ([]models.TeamResult, error) {
	teamRows, err := db.Query("SELECT id, name, college FROM teams ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer teamRows.Close()

	results := make([]models.TeamResult, 0)
	index := make(map[int]int)
	for teamRows.Next() {
		var result models.TeamResult
		var college sql.NullString
		if err := teamRows.Scan(&result.TeamID, &result.TeamName, &college); err != nil {
			return nil, err
		}
		result.College = utils.NullStringToString(college)
		index[result.TeamID] = len(results)
		results = append(results, result)
	}
	if err := teamRows.Err(); err != nil {
		return nil, err
	}

	aggQuery := `
		SELECT team_id, session_type, COUNT(*),
			AVG(innovation), AVG(creativity), AVG(feasibility), AVG(presentation),
			AVG(design), AVG(user_experience)
		FROM scores
		GROUP BY team_id, session_type`

	aggRows, err := db.Query(aggQuery)
	if err != nil {
		return nil, err
	}
	defer aggRows.Close()

	for aggRows.Next() {
		var teamID, count int
		var sessionType string
		var innovation, creativity, feasibility, presentation float64
		var design, userExperience sql.NullFloat64

		err := aggRows.Scan(&teamID, &sessionType, &count,
			&innovation, &creativity, &feasibility, &presentation,
			&design, &userExperience)
		if err != nil {
			return nil, err
		}

		i, ok := index[teamID]
		if !ok {
			continue
		}
		result := &results[i]

		switch sessionType {
		case SessionMentoring:
			result.MentoringJudgeCount = count
			result.MentoringAvgInnovation = roundedMean(innovation)
			result.MentoringAvgCreativity = roundedMean(creativity)
			result.MentoringAvgFeasibility = roundedMean(feasibility)
			result.MentoringAvgPresentation = roundedMean(presentation)
			result.MentoringAvgScore = round2(mentoringSubtotal(innovation, creativity, feasibility, presentation))
		case SessionJudging:
			result.JudgingJudgeCount = count
			result.JudgingAvgInnovation = roundedMean(innovation)
			result.JudgingAvgCreativity = roundedMean(creativity)
			result.JudgingAvgFeasibility = roundedMean(feasibility)
			result.JudgingAvgPresentation = roundedMean(presentation)
			result.JudgingAvgDesign = roundedMean(design.Float64)
			result.JudgingAvgUserExperience = roundedMean(userExperience.Float64)
			result.JudgingAvgScore = round2(judgingSubtotal(innovation, creativity, feasibility, presentation, design.Float64, userExperience.Float64))
		}
	}
	if err := aggRows.Err(); err != nil {
		return nil, err
	}

	for i := range results {
		results[i].TotalScore = round2(results[i].MentoringAvgScore + results[i].JudgingAvgScore)
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].TotalScore != results[b].TotalScore {
			return results[a].TotalScore > results[b].TotalScore
		}
		return results[a].TeamID < results[b].TeamID
	})

	return results, nil
}

// loadDetailedScores returns every score row with judge and team names
// attached. A judgeID of 0 means no filter.
func loadDetailedScores(db *sql.DB, judgeID int) ([]models.DetailedScore, error) {
	query := `
		SELECT j.name, j.expertise, t.name, s.session_type,
			s.innovation, s.creativity, s.feasibility, s.presentation,
			s.design, s.user_experience, s.total_score, s.final_score,
			s.comments, s.updated_at
		FROM scores s
		JOIN judges j ON s.judge_id = j.id
		JOIN teams t ON s.team_id = t.id`

	args := make([]interface{}, 0, 1)
	if judgeID != 0 {
		query += " WHERE s.judge_id = ?"
		args = append(args, judgeID)
	}
	query += " ORDER BY t.name, s.session_type, j.name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make([]models.DetailedScore, 0)
	for rows.Next() {
		var s models.DetailedScore
		var design, userExperience sql.NullInt64
		var comments sql.NullString

		err := rows.Scan(&s.JudgeName, &s.Expertise, &s.TeamName, &s.SessionType,
			&s.Innovation, &s.Creativity, &s.Feasibility, &s.Presentation,
			&design, &userExperience, &s.TotalScore, &s.FinalScore,
			&comments, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}

		if design.Valid {
			v := int(design.Int64)
			s.Design = &v
		}
		if userExperience.Valid {
			v := int(userExperience.Int64)
			s.UserExperience = &v
		}
		s.Comments = utils.NullStringToString(comments)

		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scores, nil
}

func roundedMean(v float64) *float64 {
	r := round1(v)
	return &r
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
