package controllers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"judging-portal/models"
	"judging-portal/utils"
)

type ScoreController struct{}

const timestampLayout = "2006-01-02 15:04:05"

func (c ScoreController) GetTeams(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var error models.Error

		rows, err := db.Query("SELECT id, name, college, lead_name FROM teams ORDER BY name")
		if err != nil {
			log.Printf("Error fetching teams: %v", err)
			error.Message = "Failed to fetch teams"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}
		defer rows.Close()

		teams := make([]models.Team, 0)
		for rows.Next() {
			var team models.Team
			var college, leadName sql.NullString
			if err := rows.Scan(&team.ID, &team.Name, &college, &leadName); err != nil {
				log.Printf("Error scanning team: %v", err)
				error.Message = "Failed to fetch teams"
				utils.RespondWithError(w, http.StatusInternalServerError, error)
				return
			}
			team.College = utils.NullStringToString(college)
			team.LeadName = utils.NullStringToString(leadName)
			teams = append(teams, team)
		}

		utils.ResponseJSON(w, teams)
	}
}

func (c ScoreController) GetMyScores(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var error models.Error

		claims, err := utils.GetAuthClaims(r)
		if err != nil {
			error.Message = err.Error()
			utils.RespondWithError(w, http.StatusUnauthorized, error)
			return
		}

		query := `
			SELECT s.id, s.judge_id, s.team_id, t.name, s.session_type,
				s.innovation, s.creativity, s.feasibility, s.presentation,
				s.design, s.user_experience, s.comments, s.total_score,
				s.final_score, s.updated_at
			FROM scores s
			JOIN teams t ON s.team_id = t.id
			WHERE s.judge_id = ?
			ORDER BY s.session_type, s.updated_at DESC`

		rows, err := db.Query(query, claims.JudgeID)
		if err != nil {
			log.Printf("Error fetching scores: %v", err)
			error.Message = "Failed to fetch scores"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}
		defer rows.Close()

		scores := make([]models.Score, 0)
		for rows.Next() {
			score, err := scanScore(rows)
			if err != nil {
				log.Printf("Error scanning score: %v", err)
				error.Message = "Failed to fetch scores"
				utils.RespondWithError(w, http.StatusInternalServerError, error)
				return
			}
			scores = append(scores, score)
		}

		utils.ResponseJSON(w, scores)
	}
}

func (c ScoreController) SubmitScore(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SubmitScoreRequest
		var error models.Error

		claims, err := utils.GetAuthClaims(r)
		if err != nil {
			error.Message = err.Error()
			utils.RespondWithError(w, http.StatusUnauthorized, error)
			return
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			error.Message = "Invalid request body."
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		}

		if req.SessionType != SessionMentoring && req.SessionType != SessionJudging {
			error.Message = `Invalid session type. Must be "mentoring" or "judging"`
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		}

		innovation, okI := rubricValue(req.Innovation)
		creativity, okC := rubricValue(req.Creativity)
		feasibility, okF := rubricValue(req.Feasibility)
		presentation, okP := rubricValue(req.Presentation)
		if !okI || !okC || !okF || !okP {
			error.Message = "Innovation, Creativity, Feasibility, and Presentation must be integers between 0 and 10"
			utils.RespondWithError(w, http.StatusBadRequest, error)
			return
		}

		// Design and user experience are judging-only; mentoring stores
		// them as NULL even when the client sends values.
		var design, userExperience *int
		if req.SessionType == SessionJudging {
			d, okD := rubricValue(req.Design)
			u, okU := rubricValue(req.UserExperience)
			if !okD || !okU {
				error.Message = "Design and User Experience must be integers between 0 and 10 for judging sessions"
				utils.RespondWithError(w, http.StatusBadRequest, error)
				return
			}
			design = &d
			userExperience = &u
		}

		var teamID int
		err = db.QueryRow("SELECT id FROM teams WHERE id = ?", req.TeamID).Scan(&teamID)
		if err == sql.ErrNoRows {
			error.Message = "Team not found"
			utils.RespondWithError(w, http.StatusNotFound, error)
			return
		} else if err != nil {
			log.Printf("Error checking team: %v", err)
			error.Message = "Failed to submit score"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}

		totalScore := innovation + creativity + feasibility + presentation
		if design != nil {
			totalScore += *design
		}
		if userExperience != nil {
			totalScore += *userExperience
		}
		finalScore := rowFinalScore(req.SessionType, totalScore)
		updatedAt := time.Now().UTC().Format(timestampLayout)

		score := models.Score{
			JudgeID:        claims.JudgeID,
			TeamID:         req.TeamID,
			SessionType:    req.SessionType,
			Innovation:     innovation,
			Creativity:     creativity,
			Feasibility:    feasibility,
			Presentation:   presentation,
			Design:         design,
			UserExperience: userExperience,
			Comments:       req.Comments,
			TotalScore:     totalScore,
			FinalScore:     finalScore,
			UpdatedAt:      updatedAt,
		}

		if err := upsertScore(db, &score); err != nil {
			log.Printf("Error submitting score: %v", err)
			error.Message = "Failed to submit score"
			utils.RespondWithError(w, http.StatusInternalServerError, error)
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{
			"success": true,
			"message": "Score submitted successfully",
			"score":   score,
		})
	}
}

// upsertScore writes the one row allowed per (judge, team, session). A
// later submission for the same key replaces every rubric field, the
// comment and the timestamp; last write wins.
func upsertScore(db *sql.DB, score *models.Score) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var comments interface{}
	if score.Comments != "" {
		comments = score.Comments
	}

	var existingID int
	err = tx.QueryRow(
		"SELECT id FROM scores WHERE judge_id = ? AND team_id = ? AND session_type = ?",
		score.JudgeID, score.TeamID, score.SessionType,
	).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		result, err := tx.Exec(`
			INSERT INTO scores (judge_id, team_id, session_type, innovation, creativity,
				feasibility, presentation, design, user_experience, comments,
				total_score, final_score, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			score.JudgeID, score.TeamID, score.SessionType,
			score.Innovation, score.Creativity, score.Feasibility, score.Presentation,
			score.Design, score.UserExperience, comments,
			score.TotalScore, score.FinalScore, score.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if id, err := result.LastInsertId(); err == nil {
			score.ID = int(id)
		}
	case err == nil:
		_, err = tx.Exec(`
			UPDATE scores SET innovation = ?, creativity = ?, feasibility = ?,
				presentation = ?, design = ?, user_experience = ?, comments = ?,
				total_score = ?, final_score = ?, updated_at = ?
			WHERE id = ?`,
			score.Innovation, score.Creativity, score.Feasibility, score.Presentation,
			score.Design, score.UserExperience, comments,
			score.TotalScore, score.FinalScore, score.UpdatedAt,
			existingID,
		)
		if err != nil {
			return err
		}
		score.ID = existingID
	default:
		return err
	}

	return tx.Commit()
}

func scanScore(rows *sql.Rows) (models.Score, error) {
	var score models.Score
	var design, userExperience sql.NullInt64
	var comments sql.NullString

	err := rows.Scan(&score.ID, &score.JudgeID, &score.TeamID, &score.TeamName,
		&score.SessionType, &score.Innovation, &score.Creativity, &score.Feasibility,
		&score.Presentation, &design, &userExperience, &comments,
		&score.TotalScore, &score.FinalScore, &score.UpdatedAt)
	if err != nil {
		return score, err
	}

	if design.Valid {
		v := int(design.Int64)
		score.Design = &v
	}
	if userExperience.Valid {
		v := int(userExperience.Int64)
		score.UserExperience = &v
	}
	score.Comments = utils.NullStringToString(comments)

	return score, nil
}
