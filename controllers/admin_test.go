package controllers

import (
	"net/http"
	"testing"

	"judging-portal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitScores(t *testing.T, handler http.HandlerFunc, token string, payload map[string]interface{}) {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/scores/submit", token, payload)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminGuard(t *testing.T) {
	db := newTestDB(t)
	judge := seedJudge(t, db, "Sujith Kumar", "sujith@judges.portal", "judge123", false)
	admin := seedJudge(t, db, "Admin", "admin@judges.portal", "admin123", true)

	adminController := AdminController{}
	handler := AdminVerifyMiddleware(adminController.GetStats(db))

	// No token at all: unauthenticated, not forbidden.
	rec := doJSON(t, handler, http.MethodGet, "/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token without the admin flag: forbidden, not unauthenticated.
	rec = doJSON(t, handler, http.MethodGet, "/admin/stats", tokenFor(t, judge), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp models.Error
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Admin access required", resp.Message)

	rec = doJSON(t, handler, http.MethodGet, "/admin/stats", tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenVerifyMiddlewareRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	score := ScoreController{}
	handler := TokenVerifyMiddleware(score.GetTeams(db))

	rec := doJSON(t, handler, http.MethodGet, "/scores/teams", "not.a.token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResultsAggregation(t *testing.T) {
	db := newTestDB(t)
	judgeA := seedJudge(t, db, "Sujith Kumar", "sujith@judges.portal", "judge123", false)
	judgeB := seedJudge(t, db, "Krishna Rao", "krishna@judges.portal", "judge123", false)
	teamID := seedTeam(t, db, "Echobit", "Siddaganga Institute of Technology")

	score := ScoreController{}

	// Judge A all 8s, judge B all 6s in mentoring: means of 7.
	payloadA := submitPayload(teamID, SessionMentoring)
	for _, dim := range []string{"innovation", "creativity", "feasibility", "presentation"} {
		payloadA[dim] = 8
	}
	submitScores(t, score.SubmitScore(db), tokenFor(t, judgeA), payloadA)

	payloadB := submitPayload(teamID, SessionMentoring)
	for _, dim := range []string{"innovation", "creativity", "feasibility", "presentation"} {
		payloadB[dim] = 6
	}
	submitScores(t, score.SubmitScore(db), tokenFor(t, judgeB), payloadB)

	// Judge A all 10s in judging: the 50-point ceiling.
	payloadJ := submitPayload(teamID, SessionJudging)
	for _, dim := range []string{"innovation", "creativity", "feasibility", "presentation", "design", "user_experience"} {
		payloadJ[dim] = 10
	}
	submitScores(t, score.SubmitScore(db), tokenFor(t, judgeA), payloadJ)

	results, err := buildTeamResults(db)
	require.NoError(t, err)
	require.Len(t, results, 1)

	row := results[0]
	assert.Equal(t, 2, row.MentoringJudgeCount)
	assert.Equal(t, 1, row.JudgingJudgeCount)

	require.NotNil(t, row.MentoringAvgInnovation)
	assert.Equal(t, 7.0, *row.MentoringAvgInnovation)
	assert.Equal(t, 28.0, row.MentoringAvgScore)

	require.NotNil(t, row.JudgingAvgDesign)
	assert.Equal(t, 10.0, *row.JudgingAvgDesign)
	assert.Equal(t, 50.0, row.JudgingAvgScore)

	assert.Equal(t, 78.0, row.TotalScore)
}

func TestResultsIncludeUnscoredTeams(t *testing.T) {
	db := newTestDB(t)
	judge := seedJudge(t, db, "Sujith Kumar", "sujith@judges.portal", "judge123", false)
	scoredID := seedTeam(t, db, "Echobit", "")
	unscoredID := seedTeam(t, db, "Nexora", "")

	score := ScoreController{}
	submitScores(t, score.SubmitScore(db), tokenFor(t, judge), submitPayload(scoredID, SessionMentoring))

	results, err := buildTeamResults(db)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// The unscored team still ranks, with zero subtotals and no means.
	assert.Equal(t, scoredID, results[0].TeamID)
	assert.Equal(t, unscoredID, results[1].TeamID)
	assert.Equal(t, 0.0, results[1].MentoringAvgScore)
	assert.Equal(t, 0.0, results[1].JudgingAvgScore)
	assert.Equal(t, 0.0, results[1].TotalScore)
	assert.Nil(t, results[1].MentoringAvgInnovation)
	assert.Nil(t, results[1].JudgingAvgDesign)
}

func TestResultsOrderingAndTieBreak(t *testing.T) {
	db := newTestDB(t)
	judge := seedJudge(t, db, "Sujith Kumar", "sujith@judges.portal", "judge123", false)
	lowID := seedTeam(t, db, "Zeta", "")
	highID := seedTeam(t, db, "Alpha", "")
	tieOneID := seedTeam(t, db, "TieOne", "")
	tieTwoID := seedTeam(t, db, "TieTwo", "")

	score := ScoreController{}
	token := tokenFor(t, judge)

	low := submitPayload(lowID, SessionMentoring)
	for _, dim := range []string{"innovation", "creativity", "feasibility", "presentation"} {
		low[dim] = 2
	}
	submitScores(t, score.SubmitScore(db), token, low)

	high := submitPayload(highID, SessionMentoring)
	for _, dim := range []string{"innovation", "creativity", "feasibility", "presentation"} {
		high[dim] = 9
	}
	submitScores(t, score.SubmitScore(db), token, high)

	results, err := buildTeamResults(db)
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Highest total first; the two unscored teams tie at 0 and fall
	// back to team id order.
	assert.Equal(t, highID, results[0].TeamID)
	assert.Equal(t, lowID, results[1].TeamID)
	assert.Equal(t, tieOneID, results[2].TeamID)
	assert.Equal(t, tieTwoID, results[3].TeamID)
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	judgeA := seedJudge(t, db, "Sujith Kumar", "sujith@judges.portal", "judge123", false)
	judgeB := seedJudge(t, db, "Krishna Rao", "krishna@judges.portal", "judge123", false)
	admin := seedJudge(t, db, "Admin", "admin@judges.portal", "admin123", true)
	teamOne := seedTeam(t, db, "Echobit", "")
	seedTeam(t, db, "Nexora", "")

	score := ScoreController{}
	submitScores(t, score.SubmitScore(db), tokenFor(t, judgeA), submitPayload(teamOne, SessionMentoring))
	submitScores(t, score.SubmitScore(db), tokenFor(t, judgeB), submitPayload(teamOne, SessionJudging))

	adminController := AdminController{}
	rec := doJSON(t, adminController.GetStats(db), http.MethodGet, "/admin/stats", tokenFor(t, admin), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.Stats
	decodeBody(t, rec, &stats)
	assert.Equal(t, 2, stats.TotalTeams)
	assert.Equal(t, 2, stats.TotalJudges) // the admin is not counted
	assert.Equal(t, 2, stats.TotalEvaluations)
	assert.Equal(t, 1, stats.EvaluatedTeams)
}

func TestDetailedScores(t *testing.T) {
	db := newTestDB(t)
	judge := seedJudge(t, db, "Sujith Kumar", "sujith@judges.portal", "judge123", false)
	teamID := seedTeam(t, db, "Echobit", "")

	score := ScoreController{}
	payload := submitPayload(teamID, SessionJudging)
	payload["comments"] = "Polished demo"
	submitScores(t, score.SubmitScore(db), tokenFor(t, judge), payload)

	scores, err := loadDetailedScores(db, 0)
	require.NoError(t, err)
	require.Len(t, scores, 1)

	// Filtering by a judge with no rows returns an empty set.
	filtered, err := loadDetailedScores(db, judge.ID+1)
	require.NoError(t, err)
	assert.Empty(t, filtered)

	row := scores[0]
	assert.Equal(t, "Sujith Kumar", row.JudgeName)
	assert.Equal(t, "Echobit", row.TeamName)
	assert.Equal(t, SessionJudging, row.SessionType)
	require.NotNil(t, row.Design)
	assert.Equal(t, 45, row.TotalScore)
	assert.Equal(t, 37.5, row.FinalScore)
	assert.Equal(t, "Polished demo", row.Comments)
}

func TestExportReport(t *testing.T) {
	db := newTestDB(t)
	judge := seedJudge(t, db, "Sujith Kumar", "sujith@judges.portal", "judge123", false)
	admin := seedJudge(t, db, "Admin", "admin@judges.portal", "admin123", true)
	teamID := seedTeam(t, db, "Echobit", "Siddaganga Institute of Technology")

	score := ScoreController{}
	submitScores(t, score.SubmitScore(db), tokenFor(t, judge), submitPayload(teamID, SessionMentoring))

	adminController := AdminController{}
	rec := doJSON(t, adminController.ExportReport(db), http.MethodGet, "/admin/export", tokenFor(t, admin), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	body := rec.Body.String()
	assert.Contains(t, body, "Rank,Team Name,College,Mentoring(40),Judging(50),Total(90)")
	assert.Contains(t, body, "Echobit")
	assert.Contains(t, body, "Detailed Scores by Judge")
}
