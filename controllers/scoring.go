package controllers

import "math"

const (
	SessionMentoring = "mentoring"
	SessionJudging   = "judging"
)

// Session ceilings: mentoring is scored out of 40 across four dimensions,
// judging out of 50 across six. The scale factors are fixed so that a
// board of all 10s lands exactly on the ceiling regardless of judge count.
const (
	mentoringScale = 40.0 / 40.0 // four dimensions, raw max 40
	judgingScale   = 50.0 / 60.0 // six dimensions, raw max 60
)

// mentoringSubtotal converts the four per-dimension means into the
// 40-point mentoring subtotal.
func mentoringSubtotal(innovation, creativity, feasibility, presentation float64) float64 {
	return (innovation + creativity + feasibility + presentation) * mentoringScale
}

// judgingSubtotal converts the six per-dimension means into the 50-point
// judging subtotal.
func judgingSubtotal(innovation, creativity, feasibility, presentation, design, userExperience float64) float64 {
	return (innovation + creativity + feasibility + presentation + design + userExperience) * judgingScale
}

// rowFinalScore scales a single score row's raw rubric sum to its
// session's point ceiling.
func rowFinalScore(sessionType string, totalScore int) float64 {
	if sessionType == SessionJudging {
		return round2(float64(totalScore) * judgingScale)
	}
	return round2(float64(totalScore) * mentoringScale)
}

// rubricValue checks that a submitted rubric value is present, integral
// and within [0,10]. Fractional JSON numbers fail here rather than at
// decode time so the caller gets a range error, not a parse error.
func rubricValue(v *float64) (int, bool) {
	if v == nil {
		return 0, false
	}
	if *v != math.Trunc(*v) {
		return 0, false
	}
	n := int(*v)
	if n < 0 || n > 10 {
		return 0, false
	}
	return n, true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
