// file: internals/features/school/results/service/risk.go
package service

import (
	"context"

	"github.com/google/uuid"

	"sekolahku_backend/internals/configs"
	model "sekolahku_backend/internals/features/school/results/model"
)

// RiskConfig parameterizes the dropout-risk heuristic. The score combines
// three components over the student's most recent published/archived
// results:
//
//	failure  — share of results below the pass mark within the window
//	trend    — negative slope of the normalized scores, rescaled to [0,1]
//	coverage — shortfall against the expected evaluation count
//
// score = 100 × (FailureWeight×failure + TrendWeight×trend + CoverageWeight×coverage)
//
// Defaults (overridable via RISK_* env vars): Window 10,
// FailureWeight 0.5, TrendWeight 0.3, CoverageWeight 0.2,
// ExpectedEvaluations 6.
type RiskConfig struct {
	Window              int
	FailureWeight       float64
	TrendWeight         float64
	CoverageWeight      float64
	ExpectedEvaluations int
}

func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		Window:              10,
		FailureWeight:       0.5,
		TrendWeight:         0.3,
		CoverageWeight:      0.2,
		ExpectedEvaluations: 6,
	}
}

func RiskConfigFromEnv() RiskConfig {
	d := DefaultRiskConfig()
	return RiskConfig{
		Window:              configs.GetEnvInt("RISK_WINDOW", d.Window),
		FailureWeight:       configs.GetEnvFloat("RISK_FAILURE_WEIGHT", d.FailureWeight),
		TrendWeight:         configs.GetEnvFloat("RISK_TREND_WEIGHT", d.TrendWeight),
		CoverageWeight:      configs.GetEnvFloat("RISK_COVERAGE_WEIGHT", d.CoverageWeight),
		ExpectedEvaluations: configs.GetEnvInt("RISK_EXPECTED_EVALUATIONS", d.ExpectedEvaluations),
	}
}

// riskSample is one result in the window, newest first.
type riskSample struct {
	Normalized float64
	Passed     bool
}

// DropoutRiskScore computes the deterministic [0,100] heuristic for a fixed
// sample (newest first) and configuration.
func DropoutRiskScore(cfg RiskConfig, samples []riskSample) float64 {
	if len(samples) == 0 {
		return 0
	}

	failures := 0
	for _, s := range samples {
		if !s.Passed {
			failures++
		}
	}
	failure := float64(failures) / float64(len(samples))

	trend := trendComponent(samples)

	coverage := 0.0
	if cfg.ExpectedEvaluations > 0 && len(samples) < cfg.ExpectedEvaluations {
		coverage = float64(cfg.ExpectedEvaluations-len(samples)) / float64(cfg.ExpectedEvaluations)
	}

	score := 100 * (cfg.FailureWeight*failure + cfg.TrendWeight*trend + cfg.CoverageWeight*coverage)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Round2(score)
}

// trendComponent fits a least-squares slope over the chronological sequence
// of normalized scores and maps a falling trend into (0,1]. A flat or rising
// trend contributes 0.
func trendComponent(samples []riskSample) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}
	// samples arrive newest first; walk backwards for chronological x
	var sumX, sumY, sumXY, sumXX float64
	for i := 0; i < n; i++ {
		x := float64(i)
		y := samples[n-1-i].Normalized
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	if slope >= 0 {
		return 0
	}
	// a drop of 2 points per evaluation on the 0–20 axis saturates the
	// component
	t := -slope / 2
	if t > 1 {
		t = 1
	}
	return t
}

// RecomputeDropoutRisk refreshes the risk score on every live result of the
// student. Called detached after publish and audit-correct.
func (s *ResultService) RecomputeDropoutRisk(ctx context.Context, campusID, studentID uuid.UUID) error {
	var rows []struct {
		ResultNormalizedScore float64
		ResultPassed          bool
	}
	err := s.DB.WithContext(ctx).Model(&model.ResultModel{}).
		Select("result_normalized_score", "result_passed").
		Where("result_campus_id = ? AND result_student_id = ? AND result_status IN (?, ?)",
			campusID, studentID, model.StatusPublished, model.StatusArchived).
		Order("result_published_at DESC").
		Limit(s.Risk.Window).
		Find(&rows).Error
	if err != nil {
		return Transient("risk sample select", err)
	}

	samples := make([]riskSample, len(rows))
	for i, r := range rows {
		samples[i] = riskSample{Normalized: r.ResultNormalizedScore, Passed: r.ResultPassed}
	}
	score := DropoutRiskScore(s.Risk, samples)

	return s.DB.WithContext(ctx).Model(&model.ResultModel{}).
		Where("result_campus_id = ? AND result_student_id = ? AND result_status IN (?, ?)",
			campusID, studentID, model.StatusPublished, model.StatusArchived).
		Update("result_dropout_risk_score", score).Error
}
