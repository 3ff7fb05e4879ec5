package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDropoutRiskScoreEmptyWindow(t *testing.T) {
	assert.Equal(t, 0.0, DropoutRiskScore(DefaultRiskConfig(), nil))
}

func TestDropoutRiskScoreDeterministic(t *testing.T) {
	cfg := DefaultRiskConfig()
	samples := []riskSample{
		{Normalized: 8, Passed: false},
		{Normalized: 11, Passed: true},
		{Normalized: 13, Passed: true},
	}
	a := DropoutRiskScore(cfg, samples)
	b := DropoutRiskScore(cfg, samples)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, 0.0)
	assert.LessOrEqual(t, a, 100.0)
}

func TestDropoutRiskScoreAllFailingBeatsAllPassing(t *testing.T) {
	cfg := DefaultRiskConfig()

	failing := make([]riskSample, cfg.ExpectedEvaluations)
	passing := make([]riskSample, cfg.ExpectedEvaluations)
	for i := range failing {
		failing[i] = riskSample{Normalized: 5, Passed: false}
		passing[i] = riskSample{Normalized: 15, Passed: true}
	}

	assert.Greater(t, DropoutRiskScore(cfg, failing), DropoutRiskScore(cfg, passing))
	// flat sequences have no trend; a full window has no coverage shortfall
	assert.Equal(t, 0.0, DropoutRiskScore(cfg, passing))
}

func TestDropoutRiskScoreCoverageShortfall(t *testing.T) {
	cfg := DefaultRiskConfig()
	one := []riskSample{{Normalized: 15, Passed: true}}

	// one passing result out of six expected: only the coverage component
	want := Round2(100 * cfg.CoverageWeight * float64(cfg.ExpectedEvaluations-1) / float64(cfg.ExpectedEvaluations))
	assert.Equal(t, want, DropoutRiskScore(cfg, one))
}

func TestTrendComponentDetectsDecline(t *testing.T) {
	// newest first: the student dropped from 16 to 8 across the window
	declining := []riskSample{
		{Normalized: 8, Passed: false},
		{Normalized: 10, Passed: true},
		{Normalized: 12, Passed: true},
		{Normalized: 14, Passed: true},
		{Normalized: 16, Passed: true},
	}
	rising := []riskSample{
		{Normalized: 16, Passed: true},
		{Normalized: 14, Passed: true},
		{Normalized: 12, Passed: true},
		{Normalized: 10, Passed: true},
		{Normalized: 8, Passed: false},
	}

	assert.Equal(t, 1.0, trendComponent(declining), "2 points per evaluation saturates")
	assert.Equal(t, 0.0, trendComponent(rising))
	assert.Equal(t, 0.0, trendComponent(declining[:1]), "one sample has no trend")
}
