// file: internals/features/school/results/service/derive.go
package service

import (
	"math"

	model "sekolahku_backend/internals/features/school/results/model"
)

// Derivation is the deterministic output of the pre-persist normalization
// step. It is recomputed on any edit touching score, max score or scale.
type Derivation struct {
	NormalizedScore float64
	GradeBand       string
	RetakeEligible  bool
	Passed          bool
}

// retakableTypes: evaluation types whose failure opens a retake.
var retakableTypes = map[string]bool{
	model.EvalMidterm:    true,
	model.EvalFinal:      true,
	model.EvalContinuous: true,
}

// Derive computes all derived result fields against the resolved scale.
//
// The normalized score lives on the canonical 0–20 axis regardless of the
// scale's own max; band selection and pass/retake work in scale space.
func Derive(score, maxScore float64, evalType string, scale ScaleData) (Derivation, error) {
	if maxScore < 1 {
		return Derivation{}, Validation("result_max_score", "must be >= 1")
	}
	if score < 0 || score > maxScore {
		return Derivation{}, Validation("result_score", "must be between 0 and the max score")
	}

	normalized := Round2(score / maxScore * 20)
	scaleSpace := score * scale.MaxScore / maxScore

	band := SelectBand(scale.Bands, scaleSpace)
	if band == "" {
		return Derivation{}, Validation("grading_scales_bands", "no band covers the score")
	}

	failed := scaleSpace < scale.PassMark
	return Derivation{
		NormalizedScore: normalized,
		GradeBand:       band,
		RetakeEligible:  failed && retakableTypes[evalType],
		Passed:          !failed,
	}, nil
}

// SelectBand picks the first band containing the scale-space score:
// inclusive lower bound, exclusive upper bound, except the last band which is
// inclusive on both sides. Band lists with gaps (0-9.99 then 10-...) still
// cover every score between the first Min and the last Max: a score on a gap
// boundary stays with the band below it, a score strictly inside a gap reads
// as part of the band above it. Empty string only when the score is outside
// the whole list.
func SelectBand(bands []model.GradeBand, scaleSpaceScore float64) string {
	for i, b := range bands {
		last := i == len(bands)-1
		if scaleSpaceScore >= b.Min && (scaleSpaceScore < b.Max || (last && scaleSpaceScore <= b.Max)) {
			return b.Label
		}
	}
	for _, b := range bands {
		if scaleSpaceScore >= b.Min && scaleSpaceScore <= b.Max {
			return b.Label
		}
	}
	for i := 0; i+1 < len(bands); i++ {
		if scaleSpaceScore > bands[i].Max && scaleSpaceScore < bands[i+1].Min {
			return bands[i+1].Label
		}
	}
	return ""
}

func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
