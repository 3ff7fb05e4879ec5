package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "sekolahku_backend/internals/features/school/results/model"
)

func TestDeriveNormalizesToTwentyPointAxis(t *testing.T) {
	scale := FallbackScale()

	d, err := Derive(14, 20, model.EvalMidterm, scale)
	require.NoError(t, err)
	assert.Equal(t, 14.0, d.NormalizedScore)
	assert.Equal(t, "B", d.GradeBand)
	assert.True(t, d.Passed)
	assert.False(t, d.RetakeEligible)

	// a different max score lands on the same axis
	d, err = Derive(70, 100, model.EvalMidterm, scale)
	require.NoError(t, err)
	assert.Equal(t, 14.0, d.NormalizedScore)
	assert.Equal(t, "B", d.GradeBand)
}

func TestDeriveRoundsToTwoDecimals(t *testing.T) {
	d, err := Derive(1, 3, model.EvalQuiz, FallbackScale())
	require.NoError(t, err)
	assert.Equal(t, 6.67, d.NormalizedScore)
}

func TestDeriveBounds(t *testing.T) {
	scale := FallbackScale()

	d, err := Derive(0, 20, model.EvalFinal, scale)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.NormalizedScore)
	assert.Equal(t, "F", d.GradeBand, "zero still gets a band")
	assert.False(t, d.Passed)

	d, err = Derive(20, 20, model.EvalFinal, scale)
	require.NoError(t, err)
	assert.Equal(t, 20.0, d.NormalizedScore)
	assert.Equal(t, "A", d.GradeBand, "max score falls in the closed last band")
}

func TestDeriveRetakeEligibility(t *testing.T) {
	scale := FallbackScale()

	// failing a retakable type
	d, err := Derive(7, 20, model.EvalMidterm, scale)
	require.NoError(t, err)
	assert.True(t, d.RetakeEligible)
	assert.False(t, d.Passed)

	// failing a non-retakable type
	d, err = Derive(7, 20, model.EvalQuiz, scale)
	require.NoError(t, err)
	assert.False(t, d.RetakeEligible)

	// passing a retakable type
	d, err = Derive(15, 20, model.EvalFinal, scale)
	require.NoError(t, err)
	assert.False(t, d.RetakeEligible)
}

func TestDeriveRejectsInvalidInputs(t *testing.T) {
	scale := FallbackScale()

	_, err := Derive(5, 0, model.EvalQuiz, scale)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = Derive(-1, 20, model.EvalQuiz, scale)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = Derive(21, 20, model.EvalQuiz, scale)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestSelectBandHalfOpenIntervals(t *testing.T) {
	bands := FallbackScale().Bands

	assert.Equal(t, "F", SelectBand(bands, 9.98))
	assert.Equal(t, "D", SelectBand(bands, 10))
	assert.Equal(t, "A", SelectBand(bands, 20))
	// the fallback pass closes the 9.99–10 gap with the band owning the
	// upper bound
	assert.Equal(t, "F", SelectBand(bands, 9.99))
	// a score strictly inside the gap reads as part of the band above it,
	// so no scale with gapped bands can reject a score in range
	assert.Equal(t, "D", SelectBand(bands, 9.995))
	assert.Equal(t, "", SelectBand(bands, 25))
	assert.Equal(t, "", SelectBand(bands, -0.01))
}
