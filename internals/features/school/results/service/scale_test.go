package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "sekolahku_backend/internals/features/school/results/model"
)

func TestGuardScalePatch(t *testing.T) {
	name := "Trimestre standard"
	desc := "barème par défaut"
	pass := 12.0
	on := true
	off := false

	t.Run("active scale accepts content edits", func(t *testing.T) {
		assert.NoError(t, guardScalePatch(true, ScalePatch{Name: &name}))
		assert.NoError(t, guardScalePatch(true, ScalePatch{PassMark: &pass}))
		assert.NoError(t, guardScalePatch(true, ScalePatch{Bands: FallbackScale().Bands}))
		assert.NoError(t, guardScalePatch(true, ScalePatch{IsDefault: &on}))
		assert.NoError(t, guardScalePatch(true, ScalePatch{IsActive: &off}))
	})

	t.Run("retired scale is frozen", func(t *testing.T) {
		for _, patch := range []ScalePatch{
			{Name: &name},
			{Description: &desc},
			{PassMark: &pass},
			{Bands: []model.GradeBand{{Label: "P", Min: 0, Max: 20}}},
			{IsDefault: &on},
			{Name: &name, IsActive: &on},
		} {
			err := guardScalePatch(false, patch)
			require.Error(t, err)
			assert.Equal(t, KindConflict, KindOf(err))
		}
	})

	t.Run("retired scale may be reactivated", func(t *testing.T) {
		assert.NoError(t, guardScalePatch(false, ScalePatch{IsActive: &on}))
		assert.NoError(t, guardScalePatch(false, ScalePatch{}))
	})
}
