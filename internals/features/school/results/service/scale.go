// file: internals/features/school/results/service/scale.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/school/results/model"
)

// ScaleData is the decoded, usable form of a grading scale.
type ScaleData struct {
	System   string
	MaxScore float64
	PassMark float64
	Bands    []model.GradeBand
}

// FallbackScale is the built-in twenty-point scale used when a campus has no
// default of its own.
func FallbackScale() ScaleData {
	return ScaleData{
		System:   model.SystemTwentyPoint,
		MaxScore: 20,
		PassMark: 10,
		Bands: []model.GradeBand{
			{Min: 0, Max: 9.99, Label: "F"},
			{Min: 10, Max: 11.99, Label: "D"},
			{Min: 12, Max: 13.99, Label: "C"},
			{Min: 14, Max: 15.99, Label: "B"},
			{Min: 16, Max: 20, Label: "A"},
		},
	}
}

func decodeScale(m *model.GradingScaleModel) (ScaleData, error) {
	var bands []model.GradeBand
	if err := json.Unmarshal(m.GradingScaleBands, &bands); err != nil {
		return ScaleData{}, Transient("grading scale decode", err)
	}
	return ScaleData{
		System:   m.GradingScaleSystem,
		MaxScore: m.GradingScaleMaxScore,
		PassMark: m.GradingScalePassMark,
		Bands:    bands,
	}, nil
}

// resolveScale returns the explicitly referenced scale when it exists, is
// active and belongs to the campus; otherwise the campus default; otherwise
// the built-in fallback.
func (s *ResultService) resolveScale(ctx context.Context, tx *gorm.DB, campusID uuid.UUID, scaleID *uuid.UUID) (ScaleData, error) {
	if scaleID != nil && *scaleID != uuid.Nil {
		var m model.GradingScaleModel
		err := tx.WithContext(ctx).
			Where("grading_scales_id = ? AND grading_scales_campus_id = ? AND grading_scales_is_active = true", *scaleID, campusID).
			First(&m).Error
		if err == nil {
			return decodeScale(&m)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return ScaleData{}, Transient("grading scale lookup", err)
		}
		// referenced but absent: fall through to the default
	}

	var m model.GradingScaleModel
	err := tx.WithContext(ctx).
		Where("grading_scales_campus_id = ? AND grading_scales_is_default = true AND grading_scales_is_active = true", campusID).
		First(&m).Error
	if err == nil {
		return decodeScale(&m)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return FallbackScale(), nil
	}
	return ScaleData{}, Transient("default grading scale lookup", err)
}

/* =========================
   Store operations
========================= */

type ScalePayload struct {
	Name        string
	Description *string
	System      string
	MaxScore    float64
	PassMark    float64
	Bands       []model.GradeBand
	IsDefault   bool
}

func validateScalePayload(p ScalePayload) error {
	if strings.TrimSpace(p.Name) == "" {
		return Validation("grading_scales_name", "is required")
	}
	ok := false
	for _, sys := range model.GradingSystems {
		if p.System == sys {
			ok = true
			break
		}
	}
	if !ok {
		return Validation("grading_scales_system", "must be one of twentyPoint, percentage, letter, gpa")
	}
	if p.MaxScore < 1 {
		return Validation("grading_scales_max_score", "must be >= 1")
	}
	if p.PassMark > p.MaxScore {
		return Validation("grading_scales_pass_mark", "must not exceed max score")
	}
	if len(p.Bands) == 0 {
		return Validation("grading_scales_bands", "at least one band is required")
	}
	for _, b := range p.Bands {
		if b.Min > b.Max {
			return Validation("grading_scales_bands", "band min must not exceed band max")
		}
		if strings.TrimSpace(b.Label) == "" {
			return Validation("grading_scales_bands", "band label is required")
		}
	}
	return nil
}

func (s *ResultService) ListScales(ctx context.Context, caller Caller, campusID uuid.UUID, includeInactive bool) ([]model.GradingScaleModel, error) {
	if !caller.IsGlobal() && caller.CampusID != campusID {
		return nil, Unauthorized()
	}
	q := s.DB.WithContext(ctx).
		Where("grading_scales_campus_id = ?", campusID)
	if !includeInactive {
		q = q.Where("grading_scales_is_active = true")
	}
	var rows []model.GradingScaleModel
	if err := q.Order("grading_scales_created_at ASC").Find(&rows).Error; err != nil {
		return nil, Transient("grading scale list", err)
	}
	return rows, nil
}

// CreateScale inserts a scale; when IsDefault is set the previous campus
// default is cleared in the same transaction.
func (s *ResultService) CreateScale(ctx context.Context, caller Caller, campusID uuid.UUID, p ScalePayload) (*model.GradingScaleModel, error) {
	if !caller.IsGlobal() && caller.CampusID != campusID {
		return nil, Unauthorized()
	}
	if err := validateScalePayload(p); err != nil {
		return nil, err
	}

	bandsJSON, err := json.Marshal(p.Bands)
	if err != nil {
		return nil, Transient("grading scale encode", err)
	}
	row := model.GradingScaleModel{
		GradingScaleCampusID:    campusID,
		GradingScaleName:        p.Name,
		GradingScaleDescription: p.Description,
		GradingScaleSystem:      p.System,
		GradingScaleMaxScore:    p.MaxScore,
		GradingScalePassMark:    p.PassMark,
		GradingScaleBands:       datatypes.JSON(bandsJSON),
		GradingScaleIsDefault:   p.IsDefault,
		GradingScaleIsActive:    true,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if p.IsDefault {
			if err := tx.Model(&model.GradingScaleModel{}).
				Where("grading_scales_campus_id = ? AND grading_scales_is_default = true", campusID).
				Update("grading_scales_is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, Transient("grading scale create", err)
	}
	return &row, nil
}

type ScalePatch struct {
	Name        *string
	Description *string
	PassMark    *float64
	Bands       []model.GradeBand
	IsDefault   *bool
	IsActive    *bool
}

// guardScalePatch keeps retired scales frozen: once is_active is off, the
// only accepted patch is flipping it back on.
func guardScalePatch(active bool, patch ScalePatch) error {
	if active {
		return nil
	}
	if patch.Name != nil || patch.Description != nil || patch.PassMark != nil ||
		patch.Bands != nil || patch.IsDefault != nil {
		return Conflict("scale is retired: only reactivation is allowed", false)
	}
	return nil
}

// UpdateScale patches an active scale. Editable fields are restricted while
// the scale is live; retiring is flipping is_active.
func (s *ResultService) UpdateScale(ctx context.Context, caller Caller, scaleID uuid.UUID, patch ScalePatch) (*model.GradingScaleModel, error) {
	var row model.GradingScaleModel
	if err := s.DB.WithContext(ctx).
		Where("grading_scales_id = ?", scaleID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("grading scale")
		}
		return nil, Transient("grading scale lookup", err)
	}
	if !caller.IsGlobal() && caller.CampusID != row.GradingScaleCampusID {
		return nil, Unauthorized()
	}
	if err := guardScalePatch(row.GradingScaleIsActive, patch); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, Validation("grading_scales_name", "must not be empty")
		}
		updates["grading_scales_name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["grading_scales_description"] = *patch.Description
	}
	if patch.PassMark != nil {
		if *patch.PassMark > row.GradingScaleMaxScore {
			return nil, Validation("grading_scales_pass_mark", "must not exceed max score")
		}
		updates["grading_scales_pass_mark"] = *patch.PassMark
	}
	if patch.Bands != nil {
		candidate := ScalePayload{
			Name: row.GradingScaleName, System: row.GradingScaleSystem,
			MaxScore: row.GradingScaleMaxScore, PassMark: row.GradingScalePassMark,
			Bands: patch.Bands,
		}
		if err := validateScalePayload(candidate); err != nil {
			return nil, err
		}
		bandsJSON, err := json.Marshal(patch.Bands)
		if err != nil {
			return nil, Transient("grading scale encode", err)
		}
		updates["grading_scales_bands"] = datatypes.JSON(bandsJSON)
	}
	if patch.IsActive != nil {
		updates["grading_scales_is_active"] = *patch.IsActive
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if patch.IsDefault != nil && *patch.IsDefault && !row.GradingScaleIsDefault {
			if err := tx.Model(&model.GradingScaleModel{}).
				Where("grading_scales_campus_id = ? AND grading_scales_is_default = true", row.GradingScaleCampusID).
				Update("grading_scales_is_default", false).Error; err != nil {
				return err
			}
			updates["grading_scales_is_default"] = true
		}
		if patch.IsDefault != nil && !*patch.IsDefault {
			updates["grading_scales_is_default"] = false
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&model.GradingScaleModel{}).
			Where("grading_scales_id = ?", scaleID).
			Updates(updates).Error
	})
	if err != nil {
		return nil, Transient("grading scale update", err)
	}

	if err := s.DB.WithContext(ctx).
		Where("grading_scales_id = ?", scaleID).First(&row).Error; err != nil {
		return nil, Transient("grading scale reload", err)
	}
	return &row, nil
}
