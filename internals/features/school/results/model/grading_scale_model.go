// file: internals/features/school/results/model/grading_scale_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Grading systems
const (
	SystemTwentyPoint = "twentyPoint"
	SystemPercentage  = "percentage"
	SystemLetter      = "letter"
	SystemGPA         = "gpa"
)

var GradingSystems = []string{SystemTwentyPoint, SystemPercentage, SystemLetter, SystemGPA}

// GradeBand is one element of the ordered grading_scales_bands JSONB array.
// GPA and ECTS are optional metadata; the publish path never reads them.
type GradeBand struct {
	Min   float64  `json:"min"`
	Max   float64  `json:"max"`
	Label string   `json:"label"`
	GPA   *float64 `json:"gpa,omitempty"`
	ECTS  *string  `json:"ects,omitempty"`
}

// GradingScaleModel maps the `grading_scales` table. At most one row per
// campus carries grading_scales_is_default = true; the swap happens in one
// transaction.
type GradingScaleModel struct {
	GradingScaleID       uuid.UUID `json:"grading_scales_id" gorm:"column:grading_scales_id;type:uuid;default:gen_random_uuid();primaryKey"`
	GradingScaleCampusID uuid.UUID `json:"grading_scales_campus_id" gorm:"column:grading_scales_campus_id;type:uuid;not null;index:idx_grading_scales_campus"`

	GradingScaleName        string  `json:"grading_scales_name" gorm:"column:grading_scales_name;type:varchar(120);not null"`
	GradingScaleDescription *string `json:"grading_scales_description" gorm:"column:grading_scales_description;type:text"`

	GradingScaleSystem   string  `json:"grading_scales_system" gorm:"column:grading_scales_system;type:varchar(20);not null"`
	GradingScaleMaxScore float64 `json:"grading_scales_max_score" gorm:"column:grading_scales_max_score;type:numeric(6,2);not null"`
	GradingScalePassMark float64 `json:"grading_scales_pass_mark" gorm:"column:grading_scales_pass_mark;type:numeric(6,2);not null"`

	// Ordered band list, lowest first.
	GradingScaleBands datatypes.JSON `json:"grading_scales_bands" gorm:"column:grading_scales_bands;type:jsonb;not null"`

	GradingScaleIsDefault bool `json:"grading_scales_is_default" gorm:"column:grading_scales_is_default;not null;default:false"`
	GradingScaleIsActive  bool `json:"grading_scales_is_active" gorm:"column:grading_scales_is_active;not null;default:true"`

	GradingScaleCreatedAt time.Time      `json:"grading_scales_created_at" gorm:"column:grading_scales_created_at;not null;autoCreateTime"`
	GradingScaleUpdatedAt time.Time      `json:"grading_scales_updated_at" gorm:"column:grading_scales_updated_at;not null;autoUpdateTime"`
	GradingScaleDeletedAt gorm.DeletedAt `json:"grading_scales_deleted_at" gorm:"column:grading_scales_deleted_at;index"`
}

func (GradingScaleModel) TableName() string { return "grading_scales" }
