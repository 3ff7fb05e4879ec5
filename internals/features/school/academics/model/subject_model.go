// file: internals/features/school/academics/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID       uuid.UUID `json:"subject_id" gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SubjectCampusID uuid.UUID `json:"subject_campus_id" gorm:"column:subject_campus_id;type:uuid;not null;index:idx_subjects_campus"`

	SubjectName string `json:"subject_name" gorm:"column:subject_name;type:varchar(160);not null"`
	SubjectCode string `json:"subject_code" gorm:"column:subject_code;type:varchar(30);not null"`

	// Transcript weight. When set, it takes precedence over the per-result
	// coefficient in the semester general average.
	SubjectCoefficient *float64 `json:"subject_coefficient" gorm:"column:subject_coefficient;type:numeric(5,2)"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;not null;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string { return "subjects" }
