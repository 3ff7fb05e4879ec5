// file: internals/features/school/academics/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID       uuid.UUID `json:"class_id" gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassCampusID uuid.UUID `json:"class_campus_id" gorm:"column:class_campus_id;type:uuid;not null;index:idx_classes_campus"`

	ClassName  string  `json:"class_name" gorm:"column:class_name;type:varchar(120);not null"`
	ClassLevel *string `json:"class_level" gorm:"column:class_level;type:varchar(60)"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;not null;autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at" gorm:"column:class_deleted_at;index"`
}

func (ClassModel) TableName() string { return "classes" }

// ClassStudentModel is the enrollment join table consumed by bulk ingestion.
type ClassStudentModel struct {
	ClassStudentID        uuid.UUID `json:"class_student_id" gorm:"column:class_student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassStudentCampusID  uuid.UUID `json:"class_student_campus_id" gorm:"column:class_student_campus_id;type:uuid;not null;index:idx_class_students_campus"`
	ClassStudentClassID   uuid.UUID `json:"class_student_class_id" gorm:"column:class_student_class_id;type:uuid;not null;uniqueIndex:uq_class_students,priority:1"`
	ClassStudentStudentID uuid.UUID `json:"class_student_student_id" gorm:"column:class_student_student_id;type:uuid;not null;uniqueIndex:uq_class_students,priority:2"`

	ClassStudentCreatedAt time.Time `json:"class_student_created_at" gorm:"column:class_student_created_at;not null;autoCreateTime"`
}

func (ClassStudentModel) TableName() string { return "class_students" }
