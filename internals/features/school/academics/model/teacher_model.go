// file: internals/features/school/academics/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherModel. The primary key doubles as the teacher's user id in the
// auth token, so record ownership checks compare against it directly.
type TeacherModel struct {
	TeacherID       uuid.UUID `json:"teacher_id" gorm:"column:teacher_id;type:uuid;primaryKey"`
	TeacherCampusID uuid.UUID `json:"teacher_campus_id" gorm:"column:teacher_campus_id;type:uuid;not null;index:idx_teachers_campus"`

	TeacherFirstName string  `json:"teacher_first_name" gorm:"column:teacher_first_name;type:varchar(120);not null"`
	TeacherLastName  string  `json:"teacher_last_name" gorm:"column:teacher_last_name;type:varchar(120);not null"`
	TeacherEmail     *string `json:"teacher_email" gorm:"column:teacher_email;type:varchar(255)"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string { return "teachers" }
