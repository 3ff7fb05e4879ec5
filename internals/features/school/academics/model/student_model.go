// file: internals/features/school/academics/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID       uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentCampusID uuid.UUID `json:"student_campus_id" gorm:"column:student_campus_id;type:uuid;not null;index:idx_students_campus;uniqueIndex:uq_students_campus_matricule,priority:1"`

	// Matricule is the human registration number shown on transcripts and the
	// public verification view.
	StudentMatricule string `json:"student_matricule" gorm:"column:student_matricule;type:varchar(40);not null;uniqueIndex:uq_students_campus_matricule,priority:2"`

	StudentFirstName string  `json:"student_first_name" gorm:"column:student_first_name;type:varchar(120);not null"`
	StudentLastName  string  `json:"student_last_name" gorm:"column:student_last_name;type:varchar(120);not null"`
	StudentGender    *string `json:"student_gender" gorm:"column:student_gender;type:varchar(10)"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string { return "students" }
