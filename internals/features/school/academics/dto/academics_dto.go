package dto

import (
	"github.com/google/uuid"
)

type CreateCampusRequest struct {
	Name    string  `json:"campus_name" validate:"required,max=180"`
	Code    string  `json:"campus_code" validate:"required,max=30"`
	Address *string `json:"campus_address" validate:"omitempty"`
}

type CreateStudentRequest struct {
	CampusID  uuid.UUID `json:"student_campus_id" validate:"required"`
	Matricule string    `json:"student_matricule" validate:"required,max=40"`
	FirstName string    `json:"student_first_name" validate:"required,max=120"`
	LastName  string    `json:"student_last_name" validate:"required,max=120"`
	Gender    *string   `json:"student_gender" validate:"omitempty,oneof=male female"`
}

type CreateClassRequest struct {
	CampusID uuid.UUID `json:"class_campus_id" validate:"required"`
	Name     string    `json:"class_name" validate:"required,max=120"`
	Level    *string   `json:"class_level" validate:"omitempty,max=60"`
}

type EnrollStudentRequest struct {
	StudentID uuid.UUID `json:"class_student_student_id" validate:"required"`
}

type CreateSubjectRequest struct {
	CampusID    uuid.UUID `json:"subject_campus_id" validate:"required"`
	Name        string    `json:"subject_name" validate:"required,max=160"`
	Code        string    `json:"subject_code" validate:"required,max=30"`
	Coefficient *float64  `json:"subject_coefficient" validate:"omitempty,gte=0"`
}

type CreateTeacherRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	CampusID  uuid.UUID `json:"teacher_campus_id" validate:"required"`
	FirstName string    `json:"teacher_first_name" validate:"required,max=120"`
	LastName  string    `json:"teacher_last_name" validate:"required,max=120"`
	Email     *string   `json:"teacher_email" validate:"omitempty,email"`
}
