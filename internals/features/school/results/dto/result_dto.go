package dto

import (
	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/results/model"
	svc "sekolahku_backend/internals/features/school/results/service"
)

/* =========================
   Result lifecycle
========================= */

type CreateResultRequest struct {
	CampusID        *uuid.UUID `json:"result_campus_id" validate:"omitempty"`
	StudentID       uuid.UUID  `json:"result_student_id" validate:"required"`
	ClassID         uuid.UUID  `json:"result_class_id" validate:"required"`
	SubjectID       uuid.UUID  `json:"result_subject_id" validate:"required"`
	TeacherID       uuid.UUID  `json:"result_teacher_id" validate:"required"`
	EvaluationType  string     `json:"result_evaluation_type" validate:"required"`
	EvaluationTitle string     `json:"result_evaluation_title" validate:"required,max=100"`
	AcademicYear    string     `json:"result_academic_year" validate:"required"`
	Semester        string     `json:"result_semester" validate:"required"`
	Score           float64    `json:"result_score" validate:"gte=0"`
	MaxScore        float64    `json:"result_max_score" validate:"required,gte=1"`
	Coefficient     *float64   `json:"result_coefficient" validate:"omitempty,gte=0"`
	Comment         *string    `json:"result_comment" validate:"omitempty,max=500"`
	GradingScaleID  *uuid.UUID `json:"result_grading_scale_id" validate:"omitempty"`
	RetakeOf        *uuid.UUID `json:"result_retake_of" validate:"omitempty"`
}

func (r CreateResultRequest) ToInput(campusID uuid.UUID) svc.CreateDraftInput {
	return svc.CreateDraftInput{
		CampusID:        campusID,
		StudentID:       r.StudentID,
		ClassID:         r.ClassID,
		SubjectID:       r.SubjectID,
		TeacherID:       r.TeacherID,
		EvaluationType:  r.EvaluationType,
		EvaluationTitle: r.EvaluationTitle,
		AcademicYear:    r.AcademicYear,
		Semester:        r.Semester,
		Score:           r.Score,
		MaxScore:        r.MaxScore,
		Coefficient:     r.Coefficient,
		Comment:         r.Comment,
		GradingScaleID:  r.GradingScaleID,
		RetakeOf:        r.RetakeOf,
	}
}

type UpdateResultRequest struct {
	Score           *float64   `json:"result_score" validate:"omitempty,gte=0"`
	MaxScore        *float64   `json:"result_max_score" validate:"omitempty,gte=1"`
	Coefficient     *float64   `json:"result_coefficient" validate:"omitempty,gte=0"`
	Comment         *string    `json:"result_comment" validate:"omitempty,max=500"`
	EvaluationType  *string    `json:"result_evaluation_type" validate:"omitempty"`
	EvaluationTitle *string    `json:"result_evaluation_title" validate:"omitempty,max=100"`
	GradingScaleID  *uuid.UUID `json:"result_grading_scale_id" validate:"omitempty"`
}

func (r UpdateResultRequest) ToInput() svc.UpdateDraftInput {
	return svc.UpdateDraftInput{
		Score:           r.Score,
		MaxScore:        r.MaxScore,
		Coefficient:     r.Coefficient,
		Comment:         r.Comment,
		EvaluationType:  r.EvaluationType,
		EvaluationTitle: r.EvaluationTitle,
		GradingScaleID:  r.GradingScaleID,
	}
}

/* =========================
   Workflow
========================= */

type BatchIDsRequest struct {
	IDs []uuid.UUID `json:"result_ids" validate:"required,min=1,dive,required"`
}

type PublishBatchRequest struct {
	ClassID         uuid.UUID `json:"result_class_id" validate:"required"`
	SubjectID       uuid.UUID `json:"result_subject_id" validate:"required"`
	EvaluationTitle string    `json:"result_evaluation_title" validate:"required,max=100"`
	AcademicYear    string    `json:"result_academic_year" validate:"required"`
	Semester        string    `json:"result_semester" validate:"required"`
}

type LockSemesterRequest struct {
	AcademicYear string `json:"result_academic_year" validate:"required"`
	Semester     string `json:"result_semester" validate:"required"`
}

type AuditCorrectRequest struct {
	Score   *float64 `json:"result_score" validate:"omitempty,gte=0"`
	Comment *string  `json:"result_comment" validate:"omitempty,max=500"`
	Reason  string   `json:"reason" validate:"required,min=10"`
}

/* =========================
   Bulk ingestion
========================= */

type BulkRowRequest struct {
	StudentID   uuid.UUID `json:"student_id" validate:"required"`
	Score       float64   `json:"score" validate:"gte=0"`
	Comment     *string   `json:"comment" validate:"omitempty,max=500"`
	Coefficient *float64  `json:"coefficient" validate:"omitempty,gte=0"`
}

type BulkCreateRequest struct {
	ClassID         uuid.UUID        `json:"result_class_id" validate:"required"`
	SubjectID       uuid.UUID        `json:"result_subject_id" validate:"required"`
	TeacherID       uuid.UUID        `json:"result_teacher_id" validate:"required"`
	EvaluationType  string           `json:"result_evaluation_type" validate:"required"`
	EvaluationTitle string           `json:"result_evaluation_title" validate:"required,max=100"`
	AcademicYear    string           `json:"result_academic_year" validate:"required"`
	Semester        string           `json:"result_semester" validate:"required"`
	MaxScore        float64          `json:"result_max_score" validate:"required,gte=1"`
	GradingScaleID  *uuid.UUID       `json:"result_grading_scale_id" validate:"omitempty"`
	Rows            []BulkRowRequest `json:"rows" validate:"required,min=1,dive"`
}

func (r BulkCreateRequest) ToInput(campusID uuid.UUID) svc.BulkCreateInput {
	rows := make([]svc.BulkRow, 0, len(r.Rows))
	for i, row := range r.Rows {
		rows = append(rows, svc.BulkRow{
			Index:       i,
			StudentID:   row.StudentID,
			Score:       row.Score,
			Comment:     row.Comment,
			Coefficient: row.Coefficient,
		})
	}
	return svc.BulkCreateInput{
		CampusID:        campusID,
		ClassID:         r.ClassID,
		SubjectID:       r.SubjectID,
		TeacherID:       r.TeacherID,
		EvaluationType:  r.EvaluationType,
		EvaluationTitle: r.EvaluationTitle,
		AcademicYear:    r.AcademicYear,
		Semester:        r.Semester,
		MaxScore:        r.MaxScore,
		GradingScaleID:  r.GradingScaleID,
		Rows:            rows,
	}
}

// BulkImportForm carries the sheet metadata of a CSV/XLSX upload; the rows
// come from the file itself.
type BulkImportForm struct {
	ClassID         uuid.UUID  `form:"result_class_id" validate:"required"`
	SubjectID       uuid.UUID  `form:"result_subject_id" validate:"required"`
	TeacherID       uuid.UUID  `form:"result_teacher_id" validate:"required"`
	EvaluationType  string     `form:"result_evaluation_type" validate:"required"`
	EvaluationTitle string     `form:"result_evaluation_title" validate:"required,max=100"`
	AcademicYear    string     `form:"result_academic_year" validate:"required"`
	Semester        string     `form:"result_semester" validate:"required"`
	MaxScore        float64    `form:"result_max_score" validate:"required,gte=1"`
	GradingScaleID  *uuid.UUID `form:"result_grading_scale_id" validate:"omitempty"`
}

func (r BulkImportForm) ToInput(campusID uuid.UUID, rows []svc.BulkRow) svc.BulkCreateInput {
	return svc.BulkCreateInput{
		CampusID:        campusID,
		ClassID:         r.ClassID,
		SubjectID:       r.SubjectID,
		TeacherID:       r.TeacherID,
		EvaluationType:  r.EvaluationType,
		EvaluationTitle: r.EvaluationTitle,
		AcademicYear:    r.AcademicYear,
		Semester:        r.Semester,
		MaxScore:        r.MaxScore,
		GradingScaleID:  r.GradingScaleID,
		Rows:            rows,
	}
}

/* =========================
   Grading scales
========================= */

type CreateGradingScaleRequest struct {
	Name        string            `json:"grading_scales_name" validate:"required,max=160"`
	Description *string           `json:"grading_scales_description" validate:"omitempty,max=500"`
	System      string            `json:"grading_scales_system" validate:"required"`
	MaxScore    float64           `json:"grading_scales_max_score" validate:"required,gte=1"`
	PassMark    float64           `json:"grading_scales_pass_mark" validate:"gte=0"`
	Bands       []model.GradeBand `json:"grading_scales_bands" validate:"required,min=1"`
	IsDefault   bool              `json:"grading_scales_is_default"`
}

func (r CreateGradingScaleRequest) ToPayload() svc.ScalePayload {
	return svc.ScalePayload{
		Name:        r.Name,
		Description: r.Description,
		System:      r.System,
		MaxScore:    r.MaxScore,
		PassMark:    r.PassMark,
		Bands:       r.Bands,
		IsDefault:   r.IsDefault,
	}
}

type UpdateGradingScaleRequest struct {
	Name        *string           `json:"grading_scales_name" validate:"omitempty,max=160"`
	Description *string           `json:"grading_scales_description" validate:"omitempty,max=500"`
	PassMark    *float64          `json:"grading_scales_pass_mark" validate:"omitempty,gte=0"`
	Bands       []model.GradeBand `json:"grading_scales_bands" validate:"omitempty,min=1"`
	IsDefault   *bool             `json:"grading_scales_is_default"`
	IsActive    *bool             `json:"grading_scales_is_active"`
}

func (r UpdateGradingScaleRequest) ToPatch() svc.ScalePatch {
	return svc.ScalePatch{
		Name:        r.Name,
		Description: r.Description,
		PassMark:    r.PassMark,
		Bands:       r.Bands,
		IsDefault:   r.IsDefault,
		IsActive:    r.IsActive,
	}
}
