// file: internals/features/school/results/service/verify.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/school/results/model"
)

// VerificationView is the minimal, non-sensitive payload served on the
// public verify endpoint.
type VerificationView struct {
	IsAuthentic bool `json:"is_authentic"`

	Student struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Matricule string `json:"matricule"`
	} `json:"student"`
	Subject struct {
		Name string `json:"name"`
		Code string `json:"code"`
	} `json:"subject"`
	ClassName string `json:"class_name"`

	AcademicYear    string  `json:"academic_year"`
	Semester        string  `json:"semester"`
	EvaluationType  string  `json:"evaluation_type"`
	EvaluationTitle string  `json:"evaluation_title"`
	ScoreOn20       float64 `json:"score_on_20"`
	GradeBand       string  `json:"grade_band"`

	PublishedAt *time.Time `json:"published_at"`
}

// errInvalidToken is the single opaque answer for every failed lookup: a
// missing token, a draft and a tombstoned record are indistinguishable.
func errInvalidToken() *AppError {
	return &AppError{Kind: KindNotFound, Msg: "invalid or expired verification token"}
}

// VerifyByToken is the only unauthenticated operation of the engine.
func (s *ResultService) VerifyByToken(ctx context.Context, token string) (*VerificationView, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errInvalidToken()
	}

	var row struct {
		model.ResultModel
		StudentFirstName string
		StudentLastName  string
		StudentMatricule string
		SubjectName      string
		SubjectCode      string
		ClassName        string
	}
	err := s.DB.WithContext(ctx).Table("results").
		Select(`results.*,
			students.student_first_name, students.student_last_name, students.student_matricule,
			subjects.subject_name, subjects.subject_code,
			classes.class_name`).
		Joins("JOIN students ON students.student_id = results.result_student_id").
		Joins("JOIN subjects ON subjects.subject_id = results.result_subject_id").
		Joins("JOIN classes ON classes.class_id = results.result_class_id").
		Where("results.result_verification_token = ?", token).
		Where("results.result_status IN (?, ?)", model.StatusPublished, model.StatusArchived).
		Where("results.result_deleted_at IS NULL").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidToken()
		}
		return nil, Transient("verification lookup", err)
	}

	view := &VerificationView{
		IsAuthentic:     true,
		ClassName:       row.ClassName,
		AcademicYear:    row.ResultAcademicYear,
		Semester:        row.ResultSemester,
		EvaluationType:  row.ResultEvaluationType,
		EvaluationTitle: row.ResultEvaluationTitle,
		ScoreOn20:       row.ResultNormalizedScore,
		GradeBand:       row.ResultGradeBand,
		PublishedAt:     row.ResultPublishedAt,
	}
	view.Student.FirstName = row.StudentFirstName
	view.Student.LastName = row.StudentLastName
	view.Student.Matricule = row.StudentMatricule
	view.Subject.Name = row.SubjectName
	view.Subject.Code = row.SubjectCode
	return view, nil
}
