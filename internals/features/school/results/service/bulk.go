// file: internals/features/school/results/service/bulk.go
package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/school/results/model"
)

/* =========================
   Bulk draft ingestion
========================= */

// BulkRow is one line of an evaluation sheet. Index is the row's position in
// the submitted payload or upload file; it survives parse-time filtering so
// that row errors always point at the line the caller sent.
type BulkRow struct {
	Index       int
	StudentID   uuid.UUID
	Score       float64
	Comment     *string
	Coefficient *float64
}

type BulkCreateInput struct {
	CampusID        uuid.UUID
	ClassID         uuid.UUID
	SubjectID       uuid.UUID
	TeacherID       uuid.UUID
	EvaluationType  string
	EvaluationTitle string
	AcademicYear    string
	Semester        string
	MaxScore        float64
	GradingScaleID  *uuid.UUID
	Rows            []BulkRow
}

type BulkRowError struct {
	Index     int       `json:"index"`
	StudentID uuid.UUID `json:"student_id"`
	Error     string    `json:"error"`
}

type BulkReport struct {
	InsertedCount int            `json:"inserted_count"`
	SkippedCount  int            `json:"skipped_count"`
	Errors        []BulkRowError `json:"errors"`
}

// BulkCreateDrafts inserts one DRAFT per row of an evaluation sheet. Rows are
// validated against the class enrollment and inserted one by one so that a
// duplicate row is skipped, not rolled back with the rest of the batch.
func (s *ResultService) BulkCreateDrafts(ctx context.Context, caller Caller, in BulkCreateInput) (*BulkReport, error) {
	target := &model.ResultModel{ResultCampusID: in.CampusID, ResultTeacherID: in.TeacherID}
	if err := requireAllow(caller, ActionCreate, target); err != nil {
		return nil, err
	}
	if len(in.Rows) == 0 {
		return nil, Validation("rows", "at least one row is required")
	}
	if err := validateAcademicYear(in.AcademicYear); err != nil {
		return nil, err
	}
	if err := validateSemester(in.Semester); err != nil {
		return nil, err
	}
	if err := validateEvaluationType(in.EvaluationType); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.EvaluationTitle)
	if title == "" || len(title) > 100 {
		return nil, Validation("evaluation_title", "is required, at most 100 characters")
	}
	if in.MaxScore < 1 {
		return nil, Validation("max_score", "must be >= 1")
	}

	for _, check := range []struct {
		name string
		fn   func() (bool, error)
	}{
		{"class_id", func() (bool, error) { return s.Resolver.ClassBelongsToCampus(ctx, in.ClassID, in.CampusID) }},
		{"subject_id", func() (bool, error) { return s.Resolver.SubjectBelongsToCampus(ctx, in.SubjectID, in.CampusID) }},
		{"teacher_id", func() (bool, error) { return s.Resolver.TeacherBelongsToCampus(ctx, in.TeacherID, in.CampusID) }},
	} {
		ok, err := check.fn()
		if err != nil {
			return nil, Transient("tenancy check", err)
		}
		if !ok {
			return nil, Validation(check.name, "does not belong to this campus")
		}
	}

	enrolledIDs, err := s.Resolver.ClassEnrolledStudents(ctx, in.ClassID)
	if err != nil {
		return nil, Transient("enrollment lookup", err)
	}
	enrolled := make(map[uuid.UUID]struct{}, len(enrolledIDs))
	for _, id := range enrolledIDs {
		enrolled[id] = struct{}{}
	}

	scale, err := s.resolveScale(ctx, s.DB, in.CampusID, in.GradingScaleID)
	if err != nil {
		return nil, err
	}
	year, _ := strconv.Atoi(in.AcademicYear[:4])

	report := &BulkReport{Errors: []BulkRowError{}}
	for _, row := range in.Rows {
		if err := ctx.Err(); err != nil {
			report.SkippedCount++
			report.Errors = append(report.Errors, BulkRowError{Index: row.Index, StudentID: row.StudentID, Error: "cancelled"})
			continue
		}
		if rowErr := s.bulkInsertRow(ctx, caller, in, title, year, scale, enrolled, row); rowErr != nil {
			report.SkippedCount++
			report.Errors = append(report.Errors, BulkRowError{Index: row.Index, StudentID: row.StudentID, Error: rowErr.Error()})
			continue
		}
		report.InsertedCount++
	}
	return report, nil
}

func (s *ResultService) bulkInsertRow(ctx context.Context, caller Caller, in BulkCreateInput, title string, year int, scale ScaleData, enrolled map[uuid.UUID]struct{}, row BulkRow) error {
	if row.StudentID == uuid.Nil {
		return Validation("student_id", "is required")
	}
	if _, ok := enrolled[row.StudentID]; !ok {
		return Validation("student_id", "student is not enrolled in this class")
	}
	coefficient := 1.0
	if row.Coefficient != nil {
		if *row.Coefficient < 0 {
			return Validation("coefficient", "must be >= 0")
		}
		coefficient = *row.Coefficient
	}

	d, err := Derive(row.Score, in.MaxScore, in.EvaluationType, scale)
	if err != nil {
		return err
	}

	rec := model.ResultModel{
		ResultCampusID:        in.CampusID,
		ResultAcademicYear:    in.AcademicYear,
		ResultSemester:        in.Semester,
		ResultStudentID:       row.StudentID,
		ResultClassID:         in.ClassID,
		ResultSubjectID:       in.SubjectID,
		ResultTeacherID:       in.TeacherID,
		ResultEvaluationType:  in.EvaluationType,
		ResultEvaluationTitle: title,
		ResultScore:           row.Score,
		ResultMaxScore:        in.MaxScore,
		ResultCoefficient:     coefficient,
		ResultComment:         row.Comment,
		ResultGradingScaleID:  in.GradingScaleID,
		ResultNormalizedScore: d.NormalizedScore,
		ResultGradeBand:       d.GradeBand,
		ResultRetakeEligible:  d.RetakeEligible,
		ResultPassed:          d.Passed,
		ResultStatus:          model.StatusDraft,
		ResultAuditTrail:      datatypes.JSON([]byte("[]")),
		ResultVersion:         1,
		ResultCreatedBy:       caller.UserID,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ref, err := nextResultRef(tx, year)
		if err != nil {
			return err
		}
		rec.ResultReference = ref
		return tx.Create(&rec).Error
	})
	if err != nil {
		if IsDuplicateKey(err) {
			return Conflict("duplicate: a result for this evaluation already exists", false)
		}
		var ae *AppError
		if errors.As(err, &ae) {
			return ae
		}
		return Transient("bulk row insert", err)
	}
	return nil
}
