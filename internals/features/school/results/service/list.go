// file: internals/features/school/results/service/list.go
package service

import (
	"context"

	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/school/results/model"
)

// ListFilters is the filter grammar of the list operation. All fields are
// optional; zero values mean "no filter".
type ListFilters struct {
	ClassID        *uuid.UUID
	SubjectID      *uuid.UUID
	TeacherID      *uuid.UUID
	StudentID      *uuid.UUID
	Status         *string
	EvaluationType *string
	AcademicYear   *string
	Semester       *string
}

// GetByID loads one record, applying the read policy.
func (s *ResultService) GetByID(ctx context.Context, caller Caller, id uuid.UUID) (*model.ResultModel, error) {
	rec, err := loadResult(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if err := requireAllow(caller, ActionRead, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// List pages through the caller-visible records. A STUDENT caller's filter
// is forcibly intersected with their own published/archived records; scoped
// staff are pinned to their campus.
func (s *ResultService) List(ctx context.Context, caller Caller, f ListFilters, page, pageSize int) ([]model.ResultModel, int64, error) {
	if page < 1 {
		return nil, 0, Validation("page", "must be >= 1")
	}
	if pageSize < 1 || pageSize > 200 {
		return nil, 0, Validation("page_size", "must be between 1 and 200")
	}
	if f.Status != nil {
		switch *f.Status {
		case model.StatusDraft, model.StatusSubmitted, model.StatusPublished, model.StatusArchived:
		default:
			return nil, 0, Validation("status", "unknown status")
		}
	}
	if f.EvaluationType != nil {
		if err := validateEvaluationType(*f.EvaluationType); err != nil {
			return nil, 0, err
		}
	}
	if f.AcademicYear != nil {
		if err := validateAcademicYear(*f.AcademicYear); err != nil {
			return nil, 0, err
		}
	}
	if f.Semester != nil {
		if err := validateSemester(*f.Semester); err != nil {
			return nil, 0, err
		}
	}

	q := s.DB.WithContext(ctx).Model(&model.ResultModel{})

	switch caller.Role {
	case constants.RoleStudent:
		// forced intersection: own records, published/archived only
		q = q.Where("result_student_id = ?", caller.UserID).
			Where("result_status IN (?, ?)", model.StatusPublished, model.StatusArchived)
	case constants.RoleAdmin, constants.RoleDirector:
		// no tenant pin
	default:
		if caller.CampusID == uuid.Nil {
			return nil, 0, Unauthorized()
		}
		q = q.Where("result_campus_id = ?", caller.CampusID)
	}

	if f.ClassID != nil {
		q = q.Where("result_class_id = ?", *f.ClassID)
	}
	if f.SubjectID != nil {
		q = q.Where("result_subject_id = ?", *f.SubjectID)
	}
	if f.TeacherID != nil {
		q = q.Where("result_teacher_id = ?", *f.TeacherID)
	}
	if f.StudentID != nil && caller.Role != constants.RoleStudent {
		q = q.Where("result_student_id = ?", *f.StudentID)
	}
	if f.Status != nil && caller.Role != constants.RoleStudent {
		q = q.Where("result_status = ?", *f.Status)
	}
	if f.EvaluationType != nil {
		q = q.Where("result_evaluation_type = ?", *f.EvaluationType)
	}
	if f.AcademicYear != nil {
		q = q.Where("result_academic_year = ?", *f.AcademicYear)
	}
	if f.Semester != nil {
		q = q.Where("result_semester = ?", *f.Semester)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, Transient("result count", err)
	}
	var rows []model.ResultModel
	if err := q.Order("result_created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, Transient("result list", err)
	}
	return rows, total, nil
}
