// file: internals/features/school/results/service/transcript.go
package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/school/results/model"
)

// TranscriptRow is the flat projection the transcript is built from.
type TranscriptRow struct {
	AcademicYear       string
	Semester           string
	SubjectID          uuid.UUID
	SubjectName        string
	SubjectCoefficient *float64
	Score              float64
	MaxScore           float64
	Coefficient        float64
}

type TranscriptSubject struct {
	SubjectID       uuid.UUID `json:"subject_id"`
	SubjectName     string    `json:"subject_name"`
	Coefficient     float64   `json:"coefficient"`
	EvaluationCount int       `json:"evaluation_count"`
	SubjectAverage  float64   `json:"subject_average"`
}

type TranscriptSemester struct {
	AcademicYear string              `json:"academic_year"`
	Semester     string              `json:"semester"`
	Subjects     []TranscriptSubject `json:"subjects"`
	// Nil when the coefficient sum is zero: reported, never forced to 0.
	GeneralAverage *float64 `json:"general_average"`
}

type TranscriptView struct {
	StudentID uuid.UUID            `json:"student_id"`
	Semesters []TranscriptSemester `json:"semesters"`
}

var semesterRank = map[string]int{
	model.SemesterS1:     1,
	model.SemesterS2:     2,
	model.SemesterAnnual: 3,
}

// GetTranscript assembles the semester-grouped weighted transcript.
func (s *ResultService) GetTranscript(ctx context.Context, caller Caller, studentID uuid.UUID, academicYear *string) (*TranscriptView, error) {
	switch caller.Role {
	case constants.RoleStudent:
		if studentID != caller.UserID {
			return nil, Unauthorized()
		}
	case constants.RoleAdmin, constants.RoleDirector:
		// any campus
	default:
		ok, err := s.Resolver.StudentBelongsToCampus(ctx, studentID, caller.CampusID)
		if err != nil {
			return nil, Transient("tenancy check", err)
		}
		if !ok {
			return nil, Unauthorized()
		}
	}
	if academicYear != nil {
		if err := validateAcademicYear(*academicYear); err != nil {
			return nil, err
		}
	}

	q := s.DB.WithContext(ctx).Table("results").
		Select(`results.result_academic_year AS academic_year,
			results.result_semester AS semester,
			results.result_subject_id AS subject_id,
			subjects.subject_name AS subject_name,
			subjects.subject_coefficient AS subject_coefficient,
			results.result_score AS score,
			results.result_max_score AS max_score,
			results.result_coefficient AS coefficient`).
		Joins("JOIN subjects ON subjects.subject_id = results.result_subject_id").
		Where("results.result_student_id = ?", studentID).
		Where("results.result_status IN (?, ?)", model.StatusPublished, model.StatusArchived).
		Where("results.result_retake_of IS NULL").
		Where("results.result_deleted_at IS NULL")
	if academicYear != nil {
		q = q.Where("results.result_academic_year = ?", *academicYear)
	}

	var rows []TranscriptRow
	if err := q.Order("results.result_published_at ASC").Find(&rows).Error; err != nil {
		return nil, Transient("transcript select", err)
	}

	view := BuildTranscript(rows)
	view.StudentID = studentID
	return view, nil
}

// BuildTranscript groups rows by (year, semester, subject), averages each
// subject on the 0–20 axis, then weights subject averages into the semester
// general average. Deterministic for a fixed row set.
func BuildTranscript(rows []TranscriptRow) *TranscriptView {
	type semKey struct{ year, semester string }
	type subjAgg struct {
		name        string
		coefficient float64
		sum         float64
		count       int
	}

	semesters := map[semKey]map[uuid.UUID]*subjAgg{}
	for _, r := range rows {
		k := semKey{r.AcademicYear, r.Semester}
		if semesters[k] == nil {
			semesters[k] = map[uuid.UUID]*subjAgg{}
		}
		agg := semesters[k][r.SubjectID]
		if agg == nil {
			// subject descriptor weight wins; the record's own coefficient
			// is the fallback
			coeff := r.Coefficient
			if r.SubjectCoefficient != nil {
				coeff = *r.SubjectCoefficient
			}
			agg = &subjAgg{name: r.SubjectName, coefficient: coeff}
			semesters[k][r.SubjectID] = agg
		}
		agg.sum += r.Score / r.MaxScore * 20
		agg.count++
	}

	out := make([]TranscriptSemester, 0, len(semesters))
	for k, subjects := range semesters {
		sem := TranscriptSemester{AcademicYear: k.year, Semester: k.semester}

		ids := make([]uuid.UUID, 0, len(subjects))
		for id := range subjects {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return subjects[ids[i]].name < subjects[ids[j]].name })

		var weightedSum, coeffSum float64
		for _, id := range ids {
			agg := subjects[id]
			avg := Round2(agg.sum / float64(agg.count))
			sem.Subjects = append(sem.Subjects, TranscriptSubject{
				SubjectID:       id,
				SubjectName:     agg.name,
				Coefficient:     agg.coefficient,
				EvaluationCount: agg.count,
				SubjectAverage:  avg,
			})
			weightedSum += avg * agg.coefficient
			coeffSum += agg.coefficient
		}
		if coeffSum > 0 {
			general := Round2(weightedSum / coeffSum)
			sem.GeneralAverage = &general
		}
		out = append(out, sem)
	}

	// academicYear desc, then semester asc (S1, S2, Annual)
	sort.Slice(out, func(i, j int) bool {
		if out[i].AcademicYear != out[j].AcademicYear {
			return out[i].AcademicYear > out[j].AcademicYear
		}
		return semesterRank[out[i].Semester] < semesterRank[out[j].Semester]
	})

	return &TranscriptView{Semesters: out}
}
