package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "sekolahku_backend/internals/features/school/results/model"
)

func TestBuildTranscriptEmpty(t *testing.T) {
	view := BuildTranscript(nil)
	assert.Empty(t, view.Semesters)
}

func TestBuildTranscriptWeightedAverages(t *testing.T) {
	math := uuid.New()
	history := uuid.New()
	mathCoeff := 4.0

	rows := []TranscriptRow{
		// two math evaluations, subject coefficient 4
		{AcademicYear: "2025-2026", Semester: model.SemesterS1, SubjectID: math,
			SubjectName: "Mathematics", SubjectCoefficient: &mathCoeff,
			Score: 14, MaxScore: 20, Coefficient: 1},
		{AcademicYear: "2025-2026", Semester: model.SemesterS1, SubjectID: math,
			SubjectName: "Mathematics", SubjectCoefficient: &mathCoeff,
			Score: 16, MaxScore: 20, Coefficient: 1},
		// one history evaluation, no subject coefficient: the record's own
		// weight (2) applies
		{AcademicYear: "2025-2026", Semester: model.SemesterS1, SubjectID: history,
			SubjectName: "History", Score: 5, MaxScore: 10, Coefficient: 2},
	}

	view := BuildTranscript(rows)
	require.Len(t, view.Semesters, 1)
	sem := view.Semesters[0]
	assert.Equal(t, "2025-2026", sem.AcademicYear)
	assert.Equal(t, model.SemesterS1, sem.Semester)
	require.Len(t, sem.Subjects, 2)

	// subjects come sorted by name
	assert.Equal(t, "History", sem.Subjects[0].SubjectName)
	assert.Equal(t, 10.0, sem.Subjects[0].SubjectAverage)
	assert.Equal(t, 2.0, sem.Subjects[0].Coefficient)

	assert.Equal(t, "Mathematics", sem.Subjects[1].SubjectName)
	assert.Equal(t, 15.0, sem.Subjects[1].SubjectAverage)
	assert.Equal(t, 4.0, sem.Subjects[1].Coefficient)
	assert.Equal(t, 2, sem.Subjects[1].EvaluationCount)

	// (15×4 + 10×2) / 6 = 13.33
	require.NotNil(t, sem.GeneralAverage)
	assert.Equal(t, 13.33, *sem.GeneralAverage)
}

func TestBuildTranscriptZeroCoefficientSum(t *testing.T) {
	subject := uuid.New()
	rows := []TranscriptRow{
		{AcademicYear: "2025-2026", Semester: model.SemesterS1, SubjectID: subject,
			SubjectName: "Art", Score: 12, MaxScore: 20, Coefficient: 0},
	}
	view := BuildTranscript(rows)
	require.Len(t, view.Semesters, 1)
	assert.Nil(t, view.Semesters[0].GeneralAverage, "no weights means no general average")
}

func TestBuildTranscriptOrdering(t *testing.T) {
	subject := uuid.New()
	row := func(year, semester string) TranscriptRow {
		return TranscriptRow{AcademicYear: year, Semester: semester, SubjectID: subject,
			SubjectName: "Mathematics", Score: 10, MaxScore: 20, Coefficient: 1}
	}
	view := BuildTranscript([]TranscriptRow{
		row("2024-2025", model.SemesterS2),
		row("2025-2026", model.SemesterAnnual),
		row("2025-2026", model.SemesterS1),
		row("2024-2025", model.SemesterS1),
		row("2025-2026", model.SemesterS2),
	})

	got := make([][2]string, 0, len(view.Semesters))
	for _, s := range view.Semesters {
		got = append(got, [2]string{s.AcademicYear, s.Semester})
	}
	assert.Equal(t, [][2]string{
		{"2025-2026", model.SemesterS1},
		{"2025-2026", model.SemesterS2},
		{"2025-2026", model.SemesterAnnual},
		{"2024-2025", model.SemesterS1},
		{"2024-2025", model.SemesterS2},
	}, got)
}
