package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/school/results/model"
)

func TestCanTransition(t *testing.T) {
	statuses := []string{
		model.StatusDraft, model.StatusSubmitted, model.StatusPublished, model.StatusArchived,
	}
	legal := map[[2]string]bool{
		{model.StatusDraft, model.StatusSubmitted}:      true,
		{model.StatusSubmitted, model.StatusPublished}:  true,
		{model.StatusPublished, model.StatusArchived}:   true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			assert.Equal(t, legal[[2]string{from, to}], CanTransition(from, to),
				"%s -> %s", from, to)
		}
	}

	// no edges in or out of unknown states
	assert.False(t, CanTransition("UNKNOWN", model.StatusSubmitted))
	assert.False(t, CanTransition(model.StatusArchived, model.StatusDraft))
}

func TestValidateAcademicYear(t *testing.T) {
	assert.NoError(t, validateAcademicYear("2025-2026"))
	assert.Error(t, validateAcademicYear("2025"))
	assert.Error(t, validateAcademicYear("2025/2026"))
	assert.Error(t, validateAcademicYear(""))
	assert.Error(t, validateAcademicYear("25-26"))
}

func TestAuditCorrectGate(t *testing.T) {
	campusID := uuid.New()
	rec := func(locked bool) *model.ResultModel {
		return &model.ResultModel{
			ResultCampusID:     campusID,
			ResultTeacherID:    uuid.New(),
			ResultStudentID:    uuid.New(),
			ResultStatus:       model.StatusPublished,
			ResultPeriodLocked: locked,
		}
	}

	manager := Caller{UserID: uuid.New(), Role: constants.RoleCampusManager, CampusID: campusID}
	admin := Caller{UserID: uuid.New(), Role: constants.RoleAdmin}

	// a manager on a locked record is told about the lock, not about the role
	err := auditCorrectGate(manager, rec(true))
	assert.Equal(t, KindLocked, KindOf(err))

	// unlocked, the role policy answers: audit-correct is for global roles
	err = auditCorrectGate(manager, rec(false))
	assert.Equal(t, KindAuthorization, KindOf(err))

	// global roles pass both checks, locked or not
	assert.NoError(t, auditCorrectGate(admin, rec(true)))
	assert.NoError(t, auditCorrectGate(admin, rec(false)))
}

func TestValidateSemester(t *testing.T) {
	assert.NoError(t, validateSemester(model.SemesterS1))
	assert.NoError(t, validateSemester(model.SemesterS2))
	assert.NoError(t, validateSemester(model.SemesterAnnual))
	assert.Error(t, validateSemester("S3"))
	assert.Error(t, validateSemester(""))
}
