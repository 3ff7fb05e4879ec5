package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/school/results/model"
)

func TestAllowMatrix(t *testing.T) {
	campusA := uuid.New()
	campusB := uuid.New()
	teacherID := uuid.New()
	otherTeacherID := uuid.New()
	studentID := uuid.New()

	rec := func(campus uuid.UUID, status string) *model.ResultModel {
		return &model.ResultModel{
			ResultCampusID:  campus,
			ResultTeacherID: teacherID,
			ResultStudentID: studentID,
			ResultStatus:    status,
		}
	}

	admin := Caller{UserID: uuid.New(), Role: constants.RoleAdmin}
	director := Caller{UserID: uuid.New(), Role: constants.RoleDirector}
	manager := Caller{UserID: uuid.New(), Role: constants.RoleCampusManager, CampusID: campusA}
	owner := Caller{UserID: teacherID, Role: constants.RoleTeacher, CampusID: campusA}
	otherTeacher := Caller{UserID: otherTeacherID, Role: constants.RoleTeacher, CampusID: campusA}
	student := Caller{UserID: studentID, Role: constants.RoleStudent, CampusID: campusA}
	otherStudent := Caller{UserID: uuid.New(), Role: constants.RoleStudent, CampusID: campusA}

	allActions := []Action{
		ActionCreate, ActionRead, ActionUpdateDraft, ActionSubmit, ActionPublish,
		ActionArchive, ActionLockSemester, ActionAuditCorrect, ActionSoftDelete,
		ActionForceDelete, ActionBypassLock,
	}

	t.Run("global roles may do everything, any campus", func(t *testing.T) {
		for _, caller := range []Caller{admin, director} {
			for _, a := range allActions {
				assert.True(t, Allow(caller, a, rec(campusB, model.StatusPublished)),
					"role=%s action=%s", caller.Role, a)
			}
		}
	})

	t.Run("campus manager scoped to own campus", func(t *testing.T) {
		allowed := map[Action]bool{
			ActionCreate: true, ActionRead: true, ActionUpdateDraft: true,
			ActionSubmit: true, ActionPublish: true, ActionArchive: true,
			ActionLockSemester: true, ActionSoftDelete: true,
		}
		for _, a := range allActions {
			assert.Equal(t, allowed[a], Allow(manager, a, rec(campusA, model.StatusDraft)), "action=%s", a)
			assert.False(t, Allow(manager, a, rec(campusB, model.StatusDraft)), "cross-campus action=%s", a)
		}
	})

	t.Run("teacher ownership rule", func(t *testing.T) {
		draft := rec(campusA, model.StatusDraft)

		assert.True(t, Allow(owner, ActionCreate, draft))
		assert.True(t, Allow(owner, ActionRead, draft))
		assert.True(t, Allow(owner, ActionUpdateDraft, draft))
		assert.True(t, Allow(owner, ActionSubmit, draft))
		assert.True(t, Allow(owner, ActionSoftDelete, draft))
		assert.False(t, Allow(owner, ActionPublish, draft))
		assert.False(t, Allow(owner, ActionArchive, draft))
		assert.False(t, Allow(owner, ActionLockSemester, draft))
		assert.False(t, Allow(owner, ActionAuditCorrect, draft))

		// another teacher of the same campus: reads yes, writes no
		assert.True(t, Allow(otherTeacher, ActionRead, draft))
		assert.False(t, Allow(otherTeacher, ActionUpdateDraft, draft))
		assert.False(t, Allow(otherTeacher, ActionSubmit, draft))
		assert.False(t, Allow(otherTeacher, ActionSoftDelete, draft))

		// cross-campus: nothing
		assert.False(t, Allow(owner, ActionRead, rec(campusB, model.StatusDraft)))
	})

	t.Run("student reads own published results only", func(t *testing.T) {
		assert.True(t, Allow(student, ActionRead, rec(campusA, model.StatusPublished)))
		assert.True(t, Allow(student, ActionRead, rec(campusA, model.StatusArchived)))
		assert.False(t, Allow(student, ActionRead, rec(campusA, model.StatusDraft)))
		assert.False(t, Allow(student, ActionRead, rec(campusA, model.StatusSubmitted)))
		assert.False(t, Allow(otherStudent, ActionRead, rec(campusA, model.StatusPublished)))
		for _, a := range allActions {
			if a == ActionRead {
				continue
			}
			assert.False(t, Allow(student, a, rec(campusA, model.StatusPublished)), "action=%s", a)
		}
	})
}

func TestGuardPeriodLock(t *testing.T) {
	campus := uuid.New()
	locked := &model.ResultModel{
		ResultCampusID:     campus,
		ResultStatus:       model.StatusPublished,
		ResultPeriodLocked: true,
	}

	manager := Caller{UserID: uuid.New(), Role: constants.RoleCampusManager, CampusID: campus}
	admin := Caller{UserID: uuid.New(), Role: constants.RoleAdmin}

	err := guardPeriodLock(manager, locked)
	assert.Equal(t, KindLocked, KindOf(err))

	assert.NoError(t, guardPeriodLock(admin, locked))

	unlocked := &model.ResultModel{ResultCampusID: campus, ResultStatus: model.StatusPublished}
	assert.NoError(t, guardPeriodLock(manager, unlocked))
}
