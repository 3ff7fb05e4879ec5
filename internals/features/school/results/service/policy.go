// file: internals/features/school/results/service/policy.go
package service

import (
	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/school/results/model"
)

// Action names every decision the engine can gate.
type Action string

const (
	ActionCreate       Action = "create"
	ActionRead         Action = "read"
	ActionUpdateDraft  Action = "update_draft"
	ActionSubmit       Action = "submit"
	ActionPublish      Action = "publish"
	ActionArchive      Action = "archive"
	ActionLockSemester Action = "lock_semester"
	ActionAuditCorrect Action = "audit_correct"
	ActionSoftDelete   Action = "soft_delete"
	ActionForceDelete  Action = "force_delete"
	ActionBypassLock   Action = "bypass_lock"
)

// Allow implements the authorization table: (role, action, target record) →
// allow/deny. Unlisted combinations deny. Status preconditions are the
// workflow's business, not the policy's; Allow only answers "who".
func Allow(caller Caller, action Action, rec *model.ResultModel) bool {
	switch caller.Role {
	case constants.RoleAdmin, constants.RoleDirector:
		// Global roles: everything, any tenant.
		return true

	case constants.RoleCampusManager:
		if rec == nil || rec.ResultCampusID != caller.CampusID {
			return false
		}
		switch action {
		case ActionCreate, ActionRead, ActionUpdateDraft, ActionSubmit,
			ActionPublish, ActionArchive, ActionLockSemester, ActionSoftDelete:
			return true
		}
		return false

	case constants.RoleTeacher:
		if rec == nil || rec.ResultCampusID != caller.CampusID {
			return false
		}
		switch action {
		case ActionCreate, ActionRead:
			return true
		case ActionUpdateDraft, ActionSubmit, ActionSoftDelete:
			// ownership rule: the record's teacher is the caller
			return rec.ResultTeacherID == caller.UserID
		}
		return false

	case constants.RoleStudent:
		if rec == nil || action != ActionRead {
			return false
		}
		if rec.ResultStudentID != caller.UserID {
			return false
		}
		return rec.ResultStatus == model.StatusPublished || rec.ResultStatus == model.StatusArchived
	}

	return false
}

// requireAllow wraps Allow with the opaque authorization error.
func requireAllow(caller Caller, action Action, rec *model.ResultModel) error {
	if !Allow(caller, action, rec) {
		return Unauthorized()
	}
	return nil
}

// guardPeriodLock rejects mutations on period-locked records for anyone who
// cannot bypass the lock.
func guardPeriodLock(caller Caller, rec *model.ResultModel) error {
	if rec.ResultPeriodLocked && !Allow(caller, ActionBypassLock, rec) {
		return Locked()
	}
	return nil
}
