// file: internals/features/school/results/controller/workflow_controller.go
package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "sekolahku_backend/internals/features/school/results/dto"
	svc "sekolahku_backend/internals/features/school/results/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ========================================================
   Workflow transitions + side channels. Batch endpoints
   answer 207 when some records fail.
======================================================== */

func (ctl *ResultController) transition(c *fiber.Ctx, message string, do func(svc.Caller, uuid.UUID) (interface{}, error)) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid result id")
	}
	rec, err := do(caller, id)
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, message, rec)
}

func (ctl *ResultController) Submit(c *fiber.Ctx) error {
	return ctl.transition(c, "Result submitted", func(caller svc.Caller, id uuid.UUID) (interface{}, error) {
		return ctl.Service.Submit(c.UserContext(), caller, id)
	})
}

func (ctl *ResultController) Publish(c *fiber.Ctx) error {
	return ctl.transition(c, "Result published", func(caller svc.Caller, id uuid.UUID) (interface{}, error) {
		return ctl.Service.Publish(c.UserContext(), caller, id)
	})
}

func (ctl *ResultController) Archive(c *fiber.Ctx) error {
	return ctl.transition(c, "Result archived", func(caller svc.Caller, id uuid.UUID) (interface{}, error) {
		return ctl.Service.Archive(c.UserContext(), caller, id)
	})
}

func writeBatchReport(c *fiber.Ctx, message string, report svc.BatchReport) error {
	if len(report.Failed) > 0 {
		return helper.MultiStatus(c, message, report)
	}
	return helper.Success(c, message, report)
}

func (ctl *ResultController) SubmitBatch(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	var req dto.BatchIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	report := ctl.Service.SubmitBatch(c.UserContext(), caller, req.IDs)
	return writeBatchReport(c, "Batch submit processed", report)
}

func (ctl *ResultController) PublishBatch(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	campusID, err := ctl.callerCampus(c, caller)
	if err != nil {
		return err
	}
	var req dto.PublishBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	report, err := ctl.Service.PublishBatch(c.UserContext(), caller, svc.PublishBatchFilter{
		CampusID:        campusID,
		ClassID:         req.ClassID,
		SubjectID:       req.SubjectID,
		EvaluationTitle: req.EvaluationTitle,
		AcademicYear:    req.AcademicYear,
		Semester:        req.Semester,
	})
	if err != nil {
		return writeAppError(c, err)
	}
	return writeBatchReport(c, "Batch publish processed", report)
}

func (ctl *ResultController) LockSemester(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	campusID, err := ctl.callerCampus(c, caller)
	if err != nil {
		return err
	}
	var req dto.LockSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	locked, err := ctl.Service.LockSemester(c.UserContext(), caller, campusID, req.AcademicYear, req.Semester)
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "Semester locked", fiber.Map{"locked_count": locked})
}

func (ctl *ResultController) AuditCorrect(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid result id")
	}
	var req dto.AuditCorrectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	rec, err := ctl.Service.AuditCorrect(c.UserContext(), caller, id, svc.AuditCorrectInput{
		Score:   req.Score,
		Comment: req.Comment,
		Reason:  req.Reason,
	})
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "Result corrected", rec)
}
