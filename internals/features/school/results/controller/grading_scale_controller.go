// file: internals/features/school/results/controller/grading_scale_controller.go
package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "sekolahku_backend/internals/features/school/results/dto"
	helper "sekolahku_backend/internals/helpers"
)

func (ctl *ResultController) ListGradingScales(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	campusID, err := ctl.callerCampus(c, caller)
	if err != nil {
		return err
	}
	includeInactive := c.QueryBool("include_inactive", false)
	rows, err := ctl.Service.ListScales(c.UserContext(), caller, campusID, includeInactive)
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *ResultController) CreateGradingScale(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	campusID, err := ctl.callerCampus(c, caller)
	if err != nil {
		return err
	}
	var req dto.CreateGradingScaleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	row, err := ctl.Service.CreateScale(c.UserContext(), caller, campusID, req.ToPayload())
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Grading scale created", row)
}

func (ctl *ResultController) UpdateGradingScale(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid grading scale id")
	}
	var req dto.UpdateGradingScaleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	row, err := ctl.Service.UpdateScale(c.UserContext(), caller, id, req.ToPatch())
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "Grading scale updated", row)
}
