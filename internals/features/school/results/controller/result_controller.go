// file: internals/features/school/results/controller/result_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/school/results/dto"
	svc "sekolahku_backend/internals/features/school/results/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ========================================================
   Controller — thin HTTP shell around the result engine.
   All business rules live in the service; the controller
   only decodes, delegates and maps errors.
======================================================== */

type ResultController struct {
	Service   *svc.ResultService
	Validator *validator.Validate
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{
		Service:   svc.NewResultService(db),
		Validator: validator.New(),
	}
}

// caller rebuilds the engine identity from the auth locals.
func (ctl *ResultController) caller(c *fiber.Ctx) (svc.Caller, error) {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return svc.Caller{}, fiber.NewError(http.StatusUnauthorized, "missing user identity")
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return svc.Caller{}, fiber.NewError(http.StatusUnauthorized, "missing role")
	}
	campusID, err := helperAuth.GetCampusIDFromToken(c)
	if err != nil {
		return svc.Caller{}, fiber.NewError(http.StatusUnauthorized, "invalid campus scope")
	}
	return svc.Caller{UserID: userID, Role: role, CampusID: campusID, IP: c.IP()}, nil
}

// callerCampus is the tenant the request operates on: global roles may pass
// ?campus_id=, scoped roles are pinned to the token campus.
func (ctl *ResultController) callerCampus(c *fiber.Ctx, caller svc.Caller) (uuid.UUID, error) {
	if constants.IsGlobalRole(caller.Role) {
		if q := strings.TrimSpace(c.Query("campus_id")); q != "" {
			id, err := uuid.Parse(q)
			if err != nil {
				return uuid.Nil, fiber.NewError(http.StatusBadRequest, "invalid campus_id")
			}
			return id, nil
		}
	}
	return caller.CampusID, nil
}

// writeAppError maps the engine's error taxonomy onto HTTP.
func writeAppError(c *fiber.Ctx, err error) error {
	msg := err.Error()
	switch svc.KindOf(err) {
	case svc.KindValidation:
		return helper.Error(c, http.StatusBadRequest, msg)
	case svc.KindAuthorization:
		return helper.Error(c, http.StatusForbidden, msg)
	case svc.KindNotFound:
		return helper.Error(c, http.StatusNotFound, msg)
	case svc.KindConflict:
		return helper.Error(c, http.StatusConflict, msg)
	case svc.KindLocked:
		return helper.Error(c, http.StatusLocked, msg)
	default:
		return helper.Error(c, http.StatusInternalServerError, msg)
	}
}

/* =========================
   CRUD
========================= */

func (ctl *ResultController) CreateDraft(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	var req dto.CreateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	campusID := caller.CampusID
	if caller.IsGlobal() && req.CampusID != nil {
		campusID = *req.CampusID
	}
	if campusID == uuid.Nil {
		return helper.Error(c, http.StatusBadRequest, "result_campus_id is required for global roles")
	}

	rec, err := ctl.Service.CreateDraft(c.UserContext(), caller, req.ToInput(campusID))
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Result draft created", rec)
}

func (ctl *ResultController) UpdateDraft(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid result id")
	}
	var req dto.UpdateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rec, err := ctl.Service.UpdateDraft(c.UserContext(), caller, id, req.ToInput())
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "Result updated", rec)
}

func (ctl *ResultController) SoftDelete(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid result id")
	}
	if err := ctl.Service.SoftDelete(c.UserContext(), caller, id); err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "Result deleted", nil)
}

func (ctl *ResultController) GetByID(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid result id")
	}
	rec, err := ctl.Service.GetByID(c.UserContext(), caller, id)
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "OK", rec)
}

func (ctl *ResultController) List(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	page, err := helper.ParsePagination(c)
	if err != nil {
		return err
	}

	f := svc.ListFilters{}
	parseUUID := func(name string, dst **uuid.UUID) error {
		q := strings.TrimSpace(c.Query(name))
		if q == "" {
			return nil
		}
		id, err := uuid.Parse(q)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid "+name)
		}
		*dst = &id
		return nil
	}
	for name, dst := range map[string]**uuid.UUID{
		"class_id":   &f.ClassID,
		"subject_id": &f.SubjectID,
		"teacher_id": &f.TeacherID,
		"student_id": &f.StudentID,
	} {
		if err := parseUUID(name, dst); err != nil {
			return err
		}
	}
	parseStr := func(name string, dst **string) {
		if q := strings.TrimSpace(c.Query(name)); q != "" {
			*dst = &q
		}
	}
	parseStr("status", &f.Status)
	parseStr("evaluation_type", &f.EvaluationType)
	parseStr("academic_year", &f.AcademicYear)
	parseStr("semester", &f.Semester)

	rows, total, err := ctl.Service.List(c.UserContext(), caller, f, page.Page, page.PageSize)
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"data": rows, "total": total, "page": page.Page, "page_size": page.PageSize,
	})
}
