// file: internals/features/school/results/controller/analytics_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	svc "sekolahku_backend/internals/features/school/results/service"
	helper "sekolahku_backend/internals/helpers"
)

func (ctl *ResultController) ClassDistribution(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	campusID, err := ctl.callerCampus(c, caller)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid class_id")
	}
	subjectID, err := uuid.Parse(c.Query("subject_id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid subject_id")
	}
	dist, err := ctl.Service.GetClassDistribution(c.UserContext(), caller, campusID, svc.DistributionFilter{
		ClassID:         classID,
		SubjectID:       subjectID,
		EvaluationTitle: strings.TrimSpace(c.Query("evaluation_title")),
		AcademicYear:    strings.TrimSpace(c.Query("academic_year")),
		Semester:        strings.TrimSpace(c.Query("semester")),
	})
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "OK", dist)
}

func (ctl *ResultController) RetakeList(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	campusID, err := ctl.callerCampus(c, caller)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid class_id")
	}
	cohort, err := ctl.Service.GetRetakeList(c.UserContext(), caller, campusID, classID,
		strings.TrimSpace(c.Query("academic_year")),
		strings.TrimSpace(c.Query("semester")))
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "OK", cohort)
}

func (ctl *ResultController) CampusOverview(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	campusID, err := ctl.callerCampus(c, caller)
	if err != nil {
		return err
	}
	ov, err := ctl.Service.GetCampusOverview(c.UserContext(), caller, campusID)
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "OK", ov)
}

func (ctl *ResultController) Transcript(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid student id")
	}
	var academicYear *string
	if q := strings.TrimSpace(c.Query("academic_year")); q != "" {
		academicYear = &q
	}
	view, err := ctl.Service.GetTranscript(c.UserContext(), caller, studentID, academicYear)
	if err != nil {
		return writeAppError(c, err)
	}
	return helper.Success(c, "OK", view)
}
