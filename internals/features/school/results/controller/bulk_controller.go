// file: internals/features/school/results/controller/bulk_controller.go
package controller

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "sekolahku_backend/internals/features/school/results/dto"
	svc "sekolahku_backend/internals/features/school/results/service"
	helper "sekolahku_backend/internals/helpers"
)

func (ctl *ResultController) bulkCampus(c *fiber.Ctx, caller svc.Caller) (uuid.UUID, error) {
	campusID, err := ctl.callerCampus(c, caller)
	if err != nil {
		return uuid.Nil, err
	}
	if campusID == uuid.Nil {
		return uuid.Nil, fiber.NewError(http.StatusBadRequest, "campus_id is required for global roles")
	}
	return campusID, nil
}

// BulkCreate ingests one evaluation sheet as JSON rows.
func (ctl *ResultController) BulkCreate(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	campusID, err := ctl.bulkCampus(c, caller)
	if err != nil {
		return err
	}
	var req dto.BulkCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	report, err := ctl.Service.BulkCreateDrafts(c.UserContext(), caller, req.ToInput(campusID))
	if err != nil {
		return writeAppError(c, err)
	}
	if len(report.Errors) > 0 {
		return helper.MultiStatus(c, "Bulk create processed", report)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Bulk create processed", report)
}

// BulkImport ingests an evaluation sheet uploaded as a CSV or XLSX file
// (multipart field "file"), with the sheet metadata in form fields.
func (ctl *ResultController) BulkImport(c *fiber.Ctx) error {
	caller, err := ctl.caller(c)
	if err != nil {
		return err
	}
	campusID, err := ctl.bulkCampus(c, caller)
	if err != nil {
		return err
	}

	var meta dto.BulkImportForm
	if err := c.BodyParser(&meta); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid form fields")
	}
	if err := ctl.Validator.Struct(meta); err != nil {
		return helper.ValidationError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "unreadable upload")
	}
	defer f.Close()

	rows, parseErrs, err := parseUpload(fh.Filename, f)
	if err != nil {
		return writeAppError(c, err)
	}

	report, err := ctl.Service.BulkCreateDrafts(c.UserContext(), caller, meta.ToInput(campusID, rows))
	if err != nil {
		return writeAppError(c, err)
	}
	// parse and insert errors share an index space: the file's data-row order
	report.Errors = append(report.Errors, parseErrs...)
	report.SkippedCount += len(parseErrs)

	if len(report.Errors) > 0 {
		return helper.MultiStatus(c, "Bulk import processed", report)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Bulk import processed", report)
}

func parseUpload(filename string, r io.Reader) ([]svc.BulkRow, []svc.BulkRowError, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return svc.ParseCSVRows(r)
	case ".xlsx":
		return svc.ParseXLSXRows(r)
	}
	return nil, nil, svc.Validation("file", "unsupported format, expected .csv or .xlsx")
}
