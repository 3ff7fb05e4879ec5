// file: internals/features/school/academics/controller/academics_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/school/academics/dto"
	model "sekolahku_backend/internals/features/school/academics/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ========================================================
   Controller — thin CRUD over the identity tables.
   The result engine never writes these; it only asks the
   resolver about them.
======================================================== */

type AcademicsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicsController(db *gorm.DB) *AcademicsController {
	return &AcademicsController{DB: db, Validator: validator.New()}
}

// callerCampus resolves the tenant the caller may operate on. Global roles
// may pass ?campus_id=, scoped roles are pinned to their token campus.
func (ctl *AcademicsController) callerCampus(c *fiber.Ctx) (uuid.UUID, error) {
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(http.StatusUnauthorized, "missing role")
	}
	if constants.IsGlobalRole(role) {
		if q := strings.TrimSpace(c.Query("campus_id")); q != "" {
			return uuid.Parse(q)
		}
	}
	campusID, err := helperAuth.GetCampusIDFromToken(c)
	if err != nil || campusID == uuid.Nil {
		return uuid.Nil, fiber.NewError(http.StatusUnauthorized, "campus scope not found in token")
	}
	return campusID, nil
}

/* =========================
   Campuses
========================= */

func (ctl *AcademicsController) ListCampuses(c *fiber.Ctx) error {
	var rows []model.CampusModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("campus_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *AcademicsController) CreateCampus(c *fiber.Ctx) error {
	var req dto.CreateCampusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	row := model.CampusModel{
		CampusName:    req.Name,
		CampusCode:    strings.ToUpper(strings.TrimSpace(req.Code)),
		CampusAddress: req.Address,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Campus created", row)
}

/* =========================
   Students
========================= */

func (ctl *AcademicsController) ListStudents(c *fiber.Ctx) error {
	campusID, err := ctl.callerCampus(c)
	if err != nil {
		return err
	}
	page, err := helper.ParsePagination(c)
	if err != nil {
		return err
	}
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{}).
		Where("student_campus_id = ?", campusID)
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("student_first_name ILIKE ? OR student_last_name ILIKE ? OR student_matricule ILIKE ?", like, like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	var rows []model.StudentModel
	if err := q.Order("student_last_name ASC").
		Limit(page.PageSize).Offset(page.Offset()).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{"data": rows, "total": total, "page": page.Page, "page_size": page.PageSize})
}

func (ctl *AcademicsController) GetStudentByID(c *fiber.Ctx) error {
	campusID, err := ctl.callerCampus(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid student id")
	}
	var row model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ? AND student_campus_id = ?", id, campusID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Student not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", row)
}

func (ctl *AcademicsController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	row := model.StudentModel{
		StudentCampusID:  req.CampusID,
		StudentMatricule: strings.TrimSpace(req.Matricule),
		StudentFirstName: req.FirstName,
		StudentLastName:  req.LastName,
		StudentGender:    req.Gender,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Student created", row)
}

/* =========================
   Classes + enrollment
========================= */

func (ctl *AcademicsController) ListClasses(c *fiber.Ctx) error {
	campusID, err := ctl.callerCampus(c)
	if err != nil {
		return err
	}
	var rows []model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_campus_id = ?", campusID).
		Order("class_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *AcademicsController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	row := model.ClassModel{
		ClassCampusID: req.CampusID,
		ClassName:     req.Name,
		ClassLevel:    req.Level,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Class created", row)
}

func (ctl *AcademicsController) EnrollStudent(c *fiber.Ctx) error {
	campusID, err := ctl.callerCampus(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "invalid class id")
	}
	var req dto.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// both sides must live in the caller's campus
	var n int64
	if err := ctl.DB.WithContext(c.UserContext()).Table("classes").
		Where("class_id = ? AND class_campus_id = ? AND class_deleted_at IS NULL", classID, campusID).
		Count(&n).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.Error(c, http.StatusNotFound, "Class not found in this campus")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Table("students").
		Where("student_id = ? AND student_campus_id = ? AND student_deleted_at IS NULL", req.StudentID, campusID).
		Count(&n).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.Error(c, http.StatusNotFound, "Student not found in this campus")
	}

	row := model.ClassStudentModel{
		ClassStudentCampusID:  campusID,
		ClassStudentClassID:   classID,
		ClassStudentStudentID: req.StudentID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Student enrolled", row)
}

/* =========================
   Subjects
========================= */

func (ctl *AcademicsController) ListSubjects(c *fiber.Ctx) error {
	campusID, err := ctl.callerCampus(c)
	if err != nil {
		return err
	}
	var rows []model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("subject_campus_id = ?", campusID).
		Order("subject_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *AcademicsController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	row := model.SubjectModel{
		SubjectCampusID:    req.CampusID,
		SubjectName:        req.Name,
		SubjectCode:        strings.ToUpper(strings.TrimSpace(req.Code)),
		SubjectCoefficient: req.Coefficient,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Subject created", row)
}

/* =========================
   Teachers
========================= */

func (ctl *AcademicsController) ListTeachers(c *fiber.Ctx) error {
	campusID, err := ctl.callerCampus(c)
	if err != nil {
		return err
	}
	var rows []model.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_campus_id = ?", campusID).
		Order("teacher_last_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *AcademicsController) CreateTeacher(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid JSON body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	row := model.TeacherModel{
		TeacherID:        req.TeacherID,
		TeacherCampusID:  req.CampusID,
		TeacherFirstName: req.FirstName,
		TeacherLastName:  req.LastName,
		TeacherEmail:     req.Email,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Teacher created", row)
}

/* =========================
   PG error mapping
========================= */

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	// 23505 unique_violation, 23503 foreign_key_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return helper.Error(c, http.StatusConflict, "Duplicate entry (unique violation)")
		case "23503":
			return helper.Error(c, http.StatusBadRequest, "Unknown reference (FK violation)")
		}
	}
	return helper.Error(c, http.StatusInternalServerError, err.Error())
}
