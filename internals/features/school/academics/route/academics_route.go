// file: internals/features/school/academics/route/academics_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	academicsController "sekolahku_backend/internals/features/school/academics/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

/*
User routes: read-only directory of the identity tables.
Mount: AcademicsUserRoutes(app.Group("/api/u"), db)
*/
func AcademicsUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := academicsController.NewAcademicsController(db)

	r.Get("/students", ctl.ListStudents)       // GET /api/u/students
	r.Get("/students/:id", ctl.GetStudentByID) // GET /api/u/students/:id
	r.Get("/classes", ctl.ListClasses)         // GET /api/u/classes
	r.Get("/subjects", ctl.ListSubjects)       // GET /api/u/subjects
	r.Get("/teachers", ctl.ListTeachers)       // GET /api/u/teachers
}

/*
Admin routes: identity CRUD for campus managers and above.
*/
func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := academicsController.NewAcademicsController(db)
	gate := authMiddleware.OnlyRoles(
		constants.RoleErrorManager("academic records"),
		constants.ManagerAndAbove...,
	)

	r.Post("/students", gate, ctl.CreateStudent)         // POST /api/a/students
	r.Post("/classes", gate, ctl.CreateClass)            // POST /api/a/classes
	r.Post("/classes/:id/enroll", gate, ctl.EnrollStudent) // POST /api/a/classes/:id/enroll
	r.Post("/subjects", gate, ctl.CreateSubject)         // POST /api/a/subjects
	r.Post("/teachers", gate, ctl.CreateTeacher)         // POST /api/a/teachers
}

/*
Owner routes: campus provisioning, global roles only.
*/
func AcademicsOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := academicsController.NewAcademicsController(db)
	gate := authMiddleware.OnlyRoles(
		constants.RoleErrorGlobal("campus provisioning"),
		constants.GlobalRoles...,
	)

	r.Get("/campuses", gate, ctl.ListCampuses)   // GET  /api/o/campuses
	r.Post("/campuses", gate, ctl.CreateCampus)  // POST /api/o/campuses
}
