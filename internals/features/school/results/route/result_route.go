// file: internals/features/school/results/route/result_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	resultController "sekolahku_backend/internals/features/school/results/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

/*
Public routes: token verification only — the single unauthenticated path.
Mount: ResultPublicRoutes(app.Group("/api/public"), db)
*/
func ResultPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewResultController(db)

	r.Get("/results/verify/:token", ctl.VerifyByToken) // GET /api/public/results/verify/:token
}

/*
User routes: reads every authenticated role may attempt. Row-level scoping
(students see only their own published results) happens in the service.
*/
func ResultUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewResultController(db)

	results := r.Group("/results")
	results.Get("/", ctl.List)                              // GET /api/u/results
	results.Get("/:id", ctl.GetByID)                        // GET /api/u/results/:id
	r.Get("/transcripts/:studentId", ctl.Transcript)        // GET /api/u/transcripts/:studentId
	r.Get("/grading-scales", ctl.ListGradingScales)         // GET /api/u/grading-scales
}

/*
Teacher routes: the write path of the lifecycle. The role gate is a cheap
front door; the policy in the service is authoritative (ownership checks
happen there).
*/
func ResultTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewResultController(db)
	gate := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("result entry"),
		constants.TeacherAndAbove...,
	)

	results := r.Group("/results", gate)
	results.Post("/", ctl.CreateDraft)             // POST   /api/u/results
	results.Put("/:id", ctl.UpdateDraft)           // PUT    /api/u/results/:id
	results.Delete("/:id", ctl.SoftDelete)         // DELETE /api/u/results/:id
	results.Post("/:id/submit", ctl.Submit)        // POST   /api/u/results/:id/submit
	results.Post("/submit-batch", ctl.SubmitBatch) // POST   /api/u/results/submit-batch
	results.Post("/bulk", ctl.BulkCreate)          // POST   /api/u/results/bulk
	results.Post("/import", ctl.BulkImport)        // POST   /api/u/results/import (CSV/XLSX)

	// class-level analytics: teachers may inspect their own classes
	analytics := r.Group("/analytics", gate)
	analytics.Get("/class-distribution", ctl.ClassDistribution) // GET /api/u/analytics/class-distribution
	analytics.Get("/retake-list", ctl.RetakeList)               // GET /api/u/analytics/retake-list
}

/*
Admin routes: publication, period control, scales and analytics — campus
managers and above.
*/
func ResultAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewResultController(db)
	gate := authMiddleware.OnlyRoles(
		constants.RoleErrorManager("result publication"),
		constants.ManagerAndAbove...,
	)

	results := r.Group("/results", gate)
	results.Post("/:id/publish", ctl.Publish)        // POST /api/a/results/:id/publish
	results.Post("/publish-batch", ctl.PublishBatch) // POST /api/a/results/publish-batch
	results.Post("/:id/archive", ctl.Archive)        // POST /api/a/results/:id/archive
	results.Post("/lock-semester", ctl.LockSemester) // POST /api/a/results/lock-semester

	scales := r.Group("/grading-scales", gate)
	scales.Post("/", ctl.CreateGradingScale)    // POST /api/a/grading-scales
	scales.Put("/:id", ctl.UpdateGradingScale)  // PUT  /api/a/grading-scales/:id

	r.Get("/analytics/campus-overview", gate, ctl.CampusOverview) // GET /api/a/analytics/campus-overview
}

/*
Owner routes: post-publication corrections, global roles only.
*/
func ResultOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewResultController(db)
	gate := authMiddleware.OnlyRoles(
		constants.RoleErrorGlobal("result corrections"),
		constants.GlobalRoles...,
	)

	r.Post("/results/:id/audit-correct", gate, ctl.AuditCorrect) // POST /api/o/results/:id/audit-correct
}
