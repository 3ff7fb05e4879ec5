// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	routeDetails "sekolahku_backend/internals/route/details"

	authMiddleware "sekolahku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → no JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → JWT required, role checks per route
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())

	// ADMIN (per campus) → JWT required, manager and above
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())

	// OWNER (GLOBAL) → JWT required, global roles only
	log.Println("[INFO] Setting up OWNER group...")
	owner := app.Group("/api/o", authMiddleware.AuthMiddleware())

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Academics routes...")
	routeDetails.AcademicsUserRoutes(private, db)
	routeDetails.AcademicsAdminRoutes(admin, db)
	routeDetails.AcademicsOwnerRoutes(owner, db)

	log.Println("[INFO] Mounting Result routes...")
	routeDetails.ResultPublicRoutes(public, db)
	routeDetails.ResultUserRoutes(private, db)
	routeDetails.ResultAdminRoutes(admin, db)
	routeDetails.ResultOwnerRoutes(owner, db)
}
