// internals/route/details/results_routes.go
package details

import (
	ResultRoutes "sekolahku_backend/internals/features/school/results/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== PUBLIC ===================== */
func ResultPublicRoutes(r fiber.Router, db *gorm.DB) {
	ResultRoutes.ResultPublicRoutes(r, db)
}

/* ===================== USER (PRIVATE) ===================== */
func ResultUserRoutes(r fiber.Router, db *gorm.DB) {
	ResultRoutes.ResultUserRoutes(r, db)
	ResultRoutes.ResultTeacherRoutes(r, db)
}

/* ===================== ADMIN (per campus) ===================== */
func ResultAdminRoutes(r fiber.Router, db *gorm.DB) {
	ResultRoutes.ResultAdminRoutes(r, db)
}

/* ===================== OWNER (GLOBAL) ===================== */
func ResultOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ResultRoutes.ResultOwnerRoutes(r, db)
}
