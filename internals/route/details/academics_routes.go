// internals/route/details/academics_routes.go
package details

import (
	AcademicsRoutes "sekolahku_backend/internals/features/school/academics/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== USER (PRIVATE) ===================== */
func AcademicsUserRoutes(r fiber.Router, db *gorm.DB) {
	AcademicsRoutes.AcademicsUserRoutes(r, db)
}

/* ===================== ADMIN (per campus) ===================== */
func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	AcademicsRoutes.AcademicsAdminRoutes(r, db)
}

/* ===================== OWNER (GLOBAL) ===================== */
func AcademicsOwnerRoutes(r fiber.Router, db *gorm.DB) {
	AcademicsRoutes.AcademicsOwnerRoutes(r, db)
}
