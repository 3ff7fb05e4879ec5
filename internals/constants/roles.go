package constants

import "fmt"

// Canonical role names carried in the JWT.
const (
	RoleAdmin         = "admin"
	RoleDirector      = "director"
	RoleCampusManager = "campus_manager"
	RoleTeacher       = "teacher"
	RoleStudent       = "student"
)

// Error message templates for role gates
const (
	ErrOnlyTeachersCanAccess = "❌ Only teacher, campus manager, or a global role may access %s."
	ErrOnlyManagersCanAccess = "❌ Only campus manager or a global role may access %s."
	ErrOnlyGlobalCanAccess   = "❌ Only admin or director may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorGlobal(feature string) string {
	return fmt.Sprintf(ErrOnlyGlobalCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleDirector,
		RoleCampusManager,
		RoleTeacher,
		RoleStudent,
	}

	// Roles with no tenant boundary.
	GlobalRoles = []string{
		RoleAdmin,
		RoleDirector,
	}

	ManagerAndAbove = []string{
		RoleCampusManager,
		RoleDirector,
		RoleAdmin,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleCampusManager,
		RoleDirector,
		RoleAdmin,
	}
)

// IsGlobalRole reports whether the role escapes tenant scoping.
func IsGlobalRole(role string) bool {
	return role == RoleAdmin || role == RoleDirector
}
