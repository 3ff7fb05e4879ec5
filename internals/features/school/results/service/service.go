// file: internals/features/school/results/service/service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academics "sekolahku_backend/internals/features/school/academics/service"
	"sekolahku_backend/internals/constants"
)

// Caller is the authenticated identity every engine call carries
// (verifyByToken excepted).
type Caller struct {
	UserID   uuid.UUID
	Role     string
	CampusID uuid.UUID // uuid.Nil for global roles without a campus scope
	IP       string
}

func (c Caller) IsGlobal() bool { return constants.IsGlobalRole(c.Role) }

// ResultService is the Academic Result Lifecycle Engine. All mutations go
// through it; controllers stay thin.
type ResultService struct {
	DB       *gorm.DB
	Resolver *academics.Resolver
	Risk     RiskConfig

	// now is swappable in tests.
	now func() time.Time
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{
		DB:       db,
		Resolver: academics.NewResolver(db),
		Risk:     RiskConfigFromEnv(),
		now:      time.Now,
	}
}
