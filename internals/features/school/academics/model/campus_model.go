// file: internals/features/school/academics/model/campus_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampusModel is the tenant. Every scoped row in the system carries a
// campus_id pointing here.
type CampusModel struct {
	CampusID   uuid.UUID `json:"campus_id" gorm:"column:campus_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CampusName string    `json:"campus_name" gorm:"column:campus_name;type:varchar(180);not null"`
	CampusCode string    `json:"campus_code" gorm:"column:campus_code;type:varchar(30);not null;uniqueIndex:uq_campuses_code"`

	CampusAddress *string `json:"campus_address" gorm:"column:campus_address;type:text"`
	CampusIsActive bool   `json:"campus_is_active" gorm:"column:campus_is_active;not null;default:true"`

	CampusCreatedAt time.Time      `json:"campus_created_at" gorm:"column:campus_created_at;not null;autoCreateTime"`
	CampusUpdatedAt time.Time      `json:"campus_updated_at" gorm:"column:campus_updated_at;not null;autoUpdateTime"`
	CampusDeletedAt gorm.DeletedAt `json:"campus_deleted_at" gorm:"column:campus_deleted_at;index"`
}

func (CampusModel) TableName() string { return "campuses" }
