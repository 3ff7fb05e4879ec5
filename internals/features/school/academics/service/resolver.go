// file: internals/features/school/academics/service/resolver.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resolver answers the tenancy questions the result engine asks about
// identity entities. The engine treats these as opaque predicates; it never
// joins the identity tables itself on write paths.
type Resolver struct {
	DB *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{DB: db}
}

func (r *Resolver) StudentBelongsToCampus(ctx context.Context, studentID, campusID uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Table("students").
		Where("student_id = ? AND student_campus_id = ? AND student_deleted_at IS NULL", studentID, campusID).
		Count(&n).Error
	return n > 0, err
}

func (r *Resolver) ClassBelongsToCampus(ctx context.Context, classID, campusID uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Table("classes").
		Where("class_id = ? AND class_campus_id = ? AND class_deleted_at IS NULL", classID, campusID).
		Count(&n).Error
	return n > 0, err
}

func (r *Resolver) SubjectBelongsToCampus(ctx context.Context, subjectID, campusID uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Table("subjects").
		Where("subject_id = ? AND subject_campus_id = ? AND subject_deleted_at IS NULL", subjectID, campusID).
		Count(&n).Error
	return n > 0, err
}

func (r *Resolver) TeacherBelongsToCampus(ctx context.Context, teacherID, campusID uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Table("teachers").
		Where("teacher_id = ? AND teacher_campus_id = ? AND teacher_deleted_at IS NULL", teacherID, campusID).
		Count(&n).Error
	return n > 0, err
}

// ClassEnrolledStudents returns the ids of students enrolled in the class.
func (r *Resolver) ClassEnrolledStudents(ctx context.Context, classID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.DB.WithContext(ctx).Table("class_students").
		Where("class_student_class_id = ?", classID).
		Pluck("class_student_student_id", &ids).Error
	return ids, err
}
