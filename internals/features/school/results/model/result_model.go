// file: internals/features/school/results/model/result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Workflow states
const (
	StatusDraft     = "DRAFT"
	StatusSubmitted = "SUBMITTED"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"
)

// Evaluation types
const (
	EvalQuiz       = "quiz"
	EvalMidterm    = "midterm"
	EvalFinal      = "final"
	EvalMock       = "mock"
	EvalOral       = "oral"
	EvalPractical  = "practical"
	EvalContinuous = "continuous"
)

// Semesters
const (
	SemesterS1     = "S1"
	SemesterS2     = "S2"
	SemesterAnnual = "Annual"
)

var EvaluationTypes = []string{EvalQuiz, EvalMidterm, EvalFinal, EvalMock, EvalOral, EvalPractical, EvalContinuous}

// AuditEntry is one element of the append-only results_audit_trail JSONB
// array. Insertion order is the audit order.
type AuditEntry struct {
	Field    string    `json:"field"`
	OldValue string    `json:"old_value"`
	NewValue string    `json:"new_value"`
	Reason   string    `json:"reason"`
	By       uuid.UUID `json:"by"`
	At       time.Time `json:"at"`
	IP       string    `json:"ip"`
}

// ResultModel maps the `results` table, the atomic unit of the lifecycle
// engine.
//
// The duplicate-evaluation guard is a composite unique index over
// (campus, student, class, subject, evaluation type, evaluation title,
// academic year, semester, retake_of); the migration declares it
// UNIQUE NULLS NOT DISTINCT so two originals (retake_of NULL) of the same
// evaluation collide too.
type ResultModel struct {
	// =========================
	// Identity
	// =========================
	ResultID        uuid.UUID `json:"result_id" gorm:"column:result_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ResultReference string    `json:"result_reference" gorm:"column:result_reference;type:varchar(20);not null;uniqueIndex:uq_results_reference"`

	// =========================
	// Scope / Tenant
	// =========================
	ResultCampusID     uuid.UUID `json:"result_campus_id" gorm:"column:result_campus_id;type:uuid;not null;index:idx_results_campus_created,priority:1;uniqueIndex:uq_results_evaluation,priority:1"`
	ResultAcademicYear string    `json:"result_academic_year" gorm:"column:result_academic_year;type:varchar(9);not null;uniqueIndex:uq_results_evaluation,priority:7"`
	ResultSemester     string    `json:"result_semester" gorm:"column:result_semester;type:varchar(10);not null;uniqueIndex:uq_results_evaluation,priority:8"`

	// =========================
	// Subject of evaluation
	// =========================
	ResultStudentID uuid.UUID `json:"result_student_id" gorm:"column:result_student_id;type:uuid;not null;index:idx_results_student;uniqueIndex:uq_results_evaluation,priority:2"`
	ResultClassID   uuid.UUID `json:"result_class_id" gorm:"column:result_class_id;type:uuid;not null;index:idx_results_class;uniqueIndex:uq_results_evaluation,priority:3"`
	ResultSubjectID uuid.UUID `json:"result_subject_id" gorm:"column:result_subject_id;type:uuid;not null;uniqueIndex:uq_results_evaluation,priority:4"`
	ResultTeacherID uuid.UUID `json:"result_teacher_id" gorm:"column:result_teacher_id;type:uuid;not null;index:idx_results_teacher"`

	// =========================
	// Evaluation descriptor
	// =========================
	ResultEvaluationType  string `json:"result_evaluation_type" gorm:"column:result_evaluation_type;type:varchar(20);not null;uniqueIndex:uq_results_evaluation,priority:5"`
	ResultEvaluationTitle string `json:"result_evaluation_title" gorm:"column:result_evaluation_title;type:varchar(100);not null;uniqueIndex:uq_results_evaluation,priority:6"`

	// =========================
	// Raw score
	// =========================
	ResultScore       float64 `json:"result_score" gorm:"column:result_score;type:numeric(6,2);not null"`
	ResultMaxScore    float64 `json:"result_max_score" gorm:"column:result_max_score;type:numeric(6,2);not null"`
	ResultCoefficient float64 `json:"result_coefficient" gorm:"column:result_coefficient;type:numeric(5,2);not null;default:1"`
	ResultComment     *string `json:"result_comment" gorm:"column:result_comment;type:text"`

	ResultGradingScaleID *uuid.UUID `json:"result_grading_scale_id" gorm:"column:result_grading_scale_id;type:uuid"`

	// =========================
	// Derived (recomputed on every score/scale edit)
	// =========================
	ResultNormalizedScore float64 `json:"result_normalized_score" gorm:"column:result_normalized_score;type:numeric(5,2);not null"`
	ResultGradeBand       string  `json:"result_grade_band" gorm:"column:result_grade_band;type:varchar(30);not null"`
	ResultRetakeEligible  bool    `json:"result_retake_eligible" gorm:"column:result_retake_eligible;not null;default:false"`
	ResultPassed          bool    `json:"result_passed" gorm:"column:result_passed;not null;default:false"`

	// =========================
	// Workflow state
	// =========================
	ResultStatus      string     `json:"result_status" gorm:"column:result_status;type:varchar(12);not null;default:'DRAFT';index:idx_results_status"`
	ResultSubmittedAt *time.Time `json:"result_submitted_at" gorm:"column:result_submitted_at;type:timestamptz"`
	ResultSubmittedBy *uuid.UUID `json:"result_submitted_by" gorm:"column:result_submitted_by;type:uuid"`
	ResultPublishedAt *time.Time `json:"result_published_at" gorm:"column:result_published_at;type:timestamptz"`
	ResultPublishedBy *uuid.UUID `json:"result_published_by" gorm:"column:result_published_by;type:uuid"`
	ResultArchivedBy  *uuid.UUID `json:"result_archived_by" gorm:"column:result_archived_by;type:uuid"`

	// Populated exactly once, at first publish. Never mutated afterwards.
	ResultVerificationToken *string `json:"result_verification_token,omitempty" gorm:"column:result_verification_token;type:varchar(64);uniqueIndex:uq_results_verification_token"`

	// =========================
	// Audit / locking / linkage / risk
	// =========================
	ResultAuditTrail   datatypes.JSON `json:"result_audit_trail" gorm:"column:result_audit_trail;type:jsonb"`
	ResultPeriodLocked bool           `json:"result_period_locked" gorm:"column:result_period_locked;not null;default:false"`
	ResultRetakeOf     *uuid.UUID     `json:"result_retake_of" gorm:"column:result_retake_of;type:uuid;uniqueIndex:uq_results_evaluation,priority:9"`

	ResultDropoutRiskScore *float64 `json:"result_dropout_risk_score" gorm:"column:result_dropout_risk_score;type:numeric(5,2)"`

	// Optimistic concurrency: every update is conditional on the version it
	// read and bumps it by one.
	ResultVersion int `json:"result_version" gorm:"column:result_version;not null;default:1"`

	ResultCreatedBy uuid.UUID  `json:"result_created_by" gorm:"column:result_created_by;type:uuid;not null"`
	ResultDeletedBy *uuid.UUID `json:"result_deleted_by" gorm:"column:result_deleted_by;type:uuid"`

	ResultCreatedAt time.Time      `json:"result_created_at" gorm:"column:result_created_at;not null;autoCreateTime;index:idx_results_campus_created,priority:2,sort:desc"`
	ResultUpdatedAt time.Time      `json:"result_updated_at" gorm:"column:result_updated_at;not null;autoUpdateTime"`
	ResultDeletedAt gorm.DeletedAt `json:"result_deleted_at" gorm:"column:result_deleted_at;index"`
}

func (ResultModel) TableName() string { return "results" }
