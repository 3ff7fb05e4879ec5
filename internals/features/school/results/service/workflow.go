// file: internals/features/school/results/service/workflow.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/school/results/model"
)

// Legal edges of the lifecycle. Everything else is an illegal transition
// (non-retryable conflict).
var legalNext = map[string]string{
	model.StatusDraft:     model.StatusSubmitted,
	model.StatusSubmitted: model.StatusPublished,
	model.StatusPublished: model.StatusArchived,
}

// CanTransition reports whether from → to is a legal workflow edge.
func CanTransition(from, to string) bool {
	return legalNext[from] == to
}

var academicYearRe = regexp.MustCompile(`^\d{4}-\d{4}$`)

func validateAcademicYear(year string) error {
	if !academicYearRe.MatchString(year) {
		return Validation("result_academic_year", "must match YYYY-YYYY")
	}
	return nil
}

func validateSemester(s string) error {
	switch s {
	case model.SemesterS1, model.SemesterS2, model.SemesterAnnual:
		return nil
	}
	return Validation("result_semester", "must be one of S1, S2, Annual")
}

func validateEvaluationType(t string) error {
	for _, v := range model.EvaluationTypes {
		if t == v {
			return nil
		}
	}
	return Validation("result_evaluation_type", "unknown evaluation type")
}

/* =========================
   Inputs / reports
========================= */

type CreateDraftInput struct {
	CampusID        uuid.UUID
	StudentID       uuid.UUID
	ClassID         uuid.UUID
	SubjectID       uuid.UUID
	TeacherID       uuid.UUID
	EvaluationType  string
	EvaluationTitle string
	AcademicYear    string
	Semester        string
	Score           float64
	MaxScore        float64
	Coefficient     *float64
	Comment         *string
	GradingScaleID  *uuid.UUID
	RetakeOf        *uuid.UUID
}

type UpdateDraftInput struct {
	Score           *float64
	MaxScore        *float64
	Coefficient     *float64
	Comment         *string
	EvaluationType  *string
	EvaluationTitle *string
	GradingScaleID  *uuid.UUID
}

type AuditCorrectInput struct {
	Score   *float64
	Comment *string
	Reason  string
}

type PublishBatchFilter struct {
	CampusID        uuid.UUID
	ClassID         uuid.UUID
	SubjectID       uuid.UUID
	EvaluationTitle string
	AcademicYear    string
	Semester        string
}

type BatchFailure struct {
	Index int       `json:"index"`
	ID    uuid.UUID `json:"id"`
	Cause string    `json:"cause"`
}

type BatchReport struct {
	OK     int            `json:"ok"`
	Failed []BatchFailure `json:"failed"`
}

/* =========================
   Shared plumbing
========================= */

func loadResult(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.ResultModel, error) {
	var rec model.ResultModel
	if err := tx.WithContext(ctx).Where("result_id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("result")
		}
		return nil, Transient("result lookup", err)
	}
	return &rec, nil
}

// appendAudit returns the trail with the new entries appended, preserving
// insertion order.
func appendAudit(trail datatypes.JSON, entries ...model.AuditEntry) (datatypes.JSON, error) {
	var list []model.AuditEntry
	if len(trail) > 0 {
		if err := json.Unmarshal(trail, &list); err != nil {
			return nil, Transient("audit trail decode", err)
		}
	}
	list = append(list, entries...)
	buf, err := json.Marshal(list)
	if err != nil {
		return nil, Transient("audit trail encode", err)
	}
	return datatypes.JSON(buf), nil
}

// optimisticUpdate applies updates conditioned on the version the caller
// read; zero rows affected means a concurrent writer won.
func optimisticUpdate(tx *gorm.DB, rec *model.ResultModel, updates map[string]interface{}) error {
	updates["result_version"] = rec.ResultVersion + 1
	res := tx.Model(&model.ResultModel{}).
		Where("result_id = ? AND result_version = ?", rec.ResultID, rec.ResultVersion).
		Updates(updates)
	if res.Error != nil {
		if IsDuplicateKey(res.Error) {
			return Conflict("a result for this evaluation already exists", true)
		}
		return Transient("result update", res.Error)
	}
	if res.RowsAffected == 0 {
		return Conflict("the record changed concurrently, reload and retry", true)
	}
	return nil
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

/* =========================
   Create / update / delete
========================= */

// CreateDraft validates, derives and inserts a new DRAFT record, drawing its
// reference from the per-year counter inside the same transaction.
func (s *ResultService) CreateDraft(ctx context.Context, caller Caller, in CreateDraftInput) (*model.ResultModel, error) {
	target := &model.ResultModel{ResultCampusID: in.CampusID, ResultTeacherID: in.TeacherID}
	if err := requireAllow(caller, ActionCreate, target); err != nil {
		return nil, err
	}

	if err := validateAcademicYear(in.AcademicYear); err != nil {
		return nil, err
	}
	if err := validateSemester(in.Semester); err != nil {
		return nil, err
	}
	if err := validateEvaluationType(in.EvaluationType); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.EvaluationTitle)
	if title == "" || len(title) > 100 {
		return nil, Validation("result_evaluation_title", "is required, at most 100 characters")
	}
	coefficient := 1.0
	if in.Coefficient != nil {
		if *in.Coefficient < 0 {
			return nil, Validation("result_coefficient", "must be >= 0")
		}
		coefficient = *in.Coefficient
	}

	// Invariant: every referenced entity lives in the record's campus.
	for _, check := range []struct {
		name string
		fn   func() (bool, error)
	}{
		{"result_student_id", func() (bool, error) { return s.Resolver.StudentBelongsToCampus(ctx, in.StudentID, in.CampusID) }},
		{"result_class_id", func() (bool, error) { return s.Resolver.ClassBelongsToCampus(ctx, in.ClassID, in.CampusID) }},
		{"result_subject_id", func() (bool, error) { return s.Resolver.SubjectBelongsToCampus(ctx, in.SubjectID, in.CampusID) }},
		{"result_teacher_id", func() (bool, error) { return s.Resolver.TeacherBelongsToCampus(ctx, in.TeacherID, in.CampusID) }},
	} {
		ok, err := check.fn()
		if err != nil {
			return nil, Transient("tenancy check", err)
		}
		if !ok {
			return nil, Validation(check.name, "does not belong to this campus")
		}
	}

	if in.RetakeOf != nil {
		if err := s.validateRetakeOf(ctx, in); err != nil {
			return nil, err
		}
	}

	scale, err := s.resolveScale(ctx, s.DB, in.CampusID, in.GradingScaleID)
	if err != nil {
		return nil, err
	}
	d, err := Derive(in.Score, in.MaxScore, in.EvaluationType, scale)
	if err != nil {
		return nil, err
	}

	year, _ := strconv.Atoi(in.AcademicYear[:4])
	rec := model.ResultModel{
		ResultCampusID:        in.CampusID,
		ResultAcademicYear:    in.AcademicYear,
		ResultSemester:        in.Semester,
		ResultStudentID:       in.StudentID,
		ResultClassID:         in.ClassID,
		ResultSubjectID:       in.SubjectID,
		ResultTeacherID:       in.TeacherID,
		ResultEvaluationType:  in.EvaluationType,
		ResultEvaluationTitle: title,
		ResultScore:           in.Score,
		ResultMaxScore:        in.MaxScore,
		ResultCoefficient:     coefficient,
		ResultComment:         in.Comment,
		ResultGradingScaleID:  in.GradingScaleID,
		ResultNormalizedScore: d.NormalizedScore,
		ResultGradeBand:       d.GradeBand,
		ResultRetakeEligible:  d.RetakeEligible,
		ResultPassed:          d.Passed,
		ResultStatus:          model.StatusDraft,
		ResultRetakeOf:        in.RetakeOf,
		ResultAuditTrail:      datatypes.JSON([]byte("[]")),
		ResultVersion:         1,
		ResultCreatedBy:       caller.UserID,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ref, err := nextResultRef(tx, year)
		if err != nil {
			return err
		}
		rec.ResultReference = ref
		return tx.Create(&rec).Error
	})
	if err != nil {
		if IsDuplicateKey(err) {
			return nil, Conflict("a result for this evaluation already exists", true)
		}
		var ae *AppError
		if errors.As(err, &ae) {
			return nil, ae
		}
		return nil, Transient("result create", err)
	}
	return &rec, nil
}

// validateRetakeOf enforces the retake linkage invariant: same student,
// subject and academic year, and an original that actually went out.
func (s *ResultService) validateRetakeOf(ctx context.Context, in CreateDraftInput) error {
	orig, err := loadResult(ctx, s.DB, *in.RetakeOf)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return Validation("result_retake_of", "original record not found")
		}
		return err
	}
	if orig.ResultStudentID != in.StudentID || orig.ResultSubjectID != in.SubjectID || orig.ResultAcademicYear != in.AcademicYear {
		return Validation("result_retake_of", "must reference the same student, subject and academic year")
	}
	if orig.ResultStatus != model.StatusPublished && orig.ResultStatus != model.StatusArchived {
		return Validation("result_retake_of", "original record is not published or archived")
	}
	return nil
}

// UpdateDraft patches a DRAFT record and reruns the derivations. An empty
// patch is a no-op that leaves every field intact.
func (s *ResultService) UpdateDraft(ctx context.Context, caller Caller, id uuid.UUID, in UpdateDraftInput) (*model.ResultModel, error) {
	rec, err := loadResult(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if err := requireAllow(caller, ActionUpdateDraft, rec); err != nil {
		return nil, err
	}
	if rec.ResultStatus != model.StatusDraft {
		return nil, Conflict("only DRAFT records can be updated; use audit-correct after publish", false)
	}

	score, maxScore := rec.ResultScore, rec.ResultMaxScore
	evalType := rec.ResultEvaluationType
	scaleID := rec.ResultGradingScaleID
	updates := map[string]interface{}{}

	if in.Score != nil {
		score = *in.Score
		updates["result_score"] = score
	}
	if in.MaxScore != nil {
		maxScore = *in.MaxScore
		updates["result_max_score"] = maxScore
	}
	if in.Coefficient != nil {
		if *in.Coefficient < 0 {
			return nil, Validation("result_coefficient", "must be >= 0")
		}
		updates["result_coefficient"] = *in.Coefficient
	}
	if in.Comment != nil {
		updates["result_comment"] = *in.Comment
	}
	if in.EvaluationType != nil {
		if err := validateEvaluationType(*in.EvaluationType); err != nil {
			return nil, err
		}
		evalType = *in.EvaluationType
		updates["result_evaluation_type"] = evalType
	}
	if in.EvaluationTitle != nil {
		title := strings.TrimSpace(*in.EvaluationTitle)
		if title == "" || len(title) > 100 {
			return nil, Validation("result_evaluation_title", "is required, at most 100 characters")
		}
		updates["result_evaluation_title"] = title
	}
	if in.GradingScaleID != nil {
		scaleID = in.GradingScaleID
		updates["result_grading_scale_id"] = *in.GradingScaleID
	}

	if len(updates) == 0 {
		return rec, nil
	}

	scale, err := s.resolveScale(ctx, s.DB, rec.ResultCampusID, scaleID)
	if err != nil {
		return nil, err
	}
	d, err := Derive(score, maxScore, evalType, scale)
	if err != nil {
		return nil, err
	}
	updates["result_normalized_score"] = d.NormalizedScore
	updates["result_grade_band"] = d.GradeBand
	updates["result_retake_eligible"] = d.RetakeEligible
	updates["result_passed"] = d.Passed

	if err := optimisticUpdate(s.DB.WithContext(ctx), rec, updates); err != nil {
		return nil, err
	}
	return loadResult(ctx, s.DB, id)
}

// SoftDelete tombstones a record. Legal in DRAFT for scoped roles; a global
// caller may force-delete any status (an audited operation).
func (s *ResultService) SoftDelete(ctx context.Context, caller Caller, id uuid.UUID) error {
	rec, err := loadResult(ctx, s.DB, id)
	if err != nil {
		return err
	}
	if rec.ResultStatus == model.StatusDraft {
		if err := requireAllow(caller, ActionSoftDelete, rec); err != nil {
			return err
		}
	} else {
		if err := requireAllow(caller, ActionForceDelete, rec); err != nil {
			return err
		}
	}
	if err := guardPeriodLock(caller, rec); err != nil {
		return err
	}

	updates := map[string]interface{}{
		"result_deleted_at": s.now(),
		"result_deleted_by": caller.UserID,
	}
	if rec.ResultStatus != model.StatusDraft {
		trail, err := appendAudit(rec.ResultAuditTrail, model.AuditEntry{
			Field: "result_deleted_at", OldValue: "", NewValue: s.now().Format("2006-01-02T15:04:05Z07:00"),
			Reason: "force delete by global role", By: caller.UserID, At: s.now(), IP: caller.IP,
		})
		if err != nil {
			return err
		}
		updates["result_audit_trail"] = trail
	}
	return optimisticUpdate(s.DB.WithContext(ctx), rec, updates)
}

/* =========================
   Transitions
========================= */

// Submit moves DRAFT → SUBMITTED.
func (s *ResultService) Submit(ctx context.Context, caller Caller, id uuid.UUID) (*model.ResultModel, error) {
	rec, err := loadResult(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if err := requireAllow(caller, ActionSubmit, rec); err != nil {
		return nil, err
	}
	if !CanTransition(rec.ResultStatus, model.StatusSubmitted) {
		return nil, Conflict(fmt.Sprintf("cannot submit a %s record", rec.ResultStatus), false)
	}

	now := s.now()
	trail, err := appendAudit(rec.ResultAuditTrail, model.AuditEntry{
		Field: "result_status", OldValue: rec.ResultStatus, NewValue: model.StatusSubmitted,
		Reason: "workflow transition: submit", By: caller.UserID, At: now, IP: caller.IP,
	})
	if err != nil {
		return nil, err
	}
	err = optimisticUpdate(s.DB.WithContext(ctx), rec, map[string]interface{}{
		"result_status":       model.StatusSubmitted,
		"result_submitted_at": now,
		"result_submitted_by": caller.UserID,
		"result_audit_trail":  trail,
	})
	if err != nil {
		return nil, err
	}
	return loadResult(ctx, s.DB, id)
}

// SubmitBatch applies Submit to each id, reporting per-record failures.
func (s *ResultService) SubmitBatch(ctx context.Context, caller Caller, ids []uuid.UUID) BatchReport {
	report := BatchReport{Failed: []BatchFailure{}}
	for i, id := range ids {
		if ctx.Err() != nil {
			report.Failed = append(report.Failed, BatchFailure{Index: i, ID: id, Cause: "cancelled"})
			continue
		}
		if _, err := s.Submit(ctx, caller, id); err != nil {
			report.Failed = append(report.Failed, BatchFailure{Index: i, ID: id, Cause: err.Error()})
			continue
		}
		report.OK++
	}
	return report
}

// Publish moves SUBMITTED → PUBLISHED: stamps the publisher, mints the
// verification token on first publish, reruns the derivations, persists
// atomically, then schedules the dropout-risk recompute (fire-and-forget).
func (s *ResultService) Publish(ctx context.Context, caller Caller, id uuid.UUID) (*model.ResultModel, error) {
	rec, err := loadResult(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if err := requireAllow(caller, ActionPublish, rec); err != nil {
		return nil, err
	}
	if err := guardPeriodLock(caller, rec); err != nil {
		return nil, err
	}
	if !CanTransition(rec.ResultStatus, model.StatusPublished) {
		return nil, Conflict(fmt.Sprintf("cannot publish a %s record", rec.ResultStatus), false)
	}

	now := s.now()
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// scale resolution may have changed since the draft was written
		scale, err := s.resolveScale(ctx, tx, rec.ResultCampusID, rec.ResultGradingScaleID)
		if err != nil {
			return err
		}
		d, err := Derive(rec.ResultScore, rec.ResultMaxScore, rec.ResultEvaluationType, scale)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"result_status":           model.StatusPublished,
			"result_published_at":     now,
			"result_published_by":     caller.UserID,
			"result_normalized_score": d.NormalizedScore,
			"result_grade_band":       d.GradeBand,
			"result_retake_eligible":  d.RetakeEligible,
			"result_passed":           d.Passed,
		}
		if rec.ResultVerificationToken == nil {
			token, err := NewVerificationToken()
			if err != nil {
				return err
			}
			updates["result_verification_token"] = token
		}
		trail, err := appendAudit(rec.ResultAuditTrail, model.AuditEntry{
			Field: "result_status", OldValue: rec.ResultStatus, NewValue: model.StatusPublished,
			Reason: "workflow transition: publish", By: caller.UserID, At: now, IP: caller.IP,
		})
		if err != nil {
			return err
		}
		updates["result_audit_trail"] = trail
		return optimisticUpdate(tx, rec, updates)
	})
	if err != nil {
		var ae *AppError
		if errors.As(err, &ae) {
			return nil, ae
		}
		return nil, Transient("result publish", err)
	}

	// fire-and-forget: never blocks or fails the publish
	s.scheduleRiskRecompute(rec.ResultCampusID, rec.ResultStudentID)

	return loadResult(ctx, s.DB, id)
}

// PublishBatch publishes every SUBMITTED record matching the evaluation
// filter, one by one so each goes through the pre-persist derivations.
func (s *ResultService) PublishBatch(ctx context.Context, caller Caller, f PublishBatchFilter) (BatchReport, error) {
	if err := validateAcademicYear(f.AcademicYear); err != nil {
		return BatchReport{}, err
	}
	if err := validateSemester(f.Semester); err != nil {
		return BatchReport{}, err
	}

	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).Model(&model.ResultModel{}).
		Where(`result_campus_id = ? AND result_class_id = ? AND result_subject_id = ?
			AND result_evaluation_title = ? AND result_academic_year = ? AND result_semester = ?
			AND result_status = ?`,
			f.CampusID, f.ClassID, f.SubjectID, f.EvaluationTitle, f.AcademicYear, f.Semester,
			model.StatusSubmitted).
		Order("result_created_at ASC").
		Pluck("result_id", &ids).Error
	if err != nil {
		return BatchReport{}, Transient("publish batch select", err)
	}

	report := BatchReport{Failed: []BatchFailure{}}
	for i, id := range ids {
		if ctx.Err() != nil {
			// cancelled mid-batch: everything before this index is committed
			report.Failed = append(report.Failed, BatchFailure{Index: i, ID: id, Cause: "cancelled"})
			continue
		}
		if _, err := s.Publish(ctx, caller, id); err != nil {
			report.Failed = append(report.Failed, BatchFailure{Index: i, ID: id, Cause: err.Error()})
			continue
		}
		report.OK++
	}
	return report, nil
}

// Archive moves PUBLISHED → ARCHIVED.
func (s *ResultService) Archive(ctx context.Context, caller Caller, id uuid.UUID) (*model.ResultModel, error) {
	rec, err := loadResult(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if err := requireAllow(caller, ActionArchive, rec); err != nil {
		return nil, err
	}
	if err := guardPeriodLock(caller, rec); err != nil {
		return nil, err
	}
	if !CanTransition(rec.ResultStatus, model.StatusArchived) {
		return nil, Conflict(fmt.Sprintf("cannot archive a %s record", rec.ResultStatus), false)
	}

	now := s.now()
	trail, err := appendAudit(rec.ResultAuditTrail, model.AuditEntry{
		Field: "result_status", OldValue: rec.ResultStatus, NewValue: model.StatusArchived,
		Reason: "workflow transition: archive", By: caller.UserID, At: now, IP: caller.IP,
	})
	if err != nil {
		return nil, err
	}
	err = optimisticUpdate(s.DB.WithContext(ctx), rec, map[string]interface{}{
		"result_status":      model.StatusArchived,
		"result_archived_by": caller.UserID,
		"result_audit_trail": trail,
	})
	if err != nil {
		return nil, err
	}
	return loadResult(ctx, s.DB, id)
}

/* =========================
   Side channels
========================= */

// LockSemester freezes every PUBLISHED/ARCHIVED record of the period. While
// locked only global roles may mutate them.
func (s *ResultService) LockSemester(ctx context.Context, caller Caller, campusID uuid.UUID, academicYear, semester string) (int64, error) {
	target := &model.ResultModel{ResultCampusID: campusID}
	if err := requireAllow(caller, ActionLockSemester, target); err != nil {
		return 0, err
	}
	if err := validateAcademicYear(academicYear); err != nil {
		return 0, err
	}
	if err := validateSemester(semester); err != nil {
		return 0, err
	}

	entry, err := json.Marshal([]model.AuditEntry{{
		Field: "result_period_locked", OldValue: "false", NewValue: "true",
		Reason: "semester locked: " + academicYear + " " + semester,
		By:     caller.UserID, At: s.now(), IP: caller.IP,
	}})
	if err != nil {
		return 0, Transient("audit trail encode", err)
	}

	res := s.DB.WithContext(ctx).Exec(`
		UPDATE results
		SET result_period_locked = true,
		    result_audit_trail = COALESCE(result_audit_trail, '[]'::jsonb) || ?::jsonb,
		    result_version = result_version + 1,
		    result_updated_at = NOW()
		WHERE result_campus_id = ?
		  AND result_academic_year = ?
		  AND result_semester = ?
		  AND result_status IN (?, ?)
		  AND result_period_locked = false
		  AND result_deleted_at IS NULL
	`, string(entry), campusID, academicYear, semester, model.StatusPublished, model.StatusArchived)
	if res.Error != nil {
		return 0, Transient("lock semester", res.Error)
	}
	return res.RowsAffected, nil
}

// auditCorrectGate checks the period lock before the role policy: a campus
// manager hitting a locked record is told the period is locked, not that the
// operation is above their role.
func auditCorrectGate(caller Caller, rec *model.ResultModel) error {
	if err := guardPeriodLock(caller, rec); err != nil {
		return err
	}
	return requireAllow(caller, ActionAuditCorrect, rec)
}

// AuditCorrect changes a published or archived record without moving its
// status: global roles only, with a written reason, every change audited.
// The verification token is untouchable.
func (s *ResultService) AuditCorrect(ctx context.Context, caller Caller, id uuid.UUID, in AuditCorrectInput) (*model.ResultModel, error) {
	rec, err := loadResult(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	if err := auditCorrectGate(caller, rec); err != nil {
		return nil, err
	}
	if rec.ResultStatus != model.StatusPublished && rec.ResultStatus != model.StatusArchived {
		return nil, Conflict("audit-correct applies to published or archived records only", false)
	}
	if len(strings.TrimSpace(in.Reason)) < 10 {
		return nil, Validation("reason", "must be at least 10 characters")
	}

	now := s.now()
	updates := map[string]interface{}{}
	var entries []model.AuditEntry

	if in.Score != nil {
		scale, err := s.resolveScale(ctx, s.DB, rec.ResultCampusID, rec.ResultGradingScaleID)
		if err != nil {
			return nil, err
		}
		d, err := Derive(*in.Score, rec.ResultMaxScore, rec.ResultEvaluationType, scale)
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.AuditEntry{
			Field: "result_score", OldValue: fmtFloat(rec.ResultScore), NewValue: fmtFloat(*in.Score),
			Reason: in.Reason, By: caller.UserID, At: now, IP: caller.IP,
		})
		updates["result_score"] = *in.Score
		updates["result_normalized_score"] = d.NormalizedScore
		updates["result_grade_band"] = d.GradeBand
		updates["result_retake_eligible"] = d.RetakeEligible
		updates["result_passed"] = d.Passed
	}
	if in.Comment != nil {
		old := ""
		if rec.ResultComment != nil {
			old = *rec.ResultComment
		}
		entries = append(entries, model.AuditEntry{
			Field: "result_comment", OldValue: old, NewValue: *in.Comment,
			Reason: in.Reason, By: caller.UserID, At: now, IP: caller.IP,
		})
		updates["result_comment"] = *in.Comment
	}

	if len(entries) == 0 {
		return nil, Validation("patch", "nothing to correct")
	}
	trail, err := appendAudit(rec.ResultAuditTrail, entries...)
	if err != nil {
		return nil, err
	}
	updates["result_audit_trail"] = trail

	if err := optimisticUpdate(s.DB.WithContext(ctx), rec, updates); err != nil {
		return nil, err
	}

	s.scheduleRiskRecompute(rec.ResultCampusID, rec.ResultStudentID)
	return loadResult(ctx, s.DB, id)
}

// scheduleRiskRecompute runs the dropout-risk update detached from the
// caller. Failures are logged, never surfaced.
func (s *ResultService) scheduleRiskRecompute(campusID, studentID uuid.UUID) {
	go func() {
		if err := s.RecomputeDropoutRisk(context.Background(), campusID, studentID); err != nil {
			log.Printf("[ERROR] dropout-risk recompute student=%s: %v", studentID, err)
		}
	}()
}
