// file: internals/features/school/results/service/analytics.go
package service

import (
	"context"
	"log"
	"math"

	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/school/results/model"
)

// DistributionFilter pins a class distribution to one evaluation sheet.
type DistributionFilter struct {
	ClassID         uuid.UUID
	SubjectID       uuid.UUID
	EvaluationTitle string
	AcademicYear    string
	Semester        string
}

type ClassDistribution struct {
	Count     int64            `json:"count"`
	Mean      float64          `json:"mean"`
	Median    float64          `json:"median"`
	StdDev    float64          `json:"std_dev"`
	Min       float64          `json:"min"`
	Max       float64          `json:"max"`
	Q1        float64          `json:"q1"`
	Q3        float64          `json:"q3"`
	BandCount map[string]int64 `json:"band_count"`
}

type RetakeSubject struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	Score       float64   `json:"score"`
	MaxScore    float64   `json:"max_score"`
	GradeBand   string    `json:"grade_band"`
	ResultID    uuid.UUID `json:"result_id"`
}

type RetakeStudent struct {
	StudentID   uuid.UUID       `json:"student_id"`
	StudentName string          `json:"student_name"`
	Subjects    []RetakeSubject `json:"subjects"`
}

type CampusOverview struct {
	ByStatus            map[string]int64 `json:"by_status"`
	ByEvaluationType    map[string]int64 `json:"by_evaluation_type"`
	AvgNormalized       float64          `json:"avg_normalized"`
	PassingRate         float64          `json:"passing_rate"`
	RetakeEligibleCount int64            `json:"retake_eligible_count"`
	AtRiskCount         int64            `json:"at_risk_count"`
}

// dropoutRiskThreshold marks a student set as at-risk in the overview.
const dropoutRiskThreshold = 60.0

func (s *ResultService) analyticsCampus(ctx context.Context, caller Caller, campusID uuid.UUID) (uuid.UUID, error) {
	if caller.Role == constants.RoleStudent {
		return uuid.Nil, Unauthorized()
	}
	if caller.IsGlobal() {
		if campusID == uuid.Nil {
			return uuid.Nil, Validation("campus_id", "campus_id is required for global roles")
		}
		return campusID, nil
	}
	return caller.CampusID, nil
}

// GetClassDistribution computes the descriptive statistics of one evaluation
// sheet directly in SQL. percentile_cont keeps median/quartiles exact and
// deterministic for a fixed data set.
func (s *ResultService) GetClassDistribution(ctx context.Context, caller Caller, campusID uuid.UUID, f DistributionFilter) (*ClassDistribution, error) {
	campus, err := s.analyticsCampus(ctx, caller, campusID)
	if err != nil {
		return nil, err
	}
	if f.ClassID == uuid.Nil || f.SubjectID == uuid.Nil || f.EvaluationTitle == "" {
		return nil, Validation("filter", "class_id, subject_id and evaluation_title are required")
	}
	if err := validateAcademicYear(f.AcademicYear); err != nil {
		return nil, err
	}
	if err := validateSemester(f.Semester); err != nil {
		return nil, err
	}

	args := []interface{}{
		campus, f.ClassID, f.SubjectID, f.EvaluationTitle, f.AcademicYear, f.Semester,
		model.StatusPublished, model.StatusArchived,
	}
	where := `result_campus_id = ? AND result_class_id = ? AND result_subject_id = ?
		AND result_evaluation_title = ? AND result_academic_year = ? AND result_semester = ?
		AND result_status IN (?, ?) AND result_deleted_at IS NULL`

	var stats struct {
		Count  int64
		Mean   *float64
		StdDev *float64
		Min    *float64
		Max    *float64
		Median *float64
		Q1     *float64
		Q3     *float64
	}
	err = s.DB.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS count,
		       AVG(result_normalized_score) AS mean,
		       STDDEV_POP(result_normalized_score) AS std_dev,
		       MIN(result_normalized_score) AS min,
		       MAX(result_normalized_score) AS max,
		       PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY result_normalized_score) AS median,
		       PERCENTILE_CONT(0.25) WITHIN GROUP (ORDER BY result_normalized_score) AS q1,
		       PERCENTILE_CONT(0.75) WITHIN GROUP (ORDER BY result_normalized_score) AS q3
		FROM results
		WHERE `+where, args...).Scan(&stats).Error
	if err != nil {
		return nil, Transient("class distribution stats", err)
	}

	dist := &ClassDistribution{Count: stats.Count, BandCount: map[string]int64{}}
	if stats.Count == 0 {
		return dist, nil
	}
	dist.Mean = Round2(deref(stats.Mean))
	dist.StdDev = Round2(deref(stats.StdDev))
	dist.Min = deref(stats.Min)
	dist.Max = deref(stats.Max)
	dist.Median = Round2(deref(stats.Median))
	dist.Q1 = Round2(deref(stats.Q1))
	dist.Q3 = Round2(deref(stats.Q3))

	var bands []struct {
		Band  string
		Total int64
	}
	err = s.DB.WithContext(ctx).Raw(`
		SELECT result_grade_band AS band, COUNT(*) AS total
		FROM results
		WHERE `+where+`
		GROUP BY result_grade_band`, args...).Scan(&bands).Error
	if err != nil {
		return nil, Transient("class distribution bands", err)
	}
	for _, b := range bands {
		dist.BandCount[b.Band] = b.Total
	}
	return dist, nil
}

// GetRetakeList returns the retake-eligible cohort of a class, grouped per
// student with the failing subjects attached.
func (s *ResultService) GetRetakeList(ctx context.Context, caller Caller, campusID, classID uuid.UUID, academicYear, semester string) ([]RetakeStudent, error) {
	campus, err := s.analyticsCampus(ctx, caller, campusID)
	if err != nil {
		return nil, err
	}
	if classID == uuid.Nil {
		return nil, Validation("class_id", "class_id is required")
	}
	if err := validateAcademicYear(academicYear); err != nil {
		return nil, err
	}
	if err := validateSemester(semester); err != nil {
		return nil, err
	}

	var rows []struct {
		StudentID   uuid.UUID
		StudentName string
		SubjectID   uuid.UUID
		SubjectName string
		Score       float64
		MaxScore    float64
		GradeBand   string
		ResultID    uuid.UUID
	}
	err = s.DB.WithContext(ctx).Raw(`
		SELECT r.result_student_id AS student_id,
		       st.student_first_name || ' ' || st.student_last_name AS student_name,
		       r.result_subject_id AS subject_id,
		       su.subject_name AS subject_name,
		       r.result_score AS score,
		       r.result_max_score AS max_score,
		       r.result_grade_band AS grade_band,
		       r.result_id AS result_id
		FROM results r
		JOIN students st ON st.student_id = r.result_student_id
		JOIN subjects su ON su.subject_id = r.result_subject_id
		WHERE r.result_campus_id = ? AND r.result_class_id = ?
		  AND r.result_academic_year = ? AND r.result_semester = ?
		  AND r.result_status IN (?, ?)
		  AND r.result_retake_eligible = TRUE
		  AND r.result_deleted_at IS NULL
		ORDER BY student_name ASC, su.subject_name ASC`,
		campus, classID, academicYear, semester,
		model.StatusPublished, model.StatusArchived).Scan(&rows).Error
	if err != nil {
		return nil, Transient("retake cohort select", err)
	}

	out := []RetakeStudent{}
	var cur *RetakeStudent
	for _, r := range rows {
		if cur == nil || cur.StudentID != r.StudentID {
			out = append(out, RetakeStudent{StudentID: r.StudentID, StudentName: r.StudentName})
			cur = &out[len(out)-1]
		}
		cur.Subjects = append(cur.Subjects, RetakeSubject{
			SubjectID:   r.SubjectID,
			SubjectName: r.SubjectName,
			Score:       r.Score,
			MaxScore:    r.MaxScore,
			GradeBand:   r.GradeBand,
			ResultID:    r.ResultID,
		})
	}
	return out, nil
}

// GetCampusOverview aggregates the campus-wide health numbers. The facet
// queries run against the whole non-deleted tenant set; the score metrics
// only consider PUBLISHED/ARCHIVED rows.
func (s *ResultService) GetCampusOverview(ctx context.Context, caller Caller, campusID uuid.UUID) (*CampusOverview, error) {
	campus, err := s.analyticsCampus(ctx, caller, campusID)
	if err != nil {
		return nil, err
	}

	ov := &CampusOverview{
		ByStatus:         map[string]int64{},
		ByEvaluationType: map[string]int64{},
	}

	var byStatus []struct {
		Status string
		Total  int64
	}
	err = s.DB.WithContext(ctx).Raw(`
		SELECT result_status AS status, COUNT(*) AS total
		FROM results
		WHERE result_campus_id = ? AND result_deleted_at IS NULL
		GROUP BY result_status`, campus).Scan(&byStatus).Error
	if err != nil {
		return nil, Transient("overview status facet", err)
	}
	for _, r := range byStatus {
		ov.ByStatus[r.Status] = r.Total
	}

	var byType []struct {
		Etype string
		Total int64
	}
	err = s.DB.WithContext(ctx).Raw(`
		SELECT result_evaluation_type AS etype, COUNT(*) AS total
		FROM results
		WHERE result_campus_id = ? AND result_deleted_at IS NULL
		GROUP BY result_evaluation_type`, campus).Scan(&byType).Error
	if err != nil {
		return nil, Transient("overview type facet", err)
	}
	for _, r := range byType {
		ov.ByEvaluationType[r.Etype] = r.Total
	}

	var metrics struct {
		Total         int64
		Passing       int64
		AvgNormalized *float64
		RetakeCount   int64
	}
	err = s.DB.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE result_passed) AS passing,
		       AVG(result_normalized_score) AS avg_normalized,
		       COUNT(*) FILTER (WHERE result_retake_eligible) AS retake_count
		FROM results
		WHERE result_campus_id = ? AND result_status IN (?, ?) AND result_deleted_at IS NULL`,
		campus, model.StatusPublished, model.StatusArchived).Scan(&metrics).Error
	if err != nil {
		return nil, Transient("overview score metrics", err)
	}
	ov.RetakeEligibleCount = metrics.RetakeCount
	if metrics.Total > 0 {
		ov.AvgNormalized = Round2(deref(metrics.AvgNormalized))
		ov.PassingRate = math.Round(float64(metrics.Passing)/float64(metrics.Total)*1000) / 10
	}

	// distinct students whose latest risk score crosses the threshold
	err = s.DB.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT result_student_id)
		FROM results
		WHERE result_campus_id = ? AND result_status IN (?, ?)
		  AND result_dropout_risk_score >= ? AND result_deleted_at IS NULL`,
		campus, model.StatusPublished, model.StatusArchived, dropoutRiskThreshold).
		Scan(&ov.AtRiskCount).Error
	if err != nil {
		return nil, Transient("overview at-risk count", err)
	}

	log.Printf("[INFO] 📊 campus overview computed campus=%s published=%d", campus, ov.ByStatus[model.StatusPublished])
	return ov, nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
