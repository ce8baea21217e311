package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
)

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *statisticsRepository {
	return &statisticsRepository{
		db: db,
	}
}

func (r *statisticsRepository) incidents(filter shared.VisibilityFilter) *gorm.DB {
	return r.db.Model(&models.Incident{}).Scopes(incidentVisibility("incidents", filter))
}

func (r *statisticsRepository) risks(filter shared.VisibilityFilter) *gorm.DB {
	return r.db.Model(&models.Risk{}).Scopes(riskVisibility("risks", filter))
}

func (r *statisticsRepository) CountIncidents(filter shared.VisibilityFilter, since *time.Time) (int64, error) {
	var count int64
	q := r.incidents(filter)
	if since != nil {
		q = q.Where("incidents.created_at >= ?", *since)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *statisticsRepository) IncidentsByStatus(filter shared.VisibilityFilter) ([]dtos.CountByKey, error) {
	return r.groupCount(r.incidents(filter), "incidents.status")
}

func (r *statisticsRepository) IncidentsByType(filter shared.VisibilityFilter) ([]dtos.CountByKey, error) {
	return r.groupCount(r.incidents(filter), "incidents.incident_type")
}

// TopIncidentNodes counts incidents per org node on the given level. The label is the node name.
func (r *statisticsRepository) TopIncidentNodes(filter shared.VisibilityFilter, level models.OrgLevel, limit int) ([]dtos.CountByKey, error) {
	var table, fk string
	switch level {
	case models.OrgLevelBranch:
		table, fk = "branches", "branch_id"
	case models.OrgLevelDepartment:
		table, fk = "departments", "department_id"
	case models.OrgLevelSection:
		table, fk = "sections", "section_id"
	default:
		return []dtos.CountByKey{}, nil
	}

	var result []dtos.CountByKey
	err := r.incidents(filter).
		Select("CAST(n.id AS text) AS key, n.name AS label, COUNT(*) AS count").
		Joins("JOIN " + table + " n ON n.id = incidents." + fk).
		Group("n.id, n.name").
		Order("count DESC, label ASC").
		Limit(limit).
		Scan(&result).Error
	return result, err
}

func (r *statisticsRepository) IncidentTrend(filter shared.VisibilityFilter, since time.Time) ([]dtos.CountByDay, error) {
	return r.dailyCount(r.incidents(filter), "incidents.created_at", since)
}

// AverageIncidentResponseSeconds is nil while no incident has been handled.
func (r *statisticsRepository) AverageIncidentResponseSeconds(filter shared.VisibilityFilter) (*float64, error) {
	var avg *float64
	err := r.incidents(filter).
		Select("EXTRACT(EPOCH FROM AVG(incidents.handled_at - incidents.created_at))").
		Where("incidents.handled_at IS NOT NULL").
		Scan(&avg).Error
	return avg, err
}

// IncidentSLACounts counts every visible incident as total. within counts the
// ones which moved to in progress inside the threshold.
func (r *statisticsRepository) IncidentSLACounts(filter shared.VisibilityFilter, thresholdHours int) (int64, int64, error) {
	var row struct {
		Within int64
		Total  int64
	}
	err := incidentSLAQuery(r.incidents(filter), thresholdHours).Scan(&row).Error
	return row.Within, row.Total, err
}

func incidentSLAQuery(q *gorm.DB, thresholdHours int) *gorm.DB {
	return q.Select(`COUNT(*) FILTER (WHERE incidents.handled_at IS NOT NULL
		AND incidents.handled_at - incidents.created_at <= make_interval(hours => ?)) AS within,
		COUNT(*) AS total`, thresholdHours)
}

func (r *statisticsRepository) LastIncidentEventAt(filter shared.VisibilityFilter) (*time.Time, error) {
	var last *time.Time
	err := r.db.Model(&models.IncidentEvent{}).
		Select("MAX(incident_events.created_at)").
		Joins("JOIN incidents ON incidents.id = incident_events.incident_id").
		Scopes(incidentVisibility("incidents", filter)).
		Scan(&last).Error
	return last, err
}

func (r *statisticsRepository) CountRisks(filter shared.VisibilityFilter, since *time.Time) (int64, error) {
	var count int64
	q := r.risks(filter)
	if since != nil {
		q = q.Where("risks.created_at >= ?", *since)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *statisticsRepository) RisksByStatus(filter shared.VisibilityFilter) ([]dtos.CountByKey, error) {
	return r.groupCount(r.risks(filter), "risks.status")
}

func (r *statisticsRepository) RisksByCategory(filter shared.VisibilityFilter, limit int) ([]dtos.CountByKey, error) {
	var result []dtos.CountByKey
	err := r.risks(filter).
		Select("CAST(c.id AS text) AS key, c.name AS label, COUNT(*) AS count").
		Joins("JOIN risk_categories c ON c.id = risks.category_id").
		Group("c.id, c.name").
		Order("count DESC, label ASC").
		Limit(limit).
		Scan(&result).Error
	return result, err
}

func (r *statisticsRepository) RiskDistribution(filter shared.VisibilityFilter) (dtos.RiskDistribution, error) {
	var dist dtos.RiskDistribution
	err := r.risks(filter).
		Select(`COUNT(*) FILTER (WHERE risks.risk_score < ?) AS low,
			COUNT(*) FILTER (WHERE risks.risk_score >= ? AND risks.risk_score < ?) AS medium,
			COUNT(*) FILTER (WHERE risks.risk_score >= ?) AS high`,
			models.MediumRiskThreshold, models.MediumRiskThreshold, models.HighRiskThreshold, models.HighRiskThreshold).
		Scan(&dist).Error
	return dist, err
}

func (r *statisticsRepository) RiskTrend(filter shared.VisibilityFilter, since time.Time) ([]dtos.CountByDay, error) {
	return r.dailyCount(r.risks(filter), "risks.created_at", since)
}

func (r *statisticsRepository) CountFormTemplates(onlyActive bool) (int64, error) {
	var count int64
	q := r.db.Model(&models.FormTemplate{})
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *statisticsRepository) CountFormSubmissions(since *time.Time) (int64, error) {
	var count int64
	q := r.db.Model(&models.FormSubmission{})
	if since != nil {
		q = q.Where("submitted_at >= ?", *since)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *statisticsRepository) FormEventsByAction(since time.Time) ([]dtos.CountByKey, error) {
	return r.groupCount(r.db.Model(&models.FormEvent{}).Where("form_events.created_at >= ?", since), "form_events.action")
}

func (r *statisticsRepository) LatestFormSubmissions(limit int) ([]dtos.FormSubmissionSummary, error) {
	var result []dtos.FormSubmissionSummary
	err := r.db.Model(&models.FormSubmission{}).
		Select(`CAST(form_submissions.id AS text) AS submission_id, CAST(f.id AS text) AS form_id,
			f.title AS form_title, COALESCE(form_submissions.submitted_by, '') AS submitted_by,
			form_submissions.submitted_at`).
		Joins("JOIN form_templates f ON f.id = form_submissions.form_id").
		Order("form_submissions.submitted_at DESC").
		Limit(limit).
		Scan(&result).Error
	return result, err
}

func (r *statisticsRepository) groupCount(q *gorm.DB, col string) ([]dtos.CountByKey, error) {
	var result []dtos.CountByKey
	err := q.Select(col + " AS key, " + col + " AS label, COUNT(*) AS count").
		Group(col).
		Order("count DESC").
		Scan(&result).Error
	return result, err
}

func (r *statisticsRepository) dailyCount(q *gorm.DB, col string, since time.Time) ([]dtos.CountByDay, error) {
	var result []dtos.CountByDay
	err := q.Select("date_trunc('day', "+col+") AS day, COUNT(*) AS count").
		Where(col+" >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&result).Error
	return result, err
}

var _ shared.StatisticsRepository = (*statisticsRepository)(nil)
