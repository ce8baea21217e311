package dtos

import "time"

type CountByKey struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type CountByDay struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

type SLACompliance struct {
	ThresholdHours int     `json:"thresholdHours"`
	Within         int64   `json:"within"`
	Total          int64   `json:"total"`
	Percentage     float64 `json:"percentage"`
}

type IncidentKPIs struct {
	Total                  int64         `json:"total"`
	Recent                 int64         `json:"recent"`
	RecentDays             int           `json:"recentDays"`
	ByStatus               []CountByKey  `json:"byStatus"`
	ByType                 []CountByKey  `json:"byType"`
	TopBranches            []CountByKey  `json:"topBranches"`
	TopDepartments         []CountByKey  `json:"topDepartments"`
	TopSections            []CountByKey  `json:"topSections"`
	Trend                  []CountByDay  `json:"trend"`
	AverageResponseSeconds *float64      `json:"averageResponseSeconds"`
	SLA                    SLACompliance `json:"sla"`
}

type RiskDistribution struct {
	Low    int64 `json:"low"`
	Medium int64 `json:"medium"`
	High   int64 `json:"high"`
}

type RiskKPIs struct {
	Total        int64            `json:"total"`
	Recent       int64            `json:"recent"`
	RecentDays   int              `json:"recentDays"`
	ByStatus     []CountByKey     `json:"byStatus"`
	ByCategory   []CountByKey     `json:"byCategory"`
	HighCount    int64            `json:"highCount"`
	Distribution RiskDistribution `json:"distribution"`
	Trend        []CountByDay     `json:"trend"`
}

type FormSubmissionSummary struct {
	SubmissionID string    `json:"submissionId"`
	FormID       string    `json:"formId"`
	FormTitle    string    `json:"formTitle"`
	SubmittedBy  string    `json:"submittedBy"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

type FormKPIs struct {
	TotalTemplates    int64                   `json:"totalTemplates"`
	ActiveTemplates   int64                   `json:"activeTemplates"`
	TotalSubmissions  int64                   `json:"totalSubmissions"`
	RecentSubmissions int64                   `json:"recentSubmissions"`
	RecentDays        int                     `json:"recentDays"`
	EventsByAction    []CountByKey            `json:"eventsByAction"`
	Latest            []FormSubmissionSummary `json:"latest"`
}

type SystemSnapshot struct {
	IncidentsByStatus []CountByKey `json:"incidentsByStatus"`
	RisksByStatus     []CountByKey `json:"risksByStatus"`
	LastIncidentEvent *time.Time   `json:"lastIncidentEvent"`
	GeneratedAt       time.Time    `json:"generatedAt"`
}

type DashboardDTO struct {
	Incidents IncidentKPIs   `json:"incidents"`
	Risks     RiskKPIs       `json:"risks"`
	Forms     *FormKPIs      `json:"forms,omitempty"`
	Snapshot  SystemSnapshot `json:"snapshot"`
}
