package models

type SystemContentType string

const (
	SystemContentPolicy               SystemContentType = "policy"
	SystemContentObjectives           SystemContentType = "objectives"
	SystemContentScope                SystemContentType = "scope"
	SystemContentAwareness            SystemContentType = "awareness"
	SystemContentHomepage             SystemContentType = "homepage"
	SystemContentIncidentInstructions SystemContentType = "incident_instructions"
)

func (t SystemContentType) IsValid() bool {
	switch t {
	case SystemContentPolicy, SystemContentObjectives, SystemContentScope, SystemContentAwareness, SystemContentHomepage, SystemContentIncidentInstructions:
		return true
	}
	return false
}

type SystemContent struct {
	Model
	ContentType SystemContentType `json:"contentType" gorm:"type:text;not null;uniqueIndex"`
	Title       string            `json:"title" gorm:"type:text;not null"`
	Body        string            `json:"body" gorm:"type:text"`
	IsActive    bool              `json:"isActive" gorm:"not null"`
}

func (SystemContent) TableName() string {
	return "system_contents"
}
