// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FormVisibility string

const (
	FormVisibilityPublic     FormVisibility = "public"
	FormVisibilityRestricted FormVisibility = "restricted"
)

type FormFieldType string

const (
	FormFieldText     FormFieldType = "text"
	FormFieldNumber   FormFieldType = "number"
	FormFieldTextarea FormFieldType = "textarea"
	FormFieldSelect   FormFieldType = "select"
	FormFieldRadio    FormFieldType = "radio"
	FormFieldCheckbox FormFieldType = "checkbox"
	FormFieldDate     FormFieldType = "date"
)

func (t FormFieldType) IsValid() bool {
	switch t {
	case FormFieldText, FormFieldNumber, FormFieldTextarea, FormFieldSelect, FormFieldRadio, FormFieldCheckbox, FormFieldDate:
		return true
	}
	return false
}

func (t FormFieldType) HasOptions() bool {
	return t == FormFieldSelect || t == FormFieldRadio || t == FormFieldCheckbox
}

type FormTemplate struct {
	Model
	Title       string         `json:"title" gorm:"type:text;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Visibility  FormVisibility `json:"visibility" gorm:"type:text;not null"`
	OrgPlacement
	IsActive  bool   `json:"isActive" gorm:"not null"`
	CreatedBy string `json:"createdBy" gorm:"type:text"`

	Fields         []FormField     `json:"fields,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	RiskReferences []RiskReference `json:"riskReferences,omitempty" gorm:"many2many:form_risk_references;"`
}

func (FormTemplate) TableName() string {
	return "form_templates"
}

func (f FormTemplate) FieldByID(id uuid.UUID) (FormField, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return FormField{}, false
}

type FormField struct {
	Model
	FormID     uuid.UUID     `json:"formId" gorm:"type:uuid;not null;index"`
	Label      string        `json:"label" gorm:"type:text;not null"`
	FieldType  FormFieldType `json:"fieldType" gorm:"type:text;not null"`
	IsRequired bool          `json:"isRequired" gorm:"not null;default:false"`
	Order      int           `json:"order" gorm:"column:sort_order;not null;default:0"`
	// comma separated
	Options string `json:"options" gorm:"type:text"`
}

func (FormField) TableName() string {
	return "form_fields"
}

func (f FormField) OptionList() []string {
	if strings.TrimSpace(f.Options) == "" {
		return nil
	}
	parts := strings.Split(f.Options, ",")
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			options = append(options, p)
		}
	}
	return options
}

type FormSubmission struct {
	ID          uuid.UUID    `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	FormID      uuid.UUID    `json:"formId" gorm:"type:uuid;not null;index"`
	SubmittedBy string       `json:"submittedBy" gorm:"type:text"`
	SubmittedAt time.Time    `json:"submittedAt" gorm:"not null"`
	Answers     []FormAnswer `json:"answers,omitempty" gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}

type FormAnswer struct {
	ID           uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	SubmissionID uuid.UUID `json:"submissionId" gorm:"type:uuid;not null;index"`
	FieldID      uuid.UUID `json:"fieldId" gorm:"type:uuid;not null"`
	Value        string    `json:"value" gorm:"type:text"`
}

func (FormAnswer) TableName() string {
	return "form_answers"
}

type FormEventAction string

const (
	FormEventCreateTemplate       FormEventAction = "create_template"
	FormEventAddField             FormEventAction = "add_field"
	FormEventSubmit               FormEventAction = "submit"
	FormEventActivate             FormEventAction = "activate"
	FormEventDeactivate           FormEventAction = "deactivate"
	FormEventAttachRiskReferences FormEventAction = "attach_risk_references"
)

type FormEvent struct {
	ID           uuid.UUID       `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	FormID       uuid.UUID       `json:"formId" gorm:"type:uuid;not null;index"`
	SubmissionID *uuid.UUID      `json:"submissionId" gorm:"type:uuid"`
	Action       FormEventAction `json:"action" gorm:"type:text;not null"`
	ActorID      *string         `json:"actorId" gorm:"type:text"`
	Payload      datatypes.JSON  `json:"payload" gorm:"type:jsonb"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (FormEvent) TableName() string {
	return "form_events"
}
