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
	"github.com/google/uuid"
)

type Branch struct {
	Model
	Name        string       `json:"name" gorm:"type:text;not null"`
	Code        string       `json:"code" gorm:"type:text;not null;uniqueIndex"`
	Departments []Department `json:"departments,omitempty" gorm:"foreignKey:BranchID"`
}

func (Branch) TableName() string {
	return "branches"
}

type Department struct {
	Model
	Name     string    `json:"name" gorm:"type:text;not null"`
	Code     string    `json:"code" gorm:"type:text;not null"`
	BranchID uuid.UUID `json:"branchId" gorm:"type:uuid;not null"`
	Sections []Section `json:"sections,omitempty" gorm:"foreignKey:DepartmentID"`
}

func (Department) TableName() string {
	return "departments"
}

// a section has no branch pointer of its own. Its branch is the branch of its department.
type Section struct {
	Model
	Name         string    `json:"name" gorm:"type:text;not null"`
	Code         string    `json:"code" gorm:"type:text;not null"`
	DepartmentID uuid.UUID `json:"departmentId" gorm:"type:uuid;not null"`
}

func (Section) TableName() string {
	return "sections"
}

type OrgLevel string

const (
	OrgLevelNone       OrgLevel = ""
	OrgLevelBranch     OrgLevel = "branch"
	OrgLevelDepartment OrgLevel = "department"
	OrgLevelSection    OrgLevel = "section"
)

// OrgPlacement pins an entity (or a role assignment) to a node of the org tree.
// Writers store the ancestors of the most specific node as well, so a section
// placement always carries its department and branch.
type OrgPlacement struct {
	BranchID     *uuid.UUID `json:"branchId" gorm:"type:uuid"`
	DepartmentID *uuid.UUID `json:"departmentId" gorm:"type:uuid"`
	SectionID    *uuid.UUID `json:"sectionId" gorm:"type:uuid"`
}

func (p OrgPlacement) IsEmpty() bool {
	return p.BranchID == nil && p.DepartmentID == nil && p.SectionID == nil
}

func (p OrgPlacement) IsComplete() bool {
	return p.BranchID != nil && p.DepartmentID != nil && p.SectionID != nil
}

// MostSpecific returns the narrowest populated level and its id.
func (p OrgPlacement) MostSpecific() (OrgLevel, uuid.UUID) {
	switch {
	case p.SectionID != nil:
		return OrgLevelSection, *p.SectionID
	case p.DepartmentID != nil:
		return OrgLevelDepartment, *p.DepartmentID
	case p.BranchID != nil:
		return OrgLevelBranch, *p.BranchID
	}
	return OrgLevelNone, uuid.Nil
}

// Covers reports whether the pin p equals or is an ancestor of node.
// An empty pin covers nothing.
func (p OrgPlacement) Covers(node OrgPlacement) bool {
	level, id := p.MostSpecific()
	switch level {
	case OrgLevelSection:
		return node.SectionID != nil && *node.SectionID == id
	case OrgLevelDepartment:
		return node.DepartmentID != nil && *node.DepartmentID == id
	case OrgLevelBranch:
		return node.BranchID != nil && *node.BranchID == id
	}
	return false
}

// Truncate keeps the placement down to the given level and drops everything narrower.
func (p OrgPlacement) Truncate(level OrgLevel) OrgPlacement {
	switch level {
	case OrgLevelSection:
		return p
	case OrgLevelDepartment:
		return OrgPlacement{BranchID: p.BranchID, DepartmentID: p.DepartmentID}
	case OrgLevelBranch:
		return OrgPlacement{BranchID: p.BranchID}
	}
	return OrgPlacement{}
}
