package dtos

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
)

type PlacementRequest struct {
	BranchID     *uuid.UUID `json:"branchId"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	SectionID    *uuid.UUID `json:"sectionId"`
}

func (p PlacementRequest) ToModel() models.OrgPlacement {
	return models.OrgPlacement{
		BranchID:     p.BranchID,
		DepartmentID: p.DepartmentID,
		SectionID:    p.SectionID,
	}
}

type CreateOrgNodeRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type SectionDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

type DepartmentDTO struct {
	ID       uuid.UUID    `json:"id"`
	Name     string       `json:"name"`
	Code     string       `json:"code"`
	Sections []SectionDTO `json:"sections"`
}

type BranchDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Departments []DepartmentDTO `json:"departments"`
}

func BranchToDTO(branch models.Branch) BranchDTO {
	departments := make([]DepartmentDTO, 0, len(branch.Departments))
	for _, d := range branch.Departments {
		sections := make([]SectionDTO, 0, len(d.Sections))
		for _, s := range d.Sections {
			sections = append(sections, SectionDTO{ID: s.ID, Name: s.Name, Code: s.Code})
		}
		departments = append(departments, DepartmentDTO{ID: d.ID, Name: d.Name, Code: d.Code, Sections: sections})
	}
	return BranchDTO{
		ID:          branch.ID,
		Name:        branch.Name,
		Code:        branch.Code,
		Departments: departments,
	}
}

// OrgTreeImport is the file format of the cli org import.
type OrgTreeImport struct {
	Branches []OrgImportBranch `yaml:"branches"`
}

type OrgImportBranch struct {
	Name        string                `yaml:"name"`
	Departments []OrgImportDepartment `yaml:"departments"`
}

type OrgImportDepartment struct {
	Name     string   `yaml:"name"`
	Sections []string `yaml:"sections"`
}
