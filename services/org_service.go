package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
)

const ancestryCacheSize = 512

type OrgService struct {
	branchRepository     shared.BranchRepository
	departmentRepository shared.DepartmentRepository
	sectionRepository    shared.SectionRepository
	scopeResolver        shared.ScopeResolver
	auditLogService      shared.AuditLogService

	// org nodes are never moved, a cached parent stays valid
	departments *expirable.LRU[uuid.UUID, models.Department]
	sections    *expirable.LRU[uuid.UUID, models.Section]
}

var _ shared.OrgService = &OrgService{}

func NewOrgService(branchRepository shared.BranchRepository, departmentRepository shared.DepartmentRepository, sectionRepository shared.SectionRepository, scopeResolver shared.ScopeResolver, auditLogService shared.AuditLogService) *OrgService {
	return &OrgService{
		branchRepository:     branchRepository,
		departmentRepository: departmentRepository,
		sectionRepository:    sectionRepository,
		scopeResolver:        scopeResolver,
		auditLogService:      auditLogService,
		departments:          expirable.NewLRU[uuid.UUID, models.Department](ancestryCacheSize, nil, 10*time.Minute),
		sections:             expirable.NewLRU[uuid.UUID, models.Section](ancestryCacheSize, nil, 10*time.Minute),
	}
}

func (o *OrgService) authorize(actor shared.Actor) error {
	if actor.IsAnonymous() {
		return shared.NewPermissionDenied("authentication required")
	}
	if !o.scopeResolver.IsPermitted(o.scopeResolver.Resolve(actor.UserID), shared.ObjectOrg, shared.ActionCreate) {
		return shared.NewPermissionDenied("not allowed to manage the organization")
	}
	return nil
}

func codeFromName(name string) (string, error) {
	code := slug.Make(name)
	if code == "" {
		return "", shared.NewFieldValidationFailed("name", "must contain at least one letter or digit")
	}
	return code, nil
}

func (o *OrgService) CreateBranch(actor shared.Actor, req dtos.CreateOrgNodeRequest) (models.Branch, error) {
	if err := o.authorize(actor); err != nil {
		return models.Branch{}, err
	}
	code, err := codeFromName(req.Name)
	if err != nil {
		return models.Branch{}, err
	}

	branch := models.Branch{Name: req.Name, Code: code}
	err = o.branchRepository.Transaction(func(tx shared.DB) error {
		if err := o.branchRepository.Create(tx, &branch); err != nil {
			return err
		}
		o.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionCreate,
			ModelName:   "branch",
			ObjectID:    branch.ID.String(),
			Description: fmt.Sprintf("created branch %s", branch.Code),
		})
		return nil
	})
	return branch, err
}

func (o *OrgService) CreateDepartment(actor shared.Actor, branchID uuid.UUID, req dtos.CreateOrgNodeRequest) (models.Department, error) {
	if err := o.authorize(actor); err != nil {
		return models.Department{}, err
	}
	if _, err := o.branchRepository.Read(branchID); err != nil {
		return models.Department{}, err
	}
	code, err := codeFromName(req.Name)
	if err != nil {
		return models.Department{}, err
	}

	department := models.Department{Name: req.Name, Code: code, BranchID: branchID}
	err = o.branchRepository.Transaction(func(tx shared.DB) error {
		if err := o.departmentRepository.Create(tx, &department); err != nil {
			return err
		}
		o.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionCreate,
			ModelName:   "department",
			ObjectID:    department.ID.String(),
			Description: fmt.Sprintf("created department %s in branch %s", department.Code, branchID),
		})
		return nil
	})
	return department, err
}

func (o *OrgService) CreateSection(actor shared.Actor, departmentID uuid.UUID, req dtos.CreateOrgNodeRequest) (models.Section, error) {
	if err := o.authorize(actor); err != nil {
		return models.Section{}, err
	}
	if _, err := o.department(departmentID); err != nil {
		return models.Section{}, err
	}
	code, err := codeFromName(req.Name)
	if err != nil {
		return models.Section{}, err
	}

	section := models.Section{Name: req.Name, Code: code, DepartmentID: departmentID}
	err = o.branchRepository.Transaction(func(tx shared.DB) error {
		if err := o.sectionRepository.Create(tx, &section); err != nil {
			return err
		}
		o.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionCreate,
			ModelName:   "section",
			ObjectID:    section.ID.String(),
			Description: fmt.Sprintf("created section %s in department %s", section.Code, departmentID),
		})
		return nil
	})
	return section, err
}

// ImportTree creates every node of tree in one transaction and returns the
// number of created nodes. There is no permission check, only the operator cli
// calls it.
func (o *OrgService) ImportTree(actor shared.Actor, tree dtos.OrgTreeImport) (int, error) {
	created := 0
	err := o.branchRepository.Transaction(func(tx shared.DB) error {
		for _, b := range tree.Branches {
			code, err := codeFromName(b.Name)
			if err != nil {
				return err
			}
			branch := models.Branch{Name: b.Name, Code: code}
			if err := o.branchRepository.Create(tx, &branch); err != nil {
				return fmt.Errorf("could not create branch %s: %w", b.Name, err)
			}
			created++

			for _, d := range b.Departments {
				code, err := codeFromName(d.Name)
				if err != nil {
					return err
				}
				department := models.Department{Name: d.Name, Code: code, BranchID: branch.ID}
				if err := o.departmentRepository.Create(tx, &department); err != nil {
					return fmt.Errorf("could not create department %s: %w", d.Name, err)
				}
				created++

				for _, name := range d.Sections {
					code, err := codeFromName(name)
					if err != nil {
						return err
					}
					section := models.Section{Name: name, Code: code, DepartmentID: department.ID}
					if err := o.sectionRepository.Create(tx, &section); err != nil {
						return fmt.Errorf("could not create section %s: %w", name, err)
					}
					created++
				}
			}
		}
		o.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionCreate,
			ModelName:   "branch",
			Description: fmt.Sprintf("imported %d org nodes", created),
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (o *OrgService) Tree() ([]models.Branch, error) {
	return o.branchRepository.Tree()
}

func (o *OrgService) department(id uuid.UUID) (models.Department, error) {
	if d, ok := o.departments.Get(id); ok {
		return d, nil
	}
	d, err := o.departmentRepository.Read(id)
	if err != nil {
		return d, err
	}
	o.departments.Add(id, d)
	return d, nil
}

func (o *OrgService) section(id uuid.UUID) (models.Section, error) {
	if s, ok := o.sections.Get(id); ok {
		return s, nil
	}
	s, err := o.sectionRepository.Read(id)
	if err != nil {
		return s, err
	}
	o.sections.Add(id, s)
	return s, nil
}

// NormalizePlacement fills the missing ancestors of the most specific node and
// rejects placements whose levels do not belong together.
func (o *OrgService) NormalizePlacement(placement models.OrgPlacement) (models.OrgPlacement, error) {
	if placement.IsEmpty() {
		return placement, nil
	}

	result := placement
	if placement.SectionID != nil {
		section, err := o.section(*placement.SectionID)
		if err != nil {
			return placement, unknownNode("sectionId", err)
		}
		if placement.DepartmentID != nil && *placement.DepartmentID != section.DepartmentID {
			return placement, shared.NewFieldValidationFailed("sectionId", "section does not belong to the department")
		}
		result.DepartmentID = &section.DepartmentID
	}

	if result.DepartmentID != nil {
		department, err := o.department(*result.DepartmentID)
		if err != nil {
			return placement, unknownNode("departmentId", err)
		}
		if placement.BranchID != nil && *placement.BranchID != department.BranchID {
			return placement, shared.NewFieldValidationFailed("departmentId", "department does not belong to the branch")
		}
		result.BranchID = &department.BranchID
		return result, nil
	}

	if _, err := o.branchRepository.Read(*result.BranchID); err != nil {
		return placement, unknownNode("branchId", err)
	}
	return result, nil
}

func unknownNode(field string, err error) error {
	if shared.IsNotFound(err) {
		return shared.NewFieldValidationFailed(field, "does not exist")
	}
	return err
}
