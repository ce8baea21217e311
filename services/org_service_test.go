package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// runTransaction makes a mocked Transaction call execute its body without a database.
func runTransaction(f func(tx shared.DB) error) error {
	return f(nil)
}

type orgServiceMocks struct {
	branchRepository     *mocks.BranchRepository
	departmentRepository *mocks.DepartmentRepository
	sectionRepository    *mocks.SectionRepository
	scopeResolver        *mocks.ScopeResolver
	auditLogService      *mocks.AuditLogService
}

func newTestOrgService(t *testing.T) (*OrgService, orgServiceMocks) {
	m := orgServiceMocks{
		branchRepository:     mocks.NewBranchRepository(t),
		departmentRepository: mocks.NewDepartmentRepository(t),
		sectionRepository:    mocks.NewSectionRepository(t),
		scopeResolver:        mocks.NewScopeResolver(t),
		auditLogService:      mocks.NewAuditLogService(t),
	}
	return NewOrgService(m.branchRepository, m.departmentRepository, m.sectionRepository, m.scopeResolver, m.auditLogService), m
}

func TestNormalizePlacement(t *testing.T) {
	branchID := uuid.New()
	departmentID := uuid.New()
	sectionID := uuid.New()
	department := models.Department{Model: models.Model{ID: departmentID}, BranchID: branchID}
	section := models.Section{Model: models.Model{ID: sectionID}, DepartmentID: departmentID}

	t.Run("should leave an empty placement alone", func(t *testing.T) {
		o, _ := newTestOrgService(t)

		placement, err := o.NormalizePlacement(models.OrgPlacement{})
		assert.NoError(t, err)
		assert.True(t, placement.IsEmpty())
	})

	t.Run("should fill the ancestors of a section", func(t *testing.T) {
		o, m := newTestOrgService(t)
		m.sectionRepository.On("Read", sectionID).Return(section, nil)
		m.departmentRepository.On("Read", departmentID).Return(department, nil)

		placement, err := o.NormalizePlacement(models.OrgPlacement{SectionID: &sectionID})
		assert.NoError(t, err)
		assert.Equal(t, branchID, *placement.BranchID)
		assert.Equal(t, departmentID, *placement.DepartmentID)
		assert.True(t, placement.IsComplete())
	})

	t.Run("should cache the ancestry lookups", func(t *testing.T) {
		o, m := newTestOrgService(t)
		m.sectionRepository.On("Read", sectionID).Return(section, nil).Once()
		m.departmentRepository.On("Read", departmentID).Return(department, nil).Once()

		for range 3 {
			_, err := o.NormalizePlacement(models.OrgPlacement{SectionID: &sectionID})
			assert.NoError(t, err)
		}
	})

	t.Run("should reject a section of another department", func(t *testing.T) {
		o, m := newTestOrgService(t)
		m.sectionRepository.On("Read", sectionID).Return(section, nil)

		_, err := o.NormalizePlacement(models.OrgPlacement{DepartmentID: shared.Ptr(uuid.New()), SectionID: &sectionID})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should reject a department of another branch", func(t *testing.T) {
		o, m := newTestOrgService(t)
		m.departmentRepository.On("Read", departmentID).Return(department, nil)

		_, err := o.NormalizePlacement(models.OrgPlacement{BranchID: shared.Ptr(uuid.New()), DepartmentID: &departmentID})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should turn unknown nodes into validation errors", func(t *testing.T) {
		o, m := newTestOrgService(t)
		m.branchRepository.On("Read", branchID).Return(models.Branch{}, shared.NewNotFound("branches not found"))

		_, err := o.NormalizePlacement(models.OrgPlacement{BranchID: &branchID})
		assert.True(t, shared.IsValidationFailed(err))
	})
}

func TestCreateOrgNodes(t *testing.T) {
	admin := shared.Actor{UserID: "admin"}

	allowAdmin := func(m orgServiceMocks) {
		m.scopeResolver.On("Resolve", "admin").Return(globalScopes("admin"))
		m.scopeResolver.On("IsPermitted", mock.Anything, shared.ObjectOrg, shared.ActionCreate).Return(true)
	}

	t.Run("should deny users without the org permission", func(t *testing.T) {
		o, m := newTestOrgService(t)
		m.scopeResolver.On("Resolve", "employee").Return(shared.ActorScopes{UserID: "employee"})
		m.scopeResolver.On("IsPermitted", mock.Anything, shared.ObjectOrg, shared.ActionCreate).Return(false)

		_, err := o.CreateBranch(shared.Actor{UserID: "employee"}, dtos.CreateOrgNodeRequest{Name: "North"})
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should reject names without letters or digits", func(t *testing.T) {
		o, m := newTestOrgService(t)
		allowAdmin(m)

		_, err := o.CreateBranch(admin, dtos.CreateOrgNodeRequest{Name: "!!!"})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should derive the code from the name", func(t *testing.T) {
		o, m := newTestOrgService(t)
		allowAdmin(m)
		m.branchRepository.On("Transaction", mock.Anything).Return(runTransaction)
		m.branchRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.auditLogService.On("Log", mock.Anything, mock.Anything).Return()

		branch, err := o.CreateBranch(admin, dtos.CreateOrgNodeRequest{Name: "Hamburg Nord"})
		assert.NoError(t, err)
		assert.Equal(t, "hamburg-nord", branch.Code)
	})

	t.Run("should fail creating a department below an unknown branch", func(t *testing.T) {
		o, m := newTestOrgService(t)
		allowAdmin(m)
		branchID := uuid.New()
		m.branchRepository.On("Read", branchID).Return(models.Branch{}, shared.NewNotFound("branches not found"))

		_, err := o.CreateDepartment(admin, branchID, dtos.CreateOrgNodeRequest{Name: "Logistics"})
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("should create a section inside its department", func(t *testing.T) {
		o, m := newTestOrgService(t)
		allowAdmin(m)
		departmentID := uuid.New()
		m.departmentRepository.On("Read", departmentID).Return(models.Department{Model: models.Model{ID: departmentID}}, nil)
		m.branchRepository.On("Transaction", mock.Anything).Return(runTransaction)
		m.sectionRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.auditLogService.On("Log", mock.Anything, mock.Anything).Return()

		section, err := o.CreateSection(admin, departmentID, dtos.CreateOrgNodeRequest{Name: "Cold Storage"})
		assert.NoError(t, err)
		assert.Equal(t, departmentID, section.DepartmentID)
		assert.Equal(t, "cold-storage", section.Code)
	})
}

func TestImportTree(t *testing.T) {
	tree := dtos.OrgTreeImport{Branches: []dtos.OrgImportBranch{{
		Name: "Hamburg",
		Departments: []dtos.OrgImportDepartment{
			{Name: "Logistics", Sections: []string{"Cold Storage", "Loading Dock"}},
			{Name: "Production"},
		},
	}}}

	t.Run("should create every node in one transaction", func(t *testing.T) {
		o, m := newTestOrgService(t)
		m.branchRepository.On("Transaction", mock.Anything).Return(runTransaction).Once()
		m.branchRepository.On("Create", mock.Anything, mock.MatchedBy(func(b *models.Branch) bool {
			return b.Code == "hamburg"
		})).Return(nil).Once()
		m.departmentRepository.On("Create", mock.Anything, mock.Anything).Return(nil).Twice()
		m.sectionRepository.On("Create", mock.Anything, mock.Anything).Return(nil).Twice()
		m.auditLogService.On("Log", mock.Anything, mock.Anything).Return().Once()

		created, err := o.ImportTree(shared.Actor{DisplayName: "ohsms-cli"}, tree)
		assert.NoError(t, err)
		assert.Equal(t, 5, created)
	})

	t.Run("should stop at the first node without a usable name", func(t *testing.T) {
		o, m := newTestOrgService(t)
		m.branchRepository.On("Transaction", mock.Anything).Return(runTransaction)

		_, err := o.ImportTree(shared.Actor{}, dtos.OrgTreeImport{Branches: []dtos.OrgImportBranch{{Name: "---"}}})
		assert.True(t, shared.IsValidationFailed(err))
	})
}
