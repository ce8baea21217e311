// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
	"gorm.io/gorm"
)

type branchRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Branch]
}

func NewBranchRepository(db *gorm.DB) *branchRepository {
	return &branchRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Branch](db),
	}
}

func (r *branchRepository) Create(tx *gorm.DB, branch *models.Branch) error {
	code, err := firstFreeCode(r.GetDB(tx), branch.TableName(), branch.Code, nil)
	if err != nil {
		return fmt.Errorf("could not generate branch code: %w", err)
	}
	branch.Code = code
	return r.GormRepository.Create(tx, branch)
}

// Tree returns all branches with their departments and sections, ordered by name.
func (r *branchRepository) Tree() ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.
		Preload("Departments", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("Departments.Sections", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Order("name ASC").
		Find(&branches).Error
	return branches, err
}

type departmentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Department]
}

func NewDepartmentRepository(db *gorm.DB) *departmentRepository {
	return &departmentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Department](db),
	}
}

func (r *departmentRepository) Create(tx *gorm.DB, department *models.Department) error {
	code, err := firstFreeCode(r.GetDB(tx), department.TableName(), department.Code, map[string]any{"branch_id": department.BranchID})
	if err != nil {
		return fmt.Errorf("could not generate department code: %w", err)
	}
	department.Code = code
	return r.GormRepository.Create(tx, department)
}

func (r *departmentRepository) ListByBranch(branchID uuid.UUID) ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Where("branch_id = ?", branchID).Order("name ASC").Find(&departments).Error
	return departments, err
}

type sectionRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Section]
}

func NewSectionRepository(db *gorm.DB) *sectionRepository {
	return &sectionRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Section](db),
	}
}

func (r *sectionRepository) Create(tx *gorm.DB, section *models.Section) error {
	code, err := firstFreeCode(r.GetDB(tx), section.TableName(), section.Code, map[string]any{"department_id": section.DepartmentID})
	if err != nil {
		return fmt.Errorf("could not generate section code: %w", err)
	}
	section.Code = code
	return r.GormRepository.Create(tx, section)
}

func (r *sectionRepository) ListByDepartment(departmentID uuid.UUID) ([]models.Section, error) {
	var sections []models.Section
	err := r.db.Where("department_id = ?", departmentID).Order("name ASC").Find(&sections).Error
	return sections, err
}

var (
	_ shared.BranchRepository     = (*branchRepository)(nil)
	_ shared.DepartmentRepository = (*departmentRepository)(nil)
	_ shared.SectionRepository    = (*sectionRepository)(nil)
)
