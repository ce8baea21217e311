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
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/ohsms/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Tabler interface {
	TableName() string
}

type GormRepository[ID comparable, T Tabler] struct {
	db *gorm.DB
}

func newGormRepository[ID comparable, T Tabler](db *gorm.DB) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db: db,
	}
}

func (g *GormRepository[ID, T]) All() ([]T, error) {
	var ts []T
	err := g.db.Find(&ts).Error
	return ts, err
}

// Save never touches associations. Join tables are replaced explicitly.
func (g *GormRepository[ID, T]) Save(tx *gorm.DB, t *T) error {
	return translateError(g.GetDB(tx).Omit(clause.Associations).Save(t).Error)
}

func (g *GormRepository[ID, T]) Transaction(f func(tx *gorm.DB) error) error {
	return g.db.Transaction(f)
}

func (g *GormRepository[ID, T]) Begin() *gorm.DB {
	return g.db.Begin()
}

func (g *GormRepository[ID, T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return g.db
}

func (g *GormRepository[ID, T]) Create(tx *gorm.DB, t *T) error {
	return translateError(g.GetDB(tx).Create(t).Error)
}

func (g *GormRepository[ID, T]) Read(id ID) (T, error) {
	var t T
	err := g.db.First(&t, "id = ?", id).Error
	return t, notFound[T](err)
}

func (g *GormRepository[ID, T]) Delete(tx *gorm.DB, id ID) error {
	var t T
	res := g.GetDB(tx).Delete(&t, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.NewNotFound(fmt.Sprintf("%s not found", t.TableName()))
	}
	return nil
}

func (g *GormRepository[ID, T]) List(ids []ID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var ts []T
	err := g.db.Find(&ts, "id IN ?", ids).Error
	return ts, err
}

// notFound maps gorm.ErrRecordNotFound to the domain error.
func notFound[T Tabler](err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var t T
		return shared.NewNotFound(fmt.Sprintf("%s not found", t.TableName()))
	}
	return err
}

// translateError turns constraint violations into validation errors, the
// caller supplied something which clashes with existing rows.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique violation
			return &shared.ValidationFailedError{
				Message: "entry already exists",
				Details: map[string]string{pgErr.ConstraintName: "must be unique"},
			}
		case "23503": // FK violation
			return &shared.ValidationFailedError{
				Message: "referenced entry does not exist",
				Details: map[string]string{pgErr.ConstraintName: "unknown reference"},
			}
		case "23514": // check violation
			return &shared.ValidationFailedError{
				Message: "value out of range",
				Details: map[string]string{pgErr.ConstraintName: pgErr.Message},
			}
		}
	}
	return err
}
