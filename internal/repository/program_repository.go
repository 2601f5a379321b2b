package repository

import (
	"context"

	"github.com/yukikurage/studentorg/internal/database"
	"github.com/yukikurage/studentorg/internal/models"
	"gorm.io/gorm"
)

// GormProgramRepository is a GORM implementation of ProgramRepository
type GormProgramRepository struct {
	db *gorm.DB
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &GormProgramRepository{db: db}
}

func (r *GormProgramRepository) Create(ctx context.Context, program *models.Program) error {
	return r.db.WithContext(ctx).Omit("College").Create(program).Error
}

// FindByID finds a program with its college
func (r *GormProgramRepository) FindByID(ctx context.Context, id uint64) (*models.Program, error) {
	var program models.Program
	if err := r.db.WithContext(ctx).Preload("College").First(&program, id).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *GormProgramRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	return exists(ctx, r.db, &models.Program{}, id)
}

// List retrieves programs whose own name or college name contains the query
func (r *GormProgramRepository) List(ctx context.Context, filter ListFilter) ([]models.Program, int64, error) {
	var programs []models.Program
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Program{}).
			Joins("JOIN colleges ON colleges.id = programs.college_id").
			Scopes(database.ContainsAny(filter.Query, "programs.name", "colleges.name"))
	}

	total, err := listPage(query, "programs.id ASC", filter.Pagination, &programs, "College")
	if err != nil {
		return nil, 0, err
	}
	return programs, total, nil
}

func (r *GormProgramRepository) ListAll(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *GormProgramRepository) Update(ctx context.Context, program *models.Program) error {
	return r.db.WithContext(ctx).Omit("College").Save(program).Error
}

// Delete deletes a program unless students are still enrolled in it
func (r *GormProgramRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if used, err := referenced(tx, &models.Student{}, "program_id", id); err != nil {
			return err
		} else if used {
			return ErrHasDependents
		}

		return tx.Delete(&models.Program{}, id).Error
	})
}
