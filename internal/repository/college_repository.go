package repository

import (
	"context"

	"github.com/yukikurage/studentorg/internal/database"
	"github.com/yukikurage/studentorg/internal/models"
	"gorm.io/gorm"
)

// GormCollegeRepository is a GORM implementation of CollegeRepository
type GormCollegeRepository struct {
	db *gorm.DB
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(db *gorm.DB) CollegeRepository {
	return &GormCollegeRepository{db: db}
}

func (r *GormCollegeRepository) Create(ctx context.Context, college *models.College) error {
	return r.db.WithContext(ctx).Create(college).Error
}

func (r *GormCollegeRepository) FindByID(ctx context.Context, id uint64) (*models.College, error) {
	var college models.College
	if err := r.db.WithContext(ctx).First(&college, id).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

func (r *GormCollegeRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	return exists(ctx, r.db, &models.College{}, id)
}

// List retrieves colleges whose name contains the query
func (r *GormCollegeRepository) List(ctx context.Context, filter ListFilter) ([]models.College, int64, error) {
	var colleges []models.College
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.College{}).
			Scopes(database.ContainsAny(filter.Query, "colleges.name"))
	}

	total, err := listPage(query, "colleges.id ASC", filter.Pagination, &colleges)
	if err != nil {
		return nil, 0, err
	}
	return colleges, total, nil
}

func (r *GormCollegeRepository) ListAll(ctx context.Context) ([]models.College, error) {
	var colleges []models.College
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}

func (r *GormCollegeRepository) Update(ctx context.Context, college *models.College) error {
	return r.db.WithContext(ctx).Save(college).Error
}

// Delete deletes a college unless programs or organizations still point at it
func (r *GormCollegeRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if used, err := referenced(tx, &models.Program{}, "college_id", id); err != nil {
			return err
		} else if used {
			return ErrHasDependents
		}

		if used, err := referenced(tx, &models.Organization{}, "college_id", id); err != nil {
			return err
		} else if used {
			return ErrHasDependents
		}

		return tx.Delete(&models.College{}, id).Error
	})
}
