package repository

import (
	"context"

	"github.com/yukikurage/studentorg/internal/database"
	"github.com/yukikurage/studentorg/internal/models"
	"gorm.io/gorm"
)

// GormStudentRepository is a GORM implementation of StudentRepository
type GormStudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &GormStudentRepository{db: db}
}

func (r *GormStudentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Omit("Program").Create(student).Error
}

// FindByID finds a student with their program
func (r *GormStudentRepository) FindByID(ctx context.Context, id uint64) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Preload("Program").First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *GormStudentRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	return exists(ctx, r.db, &models.Student{}, id)
}

func (r *GormStudentRepository) StudentIDTaken(ctx context.Context, studentID string, excludeID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Student{}).
		Where("student_id = ? AND id <> ?", studentID, excludeID).
		Count(&count).Error
	return count > 0, err
}

// List retrieves students matching the query on any name part, the student
// identifier or the program name
func (r *GormStudentRepository) List(ctx context.Context, filter ListFilter) ([]models.Student, int64, error) {
	var students []models.Student
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Student{}).
			Joins("JOIN programs ON programs.id = students.program_id").
			Scopes(database.ContainsAny(filter.Query,
				"students.last_name",
				"students.first_name",
				"students.middle_name",
				"students.student_id",
				"programs.name",
			))
	}

	total, err := listPage(query, "students.id ASC", filter.Pagination, &students, "Program")
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *GormStudentRepository) ListAll(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Order("last_name ASC, first_name ASC, id ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *GormStudentRepository) Update(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Omit("Program").Save(student).Error
}

// Delete deletes a student and all of their memberships in a transaction
func (r *GormStudentRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&models.OrgMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Student{}, id).Error
	})
}
