package repository

import (
	"context"

	"github.com/yukikurage/studentorg/internal/database"
	"github.com/yukikurage/studentorg/internal/models"
	"gorm.io/gorm"
)

// Organizations without a college sort after every named college.
const organizationOrder = "CASE WHEN colleges.name IS NULL THEN 1 ELSE 0 END, colleges.name ASC, organizations.name ASC, organizations.id ASC"

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// Create creates a new organization
func (r *GormOrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Omit("College").Create(org).Error
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id uint64) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.WithContext(ctx).Preload("College").First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *GormOrganizationRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	return exists(ctx, r.db, &models.Organization{}, id)
}

// List retrieves organizations matching the query on name, description or
// college name, ordered by college name then organization name
func (r *GormOrganizationRepository) List(ctx context.Context, filter ListFilter) ([]models.Organization, int64, error) {
	var orgs []models.Organization
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Organization{}).
			Joins("LEFT JOIN colleges ON colleges.id = organizations.college_id").
			Scopes(database.ContainsAny(filter.Query,
				"organizations.name",
				"organizations.description",
				"colleges.name",
			))
	}

	total, err := listPage(query, organizationOrder, filter.Pagination, &orgs, "College")
	if err != nil {
		return nil, 0, err
	}
	return orgs, total, nil
}

func (r *GormOrganizationRepository) ListAll(ctx context.Context) ([]models.Organization, error) {
	var orgs []models.Organization
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// Update updates an organization
func (r *GormOrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Omit("College").Save(org).Error
}

// Delete deletes an organization and all of its members in a transaction
func (r *GormOrganizationRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&models.OrgMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Organization{}, id).Error
	})
}
