package repository

import (
	"context"
	"time"

	"github.com/yukikurage/studentorg/internal/models"
	"gorm.io/gorm"
)

// GormDashboardRepository is a GORM implementation of DashboardRepository
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &GormDashboardRepository{db: db}
}

func (r *GormDashboardRepository) Count(ctx context.Context, model interface{}) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Count(&count).Error
	return count, err
}

func (r *GormDashboardRepository) CountStudentsJoinedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrgMember{}).
		Where("date_joined >= ? AND date_joined < ?", from, to).
		Distinct("student_id").
		Count(&count).Error
	return count, err
}
