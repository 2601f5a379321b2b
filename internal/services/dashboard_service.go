package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/repository"
	"github.com/yukikurage/studentorg/internal/utils"
)

// DashboardStats are the home screen counters.
type DashboardStats struct {
	Year                   int
	TotalStudents          int64
	StudentsJoinedThisYear int64
	TotalOrganizations     int64
	TotalColleges          int64
	TotalPrograms          int64
}

// DashboardService computes dashboard aggregates from current data on every call.
type DashboardService struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock replaces the clock that decides the current year.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	now := s.now()
	stats := &DashboardStats{Year: now.Year()}

	counts := []struct {
		model interface{}
		dest  *int64
		name  string
	}{
		{&models.Student{}, &stats.TotalStudents, "students"},
		{&models.Organization{}, &stats.TotalOrganizations, "organizations"},
		{&models.College{}, &stats.TotalColleges, "colleges"},
		{&models.Program{}, &stats.TotalPrograms, "programs"},
	}
	for _, c := range counts {
		n, err := s.repo.Count(ctx, c.model)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		*c.dest = n
	}

	from, to := utils.YearBounds(now)
	joined, err := s.repo.CountStudentsJoinedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count students joined in %d: %w", stats.Year, err)
	}
	stats.StudentsJoinedThisYear = joined

	return stats, nil
}
