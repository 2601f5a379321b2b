package repository

import (
	"context"
	"errors"
	"time"

	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/utils"
)

// ErrHasDependents is returned when a delete is blocked by rows that still
// reference the target.
var ErrHasDependents = errors.New("repository: record is still referenced")

// ListFilter holds the search term and page for list screens
type ListFilter struct {
	Query      string
	Pagination utils.PaginationParams
}

// OrgMemberFilter adds the member list ordering key
type OrgMemberFilter struct {
	ListFilter
	Ordering string
}

// CollegeRepository defines the interface for college data access
type CollegeRepository interface {
	Create(ctx context.Context, college *models.College) error
	FindByID(ctx context.Context, id uint64) (*models.College, error)
	Exists(ctx context.Context, id uint64) (bool, error)

	// List filters by college name
	List(ctx context.Context, filter ListFilter) ([]models.College, int64, error)

	// ListAll returns every college ordered by name, for form choices
	ListAll(ctx context.Context) ([]models.College, error)

	Update(ctx context.Context, college *models.College) error

	// Delete fails with ErrHasDependents while programs or organizations reference the college
	Delete(ctx context.Context, id uint64) error
}

// ProgramRepository defines the interface for program data access
type ProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	FindByID(ctx context.Context, id uint64) (*models.Program, error)
	Exists(ctx context.Context, id uint64) (bool, error)

	// List filters by program name or college name
	List(ctx context.Context, filter ListFilter) ([]models.Program, int64, error)
	ListAll(ctx context.Context) ([]models.Program, error)
	Update(ctx context.Context, program *models.Program) error

	// Delete fails with ErrHasDependents while students reference the program
	Delete(ctx context.Context, id uint64) error
}

// StudentRepository defines the interface for student data access
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	FindByID(ctx context.Context, id uint64) (*models.Student, error)
	Exists(ctx context.Context, id uint64) (bool, error)

	// StudentIDTaken reports whether another student already uses the identifier
	StudentIDTaken(ctx context.Context, studentID string, excludeID uint64) (bool, error)

	// List filters by any name part, the student identifier, or program name
	List(ctx context.Context, filter ListFilter) ([]models.Student, int64, error)
	ListAll(ctx context.Context) ([]models.Student, error)
	Update(ctx context.Context, student *models.Student) error

	// Delete removes the student and their memberships
	Delete(ctx context.Context, id uint64) error
}

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	FindByID(ctx context.Context, id uint64) (*models.Organization, error)
	Exists(ctx context.Context, id uint64) (bool, error)

	// List filters by name, description or college name, ordered by college then name
	List(ctx context.Context, filter ListFilter) ([]models.Organization, int64, error)
	ListAll(ctx context.Context) ([]models.Organization, error)
	Update(ctx context.Context, org *models.Organization) error

	// Delete removes the organization and its memberships
	Delete(ctx context.Context, id uint64) error
}

// OrgMemberRepository defines the interface for membership data access
type OrgMemberRepository interface {
	Create(ctx context.Context, member *models.OrgMember) error
	FindByID(ctx context.Context, id uint64) (*models.OrgMember, error)

	// List filters by student last/first name or organization name
	List(ctx context.Context, filter OrgMemberFilter) ([]models.OrgMember, int64, error)
	Update(ctx context.Context, member *models.OrgMember) error
	Delete(ctx context.Context, id uint64) error
}

// DashboardRepository defines the aggregate queries behind the home screen
type DashboardRepository interface {
	// Count returns the number of rows of the given model
	Count(ctx context.Context, model interface{}) (int64, error)

	// CountStudentsJoinedBetween counts distinct students with a membership
	// whose join date falls in [from, to)
	CountStudentsJoinedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
