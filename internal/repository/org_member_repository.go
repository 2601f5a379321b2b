package repository

import (
	"context"

	"github.com/yukikurage/studentorg/internal/constants"
	"github.com/yukikurage/studentorg/internal/database"
	"github.com/yukikurage/studentorg/internal/models"
	"gorm.io/gorm"
)

// memberOrderings maps accepted ordering keys to ORDER BY clauses.
var memberOrderings = map[string]string{
	constants.OrderingStudentLastName:  "students.last_name ASC",
	constants.OrderingStudentFirstName: "students.first_name ASC",
	constants.OrderingDateJoined:       "org_members.date_joined ASC",
	constants.OrderingDateJoinedDesc:   "org_members.date_joined DESC",
}

// MemberOrderingClause returns the ORDER BY for key, falling back to student
// last name for unknown keys.
func MemberOrderingClause(key string) string {
	order, ok := memberOrderings[key]
	if !ok {
		order = memberOrderings[constants.OrderingStudentLastName]
	}
	return order + ", org_members.id ASC"
}

// GormOrgMemberRepository is a GORM implementation of OrgMemberRepository
type GormOrgMemberRepository struct {
	db *gorm.DB
}

// NewOrgMemberRepository creates a new OrgMemberRepository
func NewOrgMemberRepository(db *gorm.DB) OrgMemberRepository {
	return &GormOrgMemberRepository{db: db}
}

func (r *GormOrgMemberRepository) Create(ctx context.Context, member *models.OrgMember) error {
	return r.db.WithContext(ctx).Omit("Student", "Organization").Create(member).Error
}

// FindByID finds a membership with its student and organization
func (r *GormOrgMemberRepository) FindByID(ctx context.Context, id uint64) (*models.OrgMember, error) {
	var member models.OrgMember
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Organization").
		First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// List retrieves memberships matching the query on the student's last or
// first name or the organization name
func (r *GormOrgMemberRepository) List(ctx context.Context, filter OrgMemberFilter) ([]models.OrgMember, int64, error) {
	var members []models.OrgMember
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.OrgMember{}).
			Joins("JOIN students ON students.id = org_members.student_id").
			Joins("JOIN organizations ON organizations.id = org_members.organization_id").
			Scopes(database.ContainsAny(filter.Query,
				"students.last_name",
				"students.first_name",
				"organizations.name",
			))
	}

	total, err := listPage(query, MemberOrderingClause(filter.Ordering), filter.Pagination, &members, "Student", "Organization")
	if err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func (r *GormOrgMemberRepository) Update(ctx context.Context, member *models.OrgMember) error {
	return r.db.WithContext(ctx).Omit("Student", "Organization").Save(member).Error
}

func (r *GormOrgMemberRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.OrgMember{}, id).Error
}
