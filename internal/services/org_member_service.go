package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/repository"
	"github.com/yukikurage/studentorg/internal/utils"
	"gorm.io/gorm"
)

// OrgMemberInput is the membership form field whitelist.
type OrgMemberInput struct {
	Student      uint64 `form:"student" json:"student" validate:"required"`
	Organization uint64 `form:"organization" json:"organization" validate:"required"`
	DateJoined   string `form:"date_joined" json:"date_joined" validate:"required,datetime=2006-01-02"`
}

// OrgMemberService provides business logic for organization memberships.
type OrgMemberService struct {
	repo            repository.OrgMemberRepository
	students        repository.StudentRepository
	orgs            repository.OrganizationRepository
	orderings       map[string]bool
	defaultOrdering string
}

// NewOrgMemberService creates a new OrgMemberService. orderings is the list
// ordering allow-list; defaultOrdering is used for anything outside it.
func NewOrgMemberService(
	repo repository.OrgMemberRepository,
	students repository.StudentRepository,
	orgs repository.OrganizationRepository,
	orderings []string,
	defaultOrdering string,
) *OrgMemberService {
	allowed := make(map[string]bool, len(orderings))
	for _, o := range orderings {
		allowed[o] = true
	}
	return &OrgMemberService{
		repo:            repo,
		students:        students,
		orgs:            orgs,
		orderings:       allowed,
		defaultOrdering: defaultOrdering,
	}
}

// ResolveOrdering returns key when it is allowed, otherwise the default ordering.
func (s *OrgMemberService) ResolveOrdering(key string) string {
	if s.orderings[key] {
		return key
	}
	return s.defaultOrdering
}

func (s *OrgMemberService) List(ctx context.Context, params ListParams) ([]models.OrgMember, int64, error) {
	members, total, err := s.repo.List(ctx, repository.OrgMemberFilter{
		ListFilter: params.filter(),
		Ordering:   s.ResolveOrdering(params.Ordering),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list organization members: %w", err)
	}
	return members, total, nil
}

func (s *OrgMemberService) Get(ctx context.Context, id uint64) (*models.OrgMember, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrgMemberNotFound
		}
		return nil, fmt.Errorf("failed to find organization member: %w", err)
	}
	return member, nil
}

func (s *OrgMemberService) validate(ctx context.Context, input OrgMemberInput) (*models.OrgMember, error) {
	verr := validateInput(&input)

	if err := checkChoice(verr, "student", input.Student, func(id uint64) (bool, error) {
		return s.students.Exists(ctx, id)
	}); err != nil {
		return nil, err
	}
	if err := checkChoice(verr, "organization", input.Organization, func(id uint64) (bool, error) {
		return s.orgs.Exists(ctx, id)
	}); err != nil {
		return nil, err
	}

	var joined models.OrgMember
	if !verr.Has("date_joined") {
		date, err := utils.ParseDate(input.DateJoined)
		if err != nil {
			verr.Add("date_joined", MsgInvalidDate)
		}
		joined.DateJoined = utils.DateOf(date)
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	joined.StudentID = input.Student
	joined.OrganizationID = input.Organization
	return &joined, nil
}

func (s *OrgMemberService) Create(ctx context.Context, input OrgMemberInput) (*models.OrgMember, error) {
	member, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add organization member: %w", err)
	}
	return s.Get(ctx, member.ID)
}

func (s *OrgMemberService) Update(ctx context.Context, id uint64, input OrgMemberInput) (*models.OrgMember, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	member.StudentID = changes.StudentID
	member.OrganizationID = changes.OrganizationID
	member.DateJoined = changes.DateJoined
	if err := s.repo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update organization member: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *OrgMemberService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove organization member: %w", err)
	}
	return nil
}
