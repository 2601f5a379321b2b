package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/repository"
	"gorm.io/gorm"
)

// OrganizationInput is the organization form field whitelist. College is optional.
type OrganizationInput struct {
	Name        string  `form:"name" json:"name" validate:"required,max=250"`
	Description string  `form:"description" json:"description"`
	College     *uint64 `form:"college" json:"college"`
}

// OrganizationService provides business logic for organization operations.
type OrganizationService struct {
	orgRepo  repository.OrganizationRepository
	colleges repository.CollegeRepository
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(orgRepo repository.OrganizationRepository, colleges repository.CollegeRepository) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		colleges: colleges,
	}
}

// List returns organizations ordered by college name, then name.
func (s *OrganizationService) List(ctx context.Context, params ListParams) ([]models.Organization, int64, error) {
	orgs, total, err := s.orgRepo.List(ctx, params.filter())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, total, nil
}

// All returns every organization, for form choices.
func (s *OrganizationService) All(ctx context.Context) ([]models.Organization, error) {
	orgs, err := s.orgRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

func (s *OrganizationService) Get(ctx context.Context, id uint64) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return org, nil
}

func (s *OrganizationService) validate(ctx context.Context, input *OrganizationInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	// An empty select arrives as 0.
	if input.College != nil && *input.College == 0 {
		input.College = nil
	}

	verr := validateInput(input)
	if input.College != nil {
		if err := checkChoice(verr, "college", *input.College, func(id uint64) (bool, error) {
			return s.colleges.Exists(ctx, id)
		}); err != nil {
			return err
		}
	}
	return verr.Err()
}

func (s *OrganizationService) Create(ctx context.Context, input OrganizationInput) (*models.Organization, error) {
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	org := &models.Organization{
		Name:        input.Name,
		Description: input.Description,
		CollegeID:   input.College,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, nil
}

func (s *OrganizationService) Update(ctx context.Context, id uint64, input OrganizationInput) (*models.Organization, error) {
	org, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	org.Name = input.Name
	org.Description = input.Description
	org.CollegeID = input.College
	org.College = nil
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return org, nil
}

// Delete removes an organization and its memberships.
func (s *OrganizationService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.orgRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}
