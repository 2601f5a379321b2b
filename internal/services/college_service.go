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

// CollegeInput is the college form field whitelist.
type CollegeInput struct {
	Name string `form:"name" json:"name" validate:"required,max=250"`
}

// CollegeService provides business logic for college operations.
type CollegeService struct {
	repo repository.CollegeRepository
}

// NewCollegeService creates a new CollegeService.
func NewCollegeService(repo repository.CollegeRepository) *CollegeService {
	return &CollegeService{repo: repo}
}

func (s *CollegeService) List(ctx context.Context, params ListParams) ([]models.College, int64, error) {
	colleges, total, err := s.repo.List(ctx, params.filter())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list colleges: %w", err)
	}
	return colleges, total, nil
}

// All returns every college, for form choices.
func (s *CollegeService) All(ctx context.Context) ([]models.College, error) {
	colleges, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list colleges: %w", err)
	}
	return colleges, nil
}

func (s *CollegeService) Get(ctx context.Context, id uint64) (*models.College, error) {
	college, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("failed to find college: %w", err)
	}
	return college, nil
}

func (s *CollegeService) validate(input *CollegeInput) error {
	input.Name = strings.TrimSpace(input.Name)
	return validateInput(input).Err()
}

func (s *CollegeService) Create(ctx context.Context, input CollegeInput) (*models.College, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	college := &models.College{Name: input.Name}
	if err := s.repo.Create(ctx, college); err != nil {
		return nil, fmt.Errorf("failed to create college: %w", err)
	}
	return college, nil
}

func (s *CollegeService) Update(ctx context.Context, id uint64, input CollegeInput) (*models.College, error) {
	college, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	college.Name = input.Name
	if err := s.repo.Update(ctx, college); err != nil {
		return nil, fmt.Errorf("failed to update college: %w", err)
	}
	return college, nil
}

// Delete removes a college. Colleges still referenced by programs or
// organizations are kept and ErrCollegeInUse is returned.
func (s *CollegeService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrHasDependents) {
			return ErrCollegeInUse
		}
		return fmt.Errorf("failed to delete college: %w", err)
	}
	return nil
}
