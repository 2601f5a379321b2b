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

// ProgramInput is the program form field whitelist.
type ProgramInput struct {
	Name    string `form:"name" json:"name" validate:"required,max=250"`
	College uint64 `form:"college" json:"college" validate:"required"`
}

// ProgramService provides business logic for program operations.
type ProgramService struct {
	repo     repository.ProgramRepository
	colleges repository.CollegeRepository
}

// NewProgramService creates a new ProgramService.
func NewProgramService(repo repository.ProgramRepository, colleges repository.CollegeRepository) *ProgramService {
	return &ProgramService{
		repo:     repo,
		colleges: colleges,
	}
}

func (s *ProgramService) List(ctx context.Context, params ListParams) ([]models.Program, int64, error) {
	programs, total, err := s.repo.List(ctx, params.filter())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list programs: %w", err)
	}
	return programs, total, nil
}

// All returns every program, for form choices.
func (s *ProgramService) All(ctx context.Context) ([]models.Program, error) {
	programs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	return programs, nil
}

func (s *ProgramService) Get(ctx context.Context, id uint64) (*models.Program, error) {
	program, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to find program: %w", err)
	}
	return program, nil
}

func (s *ProgramService) validate(ctx context.Context, input *ProgramInput) error {
	input.Name = strings.TrimSpace(input.Name)

	verr := validateInput(input)
	if err := checkChoice(verr, "college", input.College, func(id uint64) (bool, error) {
		return s.colleges.Exists(ctx, id)
	}); err != nil {
		return err
	}
	return verr.Err()
}

func (s *ProgramService) Create(ctx context.Context, input ProgramInput) (*models.Program, error) {
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	program := &models.Program{
		Name:      input.Name,
		CollegeID: input.College,
	}
	if err := s.repo.Create(ctx, program); err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}
	return program, nil
}

func (s *ProgramService) Update(ctx context.Context, id uint64, input ProgramInput) (*models.Program, error) {
	program, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	program.Name = input.Name
	program.CollegeID = input.College
	if err := s.repo.Update(ctx, program); err != nil {
		return nil, fmt.Errorf("failed to update program: %w", err)
	}
	return program, nil
}

// Delete removes a program that has no students.
func (s *ProgramService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrHasDependents) {
			return ErrProgramInUse
		}
		return fmt.Errorf("failed to delete program: %w", err)
	}
	return nil
}
