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

// StudentInput is the student form field whitelist.
type StudentInput struct {
	StudentID  string `form:"student_id" json:"student_id" validate:"required,max=15"`
	LastName   string `form:"last_name" json:"last_name" validate:"required,max=25"`
	FirstName  string `form:"first_name" json:"first_name" validate:"required,max=25"`
	MiddleName string `form:"middle_name" json:"middle_name" validate:"max=25"`
	Program    uint64 `form:"program" json:"program" validate:"required"`
}

// StudentService provides business logic for student operations.
type StudentService struct {
	repo     repository.StudentRepository
	programs repository.ProgramRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(repo repository.StudentRepository, programs repository.ProgramRepository) *StudentService {
	return &StudentService{
		repo:     repo,
		programs: programs,
	}
}

func (s *StudentService) List(ctx context.Context, params ListParams) ([]models.Student, int64, error) {
	students, total, err := s.repo.List(ctx, params.filter())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}
	return students, total, nil
}

// All returns every student, for form choices.
func (s *StudentService) All(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (s *StudentService) Get(ctx context.Context, id uint64) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return student, nil
}

// validate checks the input for the student with id selfID (0 when creating).
func (s *StudentService) validate(ctx context.Context, selfID uint64, input *StudentInput) error {
	input.StudentID = strings.TrimSpace(input.StudentID)
	input.LastName = strings.TrimSpace(input.LastName)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.MiddleName = strings.TrimSpace(input.MiddleName)

	verr := validateInput(input)
	if err := checkChoice(verr, "program", input.Program, func(id uint64) (bool, error) {
		return s.programs.Exists(ctx, id)
	}); err != nil {
		return err
	}

	if !verr.Has("student_id") {
		taken, err := s.repo.StudentIDTaken(ctx, input.StudentID, selfID)
		if err != nil {
			return fmt.Errorf("failed to check student id: %w", err)
		}
		if taken {
			verr.Add("student_id", MsgStudentIDTaken)
		}
	}
	return verr.Err()
}

func (s *StudentService) Create(ctx context.Context, input StudentInput) (*models.Student, error) {
	if err := s.validate(ctx, 0, &input); err != nil {
		return nil, err
	}

	student := &models.Student{}
	applyStudentInput(student, input)
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return student, nil
}

func (s *StudentService) Update(ctx context.Context, id uint64, input StudentInput) (*models.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, id, &input); err != nil {
		return nil, err
	}

	applyStudentInput(student, input)
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return student, nil
}

// Delete removes a student along with their memberships.
func (s *StudentService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}

func applyStudentInput(student *models.Student, input StudentInput) {
	student.StudentNo = input.StudentID
	student.LastName = input.LastName
	student.FirstName = input.FirstName
	student.MiddleName = input.MiddleName
	student.ProgramID = input.Program
}
