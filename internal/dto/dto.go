package dto

import (
	"github.com/yukikurage/studentorg/internal/constants"
	"github.com/yukikurage/studentorg/internal/models"
)

// CollegeDTO represents a college in API responses
type CollegeDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ProgramDTO represents a program in API responses
type ProgramDTO struct {
	ID      uint64      `json:"id"`
	Name    string      `json:"name"`
	College *CollegeDTO `json:"college,omitempty"`
}

// StudentDTO represents a student in API responses
type StudentDTO struct {
	ID         uint64      `json:"id"`
	StudentID  string      `json:"student_id"`
	LastName   string      `json:"last_name"`
	FirstName  string      `json:"first_name"`
	MiddleName string      `json:"middle_name"`
	Program    *ProgramDTO `json:"program,omitempty"`
}

// OrganizationDTO represents an organization in API responses
type OrganizationDTO struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	College     *CollegeDTO `json:"college"`
}

// OrgMemberDTO represents a membership in API responses
type OrgMemberDTO struct {
	ID           uint64           `json:"id"`
	DateJoined   string           `json:"date_joined"`
	Student      *StudentDTO      `json:"student,omitempty"`
	Organization *OrganizationDTO `json:"organization,omitempty"`
}

// Conversion functions

func ToCollegeDTO(college models.College) CollegeDTO {
	return CollegeDTO{
		ID:   college.ID,
		Name: college.Name,
	}
}

// ToProgramDTO converts a Program model, including its college if preloaded
func ToProgramDTO(program models.Program) ProgramDTO {
	dto := ProgramDTO{
		ID:   program.ID,
		Name: program.Name,
	}
	if program.College.ID != 0 {
		college := ToCollegeDTO(program.College)
		dto.College = &college
	}
	return dto
}

// ToStudentDTO converts a Student model, including its program if preloaded
func ToStudentDTO(student models.Student) StudentDTO {
	dto := StudentDTO{
		ID:         student.ID,
		StudentID:  student.StudentNo,
		LastName:   student.LastName,
		FirstName:  student.FirstName,
		MiddleName: student.MiddleName,
	}
	if student.Program.ID != 0 {
		program := ToProgramDTO(student.Program)
		dto.Program = &program
	}
	return dto
}

// ToOrganizationDTO converts an Organization model; College is null when unset
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	dto := OrganizationDTO{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
	}
	if org.College != nil && org.College.ID != 0 {
		college := ToCollegeDTO(*org.College)
		dto.College = &college
	}
	return dto
}

// ToOrgMemberDTO converts an OrgMember model, including preloaded relations
func ToOrgMemberDTO(member models.OrgMember) OrgMemberDTO {
	dto := OrgMemberDTO{
		ID:         member.ID,
		DateJoined: member.DateJoined.Format(constants.DateLayout),
	}
	if member.Student.ID != 0 {
		student := ToStudentDTO(member.Student)
		dto.Student = &student
	}
	if member.Organization.ID != 0 {
		org := ToOrganizationDTO(member.Organization)
		dto.Organization = &org
	}
	return dto
}
