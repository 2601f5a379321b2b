package handlers

import (
	"context"

	"github.com/yukikurage/studentorg/internal/dto"
	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/services"
)

type StudentHandler = CRUDHandler[models.Student, services.StudentInput]

func NewStudentHandler(svc *services.StudentService, programs *services.ProgramService, pageSize int) *StudentHandler {
	return NewCRUDHandler(Resource[models.Student, services.StudentInput]{
		Name:    "student",
		Path:    "/students/",
		ListKey: "students",
		Fields:  []string{"student_id", "last_name", "first_name", "middle_name", "program"},
		Service: svc,
		ToDTO: func(m models.Student) interface{} {
			return dto.ToStudentDTO(m)
		},
		ToInput: func(m models.Student) services.StudentInput {
			return services.StudentInput{
				StudentID:  m.StudentNo,
				LastName:   m.LastName,
				FirstName:  m.FirstName,
				MiddleName: m.MiddleName,
				Program:    m.ProgramID,
			}
		},
		Label: func(m models.Student) string {
			return m.FullName()
		},
		Choices: func(ctx context.Context) (map[string][]dto.Choice, error) {
			all, err := programs.All(ctx)
			if err != nil {
				return nil, err
			}
			return map[string][]dto.Choice{"program": programChoices(all)}, nil
		},
	}, pageSize)
}
