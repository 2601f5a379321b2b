package handlers

import (
	"context"

	"github.com/yukikurage/studentorg/internal/dto"
	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/services"
)

type ProgramHandler = CRUDHandler[models.Program, services.ProgramInput]

func NewProgramHandler(svc *services.ProgramService, colleges *services.CollegeService, pageSize int) *ProgramHandler {
	return NewCRUDHandler(Resource[models.Program, services.ProgramInput]{
		Name:    "program",
		Path:    "/programs/",
		ListKey: "programs",
		Fields:  []string{"name", "college"},
		Service: svc,
		ToDTO: func(m models.Program) interface{} {
			return dto.ToProgramDTO(m)
		},
		ToInput: func(m models.Program) services.ProgramInput {
			return services.ProgramInput{Name: m.Name, College: m.CollegeID}
		},
		Label: func(m models.Program) string {
			return m.Name
		},
		Choices: func(ctx context.Context) (map[string][]dto.Choice, error) {
			all, err := colleges.All(ctx)
			if err != nil {
				return nil, err
			}
			return map[string][]dto.Choice{"college": collegeChoices(all)}, nil
		},
	}, pageSize)
}
