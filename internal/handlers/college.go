package handlers

import (
	"github.com/yukikurage/studentorg/internal/dto"
	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/services"
)

type CollegeHandler = CRUDHandler[models.College, services.CollegeInput]

func NewCollegeHandler(svc *services.CollegeService, pageSize int) *CollegeHandler {
	return NewCRUDHandler(Resource[models.College, services.CollegeInput]{
		Name:    "college",
		Path:    "/colleges/",
		ListKey: "colleges",
		Fields:  []string{"name"},
		Service: svc,
		ToDTO: func(m models.College) interface{} {
			return dto.ToCollegeDTO(m)
		},
		ToInput: func(m models.College) services.CollegeInput {
			return services.CollegeInput{Name: m.Name}
		},
		Label: func(m models.College) string {
			return m.Name
		},
	}, pageSize)
}
