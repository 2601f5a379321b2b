package handlers

import (
	"context"

	"github.com/yukikurage/studentorg/internal/dto"
	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/services"
)

type OrganizationHandler = CRUDHandler[models.Organization, services.OrganizationInput]

func NewOrganizationHandler(svc *services.OrganizationService, colleges *services.CollegeService, pageSize int) *OrganizationHandler {
	return NewCRUDHandler(Resource[models.Organization, services.OrganizationInput]{
		Name:    "organization",
		Path:    "/organizations/",
		ListKey: "organizations",
		Fields:  []string{"name", "description", "college"},
		Service: svc,
		ToDTO: func(m models.Organization) interface{} {
			return dto.ToOrganizationDTO(m)
		},
		ToInput: func(m models.Organization) services.OrganizationInput {
			return services.OrganizationInput{
				Name:        m.Name,
				Description: m.Description,
				College:     m.CollegeID,
			}
		},
		Label: func(m models.Organization) string {
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
