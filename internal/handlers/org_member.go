package handlers

import (
	"context"

	"github.com/yukikurage/studentorg/internal/constants"
	"github.com/yukikurage/studentorg/internal/dto"
	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/services"
)

type OrgMemberHandler = CRUDHandler[models.OrgMember, services.OrgMemberInput]

func NewOrgMemberHandler(svc *services.OrgMemberService, students *services.StudentService, orgs *services.OrganizationService, pageSize int) *OrgMemberHandler {
	return NewCRUDHandler(Resource[models.OrgMember, services.OrgMemberInput]{
		Name:    "organization member",
		Path:    "/org-members/",
		ListKey: "members",
		Fields:  []string{"student", "organization", "date_joined"},
		Service: svc,
		ToDTO: func(m models.OrgMember) interface{} {
			return dto.ToOrgMemberDTO(m)
		},
		ToInput: func(m models.OrgMember) services.OrgMemberInput {
			return services.OrgMemberInput{
				Student:      m.StudentID,
				Organization: m.OrganizationID,
				DateJoined:   m.DateJoined.Format(constants.DateLayout),
			}
		},
		Label: func(m models.OrgMember) string {
			return m.Student.FullName() + " in " + m.Organization.Name
		},
		Choices: func(ctx context.Context) (map[string][]dto.Choice, error) {
			allStudents, err := students.All(ctx)
			if err != nil {
				return nil, err
			}
			allOrgs, err := orgs.All(ctx)
			if err != nil {
				return nil, err
			}
			return map[string][]dto.Choice{
				"student":      studentChoices(allStudents),
				"organization": organizationChoices(allOrgs),
			}, nil
		},
		Ordering: svc.ResolveOrdering,
	}, pageSize)
}
