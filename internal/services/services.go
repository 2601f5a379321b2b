package services

import (
	"github.com/yukikurage/studentorg/internal/config"
	"github.com/yukikurage/studentorg/internal/repository"
	"gorm.io/gorm"
)

// Services bundles the services shared by the HTTP server and orgctl.
type Services struct {
	Colleges      *CollegeService
	Programs      *ProgramService
	Students      *StudentService
	Organizations *OrganizationService
	Members       *OrgMemberService
	Dashboard     *DashboardService
}

// New wires every repository and service over db.
func New(db *gorm.DB, cfg *config.Config) *Services {
	colleges := repository.NewCollegeRepository(db)
	programs := repository.NewProgramRepository(db)
	students := repository.NewStudentRepository(db)
	orgs := repository.NewOrganizationRepository(db)

	return &Services{
		Colleges:      NewCollegeService(colleges),
		Programs:      NewProgramService(programs, colleges),
		Students:      NewStudentService(students, programs),
		Organizations: NewOrganizationService(orgs, colleges),
		Members: NewOrgMemberService(
			repository.NewOrgMemberRepository(db),
			students,
			orgs,
			cfg.MemberOrderings,
			cfg.DefaultMemberSort,
		),
		Dashboard: NewDashboardService(repository.NewDashboardRepository(db)),
	}
}
