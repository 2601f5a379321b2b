package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/studentorg/internal/constants"
	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/testutil"
	"github.com/yukikurage/studentorg/internal/utils"
	"gorm.io/gorm"
)

type RepositorySuite struct {
	suite.Suite
	db  *gorm.DB
	ctx context.Context
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.ctx = context.Background()
}

func firstPage() utils.PaginationParams {
	return utils.NewPaginationParams(1, constants.DefaultPageSize)
}

func (s *RepositorySuite) TestCollegeList_CaseInsensitiveSubstring() {
	t := s.T()
	testutil.CreateCollege(t, s.db, "College of Engineering")
	testutil.CreateCollege(t, s.db, "College of Arts")

	colleges, total, err := NewCollegeRepository(s.db).List(s.ctx, ListFilter{
		Query:      "  ENGIN ",
		Pagination: firstPage(),
	})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(colleges, 1)
	s.Equal("College of Engineering", colleges[0].Name)
}

func (s *RepositorySuite) TestCollegeList_WildcardsMatchLiterally() {
	t := s.T()
	testutil.CreateCollege(t, s.db, "100% Club")
	testutil.CreateCollege(t, s.db, "1000 Club")
	testutil.CreateCollege(t, s.db, "A_B Institute")
	testutil.CreateCollege(t, s.db, "AxB Institute")

	repo := NewCollegeRepository(s.db)

	colleges, _, err := repo.List(s.ctx, ListFilter{Query: "100%", Pagination: firstPage()})
	s.Require().NoError(err)
	s.Require().Len(colleges, 1)
	s.Equal("100% Club", colleges[0].Name)

	colleges, _, err = repo.List(s.ctx, ListFilter{Query: "a_b", Pagination: firstPage()})
	s.Require().NoError(err)
	s.Require().Len(colleges, 1)
	s.Equal("A_B Institute", colleges[0].Name)
}

func (s *RepositorySuite) TestCollegeList_PaginatesAtFive() {
	t := s.T()
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		testutil.CreateCollege(t, s.db, name)
	}
	repo := NewCollegeRepository(s.db)

	page2, total, err := repo.List(s.ctx, ListFilter{Pagination: utils.NewPaginationParams(2, 5)})
	s.Require().NoError(err)
	s.Equal(int64(7), total)
	s.Require().Len(page2, 2)
	s.Equal("F", page2[0].Name)

	past, total, err := repo.List(s.ctx, ListFilter{Pagination: utils.NewPaginationParams(9, 5)})
	s.Require().NoError(err)
	s.Equal(int64(7), total)
	s.Empty(past)
}

func (s *RepositorySuite) TestProgramList_MatchesCollegeName() {
	t := s.T()
	eng := testutil.CreateCollege(t, s.db, "Engineering")
	arts := testutil.CreateCollege(t, s.db, "Arts")
	testutil.CreateProgram(t, s.db, "BS Computer Science", eng.ID)
	testutil.CreateProgram(t, s.db, "AB English", arts.ID)

	programs, total, err := NewProgramRepository(s.db).List(s.ctx, ListFilter{Query: "engineer", Pagination: firstPage()})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(programs, 1)
	s.Equal("BS Computer Science", programs[0].Name)
	s.Equal("Engineering", programs[0].College.Name)
}

func (s *RepositorySuite) TestStudentList_OrAcrossColumns() {
	t := s.T()
	college := testutil.CreateCollege(t, s.db, "Engineering")
	cs := testutil.CreateProgram(t, s.db, "Computer Science", college.ID)
	it := testutil.CreateProgram(t, s.db, "Information Technology", college.ID)
	testutil.CreateStudent(t, s.db, "2020-0001", "Science", "Maria", it.ID)
	testutil.CreateStudent(t, s.db, "2020-0002", "Reyes", "Juan", cs.ID)
	testutil.CreateStudent(t, s.db, "2020-0003", "Cruz", "Ana", it.ID)

	repo := NewStudentRepository(s.db)

	// last name of one student, program name of another
	students, total, err := repo.List(s.ctx, ListFilter{Query: "science", Pagination: firstPage()})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(students, 2)
	s.Equal("Science", students[0].LastName)
	s.Equal("Reyes", students[1].LastName)

	students, _, err = repo.List(s.ctx, ListFilter{Query: "0003", Pagination: firstPage()})
	s.Require().NoError(err)
	s.Require().Len(students, 1)
	s.Equal("Cruz", students[0].LastName)
	s.Equal("Information Technology", students[0].Program.Name)
}

func (s *RepositorySuite) TestStudentIDTaken() {
	t := s.T()
	college := testutil.CreateCollege(t, s.db, "Engineering")
	program := testutil.CreateProgram(t, s.db, "CS", college.ID)
	student := testutil.CreateStudent(t, s.db, "2020-0001", "Reyes", "Juan", program.ID)

	repo := NewStudentRepository(s.db)

	taken, err := repo.StudentIDTaken(s.ctx, "2020-0001", 0)
	s.Require().NoError(err)
	s.True(taken)

	taken, err = repo.StudentIDTaken(s.ctx, "2020-0001", student.ID)
	s.Require().NoError(err)
	s.False(taken)
}

func (s *RepositorySuite) TestStudent_IdentifierRoundTrips() {
	t := s.T()
	college := testutil.CreateCollege(t, s.db, "Engineering")
	program := testutil.CreateProgram(t, s.db, "CS", college.ID)
	repo := NewStudentRepository(s.db)

	student := &models.Student{
		StudentNo: "2025-ABC-01",
		LastName:  "Doe",
		FirstName: "Jane",
		ProgramID: program.ID,
	}
	s.Require().NoError(repo.Create(s.ctx, student))

	found, err := repo.FindByID(s.ctx, student.ID)
	s.Require().NoError(err)
	s.Equal("2025-ABC-01", found.StudentNo)
	s.Equal("CS", found.Program.Name)

	// a membership row must not be needed before a student exists
	var count int64
	s.Require().NoError(s.db.Model(&models.OrgMember{}).Count(&count).Error)
	s.Zero(count)

	students, total, err := repo.List(s.ctx, ListFilter{Query: "abc", Pagination: firstPage()})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(students, 1)
	s.Equal("2025-ABC-01", students[0].StudentNo)
}

func (s *RepositorySuite) TestCollegeList_AccentedLettersMatchWhenCaseAgrees() {
	t := s.T()
	testutil.CreateCollege(t, s.db, "Colegio de José Rizal")
	testutil.CreateCollege(t, s.db, "Colegio de Manila")

	// ASCII letters fold on every driver; é is already lower case on both sides
	colleges, _, err := NewCollegeRepository(s.db).List(s.ctx, ListFilter{Query: "JOSé", Pagination: firstPage()})
	s.Require().NoError(err)
	s.Require().Len(colleges, 1)
	s.Equal("Colegio de José Rizal", colleges[0].Name)
}

func (s *RepositorySuite) TestOrganizationList_OrderedByCollegeThenName() {
	t := s.T()
	science := testutil.CreateCollege(t, s.db, "Science")
	arts := testutil.CreateCollege(t, s.db, "Arts")
	testutil.CreateOrganization(t, s.db, "Zeta Club", "", &arts.ID)
	testutil.CreateOrganization(t, s.db, "Alpha Society", "", &science.ID)
	testutil.CreateOrganization(t, s.db, "Beta Guild", "", nil)
	testutil.CreateOrganization(t, s.db, "Alpha Club", "", &arts.ID)

	orgs, total, err := NewOrganizationRepository(s.db).List(s.ctx, ListFilter{Pagination: firstPage()})
	s.Require().NoError(err)
	s.Equal(int64(4), total)

	names := make([]string, len(orgs))
	for i, o := range orgs {
		names[i] = o.Name
	}
	s.Equal([]string{"Alpha Club", "Zeta Club", "Alpha Society", "Beta Guild"}, names)
	s.Require().NotNil(orgs[0].College)
	s.Equal("Arts", orgs[0].College.Name)
	s.Nil(orgs[3].College)
}

func (s *RepositorySuite) TestOrganizationList_MatchesDescriptionOrCollege() {
	t := s.T()
	eng := testutil.CreateCollege(t, s.db, "Engineering")
	testutil.CreateOrganization(t, s.db, "Robotics Club", "", &eng.ID)
	testutil.CreateOrganization(t, s.db, "Chess Club", "Engineering students who play chess", nil)
	testutil.CreateOrganization(t, s.db, "Choir", "Singing", nil)

	orgs, total, err := NewOrganizationRepository(s.db).List(s.ctx, ListFilter{Query: "engineering", Pagination: firstPage()})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(orgs, 2)
	s.Equal("Robotics Club", orgs[0].Name)
	s.Equal("Chess Club", orgs[1].Name)
}

func (s *RepositorySuite) TestOrgMemberList_Ordering() {
	t := s.T()
	college := testutil.CreateCollege(t, s.db, "Engineering")
	program := testutil.CreateProgram(t, s.db, "CS", college.ID)
	cruz := testutil.CreateStudent(t, s.db, "1", "Cruz", "Zed", program.ID)
	abad := testutil.CreateStudent(t, s.db, "2", "Abad", "Yna", program.ID)
	org := testutil.CreateOrganization(t, s.db, "Robotics", "", nil)
	testutil.CreateMember(t, s.db, cruz.ID, org.ID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	testutil.CreateMember(t, s.db, abad.ID, org.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	repo := NewOrgMemberRepository(s.db)
	lastNames := func(ordering string) []string {
		members, _, err := repo.List(s.ctx, OrgMemberFilter{
			ListFilter: ListFilter{Pagination: firstPage()},
			Ordering:   ordering,
		})
		s.Require().NoError(err)
		out := make([]string, len(members))
		for i, m := range members {
			out[i] = m.Student.LastName
		}
		return out
	}

	s.Equal([]string{"Abad", "Cruz"}, lastNames(constants.OrderingStudentLastName))
	s.Equal([]string{"Abad", "Cruz"}, lastNames("bogus"))
	s.Equal([]string{"Abad", "Cruz"}, lastNames(""))
	s.Equal([]string{"Abad", "Cruz"}, lastNames(constants.OrderingStudentFirstName))
	s.Equal([]string{"Cruz", "Abad"}, lastNames(constants.OrderingDateJoined))
	s.Equal([]string{"Abad", "Cruz"}, lastNames(constants.OrderingDateJoinedDesc))
}

func (s *RepositorySuite) TestOrgMemberList_SearchesStudentAndOrganization() {
	t := s.T()
	college := testutil.CreateCollege(t, s.db, "Engineering")
	program := testutil.CreateProgram(t, s.db, "CS", college.ID)
	juan := testutil.CreateStudent(t, s.db, "1", "Reyes", "Juan", program.ID)
	ana := testutil.CreateStudent(t, s.db, "2", "Cruz", "Ana", program.ID)
	robotics := testutil.CreateOrganization(t, s.db, "Robotics", "", nil)
	choir := testutil.CreateOrganization(t, s.db, "Choir", "", nil)
	joined := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	testutil.CreateMember(t, s.db, juan.ID, robotics.ID, joined)
	testutil.CreateMember(t, s.db, ana.ID, choir.ID, joined)

	members, total, err := NewOrgMemberRepository(s.db).List(s.ctx, OrgMemberFilter{
		ListFilter: ListFilter{Query: "ROBO", Pagination: firstPage()},
	})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(members, 1)
	s.Equal("Reyes", members[0].Student.LastName)
	s.Equal("Robotics", members[0].Organization.Name)
}

func (s *RepositorySuite) TestCollegeDelete_RestrictedByProgram() {
	t := s.T()
	college := testutil.CreateCollege(t, s.db, "Engineering")
	testutil.CreateProgram(t, s.db, "CS", college.ID)

	err := NewCollegeRepository(s.db).Delete(s.ctx, college.ID)
	s.ErrorIs(err, ErrHasDependents)

	var count int64
	s.Require().NoError(s.db.Model(&models.College{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *RepositorySuite) TestCollegeDelete_RestrictedByOrganization() {
	t := s.T()
	college := testutil.CreateCollege(t, s.db, "Engineering")
	testutil.CreateOrganization(t, s.db, "Robotics", "", &college.ID)

	err := NewCollegeRepository(s.db).Delete(s.ctx, college.ID)
	s.ErrorIs(err, ErrHasDependents)
}

func (s *RepositorySuite) TestProgramDelete_RestrictedByStudent() {
	t := s.T()
	college := testutil.CreateCollege(t, s.db, "Engineering")
	program := testutil.CreateProgram(t, s.db, "CS", college.ID)
	testutil.CreateStudent(t, s.db, "1", "Reyes", "Juan", program.ID)

	err := NewProgramRepository(s.db).Delete(s.ctx, program.ID)
	s.ErrorIs(err, ErrHasDependents)
}

func (s *RepositorySuite) TestOrganizationDelete_RemovesMemberships() {
	t := s.T()
	college := testutil.CreateCollege(t, s.db, "Engineering")
	program := testutil.CreateProgram(t, s.db, "CS", college.ID)
	student := testutil.CreateStudent(t, s.db, "1", "Reyes", "Juan", program.ID)
	org := testutil.CreateOrganization(t, s.db, "Robotics", "", nil)
	testutil.CreateMember(t, s.db, student.ID, org.ID, time.Now())

	s.Require().NoError(NewOrganizationRepository(s.db).Delete(s.ctx, org.ID))

	var count int64
	s.Require().NoError(s.db.Model(&models.OrgMember{}).Count(&count).Error)
	s.Zero(count)

	// the student itself is untouched
	ok, err := NewStudentRepository(s.db).Exists(s.ctx, student.ID)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RepositorySuite) TestStudentDelete_RemovesMemberships() {
	t := s.T()
	college := testutil.CreateCollege(t, s.db, "Engineering")
	program := testutil.CreateProgram(t, s.db, "CS", college.ID)
	student := testutil.CreateStudent(t, s.db, "1", "Reyes", "Juan", program.ID)
	org := testutil.CreateOrganization(t, s.db, "Robotics", "", nil)
	testutil.CreateMember(t, s.db, student.ID, org.ID, time.Now())

	s.Require().NoError(NewStudentRepository(s.db).Delete(s.ctx, student.ID))

	var count int64
	s.Require().NoError(s.db.Model(&models.OrgMember{}).Count(&count).Error)
	s.Zero(count)
}

func (s *RepositorySuite) TestForeignKeysEnforced() {
	err := s.db.Create(&models.Program{Name: "Orphan", CollegeID: 999}).Error
	s.Error(err)
}

func (s *RepositorySuite) TestDashboard_CountsDistinctStudentsInYear() {
	t := s.T()
	college := testutil.CreateCollege(t, s.db, "Engineering")
	program := testutil.CreateProgram(t, s.db, "CS", college.ID)
	juan := testutil.CreateStudent(t, s.db, "1", "Reyes", "Juan", program.ID)
	ana := testutil.CreateStudent(t, s.db, "2", "Cruz", "Ana", program.ID)
	testutil.CreateStudent(t, s.db, "3", "Santos", "Leo", program.ID)
	robotics := testutil.CreateOrganization(t, s.db, "Robotics", "", nil)
	choir := testutil.CreateOrganization(t, s.db, "Choir", "", nil)

	// juan joins twice this year, ana only last year
	testutil.CreateMember(t, s.db, juan.ID, robotics.ID, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	testutil.CreateMember(t, s.db, juan.ID, choir.ID, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	testutil.CreateMember(t, s.db, ana.ID, choir.ID, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))

	repo := NewDashboardRepository(s.db)

	total, err := repo.Count(s.ctx, &models.Student{})
	s.Require().NoError(err)
	s.Equal(int64(3), total)

	from, to := utils.YearBounds(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))
	joined, err := repo.CountStudentsJoinedBetween(s.ctx, from, to)
	s.Require().NoError(err)
	s.Equal(int64(1), joined)

	from, to = utils.YearBounds(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	joined, err = repo.CountStudentsJoinedBetween(s.ctx, from, to)
	s.Require().NoError(err)
	s.Zero(joined)
}
