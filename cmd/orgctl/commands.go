package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/yukikurage/studentorg/internal/config"
	"github.com/yukikurage/studentorg/internal/constants"
	"github.com/yukikurage/studentorg/internal/database"
	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/services"
	"github.com/yukikurage/studentorg/internal/utils"
	"gorm.io/gorm"
)

var errUsage = errors.New("invalid arguments")

// CLI runs orgctl subcommands against one database.
type CLI struct {
	out io.Writer
	db  *gorm.DB
	svc *services.Services
	cfg *config.Config
}

func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "migrate":
		if err := database.Migrate(c.db); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintln(c.out, "Migrations applied.")
		return nil
	case "stats":
		return c.stats(ctx)
	case "list":
		if len(args) < 2 {
			return errUsage
		}
		return c.list(ctx, args[1], args[2:])
	default:
		return errUsage
	}
}

func (c *CLI) stats(ctx context.Context) error {
	stats, err := c.svc.Dashboard.Stats(ctx)
	if err != nil {
		return err
	}

	c.heading(fmt.Sprintf("Dashboard %d", stats.Year))
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Metric", "Count"})
	rows := []struct {
		label string
		n     int64
	}{
		{"Students", stats.TotalStudents},
		{"Students joined this year", stats.StudentsJoinedThisYear},
		{"Organizations", stats.TotalOrganizations},
		{"Colleges", stats.TotalColleges},
		{"Programs", stats.TotalPrograms},
	}
	for _, r := range rows {
		table.Append([]string{r.label, strconv.FormatInt(r.n, 10)})
	}
	table.Render()
	return nil
}

func (c *CLI) list(ctx context.Context, entity string, args []string) error {
	fs := flag.NewFlagSet("list "+entity, flag.ContinueOnError)
	fs.SetOutput(c.out)
	q := fs.String("q", "", "search text")
	ordering := fs.String("ordering", "", "member ordering key")
	page := fs.Int("page", constants.MinPage, "page number")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	params := services.ListParams{
		Query:      *q,
		Ordering:   *ordering,
		Pagination: utils.NewPaginationParams(*page, c.cfg.PageSize),
	}

	var (
		header []string
		rows   [][]string
		total  int64
		err    error
	)
	switch entity {
	case "colleges":
		header, rows, total, err = listColleges(ctx, c.svc.Colleges, params)
	case "programs":
		header, rows, total, err = listPrograms(ctx, c.svc.Programs, params)
	case "students":
		header, rows, total, err = listStudents(ctx, c.svc.Students, params)
	case "organizations":
		header, rows, total, err = listOrganizations(ctx, c.svc.Organizations, params)
	case "members":
		header, rows, total, err = listMembers(ctx, c.svc.Members, params)
	default:
		return errUsage
	}
	if err != nil {
		return err
	}

	p := utils.NewPaginationResponse(params.Pagination, total)
	c.heading(fmt.Sprintf("%s (page %d of %d, %d total)", entity, p.Page, p.TotalPages, p.TotalCount))
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func (c *CLI) heading(text string) {
	color.New(color.FgYellow).Fprintln(c.out, "\n"+text)
}

func id(n uint64) string {
	return strconv.FormatUint(n, 10)
}

func listColleges(ctx context.Context, svc *services.CollegeService, params services.ListParams) ([]string, [][]string, int64, error) {
	colleges, total, err := svc.List(ctx, params)
	if err != nil {
		return nil, nil, 0, err
	}
	rows := make([][]string, len(colleges))
	for i, m := range colleges {
		rows[i] = []string{id(m.ID), m.Name}
	}
	return []string{"ID", "Name"}, rows, total, nil
}

func listPrograms(ctx context.Context, svc *services.ProgramService, params services.ListParams) ([]string, [][]string, int64, error) {
	programs, total, err := svc.List(ctx, params)
	if err != nil {
		return nil, nil, 0, err
	}
	rows := make([][]string, len(programs))
	for i, m := range programs {
		rows[i] = []string{id(m.ID), m.Name, m.College.Name}
	}
	return []string{"ID", "Name", "College"}, rows, total, nil
}

func listStudents(ctx context.Context, svc *services.StudentService, params services.ListParams) ([]string, [][]string, int64, error) {
	students, total, err := svc.List(ctx, params)
	if err != nil {
		return nil, nil, 0, err
	}
	rows := make([][]string, len(students))
	for i, m := range students {
		rows[i] = []string{id(m.ID), m.StudentNo, m.FullName(), m.Program.Name}
	}
	return []string{"ID", "Student ID", "Name", "Program"}, rows, total, nil
}

func listOrganizations(ctx context.Context, svc *services.OrganizationService, params services.ListParams) ([]string, [][]string, int64, error) {
	orgs, total, err := svc.List(ctx, params)
	if err != nil {
		return nil, nil, 0, err
	}
	rows := make([][]string, len(orgs))
	for i, m := range orgs {
		rows[i] = []string{id(m.ID), m.Name, collegeName(m), m.Description}
	}
	return []string{"ID", "Name", "College", "Description"}, rows, total, nil
}

func listMembers(ctx context.Context, svc *services.OrgMemberService, params services.ListParams) ([]string, [][]string, int64, error) {
	members, total, err := svc.List(ctx, params)
	if err != nil {
		return nil, nil, 0, err
	}
	rows := make([][]string, len(members))
	for i, m := range members {
		rows[i] = []string{
			id(m.ID),
			m.Student.FullName(),
			m.Organization.Name,
			m.DateJoined.Format(constants.DateLayout),
		}
	}
	return []string{"ID", "Student", "Organization", "Date Joined"}, rows, total, nil
}

func collegeName(org models.Organization) string {
	if org.College == nil {
		return "-"
	}
	return org.College.Name
}
