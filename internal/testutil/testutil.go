// Package testutil opens throwaway databases and seeds fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/studentorg/internal/config"
	"github.com/yukikurage/studentorg/internal/database"
	"github.com/yukikurage/studentorg/internal/models"
	"github.com/yukikurage/studentorg/internal/utils"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config returns a configuration pointing at an in-memory sqlite database.
func Config() *config.Config {
	return &config.Config{
		DBDriver:          "sqlite",
		DatabaseURL:       ":memory:",
		SessionSecret:     "test-secret",
		GinMode:           "test",
		LogLevel:          "error",
		LogFormat:         "text",
		PageSize:          5,
		MemberOrderings:   []string{"student__lastname", "student__firstname", "date_joined", "-date_joined"},
		DefaultMemberSort: "student__lastname",
	}
}

// NewDB opens a migrated in-memory sqlite database with foreign keys on.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dialector, err := database.Dialector(Config())
	require.NoError(t, err)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every new :memory: connection is a separate empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))
	return db
}

func CreateCollege(t *testing.T, db *gorm.DB, name string) *models.College {
	t.Helper()
	college := &models.College{Name: name}
	require.NoError(t, db.Create(college).Error)
	return college
}

func CreateProgram(t *testing.T, db *gorm.DB, name string, collegeID uint64) *models.Program {
	t.Helper()
	program := &models.Program{Name: name, CollegeID: collegeID}
	require.NoError(t, db.Create(program).Error)
	return program
}

func CreateStudent(t *testing.T, db *gorm.DB, studentID, lastName, firstName string, programID uint64) *models.Student {
	t.Helper()
	student := &models.Student{
		StudentNo: studentID,
		LastName:  lastName,
		FirstName: firstName,
		ProgramID: programID,
	}
	require.NoError(t, db.Create(student).Error)
	return student
}

// CreateOrganization seeds an organization; collegeID may be nil.
func CreateOrganization(t *testing.T, db *gorm.DB, name, description string, collegeID *uint64) *models.Organization {
	t.Helper()
	org := &models.Organization{
		Name:        name,
		Description: description,
		CollegeID:   collegeID,
	}
	require.NoError(t, db.Create(org).Error)
	return org
}

func CreateMember(t *testing.T, db *gorm.DB, studentID, orgID uint64, joined time.Time) *models.OrgMember {
	t.Helper()
	member := &models.OrgMember{
		StudentID:      studentID,
		OrganizationID: orgID,
		DateJoined:     utils.DateOf(joined),
	}
	require.NoError(t, db.Create(member).Error)
	return member
}
