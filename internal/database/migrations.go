package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes used by list ordering and the dashboard.
// Single-column foreign key indexes come from the model tags.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Student search and member ordering
		{"students", "idx_students_last_first", "last_name, first_name"},

		// Organization list ordering
		{"organizations", "idx_organizations_college_name", "college_id, name"},

		// Dashboard: distinct students per join year
		{"org_members", "idx_org_members_date_student", "date_joined, student_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name, "table", idx.table, "columns", idx.columns)
	}

	return nil
}
