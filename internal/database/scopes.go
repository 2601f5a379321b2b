package database

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yukikurage/studentorg/internal/utils"
)

// likeEscape is portable across sqlite, postgres and mysql; backslash is not.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// ContainsAny keeps rows where at least one of the columns contains term,
// ignoring case. A blank term leaves the query untouched. Case folding of the
// column is done by the datastore's LOWER(): sqlite folds ASCII only, so a
// stored "JOSÉ" does not match "josé" there; postgres and mysql fold Unicode.
func ContainsAny(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return func(db *gorm.DB) *gorm.DB { return db }
	}

	pattern := "%" + likeReplacer.Replace(strings.ToLower(term)) + "%"
	conds := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		conds[i] = "LOWER(" + col + ") LIKE ? ESCAPE '" + likeEscape + "'"
		args[i] = pattern
	}
	where := "(" + strings.Join(conds, " OR ") + ")"

	return func(db *gorm.DB) *gorm.DB {
		return db.Where(where, args...)
	}
}
