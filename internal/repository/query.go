package repository

import (
	"context"

	"github.com/yukikurage/studentorg/internal/database"
	"github.com/yukikurage/studentorg/internal/utils"
	"gorm.io/gorm"
)

// listPage counts the rows matched by query and loads the requested page into
// dest. query is called once per statement so the count and the page select
// never share GORM statement state.
func listPage(query func() *gorm.DB, order string, page utils.PaginationParams, dest interface{}, preload ...string) (int64, error) {
	var total int64
	if err := query().Count(&total).Error; err != nil {
		return 0, err
	}

	listQuery := query().Order(order).Scopes(database.Paginate(page))
	for _, p := range preload {
		listQuery = listQuery.Preload(p)
	}
	if err := listQuery.Find(dest).Error; err != nil {
		return 0, err
	}

	return total, nil
}

// exists reports whether a row of model with the given primary key exists.
func exists(ctx context.Context, db *gorm.DB, model interface{}, id uint64) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// referenced counts rows of model whose column points at id.
func referenced(tx *gorm.DB, model interface{}, column string, id uint64) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
