package specs

import (
	"context"
	"log"

	"gorm.io/gorm"
)

// AggregateForCategory fetches the specification lists of every
// non-archived product (optionally scoped to a parent category or
// subcategory name) and aggregates them into facet groups.
//
// Any fetch or scan failure degrades to an empty group list: the
// storefront filter panel renders no facets rather than an error.
func AggregateForCategory(ctx context.Context, db *gorm.DB, category string) []Group {
	query := `
		SELECT p.specifications
		FROM products p
		WHERE p.status != 'Archived'
	`
	args := []interface{}{}

	if category != "" {
		query += `
			AND p.sub_category_id IN (
				SELECT id FROM categories
				WHERE LOWER(name) = LOWER(?)
					OR parent_id IN (
						SELECT id FROM categories
						WHERE LOWER(name) = LOWER(?) AND parent_id IS NULL
					)
			)
		`
		args = append(args, category, category)
	}

	var rows []struct {
		Specifications EntryList `gorm:"column:specifications"`
	}
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		log.Printf("[store.spec-filters] ERROR fetching specifications category=%q err=%v", category, err)
		return []Group{}
	}

	lists := make([][]Entry, 0, len(rows))
	for _, row := range rows {
		if len(row.Specifications) == 0 {
			continue
		}
		lists = append(lists, row.Specifications)
	}

	return Aggregate(lists)
}
