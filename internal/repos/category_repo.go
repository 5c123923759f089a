package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// CategoryRepo reads the category names in use by the catalog.
type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List(ctx context.Context) ([]string, error) {
	out := []string{}
	err := r.db.SelectContext(ctx, &out, `SELECT DISTINCT category FROM products ORDER BY category`)
	return out, err
}
