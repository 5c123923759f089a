package repos

import (
	"context"

	"trendyshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = `id,name,image,category,new_price,old_price,available,created_at`

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+productColumns+` FROM products ORDER BY id`)
	return out, err
}

func (r *ProductRepo) ByCategory(ctx context.Context, category string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+productColumns+`
	  FROM products
	  WHERE category = ?
	  ORDER BY id
	  LIMIT ?`, category, limit)
	return out, err
}

// Insert stores p and fills in the id the database assigned.
func (r *ProductRepo) Insert(ctx context.Context, p *domain.Product) error {
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO products(name,image,category,new_price,old_price,available,created_at)
		VALUES(:name,:image,:category,:new_price,:old_price,:available,:created_at)`, p)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = int(id)
	return nil
}

// Delete removes the product with id; a missing id is not an error.
func (r *ProductRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}
