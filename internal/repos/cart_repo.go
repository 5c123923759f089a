package repos

import (
	"context"

	"trendyshop/internal/domain"
)

// UpdateCart overwrites the stored cart. There is no version check, so
// concurrent writers for the same user race and the last one wins.
func (r *UserRepo) UpdateCart(ctx context.Context, id string, cart domain.Cart) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET cart_json=? WHERE id=?`, cart, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
