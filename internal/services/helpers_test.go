package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"trendyshop/internal/repos"
	"trendyshop/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fixture struct {
	db     *sqlx.DB
	users  *repos.UserRepo
	tokens *services.TokenService
	auth   *services.AuthService
	cart   *services.CartService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := memdb(t)
	users := repos.NewUserRepo(db)
	tokens, err := services.NewTokenService("test-secret")
	require.NoError(t, err)
	return fixture{
		db:     db,
		users:  users,
		tokens: tokens,
		auth:   services.NewAuthService(users, tokens, services.PlainPasswords{}),
		cart:   services.NewCartService(users),
	}
}
