package handlers

import (
	"trendyshop/internal/config"
	"trendyshop/internal/repos"
	"trendyshop/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Tokens *services.TokenService

	AuthHandler     *AuthHandler
	CartHandler     *CartHandler
	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
	UploadHandler   *UploadHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) (*Deps, error) {
	tokens, err := services.NewTokenService(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	passwords, err := services.NewPasswordPolicy(cfg.PasswordHashing)
	if err != nil {
		return nil, err
	}
	images, err := services.NewImageStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}

	userRepo := repos.NewUserRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)

	authSvc := services.NewAuthService(userRepo, tokens, passwords)
	cartSvc := services.NewCartService(userRepo)
	catalogSvc := services.NewCatalogService(catRepo, prodRepo)

	return &Deps{
		Tokens:          tokens,
		AuthHandler:     &AuthHandler{Auth: authSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		UploadHandler:   &UploadHandler{Images: images},
	}, nil
}
