package services

import (
	"context"
	"strings"
	"time"

	"trendyshop/internal/domain"
	"trendyshop/internal/repos"
)

const (
	newCollectionSize = 8
	popularSize       = 4
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
	now   func() time.Time
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods, now: time.Now}
}

// ProductInput is what a client supplies when adding a product.
type ProductInput struct {
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	NewPrice  float64 `json:"new_price"`
	OldPrice  float64 `json:"old_price"`
	Available *bool   `json:"available"`
}

func (in ProductInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return invalid("name", "is required")
	case strings.TrimSpace(in.Image) == "":
		return invalid("image", "is required")
	case strings.TrimSpace(in.Category) == "":
		return invalid("category", "is required")
	case in.NewPrice < 0 || in.OldPrice < 0:
		return invalid("price", "must not be negative")
	}
	return nil
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.Prods.List(ctx)
}

// Add stores a new product. Ids come from the store and are never reused.
func (s *CatalogService) Add(ctx context.Context, in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}
	p := domain.Product{
		Name:      strings.TrimSpace(in.Name),
		Image:     strings.TrimSpace(in.Image),
		Category:  strings.TrimSpace(in.Category),
		NewPrice:  in.NewPrice,
		OldPrice:  in.OldPrice,
		Available: in.Available == nil || *in.Available,
		Date:      s.now().UTC(),
	}
	if err := s.Prods.Insert(ctx, &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) Remove(ctx context.Context, id int) error {
	return s.Prods.Delete(ctx, id)
}

func (s *CatalogService) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.Prods.ByCategory(ctx, category, 0)
}

// NewCollections skips the oldest product and returns the latest eight of the rest.
func (s *CatalogService) NewCollections(ctx context.Context) ([]domain.Product, error) {
	all, err := s.Prods.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) <= 1 {
		return []domain.Product{}, nil
	}
	rest := all[1:]
	if len(rest) > newCollectionSize {
		rest = rest[len(rest)-newCollectionSize:]
	}
	return rest, nil
}

// PopularIn returns the first few products of a category.
func (s *CatalogService) PopularIn(ctx context.Context, category string) ([]domain.Product, error) {
	return s.Prods.ByCategory(ctx, category, popularSize)
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.Cats.List(ctx)
}
