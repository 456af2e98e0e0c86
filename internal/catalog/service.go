package catalog

import (
	"context"
	"strings"
	"unicode"

	"cafepos-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for the menu.
type Service interface {
	List(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, input SaveProductInput) (*Product, error)
	Delete(ctx context.Context, productID string) error
	DeleteAll(ctx context.Context) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.Products(ctx)
}

// Save validates the input, normalizes the name and persists the whole menu.
// A failed write leaves the stored menu untouched.
func (s *service) Save(ctx context.Context, input SaveProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SaveProduct"),
		zap.String("product_id", input.ID),
	)

	name := normalizeName(input.Name)
	if name == "" {
		log.Warn("empty product name")
		return nil, ErrEmptyName
	}
	if input.Price <= 0 {
		log.Warn("invalid product price", zap.Float64("price", input.Price))
		return nil, ErrInvalidPrice
	}

	products, err := s.repo.Products(ctx)
	if err != nil {
		log.Error("failed to load menu", zap.Error(err))
		return nil, err
	}

	var saved Product
	if input.ID == "" {
		saved = Product{ID: uuid.New().String(), Name: name, Price: input.Price}
		products = append(products, saved)
	} else {
		idx := -1
		for i := range products {
			if products[i].ID == input.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, ErrProductNotFound
		}
		products[idx].Name = name
		products[idx].Price = input.Price
		saved = products[idx]
	}

	if err := s.repo.SaveProducts(ctx, products); err != nil {
		log.Error("failed to save menu", zap.Error(err))
		return nil, err
	}

	return &saved, nil
}

// Delete removes one product. A missing id is a benign no-op.
func (s *service) Delete(ctx context.Context, productID string) error {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return nil
	}

	return s.repo.SaveProducts(ctx, kept)
}

func (s *service) DeleteAll(ctx context.Context) error {
	return s.repo.SaveProducts(ctx, []Product{})
}

// normalizeName lowercases, collapses inner whitespace and capitalizes the
// first letter, so "  caFE   LatTe " becomes "Cafe latte".
func normalizeName(name string) string {
	name = strings.Join(strings.Fields(strings.ToLower(name)), " ")
	if name == "" {
		return ""
	}

	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
