package item

import (
	"context"

	"cart-api/internal/domain"
	itemrepo "cart-api/internal/repository/item"
)

type Service struct {
	repo itemrepo.Repository
}

func New(repo itemrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id string) bool {
	return s.repo.Exists(ctx, id)
}
