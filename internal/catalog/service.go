package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesabook/mesabook-backend/pkg/pagination"
)

// Service exposes the public catalog read surface.
type Service interface {
	GetItem(ctx context.Context, itemID uuid.UUID) (*ItemDTO, error)
	ListItems(ctx context.Context, filter ListItemsFilter, params pagination.Params) (*ItemPageDTO, error)
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetItem(ctx context.Context, itemID uuid.UUID) (*ItemDTO, error) {
	item, err := s.repo.HydratedItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	dto := newItemDTO(*item)
	return &dto, nil
}

func (s *service) ListItems(ctx context.Context, filter ListItemsFilter, params pagination.Params) (*ItemPageDTO, error) {
	page, err := s.repo.ListItems(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	dtos := make([]ItemDTO, 0, len(page.Items))
	for _, item := range page.Items {
		dtos = append(dtos, newItemDTO(item))
	}
	return &ItemPageDTO{Items: dtos, NextCursor: page.NextCursor}, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, newCategoryDTO(category))
	}
	return dtos, nil
}
