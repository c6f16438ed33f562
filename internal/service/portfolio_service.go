package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"stumpworks-site/internal/domain"
	"stumpworks-site/internal/repository"
	"stumpworks-site/internal/storage"
)

var ErrInvalidItem = errors.New("invalid portfolio item")

const portfolioListCacheKey = "portfolio:list"

type PortfolioService interface {
	List(ctx context.Context) ([]domain.PortfolioItem, error)
	Create(ctx context.Context, input domain.CreateItemInput) (*domain.PortfolioItem, error)
	UpdateDescription(ctx context.Context, input domain.UpdateItemInput) (*domain.PortfolioItem, error)
	Delete(ctx context.Context, id string) error
}

type portfolioService struct {
	repo  repository.PortfolioRepository
	store storage.Store
	redis *redis.Client
}

func NewPortfolioService(repo repository.PortfolioRepository, store storage.Store, redis *redis.Client) PortfolioService {
	return &portfolioService{
		repo:  repo,
		store: store,
		redis: redis,
	}
}

func (s *portfolioService) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, portfolioListCacheKey).Result(); err == nil {
			var items []domain.PortfolioItem
			if json.Unmarshal([]byte(cached), &items) == nil {
				return items, nil
			}
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(items); err == nil {
			_ = s.redis.Set(ctx, portfolioListCacheKey, data, 5*time.Minute).Err()
		}
	}

	return items, nil
}

func (s *portfolioService) Create(ctx context.Context, input domain.CreateItemInput) (*domain.PortfolioItem, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	item := &domain.PortfolioItem{
		ID:          uuid.New().String(),
		Type:        input.Type,
		Description: input.Description,
		UploadedAt:  time.Now().UTC(),
	}

	switch input.Type {
	case domain.ItemTypeStandalone:
		item.MediaURL = input.MediaURL
		item.MediaType = input.MediaType
		if item.MediaType == "" {
			item.MediaType = "image"
		}
		item.MediaRef = input.MediaRef
	case domain.ItemTypeGallery:
		item.Images = input.Images
		item.ImageRefs = input.ImageRefs
	case domain.ItemTypeBeforeAfter:
		item.BeforeURL = input.BeforeURL
		item.AfterURL = input.AfterURL
		item.BeforeRef = input.BeforeRef
		item.AfterRef = input.AfterRef
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return item, nil
}

func validateCreateInput(input domain.CreateItemInput) error {
	if !input.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidItem, input.Type)
	}

	switch input.Type {
	case domain.ItemTypeStandalone:
		if input.MediaURL == "" {
			return fmt.Errorf("%w: media URL is required", ErrInvalidItem)
		}
	case domain.ItemTypeGallery:
		if len(input.Images) == 0 {
			return fmt.Errorf("%w: gallery requires at least one image", ErrInvalidItem)
		}
		if len(input.ImageRefs) > 0 && len(input.ImageRefs) != len(input.Images) {
			return fmt.Errorf("%w: image refs must align with images", ErrInvalidItem)
		}
	case domain.ItemTypeBeforeAfter:
		if input.BeforeURL == "" || input.AfterURL == "" {
			return fmt.Errorf("%w: both before and after images are required", ErrInvalidItem)
		}
	}
	return nil
}

func (s *portfolioService) UpdateDescription(ctx context.Context, input domain.UpdateItemInput) (*domain.PortfolioItem, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidItem)
	}

	item, err := s.repo.UpdateDescription(ctx, input.ID, input.Description)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return item, nil
}

// Delete purges every asset the record references, then removes the record.
// Asset-host failures are logged and swallowed so a flaky media host can
// never block metadata cleanup.
func (s *portfolioService) Delete(ctx context.Context, id string) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, ref := range item.AssetRefs() {
		if err := s.store.Delete(ctx, ref); err != nil {
			log.Printf("Failed to delete asset %s for item %s: %v", ref, id, err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *portfolioService) invalidateListCache(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, portfolioListCacheKey).Err()
	}
}
