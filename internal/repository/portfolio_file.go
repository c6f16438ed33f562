package repository

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"

	"stumpworks-site/internal/domain"
)

// filePortfolioRepository keeps the whole collection in one JSON document.
// Every mutation is a read-modify-write of the file under a mutex; the
// document doubles as the deployment artifact for the self-hosted variant.
type filePortfolioRepository struct {
	path string
	mu   sync.Mutex
}

func NewFilePortfolioRepository(path string) PortfolioRepository {
	return &filePortfolioRepository{path: path}
}

func (r *filePortfolioRepository) load() ([]domain.PortfolioItem, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []domain.PortfolioItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := []domain.PortfolioItem{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *filePortfolioRepository) save(items []domain.PortfolioItem) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

func (r *filePortfolioRepository) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UploadedAt.After(items[j].UploadedAt)
	})
	return items, nil
}

func (r *filePortfolioRepository) GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (r *filePortfolioRepository) Insert(ctx context.Context, item *domain.PortfolioItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}

	items = append(items, *item)
	return r.save(items)
}

func (r *filePortfolioRepository) UpdateDescription(ctx context.Context, id, description string) (*domain.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Description = description
			if err := r.save(items); err != nil {
				return nil, err
			}
			item := items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (r *filePortfolioRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrNotFound
	}
	return r.save(kept)
}

func (r *filePortfolioRepository) Ping(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.load()
	return err
}
