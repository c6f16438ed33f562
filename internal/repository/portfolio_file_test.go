package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stumpworks-site/internal/domain"
)

func newTestFileRepo(t *testing.T) PortfolioRepository {
	t.Helper()
	return NewFilePortfolioRepository(filepath.Join(t.TempDir(), "portfolio.json"))
}

func TestFilePortfolioRepository_EmptyStore(t *testing.T) {
	repo := newTestFileRepo(t)
	ctx := context.Background()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.NoError(t, repo.Ping(ctx))
}

func TestFilePortfolioRepository_RoundTrip(t *testing.T) {
	repo := newTestFileRepo(t)
	ctx := context.Background()

	first := &domain.PortfolioItem{
		ID:         "first",
		Type:       domain.ItemTypeStandalone,
		MediaURL:   "/api/uploads/a.jpg",
		MediaType:  "image",
		UploadedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	second := &domain.PortfolioItem{
		ID:         "second",
		Type:       domain.ItemTypeBeforeAfter,
		BeforeURL:  "/api/uploads/before.jpg",
		AfterURL:   "/api/uploads/after.jpg",
		UploadedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	t.Run("List Newest First", func(t *testing.T) {
		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "second", items[0].ID)
		assert.Equal(t, "first", items[1].ID)
	})

	t.Run("GetByID Preserves Before After Order", func(t *testing.T) {
		item, err := repo.GetByID(ctx, "second")
		require.NoError(t, err)
		assert.Equal(t, "/api/uploads/before.jpg", item.BeforeURL)
		assert.Equal(t, "/api/uploads/after.jpg", item.AfterURL)
	})

	t.Run("GetByID Unknown", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("UpdateDescription", func(t *testing.T) {
		item, err := repo.UpdateDescription(ctx, "first", "updated")
		require.NoError(t, err)
		assert.Equal(t, "updated", item.Description)

		reloaded, err := repo.GetByID(ctx, "first")
		require.NoError(t, err)
		assert.Equal(t, "updated", reloaded.Description)
		// media identity is untouched
		assert.Equal(t, "/api/uploads/a.jpg", reloaded.MediaURL)
	})

	t.Run("UpdateDescription Unknown", func(t *testing.T) {
		_, err := repo.UpdateDescription(ctx, "ghost", "text")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "first"))

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "second", items[0].ID)
	})

	t.Run("Delete Twice", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, "first"), ErrNotFound)
	})
}

func TestFilePortfolioRepository_GalleryRefsSurviveReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	ctx := context.Background()

	item := &domain.PortfolioItem{
		ID:         "gallery-1",
		Type:       domain.ItemTypeGallery,
		Images:     []string{"one.jpg", "two.jpg"},
		ImageRefs:  []string{"ref-one", "ref-two"},
		UploadedAt: time.Now().UTC(),
	}

	require.NoError(t, NewFilePortfolioRepository(path).Insert(ctx, item))

	// a fresh repository instance reads the same document
	reloaded, err := NewFilePortfolioRepository(path).GetByID(ctx, "gallery-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"one.jpg", "two.jpg"}, []string(reloaded.Images))
	assert.Equal(t, []string{"ref-one", "ref-two"}, []string(reloaded.ImageRefs))
}
