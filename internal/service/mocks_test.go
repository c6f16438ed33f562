package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stumpworks-site/internal/domain"
	"stumpworks-site/internal/storage"
)

type mockPortfolioRepository struct {
	mock.Mock
}

func (m *mockPortfolioRepository) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortfolioItem), args.Error(1)
}

func (m *mockPortfolioRepository) GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioItem), args.Error(1)
}

func (m *mockPortfolioRepository) Insert(ctx context.Context, item *domain.PortfolioItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockPortfolioRepository) UpdateDescription(ctx context.Context, id, description string) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, id, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioItem), args.Error(1)
}

func (m *mockPortfolioRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPortfolioRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Upload(ctx context.Context, in storage.UploadInput) (*storage.Asset, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Asset), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}
