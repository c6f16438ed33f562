package handler

import (
	"stumpworks-site/internal/config"
	"stumpworks-site/internal/repository"
	"stumpworks-site/internal/service"
	"stumpworks-site/internal/storage"
)

type Handlers struct {
	Auth      *AuthHandler
	Portfolio *PortfolioHandler
	Media     *MediaHandler
	Review    *ReviewHandler
	Contact   *ContactHandler
	Health    *HealthHandler
}

func NewHandlers(services *service.Services, repos *repository.Repositories, store storage.Store, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(services.Auth),
		Portfolio: NewPortfolioHandler(services.Portfolio, store, cfg),
		Media:     NewMediaHandler(services.Media),
		Review:    NewReviewHandler(services.Review),
		Contact:   NewContactHandler(services.Contact),
		Health:    NewHealthHandler(repos.Portfolio),
	}
}
