package service

import (
	"github.com/redis/go-redis/v9"

	"stumpworks-site/internal/config"
	"stumpworks-site/internal/repository"
	"stumpworks-site/internal/storage"
)

type Services struct {
	Auth      AuthService
	Portfolio PortfolioService
	Media     MediaService
	Review    ReviewService
	Contact   ContactService
}

// NewServices wires the service layer. redis may be nil, which disables the
// listing and reviews caches.
func NewServices(repos *repository.Repositories, store storage.Store, redis *redis.Client, cfg *config.Config) *Services {
	return &Services{
		Auth:      NewAuthService(cfg),
		Portfolio: NewPortfolioService(repos.Portfolio, store, redis),
		Media:     NewMediaService(store),
		Review:    NewReviewService(cfg, redis),
		Contact:   NewContactService(cfg),
	}
}
