package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("portfolio item not found")

type Repositories struct {
	Portfolio PortfolioRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Portfolio: NewPortfolioRepository(db),
	}
}

func NewFileRepositories(path string) *Repositories {
	return &Repositories{
		Portfolio: NewFilePortfolioRepository(path),
	}
}
