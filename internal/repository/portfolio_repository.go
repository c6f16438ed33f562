package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"stumpworks-site/internal/domain"
)

// PortfolioRepository is the persistence contract for portfolio records.
// The Postgres and flat-file backings are interchangeable behind it.
type PortfolioRepository interface {
	List(ctx context.Context) ([]domain.PortfolioItem, error)
	GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error)
	Insert(ctx context.Context, item *domain.PortfolioItem) error
	UpdateDescription(ctx context.Context, id, description string) (*domain.PortfolioItem, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

type portfolioRepository struct {
	db *sqlx.DB
}

func NewPortfolioRepository(db *sqlx.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS portfolio_items (
	id          TEXT PRIMARY KEY,
	type        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	media_url   TEXT NOT NULL DEFAULT '',
	media_type  TEXT NOT NULL DEFAULT '',
	media_ref   TEXT NOT NULL DEFAULT '',
	images      TEXT[],
	image_refs  TEXT[],
	before_url  TEXT NOT NULL DEFAULT '',
	after_url   TEXT NOT NULL DEFAULT '',
	before_ref  TEXT NOT NULL DEFAULT '',
	after_ref   TEXT NOT NULL DEFAULT ''
)`

// EnsureSchema creates the portfolio table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (r *portfolioRepository) List(ctx context.Context) ([]domain.PortfolioItem, error) {
	items := []domain.PortfolioItem{}
	query := `SELECT * FROM portfolio_items ORDER BY uploaded_at DESC`
	err := r.db.SelectContext(ctx, &items, query)
	return items, err
}

func (r *portfolioRepository) GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	var item domain.PortfolioItem
	query := `SELECT * FROM portfolio_items WHERE id = $1`
	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *portfolioRepository) Insert(ctx context.Context, item *domain.PortfolioItem) error {
	query := `
		INSERT INTO portfolio_items
			(id, type, description, uploaded_at, media_url, media_type, media_ref,
			 images, image_refs, before_url, after_url, before_ref, after_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Type, item.Description, item.UploadedAt,
		item.MediaURL, item.MediaType, item.MediaRef,
		pq.Array([]string(item.Images)), pq.Array([]string(item.ImageRefs)),
		item.BeforeURL, item.AfterURL, item.BeforeRef, item.AfterRef,
	)
	return err
}

func (r *portfolioRepository) UpdateDescription(ctx context.Context, id, description string) (*domain.PortfolioItem, error) {
	var item domain.PortfolioItem
	query := `UPDATE portfolio_items SET description = $1 WHERE id = $2 RETURNING *`
	err := r.db.QueryRowxContext(ctx, query, description, id).StructScan(&item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *portfolioRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
