package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"economia/src/core/domain"
	"economia/src/infra/db"
)

// CategoryRepository implements ports.CategoryRepository.
type CategoryRepository struct {
	pg *db.Postgres
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const q = `SELECT id, nome, slug FROM categorias ORDER BY nome`
	res, err := db.Query(ctx, r.pg, q, nil, pgx.RowToStructByName[domain.Category])
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}
