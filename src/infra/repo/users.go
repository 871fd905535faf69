package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"economia/src/core/domain"
	"economia/src/infra/db"
)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	pg *db.Postgres
}

func (r *UserRepository) List(ctx context.Context, page domain.Page) ([]domain.User, int64, error) {
	const q = `
		SELECT id, uuid, nome, email, telefone, ativo, criado_em
		FROM usuarios
		WHERE ativo = true
		ORDER BY criado_em DESC
		LIMIT $1 OFFSET $2
	`
	res, err := db.Query(ctx, r.pg, q, []any{page.Limit, page.Offset}, pgx.RowToStructByNameLax[domain.User])
	if err != nil {
		return nil, 0, err
	}
	return res.Rows, res.RowCount, nil
}

func (r *UserRepository) Create(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	const q = `
		INSERT INTO usuarios (nome, email, senha_hash, telefone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uuid, nome, email, telefone, ativo, criado_em
	`
	args := []any{u.Nome, u.Email, u.PasswordHash, u.Telefone}

	created, err := db.QueryOne(ctx, r.pg, q, args, pgx.RowToStructByNameLax[domain.User])
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &created, nil
}

func (r *UserRepository) Deactivate(ctx context.Context, id int64) error {
	tag, err := db.Exec(ctx, r.pg, `UPDATE usuarios SET ativo = false WHERE id = $1 AND ativo = true`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("Usuário")
	}
	return nil
}
