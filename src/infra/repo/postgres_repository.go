// Package repo implements the core ports on top of PostgreSQL.
package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"economia/src/core/domain"
	"economia/src/infra/db"
	"economia/src/infra/logger"
)

// SQLSTATE codes mapped to domain errors.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// PostgresRepository groups the table repositories sharing one handle.
type PostgresRepository struct {
	pg  *db.Postgres
	log *slog.Logger

	Articles   *ArticleRepository
	Users      *UserRepository
	Categories *CategoryRepository
}

// NewPostgresRepository constructs the repositories backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	log = logger.WithComponent(log, "repo")
	return &PostgresRepository{
		pg:         pg,
		log:        log,
		Articles:   &ArticleRepository{pg: pg, log: log},
		Users:      &UserRepository{pg: pg},
		Categories: &CategoryRepository{pg: pg},
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pg.Health(ctx)
}

// constraintMessages holds the client message for each constraint a write can
// break, with the request field it concerns.
var constraintMessages = map[string]struct{ field, message string }{
	"artigos_economia_slug_key":          {"slug", "Slug já existe"},
	"artigos_economia_autor_id_fkey":     {"autor_id", "Autor não encontrado"},
	"artigos_economia_categoria_id_fkey": {"categoria_id", "Categoria não encontrada"},
	"artigos_data_publicacao_chk":        {"data_publicacao", "Data de publicação exige artigo publicado"},
	"usuarios_email_key":                 {"email", "Email já cadastrado"},
}

// mapWriteError converts constraint violations into domain errors. Other
// errors are returned untouched.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	known, ok := constraintMessages[pgErr.ConstraintName]
	if !ok {
		known.field, known.message = pgErr.ColumnName, pgErr.Message
	}

	switch pgErr.Code {
	case uniqueViolation:
		return domain.NewConflictError(known.field, known.message)
	case foreignKeyViolation, checkViolation:
		return domain.NewValidationError(known.field, known.message)
	default:
		return err
	}
}
