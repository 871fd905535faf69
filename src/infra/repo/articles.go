package repo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"economia/src/core/domain"
	"economia/src/infra/db"
)

const articleSummaryColumns = `
		a.id,
		a.uuid,
		a.titulo,
		a.slug,
		a.resumo,
		a.imagem_destaque,
		a.visualizacoes,
		a.data_publicacao,
		u.nome AS autor_nome,
		c.nome AS categoria_nome,
		c.slug AS categoria_slug`

const articleJoins = `
	FROM artigos_economia a
	LEFT JOIN usuarios u ON a.autor_id = u.id
	LEFT JOIN categorias c ON a.categoria_id = c.id`

const articleColumns = `id, uuid, titulo, slug, resumo, conteudo, imagem_destaque, visualizacoes,
		publicado, data_publicacao, autor_id, categoria_id, criado_em`

// ArticleRepository implements ports.ArticleRepository.
type ArticleRepository struct {
	pg  *db.Postgres
	log *slog.Logger
}

func (r *ArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleSummary, int64, error) {
	q, args := buildArticleListQuery(filter)
	res, err := db.Query(ctx, r.pg, q, args, pgx.RowToStructByName[domain.ArticleSummary])
	if err != nil {
		return nil, 0, err
	}
	return res.Rows, res.RowCount, nil
}

// buildArticleListQuery numbers placeholders in the order filters are added.
func buildArticleListQuery(f domain.ArticleFilter) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT")
	b.WriteString(articleSummaryColumns)
	b.WriteString(articleJoins)
	b.WriteString("\n\tWHERE a.publicado = true")

	var args []any
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.CategoriaSlug != "" {
		fmt.Fprintf(&b, " AND c.slug = %s", next(f.CategoriaSlug))
	}
	if f.Busca != "" {
		p := next("%" + f.Busca + "%")
		fmt.Fprintf(&b, " AND (a.titulo ILIKE %[1]s OR a.resumo ILIKE %[1]s OR a.conteudo ILIKE %[1]s)", p)
	}

	fmt.Fprintf(&b, "\n\tORDER BY a.data_publicacao DESC LIMIT %s", next(f.Limit))
	fmt.Fprintf(&b, " OFFSET %s", next(f.Offset))

	return b.String(), args
}

func (r *ArticleRepository) Create(ctx context.Context, a domain.NewArticle) (*domain.Article, error) {
	q := `
		INSERT INTO artigos_economia
			(titulo, slug, resumo, conteudo, imagem_destaque, autor_id, categoria_id, publicado, data_publicacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + articleColumns
	args := []any{
		a.Titulo, a.Slug, a.Resumo, a.Conteudo, a.ImagemDestaque,
		a.AutorID, a.CategoriaID, a.Publicado, a.DataPublicacao,
	}

	created, err := db.QueryOne(ctx, r.pg, q, args, pgx.RowToStructByName[domain.Article])
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &created, nil
}

func (r *ArticleRepository) ViewBySlug(ctx context.Context, slug string) (*domain.ArticleDetail, error) {
	var detail domain.ArticleDetail
	err := r.pg.Transaction(ctx, func(ctx context.Context, tx *db.Executor) error {
		tag, err := db.Exec(ctx, tx, `
			UPDATE artigos_economia
			SET visualizacoes = visualizacoes + 1
			WHERE slug = $1 AND publicado = true
		`, slug)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.NewNotFoundError("Artigo")
		}

		q := "SELECT" + articleSummaryColumns + ",\n\t\ta.conteudo" + articleJoins + "\n\tWHERE a.slug = $1"
		detail, err = db.QueryOne(ctx, tx, q, []any{slug}, pgx.RowToStructByName[domain.ArticleDetail])
		return err
	})
	if err != nil {
		if !domain.IsNotFound(err) {
			r.log.Error("failed to load article", "slug", slug, "error", err)
		}
		return nil, err
	}
	return &detail, nil
}
