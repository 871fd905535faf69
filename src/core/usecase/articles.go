package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"economia/src/core/domain"
	"economia/src/core/ports"
)

// ArticleService handles listing, publishing and reading articles.
type ArticleService struct {
	repo ports.ArticleRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewArticleService(repo ports.ArticleRepository, log *slog.Logger) *ArticleService {
	return &ArticleService{repo: repo, log: log, now: time.Now}
}

// CreateArticleInput is the data needed to create an article.
type CreateArticleInput struct {
	Titulo         string
	Slug           string
	Resumo         *string
	Conteudo       string
	ImagemDestaque *string
	AutorID        *int64
	CategoriaID    *int64
	Publicado      *bool
}

// ArticleList is one page of published articles.
type ArticleList struct {
	Artigos []domain.ArticleSummary
	Total   int64
}

// List returns published articles matching filter.
func (s *ArticleService) List(ctx context.Context, filter domain.ArticleFilter) (*ArticleList, error) {
	if err := validatePage(filter.Limit, filter.Offset); err != nil {
		return nil, err
	}
	rows, count, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list articles", "error", err)
		return nil, err
	}
	return &ArticleList{Artigos: rows, Total: count}, nil
}

// Latest returns the n most recently published articles.
func (s *ArticleService) Latest(ctx context.Context, n int) ([]domain.ArticleSummary, error) {
	list, err := s.List(ctx, domain.ArticleFilter{Limit: n})
	if err != nil {
		return nil, err
	}
	return list.Artigos, nil
}

// Create validates and stores a new article. Slug uniqueness is enforced by
// the database and reported as a conflict.
func (s *ArticleService) Create(ctx context.Context, in CreateArticleInput) (*domain.Article, error) {
	if strings.TrimSpace(in.Titulo) == "" || strings.TrimSpace(in.Slug) == "" || strings.TrimSpace(in.Conteudo) == "" {
		return nil, domain.NewValidationError("", "Título, slug e conteúdo são obrigatórios")
	}

	na := domain.NewArticle{
		Titulo:         in.Titulo,
		Slug:           in.Slug,
		Resumo:         in.Resumo,
		Conteudo:       in.Conteudo,
		ImagemDestaque: nonEmpty(in.ImagemDestaque),
		AutorID:        nonZero(in.AutorID),
		CategoriaID:    nonZero(in.CategoriaID),
	}
	if in.Publicado != nil && *in.Publicado {
		now := s.now().UTC()
		na.Publicado = true
		na.DataPublicacao = &now
	}

	a, err := s.repo.Create(ctx, na)
	if err != nil {
		if !domain.IsConflict(err) && !domain.IsValidationError(err) {
			s.log.Error("failed to create article", "slug", in.Slug, "error", err)
		}
		return nil, err
	}

	s.log.Info("article created", "id", a.ID, "slug", a.Slug, "publicado", a.Publicado)
	return a, nil
}

// View returns a published article by slug and counts the view.
func (s *ArticleService) View(ctx context.Context, slug string) (*domain.ArticleDetail, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, domain.NewValidationError("slug", "Slug é obrigatório")
	}
	return s.repo.ViewBySlug(ctx, slug)
}

func validatePage(limit, offset int) error {
	if limit < 1 || limit > domain.MaxPageLimit {
		return domain.NewValidationError("limit", "limit deve estar entre 1 e 100")
	}
	if offset < 0 {
		return domain.NewValidationError("offset", "offset não pode ser negativo")
	}
	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func nonZero(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}
