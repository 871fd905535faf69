package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"economia/src/core/domain"
)

var categories = []domain.Category{
	{ID: 1, Nome: "Mercado", Slug: "mercado"},
	{ID: 2, Nome: "Internacional", Slug: "internacional"},
}

// memStore is an in-memory stand-in for the postgres repositories. It keeps
// the same uniqueness rules the schema enforces.
type memStore struct {
	mu       sync.Mutex
	articles []domain.Article
	users    []domain.User
	filters  []domain.ArticleFilter
	pages    []domain.Page
	listErr  error
	down     bool
}

func (s *memStore) Health(context.Context) error {
	if s.down {
		return errors.New("connection refused")
	}
	return nil
}

func categorySlug(id *int64) *string {
	if id == nil {
		return nil
	}
	for _, c := range categories {
		if c.ID == *id {
			return &c.Slug
		}
	}
	return nil
}

func (s *memStore) summary(a domain.Article) domain.ArticleSummary {
	return domain.ArticleSummary{
		ID:             a.ID,
		UUID:           a.UUID,
		Titulo:         a.Titulo,
		Slug:           a.Slug,
		Resumo:         a.Resumo,
		ImagemDestaque: a.ImagemDestaque,
		Visualizacoes:  a.Visualizacoes,
		DataPublicacao: a.DataPublicacao,
		CategoriaSlug:  categorySlug(a.CategoriaID),
	}
}

type articleRepo struct{ *memStore }

func (r articleRepo) List(_ context.Context, f domain.ArticleFilter) ([]domain.ArticleSummary, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, f)
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	out := []domain.ArticleSummary{}
	for _, a := range r.articles {
		if !a.Publicado {
			continue
		}
		sum := r.summary(a)
		if f.CategoriaSlug != "" && (sum.CategoriaSlug == nil || *sum.CategoriaSlug != f.CategoriaSlug) {
			continue
		}
		out = append(out, sum)
	}
	return out, int64(len(out)), nil
}

func (r articleRepo) Create(_ context.Context, na domain.NewArticle) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.articles {
		if a.Slug == na.Slug {
			return nil, domain.NewConflictError("slug", "Slug já existe")
		}
	}
	a := domain.Article{
		ID:             int64(len(r.articles) + 1),
		UUID:           uuid.New(),
		Titulo:         na.Titulo,
		Slug:           na.Slug,
		Resumo:         na.Resumo,
		Conteudo:       na.Conteudo,
		ImagemDestaque: na.ImagemDestaque,
		Publicado:      na.Publicado,
		DataPublicacao: na.DataPublicacao,
		AutorID:        na.AutorID,
		CategoriaID:    na.CategoriaID,
		CriadoEm:       time.Now(),
	}
	r.articles = append(r.articles, a)
	return &a, nil
}

func (r articleRepo) ViewBySlug(_ context.Context, slug string) (*domain.ArticleDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		a := &r.articles[i]
		if a.Slug == slug && a.Publicado {
			a.Visualizacoes++
			return &domain.ArticleDetail{ArticleSummary: r.summary(*a), Conteudo: a.Conteudo}, nil
		}
	}
	return nil, domain.NewNotFoundError("Artigo")
}

type userRepo struct{ *memStore }

func (r userRepo) List(_ context.Context, page domain.Page) ([]domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages = append(r.pages, page)
	out := []domain.User{}
	for _, u := range r.users {
		if u.Ativo {
			u.PasswordHash = ""
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

func (r userRepo) Create(_ context.Context, nu domain.NewUser) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == nu.Email {
			return nil, domain.NewConflictError("email", "Email já cadastrado")
		}
	}
	u := domain.User{
		ID:           int64(len(r.users) + 1),
		UUID:         uuid.New(),
		Nome:         nu.Nome,
		Email:        nu.Email,
		PasswordHash: nu.PasswordHash,
		Telefone:     nu.Telefone,
		Ativo:        true,
		CriadoEm:     time.Now(),
	}
	r.users = append(r.users, u)
	out := u
	return &out, nil
}

func (r userRepo) Deactivate(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id && r.users[i].Ativo {
			r.users[i].Ativo = false
			return nil
		}
	}
	return domain.NewNotFoundError("Usuário")
}

type categoryRepo struct{}

func (categoryRepo) List(context.Context) ([]domain.Category, error) {
	return categories, nil
}
