package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"economia/src/core/domain"
)

type fakeArticleRepo struct {
	mu       sync.Mutex
	articles []domain.Article
	filters  []domain.ArticleFilter
	listErr  error
}

func (r *fakeArticleRepo) List(_ context.Context, f domain.ArticleFilter) ([]domain.ArticleSummary, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, f)
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	out := []domain.ArticleSummary{}
	for _, a := range r.articles {
		if a.Publicado {
			out = append(out, domain.ArticleSummary{ID: a.ID, Titulo: a.Titulo, Slug: a.Slug})
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeArticleRepo) Create(_ context.Context, na domain.NewArticle) (*domain.Article, error) {
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

func (r *fakeArticleRepo) ViewBySlug(_ context.Context, slug string) (*domain.ArticleDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.articles {
		if a.Slug == slug && a.Publicado {
			r.articles[i].Visualizacoes++
			return &domain.ArticleDetail{
				ArticleSummary: domain.ArticleSummary{
					ID: a.ID, Slug: a.Slug, Titulo: a.Titulo, Visualizacoes: r.articles[i].Visualizacoes,
				},
				Conteudo: a.Conteudo,
			}, nil
		}
	}
	return nil, domain.NewNotFoundError("Artigo")
}

type fakeUserRepo struct {
	mu          sync.Mutex
	users       []domain.User
	deactivated []int64
	createErr   error
}

func (r *fakeUserRepo) List(_ context.Context, page domain.Page) ([]domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.User{}
	for _, u := range r.users {
		if u.Ativo {
			u.PasswordHash = ""
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Create(_ context.Context, nu domain.NewUser) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
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

func (r *fakeUserRepo) Deactivate(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id && r.users[i].Ativo {
			r.users[i].Ativo = false
			r.deactivated = append(r.deactivated, id)
			return nil
		}
	}
	return domain.NewNotFoundError("Usuário")
}

type fakeHealthRepo struct{ err error }

func (r fakeHealthRepo) Health(context.Context) error { return r.err }

var errDatabaseDown = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
