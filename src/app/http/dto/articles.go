package dto

import (
	"economia/src/core/domain"
	"economia/src/core/usecase"
)

// ArticleListQuery is the query string of GET /api/artigos.
type ArticleListQuery struct {
	Categoria string `form:"categoria"`
	Busca     string `form:"busca"`
	Limit     int    `form:"limit,default=10" binding:"min=1,max=100"`
	Offset    int    `form:"offset,default=0" binding:"min=0"`
}

func (q *ArticleListQuery) ToFilter() domain.ArticleFilter {
	return domain.ArticleFilter{
		CategoriaSlug: q.Categoria,
		Busca:         q.Busca,
		Limit:         q.Limit,
		Offset:        q.Offset,
	}
}

// ArticleListResponse is the body of GET /api/artigos.
type ArticleListResponse struct {
	Artigos []domain.ArticleSummary `json:"artigos"`
	Total   int64                   `json:"total"`
}

// CreateArticleRequest is the payload of POST /api/artigos.
type CreateArticleRequest struct {
	Titulo         string  `json:"titulo" binding:"required"`
	Slug           string  `json:"slug" binding:"required,slug"`
	Resumo         *string `json:"resumo"`
	Conteudo       string  `json:"conteudo" binding:"required"`
	ImagemDestaque *string `json:"imagem_destaque"`
	AutorID        *int64  `json:"autor_id" binding:"omitempty,min=0"`
	CategoriaID    *int64  `json:"categoria_id" binding:"omitempty,min=0"`
	Publicado      *bool   `json:"publicado"`
}

func (r *CreateArticleRequest) ToInput() usecase.CreateArticleInput {
	return usecase.CreateArticleInput{
		Titulo:         r.Titulo,
		Slug:           r.Slug,
		Resumo:         r.Resumo,
		Conteudo:       r.Conteudo,
		ImagemDestaque: r.ImagemDestaque,
		AutorID:        r.AutorID,
		CategoriaID:    r.CategoriaID,
		Publicado:      r.Publicado,
	}
}

// ArticleURI binds the :slug path parameter.
type ArticleURI struct {
	Slug string `uri:"slug" binding:"required,slug"`
}
