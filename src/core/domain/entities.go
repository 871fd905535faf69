package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is a row of artigos_economia.
// DataPublicacao is set only when Publicado is true.
type Article struct {
	ID             int64      `db:"id" json:"id"`
	UUID           uuid.UUID  `db:"uuid" json:"uuid"`
	Titulo         string     `db:"titulo" json:"titulo"`
	Slug           string     `db:"slug" json:"slug"`
	Resumo         *string    `db:"resumo" json:"resumo"`
	Conteudo       string     `db:"conteudo" json:"conteudo"`
	ImagemDestaque *string    `db:"imagem_destaque" json:"imagem_destaque"`
	Visualizacoes  int        `db:"visualizacoes" json:"visualizacoes"`
	Publicado      bool       `db:"publicado" json:"publicado"`
	DataPublicacao *time.Time `db:"data_publicacao" json:"data_publicacao"`
	AutorID        *int64     `db:"autor_id" json:"autor_id"`
	CategoriaID    *int64     `db:"categoria_id" json:"categoria_id"`
	CriadoEm       time.Time  `db:"criado_em" json:"criado_em"`
}

// ArticleSummary is a published article joined with its author and category names.
type ArticleSummary struct {
	ID             int64      `db:"id" json:"id"`
	UUID           uuid.UUID  `db:"uuid" json:"uuid"`
	Titulo         string     `db:"titulo" json:"titulo"`
	Slug           string     `db:"slug" json:"slug"`
	Resumo         *string    `db:"resumo" json:"resumo"`
	ImagemDestaque *string    `db:"imagem_destaque" json:"imagem_destaque"`
	Visualizacoes  int        `db:"visualizacoes" json:"visualizacoes"`
	DataPublicacao *time.Time `db:"data_publicacao" json:"data_publicacao"`
	AutorNome      *string    `db:"autor_nome" json:"autor_nome"`
	CategoriaNome  *string    `db:"categoria_nome" json:"categoria_nome"`
	CategoriaSlug  *string    `db:"categoria_slug" json:"categoria_slug"`
}

// ArticleDetail is a full published article with author and category names.
type ArticleDetail struct {
	ArticleSummary
	Conteudo string `db:"conteudo" json:"conteudo"`
}

// User is a row of usuarios. The credential hash never leaves the service.
type User struct {
	ID           int64     `db:"id" json:"id"`
	UUID         uuid.UUID `db:"uuid" json:"uuid"`
	Nome         string    `db:"nome" json:"nome"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"senha_hash" json:"-"`
	Telefone     *string   `db:"telefone" json:"telefone"`
	Ativo        bool      `db:"ativo" json:"ativo"`
	CriadoEm     time.Time `db:"criado_em" json:"criado_em"`
}

// Category is a row of categorias. It is read-only for this service.
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Nome string `db:"nome" json:"nome"`
	Slug string `db:"slug" json:"slug"`
}

// NewArticle holds the values of an article about to be inserted.
type NewArticle struct {
	Titulo         string
	Slug           string
	Resumo         *string
	Conteudo       string
	ImagemDestaque *string
	AutorID        *int64
	CategoriaID    *int64
	Publicado      bool
	DataPublicacao *time.Time
}

// NewUser holds the values of a user about to be inserted.
type NewUser struct {
	Nome         string
	Email        string
	PasswordHash string
	Telefone     *string
}

// ArticleFilter narrows the published article listing.
type ArticleFilter struct {
	CategoriaSlug string
	Busca         string
	Limit         int
	Offset        int
}

// Page is a limit/offset window.
type Page struct {
	Limit  int
	Offset int
}
