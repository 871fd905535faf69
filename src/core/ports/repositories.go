// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"economia/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// ArticleRepository persists articles.
type ArticleRepository interface {
	// List returns published articles matching filter, newest first, and
	// the number of rows returned.
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleSummary, int64, error)

	// Create inserts an article. A taken slug yields a conflict error.
	Create(ctx context.Context, a domain.NewArticle) (*domain.Article, error)

	// ViewBySlug returns a published article and counts the view, atomically.
	ViewBySlug(ctx context.Context, slug string) (*domain.ArticleDetail, error)
}

// UserRepository persists users.
type UserRepository interface {
	// List returns active users, newest first, and the number of rows returned.
	List(ctx context.Context, page domain.Page) ([]domain.User, int64, error)

	// Create inserts a user. A taken email yields a conflict error.
	Create(ctx context.Context, u domain.NewUser) (*domain.User, error)

	// Deactivate clears the active flag.
	Deactivate(ctx context.Context, id int64) error
}

// CategoryRepository reads categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
}
