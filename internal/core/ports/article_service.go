package ports

import (
	"context"

	"github.com/wellness/portal/internal/core/domain"
)

// ArticleInput carries the fields of a new article. All are required.
type ArticleInput struct {
	Title       string
	Description string
	ImageURL    string
	Link        string
	// Actor is the admin performing the change, recorded in the audit trail.
	Actor string
}

// ArticleService defines article use cases. Callers must gate Create and
// Delete behind an admin session.
type ArticleService interface {
	CreateArticle(ctx context.Context, in ArticleInput) (int64, error)
	DeleteArticle(ctx context.Context, id int64, actor string) error
	ListArticles(ctx context.Context) ([]domain.Article, error)
}
