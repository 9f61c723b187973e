package ports

import (
	"context"

	"github.com/wellness/portal/internal/core/domain"
)

// ArticleRepository owns the articles table. It performs no authorization.
type ArticleRepository interface {
	// Create assigns a new unique, ascending id and returns it.
	Create(ctx context.Context, article *domain.Article) (int64, error)
	// Delete returns domain.ErrArticleNotFound when no article has the id.
	Delete(ctx context.Context, id int64) error
	// List returns every article ordered by ascending id.
	List(ctx context.Context) ([]domain.Article, error)
}
