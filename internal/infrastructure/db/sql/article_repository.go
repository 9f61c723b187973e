package sql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/wellness/portal/internal/core/domain"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) (int64, error) {
	m := articleModel{
		Title:       article.Title,
		Description: article.Description,
		ImageURL:    article.ImageURL,
		Link:        article.Link,
		CreatedAt:   article.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}
	article.ID = m.ID
	return m.ID, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&articleModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete article: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	var rows []articleModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	out := make([]domain.Article, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}
