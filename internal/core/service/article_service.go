package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wellness/portal/internal/core/domain"
	"github.com/wellness/portal/internal/core/ports"
)

type ArticleService struct {
	repo   ports.ArticleRepository
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewArticleService(repo ports.ArticleRepository, audit ports.AuditSink, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, audit: audit, logger: logger}
}

// CreateArticle persists a new article and returns its id. Fields are stored
// as given; only emptiness is rejected.
func (s *ArticleService) CreateArticle(ctx context.Context, in ports.ArticleInput) (int64, error) {
	article := &domain.Article{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Link:        in.Link,
		CreatedAt:   time.Now().UTC(),
	}
	if article.Title == "" || article.Description == "" || article.ImageURL == "" || article.Link == "" {
		return 0, domain.ErrMissingField
	}

	id, err := s.repo.Create(ctx, article)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create article")
		return 0, fmt.Errorf("create article: %w", err)
	}

	s.record(domain.AuditArticleCreated, in.Actor, fmt.Sprintf("id=%d title=%q", id, article.Title))
	s.logger.Info().Int64("article_id", id).Str("actor", in.Actor).Msg("article created")
	return id, nil
}

// DeleteArticle removes the article with the given id.
func (s *ArticleService) DeleteArticle(ctx context.Context, id int64, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article %d: %w", id, err)
	}

	s.record(domain.AuditArticleDeleted, actor, fmt.Sprintf("id=%d", id))
	s.logger.Info().Int64("article_id", id).Str("actor", actor).Msg("article deleted")
	return nil
}

// ListArticles returns all articles in insertion order.
func (s *ArticleService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (s *ArticleService) record(kind domain.AuditKind, actor, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{Kind: kind, Email: actor, Detail: detail, At: time.Now().UTC()})
}
