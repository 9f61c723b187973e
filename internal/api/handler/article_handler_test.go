package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/wellness/portal/internal/api/middleware"
	"github.com/wellness/portal/internal/core/domain"
	"github.com/wellness/portal/internal/core/ports"
)

type stubArticleService struct {
	created  *ports.ArticleInput
	deleted  int64
	actor    string
	articles []domain.Article
	err      error
}

func (s *stubArticleService) CreateArticle(_ context.Context, in ports.ArticleInput) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.created = &in
	return 7, nil
}

func (s *stubArticleService) DeleteArticle(_ context.Context, id int64, actor string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted, s.actor = id, actor
	return nil
}

func (s *stubArticleService) ListArticles(context.Context) ([]domain.Article, error) {
	return s.articles, s.err
}

func TestArticleHandler_List(t *testing.T) {
	stub := &stubArticleService{articles: []domain.Article{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}}
	h := NewArticleHandler(stub)

	c, rec := newJSONContext(http.MethodGet, "/articles", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp listArticlesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 2 || resp.Articles[0].ID != 1 || resp.Articles[1].ID != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestArticleHandler_Create(t *testing.T) {
	stub := &stubArticleService{}
	h := NewArticleHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/admin/articles",
		`{"title":"Sleep","description":"Get 8h","image_url":"https://img.example/a.png","link":"https://example.org/a"}`)
	c.Set(middleware.EmailKey, "admin@gmail.com")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.created == nil || stub.created.Actor != "admin@gmail.com" || stub.created.Title != "Sleep" {
		t.Fatalf("unexpected input: %+v", stub.created)
	}

	var resp createArticleResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.ID != 7 {
		t.Fatalf("expected id 7, got %d", resp.ID)
	}
}

func TestArticleHandler_CreateAcceptsFreeformLinks(t *testing.T) {
	stub := &stubArticleService{}
	h := NewArticleHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/admin/articles",
		`{"title":"Sleep","description":"d","image_url":"cover.png","link":"ask at reception"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.created == nil || stub.created.ImageURL != "cover.png" || stub.created.Link != "ask at reception" {
		t.Fatalf("unexpected input: %+v", stub.created)
	}
}

func TestArticleHandler_CreateMissingField(t *testing.T) {
	h := NewArticleHandler(&stubArticleService{err: domain.ErrMissingField})

	c, _ := newJSONContext(http.MethodPost, "/admin/articles", `{"title":"Sleep"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestArticleHandler_Delete(t *testing.T) {
	stub := &stubArticleService{}
	h := NewArticleHandler(stub)

	c, rec := newJSONContext(http.MethodDelete, "/admin/articles/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	c.Set(middleware.EmailKey, "admin@gmail.com")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || stub.deleted != 3 || stub.actor != "admin@gmail.com" {
		t.Fatalf("unexpected result: %d deleted=%d actor=%q", rec.Code, stub.deleted, stub.actor)
	}
}

func TestArticleHandler_DeleteBadID(t *testing.T) {
	h := NewArticleHandler(&stubArticleService{})

	c, _ := newJSONContext(http.MethodDelete, "/admin/articles/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if code := httpCode(t, h.Delete(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestArticleHandler_DeleteNotFound(t *testing.T) {
	h := NewArticleHandler(&stubArticleService{err: domain.ErrArticleNotFound})

	c, _ := newJSONContext(http.MethodDelete, "/admin/articles/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	if err := h.Delete(c); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}
