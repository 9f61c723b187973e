package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wellness/portal/internal/api/metrics"
	"github.com/wellness/portal/internal/api/middleware"
	"github.com/wellness/portal/internal/core/ports"
)

// ArticleHandler serves the public article list and the admin CRUD routes.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List handles GET /articles.
//
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Success      200  {object}  listArticlesResponse
// @Failure      500  {object}  errorResponse
// @Router       /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.ListArticles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listArticlesResponse{Articles: articles, Count: len(articles)})
}

// Create handles POST /admin/articles.
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article"
// @Success      201   {object}  createArticleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, _ := c.Get(middleware.EmailKey).(string)
	id, err := h.service.CreateArticle(c.Request().Context(), ports.ArticleInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
		Actor:       actor,
	})
	if err != nil {
		return err
	}
	metrics.ArticleChangesTotal.WithLabelValues("create").Inc()

	return c.JSON(http.StatusCreated, createArticleResponse{ID: id})
}

// Delete handles DELETE /admin/articles/:id.
//
// @Summary      Delete an article
// @Tags         articles
// @Security     BearerAuth
// @Param        id   path  int  true  "Article id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}

	actor, _ := c.Get(middleware.EmailKey).(string)
	if err := h.service.DeleteArticle(c.Request().Context(), id, actor); err != nil {
		return err
	}
	metrics.ArticleChangesTotal.WithLabelValues("delete").Inc()

	return c.NoContent(http.StatusNoContent)
}
