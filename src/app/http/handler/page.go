package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"economia/src/app/web"
	"economia/src/core/domain"
	"economia/src/core/usecase"
)

// PageHandler renders the public HTML pages.
type PageHandler struct {
	articleService *usecase.ArticleService
}

func NewPageHandler(articleService *usecase.ArticleService) *PageHandler {
	return &PageHandler{articleService: articleService}
}

// Home renders the latest published articles.
// GET /
func (h *PageHandler) Home(c *gin.Context) {
	artigos, err := h.articleService.Latest(c.Request.Context(), domain.HomePageArticles)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "Erro ao carregar artigos")
		return
	}

	c.HTML(http.StatusOK, "index.html", web.Page{
		Meta:    web.HomeMetadata,
		Artigos: artigos,
	})
}

// Article renders a single published article and counts the view.
// GET /artigos/:slug
func (h *PageHandler) Article(c *gin.Context) {
	artigo, err := h.articleService.View(c.Request.Context(), c.Param("slug"))
	switch {
	case domain.IsNotFound(err), domain.IsValidationError(err):
		c.String(http.StatusNotFound, "Artigo não encontrado")
		return
	case err != nil:
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "Erro ao carregar artigo")
		return
	}

	c.HTML(http.StatusOK, "artigo.html", web.Page{
		Meta:   web.ArticleMetadata(artigo),
		Artigo: artigo,
	})
}
