package handler

import (
	"github.com/gin-gonic/gin"

	"economia/src/app/http/dto"
	"economia/src/app/http/response"
	"economia/src/core/usecase"
)

// ArticleHandler handles /api/artigos.
type ArticleHandler struct {
	articleService *usecase.ArticleService
}

func NewArticleHandler(articleService *usecase.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// List returns published articles.
// GET /api/artigos?categoria=&busca=&limit=&offset=
func (h *ArticleHandler) List(c *gin.Context) {
	var q dto.ArticleListQuery
	if err := bindQuery(c, &q); err != nil {
		bindFailed(c, err, "", "Parâmetros de paginação inválidos")
		return
	}

	list, err := h.articleService.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		fail(c, err, "Erro ao buscar artigos")
		return
	}

	response.OK(c, dto.ArticleListResponse{Artigos: list.Artigos, Total: list.Total})
}

// Create stores a new article.
// POST /api/artigos
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "Título, slug e conteúdo são obrigatórios", invalidBody)
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, err, "Erro ao criar artigo")
		return
	}

	response.Created(c, article)
}

// Get returns one published article and counts the view.
// GET /api/artigos/:slug
func (h *ArticleHandler) Get(c *gin.Context) {
	var uri dto.ArticleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		bindFailed(c, err, "", "Slug inválido")
		return
	}

	article, err := h.articleService.View(c.Request.Context(), uri.Slug)
	if err != nil {
		fail(c, err, "Erro ao buscar artigo")
		return
	}

	response.OK(c, article)
}
