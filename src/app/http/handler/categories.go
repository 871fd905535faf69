package handler

import (
	"github.com/gin-gonic/gin"

	"economia/src/app/http/dto"
	"economia/src/app/http/response"
	"economia/src/core/usecase"
)

type CategoryHandler struct {
	categoryService *usecase.CategoryService
}

func NewCategoryHandler(categoryService *usecase.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List returns every category.
// GET /api/categorias
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		fail(c, err, "Erro ao buscar categorias")
		return
	}
	response.OK(c, dto.CategoryListResponse{Categorias: cats})
}
