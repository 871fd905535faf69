package dto

import "economia/src/core/domain"

// CategoryListResponse is the body of GET /api/categorias.
type CategoryListResponse struct {
	Categorias []domain.Category `json:"categorias"`
}
