package dto

import (
	"economia/src/core/domain"
	"economia/src/core/usecase"
)

// PageQuery is the limit/offset query string shared by listings.
type PageQuery struct {
	Limit  int `form:"limit,default=10" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

func (q *PageQuery) ToPage() domain.Page {
	return domain.Page{Limit: q.Limit, Offset: q.Offset}
}

// UserListResponse is the body of GET /api/usuarios.
// domain.User never serializes its credential hash.
type UserListResponse struct {
	Usuarios []domain.User `json:"usuarios"`
	Total    int64         `json:"total"`
}

// CreateUserRequest is the payload of POST /api/usuarios.
type CreateUserRequest struct {
	Nome     string  `json:"nome" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Senha    string  `json:"senha" binding:"required"`
	Telefone *string `json:"telefone"`
}

func (r *CreateUserRequest) ToInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Nome:     r.Nome,
		Email:    r.Email,
		Senha:    r.Senha,
		Telefone: r.Telefone,
	}
}

// UserURI binds the :id path parameter.
type UserURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}
