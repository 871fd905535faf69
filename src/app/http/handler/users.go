package handler

import (
	"github.com/gin-gonic/gin"

	"economia/src/app/http/dto"
	"economia/src/app/http/response"
	"economia/src/core/usecase"
)

// UserHandler handles /api/usuarios.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns active users without their credentials.
// GET /api/usuarios?limit=&offset=
func (h *UserHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if err := bindQuery(c, &q); err != nil {
		bindFailed(c, err, "", "Parâmetros de paginação inválidos")
		return
	}

	list, err := h.userService.List(c.Request.Context(), q.ToPage())
	if err != nil {
		fail(c, err, "Erro ao buscar usuários")
		return
	}

	response.OK(c, dto.UserListResponse{Usuarios: list.Usuarios, Total: list.Total})
}

// Create registers a user.
// POST /api/usuarios
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "Nome, email e senha são obrigatórios", invalidBody)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, err, "Erro ao criar usuário")
		return
	}

	response.Created(c, user)
}

// Deactivate marks a user inactive.
// DELETE /api/usuarios/:id
func (h *UserHandler) Deactivate(c *gin.Context) {
	var uri dto.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		bindFailed(c, err, "", "ID de usuário inválido")
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), uri.ID); err != nil {
		fail(c, err, "Erro ao desativar usuário")
		return
	}

	response.NoContent(c)
}
