package handlers

import (
	"fmt"
	"net/http"

	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/dto"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/middleware"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/response"
)

// ProtectedHandler serves the greeting endpoints behind the auth chain.
type ProtectedHandler struct{}

func NewProtectedHandler() *ProtectedHandler { return &ProtectedHandler{} }

func (h *ProtectedHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, dto.MessageResp{
		Message: fmt.Sprintf("Bem-vindo ao painel, %s", middleware.Email(r)),
	})
}

func (h *ProtectedHandler) Admin(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, dto.MessageResp{
		Message: fmt.Sprintf("Bem-vindo à área admin, %s", middleware.Email(r)),
	})
}
