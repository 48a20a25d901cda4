package handlers

import (
	"net/http"

	"github.com/dfspolti/agenda-voluntarios/internal/application/auth"
	"github.com/dfspolti/agenda-voluntarios/internal/domain"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/dto"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/response"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/validate"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("Corpo da requisição inválido"))
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	id, err := h.svc.Register(r.Context(), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.RegisterResp{
		Message: "Usuário registrado com sucesso",
		ID:      id,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("Corpo da requisição inválido"))
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	token, user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.LoginResp{
		Token: token,
		User:  dto.UserResp{Email: user.Email, Role: string(user.Role)},
	})
}
