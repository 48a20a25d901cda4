package handlers

import (
	"net/http"

	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/dto"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Home is the public landing route.
func (h *HealthHandler) Home(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, dto.MessageResp{Message: "API de eventos e voluntários"})
}
