package handlers

import (
	"net/http"

	"github.com/dfspolti/agenda-voluntarios/internal/application/volunteer"
	"github.com/dfspolti/agenda-voluntarios/internal/domain"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/dto"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/response"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/validate"
)

type VolunteersHandler struct {
	svc *volunteer.Service
}

func NewVolunteersHandler(svc *volunteer.Service) *VolunteersHandler {
	return &VolunteersHandler{svc: svc}
}

func (h *VolunteersHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.VolunteerListResp{
		Message:    "Lista de voluntários",
		Volunteers: dto.ToVolunteerList(items),
	})
}

func (h *VolunteersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.VolunteerEnvelope{
		Message:   "Voluntário encontrado",
		Volunteer: dto.ToVolunteerResp(v),
	})
}

func (h *VolunteersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.VolunteerReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("Corpo da requisição inválido"))
		return
	}

	v, err := h.svc.Create(r.Context(), req.Name, req.Phone, req.Email)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.VolunteerEnvelope{
		Message:   "Voluntário criado com sucesso",
		Volunteer: dto.ToVolunteerResp(v),
	})
}

func (h *VolunteersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	var req dto.VolunteerReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("Corpo da requisição inválido"))
		return
	}

	v, err := h.svc.Update(r.Context(), id, req.Name, req.Phone, req.Email)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.VolunteerEnvelope{
		Message:   "Voluntário atualizado com sucesso",
		Volunteer: dto.ToVolunteerResp(v),
	})
}

func (h *VolunteersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.MessageResp{Message: "Voluntário excluído com sucesso"})
}
