package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dfspolti/agenda-voluntarios/internal/application/event"
	"github.com/dfspolti/agenda-voluntarios/internal/domain"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/dto"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/response"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/validate"
)

type EventsHandler struct {
	svc *event.Service
}

func NewEventsHandler(svc *event.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

// List is public: every event ordered by start date, volunteer names joined.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToEventList(items))
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToEventResp(e))
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("Corpo da requisição inválido"))
		return
	}

	e, err := h.svc.Create(r.Context(), eventCmd(req))
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.EventEnvelope{
		Message: "Evento criado com sucesso",
		Event:   dto.ToEventResp(e),
	})
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	var req dto.EventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("Corpo da requisição inválido"))
		return
	}

	e, err := h.svc.Update(r.Context(), id, eventCmd(req))
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.EventEnvelope{
		Message: "Evento atualizado com sucesso",
		Event:   dto.ToEventResp(e),
	})
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Err(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.MessageResp{Message: "Evento excluído com sucesso"})
}

func eventCmd(req dto.EventReq) event.Cmd {
	return event.Cmd{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		VolunteerIDs: req.VolunteerIDs,
	}
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrValidation("ID inválido")
	}
	return id, nil
}
