package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
)

type errorBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Error().Err(err).Msg("encode response failed")
	}
}

// Err maps a tagged AppError to its HTTP status and writes a {message} body.
// Anything untagged stays in the logs and surfaces as a plain 500.
func Err(w http.ResponseWriter, err error) {
	var ae *domain.AppError
	if errors.As(err, &ae) {
		JSON(w, statusFromCode(ae.Code), errorBody{Message: ae.Message})
		return
	}

	zlog.Error().Err(err).Msg("unhandled error")
	JSON(w, http.StatusInternalServerError, errorBody{Message: "Erro interno do servidor"})
}

func statusFromCode(code domain.ErrCode) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
