package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/dto"
)

func TestDecodeJSON(t *testing.T) {
	t.Run("decodes_valid_body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
		var req dto.LoginReq
		assert.NoError(t, DecodeJSON(r, &req))
		assert.Equal(t, "a@b.com", req.Email)
	})

	t.Run("rejects_unknown_fields", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com","hack":true}`))
		var req dto.LoginReq
		assert.Error(t, DecodeJSON(r, &req))
	})
}

func TestStruct(t *testing.T) {
	t.Run("valid_register", func(t *testing.T) {
		err := Struct(dto.RegisterReq{Email: "admin@ifrs.edu.br", Password: "admin123", Role: "admin"})
		assert.NoError(t, err)
	})

	t.Run("missing_fields", func(t *testing.T) {
		err := Struct(dto.RegisterReq{})
		assert.Error(t, err)
		ae := err.(*domain.AppError)
		assert.Equal(t, domain.CodeValidation, ae.Code)
		assert.Contains(t, ae.Message, "obrigatório")
	})

	t.Run("bad_email", func(t *testing.T) {
		err := Struct(dto.LoginReq{Email: "not-an-email", Password: "x"})
		assert.Error(t, err)
		assert.Contains(t, err.(*domain.AppError).Message, "Email inválido")
	})

	t.Run("bad_role", func(t *testing.T) {
		err := Struct(dto.RegisterReq{Email: "a@b.com", Password: "senha123", Role: "root"})
		assert.Error(t, err)
	})

	t.Run("short_password", func(t *testing.T) {
		err := Struct(dto.RegisterReq{Email: "a@b.com", Password: "123"})
		assert.Error(t, err)
		assert.Contains(t, err.(*domain.AppError).Message, "mínimo")
	})
}
