package security_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
	"github.com/dfspolti/agenda-voluntarios/internal/security"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := security.NewTokenManager("supersecret", time.Hour)

	t.Run("round_trip", func(t *testing.T) {
		token, err := m.Issue("admin@ifrs.edu.br", domain.RoleAdmin, time.Now())
		assert.NoError(t, err)

		claims, err := m.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "admin@ifrs.edu.br", claims.Email)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("missing_token", func(t *testing.T) {
		_, err := m.Verify("  ")
		assert.ErrorIs(t, err, security.ErrTokenMissing)
	})

	t.Run("malformed_token", func(t *testing.T) {
		_, err := m.Verify("not.a.jwt")
		assert.ErrorIs(t, err, security.ErrTokenMalformed)
	})

	t.Run("expired_token", func(t *testing.T) {
		token, err := m.Issue("usuario@ifrs.edu.br", domain.RoleUser, time.Now().Add(-2*time.Hour))
		assert.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, security.ErrTokenExpired)
	})

	t.Run("wrong_signature", func(t *testing.T) {
		other := security.NewTokenManager("othersecret", time.Hour)
		token, _ := other.Issue("usuario@ifrs.edu.br", domain.RoleUser, time.Now())

		_, err := m.Verify(token)
		assert.ErrorIs(t, err, security.ErrTokenMalformed)
	})

	t.Run("wrong_algorithm", func(t *testing.T) {
		jc := jwt.MapClaims{
			"email": "usuario@ifrs.edu.br", "role": "user",
			"exp": time.Now().Add(time.Hour).Unix(),
		}
		tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jc)
		s, _ := tok.SignedString([]byte("supersecret"))

		_, err := m.Verify(s)
		assert.ErrorIs(t, err, security.ErrTokenMalformed)
	})

	t.Run("expiry_is_one_hour", func(t *testing.T) {
		now := time.Unix(1700000000, 0)
		token, err := m.Issue("usuario@ifrs.edu.br", domain.RoleUser, now)
		assert.NoError(t, err)

		claims, err := m.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	})
}
