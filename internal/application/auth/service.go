package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
	"github.com/dfspolti/agenda-voluntarios/internal/security"
)

type Clock interface{ Now() time.Time }

type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// Service is the credential store: it registers users and verifies logins,
// handing out session tokens on success.
type Service struct {
	users  UserRepo
	tokens *security.TokenManager
	clock  Clock
}

func New(users UserRepo, tokens *security.TokenManager, clock Clock) *Service {
	return &Service{users: users, tokens: tokens, clock: clock}
}

// Register hashes the password and persists the user. Duplicate emails are
// rejected with a conflict error (exact, case-sensitive match).
func (s *Service) Register(ctx context.Context, email, password string, role domain.Role) (int64, error) {
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return 0, domain.ErrValidation("Role inválido")
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return 0, domain.ErrConflict("Usuário já existe")
	}
	var ae *domain.AppError
	if !errors.As(err, &ae) || ae.Code != domain.CodeNotFound {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, domain.ErrInternal("Erro ao processar a senha")
	}

	u := &domain.User{Email: email, PasswordHash: string(hash), Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Login verifies the credentials and issues a session token. Both unknown
// email and wrong password come back as unauthorized; the hash never leaves
// this function.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		var ae *domain.AppError
		if errors.As(err, &ae) && ae.Code == domain.CodeNotFound {
			return "", nil, domain.ErrUnauthorized("Usuário não encontrado")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthorized("Senha inválida")
	}

	token, err := s.tokens.Issue(u.Email, u.Role, s.clock.Now())
	if err != nil {
		return "", nil, domain.ErrInternal("Erro ao gerar o token")
	}

	u.PasswordHash = ""
	return token, u, nil
}
