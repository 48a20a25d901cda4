package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo { return &UsersRepo{db: db} }

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	var role string
	err := r.db.QueryRowContext(ctx, getUserByEmailSQL, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &role, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("Usuário não encontrado")
	}
	if err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}

func (r *UsersRepo) Create(ctx context.Context, u *domain.User) error {
	err := r.db.QueryRowContext(ctx, insertUserSQL,
		u.Email, u.PasswordHash, string(u.Role),
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		// backstop for the unique index; the service checks first, but two
		// concurrent registrations can still race
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.ErrConflict("Usuário já existe")
		}
		return err
	}
	return nil
}
