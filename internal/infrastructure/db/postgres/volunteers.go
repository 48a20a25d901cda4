package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
)

type VolunteersRepo struct {
	db *sql.DB
}

func NewVolunteersRepo(db *sql.DB) *VolunteersRepo { return &VolunteersRepo{db: db} }

func (r *VolunteersRepo) Create(ctx context.Context, v *domain.Volunteer) error {
	return r.db.QueryRowContext(ctx, insertVolunteerSQL,
		v.Name, v.Phone, v.Email,
	).Scan(&v.ID, &v.CreatedAt)
}

func (r *VolunteersRepo) Update(ctx context.Context, v *domain.Volunteer) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateVolunteerSQL, v.ID, v.Name, v.Phone, v.Email)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *VolunteersRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteVolunteerSQL, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *VolunteersRepo) GetByID(ctx context.Context, id int64) (*domain.Volunteer, error) {
	var v domain.Volunteer
	err := r.db.QueryRowContext(ctx, getVolunteerSQL, id).Scan(
		&v.ID, &v.Name, &v.Phone, &v.Email, &v.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("Voluntário não encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VolunteersRepo) List(ctx context.Context) ([]*domain.Volunteer, error) {
	rows, err := r.db.QueryContext(ctx, listVolunteersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Volunteer
	for rows.Next() {
		var v domain.Volunteer
		if err := rows.Scan(&v.ID, &v.Name, &v.Phone, &v.Email, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ExistingIDs returns the subset of ids that are present in the volunteers
// table. Callers compute the set difference against what they asked for.
func (r *VolunteersRepo) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, existingVolunteerIDsSQL, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
