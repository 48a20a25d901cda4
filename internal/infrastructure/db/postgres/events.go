package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo { return &EventsRepo{db: db} }

// Create inserts the event row and its association rows in one transaction,
// so a failure midway never leaves partial association state.
func (r *EventsRepo) Create(ctx context.Context, e *domain.Event) (int64, error) {
	var id int64
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, insertEventSQL,
			e.Title, e.Description, e.Location, e.StartDate, e.EndDate,
		).Scan(&id, &e.CreatedAt); err != nil {
			return err
		}
		return insertAssociations(ctx, tx, id, e.VolunteerIDs)
	})
	if err != nil {
		return 0, err
	}
	e.ID = id
	return id, nil
}

// Update replaces the event row and its associations wholesale
// (delete existing links, insert the new set) inside one transaction.
func (r *EventsRepo) Update(ctx context.Context, e *domain.Event) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, updateEventSQL,
			e.ID, e.Title, e.Description, e.Location, e.StartDate, e.EndDate,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, deleteEventVolunteersSQL, e.ID); err != nil {
			return err
		}
		return insertAssociations(ctx, tx, e.ID, e.VolunteerIDs)
	})
}

// Delete removes the event row; association rows go away via ON DELETE CASCADE.
func (r *EventsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteEventSQL, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var e domain.Event
	err := r.db.QueryRowContext(ctx, getEventSQL, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.StartDate, &e.EndDate, &e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("Evento não encontrado")
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, getEventVolunteersSQL, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var vid int64
		var name string
		if err := rows.Scan(&vid, &name); err != nil {
			return nil, err
		}
		e.VolunteerIDs = append(e.VolunteerIDs, vid)
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	e.Volunteers = strings.Join(names, ", ")
	return &e, nil
}

func (r *EventsRepo) List(ctx context.Context) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Location,
			&e.StartDate, &e.EndDate, &e.CreatedAt, &e.Volunteers,
		); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func insertAssociations(ctx context.Context, tx *sql.Tx, eventID int64, volunteerIDs []int64) error {
	for _, vid := range volunteerIDs {
		if _, err := tx.ExecContext(ctx, insertEventVolunteerSQL, eventID, vid); err != nil {
			return err
		}
	}
	return nil
}

func (r *EventsRepo) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}

	defer func() {
		// Safety: in case fn panics, rollback to avoid leaked tx.
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
