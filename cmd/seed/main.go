// Command seed wipes and repopulates the database with demo data:
// two accounts (one admin), five volunteers and three events.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/dfspolti/agenda-voluntarios/internal/config"
	"github.com/dfspolti/agenda-voluntarios/internal/logger"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("config load failed")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, db); err != nil {
		zlog.Fatal().Err(err).Msg("seed failed")
	}
	zlog.Info().Msg("seed concluído")
}

func run(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `TRUNCATE event_volunteers, events, volunteers, users RESTART IDENTITY`)
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	if err := seedUsers(ctx, tx); err != nil {
		return err
	}
	volunteerIDs, err := seedVolunteers(ctx, tx)
	if err != nil {
		return err
	}
	if err := seedEvents(ctx, tx, volunteerIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func seedUsers(ctx context.Context, tx *sql.Tx) error {
	users := []struct {
		email, password, role string
	}{
		{"usuario@ifrs.edu.br", "senha123", "user"},
		{"admin@ifrs.edu.br", "admin123", "admin"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3)`,
			u.email, string(hash), u.role)
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.email, err)
		}
	}
	return nil
}

func seedVolunteers(ctx context.Context, tx *sql.Tx) ([]int64, error) {
	ids := make([]int64, 0, 5)
	for i := 1; i <= 5; i++ {
		var id int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO volunteers (name, phone) VALUES ($1, $2) RETURNING id`,
			fmt.Sprintf("Voluntario %d", i), fmt.Sprintf("(54) 99999-999%d", i)).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert volunteer %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedEvents(ctx context.Context, tx *sql.Tx, volunteers []int64) error {
	start := time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 10, 17, 0, 0, 0, time.UTC)

	// volunteer index lists per event, 1-3 names each
	assignments := [][]int{
		{0, 1},
		{1, 2, 3},
		{3, 4},
	}

	for i, assigned := range assignments {
		var id int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO events (title, description, location, start_date, end_date)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			fmt.Sprintf("Evento %d", i+1),
			fmt.Sprintf("Descrição do evento %d", i+1),
			"Campus Sertão",
			start.AddDate(0, 0, i), end.AddDate(0, 0, i)).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert event %d: %w", i+1, err)
		}
		for _, vi := range assigned {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO event_volunteers (event_id, volunteer_id) VALUES ($1, $2)`,
				id, volunteers[vi])
			if err != nil {
				return fmt.Errorf("associate event %d: %w", i+1, err)
			}
		}
	}
	return nil
}
