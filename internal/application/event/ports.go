package event

import (
	"context"
	"time"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

// VolunteerLookup answers which of the requested volunteer ids actually exist.
type VolunteerLookup interface {
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
