package event

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
	rediscache "github.com/dfspolti/agenda-voluntarios/internal/infrastructure/caching/redis"
)

type memRepo struct {
	events map[int64]*domain.Event
	nextID int64
}

func newMemRepo() *memRepo {
	return &memRepo{events: make(map[int64]*domain.Event), nextID: 1}
}

func (m *memRepo) Create(_ context.Context, e *domain.Event) (int64, error) {
	cp := *e
	cp.ID = m.nextID
	cp.CreatedAt = time.Now()
	m.nextID++
	m.events[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound("Evento não encontrado")
	}
	cp := *e
	return &cp, nil
}

func (m *memRepo) Update(_ context.Context, e *domain.Event) error {
	stored, ok := m.events[e.ID]
	if !ok {
		return domain.ErrNotFound("Evento não encontrado")
	}
	cp := *e
	cp.CreatedAt = stored.CreatedAt
	m.events[e.ID] = &cp
	return nil
}

func (m *memRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := m.events[id]
	delete(m.events, id)
	return ok, nil
}

func (m *memRepo) List(_ context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(m.events))
	for _, e := range m.events {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

type fakeLookup struct{ existing []int64 }

func (f fakeLookup) ExistingIDs(_ context.Context, ids []int64) ([]int64, error) {
	known := make(map[int64]bool, len(f.existing))
	for _, id := range f.existing {
		known[id] = true
	}
	var out []int64
	for _, id := range ids {
		if known[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func validCmd(volunteerIDs ...int64) Cmd {
	start := time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	return Cmd{
		Title:        "Evento 1",
		Description:  "Descrição do evento 1",
		Location:     "Campus Sertão",
		StartDate:    start,
		EndDate:      &end,
		VolunteerIDs: volunteerIDs,
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := New(newMemRepo(), fakeLookup{existing: []int64{1, 2, 3}}, nil, 0, 0)

	e, err := svc.Create(context.Background(), validCmd(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.ID)

	got, err := svc.Get(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evento 1", got.Title)
	assert.Equal(t, []int64{1, 2}, got.VolunteerIDs)
}

func TestCreateRejectsMissingVolunteers(t *testing.T) {
	svc := New(newMemRepo(), fakeLookup{existing: []int64{1}}, nil, 0, 0)

	_, err := svc.Create(context.Background(), validCmd(1, 99))
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeValidation, appErr.Code)
	assert.Equal(t, "Um ou mais voluntários fornecidos não existem", appErr.Message)
}

func TestCreateRejectsCardinality(t *testing.T) {
	svc := New(newMemRepo(), fakeLookup{existing: []int64{1, 2, 3, 4}}, nil, 0, 0)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCmd())
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "O evento deve ter no mínimo 1 voluntário", appErr.Message)

	_, err = svc.Create(ctx, validCmd(1, 2, 3, 4))
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "O evento pode ter no máximo 3 voluntários", appErr.Message)
}

func TestUpdateUnknownEvent(t *testing.T) {
	svc := New(newMemRepo(), fakeLookup{existing: []int64{1}}, nil, 0, 0)

	_, err := svc.Update(context.Background(), 42, validCmd(1))
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeNotFound, appErr.Code)
}

func TestUpdateReplacesVolunteers(t *testing.T) {
	svc := New(newMemRepo(), fakeLookup{existing: []int64{1, 2, 3}}, nil, 0, 0)
	ctx := context.Background()

	e, err := svc.Create(ctx, validCmd(1, 2))
	require.NoError(t, err)

	cmd := validCmd(3)
	cmd.Title = "Evento 1 (atualizado)"
	got, err := svc.Update(ctx, e.ID, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Evento 1 (atualizado)", got.Title)
	assert.Equal(t, []int64{3}, got.VolunteerIDs)
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	svc := New(newMemRepo(), fakeLookup{existing: []int64{1}}, nil, 0, 0)
	ctx := context.Background()

	e, err := svc.Create(ctx, validCmd(1))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, e.ID))

	err = svc.Delete(ctx, e.ID)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeNotFound, appErr.Code)
	assert.Equal(t, "Evento não encontrado", appErr.Message)
}

func cacheForTest(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rediscache.NewFromClient(rdb), mr
}

func TestListServesFromCache(t *testing.T) {
	repo := newMemRepo()
	cache, _ := cacheForTest(t)
	svc := New(repo, fakeLookup{existing: []int64{1}}, cache, 0, 0)
	ctx := context.Background()

	e, err := svc.Create(ctx, validCmd(1))
	require.NoError(t, err)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// mutate the repo behind the cache's back; within the TTL the list
	// still serves the snapshot
	delete(repo.events, e.ID)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestMutationsInvalidateCache(t *testing.T) {
	repo := newMemRepo()
	cache, mr := cacheForTest(t)
	svc := New(repo, fakeLookup{existing: []int64{1, 2}}, cache, 0, 0)
	ctx := context.Background()

	e, err := svc.Create(ctx, validCmd(1))
	require.NoError(t, err)

	_, err = svc.List(ctx)
	require.NoError(t, err)
	assert.True(t, mr.Exists("events:list"))

	_, err = svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, mr.Exists("event:1"))

	_, err = svc.Update(ctx, e.ID, validCmd(2))
	require.NoError(t, err)
	assert.False(t, mr.Exists("events:list"))
	assert.False(t, mr.Exists("event:1"))

	_, err = svc.List(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, e.ID))
	assert.False(t, mr.Exists("events:list"))
}

func TestCacheOutageFallsThrough(t *testing.T) {
	repo := newMemRepo()
	cache, mr := cacheForTest(t)
	svc := New(repo, fakeLookup{existing: []int64{1}}, cache, 0, 0)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCmd(1))
	require.NoError(t, err)

	mr.Close()

	// reads must still succeed when the cache is down
	out, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
