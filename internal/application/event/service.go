package event

import (
	"context"
	"fmt"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
)

const cacheKeyList = "events:list"

func cacheKeyDetails(id int64) string { return fmt.Sprintf("event:%d", id) }

type Service struct {
	repo       EventRepo
	volunteers VolunteerLookup
	cache      Cache

	ttlDetails time.Duration
	ttlList    time.Duration
}

func New(repo EventRepo, volunteers VolunteerLookup, cache Cache, ttlDetails, ttlList time.Duration) *Service {
	if ttlDetails == 0 {
		ttlDetails = 5 * time.Minute
	}
	if ttlList == 0 {
		ttlList = 15 * time.Second
	}
	return &Service{
		repo:       repo,
		volunteers: volunteers,
		cache:      cache,
		ttlDetails: ttlDetails,
		ttlList:    ttlList,
	}
}

type Cmd struct {
	Title        string
	Description  string
	Location     string
	StartDate    time.Time
	EndDate      *time.Time
	VolunteerIDs []int64
}

// List returns all events ordered by start date, each carrying the joined
// volunteer names. Reads go through the cache when one is configured.
func (s *Service) List(ctx context.Context) ([]*domain.Event, error) {
	if s.cache != nil {
		var cached []*domain.Event
		found, err := s.cache.Get(ctx, cacheKeyList, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", cacheKeyList).Msg("cache get failed")
		} else if found {
			return cached, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(items) > 0 {
		if err := s.cache.Set(ctx, cacheKeyList, items, s.ttlList); err != nil {
			zlog.Warn().Err(err).Str("key", cacheKeyList).Msg("cache set failed")
		}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Event, error) {
	key := cacheKeyDetails(id)
	if s.cache != nil {
		var cached domain.Event
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			return &cached, nil
		}
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, e, s.ttlDetails); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return e, nil
}

// Create validates the payload, checks that every referenced volunteer exists
// and persists the event plus its associations. Returns the stored projection.
func (s *Service) Create(ctx context.Context, cmd Cmd) (*domain.Event, error) {
	e, err := domain.NewEvent(cmd.Title, cmd.Description, cmd.Location, cmd.StartDate, cmd.EndDate, cmd.VolunteerIDs)
	if err != nil {
		return nil, err
	}
	if err := s.checkVolunteersExist(ctx, e.VolunteerIDs); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cacheKeyList)
	return s.repo.GetByID(ctx, id)
}

// Update re-applies the create validations and replaces the volunteer
// associations wholesale.
func (s *Service) Update(ctx context.Context, id int64, cmd Cmd) (*domain.Event, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	e, err := domain.NewEvent(cmd.Title, cmd.Description, cmd.Location, cmd.StartDate, cmd.EndDate, cmd.VolunteerIDs)
	if err != nil {
		return nil, err
	}
	if err := s.checkVolunteersExist(ctx, e.VolunteerIDs); err != nil {
		return nil, err
	}

	e.ID = id
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	s.invalidate(ctx, cacheKeyList, cacheKeyDetails(id))
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("Evento não encontrado")
	}
	s.invalidate(ctx, cacheKeyList, cacheKeyDetails(id))
	return nil
}

func (s *Service) checkVolunteersExist(ctx context.Context, ids []int64) error {
	existing, err := s.volunteers.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}
	if missing := domain.MissingVolunteers(ids, existing); len(missing) > 0 {
		return domain.ErrValidation("Um ou mais voluntários fornecidos não existem")
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		zlog.Warn().Err(err).Strs("keys", keys).Msg("cache invalidate failed")
	}
}
