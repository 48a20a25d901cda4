package volunteer

import (
	"context"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
)

type VolunteerRepo interface {
	Create(ctx context.Context, v *domain.Volunteer) error
	Update(ctx context.Context, v *domain.Volunteer) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Volunteer, error)
	List(ctx context.Context) ([]*domain.Volunteer, error)
}

type Service struct {
	repo VolunteerRepo
}

func New(repo VolunteerRepo) *Service { return &Service{repo: repo} }

func (s *Service) List(ctx context.Context) ([]*domain.Volunteer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Volunteer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, name, phone string, email *string) (*domain.Volunteer, error) {
	v, err := domain.NewVolunteer(name, phone, email)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id int64, name, phone string, email *string) (*domain.Volunteer, error) {
	v, err := domain.NewVolunteer(name, phone, email)
	if err != nil {
		return nil, err
	}
	v.ID = id

	ok, err := s.repo.Update(ctx, v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("Voluntário não encontrado")
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("Voluntário não encontrado")
	}
	return nil
}
