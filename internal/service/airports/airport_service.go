package airports

import (
	"context"

	"flightbooking/internal/domain"
	"flightbooking/internal/repository"
)

type AirportUseCase interface {
	List(ctx context.Context) ([]domain.Airport, error)
}

// Cache is the slice of the redis cache this service needs.
type Cache interface {
	GetAirports(ctx context.Context) ([]domain.Airport, error)
	SetAirports(ctx context.Context, airports []domain.Airport) error
}

type AirportService struct {
	repo  repository.AirportRepository
	cache Cache
}

func NewAirportService(repo repository.AirportRepository, cache Cache) *AirportService {
	return &AirportService{repo: repo, cache: cache}
}

// List serves the airports reference list cache-aside: a cache error
// or miss falls through to the database.
func (s *AirportService) List(ctx context.Context) ([]domain.Airport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	airports, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetAirports(ctx, airports)
	}
	return airports, nil
}

var _ AirportUseCase = (*AirportService)(nil)
