package usecase

import (
	"context"
	"errors"
	"fmt"

	"event-booking/internal/cms"
	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListPackages(ctx context.Context) ([]response.PackageResponse, error)
	ListTables(ctx context.Context) ([]response.TableResponse, error)
	GetEvent(ctx context.Context, eventID int64, lang string) (cms.Event, error)
}

type catalogService struct {
	repo   *repository.Repository
	events cms.Client
	cache  CatalogCache
	log    *zap.Logger
}

func NewCatalogService(repo *repository.Repository, events cms.Client, cache CatalogCache, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		events: events,
		cache:  cache,
		log:    log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListPackages(ctx context.Context) ([]response.PackageResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.GetPackages(ctx)
		if err != nil {
			s.log.Warn("Package cache read failed", zap.Error(err))
		} else if cached != nil {
			return packagesToResponses(cached), nil
		}
	}

	packages, err := s.repo.Package.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetPackages(ctx, packages); err != nil {
			s.log.Warn("Package cache write failed", zap.Error(err))
		}
	}

	return packagesToResponses(packages), nil
}

func (s *catalogService) ListTables(ctx context.Context) ([]response.TableResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.GetTables(ctx)
		if err != nil {
			s.log.Warn("Table cache read failed", zap.Error(err))
		} else if cached != nil {
			return tablesToResponses(cached), nil
		}
	}

	tables, err := s.repo.Table.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetTables(ctx, tables); err != nil {
			s.log.Warn("Table cache write failed", zap.Error(err))
		}
	}

	return tablesToResponses(tables), nil
}

func (s *catalogService) GetEvent(ctx context.Context, eventID int64, lang string) (cms.Event, error) {
	event, err := s.events.GetEvent(ctx, eventID, lang)
	if err != nil {
		var notFound *cms.NotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("event %d: %w", eventID, ErrNotFound)
		}
		s.log.Error("Failed to fetch event from CMS",
			zap.Error(err),
			zap.Int64("event_id", eventID),
		)
		return nil, fmt.Errorf("fetch event %d: %w: %v", eventID, ErrUpstream, err)
	}

	return event, nil
}

func packagesToResponses(packages []*entity.Package) []response.PackageResponse {
	responses := make([]response.PackageResponse, len(packages))
	for i, pkg := range packages {
		responses[i] = response.PackageToResponse(pkg)
	}
	return responses
}

func tablesToResponses(tables []*entity.Table) []response.TableResponse {
	responses := make([]response.TableResponse, len(tables))
	for i, table := range tables {
		responses[i] = response.TableToResponse(table)
	}
	return responses
}
