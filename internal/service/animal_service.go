package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pawrescue-be/internal/dto"
	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/pkg/apperror"
	"pawrescue-be/internal/repository/scope"
	"pawrescue-be/internal/repository/specification"
	"pawrescue-be/internal/repository/unitofwork"
	"pawrescue-be/pkg/access"
	"pawrescue-be/pkg/cache"
	"pawrescue-be/pkg/events"
	pktNats "pawrescue-be/pkg/nats"
	"pawrescue-be/pkg/workflow"

	"github.com/google/uuid"
)

// AnimalCachePrefix keys the cached catalog listings. Every animal mutation
// invalidates this prefix.
const AnimalCachePrefix = "animals"

type IAnimalService interface {
	List(ctx context.Context, query *dto.ListAnimalsQuery) ([]*dto.AnimalResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error)
	Create(ctx context.Context, req *dto.CreateAnimalRequest) (*dto.CreateAnimalResponse, error)
	Update(ctx context.Context, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error)
	UpdateStatus(ctx context.Context, role access.Role, req *dto.UpdateAnimalStatusRequest) (*dto.AnimalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type animalService struct {
	uowFactory       unitofwork.RepositoryFactory
	queryCache       *cache.QueryCache
	cacheTTL         time.Duration
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewAnimalService(
	uowFactory unitofwork.RepositoryFactory,
	queryCache *cache.QueryCache,
	cacheTTL time.Duration,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IAnimalService {
	return &animalService{
		uowFactory:       uowFactory,
		queryCache:       queryCache,
		cacheTTL:         cacheTTL,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func toAnimalResponse(a *entity.Animal) *dto.AnimalResponse {
	return &dto.AnimalResponse{
		Id:          a.Id,
		Name:        a.Name,
		Species:     string(a.Species),
		Breed:       a.Breed,
		Age:         a.Age,
		PhotoURL:    a.PhotoURL,
		Description: a.Description,
		Status:      string(a.Status),
		Location:    a.Location,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// invalidateListings asks the cache worker to drop the catalog entries. The
// request never waits on (or fails because of) cache plumbing.
func (s *animalService) invalidateListings(ctx context.Context) {
	if s.publisherService == nil {
		return
	}
	payload, _ := json.Marshal(dto.CacheInvalidationMessage{Prefix: AnimalCachePrefix})
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish cache invalidation: %v\n", err)
	}
}

func (s *animalService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func (s *animalService) List(ctx context.Context, query *dto.ListAnimalsQuery) ([]*dto.AnimalResponse, error) {
	cacheKey := cache.Key(AnimalCachePrefix, map[string]string{
		"species": query.Species,
		"status":  query.Status,
		"search":  query.Search,
	})

	var cached []*dto.AnimalResponse
	if s.queryCache != nil && s.queryCache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	specs := []specification.Specification{
		specification.Scoped{Scope: scope.OrderByCreatedDesc},
	}
	if query.Species != "" {
		specs = append(specs, specification.BySpecies{Species: query.Species})
	}
	if query.Status != "" {
		specs = append(specs, specification.ByStatus{Status: query.Status})
	}
	if query.Search != "" {
		specs = append(specs, specification.AnimalSearchQuery{Query: query.Search})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	animals, err := uow.AnimalRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	res := make([]*dto.AnimalResponse, 0, len(animals))
	for _, a := range animals {
		res = append(res, toAnimalResponse(a))
	}

	if s.queryCache != nil {
		s.queryCache.Set(ctx, cacheKey, res, s.cacheTTL)
	}

	return res, nil
}

func (s *animalService) Show(ctx context.Context, id uuid.UUID) (*dto.AnimalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if animal == nil {
		return nil, apperror.NotFound("animal not found")
	}

	return toAnimalResponse(animal), nil
}

func (s *animalService) Create(ctx context.Context, req *dto.CreateAnimalRequest) (*dto.CreateAnimalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal := &entity.Animal{
		Id:          uuid.New(),
		Name:        req.Name,
		Species:     entity.AnimalSpecies(req.Species),
		Breed:       req.Breed,
		Age:         req.Age.Int(),
		PhotoURL:    req.PhotoURL,
		Description: req.Description,
		Status:      entity.AnimalStatusAvailable,
		Location:    req.Location,
		CreatedAt:   time.Now(),
	}

	if err := uow.AnimalRepository().Create(ctx, animal); err != nil {
		return nil, apperror.Persistence(err)
	}

	s.publishEvent(ctx, events.AnimalCreated, map[string]interface{}{
		"animal_id":   animal.Id,
		"animal_name": animal.Name,
		"entity_type": "animal",
		"entity_id":   animal.Id.String(),
	})
	s.invalidateListings(ctx)

	return &dto.CreateAnimalResponse{Id: animal.Id, Status: string(animal.Status)}, nil
}

func (s *animalService) Update(ctx context.Context, req *dto.UpdateAnimalRequest) (*dto.AnimalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if animal == nil {
		return nil, apperror.NotFound("animal not found")
	}

	now := time.Now()
	animal.Name = req.Name
	animal.Species = entity.AnimalSpecies(req.Species)
	animal.Breed = req.Breed
	animal.Age = req.Age.Int()
	animal.PhotoURL = req.PhotoURL
	animal.Description = req.Description
	animal.Location = req.Location
	animal.UpdatedAt = &now

	if err := uow.AnimalRepository().Update(ctx, animal); err != nil {
		return nil, apperror.Persistence(err)
	}

	s.invalidateListings(ctx)

	return toAnimalResponse(animal), nil
}

func (s *animalService) UpdateStatus(ctx context.Context, role access.Role, req *dto.UpdateAnimalStatusRequest) (*dto.AnimalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if animal == nil {
		return nil, apperror.NotFound("animal not found")
	}

	if err := workflow.Check(workflow.KindAnimal, string(animal.Status), req.Status, role); err != nil {
		return nil, err
	}

	previous := string(animal.Status)
	now := time.Now()
	animal.Status = entity.AnimalStatus(req.Status)
	animal.UpdatedAt = &now

	if err := uow.AnimalRepository().Update(ctx, animal); err != nil {
		return nil, apperror.Persistence(err)
	}

	s.publishEvent(ctx, events.AnimalStatusChanged, map[string]interface{}{
		"animal_id":   animal.Id,
		"animal_name": animal.Name,
		"from":        previous,
		"to":          string(animal.Status),
		"entity_type": "animal",
		"entity_id":   animal.Id.String(),
	})
	s.invalidateListings(ctx)

	return toAnimalResponse(animal), nil
}

// Delete removes the animal and everything hanging off it: adoption
// requests, rescue reports, treatment records and progress notes go in the
// same transaction so no orphan rows survive a partial failure.
func (s *animalService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperror.Persistence(err)
	}
	if animal == nil {
		return apperror.NotFound("animal not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperror.Persistence(err)
	}
	defer uow.Rollback()

	if err := uow.AdoptionRepository().DeleteAllByAnimalId(ctx, id); err != nil {
		return apperror.Persistence(err)
	}
	if err := uow.ReportRepository().DeleteAllByAnimalId(ctx, id); err != nil {
		return apperror.Persistence(err)
	}
	if err := uow.TreatmentRepository().DeleteAllByAnimalId(ctx, id); err != nil {
		return apperror.Persistence(err)
	}
	if err := uow.ProgressRepository().DeleteAllByAnimalId(ctx, id); err != nil {
		return apperror.Persistence(err)
	}
	if err := uow.AnimalRepository().Delete(ctx, id); err != nil {
		return apperror.Persistence(err)
	}

	if err := uow.Commit(); err != nil {
		return apperror.Persistence(err)
	}

	s.publishEvent(ctx, events.AnimalDeleted, map[string]interface{}{
		"animal_id":   id,
		"animal_name": animal.Name,
	})
	s.invalidateListings(ctx)

	return nil
}
