package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pawrescue-be/internal/dto"
	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/pkg/apperror"
	"pawrescue-be/internal/pkg/mailer"
	"pawrescue-be/internal/repository/scope"
	"pawrescue-be/internal/repository/specification"
	"pawrescue-be/internal/repository/unitofwork"
	"pawrescue-be/pkg/access"
	"pawrescue-be/pkg/events"
	pktNats "pawrescue-be/pkg/nats"
	"pawrescue-be/pkg/workflow"

	"github.com/google/uuid"
)

type IAdoptionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAdoptionRequest) (*dto.CreateAdoptionResponse, error)
	ListOwn(ctx context.Context, userId uuid.UUID) ([]*dto.AdoptionRequestResponse, error)
	ListAll(ctx context.Context) ([]*dto.AdoptionRequestResponse, error)
	Decide(ctx context.Context, role access.Role, req *dto.DecideAdoptionRequest) (*dto.AdoptionRequestResponse, error)
}

type adoptionService struct {
	uowFactory       unitofwork.RepositoryFactory
	emailService     mailer.IEmailService
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewAdoptionService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IAdoptionService {
	return &adoptionService{
		uowFactory:       uowFactory,
		emailService:     emailService,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func toAdoptionResponse(r *entity.AdoptionRequest, animalName string) *dto.AdoptionRequestResponse {
	return &dto.AdoptionRequestResponse{
		Id:         r.Id,
		AnimalId:   r.AnimalId,
		AnimalName: animalName,
		UserId:     r.UserId,
		Message:    r.Message,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		DecidedAt:  r.DecidedAt,
	}
}

func (s *adoptionService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
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

func (s *adoptionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAdoptionRequest) (*dto.CreateAdoptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. The animal must exist and accept requests in its current state.
	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: req.AnimalId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if animal == nil {
		return nil, apperror.NotFound("animal not found")
	}
	if !animal.OpenForAdoption() {
		return nil, apperror.Transition(fmt.Sprintf("animal is not open for adoption (status: %s)", animal.Status))
	}

	// 2. One pending request per user per animal.
	existing, err := uow.AdoptionRepository().FindOne(ctx,
		specification.ByAnimalID{AnimalID: req.AnimalId},
		specification.OwnedByUser{UserID: userId},
		specification.ByStatus{Status: string(entity.RequestStatusPending)},
	)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if existing != nil {
		return nil, apperror.Transition("you already have a pending request for this animal")
	}

	request := &entity.AdoptionRequest{
		Id:        uuid.New(),
		AnimalId:  req.AnimalId,
		UserId:    userId,
		Message:   req.Message,
		Status:    entity.RequestStatusPending,
		CreatedAt: time.Now(),
	}

	if err := uow.AdoptionRepository().Create(ctx, request); err != nil {
		return nil, apperror.Persistence(err)
	}

	s.publishEvent(ctx, events.AdoptionSubmitted, map[string]interface{}{
		"request_id":  request.Id,
		"animal_id":   animal.Id,
		"animal_name": animal.Name,
		"actor_id":    userId.String(),
		"entity_type": "adoption",
		"entity_id":   request.Id.String(),
	})

	return &dto.CreateAdoptionResponse{Id: request.Id, Status: string(request.Status)}, nil
}

func (s *adoptionService) ListOwn(ctx context.Context, userId uuid.UUID) ([]*dto.AdoptionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.AdoptionRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.Scoped{Scope: scope.OrderByCreatedDesc},
	)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	return s.enrich(ctx, uow, requests)
}

func (s *adoptionService) ListAll(ctx context.Context) ([]*dto.AdoptionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.AdoptionRepository().FindAll(ctx,
		specification.Scoped{Scope: scope.OrderByCreatedDesc},
	)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	return s.enrich(ctx, uow, requests)
}

// enrich joins in the animal names so the listing is readable without a
// second round trip per row.
func (s *adoptionService) enrich(ctx context.Context, uow unitofwork.UnitOfWork, requests []*entity.AdoptionRequest) ([]*dto.AdoptionRequestResponse, error) {
	if len(requests) == 0 {
		return []*dto.AdoptionRequestResponse{}, nil
	}

	seen := make(map[uuid.UUID]bool)
	var animalIds []uuid.UUID
	for _, r := range requests {
		if !seen[r.AnimalId] {
			seen[r.AnimalId] = true
			animalIds = append(animalIds, r.AnimalId)
		}
	}

	animals, err := uow.AnimalRepository().FindAll(ctx, specification.ByIDs{IDs: animalIds})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	names := make(map[uuid.UUID]string, len(animals))
	for _, a := range animals {
		names[a.Id] = a.Name
	}

	res := make([]*dto.AdoptionRequestResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, toAdoptionResponse(r, names[r.AnimalId]))
	}
	return res, nil
}

func (s *adoptionService) Decide(ctx context.Context, role access.Role, req *dto.DecideAdoptionRequest) (*dto.AdoptionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.AdoptionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if request == nil {
		return nil, apperror.NotFound("adoption request not found")
	}

	if err := workflow.Check(workflow.KindAdoptionRequest, string(request.Status), req.Status, role); err != nil {
		return nil, err
	}

	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: request.AnimalId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if animal == nil {
		return nil, apperror.NotFound("animal not found")
	}

	applicant, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: request.UserId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	approved := req.Status == string(entity.RequestStatusApproved)
	now := time.Now()

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Persistence(err)
	}
	defer uow.Rollback()

	request.Status = entity.RequestStatus(req.Status)
	request.DecidedAt = &now
	if err := uow.AdoptionRepository().Update(ctx, request); err != nil {
		return nil, apperror.Persistence(err)
	}

	if approved {
		// The animal leaves the catalog and every competing pending
		// request loses in the same transaction.
		animal.Status = entity.AnimalStatusAdopted
		animal.UpdatedAt = &now
		if err := uow.AnimalRepository().Update(ctx, animal); err != nil {
			return nil, apperror.Persistence(err)
		}

		siblings, err := uow.AdoptionRepository().FindAll(ctx,
			specification.ByAnimalID{AnimalID: animal.Id},
			specification.ByStatus{Status: string(entity.RequestStatusPending)},
		)
		if err != nil {
			return nil, apperror.Persistence(err)
		}
		for _, sibling := range siblings {
			sibling.Status = entity.RequestStatusRejected
			sibling.DecidedAt = &now
			if err := uow.AdoptionRepository().Update(ctx, sibling); err != nil {
				return nil, apperror.Persistence(err)
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Persistence(err)
	}

	s.publishEvent(ctx, events.AdoptionDecided, map[string]interface{}{
		"request_id":  request.Id,
		"animal_id":   animal.Id,
		"animal_name": animal.Name,
		"status":      string(request.Status),
		"user_id":     request.UserId.String(),
		"entity_type": "adoption",
		"entity_id":   request.Id.String(),
	})

	if approved && s.publisherService != nil {
		payload, _ := json.Marshal(dto.CacheInvalidationMessage{Prefix: AnimalCachePrefix})
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			fmt.Printf("[WARN] Failed to publish cache invalidation: %v\n", err)
		}
	}

	if applicant != nil && s.emailService != nil {
		go func(email, animalName string, approved bool) {
			var mailErr error
			if approved {
				mailErr = s.emailService.SendAdoptionApproved(email, animalName)
			} else {
				mailErr = s.emailService.SendAdoptionRejected(email, animalName)
			}
			if mailErr != nil {
				fmt.Printf("Error sending adoption decision email: %v\n", mailErr)
			}
		}(applicant.Email, animal.Name, approved)
	}

	return toAdoptionResponse(request, animal.Name), nil
}
