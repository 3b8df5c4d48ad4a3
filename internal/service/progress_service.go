package service

import (
	"context"
	"time"

	"pawrescue-be/internal/dto"
	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/pkg/apperror"
	"pawrescue-be/internal/repository/scope"
	"pawrescue-be/internal/repository/specification"
	"pawrescue-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProgressService interface {
	Create(ctx context.Context, authorId uuid.UUID, req *dto.CreateProgressNoteRequest) (*dto.CreateProgressNoteResponse, error)
	ListByAnimal(ctx context.Context, animalId uuid.UUID) ([]*dto.ProgressNoteResponse, error)
}

type progressService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProgressService(uowFactory unitofwork.RepositoryFactory) IProgressService {
	return &progressService{
		uowFactory: uowFactory,
	}
}

func (s *progressService) Create(ctx context.Context, authorId uuid.UUID, req *dto.CreateProgressNoteRequest) (*dto.CreateProgressNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	animal, err := uow.AnimalRepository().FindOne(ctx, specification.ByID{ID: req.AnimalId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if animal == nil {
		return nil, apperror.NotFound("animal not found")
	}

	note := &entity.ProgressNote{
		Id:        uuid.New(),
		AnimalId:  req.AnimalId,
		AuthorId:  authorId,
		Status:    entity.AnimalStatus(req.Status),
		Note:      req.Note,
		CreatedAt: time.Now(),
	}

	if err := uow.ProgressRepository().Create(ctx, note); err != nil {
		return nil, apperror.Persistence(err)
	}

	return &dto.CreateProgressNoteResponse{Id: note.Id}, nil
}

func (s *progressService) ListByAnimal(ctx context.Context, animalId uuid.UUID) ([]*dto.ProgressNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.ProgressRepository().FindAll(ctx,
		specification.ByAnimalID{AnimalID: animalId},
		specification.Scoped{Scope: scope.OrderByCreatedDesc},
	)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	res := make([]*dto.ProgressNoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, &dto.ProgressNoteResponse{
			Id:        n.Id,
			AnimalId:  n.AnimalId,
			AuthorId:  n.AuthorId,
			Status:    string(n.Status),
			Note:      n.Note,
			CreatedAt: n.CreatedAt,
		})
	}
	return res, nil
}
