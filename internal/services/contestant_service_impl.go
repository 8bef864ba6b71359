package services

import (
	stderrors "errors"

	"github.com/kisxo/ita-api/internal/dbctx"
	"github.com/kisxo/ita-api/internal/errors"
	"github.com/kisxo/ita-api/internal/logger"
	"github.com/kisxo/ita-api/internal/models"
	"github.com/kisxo/ita-api/internal/repository"
)

// NotFoundMessage is the fixed message reported when an update targets an
// unknown phone.
const NotFoundMessage = "Contestant not found"

// contestantServiceImpl implements ContestantService
type contestantServiceImpl struct {
	repo repository.ContestantRepository
	log  logger.Logger
}

// NewContestantService creates a new contestant service implementation
func NewContestantService(repo repository.ContestantRepository, log logger.Logger) ContestantService {
	if log == nil {
		log = logger.NewNop()
	}
	return &contestantServiceImpl{
		repo: repo,
		log:  log.With("service", "ContestantService"),
	}
}

// GetByPhone retrieves a contestant by phone number
func (s *contestantServiceImpl) GetByPhone(dbc dbctx.Context, phone int64) (*models.Contestant, error) {
	c, err := s.repo.FindByPhone(dbc, phone)
	if err != nil {
		return nil, errors.DatabaseError("failed to look up contestant", err).WithOperation("GetByPhone")
	}
	return c, nil
}

// Create persists a new contestant. A duplicate phone is rejected by the
// storage layer and reported as a database error.
func (s *contestantServiceImpl) Create(dbc dbctx.Context, req *models.CreateContestantRequest) (*models.Contestant, error) {
	if req == nil || req.Name == nil || req.Age == nil || req.Phone == nil {
		return nil, errors.ValidationError("name, age and phone are required", nil).WithOperation("Create")
	}

	c := req.ToContestant()
	if err := s.repo.Insert(dbc, c); err != nil {
		return nil, errors.DatabaseError("failed to create contestant", err).WithOperation("Create")
	}

	s.log.Info("Contestant created", "id", c.ID)
	return c, nil
}

// Update applies a partial update to the contestant with the given phone
func (s *contestantServiceImpl) Update(dbc dbctx.Context, phone int64, upd models.ContestantUpdate) (*models.Contestant, error) {
	c, err := s.repo.UpdatePartial(dbc, phone, upd)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFound(NotFoundMessage, err).WithOperation("Update")
		}
		return nil, errors.DatabaseError("failed to update contestant", err).WithOperation("Update")
	}

	s.log.Info("Contestant updated", "id", c.ID)
	return c, nil
}
