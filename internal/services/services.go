package services

import (
	"github.com/kisxo/ita-api/internal/dbctx"
	"github.com/kisxo/ita-api/internal/logger"
	"github.com/kisxo/ita-api/internal/models"
	"github.com/kisxo/ita-api/internal/repository"
)

// Services contains all application services
type Services struct {
	Contestant ContestantService
}

// ContestantService defines the interface for contestant business logic
type ContestantService interface {
	// GetByPhone returns nil without error when no contestant matches
	GetByPhone(dbc dbctx.Context, phone int64) (*models.Contestant, error)
	Create(dbc dbctx.Context, req *models.CreateContestantRequest) (*models.Contestant, error)
	Update(dbc dbctx.Context, phone int64, upd models.ContestantUpdate) (*models.Contestant, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(repos *repository.Repositories, log logger.Logger) *Services {
	return &Services{
		Contestant: NewContestantService(repos.Contestant, log),
	}
}
