package repository

import (
	"errors"

	"github.com/kisxo/ita-api/internal/dbctx"
	"github.com/kisxo/ita-api/internal/models"
)

// ErrNotFound is returned when an operation targets a record that does not exist
var ErrNotFound = errors.New("record not found")

// ContestantRepository defines the interface for contestant data access
type ContestantRepository interface {
	// FindByPhone returns the first contestant with the given phone, or nil
	// when there is none.
	FindByPhone(dbc dbctx.Context, phone int64) (*models.Contestant, error)
	// Insert persists c and fills in its generated ID. Phone uniqueness is
	// enforced by the storage constraint only.
	Insert(dbc dbctx.Context, c *models.Contestant) error
	// UpdatePartial applies the non-nil fields of upd to the contestant with
	// the given phone and returns the result. ErrNotFound if absent.
	UpdatePartial(dbc dbctx.Context, phone int64, upd models.ContestantUpdate) (*models.Contestant, error)
}

// Repositories groups all repository interfaces
type Repositories struct {
	Contestant ContestantRepository
}
