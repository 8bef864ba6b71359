package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kisxo/ita-api/internal/dbctx"
	"github.com/kisxo/ita-api/internal/models"
)

// contestantRepository implements ContestantRepository
type contestantRepository struct {
	db *gorm.DB
}

// NewContestantRepository creates a new contestant repository
func NewContestantRepository(db *gorm.DB) ContestantRepository {
	return &contestantRepository{db: db}
}

// NewRepositories creates a new repository collection
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Contestant: NewContestantRepository(db),
	}
}

// FindByPhone retrieves a contestant by phone number
func (r *contestantRepository) FindByPhone(dbc dbctx.Context, phone int64) (*models.Contestant, error) {
	var c models.Contestant
	err := dbc.Resolve(r.db).
		Where("phone = ?", phone).
		Order("id").
		Take(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contestant: %w", err)
	}
	return &c, nil
}

// Insert creates a new contestant
func (r *contestantRepository) Insert(dbc dbctx.Context, c *models.Contestant) error {
	if c == nil {
		return fmt.Errorf("contestant is nil")
	}
	if err := dbc.Resolve(r.db).Create(c).Error; err != nil {
		return fmt.Errorf("failed to create contestant: %w", err)
	}
	return nil
}

// UpdatePartial updates the supplied fields of the contestant with the given phone
func (r *contestantRepository) UpdatePartial(dbc dbctx.Context, phone int64, upd models.ContestantUpdate) (*models.Contestant, error) {
	current, err := r.FindByPhone(dbc, phone)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}
	if upd.IsEmpty() {
		return current, nil
	}

	result := dbc.Resolve(r.db).
		Model(&models.Contestant{}).
		Where("id = ?", current.ID).
		Updates(upd.Columns())
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update contestant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	upd.ApplyTo(current)
	return current, nil
}
