package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisxo/ita-api/internal/dbctx"
	"github.com/kisxo/ita-api/internal/errors"
	"github.com/kisxo/ita-api/internal/models"
	"github.com/kisxo/ita-api/internal/repository"
)

// Mock contestant repository for testing
type mockContestantRepository struct {
	byPhone     map[int64]*models.Contestant
	nextID      uint
	shouldError bool
}

func newMockContestantRepository() *mockContestantRepository {
	return &mockContestantRepository{byPhone: make(map[int64]*models.Contestant)}
}

func (m *mockContestantRepository) FindByPhone(dbc dbctx.Context, phone int64) (*models.Contestant, error) {
	if m.shouldError {
		return nil, stderrors.New("mock error")
	}
	c, ok := m.byPhone[phone]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *mockContestantRepository) Insert(dbc dbctx.Context, c *models.Contestant) error {
	if m.shouldError {
		return stderrors.New("mock error")
	}
	if _, exists := m.byPhone[c.Phone]; exists {
		return stderrors.New("UNIQUE constraint failed: contestant.phone")
	}
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.byPhone[c.Phone] = &cp
	return nil
}

func (m *mockContestantRepository) UpdatePartial(dbc dbctx.Context, phone int64, upd models.ContestantUpdate) (*models.Contestant, error) {
	if m.shouldError {
		return nil, stderrors.New("mock error")
	}
	c, ok := m.byPhone[phone]
	if !ok {
		return nil, repository.ErrNotFound
	}
	upd.ApplyTo(c)
	cp := *c
	return &cp, nil
}

func createRequest(name string, age int, phone int64) *models.CreateContestantRequest {
	return &models.CreateContestantRequest{Name: &name, Age: &age, Phone: &phone}
}

func TestCreateAndGet(t *testing.T) {
	svc := NewContestantService(newMockContestantRepository(), nil)
	dbc := dbctx.New(context.Background())

	created, err := svc.Create(dbc, createRequest("Bikash", 21, 9876543210))
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	got, err := svc.GetByPhone(dbc, 9876543210)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.Public(), got.Public())
}

func TestGetMissingIsNotAnError(t *testing.T) {
	svc := NewContestantService(newMockContestantRepository(), nil)

	got, err := svc.GetByPhone(dbctx.New(context.Background()), 1)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateMissingField(t *testing.T) {
	svc := NewContestantService(newMockContestantRepository(), nil)
	name := "Bikash"

	_, err := svc.Create(dbctx.New(context.Background()), &models.CreateContestantRequest{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidationError))
}

func TestCreateDuplicatePhoneIsDatabaseError(t *testing.T) {
	svc := NewContestantService(newMockContestantRepository(), nil)
	dbc := dbctx.New(context.Background())

	_, err := svc.Create(dbc, createRequest("A", 20, 555))
	require.NoError(t, err)

	_, err = svc.Create(dbc, createRequest("B", 30, 555))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDatabaseError))
}

func TestUpdate(t *testing.T) {
	repo := newMockContestantRepository()
	svc := NewContestantService(repo, nil)
	dbc := dbctx.New(context.Background())

	_, err := svc.Create(dbc, createRequest("Bikash", 21, 42))
	require.NoError(t, err)

	age := 22
	updated, err := svc.Update(dbc, 42, models.ContestantUpdate{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, "Bikash", updated.Name)
	assert.Equal(t, 22, updated.Age)

	name := "Rupam"
	updated, err = svc.Update(dbc, 42, models.ContestantUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Rupam", updated.Name)
	assert.Equal(t, 22, updated.Age)
}

func TestUpdateMissing(t *testing.T) {
	svc := NewContestantService(newMockContestantRepository(), nil)
	age := 1

	_, err := svc.Update(dbctx.New(context.Background()), 404, models.ContestantUpdate{Age: &age})
	require.Error(t, err)

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, NotFoundMessage, appErr.Message)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStorageFailures(t *testing.T) {
	repo := newMockContestantRepository()
	repo.shouldError = true
	svc := NewContestantService(repo, nil)
	dbc := dbctx.New(context.Background())

	_, err := svc.GetByPhone(dbc, 1)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDatabaseError))

	_, err = svc.Create(dbc, createRequest("A", 1, 1))
	assert.True(t, errors.HasCode(err, errors.ErrCodeDatabaseError))

	_, err = svc.Update(dbc, 1, models.ContestantUpdate{})
	assert.True(t, errors.HasCode(err, errors.ErrCodeDatabaseError))
}
