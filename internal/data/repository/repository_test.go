package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewRepository(t *testing.T) {
	repo := NewRepository(nil, zap.NewNop())

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.Package)
	assert.NotNil(t, repo.Table)
	assert.NotNil(t, repo.Booking)
	assert.NotNil(t, repo.Rider)
	assert.NotNil(t, repo.Payment)
}

// Callers match the lost-claim race with errors.Is, so wrapping must be
// preserved through the repository error path.
func TestErrTableUnavailable_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("claim table %s: %w", "7e20d0db", ErrTableUnavailable)

	assert.True(t, errors.Is(wrapped, ErrTableUnavailable))
	assert.False(t, errors.Is(errors.New("table not available"), ErrTableUnavailable))
}

func TestTableRepository_FindAll(t *testing.T) {
	rows := &fakeRows{data: [][]any{
		{uuid.New(), 1, 10, true, time.Now().UTC()},
		{uuid.New(), 2, 8, false, time.Now().UTC()},
	}}
	repo := NewTableRepository(&stubDB{queryRows: rows}, zap.NewNop())

	tables, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, tables, 2)
	assert.Equal(t, 1, tables[0].TableNumber)
	assert.False(t, tables[1].IsAvailable)
	assert.True(t, rows.closed)
}

// A connection dropped mid-iteration must not be mistaken for a shorter
// result set.
func TestTableRepository_FindAll_IterationFailure(t *testing.T) {
	rows := &fakeRows{
		data: [][]any{{uuid.New(), 1, 10, true, time.Now().UTC()}},
		err:  assert.AnError,
	}
	repo := NewTableRepository(&stubDB{queryRows: rows}, zap.NewNop())

	tables, err := repo.FindAll(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, tables)
}

func TestPackageRepository_FindAll_IterationFailure(t *testing.T) {
	rows := &fakeRows{err: assert.AnError}
	repo := NewPackageRepository(&stubDB{queryRows: rows}, zap.NewNop())

	packages, err := repo.FindAll(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, packages)
}

func TestRiderRepository_FindByBookingID_IterationFailure(t *testing.T) {
	rows := &fakeRows{err: assert.AnError}
	repo := NewRiderRepository(&stubDB{queryRows: rows}, zap.NewNop())

	riders, err := repo.FindByBookingID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, riders)
}
