package repository

import (
	"context"
	"testing"

	"event-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPaymentRepository_Finalize_TransitionsPendingPayment(t *testing.T) {
	tx := &stubTx{script: []execResult{
		{tag: pgconn.NewCommandTag("UPDATE 1")},
		{tag: pgconn.NewCommandTag("UPDATE 1")},
	}}
	repo := NewPaymentRepository(&stubDB{tx: tx}, zap.NewNop())

	applied, err := repo.Finalize(context.Background(), uuid.New(), uuid.New(),
		entity.PaymentStatusCompleted, `{"result":"SUCCESS"}`)

	require.NoError(t, err)
	assert.True(t, applied)
	require.Len(t, tx.sql, 2)
	assert.Contains(t, tx.sql[0], "status = 'PENDING'")
	assert.Contains(t, tx.sql[1], "UPDATE bookings")
	assert.True(t, tx.committed)
}

// When the payment is no longer PENDING a concurrent finalizer already
// won: report not-applied, leave the booking alone, roll back.
func TestPaymentRepository_Finalize_SkipsNonPendingPayment(t *testing.T) {
	tx := &stubTx{script: []execResult{
		{tag: pgconn.NewCommandTag("UPDATE 0")},
	}}
	repo := NewPaymentRepository(&stubDB{tx: tx}, zap.NewNop())

	applied, err := repo.Finalize(context.Background(), uuid.New(), uuid.New(),
		entity.PaymentStatusFailed, `{"result":"FAILURE"}`)

	require.NoError(t, err)
	assert.False(t, applied)
	assert.Len(t, tx.sql, 1)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestPaymentRepository_Finalize_ExecErrorRollsBack(t *testing.T) {
	tx := &stubTx{script: []execResult{
		{err: assert.AnError},
	}}
	repo := NewPaymentRepository(&stubDB{tx: tx}, zap.NewNop())

	applied, err := repo.Finalize(context.Background(), uuid.New(), uuid.New(),
		entity.PaymentStatusCompleted, "{}")

	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, applied)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}
