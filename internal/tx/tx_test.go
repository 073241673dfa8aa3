package tx

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTx(t *testing.T) *sqlx.Tx {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectBegin()
	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	require.NoError(t, err)
	return tx
}

func TestFromContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	tx := newTx(t)
	ctx := WithTx(context.Background(), tx)
	assert.Same(t, tx, FromContext(ctx))
}

func TestAfterCommit_NoTxRunsImmediately(t *testing.T) {
	called := false
	AfterCommit(context.Background(), func(context.Context) { called = true })
	assert.True(t, called)
}

func TestAfterCommit_DeferredUntilRunHooks(t *testing.T) {
	ctx := WithTx(context.Background(), newTx(t))

	var order []int
	AfterCommit(ctx, func(context.Context) { order = append(order, 1) })
	AfterCommit(ctx, func(context.Context) { order = append(order, 2) })
	assert.Empty(t, order)

	RunHooks(ctx)
	assert.Equal(t, []int{1, 2}, order)

	RunHooks(ctx)
	assert.Equal(t, []int{1, 2}, order, "hooks run once")
}

func TestRunHooks_ContextSurvivesCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx := WithTx(parent, newTx(t))

	var hookErr error
	AfterCommit(ctx, func(c context.Context) { hookErr = c.Err() })
	cancel()
	RunHooks(ctx)

	assert.NoError(t, hookErr)
}

func TestDiscardHooks(t *testing.T) {
	ctx := WithTx(context.Background(), newTx(t))

	called := false
	AfterCommit(ctx, func(context.Context) { called = true })
	DiscardHooks(ctx)
	RunHooks(ctx)

	assert.False(t, called)
}

func TestRunHooks_ContextIsBounded(t *testing.T) {
	ctx := WithTx(context.Background(), newTx(t))

	var deadline time.Time
	var ok bool
	AfterCommit(ctx, func(c context.Context) { deadline, ok = c.Deadline() })
	RunHooks(ctx)

	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(HookTimeout), deadline, time.Second)
}
