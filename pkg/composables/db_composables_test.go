package composables

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type stubTx struct {
	pgx.Tx
}

func TestUsePool_Missing(t *testing.T) {
	_, err := UsePool(context.Background())
	require.ErrorIs(t, err, ErrNoPool)
}

func TestUseTx_FallsBackToPool(t *testing.T) {
	// No tx and no pool in context surfaces the pool error.
	_, err := UseTx(context.Background())
	require.ErrorIs(t, err, ErrNoPool)
}

func TestUseTx_ReturnsContextTx(t *testing.T) {
	ctx := WithTx(context.Background(), stubTx{})

	tx, err := UseTx(ctx)
	require.NoError(t, err)
	require.NotNil(t, tx)
}

func TestInTx_JoinsExistingTransaction(t *testing.T) {
	ctx := WithTx(context.Background(), stubTx{})

	called := false
	err := InTx(ctx, func(txCtx context.Context) error {
		called = true
		tx, err := UseTx(txCtx)
		require.NoError(t, err)
		require.NotNil(t, tx)
		return nil
	})
	require.NoError(t, err)
	require.True(t, called)
}

func TestInTx_RequiresPool(t *testing.T) {
	err := InTx(context.Background(), func(context.Context) error {
		t.Error("fn must not run without a transaction")
		return nil
	})
	require.ErrorIs(t, err, ErrNoPool)
}
