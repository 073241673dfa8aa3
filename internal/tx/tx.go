// Package tx carries a request-scoped database transaction and the side effects
// that must only run once it commits.
package tx

import (
	"context"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
)

// HookTimeout bounds the context handed to after-commit hooks.
const HookTimeout = 5 * time.Second

type contextKey struct{}

var txKey = contextKey{}

type state struct {
	tx    *sqlx.Tx
	mu    sync.Mutex
	hooks []func(context.Context)
}

// WithTx stores a transaction in the context.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, &state{tx: tx})
}

// FromContext retrieves the transaction from the context. Returns nil if not present.
func FromContext(ctx context.Context) *sqlx.Tx {
	if s, ok := ctx.Value(txKey).(*state); ok {
		return s.tx
	}
	return nil
}

// AfterCommit registers fn to run once the transaction in ctx commits.
// Without a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func(context.Context)) {
	s, ok := ctx.Value(txKey).(*state)
	if !ok {
		fn(ctx)
		return
	}
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

// RunHooks runs and clears the hooks registered on ctx's transaction.
// Hooks share a context that survives cancellation of the request and expires
// after HookTimeout.
func RunHooks(ctx context.Context) {
	s, ok := ctx.Value(txKey).(*state)
	if !ok {
		return
	}
	s.mu.Lock()
	hooks := s.hooks
	s.hooks = nil
	s.mu.Unlock()

	if len(hooks) == 0 {
		return
	}

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), HookTimeout)
	defer cancel()
	for _, fn := range hooks {
		fn(hookCtx)
	}
}

// DiscardHooks drops pending hooks after a rollback.
func DiscardHooks(ctx context.Context) {
	if s, ok := ctx.Value(txKey).(*state); ok {
		s.mu.Lock()
		s.hooks = nil
		s.mu.Unlock()
	}
}
