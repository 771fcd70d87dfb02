package store

import (
	"context"
	"math/rand"
	"time"

	perr "courtledger/internal/platform/errors"
)

// Tx retry policy for contended reconcile batches. Serialization failures
// and deadlocks are safe to replay because each batch is idempotent

// RunTxRetry executes fn inside a transaction, replaying it when the
// failure is classified retryable. attempts <= 1 means a single try
func RunTxRetry(ctx context.Context, tx TxRunner, attempts int, fn func(q RowQuerier) error) error {
	if attempts < 1 {
		attempts = 1
	}
	backoff := 50 * time.Millisecond
	var err error
	for i := 0; i < attempts; i++ {
		err = tx.Tx(ctx, fn)
		if err == nil || !perr.Retryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		// full jitter keeps replays of concurrent batches from colliding again
		d := time.Duration(rand.Int63n(int64(backoff)))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
		if backoff < 2*time.Second {
			backoff *= 2
		}
	}
	return err
}
