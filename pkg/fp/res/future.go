package res

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/fpcore/pkg/fp/tagerr"
)

// Future is a handle to a computation started by TryAsync. It resolves to
// exactly one Result and never changes afterwards.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	result    Result[T]
}

// TryAsync starts fn on its own goroutine and returns a Future resolving
// to fn's outcome under the same conversion contract as Try. The context
// is handed to fn; cancelling it does not stop the goroutine unless fn
// honors it.
func TryAsync[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}

	go func() {
		defer close(f.done)
		defer func() {
			if v := recover(); v != nil {
				f.result = Err[T](tagerr.NewTryCatch(v))
			}
		}()

		v, err := fn(ctx)
		if err != nil {
			f.result = Err[T](err)
			return
		}
		f.result = Ok(v)
	}()

	return f
}

// Await blocks until the future resolves or ctx ends. A dead context
// yields an Err carrying ctx.Err() while the computation keeps running;
// fp.IsCancellationError recognizes that outcome.
func (f *Future[T]) Await(ctx context.Context) Result[T] {
	select {
	case <-f.done:
		return f.result
	case <-ctx.Done():
		return Err[T](ctx.Err())
	}
}

// Poll reports without blocking whether the future has resolved. The
// returned Result is meaningful only when the second value is true.
func (f *Future[T]) Poll() (Result[T], bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return Result[T]{}, false
	}
}

// Done returns a channel closed on resolution, for use in select.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Id() uuid.UUID {
	return f.id
}

func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}
