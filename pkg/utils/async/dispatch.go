package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/goerr/v2"
	"github.com/santara-lab/santara/pkg/domain/model/errs"
	"github.com/santara-lab/santara/pkg/utils/logging"
)

// Dispatch executes a handler function asynchronously with panic recovery.
// The returned context is detached from the caller's cancellation but keeps
// the logger so background work stays traceable.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				errs.Handle(newCtx, goerr.New("panic in async handler",
					goerr.V("recover", r),
					goerr.V("stack", string(stack))))
			}
		}()

		if err := handler(newCtx); err != nil {
			errs.Handle(newCtx, err)
		}
	}()
}
