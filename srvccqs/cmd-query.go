package decorator

import "context"

// P - params
type CmdHandler[P any] interface {
	Handle(ctx context.Context, p P) error
}

// P - params, R - result of a command that mutates state
type CmdResHandler[P any, R any] interface {
	Handle(ctx context.Context, p P) (R, error)
}

// Q - query, R - result
type QueryHandler[Q any, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// QueryFunc adapts a plain function to the QueryHandler interface.
type QueryFunc[Q any, R any] func(ctx context.Context, q Q) (R, error)

func (f QueryFunc[Q, R]) Handle(ctx context.Context, q Q) (R, error) {
	return f(ctx, q)
}
