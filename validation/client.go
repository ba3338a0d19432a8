package validation

import (
	"context"

	"github.com/skilldev/backend/metrics"
)

// Client is how services ask for a verdict. The verdict may be computed
// in-process or by a remote validation service.
type Client interface {
	Validate(ctx context.Context, req Request) (Result, error)
}

// LocalClient evaluates requests with an in-process Engine.
type LocalClient struct {
	engine *Engine
}

func NewLocalClient(engine *Engine) *LocalClient {
	return &LocalClient{engine: engine}
}

func (c *LocalClient) Validate(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res := c.engine.Validate(req)
	metrics.RecordValidation(string(req.Kind()), res.Valid)
	return res, nil
}

// Require asks the client for a verdict and turns a negative one into a
// validation_rejected error. Transport failures come back as
// validation_unavailable.
func Require(ctx context.Context, client Client, req Request) error {
	res, err := client.Validate(ctx, req)
	if err != nil {
		return ErrValidationUnavailable().SetDebug(err)
	}
	if !res.Valid {
		return ErrValidationRejected(res.Errors)
	}
	return nil
}
