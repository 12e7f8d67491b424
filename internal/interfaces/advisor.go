package interfaces

import (
	"context"

	"silver-advisor/internal/types"
)

type Advisor interface {
	Evaluate(ctx context.Context) (*types.Result, error)
}
