package interfaces

import (
	"context"

	"silver-advisor/internal/types"
)

// Notifier delivers a finished evaluation to a person
type Notifier interface {
	Name() string
	Notify(ctx context.Context, result *types.Result, body string) error
}
