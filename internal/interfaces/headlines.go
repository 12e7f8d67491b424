package interfaces

import (
	"context"

	"silver-advisor/internal/types"
)

// HeadlineProvider supplies the ordered headlines for a theme, most recent first
type HeadlineProvider interface {
	Headlines(ctx context.Context, theme string) ([]types.Headline, error)
}
