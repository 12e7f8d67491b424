package advisorobs

import (
	"context"
	"time"

	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/logger"
	"silver-advisor/internal/trace"
	"silver-advisor/internal/types"
)

type observableAdvisor struct {
	advisor interfaces.Advisor
}

var _ interfaces.Advisor = (*observableAdvisor)(nil)

func Wrap(adv interfaces.Advisor) interfaces.Advisor {
	return &observableAdvisor{
		advisor: adv,
	}
}

func (oa *observableAdvisor) Evaluate(ctx context.Context) (*types.Result, error) {
	ctx, span := trace.StartSpan(ctx, "advisor.Evaluate")
	defer span.End()

	start := time.Now()

	logger.InfoSkip(ctx, 1, "Starting evaluation cycle")

	result, err := oa.advisor.Evaluate(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Evaluation cycle failed", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Evaluation cycle completed",
		"action", result.Action,
		"rule", result.Rule,
		"reason", result.Reason,
		"premium_pct", result.PremiumPct,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}
