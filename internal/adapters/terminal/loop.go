package terminal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"binclock/internal/domain"
	"binclock/internal/ports/input"
)

// RunLoop repaints the clock once per second until ctx is canceled. Ticks
// align to wall-clock second boundaries so the display never lags a
// partial second behind.
func RunLoop(ctx context.Context, clock input.ClockUseCase, r *Renderer, mode domain.Mode, logger *slog.Logger) error {
	r.Start()
	defer r.Stop()

	for {
		face, err := clock.Now(ctx, mode)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if err := r.Render(face); err != nil {
			logger.Error("render failed", "error", err)
			return err
		}

		next := time.Now().Truncate(time.Second).Add(time.Second)
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}
