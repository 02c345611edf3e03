package input

import (
	"context"

	"binclock/internal/domain"
)

type ClockUseCase interface {
	// Face encodes a time sample into an indicator grid for the given mode.
	Face(sample domain.Sample, mode domain.Mode) (domain.Face, error)
	// Now samples the wall clock and encodes it.
	Now(ctx context.Context, mode domain.Mode) (domain.Face, error)
}
