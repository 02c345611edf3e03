package output

import "binclock/internal/domain"

// TimeSource reads the wall clock. Implementations decide the location
// (system default, named zone, or fixed UTC offset).
type TimeSource interface {
	Now() domain.Sample
}
