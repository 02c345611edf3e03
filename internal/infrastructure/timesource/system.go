// Package timesource provides wall-clock adapters for the TimeSource port.
package timesource

import (
	"fmt"
	"time"

	"binclock/internal/domain"
	"binclock/internal/ports/output"
)

// Ensure both adapters implement the output.TimeSource port.
var (
	_ output.TimeSource = (*System)(nil)
	_ output.TimeSource = Fixed{}
)

// System reads the operating system clock in a resolved location.
type System struct {
	loc *time.Location
}

// NewSystem builds a System source. zone may be an IANA name ("Europe/Paris"),
// "Local", or empty for the system default. A non-zero offsetMinutes wins
// over zone and pins the clock to a fixed UTC offset.
func NewSystem(zone string, offsetMinutes int) (*System, error) {
	loc, err := resolveLocation(zone, offsetMinutes)
	if err != nil {
		return nil, err
	}
	return &System{loc: loc}, nil
}

// Now samples the wall clock.
func (s *System) Now() domain.Sample {
	return domain.NewSample(time.Now().In(s.loc))
}

// Location exposes the resolved location for digital readouts.
func (s *System) Location() *time.Location {
	return s.loc
}

func resolveLocation(zone string, offsetMinutes int) (*time.Location, error) {
	if offsetMinutes != 0 {
		if offsetMinutes < -14*60 || offsetMinutes > 14*60 {
			return nil, fmt.Errorf("%w: %d minutes", domain.ErrBadUTCOffset, offsetMinutes)
		}
		name := fmt.Sprintf("UTC%+03d:%02d", offsetMinutes/60, abs(offsetMinutes%60))
		return time.FixedZone(name, offsetMinutes*60), nil
	}
	if zone == "" || zone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("timesource: load %s: %w", zone, err)
	}
	return loc, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Fixed always reports the same sample. Used by tests and the snapshot
// command's --at flag.
type Fixed struct {
	Sample domain.Sample
}

func (f Fixed) Now() domain.Sample { return f.Sample }
