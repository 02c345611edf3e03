package domain

import (
	"fmt"
	"time"
)

// Sample is an immutable wall-clock snapshot taken once per tick and
// discarded after render.
type Sample struct {
	Hour   int
	Minute int
	Second int
}

// NewSample builds a Sample from a time.Time.
func NewSample(t time.Time) Sample {
	return Sample{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// Validate checks the 0-23 / 0-59 / 0-59 field ranges.
func (s Sample) Validate() error {
	if s.Hour < 0 || s.Hour > 23 {
		return fmt.Errorf("%w: hour %d", ErrInvalidSample, s.Hour)
	}
	if s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("%w: minute %d", ErrInvalidSample, s.Minute)
	}
	if s.Second < 0 || s.Second > 59 {
		return fmt.Errorf("%w: second %d", ErrInvalidSample, s.Second)
	}
	return nil
}

// String renders the sample as a digital HH:MM:SS readout.
func (s Sample) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", s.Hour, s.Minute, s.Second)
}
