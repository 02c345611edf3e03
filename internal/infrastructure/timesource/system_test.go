package timesource_test

import (
	"errors"
	"testing"
	"time"

	"binclock/internal/domain"
	"binclock/internal/infrastructure/timesource"
)

func TestNewSystemDefaultsToLocal(t *testing.T) {
	src, err := timesource.NewSystem("", 0)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	if src.Location() != time.Local {
		t.Errorf("Location() = %v, want Local", src.Location())
	}
}

func TestNewSystemNamedZone(t *testing.T) {
	src, err := timesource.NewSystem("UTC", 0)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	if got := src.Location().String(); got != "UTC" {
		t.Errorf("Location() = %q, want UTC", got)
	}
}

func TestNewSystemUnknownZone(t *testing.T) {
	if _, err := timesource.NewSystem("Mars/Olympus", 0); err == nil {
		t.Error("expected error for unknown zone")
	}
}

func TestNewSystemFixedOffset(t *testing.T) {
	src, err := timesource.NewSystem("", 60)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	_, offset := time.Now().In(src.Location()).Zone()
	if offset != 3600 {
		t.Errorf("zone offset = %d seconds, want 3600", offset)
	}
}

func TestNewSystemOffsetOutOfRange(t *testing.T) {
	for _, minutes := range []int{15 * 60, -15 * 60} {
		if _, err := timesource.NewSystem("", minutes); !errors.Is(err, domain.ErrBadUTCOffset) {
			t.Errorf("NewSystem(offset=%d) err = %v, want ErrBadUTCOffset", minutes, err)
		}
	}
}

func TestSystemNowIsValid(t *testing.T) {
	src, err := timesource.NewSystem("", 0)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	if err := src.Now().Validate(); err != nil {
		t.Errorf("Now() produced invalid sample: %v", err)
	}
}

func TestFixed(t *testing.T) {
	sample := domain.Sample{Hour: 13, Minute: 5, Second: 9}
	src := timesource.Fixed{Sample: sample}
	if got := src.Now(); got != sample {
		t.Errorf("Now() = %v, want %v", got, sample)
	}
}
