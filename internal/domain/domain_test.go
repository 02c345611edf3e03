package domain_test

import (
	"errors"
	"testing"
	"time"

	"binclock/internal/domain"
)

func TestNewSample(t *testing.T) {
	s := domain.NewSample(time.Date(2025, 12, 15, 13, 5, 9, 123456789, time.UTC))
	if s.Hour != 13 || s.Minute != 5 || s.Second != 9 {
		t.Errorf("unexpected sample: %+v", s)
	}
	if got := s.String(); got != "13:05:09" {
		t.Errorf("String() = %q, want 13:05:09", got)
	}
}

func TestSampleValidate(t *testing.T) {
	valid := []domain.Sample{
		{Hour: 0, Minute: 0, Second: 0},
		{Hour: 23, Minute: 59, Second: 59},
	}
	for _, s := range valid {
		if err := s.Validate(); err != nil {
			t.Errorf("Validate(%v) = %v", s, err)
		}
	}
	invalid := []domain.Sample{
		{Hour: 24},
		{Hour: -1},
		{Minute: 60},
		{Second: 60},
		{Second: -1},
	}
	for _, s := range invalid {
		if err := s.Validate(); !errors.Is(err, domain.ErrInvalidSample) {
			t.Errorf("Validate(%v) = %v, want ErrInvalidSample", s, err)
		}
	}
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		in      string
		want    domain.Mode
		wantErr bool
	}{
		{"bcd", domain.ModeBCD, false},
		{"BCD", domain.ModeBCD, false},
		{"", domain.ModeBCD, false},
		{"binary", domain.ModeBinary, false},
		{"bin", domain.ModeBinary, false},
		{" Binary ", domain.ModeBinary, false},
		{"hex", domain.ModeBCD, true},
	}
	for _, tc := range testCases {
		got, err := domain.ParseMode(tc.in)
		if tc.wantErr {
			if !errors.Is(err, domain.ErrUnknownMode) {
				t.Errorf("ParseMode(%q) err = %v, want ErrUnknownMode", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestModeString(t *testing.T) {
	for _, m := range []domain.Mode{domain.ModeBCD, domain.ModeBinary} {
		parsed, err := domain.ParseMode(m.String())
		if err != nil || parsed != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), parsed, err)
		}
	}
}

func TestFaceCellBottomAlignment(t *testing.T) {
	face := domain.Face{
		Columns: []domain.Column{
			{Label: "H", Bits: []bool{true}},
			{Label: "M", Bits: []bool{true, false, true}},
		},
	}
	if got := face.Rows(); got != 3 {
		t.Fatalf("Rows() = %d, want 3", got)
	}
	// Short column pads its top rows unlit.
	if face.Cell(0, 0).Lit || face.Cell(1, 0).Lit {
		t.Error("padded rows of short column should be unlit")
	}
	if !face.Cell(2, 0).Lit {
		t.Error("bottom bit of short column should be lit")
	}
	if !face.Cell(0, 1).Lit || face.Cell(1, 1).Lit || !face.Cell(2, 1).Lit {
		t.Error("tall column bits misaligned")
	}
	// Out-of-range lookups stay unlit rather than panicking.
	if face.Cell(5, 7).Lit {
		t.Error("out-of-range cell should be unlit")
	}
}
