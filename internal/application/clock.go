package application

import (
	"context"
	"fmt"

	"binclock/internal/domain"
	"binclock/internal/ports/output"
	"binclock/pkg/bcd"
)

// Binary mode column widths: hours fit in 5 bits, minutes and seconds
// need 6.
const (
	binaryHourBits   = 5
	binaryMinuteBits = 6
	binarySecondBits = 6
)

type ClockService struct {
	source output.TimeSource
}

func NewClockService(source output.TimeSource) *ClockService {
	return &ClockService{source: source}
}

// Face encodes a time sample into an indicator grid. The result is a pure
// function of (sample, mode): equal inputs yield equal faces.
func (s *ClockService) Face(sample domain.Sample, mode domain.Mode) (domain.Face, error) {
	if err := sample.Validate(); err != nil {
		return domain.Face{}, err
	}
	switch mode {
	case domain.ModeBCD:
		return bcdFace(sample)
	case domain.ModeBinary:
		return binaryFace(sample)
	default:
		return domain.Face{}, fmt.Errorf("%w: %d", domain.ErrUnknownMode, int(mode))
	}
}

// Now samples the wall clock and encodes it.
func (s *ClockService) Now(ctx context.Context, mode domain.Mode) (domain.Face, error) {
	if err := ctx.Err(); err != nil {
		return domain.Face{}, err
	}
	return s.Face(s.source.Now(), mode)
}

// bcdFace lays out six 4-bit columns: hour tens, hour ones, minute tens,
// minute ones, second tens, second ones.
func bcdFace(sample domain.Sample) (domain.Face, error) {
	fields := []struct {
		value      int
		tens, ones string
	}{
		{sample.Hour, "H", "h"},
		{sample.Minute, "M", "m"},
		{sample.Second, "S", "s"},
	}

	columns := make([]domain.Column, 0, 6)
	for _, f := range fields {
		tens, ones, err := bcd.EncodeField(f.value)
		if err != nil {
			return domain.Face{}, err
		}
		columns = append(columns,
			domain.Column{Label: f.tens, Bits: tens[:]},
			domain.Column{Label: f.ones, Bits: ones[:]},
		)
	}
	return domain.Face{Mode: domain.ModeBCD, Sample: sample, Columns: columns}, nil
}

// binaryFace lays out one plain-binary column per field. The hour column
// is one bit shorter and bottom-aligns in the grid.
func binaryFace(sample domain.Sample) (domain.Face, error) {
	fields := []struct {
		value int
		width int
		label string
	}{
		{sample.Hour, binaryHourBits, "H"},
		{sample.Minute, binaryMinuteBits, "M"},
		{sample.Second, binarySecondBits, "S"},
	}

	columns := make([]domain.Column, 0, 3)
	for _, f := range fields {
		bits, err := bcd.EncodeBinary(f.value, f.width)
		if err != nil {
			return domain.Face{}, err
		}
		columns = append(columns, domain.Column{Label: f.label, Bits: bits})
	}
	return domain.Face{Mode: domain.ModeBinary, Sample: sample, Columns: columns}, nil
}
