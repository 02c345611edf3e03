package domain

import (
	"fmt"
	"strings"
)

// Mode selects how a time field maps to indicator columns.
type Mode int

const (
	// ModeBCD gives every decimal digit its own 4-bit column.
	ModeBCD Mode = iota
	// ModeBinary encodes each whole field as one plain-binary column.
	ModeBinary
)

// ParseMode resolves a mode name from config or CLI flags.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bcd", "":
		return ModeBCD, nil
	case "binary", "bin":
		return ModeBinary, nil
	default:
		return ModeBCD, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeBCD:
		return "bcd"
	case ModeBinary:
		return "binary"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}
