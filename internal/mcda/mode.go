package mcda

import (
	"fmt"
	"strings"
)

// Mode selects the data representation and the algorithm variant of a node.
type Mode string

const (
	// Crisp nodes work on plain numbers.
	Crisp Mode = "crisp"
	// Fuzzy nodes work on triangular fuzzy numbers.
	Fuzzy Mode = "fuzzy"
)

// ParseMode accepts the wire spelling of a data mode, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Crisp:
		return Crisp, nil
	case Fuzzy:
		return Fuzzy, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string { return string(m) }
