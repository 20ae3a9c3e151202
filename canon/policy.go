// Package canon maps explorer search states to deduplication keys and owns
// the visited table that decides which states get expanded.
//
// Two policies are available and they are not interchangeable:
//
//   - FirstVisit keys include the accumulated yield and the first state seen
//     for a key wins. The dual-agent key additionally drops the activation
//     set and the clock. This reproduces the reference behavior exactly.
//   - BestYield keys exclude the yield and carry the clock; the table keeps
//     the best yield seen per key and a state is expanded only while it is
//     the strict improvement on record (improve-or-skip).
package canon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("canon: unknown policy")

// Policy selects the canonical key shape and the visited-table discipline.
type Policy int

const (
	// BestYield keys on (position, time, activation set) and keeps the maximum yield.
	BestYield Policy = iota

	// FirstVisit keys on (position, yield, activation set); first visited wins.
	FirstVisit
)

// String returns the configuration name of p.
func (p Policy) String() string {
	switch p {
	case BestYield:
		return "best-yield"
	case FirstVisit:
		return "first-visit"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	return p == BestYield || p == FirstVisit
}

// ParsePolicy resolves a configuration name. Matching ignores case and
// accepts underscores for dashes.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-") {
	case "best-yield", "best":
		return BestYield, nil
	case "first-visit", "first":
		return FirstVisit, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
