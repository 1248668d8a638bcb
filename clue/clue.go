// Package clue defines the Clue and Query value objects consumed by the
// findnext and bab packages (C2 of the search engine).
//
// Design goals, in the teacher's tsp-package idiom:
//   - Explicit, specialized sentinel errors rather than ad-hoc strings.
//   - Validation centralized in Validate(), never re-checked downstream.
//   - Zero surprises: a Clue or Query is either valid or rejected up front.
package clue

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors (wrapped under InvalidArgument via errors.Is through
// errors.Join semantics — each is also directly comparable).
var (
	// InvalidArgument is the umbrella sentinel every validation failure
	// wraps, so callers can do a single errors.Is(err, clue.InvalidArgument)
	// check without enumerating every specific cause (§7).
	InvalidArgument = errors.New("clue: invalid argument")

	// ErrEmptyKeyword indicates a Clue was built with an empty keyword.
	ErrEmptyKeyword = errors.New("clue: keyword must not be empty")

	// ErrNonPositiveDistance indicates a Clue's target distance is <= 0.
	ErrNonPositiveDistance = errors.New("clue: distance must be > 0")

	// ErrEpsilonOutOfRange indicates a Clue's tolerance is outside [0,1].
	ErrEpsilonOutOfRange = errors.New("clue: epsilon must be in [0,1]")

	// ErrEmptyClueList indicates a Query was built with zero clues.
	ErrEmptyClueList = errors.New("clue: query must have at least one clue")
)

// Clue is a landmark specification m(w,d,epsilon): keyword w, target
// distance d (meters), tolerance epsilon in [0,1].
type Clue struct {
	Keyword  string
	Distance float64
	Epsilon  float64
}

// New builds a Clue, lowercasing keyword, and validates it.
func New(keyword string, distance, epsilon float64) (Clue, error) {
	c := Clue{Keyword: strings.ToLower(keyword), Distance: distance, Epsilon: epsilon}
	if err := c.Validate(); err != nil {
		return Clue{}, err
	}

	return c, nil
}

// Validate reports the first validation failure, wrapped under
// InvalidArgument: empty keyword, non-positive distance, or epsilon outside
// [0,1].
func (c Clue) Validate() error {
	if c.Keyword == "" {
		return fmt.Errorf("%w: %w", InvalidArgument, ErrEmptyKeyword)
	}
	if c.Distance <= 0 {
		return fmt.Errorf("%w: %w", InvalidArgument, ErrNonPositiveDistance)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("%w: %w", InvalidArgument, ErrEpsilonOutOfRange)
	}

	return nil
}

// DMin returns the lower bound of the confidence interval, d(1-epsilon).
func (c Clue) DMin() float64 { return c.Distance * (1 - c.Epsilon) }

// DMax returns the upper bound of the confidence interval, d(1+epsilon).
func (c Clue) DMax() float64 { return c.Distance * (1 + c.Epsilon) }

// IsWithinConfidenceInterval reports whether x lies in [DMin, DMax].
func (c Clue) IsWithinConfidenceInterval(x float64) bool {
	return c.DMin() <= x && x <= c.DMax()
}

// MatchingDistance returns |x - Distance|, the per-hop matching distance
// used to aggregate into BAB's objective.
func (c Clue) MatchingDistance(x float64) float64 {
	d := x - c.Distance
	if d < 0 {
		return -d
	}

	return d
}
