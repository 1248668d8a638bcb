package clue

import "fmt"

// Query is an ordered search request: a source vertex and a non-empty,
// order-significant sequence of clues.
type Query struct {
	Source int64
	Clues  []Clue
}

// NewQuery builds a Query and validates it (and every clue within it).
func NewQuery(source int64, clues []Clue) (Query, error) {
	q := Query{Source: source, Clues: clues}
	if err := q.Validate(); err != nil {
		return Query{}, err
	}

	return q, nil
}

// Validate reports ErrEmptyClueList if Clues is empty, otherwise the first
// invalid Clue's error (with its index for context).
func (q Query) Validate() error {
	if len(q.Clues) == 0 {
		return fmt.Errorf("%w: %w", InvalidArgument, ErrEmptyClueList)
	}
	for i, c := range q.Clues {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("clue[%d]: %w", i, err)
		}
	}

	return nil
}
