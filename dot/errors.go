package dot

import "errors"

var (
	// ErrSyntax is returned for a line that cannot be parsed as an edge
	// statement of the supported subset.
	ErrSyntax = errors.New("dot: syntax error")

	// ErrMissingWeight is returned for an edge statement with no
	// weight attribute.
	ErrMissingWeight = errors.New("dot: edge missing weight attribute")

	// ErrMissingSU is returned for an edge statement with no su
	// attribute.
	ErrMissingSU = errors.New("dot: edge missing su attribute")
)
