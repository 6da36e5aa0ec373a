// Package heightmap defines the elevation grid, coordinates and sentinel
// errors shared by the search packages of github.com/katalvlaran/hillpath.
package heightmap

import (
	"errors"
	"fmt"
)

// Elevation is the height of a single cell: 'a' is 0, 'z' is 25.
type Elevation int

const (
	// MinElevation is the lowest representable elevation ('a' and 'S').
	MinElevation Elevation = 0
	// MaxElevation is the highest representable elevation ('z' and 'E').
	MaxElevation Elevation = 25
)

// Marker runes found in the textual grid.
const (
	StartMarker = 'S'
	GoalMarker  = 'E'
)

// Coord addresses a cell by column (X) and row (Y), both 0-indexed.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns |dx|+|dy| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Sentinel errors. Every parse failure wraps ErrMalformedInput so callers
// can match the whole class with errors.Is.
var (
	// ErrMalformedInput is the umbrella error for any unusable grid text.
	ErrMalformedInput = errors.New("heightmap: malformed input")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrInvalidCharacter indicates a rune outside 'a'..'z', 'S', 'E'.
	ErrInvalidCharacter = fmt.Errorf("%w: invalid character", ErrMalformedInput)
	// ErrMissingStart indicates no 'S' marker was found.
	ErrMissingStart = fmt.Errorf("%w: no start marker", ErrMalformedInput)
	// ErrMissingGoal indicates no 'E' marker was found.
	ErrMissingGoal = fmt.Errorf("%w: no goal marker", ErrMalformedInput)
	// ErrDuplicateMarker indicates a second 'S' or 'E' marker.
	ErrDuplicateMarker = fmt.Errorf("%w: duplicate marker", ErrMalformedInput)
	// ErrElevationRange indicates a raw elevation outside [0,25].
	ErrElevationRange = fmt.Errorf("%w: elevation out of range", ErrMalformedInput)
	// ErrMarkerOutOfBounds indicates an origin or destination outside the grid.
	ErrMarkerOutOfBounds = fmt.Errorf("%w: marker outside grid", ErrMalformedInput)
	// ErrNoCandidates indicates the grid has no cell at its minimum elevation.
	ErrNoCandidates = fmt.Errorf("%w: no low elevation candidates", ErrMalformedInput)

	// ErrIO wraps failures to open or read the input source.
	ErrIO = errors.New("heightmap: input unreadable")
)

// Grid is an immutable rectangular elevation map with a fixed origin and
// destination. Cells are stored row-major; index = y*Width + x.
// A Grid is never mutated after construction, so concurrent readers need no
// synchronisation.
type Grid struct {
	Width, Height int
	Origin        Coord
	Destination   Coord

	cells []Elevation
	min   Elevation
}
