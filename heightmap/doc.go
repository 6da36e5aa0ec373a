// Package heightmap parses and stores a rectangular elevation grid with a
// fixed origin and destination.
//
// What:
//
//   - Grid holds Width×Height elevations (row-major) plus Origin and Destination.
//   - Letters 'a'..'z' map to elevations 0..25; 'S' is the origin at 0 and
//     'E' the destination at 25.
//   - Neighbors yields the up-to-four orthogonal cells; CanStep applies the
//     climbing rule (up at most one level, down freely).
//   - LowElevationCandidates lists every cell at the grid's minimum elevation.
//
// Complexity:
//
//   - Parse / New:              O(W×H) time and memory.
//   - Elevation, Index, CanStep: O(1).
//   - LowElevationCandidates:   O(W×H).
//
// Errors:
//
//   - ErrMalformedInput wraps ErrEmptyGrid, ErrNonRectangular,
//     ErrInvalidCharacter, ErrMissingStart, ErrMissingGoal,
//     ErrDuplicateMarker, ErrElevationRange, ErrMarkerOutOfBounds and
//     ErrNoCandidates.
//   - ErrIO wraps open and read failures from Load and ParseReader.
//
// A Grid is immutable after construction and safe for concurrent readers.
package heightmap
