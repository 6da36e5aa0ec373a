package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// neighborOffsets lists orthogonal steps in fixed order: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// New constructs a Grid from raw elevations. The input is deep-copied.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrElevationRange or
// ErrMarkerOutOfBounds for invalid input.
// Complexity: O(W×H) time and memory.
func New(rows [][]Elevation, origin, destination Coord) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Elevation, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, e := range row {
			if e < MinElevation || e > MaxElevation {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrElevationRange, e, x, y)
			}
		}
		cells = append(cells, row...)
	}

	g := &Grid{Width: w, Height: h, Origin: origin, Destination: destination, cells: cells}
	if !g.InBounds(origin) {
		return nil, fmt.Errorf("%w: origin %v", ErrMarkerOutOfBounds, origin)
	}
	if !g.InBounds(destination) {
		return nil, fmt.Errorf("%w: destination %v", ErrMarkerOutOfBounds, destination)
	}
	g.min = MaxElevation
	for _, e := range cells {
		if e < g.min {
			g.min = e
		}
	}

	return g, nil
}

// Parse builds a Grid from text rows. Letters 'a'..'z' map to 0..25, 'S'
// marks the origin (elevation 0) and 'E' the destination (elevation 25).
//
// Trailing carriage returns are stripped and trailing blank rows ignored.
// Every failure wraps ErrMalformedInput.
func Parse(lines []string) (*Grid, error) {
	for len(lines) > 0 && strings.TrimRight(lines[len(lines)-1], "\r") == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	var (
		origin, destination Coord
		haveOrigin, haveGoal bool
	)
	rows := make([][]Elevation, len(lines))
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]Elevation, 0, len(line))
		for x, r := range line {
			switch {
			case r == StartMarker:
				if haveOrigin {
					return nil, fmt.Errorf("%w: second %q at (%d,%d), first at %v", ErrDuplicateMarker, r, x, y, origin)
				}
				origin, haveOrigin = Coord{X: x, Y: y}, true
				row = append(row, MinElevation)
			case r == GoalMarker:
				if haveGoal {
					return nil, fmt.Errorf("%w: second %q at (%d,%d), first at %v", ErrDuplicateMarker, r, x, y, destination)
				}
				destination, haveGoal = Coord{X: x, Y: y}, true
				row = append(row, MaxElevation)
			case r >= 'a' && r <= 'z':
				row = append(row, Elevation(r-'a'))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCharacter, r, x, y)
			}
		}
		rows[y] = row
	}

	if !haveOrigin {
		return nil, ErrMissingStart
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}

	return New(rows, origin, destination)
}

// ParseReader reads all lines from r and parses them. Read failures wrap ErrIO.
func ParseReader(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return Parse(lines)
}

// Load opens the file at path and parses it.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return ParseReader(f)
}

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Cells returns the number of cells, Width×Height.
func (g *Grid) Cells() int { return len(g.cells) }

// Index converts c to its row-major linear index. c must be in bounds.
func (g *Grid) Index(c Coord) int { return c.Y*g.Width + c.X }

// Coordinate converts a row-major linear index back to a Coord.
func (g *Grid) Coordinate(i int) Coord {
	return Coord{X: i % g.Width, Y: i / g.Width}
}

// Elevation returns the elevation at c. An out-of-bounds coordinate is a
// programming error and panics.
func (g *Grid) Elevation(c Coord) Elevation {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("heightmap: coordinate %v outside %dx%d grid", c, g.Width, g.Height))
	}
	return g.cells[g.Index(c)]
}

// ElevationAt returns the elevation stored at linear index i.
func (g *Grid) ElevationAt(i int) Elevation { return g.cells[i] }

// MinElevation returns the lowest elevation present in the grid.
func (g *Grid) MinElevation() Elevation { return g.min }

// Neighbors returns the up-to-four orthogonal in-bounds neighbours of c.
func (g *Grid) Neighbors(c Coord) []Coord {
	return g.AppendNeighbors(make([]Coord, 0, 4), c)
}

// AppendNeighbors appends the orthogonal in-bounds neighbours of c to dst.
// Search loops reuse dst to avoid one allocation per expanded cell.
func (g *Grid) AppendNeighbors(dst []Coord, c Coord) []Coord {
	for _, d := range neighborOffsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// CanStep reports whether a single move from -> to is allowed: climbing at
// most one level, descending any amount. Adjacency is not checked.
func (g *Grid) CanStep(from, to Coord) bool {
	return g.Elevation(to) <= g.Elevation(from)+1
}

// LowElevationCandidates returns every cell at the grid's minimum elevation
// in row-major order. The origin is always included for parsed grids.
func (g *Grid) LowElevationCandidates() []Coord {
	var out []Coord
	for i, e := range g.cells {
		if e == g.min {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// String renders the grid back to text, markers included.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Cells() + g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Coord{X: x, Y: y}
			switch c {
			case g.Origin:
				sb.WriteRune(StartMarker)
			case g.Destination:
				sb.WriteRune(GoalMarker)
			default:
				sb.WriteByte(byte('a' + g.cells[g.Index(c)]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
