// Package report renders the answers of a hillpath run as text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillpath/heightmap"
)

// ErrUnknownFormat is returned for a format name other than text, json, yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the output encoding.
type Format int

const (
	// FormatText prints exactly "Part 1: <n>" and "Part 2: <n>".
	FormatText Format = iota
	// FormatJSON prints one indented JSON object.
	FormatJSON
	// FormatYAML prints one YAML document.
	FormatYAML
)

// String returns the flag name of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Point is a serialisable grid coordinate.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// PointOf converts a heightmap coordinate.
func PointOf(c heightmap.Coord) Point { return Point{X: c.X, Y: c.Y} }

// Answers is everything a run reports. Only Part1 and Part2 appear in text
// output; the structured formats carry the rest.
type Answers struct {
	Part1 int `json:"part1" yaml:"part1"`
	Part2 int `json:"part2" yaml:"part2"`

	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	Origin      Point   `json:"origin" yaml:"origin"`
	Destination Point   `json:"destination" yaml:"destination"`
	BestStart   Point   `json:"best_start" yaml:"best_start"`
	Candidates  int     `json:"candidates" yaml:"candidates"`
	Strategy    string  `json:"strategy" yaml:"strategy"`
	Mode        string  `json:"mode" yaml:"mode"`
	Route       []Point `json:"route,omitempty" yaml:"route,omitempty"`
}

// Write renders a in the chosen format.
func Write(w io.Writer, f Format, a Answers) error {
	switch f {
	case FormatText:
		_, err := fmt.Fprintf(w, "Part 1: %d\nPart 2: %d\n", a.Part1, a.Part2)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
