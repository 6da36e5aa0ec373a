package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillpath/heightmap"
	"github.com/katalvlaran/hillpath/report"
)

func sample() report.Answers {
	return report.Answers{
		Part1:       31,
		Part2:       29,
		Width:       8,
		Height:      5,
		Origin:      report.PointOf(heightmap.Coord{}),
		Destination: report.PointOf(heightmap.Coord{X: 5, Y: 2}),
		BestStart:   report.PointOf(heightmap.Coord{X: 0, Y: 4}),
		Candidates:  6,
		Strategy:    "heap",
		Mode:        "fanout",
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatText, sample()))
	assert.Equal(t, "Part 1: 31\nPart 2: 29\n", buf.String())
}

func TestWrite_JSON(t *testing.T) {
	a := sample()
	a.Route = []report.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatJSON, a))

	var got report.Answers
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, a, got)
	assert.Contains(t, buf.String(), `"best_start"`)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatYAML, sample()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 31, got["part1"])
	assert.Equal(t, 29, got["part2"])
	assert.Equal(t, "fanout", got["mode"])
	assert.NotContains(t, got, "route", "empty route is omitted")
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]report.Format{
		"":     report.FormatText,
		"TEXT": report.FormatText,
		"json": report.FormatJSON,
		"yml":  report.FormatYAML,
	} {
		got, err := report.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)

	assert.ErrorIs(t, report.Write(&bytes.Buffer{}, report.Format(9), sample()), report.ErrUnknownFormat)
}
