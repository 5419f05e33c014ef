package stitch

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
)

// This file parses the svg fixtures and outputs paths. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever
// the first polyline is, then converts that into a Path. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Path {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) != 1 {
		log.Fatalf("Expected exactly one polyline in fixture %q, found %d", name, len(polylines))
	}

	pointString := polylines[0].Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	path := make(Path, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		path = append(path, Point{x, y})
	}
	return path
}

func TestRunningStitchWaveFixture(t *testing.T) {
	path := LoadFixture("wave")
	stitchLength := 6.0
	stitches := RunningStitch(path, stitchLength, 0.5)

	assert.Equal(t, path[0], stitches[0])
	assert.Equal(t, path[len(path)-1], stitches[len(stitches)-1])
	for i := 1; i < len(stitches); i++ {
		assert.LessOrEqual(t, stitches[i-1].Distance(stitches[i]), stitchLength+Tolerance)
	}

	// A generous tolerance plus a long stitch length must not blow up the
	// stitch count: the wave is under 190 units of path.
	assert.Less(t, len(stitches), 50)
}

func TestRunningStitchLightningFixture(t *testing.T) {
	path := LoadFixture("lightning")
	stitches := RunningStitch(path, 5, 0.5)

	// Every jag of the bolt is a sharp corner; all of them must be stitched
	// verbatim.
	for _, corner := range path {
		assert.Contains(t, stitches, corner)
	}
	for i := 1; i < len(stitches); i++ {
		assert.LessOrEqual(t, stitches[i-1].Distance(stitches[i]), 5+Tolerance)
	}
}

func TestBeanStitchWaveFixture(t *testing.T) {
	stitches := RunningStitch(LoadFixture("wave"), 6, 0.5)
	bean := BeanStitch(stitches, RepeatPattern{0, 1})

	// Backtracking only revisits existing stitches; it never invents
	// points.
	for _, p := range bean {
		assert.Contains(t, stitches, p)
	}
	assert.Greater(t, len(bean), len(stitches))
	assert.GreaterOrEqual(t, Plan(bean).ThreadLength(), Plan(stitches).ThreadLength())
}
