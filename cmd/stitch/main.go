package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/seamly/stitch"
	"github.com/seamly/stitch/dbg"
)

// Demo of stitch planning. For the run command, input on stdin should be
// newline separated points in the form "x y", one polyline. For the split
// commands, the segment endpoints are given as "x,y" arguments.

var (
	app = kingpin.New("stitch", "Convert a polyline into sewing machine stitches.")

	run          = app.Command("run", "Running stitch over a polyline read from stdin.")
	runLength    = run.Flag("length", "Maximum stitch length.").Default("2.5").Float64()
	runTolerance = run.Flag("tolerance", "Corner-preserving simplification tolerance.").Default("0.2").Float64()
	runBean      = run.Flag("bean", "Bean stitch repeat pattern, e.g. 0,1,3.").String()
	runPreview   = run.Flag("preview", "Preview the plan inline in the terminal.").Bool()
	runPNG       = run.Flag("png", "Write the plan to a PNG file.").String()
	runScale     = run.Flag("scale", "Pixels per unit when rendering.").Default("10").Float64()

	split       = app.Command("split", "Place points along a single segment.")
	splitFrom   = split.Arg("from", "Segment start as x,y.").Required().String()
	splitTo     = split.Arg("to", "Segment end as x,y.").Required().String()
	splitLength = split.Flag("length", "Maximum gap between points.").Default("2.5").Float64()
	splitSigma  = split.Flag("sigma", "Randomization strength.").Default("0").Float64()
	splitPhase  = split.Flag("random-phase", "Use random-phase spacing instead of even spacing.").Bool()
	splitSeed   = split.Flag("seed", "Seed for reproducible randomization.").String()
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case run.FullCommand():
		runCommand()
	case split.FullCommand():
		splitCommand()
	}
}

func runCommand() {
	points := readPath(os.Stdin)
	plan, err := stitch.RunningStitch(points, *runLength, *runTolerance)
	if err != nil {
		fail(err)
	}
	if *runBean != "" {
		plan, err = stitch.BeanStitch(plan, parseRepeats(*runBean))
		if err != nil {
			fail(err)
		}
	}

	fmt.Println(stitch.Plan(plan))
	for _, p := range plan {
		fmt.Printf("%g %g\n", p.X, p.Y)
	}

	if *runPNG != "" {
		if err := stitch.Plan(plan).DrawPNG(*runPNG, *runScale); err != nil {
			fail(err)
		}
	}
	if *runPreview {
		if err := stitch.Plan(plan).Preview(*runScale); err != nil {
			fail(err)
		}
	}
}

func splitCommand() {
	a := parsePair(*splitFrom)
	b := parsePair(*splitTo)
	seed := *splitSeed
	if seed == "" && (*splitSigma > 0 || *splitPhase) {
		seed = dbg.Seed()
		fmt.Printf("seed: %s\n", aurora.Cyan(seed))
	}

	var points []stitch.Point
	var err error
	if *splitPhase {
		points, err = stitch.SplitRandomPhase(a, b, *splitLength, *splitSigma, seed)
	} else {
		points, err = stitch.SplitEvenDist(a, b, *splitLength, *splitSigma, seed)
	}
	if err != nil {
		fail(err)
	}
	for _, p := range points {
		fmt.Printf("%g %g\n", p.X, p.Y)
	}
}

func readPath(in *os.File) stitch.Path {
	path := stitch.Path{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		path = append(path, parsePoint(line))
	}
	return path
}

func parsePoint(line string) stitch.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fail(fmt.Errorf("invalid point line %q", line))
	}
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return stitch.Point{X: x, Y: y}
}

func parsePair(arg string) stitch.Point {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		fail(fmt.Errorf("invalid point argument %q", arg))
	}
	x, _ := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, _ := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	return stitch.Point{X: x, Y: y}
}

func parseRepeats(arg string) stitch.RepeatPattern {
	parts := strings.Split(arg, ",")
	repeats := make(stitch.RepeatPattern, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			fail(fmt.Errorf("invalid repeat count %q", part))
		}
		repeats[i] = n
	}
	return repeats
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
	os.Exit(1)
}
