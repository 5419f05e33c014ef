package stitch

// RunningStitch generates a running stitch along a path.
//
// Given a path and a stitch length, walk along the path in increments of the
// stitch length. Sharp corners survive simplification, so an exact stitch
// lands on each of them instead of rounding the corner away. The starting
// and ending points are always stitched.
func RunningStitch(points Path, stitchLength, tolerance float64) Path {
	return RunningStitchWith(DouglasPeucker, points, stitchLength, tolerance)
}

// RunningStitchWith is RunningStitch with a caller-supplied simplifier.
// Whatever vertices the simplifier keeps are treated as important and
// stitched verbatim; everything between consecutive important vertices is
// restitched at uniform spacing no longer than stitchLength.
func RunningStitchWith(simplify Simplifier, points Path, stitchLength, tolerance float64) Path {
	if stitchLength <= 0 {
		fatalf("stitch length must be positive, got %v", stitchLength)
	}
	if tolerance < 0 {
		fatalf("tolerance must not be negative, got %v", tolerance)
	}
	if len(points) < 2 {
		return nil
	}

	simplified := simplify(points, tolerance)

	// Save the points the simplifier picked and make sure we stitch them.
	// Matching is by coordinate value, not index: if the input repeats a
	// coordinate the simplifier kept, every occurrence counts as important.
	important := make(map[Point]struct{}, len(simplified))
	for _, point := range simplified {
		important[point] = struct{}{}
	}
	var importantIndices []int
	for i, point := range points {
		if _, ok := important[point]; ok {
			importantIndices = append(importantIndices, i)
		}
	}

	var output Path
	for s := 0; s < len(importantIndices)-1; s++ {
		// Consider sections of the original path, each one starting and
		// ending with an important point.
		section := points[importantIndices[s] : importantIndices[s+1]+1]
		if len(output) == 0 || output[len(output)-1] != section[0] {
			output = append(output, section[0])
		}

		// Split each section up evenly into stitches, each no longer than
		// stitchLength. Rounding the fractional stitch count up shortens
		// every stitch in the section equally, rather than leaving one
		// short remainder stitch at the end.
		sectionLength := section.Length()
		if sectionLength <= stitchLength {
			continue
		}
		numStitches := ceilDiv(sectionLength, stitchLength)
		actualStitchLength := sectionLength / float64(numStitches)

		distance := actualStitchLength
		segmentStart := section[0]
		for _, segmentEnd := range section[1:] {
			segment := segmentEnd.Sub(segmentStart)
			segmentLength := segment.Length()

			if distance < segmentLength {
				direction := segment.Unit()
				for distance < segmentLength {
					output = append(output, segmentStart.Add(direction.Mul(distance)))
					distance += actualStitchLength
				}
			}

			// Carry the leftover budget into the next sub-segment.
			distance -= segmentLength
			segmentStart = segmentEnd
		}
	}

	if len(output) == 0 || output[len(output)-1] != points[len(points)-1] {
		output = append(output, points[len(points)-1])
	}
	return output
}
