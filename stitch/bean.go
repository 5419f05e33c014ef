package stitch

// BeanStitch makes a running stitch heavier by backtracking stitches.
//
// One repeat means going back and forth over a stitch once more, tripling
// the thread laid over it; r repeats pile up 2r+1 threads, always an odd
// count. The repeats pattern is consumed cyclically, one entry per input
// stitch, so [0, 1, 3] leaves the first stitch alone, doubles back once on
// the second, three times on the third, and starts over on the fourth.
func BeanStitch(stitches Path, repeats RepeatPattern) Path {
	if len(stitches) < 2 {
		return stitches
	}
	if len(repeats) == 0 {
		fatalf("repeat pattern must not be empty")
	}

	output := Path{stitches[0]}
	for position, s := range stitches {
		output = append(output, s)
		for i := 0; i < repeats[CircularIndex(position, len(repeats))]; i++ {
			output = append(output, output[len(output)-2], output[len(output)-1])
		}
	}
	return output
}
