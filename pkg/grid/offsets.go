package grid

import "fmt"

// Interval is a half-open range of cells [Start, End).
type Interval struct {
	Start, End int
}

// Len returns the number of cells in the interval.
func (iv Interval) Len() int { return iv.End - iv.Start }

// Offsets turns per-track sizes into pixel intervals.
//
// Tracks are laid out left to right with gap cells between them. The plain
// interval of track i hugs its content. The gapped interval extends it by
// floor(gap/2) cells backward and ceil(gap/2) cells forward, so neighboring
// gapped intervals abut exactly: gapped[i].End == gapped[i+1].Start.
func Offsets(sizes []int, gap int) (plain, gapped []Interval) {
	if gap < 0 {
		panic(fmt.Sprintf("grid: negative gap %d", gap))
	}
	plain = make([]Interval, len(sizes))
	gapped = make([]Interval, len(sizes))

	before, after := gap/2, gap-gap/2
	edge := 0
	for i, size := range sizes {
		if size < 0 {
			panic(fmt.Sprintf("grid: track %d has negative size %d", i, size))
		}
		plain[i] = Interval{Start: edge, End: edge + size}
		gapped[i] = Interval{Start: edge - before, End: edge + size + after}
		edge += size + gap
	}
	return plain, gapped
}

// spanSize returns the size of span tracks starting at start, including
// the gaps between them.
func spanSize(sizes []int, start, span, gap int) int {
	total := (span - 1) * gap
	for _, s := range sizes[start : start+span] {
		total += s
	}
	return total
}
