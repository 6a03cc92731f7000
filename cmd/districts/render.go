package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/districts/partition"
)

const labelGlyphs = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// glyph maps a district label to one printable character.
func glyph(label int) byte {
	if label < 0 {
		return '.'
	}
	if label >= len(labelGlyphs) {
		return '#'
	}
	return labelGlyphs[label]
}

// render writes the label grid, one row per line, followed by the cell
// count, population and contiguity of each district.
func render(w io.Writer, rm *partition.RegionMap) error {
	wd := rm.World()
	var sb strings.Builder
	row := make([]byte, wd.Width())
	for y := 0; y < wd.Height(); y++ {
		for x := 0; x < wd.Width(); x++ {
			row[x] = glyph(rm.Label(x, y))
		}
		sb.Write(row)
		sb.WriteByte('\n')
	}

	counts, pops := rm.Counts(), rm.Populations()
	for _, d := range rm.Districts() {
		fmt.Fprintf(&sb, "district %c: cells=%d population=%d frontier=%d contiguous=%v\n",
			glyph(d), counts[d], pops[d], len(rm.Frontier(d)), rm.IsContiguous(d))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
