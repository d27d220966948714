package main

import (
	"io"
	"strings"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// pathGlyph marks cells a route passes through.
const pathGlyph = '*'

// render writes g as an ASCII map framed by a |---| border, one glyph per
// cell (see gridgraph.CellKind.Glyph). Cells on path other than the markers
// are drawn as '*'. A nil path draws the bare map.
func render(w io.Writer, g *gridgraph.Grid, path []gridgraph.Coordinate) error {
	onPath := make(map[gridgraph.Coordinate]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	border := "|" + strings.Repeat("-", g.Cols()) + "|\n"

	var sb strings.Builder
	sb.WriteString(border)
	for y := 0; y < g.Rows(); y++ {
		sb.WriteByte('|')
		for x := 0; x < g.Cols(); x++ {
			cell, err := g.Cell(x, y)
			if err != nil {
				return err
			}
			glyph := cell.Kind.Glyph()
			if onPath[cell.Coordinate] && cell.Kind != gridgraph.Start && cell.Kind != gridgraph.Finish {
				glyph = pathGlyph
			}
			sb.WriteByte(glyph)
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	_, err := io.WriteString(w, sb.String())
	return err
}
