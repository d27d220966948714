package main

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Fixed obstacles and terrain of the demo map, as (x, y).
var (
	scenarioBlocked = []gridgraph.Coordinate{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}}
	scenarioHeavy   = []gridgraph.Coordinate{{X: 4, Y: 3}, {X: 4, Y: 4}, {X: 4, Y: 8}, {X: 5, Y: 8}, {X: 5, Y: 9}}
	scenarioLight   = []gridgraph.Coordinate{{X: 4, Y: 5}, {X: 4, Y: 6}, {X: 4, Y: 9}}
)

// buildScenario lays out the demo map on a cfg.Rows×cfg.Cols grid.
// Terrain that falls outside a smaller grid is skipped. Markers are placed
// last so a configured Start or Finish always wins, and they must fit.
func buildScenario(cfg Config) (*gridgraph.Grid, error) {
	g, err := gridgraph.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}

	for _, layer := range []struct {
		cells []gridgraph.Coordinate
		kind  gridgraph.CellKind
	}{
		{scenarioBlocked, gridgraph.Blocked},
		{scenarioHeavy, gridgraph.Heavy},
		{scenarioLight, gridgraph.Light},
	} {
		if err = paintTerrain(g, layer.cells, layer.kind); err != nil {
			return nil, err
		}
	}

	if err = g.SetStart(cfg.Start.X, cfg.Start.Y); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err = g.SetFinish(cfg.Finish.X, cfg.Finish.Y); err != nil {
		return nil, fmt.Errorf("finish: %w", err)
	}

	return g, nil
}

// paintTerrain sets every in-bounds cell of cells to kind.
func paintTerrain(g *gridgraph.Grid, cells []gridgraph.Coordinate, kind gridgraph.CellKind) error {
	for _, c := range cells {
		if !g.InBounds(c.X, c.Y) {
			continue
		}
		if err := g.SetCell(c.X, c.Y, kind); err != nil {
			return fmt.Errorf("painting %s at %v: %w", kind, c, err)
		}
	}
	return nil
}
