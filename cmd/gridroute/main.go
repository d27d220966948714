// Command gridroute lays out the demo terrain map, prints it, finds the
// cheapest route from Start to Finish with A* and prints the map again with
// the route drawn in.
//
// Configuration comes from the environment or an optional .env file:
//
//	GRIDROUTE_ROWS    grid height        (default 10)
//	GRIDROUTE_COLS    grid width         (default 20)
//	GRIDROUTE_START   start cell "x,y"   (default "1,1")
//	GRIDROUTE_FINISH  finish cell "x,y"  (default "9,9")
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/dijkstra"
)

func main() {
	cfg := loadConfig()
	log.Printf("%s grid %d×%d, start %v, finish %v", logInfo, cfg.Rows, cfg.Cols, cfg.Start, cfg.Finish)

	if err := run(cfg, os.Stdout); err != nil {
		log.Printf("%s %v", logError, err)
		os.Exit(1)
	}
}

// run builds the map described by cfg, searches it and writes both renders to out.
func run(cfg Config, out io.Writer) error {
	g, err := buildScenario(cfg)
	if err != nil {
		return fmt.Errorf("building map: %w", err)
	}
	log.Printf("%s map has %d passable region(s)", logInfo, len(g.Regions()))

	if err = render(out, g, nil); err != nil {
		return err
	}

	res, err := astar.FindPath(g, astar.WithReachabilityCheck())
	if err != nil {
		return fmt.Errorf("finding path: %w", err)
	}
	log.Printf("%s path found: %d steps, cost %.3f, %d cells expanded", logInfo, len(res.Path)-1, res.Cost, res.Expanded)

	// Cross-check against the exact cost field.
	field, err := dijkstra.Dijkstra(g, dijkstra.Source(cfg.Start))
	if err != nil {
		return fmt.Errorf("cost field: %w", err)
	}
	if want, _ := field.Dist(cfg.Finish); math.Abs(want-res.Cost) > 1e-9 {
		log.Printf("%s A* cost %.6f differs from exact cost %.6f", logError, res.Cost, want)
	}

	fmt.Fprintln(out)
	return render(out, g, res.Path)
}
