package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// Log prefixes.
const (
	logInfo  = "[APP] [INFO]"
	logError = "[APP] [ERROR]"
)

// Defaults reproduce the classic 10×20 demo map.
const (
	defaultRows   = 10
	defaultCols   = 20
	defaultStart  = "1,1"
	defaultFinish = "9,9"
)

// Config holds the demo's configuration values.
type Config struct {
	Rows   int                  // grid height
	Cols   int                  // grid width
	Start  gridgraph.Coordinate // start marker
	Finish gridgraph.Coordinate // finish marker
}

// loadConfig loads an optional .env file and reads the GRIDROUTE_* variables.
// Missing or malformed values fall back to the defaults.
func loadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("%s .env file not found or could not be loaded: %v", logInfo, err)
	}

	return Config{
		Rows:   getEnvAsPositiveInt("GRIDROUTE_ROWS", defaultRows),
		Cols:   getEnvAsPositiveInt("GRIDROUTE_COLS", defaultCols),
		Start:  getEnvAsCoordinate("GRIDROUTE_START", defaultStart),
		Finish: getEnvAsCoordinate("GRIDROUTE_FINISH", defaultFinish),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsPositiveInt reads key as an integer > 0.
func getEnvAsPositiveInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		log.Printf("%s %s=%q is not a positive integer, using %d", logError, key, raw, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsCoordinate reads key as "x,y".
func getEnvAsCoordinate(key, defaultValue string) gridgraph.Coordinate {
	raw := getEnvWithDefault(key, defaultValue)
	c, err := parseCoordinate(raw)
	if err != nil {
		log.Printf("%s %s: %v, using %s", logError, key, err, defaultValue)
		c, _ = parseCoordinate(defaultValue)
	}
	return c
}

// parseCoordinate parses "x,y" with optional surrounding spaces.
func parseCoordinate(s string) (gridgraph.Coordinate, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Coordinate{}, fmt.Errorf("coordinate %q: want \"x,y\"", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Coordinate{}, fmt.Errorf("coordinate %q: x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Coordinate{}, fmt.Errorf("coordinate %q: y: %w", s, err)
	}
	return gridgraph.Coordinate{X: x, Y: y}, nil
}
