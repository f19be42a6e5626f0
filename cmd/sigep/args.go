package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/sigep/internal/geom"
)

// parseFloats converts every argument to a float64.
func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", geom.ErrInvalidArgument, a)
		}
		vals[i] = f
	}
	return vals, nil
}

// parsePoint reads a point written as "x,y".
func parsePoint(s string) (geom.Vector, error) {
	parts := strings.Split(s, ",")
	vals, err := parseFloats(parts)
	if err != nil {
		return geom.Vector{}, err
	}
	return geom.VectorFromValues(vals...)
}

// angleArg converts a --rotate value to radians.
func angleArg(v float64, degrees bool) float64 {
	if degrees {
		return v * math.Pi / 180
	}
	return v
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
