package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sigep/internal/geom"
)

var (
	flagVecRotate float64
	flagVecTo     string
	flagVecDeg    bool
)

var vectorCmd = &cobra.Command{
	Use:   "vector <x> <y>",
	Short: "Inspect a vector",
	Long: `Print a vector's length, angle and unit vector.

With --rotate the rotated vector is printed too. With --to the distance and
both angle measures to a second vector are printed.

Examples:
  sigep vector 3 4
  sigep vector 1 0 --rotate 90 --deg
  sigep vector 1 0 --to 0,-1`,
	Args: cobra.ExactArgs(2),
	RunE: runVector,
}

func init() {
	vectorCmd.Flags().Float64Var(&flagVecRotate, "rotate", 0, "Rotate the vector by this angle")
	vectorCmd.Flags().StringVar(&flagVecTo, "to", "", "Second vector as x,y")
	vectorCmd.Flags().BoolVar(&flagVecDeg, "deg", false, "Read and print angles in degrees")
}

func runVector(cmd *cobra.Command, args []string) error {
	vals, err := parseFloats(args)
	if err != nil {
		return err
	}
	v, err := geom.VectorFromValues(vals...)
	if err != nil {
		return err
	}

	var to *geom.Vector
	if flagVecTo != "" {
		o, err := parsePoint(flagVecTo)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}
		to = &o
	}

	var rotate *float64
	if cmd.Flags().Changed("rotate") {
		a := angleArg(flagVecRotate, flagVecDeg)
		rotate = &a
	}
	return describeVector(cmd.OutOrStdout(), v, rotate, to, flagVecDeg)
}

// describeVector writes a report about v. rotate and to are optional.
func describeVector(w io.Writer, v geom.Vector, rotate *float64, to *geom.Vector, deg bool) error {
	angle := func(a float64) string {
		if deg {
			return fmt.Sprintf("%.4f°", degrees(a))
		}
		return fmt.Sprintf("%.4f rad", a)
	}
	orNone := func(a float64, err error) string {
		if errors.Is(err, geom.ErrNoAngle) {
			return "undefined (zero vector)"
		}
		return angle(a)
	}

	fmt.Fprintf(w, "vector      %s\n", v)
	fmt.Fprintf(w, "length      %.4f\n", v.Length())
	fmt.Fprintf(w, "angle       %s\n", orNone(v.Angle()))
	fmt.Fprintf(w, "normalized  %s\n", v.Normalized())

	if rotate != nil {
		fmt.Fprintf(w, "rotated     %s\n", v.Rotated(*rotate))
	}
	if to != nil {
		o := *to
		fmt.Fprintf(w, "other       %s\n", o)
		fmt.Fprintf(w, "distance    %.4f\n", v.DistanceTo(o))
		fmt.Fprintf(w, "smaller     %s\n", orNone(v.SmallerAngleBetween(o)))
		fmt.Fprintf(w, "directed    %s\n", orNone(v.DirectedAngleBetween(o)))
	}
	return nil
}
