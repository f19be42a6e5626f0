package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sigep/internal/geom"
)

var (
	flagRectRotate float64
	flagRectPoints []string
	flagRectDeg    bool
)

var rectCmd = &cobra.Command{
	Use:   "rect <x> <y> <w> <h>",
	Short: "Inspect a rectangle, optionally rotated",
	Long: `Print a rectangle's center, corners and surrounding rectangle.

With --rotate the rectangle is turned about its center. Each --point is
tested for containment.

Examples:
  sigep rect 0 0 10 10
  sigep rect 0 0 4 2 --rotate 90 --deg --point 2,2.9 --point 3.9,1`,
	Args: cobra.ExactArgs(4),
	RunE: runRect,
}

func init() {
	rectCmd.Flags().Float64Var(&flagRectRotate, "rotate", 0, "Rotate about the center by this angle")
	rectCmd.Flags().StringArrayVar(&flagRectPoints, "point", nil, "Point to test as x,y (repeatable)")
	rectCmd.Flags().BoolVar(&flagRectDeg, "deg", false, "Read --rotate in degrees")
}

func runRect(cmd *cobra.Command, args []string) error {
	vals, err := parseFloats(args)
	if err != nil {
		return err
	}
	r, err := geom.RectFromValues(vals...)
	if err != nil {
		return err
	}

	var shape geom.Shape = r
	if cmd.Flags().Changed("rotate") {
		shape = r.Rotated(angleArg(flagRectRotate, flagRectDeg))
	}

	points := make([]geom.Vector, 0, len(flagRectPoints))
	for _, s := range flagRectPoints {
		p, err := parsePoint(s)
		if err != nil {
			return fmt.Errorf("--point %s: %w", s, err)
		}
		points = append(points, p)
	}
	describeShape(cmd.OutOrStdout(), shape, points)
	return nil
}

// describeShape writes a report about shape and which points it contains.
func describeShape(w io.Writer, shape geom.Shape, points []geom.Vector) {
	fmt.Fprintf(w, "shape       %s\n", shape)
	fmt.Fprintf(w, "rotation    %.4f rad (%.2f°)\n", shape.Rotation(), degrees(shape.Rotation()))
	fmt.Fprintf(w, "center      %s\n", shape.Center())
	for i, c := range shape.Corners() {
		fmt.Fprintf(w, "corner %d    %s\n", i, c)
	}
	fmt.Fprintf(w, "surrounding %s\n", shape.SurroundingRect())
	for _, p := range points {
		verdict := "outside"
		if shape.Contains(p) {
			verdict = "inside"
		}
		fmt.Fprintf(w, "point       %s %s\n", p, verdict)
	}
}
