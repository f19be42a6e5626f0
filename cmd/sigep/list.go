package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sigep/internal/geom"
	"github.com/vovakirdan/sigep/internal/scene"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the shapes of a scene",
	Long:  `Shows every shape in the scene with its rotation and surrounding rectangle.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sc, err := loadScene()
		if err != nil {
			return err
		}
		writeShapeList(cmd.OutOrStdout(), sc)
		return nil
	},
}

var probeCmd = &cobra.Command{
	Use:   "probe <x> <y>",
	Short: "Name the shapes containing a point",
	Long: `Prints the names of all scene shapes containing the point, in scene order.
Exits with an error when no shape contains it.

Use -- before negative coordinates:
  sigep probe -- 9 -5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, err := parseFloats(args)
		if err != nil {
			return err
		}
		p, err := geom.VectorFromValues(vals...)
		if err != nil {
			return err
		}
		sc, err := loadScene()
		if err != nil {
			return err
		}

		names := sc.Hit(p)
		logger.Debug("probe", "point", p, "hits", len(names))
		if len(names) == 0 {
			return fmt.Errorf("no shape in %q contains %s", sc.Name, p)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
		return nil
	},
}

func writeShapeList(w io.Writer, sc scene.Scene) {
	if sc.Len() == 0 {
		fmt.Fprintf(w, "Scene %q has no shapes.\n", sc.Name)
		return
	}

	fmt.Fprintf(w, "Scene %q:\n\n", sc.Name)

	maxNameLen := 4 // "Name" header
	for _, it := range sc.Items {
		maxNameLen = max(maxNameLen, len(it.Name))
	}

	fmt.Fprintf(w, "  %-*s  %-14s  %8s  %s\n", maxNameLen, "Name", "Color", "Rot°", "Bounds")
	fmt.Fprintf(w, "  %-*s  %-14s  %8s  %s\n", maxNameLen, "----", "-----", "----", "------")
	for _, it := range sc.Items {
		fmt.Fprintf(w, "  %-*s  %-14s  %8.2f  %s\n",
			maxNameLen, it.Name, it.Color, degrees(it.Shape.Rotation()), it.Shape.SurroundingRect())
	}

	if len(sc.Probes) > 0 {
		fmt.Fprintf(w, "\n%d probe(s):\n", len(sc.Probes))
		for _, p := range sc.Probes {
			hits := sc.Hit(p)
			if len(hits) == 0 {
				hits = []string{"-"}
			}
			fmt.Fprintf(w, "  %s  %s\n", p, strings.Join(hits, ", "))
		}
	}
}
