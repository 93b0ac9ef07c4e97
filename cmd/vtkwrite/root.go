package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vtkwrite",
	Short: "Export numeric data to legacy VTK files",
	Long: `vtkwrite converts in-memory numeric grid, point and mesh data into the
legacy VTK file format (version 2.0) for visualization tools.

It supports four dataset kinds: structured points, structured grids,
unstructured grids, and polydata with line, triangle or tetrahedron
connectivity. Grid kinds are written with big-endian binary payloads;
polydata is written in ASCII with configurable precision.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
