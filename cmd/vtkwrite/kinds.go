package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eng-RSMY/vtkwrite/vtk"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List supported dataset kind tokens",
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range vtk.Kinds() {
			fmt.Println(k)
		}
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
