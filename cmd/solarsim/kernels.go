package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/solarsim/core"
)

var kernelsCmd = &cobra.Command{
	Use:   "kernels",
	Short: "Print the ephemeris kernels the mission profile expects",
	RunE:  runKernels,
}

func init() {
	rootCmd.AddCommand(kernelsCmd)
}

func runKernels(cmd *cobra.Command, args []string) error {
	for _, k := range core.RequiredKernels() {
		fmt.Println(k)
	}
	return nil
}
