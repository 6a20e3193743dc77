package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List the bodies in the catalog",
	RunE:  runBodies,
}

func init() {
	rootCmd.AddCommand(bodiesCmd)
}

func runBodies(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPARENT\tORBIT\tSTREAMED")
	for _, b := range cat.All() {
		parent := "-"
		if b.Parent != nil {
			parent = fmt.Sprintf("%d", *b.Parent)
		}
		orbit := "-"
		if b.HasOrbit() {
			orbit = fmt.Sprintf("a=%.0f e=%.4f", b.Orbit.A, b.Orbit.E)
		} else if b.FallbackDerived {
			orbit = "fallback"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n", b.ID, b.Name, parent, orbit, b.Streamed)
	}
	return w.Flush()
}
