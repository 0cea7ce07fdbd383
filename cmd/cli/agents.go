package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deepakkumardewani/review-pilot/internal/core"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Lists the available specialized review agents",
	RunE: func(_ *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "AGENT\tLABEL")
		for _, agent := range core.AllAgentTypes() {
			fmt.Fprintf(w, "%s\t%s\n", agent, agent.Label())
		}
		return w.Flush()
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(agentsCmd)
}
