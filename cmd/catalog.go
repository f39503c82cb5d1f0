package cmd

import (
	"github.com/Ahinurosora-bb/BBL-434-LAB/internal/plasmid"
	"github.com/spf13/cobra"
)

// sitesCmd is for listing the restriction sites available to a design.
// Useful for if the user doesn't know which enzymes are available
var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List restriction sites available to a design",
	Long: `Lists the restriction sites by name along with their recognition sequence.

	<Name>	<Recognition sequence>`,
	Args:    exactArgs(0),
	RunE:    plasmid.SitesCmd,
	Aliases: []string{"enzymes"},
}

// genesCmd is for listing the marker genes available to a design
var genesCmd = &cobra.Command{
	Use:   "genes",
	Short: "List marker genes available to a design",
	Long: `Lists the marker genes by name along with their sequence.

	<Name>	<Sequence>`,
	Args:    exactArgs(0),
	RunE:    plasmid.GenesCmd,
	Aliases: []string{"features"},
}

func init() {
	RootCmd.AddCommand(sitesCmd)
	RootCmd.AddCommand(genesCmd)
}
