package cmd

import (
	"log"

	"github.com/Ahinurosora-bb/BBL-434-LAB/config"
	"github.com/Ahinurosora-bb/BBL-434-LAB/internal/plasmid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// makeCmd designs a plasmid from a reference sequence and a design file
var makeCmd = &cobra.Command{
	Use:   "make [reference FASTA] [design file]",
	Short: "Make a plasmid from a reference sequence and a list of features",
	Long: `Make a plasmid from a reference sequence and a list of features

"plascon make" builds a plasmid by:

1. Scoring 1000 bp windows of the reference, every 100 bp, by their AT
   fraction minus the absolute GC skew, and taking the 501 bp starting at
   the best window as the origin of replication
2. Appending each feature in the design file, in order. Restriction sites
   are followed by a random 6 bp spacer, genes are not
3. Prepending the replication backbone

Each line of the design file starts with a feature name, ex: "EcoRI_site"
or "AmpR_gene", and any other ", " separated fields are ignored. Unknown
features are skipped with a warning (or fail with --strict).

The plasmid is written to Output/Output.fa`,
	Example:                    "  plascon make pUC19.fa design.txt --seed 42",
	Args:                       exactArgs(2),
	RunE:                       plasmid.MakeCmd,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"build", "construct"},
}

func init() {
	RootCmd.AddCommand(makeCmd)

	makeCmd.Flags().StringP("out-dir", "o", config.OutputDir, "directory to write the plasmid to")
	makeCmd.Flags().String("out-file", config.OutputFile, "name of the plasmid FASTA file")
	makeCmd.Flags().Bool("json", false, "also write a JSON summary of the design")
	makeCmd.Flags().Uint64P("seed", "s", 0, "seed for the random spacers (0 seeds from the clock)")
	makeCmd.Flags().Bool("strict", false, "fail on features that aren't in the catalog")
	makeCmd.Flags().StringP("backbone", "b", config.Backbone, "sequence prepended to the plasmid")
	makeCmd.Flags().Int("spacer-length", config.SpacerLength, "bp of random spacer after each restriction site")

	// Bind the parameters to viper
	for _, name := range []string{"out-dir", "out-file", "json", "seed", "strict", "backbone", "spacer-length"} {
		if err := viper.BindPFlag(name, makeCmd.Flags().Lookup(name)); err != nil {
			log.Fatalf("%v", err)
		}
	}
}
