package cmd

import (
	"github.com/Ahinurosora-bb/BBL-434-LAB/internal/plasmid"
	"github.com/spf13/cobra"
)

// oriCmd is for finding the origin of replication in a sequence without
// making a plasmid
var oriCmd = &cobra.Command{
	Use:                        "ori [reference FASTA]",
	Short:                      "Find the origin of replication in a reference sequence",
	Long:                       "\nPrint the offset, score, GC content and sequence of the best scoring window in a FASTA file's first sequence.",
	Example:                    "  plascon ori pUC19.fa",
	Args:                       exactArgs(1),
	RunE:                       plasmid.OriCmd,
	SuggestionsMinimumDistance: 2,
}

func init() {
	RootCmd.AddCommand(oriCmd)
}
