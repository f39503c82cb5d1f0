package plasmid

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/Ahinurosora-bb/BBL-434-LAB/config"
	"github.com/Ahinurosora-bb/BBL-434-LAB/internal/ori"
	"github.com/spf13/cobra"
)

// MakeCmd designs a plasmid from a reference FASTA and a design file and
// writes it to the output directory.
func MakeCmd(cmd *cobra.Command, args []string) error {
	conf := config.New()
	opts, err := NewOptions(conf)
	if err != nil {
		return err
	}

	p, err := Construct(args[0], args[1], opts)
	if err != nil {
		return err
	}

	for _, r := range p.Skipped {
		stderr.Printf("warning: skipping unrecognized feature %q on line %d of %s\n", r.Token, r.Line, args[1])
	}

	path, err := WriteFasta(conf.OutputDir, conf.OutputFile, p)
	if err != nil {
		return err
	}

	if conf.JSON {
		jsonPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
		if _, err = WriteJSON(jsonPath, p); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if conf.Verbose {
		logPlasmid(out, p)
	}
	fmt.Fprintf(out, "Success: FASTA file generated in %s\n", path)

	return nil
}

// OriCmd prints the origin of replication found in a reference FASTA.
func OriCmd(cmd *cobra.Command, args []string) error {
	conf := config.New()
	ref, err := ReadReference(args[0])
	if err != nil {
		return err
	}

	l := ori.Locator{ScanWindow: conf.ScanWindow, Stride: conf.Stride, Window: conf.Window}
	o, err := l.Locate(ref.Seq)
	if err != nil {
		return fmt.Errorf("failed to find an origin of replication in %s: %w", ref.ID, err)
	}

	p := &Plasmid{Reference: ref.ID, Insert: o.Seq, ORI: o}
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "reference\toffset\tlength\tscore\tgc\t\n")
	fmt.Fprintf(writer, "%s\t%d\t%d\t%.4f\t%.4f\t\n", ref.ID, o.Offset, len(o.Seq), o.Score, p.GC())
	writer.Flush()
	fmt.Fprintln(cmd.OutOrStdout(), o.Seq)

	return nil
}

// SitesCmd lists the restriction sites that can be used in a design.
func SitesCmd(cmd *cobra.Command, args []string) error {
	return listCatalog(cmd, Site)
}

// GenesCmd lists the genes that can be used in a design.
func GenesCmd(cmd *cobra.Command, args []string) error {
	return listCatalog(cmd, Gene)
}

// listCatalog writes the name and sequence of every entry of one kind
func listCatalog(cmd *cobra.Command, kind Kind) error {
	opts, err := NewOptions(config.New())
	if err != nil {
		return err
	}

	table := opts.Catalog.Sites
	if kind == Gene {
		table = opts.Catalog.Genes
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 3, ' ', 0)
	for _, name := range opts.Catalog.Names(kind) {
		fmt.Fprintf(writer, "%s\t%s\n", name, table[name])
	}

	return writer.Flush()
}

// logPlasmid writes the ORI and each feature of a plasmid as a table
func logPlasmid(out io.Writer, p *Plasmid) {
	fmt.Fprintf(out, "ORI from %s at %d (score %.4f, %d bp)\n", p.Reference, p.ORI.Offset, p.ORI.Score, len(p.ORI.Seq))

	writer := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "feature\ttype\tstart\tseq\tspacer\t\n")
	for _, f := range p.Features {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%s\t\n", f.Name, f.Kind, f.Start, f.Seq, f.Spacer)
	}
	writer.Flush()

	fmt.Fprintf(out, "%d bp, %.2f GC\n\n", len(p.Seq), p.GC())
}

