package plasmid

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Header is the FASTA header of every designed plasmid
const Header = "designed_plasmid"

// Output is a JSON summary of a designed plasmid.
type Output struct {
	// Reference is the ID of the sequence the ORI was found in
	Reference string `json:"reference"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Length of the full plasmid sequence
	Length int `json:"length"`

	// GC is the GC fraction of the ORI and features (without the backbone)
	GC float64 `json:"gc"`

	// ORI is the located origin of replication
	ORI oriOutput `json:"ori"`

	// Features appended after the ORI
	Features []Feature `json:"features"`

	// Skipped are the names of unrecognized features
	Skipped []string `json:"skipped,omitempty"`

	// Seq is the full plasmid sequence
	Seq string `json:"seq"`
}

type oriOutput struct {
	Offset int     `json:"offset"`
	Score  float64 `json:"score"`
	Length int     `json:"length"`
}

// WriteFasta writes the plasmid to dir/name, creating dir if needed. The
// file has a ">designed_plasmid" header and the whole sequence on one line.
func WriteFasta(dir, name string, p *Plasmid) (path string, err error) {
	if err = os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path = filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	// a width of the full length keeps the sequence on a single line
	width := len(p.Seq)
	if width < 1 {
		width = 1
	}

	buf := bufio.NewWriter(f)
	s := linear.NewSeq(Header, alphabet.BytesToLetters([]byte(p.Seq)), alphabet.DNA)
	if _, err = fasta.NewWriter(buf, width).Write(s); err != nil {
		return "", fmt.Errorf("failed to write the plasmid: %w", err)
	}

	if err = buf.Flush(); err != nil {
		return "", fmt.Errorf("failed to write the plasmid: %w", err)
	}

	return path, nil
}

// WriteJSON writes a summary of the plasmid's design to path.
func WriteJSON(path string, p *Plasmid) ([]byte, error) {
	t := time.Now()
	out := Output{
		Reference: p.Reference,
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
		Length: len(p.Seq),
		GC:     p.GC(),
		ORI: oriOutput{
			Offset: p.ORI.Offset,
			Score:  p.ORI.Score,
			Length: len(p.ORI.Seq),
		},
		Features: p.Features,
		Seq:      p.Seq,
	}

	for _, r := range p.Skipped {
		out.Skipped = append(out.Skipped, r.Token)
	}

	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize output: %w", err)
	}

	if err = os.WriteFile(path, output, 0644); err != nil {
		return output, fmt.Errorf("failed to write the output: %w", err)
	}

	return output, nil
}
