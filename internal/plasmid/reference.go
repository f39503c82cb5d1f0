package plasmid

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Reference is the sequence that an origin of replication is found in.
type Reference struct {
	// ID is the first word of the FASTA header
	ID string

	// Seq is the record's sequence lines joined together
	Seq string
}

// ReadReference reads the first record of a FASTA file. Any further
// records are ignored with a warning.
func ReadReference(path string) (Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return Reference{}, fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()

	ref, n, err := parseReference(f)
	if err != nil {
		return Reference{}, fmt.Errorf("failed to read reference from %s: %w", path, err)
	}

	if n > 1 {
		stderr.Printf(
			"warning: %d sequences were in %s. Only using the first: %s\n",
			n,
			path,
			ref.ID,
		)
	}

	return ref, nil
}

// parseReference returns the first sequence in a FASTA stream and the number of records.
func parseReference(r io.Reader) (ref Reference, n int, err error) {
	t := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(fasta.NewReader(r, t))
	for sc.Next() {
		n++
		if n > 1 {
			continue
		}

		s := sc.Seq().(*linear.Seq)
		ref.ID = s.Name()
		ref.Seq = string(alphabet.LettersToBytes(s.Seq))
	}

	if err = sc.Error(); err != nil {
		return Reference{}, 0, err
	}

	if n == 0 {
		return Reference{}, 0, ErrEmptyReference
	}

	return ref, n, nil
}
