package plasmid

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/rand"
)

const (
	// SpacerLength is the number of random bp after each restriction site
	SpacerLength = 6

	// bases are the letters that spacers are drawn from
	bases = "ACGT"
)

// Feature is a catalog entry that was appended to the plasmid.
type Feature struct {
	// Name of the catalog entry
	Name string `json:"name"`

	// Kind is either a site or a gene
	Kind Kind `json:"type"`

	// Start is the feature's index in the assembled sequence (without the backbone)
	Start int `json:"start"`

	// Seq is the site or gene sequence
	Seq string `json:"seq"`

	// Spacer is the random sequence after a restriction site. Empty for genes
	Spacer string `json:"spacer,omitempty"`
}

// Assembly is a seed sequence extended with requested features.
type Assembly struct {
	// Seq is the seed with every feature (and spacer) appended
	Seq string

	// Features that were appended, in request order
	Features []Feature

	// Skipped are the non-blank requests that matched no catalog entry
	Skipped []Request
}

// Assembler appends catalog features to a seed sequence.
type Assembler struct {
	// SpacerLength is the number of random bases after each restriction site
	SpacerLength int

	// Strict makes an unrecognized feature an error rather than a no-op
	Strict bool

	catalog Catalog
	rand    *rand.Rand
}

// NewRand returns a random source for spacers. A zero seed is replaced
// with one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// NewAssembler returns an assembler drawing features from c and spacers from r.
func NewAssembler(c Catalog, r *rand.Rand) *Assembler {
	if r == nil {
		r = NewRand(0)
	}

	return &Assembler{
		SpacerLength: SpacerLength,
		catalog:      c,
		rand:         r,
	}
}

// Assemble appends each requested feature to seed, in order. A restriction
// site is followed by a random spacer, a gene is not. Requests that aren't in
// the catalog are skipped (or fail with ErrUnknownFeature if Strict).
func (a *Assembler) Assemble(seed string, reqs []Request) (*Assembly, error) {
	if a.SpacerLength < 0 {
		return nil, fmt.Errorf("invalid spacer length %d: must not be negative", a.SpacerLength)
	}

	var sb strings.Builder
	sb.WriteString(seed)

	out := &Assembly{}
	for _, req := range reqs {
		if req.Name == "" {
			continue
		}

		seq, kind, ok := a.catalog.Lookup(req.Name)
		if !ok {
			if a.Strict {
				return nil, fmt.Errorf("%w: %q on line %d", ErrUnknownFeature, req.Token, req.Line)
			}
			out.Skipped = append(out.Skipped, req)
			continue
		}

		f := Feature{Name: req.Name, Kind: kind, Start: sb.Len(), Seq: seq}
		sb.WriteString(seq)
		if kind == Site {
			f.Spacer = a.spacer()
			sb.WriteString(f.Spacer)
		}
		out.Features = append(out.Features, f)
	}

	out.Seq = sb.String()
	return out, nil
}

// spacer returns SpacerLength bases picked uniformly from ACGT
func (a *Assembler) spacer() string {
	b := make([]byte, a.SpacerLength)
	for i := range b {
		b[i] = bases[a.rand.Intn(len(bases))]
	}
	return string(b)
}
