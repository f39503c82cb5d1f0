// Package plasmid is for designing a plasmid from an origin of replication,
// found in a reference sequence, and a list of restriction sites and genes.
package plasmid

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Ahinurosora-bb/BBL-434-LAB/config"
	"github.com/Ahinurosora-bb/BBL-434-LAB/internal/ori"
	"github.com/TimothyStiles/poly/checks"
	"golang.org/x/exp/rand"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Options are the inputs to a plasmid design other than its sequences.
type Options struct {
	// Backbone is prepended to the assembled sequence
	Backbone string

	// Locator finds the origin of replication
	Locator ori.Locator

	// Catalog is the restriction sites and genes that can be requested
	Catalog Catalog

	// Rand is the source of spacer bases
	Rand *rand.Rand

	// SpacerLength is the number of random bp after each restriction site
	SpacerLength int

	// Strict makes unrecognized features an error
	Strict bool
}

// Plasmid is a designed plasmid.
type Plasmid struct {
	// Reference is the ID of the sequence the ORI came from
	Reference string

	// Seq is the backbone, ORI and features
	Seq string

	// Insert is Seq without the backbone
	Insert string

	// ORI is the located origin of replication
	ORI ori.Result

	// Features are the appended restriction sites and genes
	Features []Feature

	// Skipped are requests that matched nothing in the catalog
	Skipped []Request
}

// DefaultOptions returns the built-in backbone, locator and catalog with a clock-seeded Rand.
func DefaultOptions() Options {
	return Options{
		Backbone:     config.Backbone,
		Locator:      ori.NewLocator(),
		Catalog:      DefaultCatalog(),
		Rand:         NewRand(0),
		SpacerLength: SpacerLength,
	}
}

// NewOptions makes Options from app settings, reading a catalog file if one is set.
func NewOptions(c *config.Config) (Options, error) {
	cat := DefaultCatalog()
	if c.Catalog != "" {
		var err error
		if cat, err = ReadCatalog(c.Catalog); err != nil {
			return Options{}, err
		}
	}

	if c.SpacerLength < 0 {
		return Options{}, fmt.Errorf("invalid spacer length %d: must not be negative", c.SpacerLength)
	}

	return Options{
		Backbone: c.Backbone,
		Locator: ori.Locator{
			ScanWindow: c.ScanWindow,
			Stride:     c.Stride,
			Window:     c.Window,
		},
		Catalog:      cat,
		Rand:         NewRand(c.Seed),
		SpacerLength: c.SpacerLength,
		Strict:       c.Strict,
	}, nil
}

// Construct reads a reference FASTA and design file and designs a plasmid from them.
func Construct(refPath, designPath string, opts Options) (*Plasmid, error) {
	ref, err := ReadReference(refPath)
	if err != nil {
		return nil, err
	}

	reqs, err := ReadDesign(designPath)
	if err != nil {
		return nil, err
	}

	return Design(ref, reqs, opts)
}

// Design finds an ORI in the reference, appends the requested features
// and then prepends the backbone.
func Design(ref Reference, reqs []Request, opts Options) (*Plasmid, error) {
	o, err := opts.Locator.Locate(ref.Seq)
	if err != nil {
		return nil, fmt.Errorf("failed to find an origin of replication in %s: %w", ref.ID, err)
	}

	a := NewAssembler(opts.Catalog, opts.Rand)
	a.SpacerLength = opts.SpacerLength
	a.Strict = opts.Strict

	assembly, err := a.Assemble(o.Seq, reqs)
	if err != nil {
		return nil, err
	}

	return &Plasmid{
		Reference: ref.ID,
		Seq:       opts.Backbone + assembly.Seq,
		Insert:    assembly.Seq,
		ORI:       o,
		Features:  assembly.Features,
		Skipped:   assembly.Skipped,
	}, nil
}

// GC returns the GC fraction of the plasmid's insert.
func (p *Plasmid) GC() float64 {
	if p.Insert == "" {
		return 0
	}
	return checks.GcContent(strings.ToUpper(p.Insert))
}
