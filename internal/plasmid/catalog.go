package plasmid

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"
)

// Kind is the type of a catalog entry: a restriction site or a gene
type Kind int

const (
	// Site is a restriction site. Sites are followed by a random spacer
	Site Kind = iota

	// Gene is a marker gene ORF
	Gene
)

var kindNames = [...]string{"site", "gene"}

// String returns "site" or "gene"
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText writes a Kind by its name
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown feature kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText parses a Kind from its name
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if string(text) == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown feature kind %q", text)
}

// Catalog holds the restriction sites and genes that a design can request.
// Neither table is mutated after it's made.
type Catalog struct {
	// Sites is a map from an enzyme name to its recognition sequence
	Sites map[string]string

	// Genes is a map from a gene name to its sequence
	Genes map[string]string
}

// entry is a single named sequence in a catalog file
type entry struct {
	Name string `mapstructure:"name"`
	Seq  string `mapstructure:"seq"`
}

// DefaultCatalog returns a copy of the built-in restriction sites and marker genes.
func DefaultCatalog() Catalog {
	return Catalog{
		Sites: map[string]string{
			"EcoRI":   "GAATTC",
			"BamHI":   "GGATCC",
			"HindIII": "AAGCTT",
			"PstI":    "CTGCAG",
			"SphI":    "GCATGC",
			"SalI":    "GTCGAC",
			"XbaI":    "TCTAGA",
			"KpnI":    "GGTACC",
			"SacI":    "GAGCTC",
			"SmaI":    "CCCGGG",
		},
		Genes: map[string]string{
			"AmpR":              "ATGAAAGCGTTGCTGATGCTGCTGCTAA",
			"KanR (nptII/aphA)": "ATGAGCCATATTCAACGGGAAACGCTAA",
			"TetR (tetA/tetR)":  "ATGTTGACCTGCTGCTGACGATGACTAA",
			"lacZ_alpha":        "ATGACCATGATTACGCCAAGCTGCTAA",
		},
	}
}

// NewCatalog copies the sites and genes into a new Catalog. Empty names or
// sequences are an error.
func NewCatalog(sites, genes map[string]string) (Catalog, error) {
	c := Catalog{
		Sites: make(map[string]string, len(sites)),
		Genes: make(map[string]string, len(genes)),
	}

	for name, seq := range sites {
		if name == "" || seq == "" {
			return Catalog{}, fmt.Errorf("failed to add restriction site %q: empty name or sequence", name)
		}
		c.Sites[name] = seq
	}

	for name, seq := range genes {
		if name == "" || seq == "" {
			return Catalog{}, fmt.Errorf("failed to add gene %q: empty name or sequence", name)
		}
		c.Genes[name] = seq
	}

	return c, nil
}

// ReadCatalog reads a catalog file (YAML, JSON or TOML by extension) with
// "sites" and/or "genes" lists of {name, seq} entries. A missing list keeps
// the built-in table for that kind.
//
//	sites:
//	  - name: EcoRI
//	    seq: GAATTC
func ReadCatalog(path string) (Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	def := DefaultCatalog()
	sites, genes := def.Sites, def.Genes

	if v.IsSet("sites") {
		var entries []entry
		if err := v.UnmarshalKey("sites", &entries); err != nil {
			return Catalog{}, fmt.Errorf("failed to parse sites in %s: %w", path, err)
		}
		sites = entryMap(entries)
	}

	if v.IsSet("genes") {
		var entries []entry
		if err := v.UnmarshalKey("genes", &entries); err != nil {
			return Catalog{}, fmt.Errorf("failed to parse genes in %s: %w", path, err)
		}
		genes = entryMap(entries)
	}

	return NewCatalog(sites, genes)
}

// entryMap turns a list of entries into a name to sequence map. Later entries win.
func entryMap(entries []entry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Seq
	}
	return m
}

// Lookup finds a normalized feature name. Restriction sites are checked before genes.
func (c Catalog) Lookup(name string) (seq string, kind Kind, ok bool) {
	if seq, ok = c.Sites[name]; ok {
		return seq, Site, true
	}

	if seq, ok = c.Genes[name]; ok {
		return seq, Gene, true
	}

	return "", 0, false
}

// Names returns the sorted names in one of the catalog's tables.
func (c Catalog) Names(kind Kind) []string {
	table := c.Sites
	if kind == Gene {
		table = c.Genes
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
