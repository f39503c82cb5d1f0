package plasmid

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCatalog_Lookup(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name     string
		feature  string
		wantSeq  string
		wantKind Kind
		wantOK   bool
	}{
		{"site", "EcoRI", "GAATTC", Site, true},
		{"gene", "AmpR", "ATGAAAGCGTTGCTGATGCTGCTGCTAA", Gene, true},
		{"gene with an underscore", "lacZ_alpha", "ATGACCATGATTACGCCAAGCTGCTAA", Gene, true},
		{"case sensitive", "ecori", "", Site, false},
		{"unknown", "XyzI", "", Site, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, kind, ok := c.Lookup(tt.feature)
			if seq != tt.wantSeq || ok != tt.wantOK || (ok && kind != tt.wantKind) {
				t.Errorf("Lookup(%s) = %s, %v, %v, want %s, %v, %v", tt.feature, seq, kind, ok, tt.wantSeq, tt.wantKind, tt.wantOK)
			}
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		want    string
		wantErr bool
	}{
		{"site", Site, "site", false},
		{"gene", Gene, "gene", false},
		{"out of range", Kind(7), "Kind(7)", true},
		{"negative", Kind(-1), "Kind(-1)", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}

			text, err := tt.kind.MarshalText()
			if (err != nil) != tt.wantErr {
				t.Fatalf("MarshalText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			var parsed Kind
			if err = parsed.UnmarshalText(text); err != nil || parsed != tt.kind {
				t.Errorf("UnmarshalText(%s) = %v, %v", text, parsed, err)
			}
		})
	}

	var k Kind
	if err := k.UnmarshalText([]byte("promoter")); err == nil {
		t.Error("UnmarshalText() of an unknown kind should fail")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if len(c.Sites) != 10 || len(c.Genes) != 4 {
		t.Errorf("DefaultCatalog() has %d sites and %d genes, want 10 and 4", len(c.Sites), len(c.Genes))
	}

	for name, seq := range c.Sites {
		if len(seq) != 6 {
			t.Errorf("site %s is %d bp, want 6", name, len(seq))
		}
	}

	for name, seq := range c.Genes {
		if seq[:3] != "ATG" || seq[len(seq)-3:] != "TAA" {
			t.Errorf("gene %s = %s, want a start and stop codon", name, seq)
		}
	}

	// each call is a separate copy
	c.Sites["EcoRI"] = "AAAAAA"
	if DefaultCatalog().Sites["EcoRI"] != "GAATTC" {
		t.Error("DefaultCatalog() shares its tables between calls")
	}
}

func TestNewCatalog(t *testing.T) {
	if _, err := NewCatalog(map[string]string{"EcoRI": ""}, nil); err == nil {
		t.Error("NewCatalog() with an empty site should fail")
	}

	if _, err := NewCatalog(nil, map[string]string{"": "ATG"}); err == nil {
		t.Error("NewCatalog() with an unnamed gene should fail")
	}

	sites := map[string]string{"EcoRI": "GAATTC"}
	c, err := NewCatalog(sites, nil)
	if err != nil {
		t.Fatal(err)
	}
	sites["EcoRI"] = "CCCCCC"
	if c.Sites["EcoRI"] != "GAATTC" {
		t.Error("NewCatalog() didn't copy its input")
	}
}

func TestCatalog_Names(t *testing.T) {
	c := DefaultCatalog()
	want := []string{"AmpR", "KanR (nptII/aphA)", "TetR (tetA/tetR)", "lacZ_alpha"}
	if got := c.Names(Gene); !reflect.DeepEqual(got, want) {
		t.Errorf("Names(Gene) = %v, want %v", got, want)
	}

	if got := c.Names(Site); len(got) != 10 || got[0] != "BamHI" {
		t.Errorf("Names(Site) = %v", got)
	}
}

func TestReadCatalog(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		file      string
		contents  string
		wantSites map[string]string
		wantGenes int
		wantErr   bool
	}{
		{
			"sites only",
			"sites.yaml",
			"sites:\n  - name: NotI\n    seq: GCGGCCGC\n  - name: EcoRI\n    seq: GAATTC\n",
			map[string]string{"NotI": "GCGGCCGC", "EcoRI": "GAATTC"},
			4,
			false,
		},
		{
			"json with both",
			"both.json",
			`{"sites": [{"name": "XhoI", "seq": "CTCGAG"}], "genes": [{"name": "GFP", "seq": "ATGGTGAGCTAA"}]}`,
			map[string]string{"XhoI": "CTCGAG"},
			1,
			false,
		},
		{
			"empty sequence",
			"empty.yaml",
			"sites:\n  - name: NotI\n",
			nil,
			0,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.contents), 0644); err != nil {
				t.Fatal(err)
			}

			got, err := ReadCatalog(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if !reflect.DeepEqual(got.Sites, tt.wantSites) {
				t.Errorf("ReadCatalog() sites = %v, want %v", got.Sites, tt.wantSites)
			}
			if len(got.Genes) != tt.wantGenes {
				t.Errorf("ReadCatalog() genes = %v, want %d", got.Genes, tt.wantGenes)
			}
		})
	}

	if _, err := ReadCatalog(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("ReadCatalog() of a missing file should fail")
	}
}
