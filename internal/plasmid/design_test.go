package plasmid

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"EcoRI", "EcoRI"},
		{"EcoRI_site", "EcoRI"},
		{"AmpR_gene", "AmpR"},
		{"AmpR_site_gene", "AmpR"},
		{"lacZ_alpha", "lacZ_alpha"},
		{"lacZ_alpha_gene", "lacZ_alpha"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := Normalize(tt.token); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}

	if Normalize("EcoRI") != Normalize("EcoRI_site") {
		t.Error("EcoRI and EcoRI_site should be the same feature")
	}
}

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Request
	}{
		{
			"name only",
			"EcoRI_site\n",
			Request{Token: "EcoRI_site", Name: "EcoRI", Fields: []string{"EcoRI_site"}},
		},
		{
			"extra fields",
			"  AmpR_gene, ampicillin, 861\t",
			Request{Token: "AmpR_gene", Name: "AmpR", Fields: []string{"AmpR_gene", "ampicillin", "861"}},
		},
		{
			"comma without a space isn't a separator",
			"EcoRI_site,BamHI_site",
			Request{Token: "EcoRI_site,BamHI_site", Name: "EcoRI,BamHI", Fields: []string{"EcoRI_site,BamHI_site"}},
		},
		{
			"blank",
			"   ",
			Request{Token: "", Name: "", Fields: []string{""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRequest(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseDesign(t *testing.T) {
	reqs, err := ParseDesign(strings.NewReader("EcoRI_site, 1\n\nAmpR_gene\r\nXyzI_site"))
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	var lines []int
	for _, r := range reqs {
		names = append(names, r.Name)
		lines = append(lines, r.Line)
	}

	if want := []string{"EcoRI", "", "AmpR", "XyzI"}; !reflect.DeepEqual(names, want) {
		t.Errorf("ParseDesign() names = %v, want %v", names, want)
	}
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(lines, want) {
		t.Errorf("ParseDesign() lines = %v, want %v", lines, want)
	}
}

func TestReadDesign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.txt")
	if err := os.WriteFile(path, []byte("BamHI_site, cut\nTetR (tetA/tetR)_gene\n"), 0644); err != nil {
		t.Fatal(err)
	}

	reqs, err := ReadDesign(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(reqs) != 2 || reqs[0].Name != "BamHI" || reqs[1].Name != "TetR (tetA/tetR)" {
		t.Errorf("ReadDesign() = %+v", reqs)
	}

	if _, err := ReadDesign(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDesign() of a missing file err = %v", err)
	}
}
