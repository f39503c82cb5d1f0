package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"backbone", c.Backbone, Backbone},
		{"scan window", c.ScanWindow, 1000},
		{"stride", c.Stride, 100},
		{"window", c.Window, 500},
		{"spacer length", c.SpacerLength, 6},
		{"output dir", c.OutputDir, "Output"},
		{"output file", c.OutputFile, "Output.fa"},
		{"seed", c.Seed, uint64(0)},
		{"strict", c.Strict, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("New() %s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	defer func() {
		viper.Reset()
		SetDefaults()
	}()

	settings := filepath.Join(t.TempDir(), "settings.yaml")
	contents := "seed: 42\nstrict: true\nout-dir: plasmids\n"
	if err := os.WriteFile(settings, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Setup(settings); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	c := New()
	if c.Seed != 42 || !c.Strict || c.OutputDir != "plasmids" {
		t.Errorf("New() = %+v, want seed 42, strict, out-dir plasmids", c)
	}

	// settings that aren't in the file keep their defaults
	if c.Window != 500 || c.Backbone != Backbone {
		t.Errorf("New() lost defaults: %+v", c)
	}
}

func TestSetup_missingFile(t *testing.T) {
	defer func() {
		viper.Reset()
		SetDefaults()
	}()

	if err := Setup(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Setup() of a missing settings file should fail")
	}
}
