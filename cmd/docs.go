package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// docType codes whether the command is the root or a child
type docType int

const (
	root docType = iota
	child
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType  docType
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"plascon":       {root, "plascon", 0, ""},
	"plascon_make":  {child, "make", 0, "plascon"},
	"plascon_ori":   {child, "ori", 1, "plascon"},
	"plascon_sites": {child, "sites", 2, "plascon"},
	"plascon_genes": {child, "genes", 3, "plascon"},
}

// docsCmd writes Markdown documentation for every command
var docsCmd = &cobra.Command{
	Use:    "docs [directory]",
	Short:  "Write Markdown documentation for each command",
	Args:   exactArgs(1),
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return makeDocs(args[0])
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create docs directory: %w", err)
	}

	RootCmd.DisableAutoGenTag = true
	return doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, ok := metaMap[base]
	if !ok {
		return ""
	}

	switch m.docType {
	case root:
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
	}

	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "plascon" {
		return "/"
	}
	return base
}
