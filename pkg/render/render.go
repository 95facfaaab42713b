// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/lumo-framework/sitenav/pkg/navigation"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Format is an output format
type Format int

const (
	// JSON is indented JSON, the default
	JSON Format = iota
	// YAML output
	YAML
	// HTML renders navigation trees as nested lists
	HTML
)

var formats = map[string]Format{
	"json": JSON,
	"yaml": YAML,
	"yml":  YAML,
	"html": HTML,
}

// ParseFormat maps a format name to a Format
func ParseFormat(s string) (Format, error) {
	if f, ok := formats[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown format '%s'. Must be one of %v", s, []string{"json", "yaml", "html"})
}

// Ext is the file extension of the format
func (f Format) Ext() string {
	switch f {
	case YAML:
		return "yaml"
	case HTML:
		return "html"
	default:
		return "json"
	}
}

func (f Format) String() string {
	return f.Ext()
}

// gmRenderer converts markdown with GitHub Flavored Markdown extensions
var gmRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Marshal serializes v in format f. HTML only supports navigation
// trees.
func Marshal(f Format, v interface{}) ([]byte, error) {
	switch f {
	case YAML:
		var b bytes.Buffer
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	case HTML:
		tree, ok := v.(navigation.Tree)
		if !ok {
			return nil, fmt.Errorf("format html supports navigation trees only, got %T", v)
		}
		return Tree(tree)
	default:
		var b bytes.Buffer
		enc := json.NewEncoder(&b)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	}
}

// Markdown writes the tree as a nested markdown list: one bullet per
// group with its items as links.
func Markdown(tree navigation.Tree) []byte {
	var b bytes.Buffer
	for _, g := range tree {
		fmt.Fprintf(&b, "- %s\n", escape(g.Text))
		for _, it := range g.Items {
			fmt.Fprintf(&b, "  - [%s](<%s>)\n", escape(it.Text), linkEscaper.Replace(it.Link))
		}
	}
	return b.Bytes()
}

// Tree renders the tree to HTML as a preview of the sidebar
func Tree(tree navigation.Tree) ([]byte, error) {
	var b bytes.Buffer
	if err := gmRenderer.Convert(Markdown(tree), &b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

var (
	mdEscaper   = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`, `*`, `\*`, `_`, `\_`, "`", "\\`", `<`, `\<`, "\n", " ", "\r", " ")
	linkEscaper = strings.NewReplacer(`<`, "%3C", `>`, "%3E", ` `, "%20", `\`, "%5C", "\n", "%0A", "\r", "%0D")
	// ordered list marker at the start of a line
	orderedMarker = regexp.MustCompile(`^(\d{1,9})([.)])`)
)

// escape makes s plain inline text, also at the start of a list item
// where block markers would open a heading, quote, list or fence
func escape(s string) string {
	s = mdEscaper.Replace(strings.TrimSpace(s))
	if s != "" && strings.ContainsRune("#+->=~|", rune(s[0])) {
		return `\` + s
	}
	return orderedMarker.ReplaceAllString(s, `$1\$2`)
}
