// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/lumo-framework/sitenav/pkg/navigation"
	"github.com/lumo-framework/sitenav/pkg/site"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"k8s.io/klog/v2"
)

var (
	// parser extension for GitHub Flavored Markdown & Frontmatter support
	extensions = []goldmark.Extender{
		extension.GFM,
		meta.Meta,
	}
	// goldmark.Markdown parser with GFM extensions
	gmParser = goldmark.New(goldmark.WithExtensions(extensions...))
)

// ErrPageNotFound is returned by Resolve when none of the page
// candidates of a link exists
type ErrPageNotFound struct {
	Link       string
	Candidates []string
}

// Error returns "page link not found" error
func (e *ErrPageNotFound) Error() string {
	return fmt.Sprintf("page %s not found, looked for %s", e.Link, strings.Join(e.Candidates, ", "))
}

// Is reports ErrPageNotFound as os.ErrNotExist
func (e *ErrPageNotFound) Is(target error) bool {
	return target == os.ErrNotExist
}

// Checker verifies that every sidebar link resolves to a page of the
// documentation sources under Root
type Checker struct {
	Root string
}

// Page is a documentation source page
type Page struct {
	// Path of the markdown file
	Path string
	// Title from the front matter or the first heading
	Title string
}

// Check resolves every sidebar item of every version. Missing pages are
// errors, a page title different from the item label is a warning.
func (c *Checker) Check(cfg *site.Config) error {
	var errs *multierror.Error
	for _, v := range cfg.Versions() {
		tree, ok := cfg.Sidebar(v)
		if !ok {
			continue
		}
		for _, g := range tree {
			for _, it := range g.Items {
				page, err := c.Resolve(it.Link)
				if err != nil {
					errs = multierror.Append(errs, fmt.Errorf("version %s: %q in group %q: %w", v, it.Text, g.Text, err))
					continue
				}
				if page.Title != "" && page.Title != it.Text {
					klog.Warningf("version %s: sidebar label %q differs from title %q of %s", v, it.Text, page.Title, page.Path)
				}
			}
		}
		klog.V(2).Infof("checked %d pages of version %s", tree.Len(), v)
	}
	return errs.ErrorOrNil()
}

// Resolve maps an absolute link to its page source following clean URL
// rules: /v/page is served from v/page.md or v/page/index.md.
func (c *Checker) Resolve(link string) (*Page, error) {
	rel := filepath.Clean(filepath.FromSlash(strings.Trim(link, "/")))
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("link %s resolves outside of %s", link, c.Root)
	}
	candidates := []string{
		filepath.Join(c.Root, rel+".md"),
		filepath.Join(c.Root, rel, "index.md"),
	}
	for _, p := range candidates {
		content, err := os.ReadFile(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		title, err := Title(content)
		if err != nil {
			return nil, fmt.Errorf("can't parse %s: %w", p, err)
		}
		return &Page{Path: p, Title: title}, nil
	}
	return nil, &ErrPageNotFound{Link: link, Candidates: candidates}
}

// Title returns the page title: the front matter title when present,
// the text of the first level one heading otherwise
func Title(source []byte) (string, error) {
	reader := text.NewReader(source)
	context := parser.NewContext()
	doc := gmParser.Parser().Parse(reader, parser.WithContext(context))
	fm, err := meta.TryGet(context)
	if err != nil {
		return "", err
	}
	if t, ok := fm["title"].(string); ok && t != "" {
		return t, nil
	}
	var title string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = string(h.Text(source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title, err
}

// Missing returns the links of tree without a page under root. Pages
// that exist but can't be read are logged.
func Missing(root string, tree navigation.Tree) []string {
	c := &Checker{Root: root}
	var missing []string
	for _, l := range tree.Links() {
		_, err := c.Resolve(l)
		switch {
		case err == nil:
		case errors.Is(err, os.ErrNotExist):
			missing = append(missing, l)
		default:
			klog.Warningf("%s: %v", l, err)
		}
	}
	return missing
}
