// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

// VersionID identifies a documentation version, e.g. a release tag or
// "master". It is used verbatim as the first URL path segment.
type VersionID string

// LinkPath is a page path relative to a version. Authored link paths
// start with "/", e.g. "/installation".
type LinkPath string

// ItemSpec is an authored sidebar entry before prefixing
type ItemSpec struct {
	Text string   `yaml:"text" json:"text"`
	Link LinkPath `yaml:"link" json:"link"`
}

// GroupSpec is an authored, named group of sidebar entries
type GroupSpec struct {
	Text  string     `yaml:"text" json:"text"`
	Items []ItemSpec `yaml:"items" json:"items"`
}

// Item is a leaf of the navigation tree. Link is absolute and carries
// the version prefix.
type Item struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

// Group is a named, ordered collection of items
type Group struct {
	Text  string `json:"text" yaml:"text"`
	Items []Item `json:"items" yaml:"items"`
}

// Tree is the complete sidebar of one version
type Tree []Group

// Prefixer maps a version-relative link path to an absolute path
type Prefixer func(LinkPath) string

// WithPrefix returns the Prefixer for version v:
// "/" + v + linkPath
func WithPrefix(v VersionID) Prefixer {
	prefix := "/" + string(v)
	return func(p LinkPath) string {
		return prefix + string(p)
	}
}

// Build produces the navigation tree of version v from the authored
// definition. Group and item order are kept as authored. Build never
// fails and never retains references to spec.
func Build(v VersionID, spec []GroupSpec) Tree {
	withPrefix := WithPrefix(v)
	tree := make(Tree, 0, len(spec))
	for _, g := range spec {
		items := make([]Item, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, Item{Text: it.Text, Link: withPrefix(it.Link)})
		}
		tree = append(tree, Group{Text: g.Text, Items: items})
	}
	return tree
}

// Links returns all item links of the tree in display order
func (t Tree) Links() []string {
	var links []string
	for _, g := range t {
		for _, it := range g.Items {
			links = append(links, it.Link)
		}
	}
	return links
}

// Len is the number of items in the tree
func (t Tree) Len() int {
	n := 0
	for _, g := range t {
		n += len(g.Items)
	}
	return n
}
