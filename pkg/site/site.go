// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/lumo-framework/sitenav/pkg/manifest"
	"github.com/lumo-framework/sitenav/pkg/navigation"
	"github.com/lumo-framework/sitenav/pkg/theme"
	"k8s.io/klog/v2"
)

// VersionSelectorText is the label of the version dropdown
const VersionSelectorText = "Version"

// SidebarKey is the sidebar map key of version v
func SidebarKey(v navigation.VersionID) string {
	return "/" + string(v) + "/"
}

// ActiveMatch is the pattern marking the version selector entry of v
// active
func ActiveMatch(v navigation.VersionID) string {
	return "^/" + string(v)
}

// Assemble builds the site configuration described by the manifest. The
// manifest is validated first, then one navigation tree is built per
// version and the result is checked for drift between versions.
func Assemble(m *manifest.Manifest) (*Config, error) {
	if err := manifest.Validate(m); err != nil {
		return nil, err
	}
	cfg := &Config{
		Title:       m.Title,
		Description: m.Description,
		Base:        m.Base,
		CleanURLs:   m.CleanURLs,
		Head:        m.Head,
		ThemeConfig: ThemeConfig{
			Sidebar: make(map[string]navigation.Tree, len(m.Versions)),
		},
	}
	if m.Search != nil {
		cfg.ThemeConfig.Search = &Search{Provider: m.Search.Provider}
	}
	if m.Logo != nil {
		cfg.ThemeConfig.Logo = &Logo{Light: m.Logo.Light, Dark: m.Logo.Dark}
	}

	selector := NavEntry{Text: VersionSelectorText}
	for _, v := range m.Versions {
		tree := navigation.Build(v.ID, m.SidebarOf(v))
		cfg.ThemeConfig.Sidebar[SidebarKey(v.ID)] = tree
		selector.Items = append(selector.Items, NavEntry{
			Text:        v.Text,
			Link:        landingPage(v.ID, tree),
			ActiveMatch: ActiveMatch(v.ID),
		})
		klog.V(4).Infof("built sidebar of version %s with %d groups and %d items", v.ID, len(tree), tree.Len())
	}
	cfg.ThemeConfig.Nav = append(cfg.ThemeConfig.Nav, selector)
	for _, l := range m.Links {
		cfg.ThemeConfig.Nav = append(cfg.ThemeConfig.Nav, NavEntry{Text: l.Text, Link: l.Link})
	}
	for _, s := range m.Social {
		cfg.ThemeConfig.SocialLinks = append(cfg.ThemeConfig.SocialLinks, SocialLink{Icon: s.Icon, Link: s.Link})
	}

	t := theme.Default()
	if m.Theme != nil {
		t = *m.Theme
	}
	registry := theme.NewRegistry()
	t.EnhanceApp(registry)
	cfg.Theme = Theme{Extends: t.Base(), Components: registry.Components()}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// landingPage is the first page of the tree, the version root when the
// tree is empty
func landingPage(v navigation.VersionID, tree navigation.Tree) string {
	if links := tree.Links(); len(links) > 0 {
		return links[0]
	}
	return SidebarKey(v)
}

// Versions returns the version ids of the version selector, in order
func (c *Config) Versions() []navigation.VersionID {
	var ids []navigation.VersionID
	for _, e := range c.ThemeConfig.Nav {
		if e.Text != VersionSelectorText {
			continue
		}
		for _, it := range e.Items {
			ids = append(ids, navigation.VersionID(strings.TrimPrefix(it.ActiveMatch, "^/")))
		}
	}
	return ids
}

// Sidebar returns the navigation tree of version v
func (c *Config) Sidebar(v navigation.VersionID) (navigation.Tree, bool) {
	t, ok := c.ThemeConfig.Sidebar[SidebarKey(v)]
	return t, ok
}

// Validate reports configuration drift: versions in the selector without
// a sidebar, sidebars without a selector entry, duplicated links and
// sidebars that differ in structure from the first version's.
func (c *Config) Validate() error {
	var errs *multierror.Error
	versions := c.Versions()
	selected := map[string]bool{}
	for _, v := range versions {
		key := SidebarKey(v)
		selected[key] = true
		if _, ok := c.ThemeConfig.Sidebar[key]; !ok {
			errs = multierror.Append(errs, fmt.Errorf("version %s is in the version selector but has no sidebar", v))
		}
	}
	var orphans []string
	for key := range c.ThemeConfig.Sidebar {
		if !selected[key] {
			orphans = append(orphans, key)
		}
	}
	sort.Strings(orphans)
	for _, key := range orphans {
		errs = multierror.Append(errs, fmt.Errorf("sidebar %s has no entry in the version selector", key))
	}

	var (
		first     navigation.VersionID
		firstTree navigation.Tree
		found     bool
	)
	for _, v := range versions {
		tree, ok := c.Sidebar(v)
		if !ok {
			continue
		}
		if err := navigation.Validate(tree); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("sidebar of version %s: %w", v, err))
		}
		if !found {
			first, firstTree, found = v, tree, true
			continue
		}
		if err := navigation.Compare(first, firstTree, v, tree); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("sidebar of version %s diverges from version %s: %w", v, first, err))
		}
	}
	return errs.ErrorOrNil()
}
