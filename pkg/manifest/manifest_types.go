// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"github.com/lumo-framework/sitenav/pkg/head"
	"github.com/lumo-framework/sitenav/pkg/navigation"
	"github.com/lumo-framework/sitenav/pkg/theme"
)

// Manifest describes a versioned documentation site
type Manifest struct {
	// Title of the site
	Title string `yaml:"title"`
	// Description used for the site meta description
	Description string `yaml:"description,omitempty"`
	// Base is the URL path the site is served under
	Base string `yaml:"base,omitempty"`
	// CleanURLs serves pages without the .html extension
	CleanURLs bool `yaml:"cleanUrls,omitempty"`
	// Logo shown in the navigation bar
	Logo *Logo `yaml:"logo,omitempty"`
	// Search configures the search provider
	Search *Search `yaml:"search,omitempty"`
	// Versions are the documentation versions, in selector order
	Versions []Version `yaml:"versions"`
	// Sidebar is the navigation definition shared by all versions
	Sidebar []navigation.GroupSpec `yaml:"sidebar"`
	// Links are additional top navigation links
	Links []Link `yaml:"links,omitempty"`
	// Social links shown in the navigation bar
	Social []SocialLink `yaml:"social,omitempty"`
	// Head tags injected into every page
	Head []head.Tag `yaml:"head,omitempty"`
	// Theme the site extends
	Theme *theme.Theme `yaml:"theme,omitempty"`

	// URL the manifest was loaded from
	URL string `yaml:"-"`
}

// Version is an entry of the version selector
type Version struct {
	// ID is the VersionID and URL path segment
	ID navigation.VersionID `yaml:"id"`
	// Text is the selector label, defaults to ID
	Text string `yaml:"text,omitempty"`
	// Sidebar overrides the shared sidebar for this version
	Sidebar []navigation.GroupSpec `yaml:"sidebar,omitempty"`
}

// Logo holds the logo image paths per color scheme
type Logo struct {
	Light string `yaml:"light,omitempty"`
	Dark  string `yaml:"dark,omitempty"`
}

// Search configures the search provider
type Search struct {
	Provider string `yaml:"provider"`
}

// Link is a plain top navigation link
type Link struct {
	Text string `yaml:"text"`
	Link string `yaml:"link"`
}

// SocialLink is an icon link
type SocialLink struct {
	Icon string `yaml:"icon"`
	Link string `yaml:"link"`
}

// SidebarOf returns the sidebar definition used for version v
func (m *Manifest) SidebarOf(v Version) []navigation.GroupSpec {
	if len(v.Sidebar) > 0 {
		return v.Sidebar
	}
	return m.Sidebar
}

// VersionIDs returns the version ids in selector order
func (m *Manifest) VersionIDs() []navigation.VersionID {
	ids := make([]navigation.VersionID, 0, len(m.Versions))
	for _, v := range m.Versions {
		ids = append(ids, v.ID)
	}
	return ids
}
