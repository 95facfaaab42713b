// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"github.com/lumo-framework/sitenav/pkg/head"
	"github.com/lumo-framework/sitenav/pkg/navigation"
	"github.com/lumo-framework/sitenav/pkg/theme"
)

// Config is the assembled site configuration in the shape the static
// site generator consumes
type Config struct {
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Base        string      `json:"base" yaml:"base"`
	CleanURLs   bool        `json:"cleanUrls" yaml:"cleanUrls"`
	ThemeConfig ThemeConfig `json:"themeConfig" yaml:"themeConfig"`
	Head        []head.Tag  `json:"head,omitempty" yaml:"head,omitempty"`
	Theme       Theme       `json:"theme" yaml:"theme"`
}

// ThemeConfig holds the settings of the default theme
type ThemeConfig struct {
	Search      *Search                    `json:"search,omitempty" yaml:"search,omitempty"`
	Logo        *Logo                      `json:"logo,omitempty" yaml:"logo,omitempty"`
	Nav         []NavEntry                 `json:"nav" yaml:"nav"`
	Sidebar     map[string]navigation.Tree `json:"sidebar" yaml:"sidebar"`
	SocialLinks []SocialLink               `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty"`
}

// Search selects the search provider
type Search struct {
	Provider string `json:"provider" yaml:"provider"`
}

// Logo holds logo images per color scheme
type Logo struct {
	Light string `json:"light,omitempty" yaml:"light,omitempty"`
	Dark  string `json:"dark,omitempty" yaml:"dark,omitempty"`
}

// NavEntry is a top navigation entry. An entry either links somewhere
// or groups Items into a dropdown.
type NavEntry struct {
	Text        string     `json:"text" yaml:"text"`
	Link        string     `json:"link,omitempty" yaml:"link,omitempty"`
	ActiveMatch string     `json:"activeMatch,omitempty" yaml:"activeMatch,omitempty"`
	Items       []NavEntry `json:"items,omitempty" yaml:"items,omitempty"`
}

// SocialLink is an icon link in the navigation bar
type SocialLink struct {
	Icon string `json:"icon" yaml:"icon"`
	Link string `json:"link" yaml:"link"`
}

// Theme names the extended theme and the components registered on it
type Theme struct {
	Extends    string            `json:"extends" yaml:"extends"`
	Components []theme.Component `json:"components,omitempty" yaml:"components,omitempty"`
}
