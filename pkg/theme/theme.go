// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package theme

// DefaultTheme is the name of the site generator's built-in theme
const DefaultTheme = "default"

// Component is a presentational UI component made available to pages
// under Name. Its implementation lives in the theme sources and is opaque
// here, Source only locates it.
type Component struct {
	Name   string `yaml:"name" json:"name"`
	Source string `yaml:"source" json:"source"`
}

// Registry collects the components a theme registers
type Registry struct {
	components []Component
	index      map[string]int
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{index: map[string]int{}}
}

// Register makes c available under name. Registering an existing name
// replaces the earlier component in place.
func (r *Registry) Register(name string, c Component) {
	c.Name = name
	if i, ok := r.index[name]; ok {
		r.components[i] = c
		return
	}
	r.index[name] = len(r.components)
	r.components = append(r.components, c)
}

// Lookup returns the component registered under name
func (r *Registry) Lookup(name string) (Component, bool) {
	i, ok := r.index[name]
	if !ok {
		return Component{}, false
	}
	return r.components[i], true
}

// Components returns the registered components in registration order
func (r *Registry) Components() []Component {
	out := make([]Component, len(r.components))
	copy(out, r.components)
	return out
}

// Theme extends a base theme with additional components
type Theme struct {
	Extends    string      `yaml:"extends,omitempty" json:"extends"`
	Components []Component `yaml:"components,omitempty" json:"components,omitempty"`
}

// Default is the docs theme: the generator's default theme plus the
// Spacer and Contributors components.
func Default() Theme {
	return Theme{
		Extends: DefaultTheme,
		Components: []Component{
			{Name: "Spacer", Source: "./components/Spacer.vue"},
			{Name: "Contributors", Source: "./components/Contributors.vue"},
		},
	}
}

// EnhanceApp registers all theme components into r
func (t Theme) EnhanceApp(r *Registry) {
	for _, c := range t.Components {
		r.Register(c.Name, c)
	}
}

// Base returns the extended theme, DefaultTheme when unset
func (t Theme) Base() string {
	if t.Extends == "" {
		return DefaultTheme
	}
	return t.Extends
}
