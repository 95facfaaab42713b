// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/lumo-framework/sitenav/pkg/navigation"
)

// Validate performs validation of the manifest. All violations are
// collected and returned together.
func Validate(m *Manifest) error {
	var errs *multierror.Error
	if m == nil {
		return fmt.Errorf("manifest is nil")
	}
	if strings.TrimSpace(m.Title) == "" {
		errs = multierror.Append(errs, fmt.Errorf("manifest property title is mandatory"))
	}
	if len(m.Versions) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("at least one version must be present in a manifest"))
	}
	if len(m.Sidebar) == 0 {
		for _, v := range m.Versions {
			if len(v.Sidebar) == 0 {
				errs = multierror.Append(errs, fmt.Errorf("version %s has no sidebar and the manifest defines no shared sidebar", v.ID))
			}
		}
	}
	ids := map[navigation.VersionID]bool{}
	for i, v := range m.Versions {
		switch {
		case v.ID == "":
			errs = multierror.Append(errs, fmt.Errorf("version %d has no id", i))
		case v.ID == "." || v.ID == ".." || strings.ContainsAny(string(v.ID), "/ \t?#"):
			errs = multierror.Append(errs, fmt.Errorf("version id %q must be a single URL path segment", v.ID))
		case ids[v.ID]:
			errs = multierror.Append(errs, fmt.Errorf("version %s is listed more than once", v.ID))
		}
		ids[v.ID] = true
		if len(v.Sidebar) > 0 {
			errs = multierror.Append(errs, validateSidebar(fmt.Sprintf("sidebar of version %s", v.ID), v.Sidebar)...)
		}
	}
	errs = multierror.Append(errs, validateSidebar("sidebar", m.Sidebar)...)
	for _, l := range m.Links {
		if l.Text == "" || l.Link == "" {
			errs = multierror.Append(errs, fmt.Errorf("navigation link %q must have text and link", l.Text+l.Link))
		}
	}
	for _, s := range m.Social {
		if s.Icon == "" || s.Link == "" {
			errs = multierror.Append(errs, fmt.Errorf("social link %q must have icon and link", s.Icon+s.Link))
		}
	}
	if m.Theme != nil {
		for _, c := range m.Theme.Components {
			if c.Name == "" {
				errs = multierror.Append(errs, fmt.Errorf("theme component with source %q has no name", c.Source))
			}
		}
	}
	return errs.ErrorOrNil()
}

func validateSidebar(where string, groups []navigation.GroupSpec) []error {
	var errs []error
	links := map[navigation.LinkPath]string{}
	for i, g := range groups {
		if g.Text == "" {
			errs = append(errs, fmt.Errorf("%s: group %d has no text", where, i))
		}
		if len(g.Items) == 0 {
			errs = append(errs, fmt.Errorf("%s: group %q has no items", where, g.Text))
		}
		for _, it := range g.Items {
			if it.Text == "" {
				errs = append(errs, fmt.Errorf("%s: item %s in group %q has no text", where, it.Link, g.Text))
			}
			if !strings.HasPrefix(string(it.Link), "/") {
				errs = append(errs, fmt.Errorf("%s: link %q of %q must start with /", where, it.Link, it.Text))
				continue
			}
			if hasDotSegment(it.Link) {
				errs = append(errs, fmt.Errorf("%s: link %q of %q must not contain . or .. segments", where, it.Link, it.Text))
				continue
			}
			if other, ok := links[it.Link]; ok {
				errs = append(errs, fmt.Errorf("%s: link %s of %q is already used by %q", where, it.Link, it.Text, other))
				continue
			}
			links[it.Link] = it.Text
		}
	}
	return errs
}

func hasDotSegment(link navigation.LinkPath) bool {
	for _, s := range strings.Split(string(link), "/") {
		if s == "." || s == ".." {
			return true
		}
	}
	return false
}
