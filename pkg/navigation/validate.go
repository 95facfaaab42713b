// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Validate checks that no two items of the tree resolve to the same link
func Validate(t Tree) error {
	var errs *multierror.Error
	seen := map[string]string{}
	for _, g := range t {
		for _, it := range g.Items {
			if other, ok := seen[it.Link]; ok {
				errs = multierror.Append(errs, fmt.Errorf("link %s of %q in group %q is already used by %q", it.Link, it.Text, g.Text, other))
				continue
			}
			seen[it.Link] = it.Text
		}
	}
	return errs.ErrorOrNil()
}

// Compare checks that the trees of two versions differ only in their
// link prefixes. Every divergence is reported.
func Compare(va VersionID, a Tree, vb VersionID, b Tree) error {
	var errs *multierror.Error
	if len(a) != len(b) {
		return multierror.Append(errs, fmt.Errorf("version %s has %d groups, version %s has %d", va, len(a), vb, len(b)))
	}
	for i := range a {
		ga, gb := a[i], b[i]
		if ga.Text != gb.Text {
			errs = multierror.Append(errs, fmt.Errorf("group %d is %q in version %s and %q in version %s", i, ga.Text, va, gb.Text, vb))
		}
		if len(ga.Items) != len(gb.Items) {
			errs = multierror.Append(errs, fmt.Errorf("group %q has %d items in version %s and %d in version %s", ga.Text, len(ga.Items), va, len(gb.Items), vb))
			continue
		}
		for j := range ga.Items {
			ia, ib := ga.Items[j], gb.Items[j]
			if ia.Text != ib.Text {
				errs = multierror.Append(errs, fmt.Errorf("item %d of group %q is %q in version %s and %q in version %s", j, ga.Text, ia.Text, va, ib.Text, vb))
			}
			ra, rb := Relative(va, ia.Link), Relative(vb, ib.Link)
			if ra != rb {
				errs = multierror.Append(errs, fmt.Errorf("item %q links to %s in version %s and to %s in version %s", ia.Text, ra, va, rb, vb))
			}
		}
	}
	return errs.ErrorOrNil()
}

// Relative strips the version prefix from an absolute link. Links that do
// not carry the prefix are returned unchanged.
func Relative(v VersionID, link string) LinkPath {
	return LinkPath(strings.TrimPrefix(link, "/"+string(v)))
}
