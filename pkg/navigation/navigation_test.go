// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation_test

import (
	"strings"

	"github.com/lumo-framework/sitenav/pkg/navigation"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var sidebar = []navigation.GroupSpec{
	{
		Text: "Prologue",
		Items: []navigation.ItemSpec{
			{Text: "Release Notes", Link: "/release-notes"},
			{Text: "Upgrade Guide", Link: "/upgrade-guide"},
		},
	},
	{
		Text: "Getting Started",
		Items: []navigation.ItemSpec{
			{Text: "Installation", Link: "/installation"},
			{Text: "Configuration", Link: "/configuration"},
			{Text: "Project Structure", Link: "/project-structure"},
			{Text: "Deployment", Link: "/deployment"},
		},
	},
	{
		Text: "Core Concepts",
		Items: []navigation.ItemSpec{
			{Text: "API Routing", Link: "/api-routing"},
		},
	},
	{
		Text: "The Basics",
		Items: []navigation.ItemSpec{
			{Text: "Request", Link: "/request"},
			{Text: "Response", Link: "/response"},
			{Text: "Events", Link: "/events"},
			{Text: "Subscribers", Link: "/subscribers"},
			{Text: "Tasks", Link: "/tasks"},
		},
	},
}

var _ = Describe("Navigation builder", func() {
	DescribeTable("prefixes every link with the version",
		func(version string) {
			tree := navigation.Build(navigation.VersionID(version), sidebar)
			for i, g := range tree {
				for j, it := range g.Items {
					Expect(it.Link).To(Equal("/" + version + string(sidebar[i].Items[j].Link)))
				}
			}
		},
		Entry("master", "master"),
		Entry("pre-release", "0.1.0-alpha"),
		Entry("release", "1.0.0-alpha"),
		Entry("garbage in, garbage out", "not a version?"),
	)

	It("builds the release notes link for master", func() {
		tree := navigation.Build("master", sidebar)
		Expect(tree[0].Text).To(Equal("Prologue"))
		Expect(tree[0].Items[0]).To(Equal(navigation.Item{Text: "Release Notes", Link: "/master/release-notes"}))
	})

	It("builds the installation link for 1.0.0-alpha", func() {
		tree := navigation.Build("1.0.0-alpha", sidebar)
		Expect(tree[1].Text).To(Equal("Getting Started"))
		Expect(tree[1].Items[0]).To(Equal(navigation.Item{Text: "Installation", Link: "/1.0.0-alpha/installation"}))
	})

	It("keeps the authored order", func() {
		tree := navigation.Build("master", sidebar)
		Expect(tree).To(HaveLen(len(sidebar)))
		for i, g := range tree {
			Expect(g.Text).To(Equal(sidebar[i].Text))
			Expect(g.Items).To(HaveLen(len(sidebar[i].Items)))
			for j, it := range g.Items {
				Expect(it.Text).To(Equal(sidebar[i].Items[j].Text))
			}
		}
	})

	It("is idempotent", func() {
		Expect(navigation.Build("master", sidebar)).To(Equal(navigation.Build("master", sidebar)))
	})

	It("does not share state with the definition", func() {
		tree := navigation.Build("master", sidebar)
		tree[0].Items[0].Text = "changed"
		Expect(sidebar[0].Items[0].Text).To(Equal("Release Notes"))
		Expect(navigation.Build("master", sidebar)[0].Items[0].Text).To(Equal("Release Notes"))
	})

	It("produces unique links", func() {
		tree := navigation.Build("master", sidebar)
		links := tree.Links()
		Expect(links).To(HaveLen(tree.Len()))
		seen := map[string]bool{}
		for _, l := range links {
			Expect(seen).NotTo(HaveKey(l))
			seen[l] = true
		}
		Expect(navigation.Validate(tree)).To(Succeed())
	})

	It("builds an empty tree from an empty definition", func() {
		tree := navigation.Build("master", nil)
		Expect(tree).To(BeEmpty())
		Expect(tree.Len()).To(Equal(0))
	})
})

var _ = Describe("Navigation validation", func() {
	It("reports duplicated links", func() {
		spec := []navigation.GroupSpec{
			{Text: "A", Items: []navigation.ItemSpec{{Text: "One", Link: "/one"}}},
			{Text: "B", Items: []navigation.ItemSpec{{Text: "Again", Link: "/one"}}},
		}
		err := navigation.Validate(navigation.Build("master", spec))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("/master/one"))
		Expect(err.Error()).To(ContainSubstring(`"Again"`))
	})

	DescribeTable("compares trees of two versions",
		func(v1, v2 string) {
			a := navigation.Build(navigation.VersionID(v1), sidebar)
			b := navigation.Build(navigation.VersionID(v2), sidebar)
			Expect(navigation.Compare(navigation.VersionID(v1), a, navigation.VersionID(v2), b)).To(Succeed())
		},
		Entry("master and release", "master", "1.0.0-alpha"),
		Entry("two releases", "0.1.0-alpha", "1.0.0-alpha"),
		Entry("same version", "master", "master"),
	)

	It("reports diverging labels and links", func() {
		diverged := []navigation.GroupSpec{
			{Text: "Prologue", Items: []navigation.ItemSpec{
				{Text: "Changelog", Link: "/release-notes"},
				{Text: "Upgrade Guide", Link: "/upgrading"},
			}},
		}
		a := navigation.Build("master", sidebar[:1])
		b := navigation.Build("0.1.0-alpha", diverged)
		err := navigation.Compare("master", a, "0.1.0-alpha", b)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`"Changelog"`))
		Expect(err.Error()).To(ContainSubstring("/upgrading"))
	})

	It("reports a different number of groups", func() {
		a := navigation.Build("master", sidebar)
		b := navigation.Build("0.1.0-alpha", sidebar[:2])
		err := navigation.Compare("master", a, "0.1.0-alpha", b)
		Expect(err).To(HaveOccurred())
		Expect(strings.Count(err.Error(), "groups")).To(Equal(1))
	})

	It("reports a different number of items", func() {
		short := []navigation.GroupSpec{{Text: "Prologue", Items: sidebar[0].Items[:1]}}
		err := navigation.Compare("master", navigation.Build("master", sidebar[:1]), "x", navigation.Build("x", short))
		Expect(err).To(MatchError(ContainSubstring("has 2 items in version master and 1 in version x")))
	})
})
