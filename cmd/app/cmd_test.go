// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/lumo-framework/sitenav/cmd/configuration"
	"github.com/lumo-framework/sitenav/pkg/manifest"
	"github.com/lumo-framework/sitenav/pkg/render"
	"github.com/lumo-framework/sitenav/pkg/site"
	"github.com/lumo-framework/sitenav/pkg/util/tests"
	"github.com/lumo-framework/sitenav/pkg/writers/writersfakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"k8s.io/utils/pointer"
)

type fakeLoader struct {
	config *configuration.Config
	err    error
}

func (f *fakeLoader) Load() (*configuration.Config, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.config, nil
}

var _ = Describe("Sitenav command", func() {
	var (
		ctx    context.Context
		loader *fakeLoader
		out    *bytes.Buffer
		args   []string
		err    error
	)

	BeforeEach(func() {
		ctx = context.Background()
		loader = &fakeLoader{config: &configuration.Config{}}
		out = &bytes.Buffer{}
	})

	JustBeforeEach(func() {
		cmd := newCommand(ctx, loader)
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		err = cmd.Execute()
	})

	Describe("build", func() {
		var dir string

		BeforeEach(func() {
			dir = tests.TempDir("sitenav")
			args = []string{"--destination", dir}
		})

		AfterEach(func() {
			Expect(os.RemoveAll(dir)).To(Succeed())
		})

		It("writes the site configuration and a sidebar per version", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Join(dir, "config.json")).To(BeARegularFile())
			for _, v := range []string{"master", "0.1.0-alpha", "1.0.0-alpha"} {
				Expect(filepath.Join(dir, SidebarDir, v+".json")).To(BeARegularFile())
			}
			b, rErr := os.ReadFile(filepath.Join(dir, SidebarDir, "master.json"))
			Expect(rErr).NotTo(HaveOccurred())
			Expect(string(b)).To(ContainSubstring(`"link": "/master/release-notes"`))
		})

		Context("with selected versions and yaml format", func() {
			BeforeEach(func() {
				args = append(args, "--versions", "master", "--format", "yaml")
			})

			It("writes only the selected versions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(filepath.Join(dir, "config.yaml")).To(BeARegularFile())
				Expect(filepath.Join(dir, SidebarDir, "master.yaml")).To(BeARegularFile())
				Expect(filepath.Join(dir, SidebarDir, "1.0.0-alpha.yaml")).NotTo(BeAnExistingFile())
			})
		})

		Context("with html format", func() {
			BeforeEach(func() {
				args = append(args, "--format", "html")
			})

			It("writes sidebar previews only", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(filepath.Join(dir, "config.html")).NotTo(BeAnExistingFile())
				b, rErr := os.ReadFile(filepath.Join(dir, SidebarDir, "1.0.0-alpha.html"))
				Expect(rErr).NotTo(HaveOccurred())
				Expect(string(b)).To(ContainSubstring(`href="/1.0.0-alpha/installation"`))
			})
		})

		Context("with an unknown version", func() {
			BeforeEach(func() {
				args = append(args, "--versions", "9.9.9")
			})

			It("fails", func() {
				Expect(err).To(MatchError(ContainSubstring("unknown versions [9.9.9]")))
				Expect(dir).NotTo(BeAnExistingFile())
			})
		})

		Context("with an unknown format", func() {
			BeforeEach(func() {
				args = append(args, "--format", "toml")
			})

			It("fails", func() {
				Expect(err).To(MatchError("unknown format 'toml'. Must be one of [json yaml html]"))
			})
		})

		Context("with a missing docs dir", func() {
			BeforeEach(func() {
				args = append(args, "--docs-dir", filepath.Join(dir, "docs"))
			})

			It("reports the missing pages", func() {
				Expect(err).To(MatchError(ContainSubstring(`version master: "Release Notes" in group "Prologue"`)))
			})
		})

		Context("when the context is canceled", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
			})

			It("writes nothing", func() {
				Expect(err).To(MatchError(context.Canceled))
				Expect(dir).NotTo(BeAnExistingFile())
			})
		})
	})

	Describe("dry run", func() {
		BeforeEach(func() {
			args = []string{"--dry-run", "--destination", "site"}
		})

		It("prints the projected hierarchy", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("site\n"))
			Expect(out.String()).To(ContainSubstring("config.json ("))
			Expect(out.String()).To(ContainSubstring("    master.json ("))
			Expect(out.String()).To(ContainSubstring("Build finished in"))
		})

		Context("with a configuration file", func() {
			BeforeEach(func() {
				loader.config = &configuration.Config{Format: pointer.StringPtr("yaml")}
			})

			It("takes the format from the configuration", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(ContainSubstring("config.yaml ("))
			})

			Context("and a format flag", func() {
				BeforeEach(func() {
					args = append(args, "--format", "json")
				})

				It("prefers the flag", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(out.String()).To(ContainSubstring("config.json ("))
				})
			})
		})

		Context("when the configuration cannot be loaded", func() {
			BeforeEach(func() {
				loader.err = errors.New("broken")
			})

			It("fails", func() {
				Expect(err).To(MatchError("broken"))
			})
		})
	})

	Describe("sidebar", func() {
		Context("of a declared version", func() {
			BeforeEach(func() {
				args = []string{"sidebar", "1.0.0-alpha"}
			})

			It("prints the prefixed tree", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(ContainSubstring(`"text": "Installation"`))
				Expect(out.String()).To(ContainSubstring(`"link": "/1.0.0-alpha/installation"`))
			})
		})

		Context("of an undeclared version", func() {
			BeforeEach(func() {
				args = []string{"sidebar", "nightly", "--format", "yaml"}
			})

			It("prints the shared sidebar", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(ContainSubstring("link: /nightly/release-notes"))
			})
		})

		Context("of a version overriding the shared sidebar", func() {
			BeforeEach(func() {
				args = []string{"sidebar", "legacy", "-f", "../../pkg/manifest/testdata/override.yaml"}
			})

			It("prints the override", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(ContainSubstring(`"link": "/legacy/changelog"`))
				Expect(out.String()).NotTo(ContainSubstring("release-notes"))
			})
		})

		Context("without a version", func() {
			BeforeEach(func() {
				args = []string{"sidebar"}
			})

			It("fails", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("validate", func() {
		BeforeEach(func() {
			args = []string{"validate"}
		})

		It("accepts the embedded manifest", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("3 versions valid: [master 0.1.0-alpha 1.0.0-alpha]\n"))
		})

		Context("with diverging sidebars", func() {
			BeforeEach(func() {
				args = append(args, "--manifest", "../../pkg/manifest/testdata/override.yaml")
			})

			It("reports the drift", func() {
				Expect(err).To(MatchError(ContainSubstring("sidebar of version legacy diverges from version master")))
			})
		})
	})
})

var _ = Describe("write", func() {
	var (
		cfg *site.Config
		w   *writersfakes.FakeWriter
	)

	BeforeEach(func() {
		m, err := manifest.Default()
		Expect(err).NotTo(HaveOccurred())
		cfg, err = site.Assemble(m)
		Expect(err).NotTo(HaveOccurred())
		w = &writersfakes.FakeWriter{}
	})

	It("writes the configuration first, then the sidebars in selector order, leaving extensions to the writer", func() {
		Expect(write(w, "config", render.JSON, cfg)).To(Succeed())
		Expect(w.WriteCallCount()).To(Equal(4))
		name, path, _ := w.WriteArgsForCall(0)
		Expect(name).To(Equal("config"))
		Expect(path).To(BeEmpty())
		name, path, content := w.WriteArgsForCall(3)
		Expect(name).To(Equal("1.0.0-alpha"))
		Expect(path).To(Equal(SidebarDir))
		Expect(string(content)).To(ContainSubstring("/1.0.0-alpha/tasks"))
	})

	It("stops at the first failing write", func() {
		w.WriteReturnsOnCall(1, errors.New("disk full"))
		Expect(write(w, "config", render.YAML, cfg)).To(MatchError("disk full"))
		Expect(w.WriteCallCount()).To(Equal(2))
	})
})
