// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"io"

	"github.com/lumo-framework/sitenav/pkg/manifest"
	"github.com/lumo-framework/sitenav/pkg/navigation"
	"github.com/lumo-framework/sitenav/pkg/pages"
	"github.com/lumo-framework/sitenav/pkg/render"
	"github.com/lumo-framework/sitenav/pkg/site"
	"github.com/lumo-framework/sitenav/pkg/writers"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// SidebarDir is the destination subdirectory of the per-version sidebars
const SidebarDir = "sidebar"

func getOptions(vip *viper.Viper) (*Options, error) {
	options := &Options{}
	if err := vip.Unmarshal(options); err != nil {
		return nil, err
	}
	return options, nil
}

func exec(ctx context.Context, vip *viper.Viper, out io.Writer) error {
	options, err := getOptions(vip)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(options.Format)
	if err != nil {
		return err
	}
	cfg, err := assemble(options)
	if err != nil {
		return err
	}
	if err = checkPages(options, cfg); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	klog.Infof("Output dir: %s", options.DestinationPath)
	w := newWriters(options, format, out)
	if err = write(w.Writer, options.ConfigName, format, cfg); err != nil {
		return err
	}
	if w.DryRunWriter != nil {
		return w.DryRunWriter.Flush()
	}
	return nil
}

// assemble loads the manifest, narrows it down to the selected versions
// and assembles the site configuration
func assemble(options *Options) (*site.Config, error) {
	m, err := loadManifest(options)
	if err != nil {
		return nil, err
	}
	if err = m.Select(options.Versions); err != nil {
		return nil, err
	}
	return site.Assemble(m)
}

func loadManifest(options *Options) (*manifest.Manifest, error) {
	path := options.ManifestPath
	if path == "" {
		path = manifest.DefaultURL
	}
	klog.Infof("Manifest: %s", path)
	return manifest.Load(options.ManifestPath, options.Variables)
}

func checkPages(options *Options, cfg *site.Config) error {
	if options.DocsDir == "" {
		return nil
	}
	klog.Infof("Checking pages in %s", options.DocsDir)
	c := &pages.Checker{Root: options.DocsDir}
	return c.Check(cfg)
}

func newWriters(options *Options, format render.Format, out io.Writer) *Writers {
	if options.DryRun {
		d := writers.NewDryRunWritersFactory(out)
		return &Writers{
			Writer:       d.GetWriter(options.DestinationPath, format.Ext()),
			DryRunWriter: d,
		}
	}
	return &Writers{
		Writer: &writers.FSWriter{Root: options.DestinationPath, Ext: format.Ext()},
	}
}

// write stores the site configuration and the sidebar of every version.
// The html format previews sidebars only. Writers add the extension.
func write(w writers.Writer, name string, format render.Format, cfg *site.Config) error {
	if format != render.HTML {
		b, err := render.Marshal(format, cfg)
		if err != nil {
			return err
		}
		if err = w.Write(name, "", b); err != nil {
			return err
		}
	}
	for _, v := range cfg.Versions() {
		tree, _ := cfg.Sidebar(v)
		b, err := render.Marshal(format, tree)
		if err != nil {
			return err
		}
		if err = w.Write(string(v), SidebarDir, b); err != nil {
			return err
		}
		klog.V(4).Infof("sidebar of version %s written with %d links", v, tree.Len())
	}
	return nil
}

// sidebarOf builds the tree of version v from the manifest. Versions the
// manifest does not declare get the shared sidebar.
func sidebarOf(m *manifest.Manifest, v navigation.VersionID) navigation.Tree {
	for _, version := range m.Versions {
		if version.ID == v {
			return navigation.Build(v, m.SidebarOf(version))
		}
	}
	klog.Warningf("version %s is not declared in the manifest, using the shared sidebar", v)
	return navigation.Build(v, m.Sidebar)
}
