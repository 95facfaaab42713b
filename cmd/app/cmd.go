// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"strings"
	"sync"

	"github.com/lumo-framework/sitenav/cmd/configuration"
	"github.com/lumo-framework/sitenav/cmd/gendocs"
	"github.com/lumo-framework/sitenav/cmd/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

var klogFlags sync.Once

// NewCommand creates a new root command and propagates
// the context to its Run callback closure
func NewCommand(ctx context.Context) *cobra.Command {
	return newCommand(ctx, new(configuration.DefaultConfigurationLoader))
}

func newCommand(ctx context.Context, loader configuration.Loader) *cobra.Command {
	vip := viper.New()
	vip.SetEnvPrefix("SITENAV")
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "sitenav",
		Short: "Assemble the configuration of a versioned documentation site",
		Long: `Assemble the configuration of a versioned documentation site.

The site manifest declares the versions, the sidebar shared by all versions,
the top navigation, head tags and theme components. sitenav builds one
sidebar per version, prefixing every link with the version, validates the
result and writes the site configuration.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyConfiguration(vip, loader)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return exec(ctx, vip, cmd.OutOrStdout())
		},
	}

	configureFlags(cmd, vip)

	cmd.AddCommand(newSidebarCmd(ctx, vip))
	cmd.AddCommand(newValidateCmd(ctx, vip))
	cmd.AddCommand(version.NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	klogFlags.Do(func() { klog.InitFlags(nil) })
	AddFlags(cmd)

	return cmd
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}

// applyConfiguration sets the values of the user configuration file as
// viper defaults, so flags and environment take precedence over them
func applyConfiguration(vip *viper.Viper, loader configuration.Loader) error {
	config, err := loader.Load()
	if err != nil {
		return err
	}
	if config.Manifest != nil {
		vip.SetDefault("manifest", *config.Manifest)
	}
	if config.Destination != nil {
		vip.SetDefault("destination", *config.Destination)
	}
	if config.DocsDir != nil {
		vip.SetDefault("docs-dir", *config.DocsDir)
	}
	if config.Format != nil {
		vip.SetDefault("format", *config.Format)
	}
	if len(config.Versions) > 0 {
		vip.SetDefault("versions", config.Versions)
	}
	if len(config.Variables) > 0 {
		vip.SetDefault("variables", config.Variables)
	}
	return nil
}
