// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configureFlags(command *cobra.Command, vip *viper.Viper) {
	command.PersistentFlags().StringP("manifest", "f", "",
		"Site manifest path. The embedded Lumo Framework manifest is used when empty.")
	_ = vip.BindPFlag("manifest", command.PersistentFlags().Lookup("manifest"))

	command.PersistentFlags().StringToString("variables", map[string]string{},
		"Variables applied to parameterized (using Go template) manifest.")
	_ = vip.BindPFlag("variables", command.PersistentFlags().Lookup("variables"))

	command.PersistentFlags().StringSlice("versions", []string{},
		"Versions to include. All versions of the manifest are included when empty.")
	_ = vip.BindPFlag("versions", command.PersistentFlags().Lookup("versions"))

	command.PersistentFlags().String("format", "json",
		"Output format. Must be one of: `json`, `yaml` or `html` (sidebars only).")
	_ = vip.BindPFlag("format", command.PersistentFlags().Lookup("format"))

	command.PersistentFlags().String("docs-dir", "",
		"If specified, every sidebar link is checked to resolve to a markdown page in this directory.")
	_ = vip.BindPFlag("docs-dir", command.PersistentFlags().Lookup("docs-dir"))

	command.Flags().StringP("destination", "d", ".vitepress",
		"Destination path.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().String("config-name", "config",
		"Name of the written site configuration file, without extension.")
	_ = vip.BindPFlag("config-name", command.Flags().Lookup("config-name"))

	command.Flags().Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing files, it will output the projected file/folder hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))
}
