// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"strings"

	"github.com/lumo-framework/sitenav/pkg/navigation"
	"github.com/lumo-framework/sitenav/pkg/pages"
	"github.com/lumo-framework/sitenav/pkg/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func newSidebarCmd(ctx context.Context, vip *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "sidebar <version>",
		Short: "Prints the sidebar of a version",
		Long: `Prints the sidebar of a version in the selected format.

Every link of the sidebar is prefixed with the version. Versions not declared
in the manifest get the shared sidebar.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := ctx.Err(); err != nil {
				return err
			}
			options, err := getOptions(vip)
			if err != nil {
				return err
			}
			format, err := render.ParseFormat(options.Format)
			if err != nil {
				return err
			}
			m, err := loadManifest(options)
			if err != nil {
				return err
			}
			tree := sidebarOf(m, navigation.VersionID(args[0]))
			if options.DocsDir != "" {
				if missing := pages.Missing(options.DocsDir, tree); len(missing) > 0 {
					klog.Warningf("pages missing in %s: %s", options.DocsDir, strings.Join(missing, ", "))
				}
			}
			b, err := render.Marshal(format, tree)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
