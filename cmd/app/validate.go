// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValidateCmd(ctx context.Context, vip *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validates the manifest and the assembled navigation",
		Long: `Validates the manifest and the assembled navigation.

Reports every version without a sidebar, sidebars diverging from the first
version, duplicated links and, when docs-dir is set, sidebar links without
a page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := ctx.Err(); err != nil {
				return err
			}
			options, err := getOptions(vip)
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
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d versions valid: %v\n", len(cfg.Versions()), cfg.Versions())
			return err
		},
	}
}
