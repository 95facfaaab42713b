// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/lumo-framework/sitenav/pkg/writers"
)

// Options encapsulates the parameters of a sitenav run
type Options struct {
	ManifestPath    string            `mapstructure:"manifest"`
	Variables       map[string]string `mapstructure:"variables"`
	Versions        []string          `mapstructure:"versions"`
	Format          string            `mapstructure:"format"`
	DocsDir         string            `mapstructure:"docs-dir"`
	DestinationPath string            `mapstructure:"destination"`
	ConfigName      string            `mapstructure:"config-name"`
	DryRun          bool              `mapstructure:"dry-run"`
}

// Writers struct that collects all the writers
type Writers struct {
	Writer       writers.Writer
	DryRunWriter writers.DryRunWriter
}
