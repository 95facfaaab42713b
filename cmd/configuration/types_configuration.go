// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config holds user defaults for sitenav. Unset fields leave the
// corresponding flag defaults in place.
type Config struct {
	Manifest    *string           `yaml:"manifest,omitempty"`
	Destination *string           `yaml:"destination,omitempty"`
	DocsDir     *string           `yaml:"docsDir,omitempty"`
	Format      *string           `yaml:"format,omitempty"`
	Versions    []string          `yaml:"versions,omitempty"`
	Variables   map[string]string `yaml:"variables,omitempty"`
}
