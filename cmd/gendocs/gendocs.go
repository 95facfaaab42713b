// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package gendocs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lumo-framework/sitenav/cmd/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"k8s.io/klog/v2"
)

const (
	genDocsMarkdown genDocsFormat = iota
	genDocsManPages
)

type genDocsCmdFlags struct {
	format      string
	destination string
}

type genDocsFormat int

func newGenDocsFormat(formatString string) (genDocsFormat, error) {
	switch formatString {
	case "md":
		return genDocsMarkdown, nil
	case "man":
		return genDocsManPages, nil
	}
	return 0, fmt.Errorf("unknown format '%s'. Must be one of %v", formatString, []string{"md", "man"})
}

// NewGenCmdDocs generates commands reference documentation
// as pages of the documentation site or as man pages
func NewGenCmdDocs() *cobra.Command {
	flags := &genDocsCmdFlags{}
	command := &cobra.Command{
		Use:   "gen-cmd-docs",
		Short: "Generates commands reference documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := newGenDocsFormat(flags.format)
			if err != nil {
				return err
			}
			destination := filepath.Clean(flags.destination)
			if err = os.MkdirAll(destination, os.ModePerm); err != nil {
				return err
			}
			root := cmd.Root()
			root.DisableAutoGenTag = true
			if err = generate(root, format, destination); err != nil {
				klog.Error(err)
				return err
			}
			klog.Infof("Commands reference written to %s", destination)
			return nil
		},
	}
	command.Flags().StringVar(&flags.format, "format", "md",
		"Specifies the generated documentation format. Must be one of: `md` (for site pages) or `man` (for man pages).")
	command.Flags().StringVarP(&flags.destination, "destination", "d", "",
		"Path to directory where the documentation will be generated. If it does not exist, it will be created. Required flag.")
	command.MarkFlagRequired("destination")
	return command
}

func generate(root *cobra.Command, format genDocsFormat, destination string) error {
	if format == genDocsManPages {
		header := &doc.GenManHeader{
			Title:   strings.ToUpper(root.Name()),
			Section: "1",
			Source:  fmt.Sprintf("%s %s", root.Name(), version.Version),
			Manual:  "Sitenav Command Reference",
		}
		return doc.GenManTree(root, header, destination)
	}
	return doc.GenMarkdownTreeCustom(root, destination, frontMatter, cleanLink)
}

// frontMatter titles a page after its command, sitenav_sidebar.md
// becomes "sitenav sidebar"
func frontMatter(filename string) string {
	title := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(filename), ".md"), "_", " ")
	return fmt.Sprintf("---\ntitle: %s\noutline: deep\n---\n\n", title)
}

// cleanLink links sibling pages without the .md extension
func cleanLink(name string) string {
	return "./" + strings.TrimSuffix(name, ".md")
}
