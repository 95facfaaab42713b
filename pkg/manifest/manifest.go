// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/lumo-framework/sitenav/pkg/navigation"
	"github.com/lumo-framework/sitenav/pkg/theme"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// DefaultURL is reported as the URL of the embedded manifest
const DefaultURL = "embedded:lumo.yaml"

//go:embed lumo.yaml
var lumo []byte

// Default returns the embedded manifest of the Lumo Framework docs
func Default() (*Manifest, error) {
	m, err := Parse(lumo, nil)
	if err != nil {
		return nil, err
	}
	m.URL = DefaultURL
	return m, nil
}

// Load reads the manifest at path, resolves it as template applying
// vars and parses it. An empty path loads the embedded manifest.
func Load(path string, vars map[string]string) (*Manifest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		klog.V(2).Info("no manifest given, using the embedded one")
		return Default()
	}
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("manifest %s is a directory", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(content, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %s. %w", path, err)
	}
	m.URL = path
	return m, nil
}

// Parse resolves content as Go template with vars and decodes the
// result. Defaults are applied to fields left empty.
func Parse(content []byte, vars map[string]string) (*Manifest, error) {
	var err error
	if len(vars) > 0 {
		if content, err = resolveTemplate(content, vars); err != nil {
			return nil, err
		}
	}
	m := &Manifest{}
	if err = yaml.Unmarshal(content, m); err != nil {
		return nil, fmt.Errorf("can't parse manifest yaml content : %w", err)
	}
	setDefaults(m)
	return m, nil
}

func resolveTemplate(content []byte, vars map[string]string) ([]byte, error) {
	tpl, err := template.New("manifest").Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("can't parse manifest template : %w", err)
	}
	var b bytes.Buffer
	if err = tpl.Execute(&b, vars); err != nil {
		return nil, fmt.Errorf("can't apply variables to manifest : %w", err)
	}
	return b.Bytes(), nil
}

func setDefaults(m *Manifest) {
	if m.Base == "" {
		m.Base = "/"
	}
	if m.Theme == nil {
		t := theme.Default()
		m.Theme = &t
	}
	for i := range m.Versions {
		if m.Versions[i].Text == "" {
			m.Versions[i].Text = string(m.Versions[i].ID)
		}
	}
}

// Select keeps only the versions with the given ids, in selector order.
// An empty ids list keeps all versions.
func (m *Manifest) Select(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	want := map[navigation.VersionID]bool{}
	for _, id := range ids {
		want[navigation.VersionID(strings.TrimSpace(id))] = true
	}
	var selected []Version
	for _, v := range m.Versions {
		if want[v.ID] {
			selected = append(selected, v)
			delete(want, v.ID)
		}
	}
	if len(want) > 0 {
		var unknown []string
		for _, id := range ids {
			if want[navigation.VersionID(strings.TrimSpace(id))] {
				unknown = append(unknown, strings.TrimSpace(id))
			}
		}
		return fmt.Errorf("unknown versions %v in manifest %s", unknown, m.URL)
	}
	m.Versions = selected
	return nil
}

func (m *Manifest) String() string {
	b, err := yaml.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}
