// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package head

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Attr is a single tag attribute
type Attr struct {
	Key   string
	Value string
}

// Tag describes an element injected into the page head, e.g. a font
// preconnect <link>. Attributes keep their authored order.
type Tag struct {
	Name  string
	Attrs []Attr
}

// Get returns the value of attribute key
func (t Tag) Get(key string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// UnmarshalYAML decodes the single-key mapping form
//
//	link:
//	  rel: preconnect
//	  href: https://fonts.googleapis.com
func (t *Tag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: head tag must be a mapping with exactly one tag name", value.Line)
	}
	name, attrs := value.Content[0], value.Content[1]
	if attrs.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes of head tag %s must be a mapping", attrs.Line, name.Value)
	}
	t.Name = name.Value
	t.Attrs = make([]Attr, 0, len(attrs.Content)/2)
	for i := 0; i+1 < len(attrs.Content); i += 2 {
		k, v := attrs.Content[i], attrs.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: attribute %s of head tag %s must be a scalar", v.Line, k.Value, t.Name)
		}
		t.Attrs = append(t.Attrs, Attr{Key: k.Value, Value: v.Value})
	}
	return nil
}

// MarshalYAML writes the same single-key mapping form UnmarshalYAML reads
func (t Tag) MarshalYAML() (interface{}, error) {
	attrs := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range t.Attrs {
		attrs.Content = append(attrs.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Value},
		)
	}
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{{Kind: yaml.ScalarNode, Value: t.Name}, attrs},
	}, nil
}

// MarshalJSON writes the tag as the ["name", {attrs}] pair the site
// generator expects. encoding/json sorts map keys, so the attribute
// object is written by hand to keep the authored order.
func (t Tag) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	if err := writeString(&b, t.Name); err != nil {
		return nil, err
	}
	b.WriteString(",{")
	for i, a := range t.Attrs {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeString(&b, a.Key); err != nil {
			return nil, err
		}
		b.WriteByte(':')
		if err := writeString(&b, a.Value); err != nil {
			return nil, err
		}
	}
	b.WriteString("}]")
	return b.Bytes(), nil
}

// writeString appends s as a JSON string without HTML escaping, font
// URLs carry '&' in their query.
func writeString(b *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	b.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
