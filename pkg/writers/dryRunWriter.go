// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates DryRunWriters writing to the
	// same backend but for different roots. A non-empty
	// ext is appended to the written names as FSWriter does.
	GetWriter(root, ext string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() error
}

type dryRunWriter struct {
	Writer io.Writer
	files  []*file
	t1     time.Time
}

type file struct {
	path string
	size int
}

type writer struct {
	root  string
	ext   string
	files *[]*file
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// writing to the same backend but for different roots
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		Writer: w,
		files:  []*file{},
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root, ext string) Writer {
	return &writer{
		root:  root,
		ext:   ext,
		files: &d.files,
	}
}

func (w *writer) Write(name, path string, content []byte) error {
	if len(w.ext) > 0 {
		name = fmt.Sprintf("%s.%s", name, w.ext)
	}
	p := strings.Trim(strings.Join([]string{w.root, path, name}, "/"), "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	*w.files = append(*w.files, &file{
		path: p,
		size: len(content),
	})
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() error {
	var b bytes.Buffer
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	b.WriteString(fmt.Sprintf("\nBuild finished in %f seconds\n", time.Since(d.t1).Seconds()))
	_, err := d.Writer.Write(b.Bytes())
	return err
}

func format(files []*file, b *bytes.Buffer) {
	seen := map[string]bool{}
	for _, f := range files {
		segments := strings.Split(f.path, "/")
		for i, s := range segments {
			p := strings.Join(segments[:i+1], "/")
			if seen[p] {
				continue
			}
			seen[p] = true
			b.Write(bytes.Repeat([]byte("  "), i))
			if i == len(segments)-1 && f.size > 0 {
				b.WriteString(fmt.Sprintf("%s (%d bytes)\n", s, f.size))
				continue
			}
			b.WriteString(fmt.Sprintf("%s\n", s))
		}
	}
}
