// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package tests

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// SetKlogV sets the logging flags when unit tests are run
func SetKlogV(level int) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("v", strconv.Itoa(level))
	_ = fs.Set("logtostderr", "true")
}

// TempDir returns a unique, not yet existing path in the system
// temporary directory
func TempDir(prefix string) string {
	return filepath.Join(os.TempDir(), prefix+"-"+uuid.New().String())
}
