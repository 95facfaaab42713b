// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package version_test

import (
	"bytes"

	"github.com/lumo-framework/sitenav/cmd/version"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("version", func() {
	It("should not return a specific version number", func() {
		Expect(version.Version).To(Equal("binary was not built properly"))
	})
	It("prints the version", func() {
		var out bytes.Buffer
		cmd := version.NewVersionCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{})
		Expect(cmd.Execute()).To(Succeed())
		Expect(out.String()).To(Equal("binary was not built properly\n"))
	})
})
