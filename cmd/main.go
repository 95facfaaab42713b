// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lumo-framework/sitenav/cmd/app"
	"k8s.io/klog/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := app.NewCommand(ctx)
	if err := command.Execute(); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		stop()
		os.Exit(1)
	}
	klog.Flush()
}
