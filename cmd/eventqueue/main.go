// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "eventqueue" lists the pending-event queue implementations and runs the
// hold model against them.
package main

import (
	"os"

	"github.com/ava-labs/eventqueue/cmd/eventqueue/cmd"
	"github.com/ava-labs/eventqueue/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Outf("{{red}}eventqueue exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
