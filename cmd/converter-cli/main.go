// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "converter-cli" quotes conversions and runs converter plans against a
// local ledger.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/ava-labs/convertervm/cmd/converter-cli/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		color.Red("converter-cli failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
