// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	rootCmd := NewRootCmd(afero.NewOsFs())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
