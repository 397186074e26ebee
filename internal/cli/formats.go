// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/graphics"
)

func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range graphics.List() {
				e, _ := graphics.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s priority %d\n", name, e.Priority)
			}
			return nil
		},
	}
}
