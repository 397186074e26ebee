// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/graphics"
	"github.com/gogpu/graphics/internal/scene"
)

func (c *CLI) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render SCENE",
		Short: "Draw a TOML scene file",
		Long: `Draw a TOML scene file to one file per output format.

The output name defaults to the scene file name; the format extension is
appended to it.`,
		Example: `  ggdraw render scene.toml
  ggdraw render scene.toml -o out/picture -f png,svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			base := c.config.GetString("output")
			if base == "" {
				base = args[0]
			}
			_, err = c.draw(cmd.Context(), base, s.Width, s.Height, s.Draw)
			return err
		},
	}
	cmd.Flags().StringP("output", "o", "", "output path without extension")
	cmd.Flags().StringSliceP("format", "f", []string{"png"}, "output formats (see 'ggdraw formats')")
	return cmd
}

// draw opens one surface per configured format, draws on it and closes
// it. It returns the written file names.
func (c *CLI) draw(ctx context.Context, base string, width, height float64, paint func(graphics.Surface) error) ([]string, error) {
	formats := c.formats()
	if len(formats) == 0 {
		return nil, errors.New("no output format")
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var written []string
	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		start := time.Now()
		name := base + "." + format
		s, err := graphics.Open(format, name, width, height)
		if err != nil {
			return written, err
		}
		if err := paint(s); err != nil {
			_ = s.Close()
			return written, err
		}
		if err := s.Close(); err != nil {
			return written, err
		}
		c.Logger.Info("wrote", "file", name, "elapsed", time.Since(start).Round(time.Millisecond))
		written = append(written, name)
	}
	return written, nil
}
