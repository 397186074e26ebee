// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/graphics"
)

func (c *CLI) demoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw the reference picture",
		Long: `Draw the reference picture: a tinted background inside a black frame,
crossed by a translucent circle and diagonal line.`,
		Example: `  ggdraw demo -f png,svg -o image`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := c.config.GetFloat64("width")
			h := c.config.GetFloat64("height")
			_, err := c.draw(cmd.Context(), c.config.GetString("output"), w, h, drawDemo)
			return err
		},
	}
	cmd.Flags().StringP("output", "o", "image", "output path without extension")
	cmd.Flags().StringSliceP("format", "f", []string{"png", "svg"}, "output formats (see 'ggdraw formats')")
	cmd.Flags().Float64("width", 600, "picture width")
	cmd.Flags().Float64("height", 400, "picture height")
	return cmd
}

// drawDemo draws the reference picture on s.
func drawDemo(s graphics.Surface) error {
	w, h := s.Width(), s.Height()

	if err := s.Fill(graphics.RGB(0.86, 0.85, 0.47)); err != nil {
		return err
	}
	if err := s.Stroke(graphics.NewPen(20), graphics.Rect(0, 0, w, h)); err != nil {
		return err
	}
	translucent := graphics.NewColorPen(graphics.RGBA(0, 0, 0, 0.7), 20)
	if err := s.Stroke(translucent, graphics.Circle(w/2, h/2, h/4)); err != nil {
		return err
	}
	return s.Stroke(translucent, graphics.NewLine(w/4, h/4, 3*w/4, 3*h/4))
}
