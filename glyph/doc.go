// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glyph defines the contract for user-defined glyph renderers.
//
// A Renderer is a plug-in font: the surface driving text layout calls
// Init once per scaled font, then UnicodeToGlyph and RenderGlyph for every
// character, advancing the pen by each reported XAdvance.
//
// All metrics and Canvas coordinates are in em units: 1.0 equals the font
// size. The origin is the pen position on the baseline and y grows
// downwards, so glyph bodies live at negative y.
//
// # Box font
//
// BoxFont is the reference Renderer. Its glyphs are 5x7 box matrices from
// a static table; every lit cell is drawn as a filled square.
//
//	face := graphics.NewUserFont(glyph.BoxFont{FoldCase: true})
//	s.Print(graphics.NewFont(face, graphics.Black, 32), graphics.Pos(10, 50), "HELLO 42")
package glyph
