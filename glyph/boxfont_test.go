// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import (
	"math"
	"strings"
	"testing"
)

func TestBoxFontUnicodeToGlyph(t *testing.T) {
	var f BoxFont
	sf := ScaledFont{Size: 12}
	for _, r := range "AZ09 !?" {
		if g := f.UnicodeToGlyph(sf, r); g == NotFound {
			t.Errorf("UnicodeToGlyph(%q) = NotFound", r)
		}
	}
	for _, r := range "a~é€\x00" {
		if g := f.UnicodeToGlyph(sf, r); g != NotFound {
			t.Errorf("UnicodeToGlyph(%q) = %d, want NotFound", r, g)
		}
	}
	if a, b := f.UnicodeToGlyph(sf, 'A'), f.UnicodeToGlyph(sf, 'B'); a == b {
		t.Errorf("A and B share glyph %d", a)
	}
}

func TestBoxFontFoldCase(t *testing.T) {
	f := BoxFont{FoldCase: true}
	sf := ScaledFont{Size: 12}
	if got, want := f.UnicodeToGlyph(sf, 'q'), f.UnicodeToGlyph(sf, 'Q'); got != want || got == NotFound {
		t.Errorf("UnicodeToGlyph('q') = %d, want %d", got, want)
	}
}

func TestBoxFontInit(t *testing.T) {
	ext, err := BoxFont{}.Init(ScaledFont{Size: 20}, &recorder{})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if ext.Ascent != 7*Cell {
		t.Errorf("Ascent = %v, want %v", ext.Ascent, 7*Cell)
	}
	// The widest glyphs span all 5 columns.
	if want := 5*Cell + Spacing; ext.MaxXAdvance != want {
		t.Errorf("MaxXAdvance = %v, want %v", ext.MaxXAdvance, want)
	}
}

func TestBoxFontRenderGlyph(t *testing.T) {
	var f BoxFont
	sf := ScaledFont{Size: 10}
	rec := &recorder{}
	ext, err := f.RenderGlyph(sf, f.UnicodeToGlyph(sf, 'T'), rec)
	if err != nil {
		t.Fatalf("RenderGlyph() error = %v", err)
	}
	// T: 5 boxes on the top row and 6 below in the middle column.
	var rects int
	for _, op := range rec.ops {
		if strings.HasPrefix(op, "R ") {
			rects++
		}
	}
	if rects != 11 {
		t.Errorf("drew %d boxes, want 11", rects)
	}
	if rec.fills != 1 {
		t.Errorf("Fill called %d times, want 1", rec.fills)
	}
	if rec.ops[0] != "R 0 -0.875 0.125 0.125" {
		t.Errorf("first box = %q, want top-left cell", rec.ops[0])
	}
	if want := 5*Cell + Spacing; ext.XAdvance != want {
		t.Errorf("XAdvance = %v, want %v", ext.XAdvance, want)
	}
	if ext.YBearing != -7*Cell || ext.Height != 7*Cell {
		t.Errorf("vertical extents = (%v, %v), want (%v, %v)", ext.YBearing, ext.Height, -7*Cell, 7*Cell)
	}
}

func TestBoxFontNarrowGlyphIsShifted(t *testing.T) {
	var f BoxFont
	sf := ScaledFont{Size: 10}
	rec := &recorder{}
	ext, err := f.RenderGlyph(sf, f.UnicodeToGlyph(sf, '!'), rec)
	if err != nil {
		t.Fatalf("RenderGlyph() error = %v", err)
	}
	if rec.ops[0] != "R 0 -0.875 0.125 0.125" {
		t.Errorf("first box = %q, want column 0", rec.ops[0])
	}
	if math.Abs(ext.XAdvance-(Cell+Spacing)) > 1e-12 {
		t.Errorf("XAdvance = %v, want %v", ext.XAdvance, Cell+Spacing)
	}
}

func TestBoxFontUnknownGlyph(t *testing.T) {
	var f BoxFont
	for _, g := range []Index{NotFound, Index(len(boxTable) + 1), 1 << 30} {
		rec := &recorder{}
		ext, err := f.RenderGlyph(ScaledFont{Size: 10}, g, rec)
		if err != nil {
			t.Fatalf("RenderGlyph(%d) error = %v", g, err)
		}
		if ext != (TextExtents{}) {
			t.Errorf("RenderGlyph(%d) extents = %+v, want zero", g, ext)
		}
		if len(rec.ops) != 0 {
			t.Errorf("RenderGlyph(%d) drew %v", g, rec.ops)
		}
	}
}

func TestBoxFontSpace(t *testing.T) {
	var f BoxFont
	sf := ScaledFont{Size: 10}
	rec := &recorder{}
	ext, err := f.RenderGlyph(sf, f.UnicodeToGlyph(sf, ' '), rec)
	if err != nil {
		t.Fatalf("RenderGlyph() error = %v", err)
	}
	if len(rec.ops) != 0 {
		t.Errorf("space drew %v", rec.ops)
	}
	if ext.XAdvance <= Spacing {
		t.Errorf("space XAdvance = %v, want > %v", ext.XAdvance, Spacing)
	}
}
