// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import "unicode"

// Box font geometry, in em units.
const (
	boxCols = 5
	boxRows = 7

	// Cell is the side of one box.
	Cell = 1.0 / 8

	// Spacing is added to the advance of every glyph.
	Spacing = Cell

	// spaceCells is the advance of the blank glyph, in cells.
	spaceCells = 3
)

// BoxFont is a Renderer drawing 5x7 box matrix glyphs. It covers A-Z, 0-9,
// the space and a few punctuation marks. Glyphs are proportional: each one
// is as wide as its lit columns.
type BoxFont struct {
	// FoldCase maps lower case letters to their upper case glyphs.
	FoldCase bool
}

// boxGlyph is one table row. Bit 4 of a row is the leftmost column.
type boxGlyph struct {
	r    rune
	rows [boxRows]uint8
}

var boxTable = [...]boxGlyph{
	{' ', [boxRows]uint8{}},
	{'!', [boxRows]uint8{0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04}},
	{'+', [boxRows]uint8{0x00, 0x04, 0x04, 0x1f, 0x04, 0x04, 0x00}},
	{',', [boxRows]uint8{0x00, 0x00, 0x00, 0x00, 0x0c, 0x04, 0x08}},
	{'-', [boxRows]uint8{0x00, 0x00, 0x00, 0x1f, 0x00, 0x00, 0x00}},
	{'.', [boxRows]uint8{0x00, 0x00, 0x00, 0x00, 0x00, 0x0c, 0x0c}},
	{'/', [boxRows]uint8{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x00}},
	{'0', [boxRows]uint8{0x0e, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0e}},
	{'1', [boxRows]uint8{0x04, 0x0c, 0x04, 0x04, 0x04, 0x04, 0x0e}},
	{'2', [boxRows]uint8{0x0e, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1f}},
	{'3', [boxRows]uint8{0x1f, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0e}},
	{'4', [boxRows]uint8{0x02, 0x06, 0x0a, 0x12, 0x1f, 0x02, 0x02}},
	{'5', [boxRows]uint8{0x1f, 0x10, 0x1e, 0x01, 0x01, 0x11, 0x0e}},
	{'6', [boxRows]uint8{0x06, 0x08, 0x10, 0x1e, 0x11, 0x11, 0x0e}},
	{'7', [boxRows]uint8{0x1f, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08}},
	{'8', [boxRows]uint8{0x0e, 0x11, 0x11, 0x0e, 0x11, 0x11, 0x0e}},
	{'9', [boxRows]uint8{0x0e, 0x11, 0x11, 0x0f, 0x01, 0x02, 0x0c}},
	{':', [boxRows]uint8{0x00, 0x0c, 0x0c, 0x00, 0x0c, 0x0c, 0x00}},
	{'=', [boxRows]uint8{0x00, 0x00, 0x1f, 0x00, 0x1f, 0x00, 0x00}},
	{'?', [boxRows]uint8{0x0e, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04}},
	{'A', [boxRows]uint8{0x0e, 0x11, 0x11, 0x1f, 0x11, 0x11, 0x11}},
	{'B', [boxRows]uint8{0x1e, 0x11, 0x11, 0x1e, 0x11, 0x11, 0x1e}},
	{'C', [boxRows]uint8{0x0e, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0e}},
	{'D', [boxRows]uint8{0x1e, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1e}},
	{'E', [boxRows]uint8{0x1f, 0x10, 0x10, 0x1e, 0x10, 0x10, 0x1f}},
	{'F', [boxRows]uint8{0x1f, 0x10, 0x10, 0x1e, 0x10, 0x10, 0x10}},
	{'G', [boxRows]uint8{0x0e, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0f}},
	{'H', [boxRows]uint8{0x11, 0x11, 0x11, 0x1f, 0x11, 0x11, 0x11}},
	{'I', [boxRows]uint8{0x0e, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0e}},
	{'J', [boxRows]uint8{0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0c}},
	{'K', [boxRows]uint8{0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11}},
	{'L', [boxRows]uint8{0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1f}},
	{'M', [boxRows]uint8{0x11, 0x1b, 0x15, 0x15, 0x11, 0x11, 0x11}},
	{'N', [boxRows]uint8{0x11, 0x11, 0x19, 0x15, 0x13, 0x11, 0x11}},
	{'O', [boxRows]uint8{0x0e, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e}},
	{'P', [boxRows]uint8{0x1e, 0x11, 0x11, 0x1e, 0x10, 0x10, 0x10}},
	{'Q', [boxRows]uint8{0x0e, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0d}},
	{'R', [boxRows]uint8{0x1e, 0x11, 0x11, 0x1e, 0x14, 0x12, 0x11}},
	{'S', [boxRows]uint8{0x0f, 0x10, 0x10, 0x0e, 0x01, 0x01, 0x1e}},
	{'T', [boxRows]uint8{0x1f, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04}},
	{'U', [boxRows]uint8{0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e}},
	{'V', [boxRows]uint8{0x11, 0x11, 0x11, 0x11, 0x11, 0x0a, 0x04}},
	{'W', [boxRows]uint8{0x11, 0x11, 0x11, 0x15, 0x15, 0x15, 0x0a}},
	{'X', [boxRows]uint8{0x11, 0x11, 0x0a, 0x04, 0x0a, 0x11, 0x11}},
	{'Y', [boxRows]uint8{0x11, 0x11, 0x11, 0x0a, 0x04, 0x04, 0x04}},
	{'Z', [boxRows]uint8{0x1f, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1f}},
}

// boxMetrics holds the lit column span and the lit row span of a glyph.
type boxMetrics struct {
	left, cols int
	top, rows  int
}

var (
	boxIndex   = make(map[rune]Index, len(boxTable))
	boxMetric  = make([]boxMetrics, len(boxTable))
	boxExtents FontExtents
)

func init() {
	for i, g := range boxTable {
		boxIndex[g.r] = Index(i + 1)
		boxMetric[i] = measureBox(g.rows)
	}
	boxExtents = FontExtents{
		Ascent:  boxRows * Cell,
		Descent: Cell,
		Height:  (boxRows + 1) * Cell,
	}
	for i := range boxTable {
		boxExtents.MaxXAdvance = max(boxExtents.MaxXAdvance, boxAdvance(boxMetric[i]))
	}
}

func measureBox(rows [boxRows]uint8) boxMetrics {
	var or uint8
	m := boxMetrics{top: -1}
	for y, row := range rows {
		if row == 0 {
			continue
		}
		or |= row
		if m.top < 0 {
			m.top = y
		}
		m.rows = y - m.top + 1
	}
	if or == 0 {
		return boxMetrics{}
	}
	right := 0
	m.left = boxCols
	for x := range boxCols {
		if or&(1<<(boxCols-1-x)) != 0 {
			m.left = min(m.left, x)
			right = x
		}
	}
	m.cols = right - m.left + 1
	return m
}

func boxAdvance(m boxMetrics) float64 {
	if m.cols == 0 {
		return spaceCells*Cell + Spacing
	}
	return float64(m.cols)*Cell + Spacing
}

// Init reports the metrics shared by all box glyphs.
func (BoxFont) Init(ScaledFont, Canvas) (FontExtents, error) {
	return boxExtents, nil
}

// UnicodeToGlyph looks r up in the box table.
func (f BoxFont) UnicodeToGlyph(_ ScaledFont, r rune) Index {
	if f.FoldCase {
		r = unicode.ToUpper(r)
	}
	return boxIndex[r]
}

// RenderGlyph fills one Cell square per lit box.
func (BoxFont) RenderGlyph(_ ScaledFont, g Index, c Canvas) (TextExtents, error) {
	if g == NotFound || int(g) > len(boxTable) {
		return TextExtents{}, nil
	}
	rows := boxTable[g-1].rows
	m := boxMetric[g-1]
	ext := TextExtents{XAdvance: boxAdvance(m)}
	if m.cols == 0 {
		return ext, nil
	}

	for y, row := range rows {
		for x := range boxCols {
			if row&(1<<(boxCols-1-x)) == 0 {
				continue
			}
			c.Rectangle(float64(x-m.left)*Cell, float64(y-boxRows)*Cell, Cell, Cell)
		}
	}
	ext.YBearing = float64(m.top-boxRows) * Cell
	ext.Width = float64(m.cols) * Cell
	ext.Height = float64(m.rows) * Cell
	return ext, c.Fill()
}
