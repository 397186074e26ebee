// Package graphics provides typed value objects and drawing surfaces for 2D
// vector graphics.
//
// # Overview
//
// graphics is a thin, typed layer over two backends: the gg software
// rasterizer for in-memory images and svgo for SVG documents. Drawing state
// never lives on a surface: every call carries its own color, pen or font.
//
// # Quick Start
//
//	s, err := graphics.NewImageSurface(graphics.FormatARGB32, 600, 400)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.Fill(graphics.RGB(0.86, 0.85, 0.47))
//	s.Stroke(graphics.NewColorPen(graphics.RGBA(0, 0, 0, 0.7), 20),
//	    graphics.Circle(300, 200, 100))
//	s.WritePNG("out.png")
//
// # Channels and Colors
//
// A Value is a number bounded by a range that is either static, a zero-size
// type such as Normal or Bits8, or dynamic (Range). Values are never
// checked on construction; Valid reports whether they are in range.
// Convert rescales a value into another representation by its relative
// position in its range:
//
//	c, _ := graphics.Convert[graphics.Value[uint8, graphics.Bits4]](graphics.NewChannel(0.5))
//	// c.Value() == 7
//
// A ColorOf combines four channels, each with its own representation.
// Color (float64, [0, 1]) and Color8 (uint8, [0, 255]) are the common
// instantiations. Every ColorOf implements color.Color.
//
// # Shapes
//
// Line, Rectangle, Arc and Path form a closed set of shapes. A Path holds
// copies of its members and draws them in insertion order, each as its own
// subpath.
//
// # Text
//
// A Font combines a FontFace with a color and a size. A SystemFont is drawn
// by the backend; a UserFont is drawn by a glyph.Renderer, one glyph at a
// time.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, increasing from +X towards +Y
//
// # Formats
//
// Surfaces can also be opened by format name through the registry; "png"
// and "svg" are built in.
package graphics
