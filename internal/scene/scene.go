// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/graphics"
	"github.com/gogpu/graphics/glyph"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("scene: invalid")

// Operation kinds.
const (
	KindFill     = "fill"
	KindStroke   = "stroke"
	KindPrint    = "print"
	KindShowPage = "show-page"
)

// Scene is a parsed scene file.
type Scene struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`
	Ops        []Op    `toml:"op"`
}

// Op is one drawing operation.
type Op struct {
	Kind  string  `toml:"kind"`
	Color string  `toml:"color"`
	Width float64 `toml:"width"`
	Rule  string  `toml:"rule"`

	Shapes []Shape `toml:"shape"`

	Font *Font     `toml:"font"`
	Size float64   `toml:"size"`
	At   []float64 `toml:"at"`
	Text string    `toml:"text"`
}

// Shape is one path primitive of an operation.
type Shape struct {
	Type string `toml:"type"`

	From []float64 `toml:"from"`
	To   []float64 `toml:"to"`

	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	W float64 `toml:"w"`
	H float64 `toml:"h"`

	Center []float64 `toml:"center"`
	Radius float64   `toml:"radius"`
	Start  float64   `toml:"start"`
	Stop   float64   `toml:"stop"`
}

// Font selects the face of a print operation. Box selects the built-in box
// font; otherwise Family names a system font.
type Font struct {
	Family string `toml:"family"`
	Slant  string `toml:"slant"`
	Weight string `toml:"weight"`
	Box    bool   `toml:"box"`
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undec[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks sizes, colors, kinds and shapes without drawing.
func (s *Scene) Validate() error {
	if !(s.Width > 0 && s.Height > 0) {
		return fmt.Errorf("%w: size %gx%g", ErrInvalid, s.Width, s.Height)
	}
	if s.Background != "" {
		if _, err := graphics.ParseHex(s.Background); err != nil {
			return fmt.Errorf("%w: background: %w", ErrInvalid, err)
		}
	}
	for i, op := range s.Ops {
		if err := op.validate(); err != nil {
			return fmt.Errorf("%w: op %d: %w", ErrInvalid, i+1, err)
		}
	}
	return nil
}

func (op Op) validate() error {
	switch op.Kind {
	case KindFill, KindStroke:
		if len(op.Shapes) == 0 {
			return fmt.Errorf("%s needs a shape", op.Kind)
		}
		if _, err := op.path(); err != nil {
			return err
		}
		if _, err := op.rule(); err != nil {
			return err
		}
	case KindPrint:
		if len(op.At) != 2 {
			return errors.New("print needs at = [x, y]")
		}
		if op.Size <= 0 {
			return errors.New("print needs a positive size")
		}
		if _, err := op.face(); err != nil {
			return err
		}
	case KindShowPage:
		return nil
	default:
		return fmt.Errorf("unknown kind %q", op.Kind)
	}
	_, err := op.color()
	return err
}

// Draw fills the background, if any, then replays every operation on dst
// in order. It stops at the first failing operation.
func (s *Scene) Draw(dst graphics.Surface) error {
	if s.Background != "" {
		bg, err := graphics.ParseHex(s.Background)
		if err != nil {
			return fmt.Errorf("scene: background: %w", err)
		}
		if err := dst.Fill(bg); err != nil {
			return fmt.Errorf("scene: background: %w", err)
		}
	}
	for i, op := range s.Ops {
		if err := op.apply(dst); err != nil {
			return fmt.Errorf("scene: op %d (%s): %w", i+1, op.Kind, err)
		}
	}
	graphics.Logger().Debug("scene drawn", "ops", len(s.Ops))
	return nil
}

func (op Op) apply(dst graphics.Surface) error {
	if op.Kind == KindShowPage {
		return dst.ShowPage()
	}
	c, err := op.color()
	if err != nil {
		return err
	}
	switch op.Kind {
	case KindFill:
		p, err := op.path()
		if err != nil {
			return err
		}
		rule, err := op.rule()
		if err != nil {
			return err
		}
		return dst.FillPathRule(c, p, rule)
	case KindStroke:
		p, err := op.path()
		if err != nil {
			return err
		}
		width := op.Width
		if width == 0 {
			width = graphics.DefaultPenWidth
		}
		return dst.Stroke(graphics.NewColorPen(c, width), p)
	case KindPrint:
		face, err := op.face()
		if err != nil {
			return err
		}
		return dst.Print(graphics.NewFont(face, c, op.Size), graphics.Pos(op.At[0], op.At[1]), op.Text)
	default:
		return fmt.Errorf("unknown kind %q", op.Kind)
	}
}

// color defaults to opaque black.
func (op Op) color() (graphics.Color, error) {
	if op.Color == "" {
		return graphics.Black, nil
	}
	return graphics.ParseHex(op.Color)
}

func (op Op) rule() (graphics.FillRule, error) {
	switch strings.ToLower(op.Rule) {
	case "", "nonzero":
		return graphics.FillRuleNonZero, nil
	case "evenodd":
		return graphics.FillRuleEvenOdd, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", op.Rule)
	}
}

func (op Op) path() (*graphics.Path, error) {
	p := graphics.NewPath()
	for i, sh := range op.Shapes {
		s, err := sh.shape()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i+1, err)
		}
		p.Add(s)
	}
	return p, nil
}

func (sh Shape) shape() (graphics.Shape, error) {
	nums := []float64{sh.X, sh.Y, sh.W, sh.H, sh.Radius, sh.Start, sh.Stop}
	nums = append(append(append(nums, sh.From...), sh.To...), sh.Center...)
	for _, v := range nums {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s has a non-finite value", sh.Type)
		}
	}

	switch sh.Type {
	case "line":
		if len(sh.From) != 2 || len(sh.To) != 2 {
			return nil, errors.New("line needs from = [x, y] and to = [x, y]")
		}
		return graphics.NewLine(sh.From[0], sh.From[1], sh.To[0], sh.To[1]), nil
	case "rect":
		return graphics.Rect(sh.X, sh.Y, sh.W, sh.H), nil
	case "arc", "circle":
		if len(sh.Center) != 2 {
			return nil, fmt.Errorf("%s needs center = [x, y]", sh.Type)
		}
		if sh.Radius < 0 {
			return nil, fmt.Errorf("%s radius %g is negative", sh.Type, sh.Radius)
		}
		if sh.Type == "circle" {
			return graphics.Circle(sh.Center[0], sh.Center[1], sh.Radius), nil
		}
		return graphics.NewArc(sh.Center[0], sh.Center[1], sh.Radius, radians(sh.Start), radians(sh.Stop)), nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", sh.Type)
	}
}

func (op Op) face() (graphics.FontFace, error) {
	f := op.Font
	if f == nil {
		f = &Font{Family: "sans"}
	}
	if f.Box {
		return graphics.NewUserFont(glyph.BoxFont{FoldCase: true}), nil
	}

	var slant graphics.Slant
	switch strings.ToLower(f.Slant) {
	case "", "normal":
		slant = graphics.SlantNormal
	case "italic":
		slant = graphics.SlantItalic
	case "oblique":
		slant = graphics.SlantOblique
	default:
		return nil, fmt.Errorf("unknown slant %q", f.Slant)
	}

	var weight graphics.Weight
	switch strings.ToLower(f.Weight) {
	case "", "normal":
		weight = graphics.WeightNormal
	case "bold":
		weight = graphics.WeightBold
	default:
		return nil, fmt.Errorf("unknown weight %q", f.Weight)
	}

	family := f.Family
	if family == "" {
		family = "sans"
	}
	return graphics.NewSystemFont(family, slant, weight), nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
