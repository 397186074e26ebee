// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sysfont resolves font families to TrueType data.
//
// Families are looked up among the installed fonts with go-findfont. When
// nothing matches, the embedded Go fonts are used instead.
package sysfont

import (
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Style selects a face inside a family.
type Style struct {
	Bold   bool
	Italic bool
}

// Font is a resolved face.
type Font struct {
	// Data is the TrueType or OpenType file content.
	Data []byte

	// Path is the file Data was read from, or empty for an embedded font.
	Path string
}

// Embedded reports whether the face is one of the bundled Go fonts.
func (f Font) Embedded() bool {
	return f.Path == ""
}

// generic lists installed families tried for the CSS-like generic names.
var generic = map[string][]string{
	"sans":       {"DejaVuSans", "LiberationSans", "Arial", "Helvetica", "NotoSans"},
	"sans-serif": {"DejaVuSans", "LiberationSans", "Arial", "Helvetica", "NotoSans"},
	"serif":      {"DejaVuSerif", "LiberationSerif", "Times New Roman", "Times", "NotoSerif"},
	"monospace":  {"DejaVuSansMono", "LiberationMono", "Courier New", "Menlo", "NotoSansMono"},
	"mono":       {"DejaVuSansMono", "LiberationMono", "Courier New", "Menlo", "NotoSansMono"},
}

// Resolve looks family up among the installed fonts. If no file matches, it
// returns the embedded Go face closest to the request and a non-nil error
// describing the miss, so callers can log it and carry on.
func Resolve(family string, style Style) (Font, error) {
	family = strings.TrimSpace(family)
	for _, name := range Candidates(family, style) {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return Font{Data: data, Path: path}, nil
	}
	return Fallback(family, style), fmt.Errorf("sysfont: no installed font for %q", family)
}

// Candidates returns the file names tried for family, best match first.
func Candidates(family string, style Style) []string {
	if family == "" {
		return nil
	}
	bases, ok := generic[strings.ToLower(family)]
	if !ok {
		bases = []string{strings.ReplaceAll(family, " ", "")}
		if strings.Contains(family, " ") {
			bases = append(bases, family)
		}
	}

	var suffixes []string
	switch {
	case style.Bold && style.Italic:
		suffixes = []string{"-BoldItalic", "-BoldOblique", "bi", "z"}
	case style.Bold:
		suffixes = []string{"-Bold", "bd", "b"}
	case style.Italic:
		suffixes = []string{"-Italic", "-Oblique", "i"}
	default:
		suffixes = []string{"", "-Regular"}
	}

	var out []string
	for _, base := range bases {
		for _, suffix := range suffixes {
			for _, ext := range []string{".ttf", ".otf"} {
				out = append(out, base+suffix+ext)
			}
		}
	}
	return out
}

// Fallback returns the embedded Go face for the request. Monospaced
// families map to Go Mono, everything else to Go.
func Fallback(family string, style Style) Font {
	if isMono(family) {
		switch {
		case style.Bold && style.Italic:
			return Font{Data: gomonobolditalic.TTF}
		case style.Bold:
			return Font{Data: gomonobold.TTF}
		case style.Italic:
			return Font{Data: gomonoitalic.TTF}
		}
		return Font{Data: gomono.TTF}
	}
	switch {
	case style.Bold && style.Italic:
		return Font{Data: gobolditalic.TTF}
	case style.Bold:
		return Font{Data: gobold.TTF}
	case style.Italic:
		return Font{Data: goitalic.TTF}
	}
	return Font{Data: goregular.TTF}
}

func isMono(family string) bool {
	f := strings.ToLower(family)
	return strings.Contains(f, "mono") || strings.Contains(f, "courier") || f == "fixed"
}
