// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene reads TOML scene descriptions and replays them on a
// graphics.Surface.
//
// A scene names its size, an optional background and an ordered list of
// operations:
//
//	width = 600
//	height = 400
//	background = "#dbd978"
//
//	[[op]]
//	kind = "stroke"
//	color = "#000000b3"
//	width = 20
//	[[op.shape]]
//	type = "circle"
//	center = [300, 200]
//	radius = 100
//
//	[[op]]
//	kind = "print"
//	color = "#202020"
//	size = 32
//	at = [20, 380]
//	text = "HELLO"
//	font = { box = true }
//
// Operation kinds are fill, stroke, print and show-page. Shapes are line
// (from, to), rect (x, y, w, h), arc (center, radius, start, stop in
// degrees) and circle (center, radius); several shapes in one operation
// form a single path.
package scene
