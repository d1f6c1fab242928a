// Package tetris implements the falling-block puzzle: the shape catalog,
// the 10x20 well with its locked cells, placement rules, row clearing and
// the drop controller that drives a game tick by tick.
//
// The package is UI-agnostic and deterministic for a given random source.
package tetris

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

// Shapes in catalog order.
const (
	KindS Kind = iota
	KindZ
	KindI
	KindO
	KindJ
	KindL
	KindT
)

// KindCount is the number of shapes in the catalog.
const KindCount = 7

// Point is a (column, row) pair. Rows grow downward.
type Point struct {
	X, Y int
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Template geometry. Every rotation is drawn in a 5x5 box and the anchor
// sits at column 2, row 4 of that box, so a piece anchored at (5, 0)
// appears just above the top-center of the well.
const (
	templateSize = 5
	originCol    = 2
	originRow    = 4
)

// Template is one rotation state drawn as text; '0' marks a block.
type Template [templateSize]string

type shapeDef struct {
	name      string
	rgb       RGB
	palette   core.Color
	rotations []Template
}

var catalog = [KindCount]shapeDef{
	KindS: {
		name:    "S",
		rgb:     RGB{0, 255, 0},
		palette: core.ColorGreen,
		rotations: []Template{
			{".....", ".....", "..00.", ".00..", "....."},
			{".....", "..0..", "..00.", "...0.", "....."},
		},
	},
	KindZ: {
		name:    "Z",
		rgb:     RGB{255, 0, 0},
		palette: core.ColorRed,
		rotations: []Template{
			{".....", ".....", ".00..", "..00.", "....."},
			{".....", "..0..", ".00..", ".0...", "....."},
		},
	},
	KindI: {
		name:    "I",
		rgb:     RGB{0, 255, 255},
		palette: core.ColorCyan,
		rotations: []Template{
			{"..0..", "..0..", "..0..", "..0..", "....."},
			{".....", "0000.", ".....", ".....", "....."},
		},
	},
	KindO: {
		name:    "O",
		rgb:     RGB{255, 255, 0},
		palette: core.ColorYellow,
		rotations: []Template{
			{".....", ".....", ".00..", ".00..", "....."},
		},
	},
	KindJ: {
		name:    "J",
		rgb:     RGB{255, 165, 0},
		palette: core.ColorOrange,
		rotations: []Template{
			{".....", ".0...", ".000.", ".....", "....."},
			{".....", "..00.", "..0..", "..0..", "....."},
			{".....", ".....", ".000.", "...0.", "....."},
			{".....", "..0..", "..0..", ".00..", "....."},
		},
	},
	KindL: {
		name:    "L",
		rgb:     RGB{0, 0, 255},
		palette: core.ColorBlue,
		rotations: []Template{
			{".....", "...0.", ".000.", ".....", "....."},
			{".....", "..0..", "..0..", "..00.", "....."},
			{".....", ".....", ".000.", ".0...", "....."},
			{".....", ".00..", "..0..", "..0..", "....."},
		},
	},
	KindT: {
		name:    "T",
		rgb:     RGB{128, 0, 128},
		palette: core.ColorPurple,
		rotations: []Template{
			{".....", "..0..", ".000.", ".....", "....."},
			{".....", "..0..", "..00.", "..0..", "....."},
			{".....", ".....", ".000.", "..0..", "....."},
			{".....", "..0..", ".00..", "..0..", "....."},
		},
	},
}

// offsets[kind][rotation] holds the anchor-relative cells, computed once.
var offsets [KindCount][][]Point

func init() {
	for k, def := range catalog {
		offsets[k] = make([][]Point, len(def.rotations))
		for r, tmpl := range def.rotations {
			pts, err := parseTemplate(tmpl)
			if err != nil {
				panic(fmt.Sprintf("tetris: shape %s rotation %d: %v", def.name, r, err))
			}
			offsets[k][r] = pts
		}
	}
}

// parseTemplate scans a template row by row and returns the offsets of its
// blocks relative to the anchor.
func parseTemplate(t Template) ([]Point, error) {
	var pts []Point
	for row, line := range t {
		if len(line) != templateSize {
			return nil, fmt.Errorf("row %d has width %d", row, len(line))
		}
		for col, ch := range line {
			switch ch {
			case '0':
				pts = append(pts, Point{X: col - originCol, Y: row - originRow})
			case '.':
			default:
				return nil, fmt.Errorf("unexpected %q at (%d, %d)", ch, col, row)
			}
		}
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("template is empty")
	}
	return pts, nil
}

// AllKinds returns the catalog in order.
func AllKinds() []Kind {
	return []Kind{KindS, KindZ, KindI, KindO, KindJ, KindL, KindT}
}

// Valid reports whether k names a catalog shape.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// String returns the single-letter shape name.
func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return catalog[k].name
}

// Rotations returns the number of distinct rotation states (1, 2 or 4).
func (k Kind) Rotations() int {
	return len(catalog[k].rotations)
}

// RGB returns the shape's fixed color.
func (k Kind) RGB() RGB {
	return catalog[k].rgb
}

// Color returns the terminal palette color for the shape.
func (k Kind) Color() core.Color {
	return catalog[k].palette
}

// normalizeRotation maps any integer onto [0, Rotations()).
func (k Kind) normalizeRotation(rotation int) int {
	n := k.Rotations()
	return ((rotation % n) + n) % n
}

// Template returns the text mask for a rotation (taken modulo the count).
func (k Kind) Template(rotation int) Template {
	return catalog[k].rotations[k.normalizeRotation(rotation)]
}

// Offsets returns the anchor-relative cells of a rotation.
// The returned slice is a copy and may be modified.
func (k Kind) Offsets(rotation int) []Point {
	return slices.Clone(offsets[k][k.normalizeRotation(rotation)])
}

// KindFromColor finds the shape owning a color.
func KindFromColor(c RGB) (Kind, bool) {
	for k, def := range catalog {
		if def.rgb == c {
			return Kind(k), true
		}
	}
	return 0, false
}

// String draws the template with '#' blocks, one line per row.
func (t Template) String() string {
	return strings.ReplaceAll(strings.ReplaceAll(strings.Join(t[:], "\n"), "0", "#"), ".", " ")
}
