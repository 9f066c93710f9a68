// Package engine implements the rules of the falling-block game: the playfield grid,
// the piece catalog, the 7-bag randomizer, the active piece with its hold slot and
// ghost projection, and score/level bookkeeping.
//
// The package is pure and deterministic. It performs no I/O, owns no timers and holds
// no locks; callers serialize access and drive gravity from outside.
package engine

import (
	"fmt"
	"strings"
)

// Cell is a single grid cell holding a color id. Zero means empty.
type Cell uint8

// Empty is the zero cell.
const Empty Cell = 0

// ShapeSize is the side length of every rotation variant.
const ShapeSize = 4

// Shape is one rotation variant of a piece, indexed [row][col].
// It is a value type, so handing a Shape out never exposes catalog memory.
type Shape [ShapeSize][ShapeSize]Cell

// IsEmpty reports whether the shape has no filled cells.
func (s Shape) IsEmpty() bool {
	for _, row := range s {
		for _, c := range row {
			if c != Empty {
				return false
			}
		}
	}
	return true
}

// CellCount returns the number of filled cells.
func (s Shape) CellCount() int {
	n := 0
	for _, row := range s {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Kind identifies one of the seven pieces. Its numeric value doubles as the
// color id written into the grid when the piece locks.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of real piece kinds (and the size of one bag).
const KindCount = 7

var allKinds = [KindCount]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// Kinds returns all seven piece kinds in catalog order.
func Kinds() []Kind {
	kinds := allKinds
	return kinds[:]
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "-"
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// ParseKind converts a letter (case-insensitive) back into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range allKinds {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("engine: unknown piece kind %q", s)
}

// Valid reports whether k is one of the seven real kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// Color returns the color id used for this kind's cells.
func (k Kind) Color() Cell {
	return Cell(k)
}

// Rotations returns the ordered rotation variants of the kind.
// The returned slice is shared; callers must treat it as read-only.
func (k Kind) Rotations() []Shape {
	if !k.Valid() {
		return nil
	}
	return catalog[k]
}

// Shape returns the variant at the given rotation index, wrapped into range.
func (k Kind) Shape(rotation int) Shape {
	rots := k.Rotations()
	if len(rots) == 0 {
		return Shape{}
	}
	rotation %= len(rots)
	if rotation < 0 {
		rotation += len(rots)
	}
	return rots[rotation]
}

// catalog holds the rotation variants of each kind, indexed by Kind.
// Validated once at init; nothing writes to it afterwards.
var catalog = [KindCount + 1][]Shape{
	KindI: {
		{
			{0, 0, 0, 0},
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
		},
	},
	KindJ: {
		{
			{0, 0, 0, 0},
			{2, 2, 2, 0},
			{0, 0, 2, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 2, 2, 0},
			{0, 2, 0, 0},
			{0, 2, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 2, 0, 0},
			{0, 2, 2, 2},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 2, 0},
			{0, 0, 2, 0},
			{0, 2, 2, 0},
			{0, 0, 0, 0},
		},
	},
	KindL: {
		{
			{0, 0, 0, 0},
			{0, 3, 3, 3},
			{0, 3, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 3, 3, 0},
			{0, 0, 3, 0},
			{0, 0, 3, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 0, 3, 0},
			{3, 3, 3, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 3, 0, 0},
			{0, 3, 0, 0},
			{0, 3, 3, 0},
			{0, 0, 0, 0},
		},
	},
	KindO: {
		{
			{0, 0, 0, 0},
			{0, 4, 4, 0},
			{0, 4, 4, 0},
			{0, 0, 0, 0},
		},
	},
	KindS: {
		{
			{0, 0, 0, 0},
			{0, 5, 5, 0},
			{5, 5, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{5, 0, 0, 0},
			{5, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 0, 0, 0},
		},
	},
	KindT: {
		{
			{0, 0, 0, 0},
			{6, 6, 6, 0},
			{0, 6, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 6, 0, 0},
			{0, 6, 6, 0},
			{0, 6, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 6, 0, 0},
			{6, 6, 6, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 6, 0, 0},
			{6, 6, 0, 0},
			{0, 6, 0, 0},
			{0, 0, 0, 0},
		},
	},
	KindZ: {
		{
			{0, 0, 0, 0},
			{7, 7, 0, 0},
			{0, 7, 7, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 7, 0, 0},
			{7, 7, 0, 0},
			{7, 0, 0, 0},
			{0, 0, 0, 0},
		},
	},
}

func init() {
	if err := validateCatalog(); err != nil {
		panic(err)
	}
}

// validateCatalog checks every kind has at least one variant, no variant is empty,
// and every filled cell carries the kind's own color id.
func validateCatalog() error {
	for _, k := range allKinds {
		rots := catalog[k]
		if len(rots) == 0 {
			return fmt.Errorf("engine: kind %s has no rotation variants", k)
		}
		for i, s := range rots {
			if s.IsEmpty() {
				return fmt.Errorf("engine: kind %s variant %d is empty", k, i)
			}
			for _, row := range s {
				for _, c := range row {
					if c != Empty && c != k.Color() {
						return fmt.Errorf("engine: kind %s variant %d has foreign color %d", k, i, c)
					}
				}
			}
		}
	}
	return nil
}
