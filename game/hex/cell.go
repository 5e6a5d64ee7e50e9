package hex

import (
	"fmt"

	"github.com/gorgonia/darkhex/game"
)

// Cell is the content of a single board location: the owner colour in the low bits, plus the
// connectivity tags derived for that stone.
type Cell uint8

const (
	ownerMask Cell = 0x3

	North    Cell = 1 << 2 // black stone linked to row 0
	South    Cell = 1 << 3 // black stone linked to the last row
	West     Cell = 1 << 4 // white stone linked to column 0
	East     Cell = 1 << 5 // white stone linked to the last column
	Decisive Cell = 1 << 6 // the stone whose placement completed a connection

	edgeMask = North | South | West | East
)

// Colour returns the owner of the cell.
func (c Cell) Colour() game.Colour { return game.Colour(c & ownerMask) }

// Has reports whether all the given tags are set.
func (c Cell) Has(tags Cell) bool { return c&tags == tags }

// Edges returns only the edge tags of the cell.
func (c Cell) Edges() Cell { return c & edgeMask }

func (c Cell) Format(s fmt.State, r rune) {
	switch r {
	case 'v':
		fmt.Fprintf(s, "%v", c.Colour())
		for _, t := range []struct {
			tag  Cell
			name string
		}{{North, "N"}, {South, "S"}, {West, "W"}, {East, "E"}, {Decisive, "!"}} {
			if c.Has(t.tag) {
				fmt.Fprint(s, t.name)
			}
		}
	default:
		fmt.Fprintf(s, "%s", c.Colour())
	}
}

// homeEdges returns the pair of edge tags a colour has to join.
func homeEdges(cl game.Colour) (Cell, Cell) {
	switch cl {
	case game.Black:
		return North, South
	case game.White:
		return West, East
	}
	return 0, 0
}

// joins reports whether the tags hold both home edges of the colour.
func joins(cl game.Colour, tags Cell) bool {
	a, b := homeEdges(cl)
	return a != 0 && tags.Has(a|b)
}
