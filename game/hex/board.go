package hex

import (
	"fmt"
	"strings"

	"github.com/gorgonia/darkhex/game"
	"github.com/pkg/errors"
)

const (
	Black = game.Black
	White = game.White
	None  = game.None

	BlackP = game.Player(game.Black)
	WhiteP = game.Player(game.White)
)

// Board is an immutable Hex board. Placing or clearing a stone returns a new Board; the receiver
// is never touched after it has been built.
//
// The zero Board has no geometry and is only useful as a "no board" return value.
type Board struct {
	geo   *geometry
	cells []Cell
}

// New creates an empty rows×cols board.
func New(rows, cols int) Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("impossible board size %dx%d", rows, cols))
	}
	return Board{
		geo:   borrowGeometry(rows, cols),
		cells: make([]Cell, rows*cols),
	}
}

// FromColours builds a board from a row-major slice of colours and derives the connectivity tags.
func FromColours(rows, cols int, colours []game.Colour) (Board, error) {
	if rows <= 0 || cols <= 0 {
		return Board{}, errors.Errorf("impossible board size %dx%d", rows, cols)
	}
	if len(colours) != rows*cols {
		return Board{}, errors.Errorf("expected %d cells for a %dx%d board. Got %d", rows*cols, rows, cols, len(colours))
	}
	b := Board{
		geo:   borrowGeometry(rows, cols),
		cells: make([]Cell, len(colours)),
	}
	for i, cl := range colours {
		switch cl {
		case None, Black, White:
			b.cells[i] = Cell(cl)
		default:
			return Board{}, errors.Errorf("impossible colour %d at cell %d", int32(cl), i)
		}
	}
	b.retag()
	return b, nil
}

// MustParse reads a board drawn with 'x' (black), 'o' (white) and '.' (empty). Whitespace and the
// ⎢ ⎥ frame printed by Format are ignored. It panics on malformed input, so it's meant for tests
// and fixed tables.
func MustParse(rows, cols int, s string) Board {
	colours := make([]game.Colour, 0, rows*cols)
	for _, r := range s {
		switch r {
		case 'x', 'X', 'b', 'B':
			colours = append(colours, Black)
		case 'o', 'O', 'w', 'W':
			colours = append(colours, White)
		case '.', '·', '_':
			colours = append(colours, None)
		case ' ', '\t', '\n', '\r', '⎢', '⎥':
		default:
			panic(fmt.Sprintf("unexpected %q in board %q", r, s))
		}
	}
	b, err := FromColours(rows, cols, colours)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	return b
}

func (b Board) BoardSize() (int, int) { return b.geo.rows, b.geo.cols }

// Len returns the number of cells.
func (b Board) Len() int { return len(b.cells) }

// IsZero reports whether b is the zero Board.
func (b Board) IsZero() bool { return b.geo == nil }

// At returns the colour of the stone at c.
func (b Board) At(c game.Single) game.Colour { return b.cells[c].Colour() }

// Cell returns the cell at c, tags included.
func (b Board) Cell(c game.Single) Cell { return b.cells[c] }

// Colours returns a fresh copy of the owner of every cell.
func (b Board) Colours() []game.Colour {
	retVal := make([]game.Colour, len(b.cells))
	for i, c := range b.cells {
		retVal[i] = c.Colour()
	}
	return retVal
}

// Count returns the number of stones of the given colour. Counting None counts the empty cells.
func (b Board) Count(cl game.Colour) int {
	var n int
	for _, c := range b.cells {
		if c.Colour() == cl {
			n++
		}
	}
	return n
}

// Empties lists the empty cells in ascending order.
func (b Board) Empties() []game.Single { return b.Stones(None) }

// Stones lists the cells holding the given colour in ascending order.
func (b Board) Stones(cl game.Colour) []game.Single {
	var retVal []game.Single
	for i, c := range b.cells {
		if c.Colour() == cl {
			retVal = append(retVal, game.Single(i))
		}
	}
	return retVal
}

// Key is the canonical identity of the board: one byte per cell, owner only.
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(b.cells))
	for _, c := range b.cells {
		sb.WriteByte(byte('0' + c.Colour()))
	}
	return sb.String()
}

// Eq compares the stones of two boards. Tags are derived and are not compared.
func (b Board) Eq(other Board) bool {
	if b.geo != other.geo || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i].Colour() != other.cells[i].Colour() {
			return false
		}
	}
	return true
}

// Check reports whether the move can be applied.
func (b Board) Check(m game.PlayerMove) bool {
	_, err := b.check(m)
	return err == nil
}

func (b Board) check(m game.PlayerMove) (game.Colour, error) {
	if !m.Player.IsValid() {
		return None, errors.WithMessage(moveError(m), "Impossible player")
	}
	if m.Single < 0 || int(m.Single) >= len(b.cells) {
		return None, errors.WithMessage(moveError(m), "Impossible move")
	}
	if b.cells[m.Single].Colour() != None {
		return None, errors.WithMessage(moveError(m), "Application Failure - board location not empty.")
	}
	return game.Colour(m.Player), nil
}

// Place returns a new board with a stone of p at c.
//
// The new stone picks up its own edge tags and those of every adjacent group of its colour. The
// merged group is then retagged with the union. If the union spans both of p's home edges and
// none of the merged groups did on its own, the new stone is also tagged Decisive.
func (b Board) Place(c game.Single, p game.Player) (Board, error) {
	cl, err := b.check(game.PlayerMove{Player: p, Single: c})
	if err != nil {
		return Board{}, err
	}
	retVal := b.clone()
	tags := b.geo.edges[c][cl]
	var joined bool // some neighbouring group was already connected
	for _, n := range b.geo.adj[c] {
		if retVal.cells[n].Colour() == cl {
			tags |= retVal.cells[n].Edges()
			joined = joined || joins(cl, retVal.cells[n].Edges())
		}
	}
	retVal.cells[c] = Cell(cl) | tags
	retVal.spread(c, cl, tags)
	if joins(cl, tags) && !joined {
		retVal.cells[c] |= Decisive
	}
	return retVal, nil
}

// Clear returns a new board with the cell at c emptied. Tags are recomputed from scratch since
// removing a stone may split a group.
func (b Board) Clear(c game.Single) Board {
	colours := b.Colours()
	colours[c] = None
	retVal := Board{geo: b.geo, cells: make([]Cell, len(colours))}
	for i, cl := range colours {
		retVal.cells[i] = Cell(cl)
	}
	retVal.retag()
	return retVal
}

// Transpose returns the board mirrored along its main diagonal with the colours swapped. A black
// north-south connection becomes a white west-east one and vice versa.
func (b Board) Transpose() Board {
	rows, cols := b.BoardSize()
	colours := make([]game.Colour, len(b.cells))
	for i, c := range b.cells {
		r, col := i/cols, i%cols
		var cl game.Colour
		switch c.Colour() {
		case Black:
			cl = White
		case White:
			cl = Black
		}
		colours[col*rows+r] = cl
	}
	retVal, _ := FromColours(cols, rows, colours)
	return retVal
}

func (b Board) clone() Board {
	retVal := Board{geo: b.geo, cells: make([]Cell, len(b.cells))}
	copy(retVal.cells, b.cells)
	return retVal
}

// retag derives the edge tags of every group from scratch. It only runs on boards under
// construction.
func (b Board) retag() {
	for i := range b.cells {
		b.cells[i] &= ownerMask
	}
	f := b.geo.borrowFill()
	defer b.geo.returnFill(f)
	for i, c := range b.cells {
		cl := c.Colour()
		if cl == None || f.seen[i] {
			continue
		}
		// collect the group, then stamp the union of its edges on every member
		var tags Cell
		start := len(f.stack)
		f.stack = append(f.stack, game.Single(i))
		f.seen[i] = true
		for j := start; j < len(f.stack); j++ {
			cur := f.stack[j]
			tags |= b.geo.edges[cur][cl]
			for _, n := range b.geo.adj[cur] {
				if !f.seen[n] && b.cells[n].Colour() == cl {
					f.seen[n] = true
					f.stack = append(f.stack, n)
				}
			}
		}
		for _, member := range f.stack[start:] {
			b.cells[member] |= tags
		}
	}
}

// spread ORs tags into every stone connected to c.
func (b Board) spread(c game.Single, cl game.Colour, tags Cell) {
	f := b.geo.borrowFill()
	defer b.geo.returnFill(f)
	f.stack = append(f.stack, c)
	f.seen[c] = true
	for len(f.stack) > 0 {
		cur := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		b.cells[cur] |= tags
		for _, n := range b.geo.adj[cur] {
			if !f.seen[n] && b.cells[n].Colour() == cl && b.cells[n].Edges()|tags != b.cells[n].Edges() {
				f.seen[n] = true
				f.stack = append(f.stack, n)
			}
		}
	}
}

func (b Board) Format(s fmt.State, c rune) {
	if b.geo == nil {
		fmt.Fprint(s, "<nil board>")
		return
	}
	switch c {
	case 's', 'v':
		for r := 0; r < b.geo.rows; r++ {
			fmt.Fprint(s, strings.Repeat(" ", r))
			fmt.Fprint(s, "⎢ ")
			for _, cell := range b.cells[r*b.geo.cols : (r+1)*b.geo.cols] {
				fmt.Fprintf(s, "%s ", cell)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}
