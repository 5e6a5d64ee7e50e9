package rules

import (
	"github.com/gorgonia/darkhex/game"
	"github.com/gorgonia/darkhex/game/hex"
	"gonum.org/v1/gonum/stat/combin"
)

// HasConsistentCompletion reports whether the h hidden stones can be put on h of the empty cells
// such that the resulting fully visible board is legal. A position without such a completion
// cannot occur in a real game.
func HasConsistentCompletion(b hex.Board, h int, hidden game.Player) bool {
	_, ok := Witness(b, h, hidden)
	return ok
}

// Witness returns the first consistent completion of (b, h) in combination order.
func Witness(b hex.Board, h int, hidden game.Player) (hex.Board, bool) {
	if h < 0 || b.IsZero() || !hidden.IsValid() && h > 0 {
		return hex.Board{}, false
	}
	empties := b.Empties()
	if h > len(empties) {
		return hex.Board{}, false
	}
	black, white := Counts(b, h, hidden)
	if !Balanced(black, white) {
		return hex.Board{}, false
	}
	if h == 0 {
		return b, IsLegal(b, 0, hidden)
	}

	// Hidden stones cannot break or make the visible player's connection. If the visible player
	// moved last, one check on b settles every completion.
	last := game.Opponent(nextToMove(black + white))
	if last != hidden {
		if CheckEarlyWin(b, last) {
			return hex.Board{}, false
		}
		return complete(b, empties[:h], hidden), true
	}

	rows, cols := b.BoardSize()
	colours := b.Colours()
	buf := make([]game.Colour, len(colours))
	idx := make([]int, h)
	gen := combin.NewCombinationGenerator(len(empties), h)
	for gen.Next() {
		gen.Combination(idx)
		copy(buf, colours)
		for _, i := range idx {
			buf[empties[i]] = game.Colour(hidden)
		}
		full, err := hex.FromColours(rows, cols, buf)
		if err != nil {
			continue
		}
		if IsLegal(full, 0, hidden) {
			return full, true
		}
	}
	return hex.Board{}, false
}

func complete(b hex.Board, cells []game.Single, hidden game.Player) hex.Board {
	colours := b.Colours()
	for _, c := range cells {
		colours[c] = game.Colour(hidden)
	}
	rows, cols := b.BoardSize()
	full, _ := hex.FromColours(rows, cols, colours)
	return full
}
