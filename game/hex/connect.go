package hex

import "github.com/gorgonia/darkhex/game"

// Ended checks if the game has ended. If it has, who is the winner?
//
// This is the ground truth: a full flood fill from each player's first home edge, ignoring the
// tags. No board can have both players connected, and a full board always has a winner.
func (b Board) Ended() (ended bool, winner game.Player) {
	if b.connects(Black) {
		return true, BlackP
	}
	if b.connects(White) {
		return true, WhiteP
	}
	return false, game.Player(None)
}

// TaggedWinner reads the winner off the connectivity tags, without traversing the board.
// It must always agree with Ended.
func (b Board) TaggedWinner() game.Player {
	for _, c := range b.cells {
		if cl := c.Colour(); cl != None && joins(cl, c) {
			return game.Player(cl)
		}
	}
	return game.Player(None)
}

// connects floods from every stone of cl on its first home edge and reports whether the far edge
// is reached.
func (b Board) connects(cl game.Colour) bool {
	from, to := homeEdges(cl)
	f := b.geo.borrowFill()
	defer b.geo.returnFill(f)
	for i, c := range b.cells {
		if c.Colour() == cl && b.geo.edges[i][cl].Has(from) {
			f.seen[i] = true
			f.stack = append(f.stack, game.Single(i))
		}
	}
	for len(f.stack) > 0 {
		cur := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		if b.geo.edges[cur][cl].Has(to) {
			return true
		}
		for _, n := range b.geo.adj[cur] {
			if !f.seen[n] && b.cells[n].Colour() == cl {
				f.seen[n] = true
				f.stack = append(f.stack, n)
			}
		}
	}
	return false
}
