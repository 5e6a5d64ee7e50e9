// Package rules decides whether a Dark Hex position, as seen by one player, could have come out
// of a legal game.
//
// A position is a board of visible stones plus h, the number of the opponent's stones that exist
// on the real board but whose location is unknown. The hidden stones always belong to the
// opponent of the player who sees the board.
package rules

import (
	"github.com/gorgonia/darkhex/game"
	"github.com/gorgonia/darkhex/game/hex"
)

// Counts returns the number of black and white stones committed to the game, counting the h
// unseen stones as the hidden player's.
func Counts(b hex.Board, h int, hidden game.Player) (black, white int) {
	black, white = b.Count(game.Black), b.Count(game.White)
	switch game.Colour(hidden) {
	case game.Black:
		black += h
	case game.White:
		white += h
	}
	return black, white
}

// Balanced reports whether the stone counts can come from alternating play. Black moves first,
// so black has as many stones as white, or exactly one more.
func Balanced(black, white int) bool {
	d := black - white
	return d == 0 || d == 1
}

// nextToMove is black on an even number of committed stones.
func nextToMove(committed int) game.Player {
	if committed%2 == 0 {
		return game.Player(game.Black)
	}
	return game.Player(game.White)
}

// ToMove returns the player whose turn it is, counting the hidden stones.
func ToMove(b hex.Board, h int, hidden game.Player) game.Player {
	black, white := Counts(b, h, hidden)
	return nextToMove(black + white)
}

// IsLegal checks the two conditions a reachable position has to satisfy:
//   - the committed stone counts are balanced, and
//   - the player who moved last does not hold a win that predates its last stone.
//
// The player that is about to move is not checked for a win.
func IsLegal(b hex.Board, h int, hidden game.Player) bool {
	if h < 0 || b.IsZero() {
		return false
	}
	black, white := Counts(b, h, hidden)
	if !Balanced(black, white) {
		return false
	}
	last := game.Opponent(nextToMove(black + white))
	return !CheckEarlyWin(b, last)
}

// CheckEarlyWin returns true if p is connected on b and the connection survives the removal of
// any one of p's stones. Then no stone can have been the move that ended the game, so the game
// was already over before p's last move.
func CheckEarlyWin(b hex.Board, p game.Player) bool {
	if ended, winner := b.Ended(); !ended || winner != p {
		return false
	}
	for _, c := range b.Stones(game.Colour(p)) {
		if ended, winner := b.Clear(c).Ended(); !ended || winner != p {
			// c could have been the last stone played
			return false
		}
	}
	return true
}
