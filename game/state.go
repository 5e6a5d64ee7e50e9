package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Player represents a player. It's also a colour.
//
// Black always moves first and connects the north and south edges.
// White moves second and connects the west and east edges.
type Player Colour

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// IsValid returns true if the player is one of the two playing colours.
func (p Player) IsValid() bool { return Colour(p) == Black || Colour(p) == White }

// Opponent returns the other player.
func Opponent(p Player) Player {
	switch Colour(p) {
	case Black:
		return Player(White)
	case White:
		return Player(Black)
	}
	panic("Unreachable")
}

// ParsePlayer reads a player name. Both the colour names and the board glyphs are accepted.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b", "x":
		return Player(Black), nil
	case "white", "w", "o":
		return Player(White), nil
	}
	return Player(None), errors.Errorf("unrecognized player %q", s)
}

// PlayerMove is a tuple indicating the player and the cell the stone goes on.
type PlayerMove struct {
	Player
	Single
}

// Eq returns true if both are equal
func (p PlayerMove) Eq(other PlayerMove) bool {
	return p.Player == other.Player && p.Single == other.Single
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%d", p.Player, p.Single) }

// Coord represents a (row, col) coordinate.
//
// The Coord uses a standard computer cartesian coordinates
//   - (0, 0) represents the top left
//   - (rows-1, cols-1) represents the bottom right
type Coord struct {
	X, Y int16
}

func (c Coord) Add(other Coord) Coord { return Coord{c.X + other.X, c.Y + other.Y} }

func (c Coord) Eq(other Coord) bool { return c.X == other.X && c.Y == other.Y }

// Single represents a coordinate as a single number, utilized in a rowmajor fashion.
//   - 0 represents the top left
//   - cols-1 represents the top right
//   - cols represents (1, 0)
type Single int32
