package hex

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/gorgonia/darkhex/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeTests = []struct {
	rows, cols int
	board      string
	move       game.PlayerMove
	board2     string // empty if invalid
	decisive   bool
	willErr    bool
}{
	// placing on an empty
	{
		rows: 2, cols: 2,
		board:  ". . . .",
		move:   game.PlayerMove{Player: BlackP, Single: 1},
		board2: ". x . .",
	},

	// completing a north-south link. (0, 1) touches both cells of the bottom row.
	// · X
	//  · ·
	{
		rows: 2, cols: 2,
		board:    ". x . .",
		move:     game.PlayerMove{Player: BlackP, Single: 2},
		board2:   ". x x .",
		decisive: true,
	},

	// (0, 0) and (1, 1) are not neighbours
	{
		rows: 2, cols: 2,
		board:  "x . . .",
		move:   game.PlayerMove{Player: BlackP, Single: 3},
		board2: "x . . x",
	},

	// white joining west and east through a group
	// O · ·
	//  O · O
	{
		rows: 2, cols: 3,
		board:    "o . . o . o",
		move:     game.PlayerMove{Player: WhiteP, Single: 4},
		board2:   "o . . o o o",
		decisive: true,
	},

	// a single stone on a one row board touches north and south at once
	{
		rows: 1, cols: 2,
		board:    ". .",
		move:     game.PlayerMove{Player: BlackP, Single: 0},
		board2:   "x .",
		decisive: true,
	},

	// occupied
	{
		rows: 2, cols: 2,
		board:   "o . . .",
		move:    game.PlayerMove{Player: BlackP, Single: 0},
		willErr: true,
	},

	// impossible move
	{
		rows: 2, cols: 2,
		board:   ". . . .",
		move:    game.PlayerMove{Player: BlackP, Single: 4},
		willErr: true,
	},

	// impossible colour
	{
		rows: 2, cols: 2,
		board:   ". . . .",
		move:    game.PlayerMove{Player: game.Player(None), Single: 1},
		willErr: true,
	},
}

func TestBoard_Place(t *testing.T) {
	for testID, pt := range placeTests {
		b := MustParse(pt.rows, pt.cols, pt.board)
		before := b.Key()
		b2, err := b.Place(pt.move.Single, pt.move.Player)

		switch {
		case pt.willErr && err == nil:
			t.Errorf("Test %d: Expected an error for \n%s", testID, b)
			continue
		case pt.willErr && err != nil:
			continue
		case !pt.willErr && err != nil:
			t.Errorf("Test %d: err %v", testID, err)
			continue
		}

		if b.Key() != before {
			t.Errorf("Test %d: Place mutated the original board\n%s", testID, b)
		}
		if !b2.Eq(MustParse(pt.rows, pt.cols, pt.board2)) {
			t.Errorf("Test %d: Board failure:\n%s", testID, b2)
		}
		if got := b2.Cell(pt.move.Single).Has(Decisive); got != pt.decisive {
			t.Errorf("Test %d: Expected decisive tag to be %v. Got %v\n%v", testID, pt.decisive, got, b2)
		}
		if ended, winner := b2.Ended(); pt.decisive && (!ended || winner != pt.move.Player) {
			t.Errorf("Test %d: Expected %v to have won\n%s", testID, pt.move.Player, b2)
		}
	}
}

var endedTests = []struct {
	rows, cols int
	board      string
	ended      bool
	winner     game.Player
}{
	{2, 2, ". . . .", false, game.Player(None)},
	{2, 2, "x . x .", true, BlackP},
	{2, 2, ". x x .", true, BlackP},
	{2, 2, ". x . x", true, BlackP},
	{2, 2, "x . . x", false, game.Player(None)},
	{2, 2, "o o . .", true, WhiteP},
	{2, 2, ". o o .", true, WhiteP},
	{2, 2, "o . . o", false, game.Player(None)},
	// full board, black links (0, 1) to (1, 1)
	{2, 2, "o x o x", true, BlackP},
	{1, 3, ". x .", true, BlackP},
	{1, 3, "o . o", false, game.Player(None)},
	{1, 3, "o o o", true, WhiteP},
	// a bent north-south chain
	// · X · ·
	//  · X X ·
	//   · · X ·
	{3, 4, `. x . .
	         . x x .
	         . . x .`, true, BlackP},
	// the same shape transposed is a white win
	{4, 3, `. . . .
	         o o . .
	         . o o .
	         . . . .`, true, WhiteP},
}

func TestBoard_Ended(t *testing.T) {
	for i, et := range endedTests {
		b := MustParse(et.rows, et.cols, et.board)
		ended, winner := b.Ended()
		if ended != et.ended || winner != et.winner {
			t.Errorf("Test %d: Expected (%v, %v). Got (%v, %v)\n%s", i, et.ended, et.winner, ended, winner, b)
		}
		if tagged := b.TaggedWinner(); tagged != winner {
			t.Errorf("Test %d: tags say %v, traversal says %v\n%s", i, tagged, winner, b)
		}
	}
}

// allBoards enumerates every colouring of a rows×cols board.
func allBoards(rows, cols int) []Board {
	n := rows * cols
	total := 1
	for i := 0; i < n; i++ {
		total *= 3
	}
	retVal := make([]Board, 0, total)
	colours := make([]game.Colour, n)
	for code := 0; code < total; code++ {
		c := code
		for i := range colours {
			colours[i] = game.Colour(c % 3)
			c /= 3
		}
		b, err := FromColours(rows, cols, colours)
		if err != nil {
			panic(err)
		}
		retVal = append(retVal, b)
	}
	return retVal
}

func TestTransposeSymmetry(t *testing.T) {
	sizes := []struct{ rows, cols int }{{1, 3}, {2, 2}, {2, 3}, {3, 2}, {3, 3}}
	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz.rows, sz.cols), func(t *testing.T) {
			for _, b := range allBoards(sz.rows, sz.cols) {
				tr := b.Transpose()
				ended, winner := b.Ended()
				ended2, winner2 := tr.Ended()
				require.Equal(t, ended, ended2, "%s\n%s", b, tr)
				if ended {
					require.Equal(t, game.Opponent(winner), winner2, "%s\n%s", b, tr)
				}
				require.True(t, tr.Transpose().Eq(b))
			}
		})
	}
}

func TestFullBoardsHaveAWinner(t *testing.T) {
	for _, b := range allBoards(3, 3) {
		if b.Count(None) > 0 {
			continue
		}
		ended, _ := b.Ended()
		assert.True(t, ended, "%s", b)
	}
}

// TestIncrementalTagsAgree plays random games and checks after every stone that the tags built
// up by Place agree with a from-scratch traversal.
func TestIncrementalTagsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	sizes := []struct{ rows, cols int }{{2, 2}, {3, 3}, {4, 4}, {3, 5}, {6, 6}}
	for _, sz := range sizes {
		for g := 0; g < 200; g++ {
			b := New(sz.rows, sz.cols)
			p := BlackP
			for _, c := range r.Perm(b.Len()) {
				// the colour is random so that one side can pile up stones
				if r.Intn(3) == 0 {
					p = game.Opponent(p)
				}
				_, before := b.Ended()
				b2, err := b.Place(game.Single(c), p)
				require.NoError(t, err)

				_, winner := b2.Ended()
				require.Equal(t, winner, b2.TaggedWinner(), "%v", b2)

				scratch, err := FromColours(sz.rows, sz.cols, b2.Colours())
				require.NoError(t, err)
				for i := 0; i < b2.Len(); i++ {
					require.Equal(t, scratch.Cell(game.Single(i)).Edges(), b2.Cell(game.Single(i)).Edges(), "cell %d of\n%v", i, b2)
				}
				if before == game.Player(None) && winner == p {
					require.True(t, b2.Cell(game.Single(c)).Has(Decisive), "%v", b2)
				}
				b = b2
			}
		}
	}
}

func TestBoard_Clear(t *testing.T) {
	b := MustParse(2, 2, ". x x .")
	ended, _ := b.Ended()
	require.True(t, ended)

	cleared := b.Clear(2)
	ended, _ = cleared.Ended()
	assert.False(t, ended)
	assert.Equal(t, game.Player(None), cleared.TaggedWinner())
	assert.True(t, cleared.Eq(MustParse(2, 2, ". x . .")))

	// original untouched
	assert.Equal(t, Black, b.At(2))
}

func TestBoard_Accessors(t *testing.T) {
	b := MustParse(2, 3, "x . o . x .")
	rows, cols := b.BoardSize()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 2, b.Count(Black))
	assert.Equal(t, 1, b.Count(White))
	assert.Equal(t, []game.Single{1, 3, 5}, b.Empties())
	assert.Equal(t, []game.Single{0, 4}, b.Stones(Black))
	assert.Equal(t, "102010", b.Key())
	assert.False(t, b.IsZero())
	assert.True(t, Board{}.IsZero())

	_, err := FromColours(2, 2, []game.Colour{None})
	assert.Error(t, err)
	_, err = FromColours(0, 2, nil)
	assert.Error(t, err)
}

func TestBoard_Format(t *testing.T) {
	b := MustParse(2, 2, "x . . o")
	s := fmt.Sprintf("%s", b)
	assert.Equal(t, "⎢ X · ⎥\n ⎢ · O ⎥\n", s)

	// what Format prints, MustParse reads back
	assert.True(t, MustParse(2, 2, s).Eq(b))
	t.Logf("\n%v", b)
}
