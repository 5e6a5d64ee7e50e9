package retro

import (
	"encoding/binary"
	"encoding/csv"
	"io"
	"iter"
	"strconv"

	"github.com/cespare/xxhash"
	"github.com/gorgonia/darkhex/game"
	"github.com/gorgonia/darkhex/game/hex"
	"github.com/samber/lo"
)

// Entry is a won state.
type Entry struct {
	Board    hex.Board
	E, H     int
	Terminal bool // the visible player has already connected
	Depth    int  // plies in the shortest proof
}

// Summary counts the states of one layer.
type Summary struct {
	E, H     int
	States   int
	Wins     int
	Terminal int // terminal states, won or lost
}

// Solution is the solved state space of one board size for one visible player. It is read only
// and safe for concurrent use.
type Solution struct {
	rows, cols int
	visible    game.Player
	layers     arena
	states     int
}

func (s *Solution) BoardSize() (int, int) { return s.rows, s.cols }

func (s *Solution) Visible() game.Player { return s.visible }

// Len returns the number of states.
func (s *Solution) Len() int { return s.states }

// Lookup returns the verdict for (b, h). Keys that are not states, including those of other board
// sizes, are Illegal.
func (s *Solution) Lookup(b hex.Board, h int) Verdict {
	if s == nil || b.IsZero() || h < 0 {
		return Illegal
	}
	if rows, cols := b.BoardSize(); rows != s.rows || cols != s.cols {
		return Illegal
	}
	l := s.layers.at(b.Count(game.None)-h, h)
	if l == nil {
		return Illegal
	}
	i := l.find(b)
	if !i.isValid() {
		return Illegal
	}
	return l.verdicts[i]
}

// IsWin reports whether (b, h) is a probability-one win for the visible player.
func (s *Solution) IsWin(b hex.Board, h int) bool { return s.Lookup(b, h) == Win }

// Wins yields every won state, layer by layer in solving order.
func (s *Solution) Wins() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, row := range s.layers {
			for _, l := range row {
				for i, v := range l.verdicts {
					if v == Win && !yield(l.entry(slot(i))) {
						return
					}
				}
			}
		}
	}
}

// Layer returns the won states of layer (e, h).
func (s *Solution) Layer(e, h int) []Entry {
	l := s.layers.at(e, h)
	if l == nil {
		return nil
	}
	var retVal []Entry
	for i, v := range l.verdicts {
		if v == Win {
			retVal = append(retVal, l.entry(slot(i)))
		}
	}
	return retVal
}

// Summaries returns one Summary per layer, in solving order.
func (s *Solution) Summaries() []Summary {
	var retVal []Summary
	for _, row := range s.layers {
		for _, l := range row {
			retVal = append(retVal, Summary{
				E:        l.e,
				H:        l.h,
				States:   len(l.boards),
				Wins:     lo.Count(l.verdicts, Win),
				Terminal: lo.Count(l.terminal, true),
			})
		}
	}
	return retVal
}

func (s *Solution) wins() int {
	return lo.SumBy(s.Summaries(), func(sum Summary) int { return sum.Wins })
}

// Digest hashes every state with its verdict and proof depth. Two solutions of the same
// configuration always have the same digest.
func (s *Solution) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, row := range s.layers {
		for _, l := range row {
			binary.LittleEndian.PutUint32(buf[:4], uint32(l.e))
			binary.LittleEndian.PutUint32(buf[4:], uint32(l.h))
			d.Write(buf[:])
			for i, b := range l.boards {
				d.Write([]byte(b.Key()))
				binary.LittleEndian.PutUint32(buf[:4], uint32(l.verdicts[i]))
				binary.LittleEndian.PutUint32(buf[4:], uint32(l.depth[i]))
				d.Write(buf[:])
			}
		}
	}
	return d.Sum64()
}

// Dump writes the layer summaries as CSV.
func (s *Solution) Dump(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"e", "h", "states", "wins", "terminal"}); err != nil {
		return err
	}
	var records [][]string
	for _, sum := range s.Summaries() {
		records = append(records, []string{
			strconv.Itoa(sum.E),
			strconv.Itoa(sum.H),
			strconv.Itoa(sum.States),
			strconv.Itoa(sum.Wins),
			strconv.Itoa(sum.Terminal),
		})
	}
	return cw.WriteAll(records)
}
