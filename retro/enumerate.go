package retro

import (
	"iter"

	"github.com/gorgonia/darkhex/game"
	"github.com/gorgonia/darkhex/game/hex"
	"github.com/gorgonia/darkhex/rules"
	"gonum.org/v1/gonum/stat/combin"
)

// exact binomials are used up to this many cells; above it the products may overflow an int
const exactBinomialCells = 30

// Split is one way of dividing the visible stones of a layer between the two colours.
type Split struct {
	Visible  int // stones of the visible player
	Opponent int // opponent stones whose location is known
}

// Enumerator lists the boards of an (e, h) layer: every board with exactly e+h empty cells whose
// stone counts, with h hidden opponent stones added, are balanced.
type Enumerator struct {
	rows, cols int
	visible    game.Player
	hidden     game.Player
}

func NewEnumerator(rows, cols int, visible game.Player) *Enumerator {
	return &Enumerator{
		rows:    rows,
		cols:    cols,
		visible: visible,
		hidden:  game.Opponent(visible),
	}
}

func (en *Enumerator) cells() int { return en.rows * en.cols }

// Splits lists the balanced splits of layer (e, h) in ascending order of visible stones.
func (en *Enumerator) Splits(e, h int) []Split {
	stones := en.cells() - e - h
	if e < 0 || h < 0 || stones < 0 {
		return nil
	}
	var retVal []Split
	for v := 0; v <= stones; v++ {
		o := stones - v
		var black, white int
		if game.Colour(en.visible) == game.Black {
			black, white = v, o+h
		} else {
			black, white = o+h, v
		}
		if rules.Balanced(black, white) {
			retVal = append(retVal, Split{Visible: v, Opponent: o})
		}
	}
	return retVal
}

// EstimateCandidates returns the number of boards Candidates(e, h) yields. The figure is exact on
// small boards and a floating point approximation on large ones.
func (en *Enumerator) EstimateCandidates(e, h int) float64 {
	n := en.cells()
	var total float64
	for _, sp := range en.Splits(e, h) {
		total += binomial(n, sp.Visible) * binomial(n-sp.Visible, sp.Opponent)
	}
	return total
}

// EstimateAll sums EstimateCandidates over every layer.
func (en *Enumerator) EstimateAll() float64 {
	n := en.cells()
	var total float64
	for e := 0; e <= n; e++ {
		for h := 0; e+h <= n; h++ {
			total += en.EstimateCandidates(e, h)
		}
	}
	return total
}

func binomial(n, k int) float64 {
	if n <= exactBinomialCells {
		return float64(combin.Binomial(n, k))
	}
	return combin.GeneralizedBinomial(float64(n), float64(k))
}

// Candidates yields every board of layer (e, h) with balanced counts, legal or not. The order is
// fixed: split by split, then the visible player's cells in combination order, then the opponent's
// cells among the rest in combination order.
func (en *Enumerator) Candidates(e, h int) iter.Seq[hex.Board] {
	return func(yield func(hex.Board) bool) {
		n := en.cells()
		colours := make([]game.Colour, n)
		free := make([]int, 0, n)
		taken := make([]bool, n)
		for _, sp := range en.Splits(e, h) {
			vis := make([]int, sp.Visible)
			opp := make([]int, sp.Opponent)
			outer := combin.NewCombinationGenerator(n, sp.Visible)
			for outer.Next() {
				outer.Combination(vis)
				clear(taken)
				for _, i := range vis {
					taken[i] = true
				}
				free = free[:0]
				for i := 0; i < n; i++ {
					if !taken[i] {
						free = append(free, i)
					}
				}

				inner := combin.NewCombinationGenerator(len(free), sp.Opponent)
				for inner.Next() {
					inner.Combination(opp)
					clear(colours)
					for _, i := range vis {
						colours[i] = game.Colour(en.visible)
					}
					for _, j := range opp {
						colours[free[j]] = game.Colour(en.hidden)
					}
					b, err := hex.FromColours(en.rows, en.cols, colours)
					if err != nil {
						panic(err) // the size was validated and every colour is valid
					}
					if !yield(b) {
						return
					}
				}
			}
		}
	}
}

// Accept reports whether a candidate of layer (e, h) is a state: legal, and with a completion of
// the hidden stones that is itself legal.
func (en *Enumerator) Accept(b hex.Board, h int) bool {
	return rules.IsLegal(b, h, en.hidden) && rules.HasConsistentCompletion(b, h, en.hidden)
}

// States yields the states of layer (e, h) in candidate order.
func (en *Enumerator) States(e, h int) iter.Seq[hex.Board] {
	return func(yield func(hex.Board) bool) {
		for b := range en.Candidates(e, h) {
			if en.Accept(b, h) && !yield(b) {
				return
			}
		}
	}
}
