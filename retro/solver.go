// Package retro finds the probability-one wins of Dark Hex by retrograde analysis.
//
// A state is a board of the visible player's view plus h, the number of opponent stones that are
// on the board but unseen. States are grouped in layers (e, h) where e is the number of empty
// cells minus h. Every move leads either to layer (e-1, ·) or to (e, h-1), so the layers are
// solved in ascending e, then ascending h, and a state is only ever solved after all of its
// continuations.
package retro

import (
	"context"
	"fmt"
	"time"

	"github.com/gorgonia/darkhex/game"
	"github.com/gorgonia/darkhex/game/hex"
	"github.com/gorgonia/darkhex/rules"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Solver solves every state of one board size for one visible player.
type Solver struct {
	Config
	en     *Enumerator
	hidden game.Player

	maxStates     int
	maxCandidates float64
}

// New checks the configuration and prepares a Solver. Nothing is enumerated until Solve.
func New(conf Config) (*Solver, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	maxStates, maxCandidates := conf.limits()
	return &Solver{
		Config:        conf,
		en:            NewEnumerator(conf.Rows, conf.Cols, conf.Visible),
		hidden:        game.Opponent(conf.Visible),
		maxStates:     maxStates,
		maxCandidates: maxCandidates,
	}, nil
}

// Enumerator returns the enumerator the solver builds its layers with.
func (s *Solver) Enumerator() *Enumerator { return s.en }

// Solve builds and solves every layer. It returns either the complete Solution or an error, never
// both.
func (s *Solver) Solve(ctx context.Context) (*Solution, error) {
	start := time.Now()
	cells := s.Rows * s.Cols
	estimate := s.en.EstimateAll()
	if estimate > s.maxCandidates {
		return nil, errors.Wrapf(ErrResourceExhausted, "%.0f candidate boards exceed the limit of %.0f", estimate, s.maxCandidates)
	}
	log.Info().
		Int("rows", s.Rows).
		Int("cols", s.Cols).
		Str("visible", fmt.Sprintf("%v", s.Visible)).
		Float64("candidates", estimate).
		Int("max-states", s.maxStates).
		Int("workers", s.workers()).
		Msg("solve-start")

	layers := makeArena(cells)
	var states int
	for e := 0; e <= cells; e++ {
		for h := 0; e+h <= cells; h++ {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrapf(err, "solving layer (%d, %d)", e, h)
			}
			l, err := s.build(ctx, e, h)
			if err != nil {
				return nil, errors.Wrapf(err, "building layer (%d, %d)", e, h)
			}
			states += len(l.boards)
			if states > s.maxStates {
				return nil, errors.Wrapf(ErrResourceExhausted, "%d states at layer (%d, %d) exceed the limit of %d", states, e, h, s.maxStates)
			}
			layers[e][h] = l
			if err := s.evaluate(ctx, layers, l); err != nil {
				return nil, errors.Wrapf(err, "evaluating layer (%d, %d)", e, h)
			}
			s.observe(l)

			log.Debug().
				Int("e", e).
				Int("h", h).
				Int("states", len(l.boards)).
				Int("wins", lo.Count(l.verdicts, Win)).
				Msg("layer-solved")
		}
	}

	retVal := &Solution{
		rows:    s.Rows,
		cols:    s.Cols,
		visible: s.Visible,
		layers:  layers,
		states:  states,
	}
	log.Info().
		Int("states", states).
		Int("wins", retVal.wins()).
		Dur("elapsed", time.Since(start)).
		Msg("solve-done")
	return retVal, nil
}

// build enumerates the candidates of a layer and keeps the states, in candidate order.
func (s *Solver) build(ctx context.Context, e, h int) (*layer, error) {
	var candidates []hex.Board
	for b := range s.en.Candidates(e, h) {
		candidates = append(candidates, b)
	}
	keep := make([]bool, len(candidates))
	err := fanOut(ctx, s.workers(), len(candidates), func(i int) error {
		keep[i] = s.en.Accept(candidates[i], h)
		return nil
	})
	if err != nil {
		return nil, err
	}
	boards := lo.Filter(candidates, func(_ hex.Board, i int) bool { return keep[i] })
	return newLayer(e, h, boards), nil
}

// evaluate solves every slot of l. All the layers l depends on must be solved already.
func (s *Solver) evaluate(ctx context.Context, layers arena, l *layer) error {
	return fanOut(ctx, s.workers(), len(l.boards), func(i int) error {
		v, terminal, depth := s.status(layers, l.boards[i], l.e, l.h)
		l.terminal[i] = terminal
		if v == Win {
			l.promote(slot(i), depth)
		}
		return nil
	})
}

// status decides one state from its continuations:
//   - a finished game is won if the visible player connected.
//   - if the hidden player is to move, the visible player only learns that one more stone is
//     hidden somewhere: the state is won if (b, h+1) is.
//   - if the visible player is to move, the state is won if some empty cell x is won both when x
//     really is empty, (b+x, h), and when a hidden stone already sits there, (b+x revealed, h-1).
//
// A continuation that is not a state cannot happen and counts as won. depth is the length of the
// shortest proof, in plies.
func (s *Solver) status(layers arena, b hex.Board, e, h int) (v Verdict, terminal bool, depth int32) {
	if ended, winner := b.Ended(); ended {
		if winner == s.Visible {
			return Win, true, 0
		}
		return NotAForcedWin, true, 0
	}

	if rules.ToMove(b, h, s.hidden) == s.hidden {
		if v, d := continuation(layers, b, e-1, h+1); v == Win {
			return Win, false, d + 1
		}
		return NotAForcedWin, false, 0
	}

	best := int32(-1)
	for _, x := range b.Empties() {
		played, err := b.Place(x, s.Visible)
		if err != nil {
			panic(err)
		}
		v, d := continuation(layers, played, e-1, h)
		if v != Win {
			continue
		}
		if h > 0 {
			revealed, err := b.Place(x, s.hidden)
			if err != nil {
				panic(err)
			}
			v2, d2 := continuation(layers, revealed, e, h-1)
			if v2 != Win {
				continue
			}
			d = max(d, d2)
		}
		if best < 0 || d+1 < best {
			best = d + 1
		}
	}
	if best >= 0 {
		return Win, false, best
	}
	return NotAForcedWin, false, 0
}

func continuation(layers arena, b hex.Board, e, h int) (Verdict, int32) {
	l := layers.at(e, h)
	if l == nil {
		return Win, 0
	}
	i := l.find(b)
	if !i.isValid() {
		return Win, 0
	}
	return l.verdicts[i], l.depth[i]
}

func (s *Solver) observe(l *layer) {
	if s.Observer == nil {
		return
	}
	for i, b := range l.boards {
		s.Observer(Evaluation{
			Board:    b,
			E:        l.e,
			H:        l.h,
			ToMove:   rules.ToMove(b, l.h, s.hidden),
			Verdict:  l.verdicts[i],
			Terminal: l.terminal[i],
			Depth:    int(l.depth[i]),
		})
	}
}
