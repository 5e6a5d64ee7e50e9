package retro

import (
	"fmt"

	"github.com/gorgonia/darkhex/game/hex"
)

// slot is the position of a board within its layer
type slot int32

func (s slot) isValid() bool { return s >= 0 }

const noSlot slot = -1

// layer holds every state of one (e, h) pair. Boards, verdicts and the rest are parallel slices
// indexed by slot. A layer is filled once and never resized.
type layer struct {
	e, h     int
	boards   []hex.Board
	index    map[string]slot
	verdicts []Verdict
	terminal []bool
	depth    []int32
}

func newLayer(e, h int, boards []hex.Board) *layer {
	l := &layer{
		e:        e,
		h:        h,
		boards:   boards,
		index:    make(map[string]slot, len(boards)),
		verdicts: make([]Verdict, len(boards)),
		terminal: make([]bool, len(boards)),
		depth:    make([]int32, len(boards)),
	}
	for i, b := range boards {
		l.index[b.Key()] = slot(i)
		l.verdicts[i] = NotAForcedWin
	}
	return l
}

func (l *layer) find(b hex.Board) slot {
	if s, ok := l.index[b.Key()]; ok {
		return s
	}
	return noSlot
}

// promote marks a slot as won. A slot can only be promoted once.
func (l *layer) promote(s slot, depth int32) {
	if l.verdicts[s] != NotAForcedWin {
		panic(fmt.Sprintf("slot %d of layer (%d, %d) is already %v", s, l.e, l.h, l.verdicts[s]))
	}
	l.verdicts[s] = Win
	l.depth[s] = depth
}

func (l *layer) entry(s slot) Entry {
	return Entry{
		Board:    l.boards[s],
		E:        l.e,
		H:        l.h,
		Terminal: l.terminal[s],
		Depth:    int(l.depth[s]),
	}
}

// arena indexes layers by e, then h.
type arena [][]*layer

func makeArena(cells int) arena {
	retVal := make(arena, cells+1)
	for e := range retVal {
		retVal[e] = make([]*layer, cells-e+1)
	}
	return retVal
}

// at returns nil for layers that don't exist or haven't been built.
func (a arena) at(e, h int) *layer {
	if e < 0 || e >= len(a) || h < 0 || h >= len(a[e]) {
		return nil
	}
	return a[e][h]
}
