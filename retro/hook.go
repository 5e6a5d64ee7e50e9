package retro

import (
	"github.com/gorgonia/darkhex/game"
	"github.com/gorgonia/darkhex/game/hex"
)

// Evaluation is what an Observer is told about one solved state.
type Evaluation struct {
	Board    hex.Board
	E, H     int
	ToMove   game.Player
	Verdict  Verdict
	Terminal bool
	Depth    int
}

// Observer is called once for every state, after the layer holding it has been solved. Calls
// happen on the goroutine running Solve, in layer order and then slot order.
type Observer func(Evaluation)
