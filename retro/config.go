package retro

import (
	"runtime"

	"github.com/gorgonia/darkhex/game"
	"github.com/pbnjay/memory"
	"github.com/pkg/errors"
)

const (
	// MaxCells is the largest board the enumerator can index.
	MaxCells = 64

	defaultMemoryFraction = 0.25

	// rough footprint of one stored state: key string, board cells, index entry and slot
	bytesPerState = 192

	// every stored state may cost this many candidates that get filtered out
	candidatesPerState = 32

	// used when the physical memory cannot be determined
	fallbackStates = 1 << 22
)

// Config configures a Solver.
type Config struct {
	// Rows, Cols is the board size. Black connects row 0 to row Rows-1, White col 0 to col Cols-1.
	Rows, Cols int

	// Visible is the player whose stones are seen. The h hidden stones belong to the opponent.
	Visible game.Player

	Workers int // goroutines per layer. 0 means GOMAXPROCS

	// MaxStates caps the number of legal states kept. MaxCandidates caps the number of candidate
	// boards the enumerator may have to generate. Zero means derived from physical memory.
	MaxStates     int
	MaxCandidates int

	MemoryFraction float64 // fraction of physical memory the derived limits may use. 0 means 0.25

	Observer Observer // optional
}

// DefaultConfig returns a configuration that solves for Black on a rows×cols board using every
// available CPU.
func DefaultConfig(rows, cols int) Config {
	return Config{
		Rows:           rows,
		Cols:           cols,
		Visible:        game.Player(game.Black),
		Workers:        runtime.GOMAXPROCS(0),
		MemoryFraction: defaultMemoryFraction,
	}
}

// Validate returns an error wrapping ErrInvalidConfiguration if the configuration cannot be solved.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "impossible board size %dx%d", c.Rows, c.Cols)
	case c.Rows*c.Cols > MaxCells:
		return errors.Wrapf(ErrInvalidConfiguration, "board size %dx%d has more than %d cells", c.Rows, c.Cols, MaxCells)
	case !c.Visible.IsValid():
		return errors.Wrapf(ErrInvalidConfiguration, "visible player %v is not a player", c.Visible)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "negative worker count %d", c.Workers)
	case c.MaxStates < 0 || c.MaxCandidates < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "negative limits (states %d, candidates %d)", c.MaxStates, c.MaxCandidates)
	case c.MemoryFraction < 0 || c.MemoryFraction > 1:
		return errors.Wrapf(ErrInvalidConfiguration, "memory fraction %v is not in [0, 1]", c.MemoryFraction)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

// limits returns the effective caps, deriving the unset ones from the physical memory.
func (c Config) limits() (maxStates int, maxCandidates float64) {
	frac := c.MemoryFraction
	if frac == 0 {
		frac = defaultMemoryFraction
	}
	derived := float64(fallbackStates)
	if total := memory.TotalMemory(); total > 0 {
		derived = frac * float64(total) / bytesPerState
	}

	maxStates = c.MaxStates
	if maxStates == 0 {
		maxStates = int(derived)
	}
	maxCandidates = float64(c.MaxCandidates)
	if maxCandidates == 0 {
		maxCandidates = derived * candidatesPerState
	}
	return maxStates, maxCandidates
}
