package retro

import "fmt"

// Verdict is the solved status of a (board, h) key.
type Verdict byte

const (
	// Illegal is reported for keys that aren't states: illegal, inconsistent, or of another board
	// size. It is never stored.
	Illegal Verdict = iota
	NotAForcedWin
	Win
)

func (v Verdict) String() string {
	switch v {
	case Illegal:
		return "Illegal"
	case NotAForcedWin:
		return "NotAForcedWin"
	case Win:
		return "Win"
	}
	return fmt.Sprintf("Verdict(%d)", byte(v))
}
