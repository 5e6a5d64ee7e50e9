package hex

import (
	"fmt"

	"github.com/gorgonia/darkhex/game"
)

type moveError game.PlayerMove

func (err moveError) Error() string {
	return fmt.Sprintf("Unable to make %v", game.PlayerMove(err))
}
