// darkhex solves a fixed list of small Dark Hex boards and prints the forced wins it finds.
//
// The list can be replaced by a darkhex.yaml file in the working directory:
//
//	debug: true
//	runs:
//	  - {rows: 2, cols: 2, visible: black}
//	  - {rows: 3, cols: 3, visible: white, workers: 4}
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorgonia/darkhex/game/hex"
	"github.com/gorgonia/darkhex/retro"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const runFile = "darkhex.yaml"

// printed in full up to this many wins per solution
const maxListed = 20

func main() {
	plan, err := loadPlan(runFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if plan.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, r := range plan.Runs {
		conf, err := r.config()
		if err != nil {
			log.Error().Err(err).Msg("skipping run")
			continue
		}
		s, err := retro.New(conf)
		if err != nil {
			log.Error().Err(err).Msg("skipping run")
			continue
		}
		sol, err := s.Solve(ctx)
		if err != nil {
			log.Error().Err(err).Int("rows", conf.Rows).Int("cols", conf.Cols).Msg("solve failed")
			if ctx.Err() != nil {
				return
			}
			continue
		}
		report(sol)
	}
}

func report(sol *retro.Solution) {
	rows, cols := sol.BoardSize()
	fmt.Printf("%dx%d, %v visible: %d states, digest %016x\n", rows, cols, sol.Visible(), sol.Len(), sol.Digest())
	if err := sol.Dump(os.Stdout); err != nil {
		log.Error().Err(err).Msg("dump")
	}

	fmt.Printf("empty board: %v\n", sol.Lookup(hex.New(rows, cols), 0))
	var listed int
	for en := range sol.Wins() {
		if en.H != 0 || en.Terminal {
			continue
		}
		if listed == maxListed {
			fmt.Println("...")
			break
		}
		listed++
		fmt.Printf("win in %d plies:\n%v", en.Depth, en.Board)
	}
	fmt.Println()
}
