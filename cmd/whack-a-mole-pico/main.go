//go:build rp2040

// Command whack-a-mole-pico runs the game on a Raspberry Pi Pico
// Build with: tinygo flash -target=pico ./cmd/whack-a-mole-pico
package main

import (
	"context"
	"machine"
	"time"

	"github.com/lixenwraith/whack-a-mole/board/pico"
	"github.com/lixenwraith/whack-a-mole/engine"
	"github.com/lixenwraith/whack-a-mole/status"
)

func main() {
	// Give the USB serial console time to attach
	time.Sleep(2 * time.Second)

	b := pico.New()
	metrics := status.NewRegistry()
	best := 0

	for {
		game := engine.NewGame(engine.Options{
			Board:   b,
			Random:  engine.NewRandomSource(seed()),
			Metrics: metrics,
		})
		if err := game.Run(context.Background()); err != nil {
			println("game aborted:", err.Error())
		}

		if score := game.State().Score; score > best {
			best = score
			metrics.Ints.Get(status.KeyBest).Store(int64(best))
		}
		println("best score:", best)
		time.Sleep(time.Second)
	}
}

// seed draws from the rp2040 ring oscillator, falling back to the clock
func seed() uint64 {
	hi, errHi := machine.GetRNG()
	lo, errLo := machine.GetRNG()
	if errHi != nil || errLo != nil {
		return uint64(time.Now().UnixNano())
	}
	return uint64(hi)<<32 | uint64(lo)
}
