package bindings

import (
	"context"
	"time"

	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

const celebrationDuration = 3 * time.Second

// celebrator pushes decorative win signals to the frontend. The game
// state is already committed and persisted by the time it runs; nothing
// here feeds back into the engine.
type celebrator interface {
	Celebrate(variantID, winnerName string)
}

// noopCelebrator stands in before the Wails runtime exists (tests,
// early startup).
type noopCelebrator struct{}

func (noopCelebrator) Celebrate(string, string) {}

// wailsCelebrator bridges win signals to Wails runtime events and
// schedules the confetti stop on a fire-and-forget timer.
type wailsCelebrator struct {
	ctx context.Context
}

func (c wailsCelebrator) Celebrate(variantID, winnerName string) {
	wruntime.EventsEmit(c.ctx, "celebration:start", map[string]string{
		"variant": variantID,
		"winner":  winnerName,
	})
	time.AfterFunc(celebrationDuration, func() {
		wruntime.EventsEmit(c.ctx, "celebration:stop", variantID)
	})
}
