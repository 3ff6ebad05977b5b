package sim_test

import (
	"testing"

	"github.com/vovakirdan/blockhop/internal/games/blockhop/sim"
)

// flatLevel is a 1000 px wide level with only a ground strip and a goal out
// of reach.
func flatLevel(n int) *sim.Level {
	return &sim.Level{
		Number:      n,
		Name:        "flat",
		Width:       1000,
		PlayerStart: sim.Point{X: 50, Y: 300},
		Goal:        sim.R(960, 0, 32, 32),
		Platforms:   []sim.Platform{{Rect: sim.R(0, 368, 1000, 32)}},
	}
}

func newWorld(t *testing.T, params sim.Params, levels ...*sim.Level) *sim.World {
	t.Helper()
	var c sim.Campaign
	for _, l := range levels {
		c = append(c, sim.Authored{Level: l})
	}
	w, err := sim.NewWorld(params, c, 1)
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}
	return w
}

func stepN(w *sim.World, in sim.Input, n int) []sim.Event {
	var events []sim.Event
	for i := 0; i < n; i++ {
		events = append(events, w.Step(in).Events...)
	}
	return events
}

func countEvents(events []sim.Event, kind sim.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// stepUntil steps until an event of the given kind shows up and returns the
// session from just before that frame plus the frame's result.
func stepUntil(t *testing.T, w *sim.World, in sim.Input, kind sim.EventKind, limit int) (sim.Session, sim.StepResult) {
	t.Helper()
	for i := 0; i < limit; i++ {
		prev := w.Session()
		res := w.Step(in)
		if countEvents(res.Events, kind) > 0 {
			return prev, res
		}
	}
	t.Fatalf("no %v event within %d frames", kind, limit)
	return sim.Session{}, sim.StepResult{}
}

var (
	idle  = sim.Input{}
	right = sim.Input{Right: true}
)
