package sim

import "fmt"

// Command is one frame of recorded control: the four input flags plus the
// session controls the driver applied before stepping.
type Command uint8

const (
	CmdLeft Command = 1 << iota
	CmdRight
	CmdJump
	CmdBuild
	CmdAdvance
	CmdRestart
	CmdPause
)

// NewCommand packs an input and session controls.
func NewCommand(in Input, advance, restart, pause bool) Command {
	var c Command
	flags := []struct {
		on  bool
		bit Command
	}{
		{in.Left, CmdLeft},
		{in.Right, CmdRight},
		{in.Jump, CmdJump},
		{in.Build, CmdBuild},
		{advance, CmdAdvance},
		{restart, CmdRestart},
		{pause, CmdPause},
	}
	for _, f := range flags {
		if f.on {
			c |= f.bit
		}
	}
	return c
}

// Input unpacks the four input flags.
func (c Command) Input() Input {
	return Input{
		Left:  c&CmdLeft != 0,
		Right: c&CmdRight != 0,
		Jump:  c&CmdJump != 0,
		Build: c&CmdBuild != 0,
	}
}

// Apply runs the session controls in c and then steps w once.
func (c Command) Apply(w *World) (StepResult, error) {
	if c&CmdRestart != 0 {
		if err := w.Restart(); err != nil {
			return StepResult{}, err
		}
	}
	if c&CmdAdvance != 0 && w.Session().ShowLevelTransition {
		if err := w.Advance(); err != nil {
			return StepResult{}, err
		}
	}
	if c&CmdPause != 0 {
		w.TogglePause()
	}
	return w.Step(c.Input()), nil
}

// Run is a run-length encoded stretch of identical commands.
type Run struct {
	Cmd   Command `yaml:"cmd"`
	Count int     `yaml:"n"`
}

// Replay is a seed plus the commands of every frame. Replaying it against
// the same params and campaign reproduces the run exactly.
type Replay struct {
	Seed       uint64 `yaml:"seed"`
	Difficulty string `yaml:"difficulty,omitempty"`
	Runs       []Run  `yaml:"runs"`
}

// Record appends one frame.
func (r *Replay) Record(c Command) {
	if n := len(r.Runs); n > 0 && r.Runs[n-1].Cmd == c {
		r.Runs[n-1].Count++
		return
	}
	r.Runs = append(r.Runs, Run{Cmd: c, Count: 1})
}

// Frames returns the number of recorded frames.
func (r Replay) Frames() int {
	total := 0
	for _, run := range r.Runs {
		total += run.Count
	}
	return total
}

// Play builds a fresh world from the replay seed and feeds it every
// recorded frame. It returns the final world and all emitted events.
func (r Replay) Play(params Params, campaign Campaign) (*World, []Event, error) {
	w, err := NewWorld(params, campaign, r.Seed)
	if err != nil {
		return nil, nil, err
	}
	var events []Event
	for i, run := range r.Runs {
		if run.Count < 0 {
			return nil, nil, fmt.Errorf("sim: replay run %d has negative length", i)
		}
		for j := 0; j < run.Count; j++ {
			res, err := run.Cmd.Apply(w)
			if err != nil {
				return nil, nil, fmt.Errorf("sim: replay run %d: %w", i, err)
			}
			events = append(events, res.Events...)
		}
	}
	return w, events, nil
}
