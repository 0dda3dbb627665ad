package simulation

import (
	"fmt"
	"strconv"
	"strings"

	cfg "github.com/automoto/blockdude/config"
)

// Frame is the set of actions held during one tick.
type Frame [cfg.ActionCount]bool

// Script is a sequence of per-tick input frames for headless runs.
type Script []Frame

// ParseScript reads a comma separated list of steps. Each step is one or more
// action names joined by '+', optionally followed by '*' and a repeat count:
//
//	right*40,up,right+up*5,down*3,none*10
func ParseScript(src string) (Script, error) {
	var script Script
	for i, raw := range strings.Split(src, ",") {
		step := strings.TrimSpace(raw)
		if step == "" {
			continue
		}

		count := 1
		if name, rep, ok := strings.Cut(step, "*"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(rep))
			if err != nil || n < 1 {
				return nil, fmt.Errorf("script step %d %q: bad repeat count", i+1, step)
			}
			step, count = strings.TrimSpace(name), n
		}

		var frame Frame
		for _, name := range strings.Split(step, "+") {
			action, ok := cfg.ParseAction(strings.ToLower(strings.TrimSpace(name)))
			if !ok {
				return nil, fmt.Errorf("script step %d %q: unknown action %q", i+1, step, name)
			}
			if action != cfg.ActionNone {
				frame[action] = true
			}
		}
		for range count {
			script = append(script, frame)
		}
	}
	return script, nil
}

// At returns the frame for tick i. Ticks past the end hold no input.
func (s Script) At(i int) Frame {
	if i < 0 || i >= len(s) {
		return Frame{}
	}
	return s[i]
}
