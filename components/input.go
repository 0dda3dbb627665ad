package components

import (
	cfg "github.com/automoto/blockdude/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

func (in *InputData) Pressed(action cfg.ActionID) bool {
	return in.Current[action]
}

func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}

// Push moves the current snapshot to Previous and installs next.
func (in *InputData) Push(next [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = next
}
