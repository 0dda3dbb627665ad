package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionShoot
	ActionQuit
	ActionToggleDebug
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionNone:        "none",
	ActionMoveLeft:    "left",
	ActionMoveRight:   "right",
	ActionJump:        "up",
	ActionShoot:       "down",
	ActionQuit:        "quit",
	ActionToggleDebug: "debug",
	ActionPause:       "pause",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps a script name ("left", "right", "up", "down", ...) to its action.
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return id, true
		}
	}
	return ActionNone, false
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings       map[ActionID]InputBinding
	AnalogDeadzone float64 // left stick threshold for the move actions
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.5,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionShoot: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
		},
	}
}
