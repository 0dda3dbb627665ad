package systems

import (
	"github.com/automoto/blockdude/components"
	cfg "github.com/automoto/blockdude/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the input snapshot.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getInput(ecs)

	var next [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				next[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					next[actionID] = true
				}
			}
		}
	}

	left, right := getAnalogStickState(gamepadIDs)
	next[cfg.ActionMoveLeft] = next[cfg.ActionMoveLeft] || left
	next[cfg.ActionMoveRight] = next[cfg.ActionMoveRight] || right

	input.Push(next)
}

// SetInput installs a snapshot for the next tick. Headless runs use it in place
// of UpdateInput.
func SetInput(ecs *ecs.ECS, snapshot [cfg.ActionCount]bool) {
	input := getInput(ecs)
	input.Push(snapshot)
}

// getAnalogStickState reads the horizontal axis of the left stick on every
// gamepad.
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return
}

func getInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(components.Input.MustFirst(ecs.World))
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return components.ActionState{
		Pressed:      input.Pressed(id),
		JustPressed:  input.JustPressed(id),
		JustReleased: !input.Current[id] && input.Previous[id],
	}
}
