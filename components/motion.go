package components

import "github.com/yohamta/donburi"

// MotionData marks entities that take part in gravity and jumping. Bullets do
// not carry it.
type MotionData struct {
	StartX, StartY float64 // respawn target, fixed at creation
	JumpCounter    int     // remaining ascent frames, 0 when not jumping
}

var Motion = donburi.NewComponentType[MotionData]()
