package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// FlashData fades a sprite back in after a respawn. It only affects drawing.
type FlashData struct {
	Tween *gween.Tween
	Alpha float32 // current sprite alpha, 1 when idle
}

var Flash = donburi.NewComponentType[FlashData]()

// Start restarts the fade from minAlpha to fully opaque over seconds.
func (f *FlashData) Start(minAlpha, seconds float32) {
	f.Tween = gween.New(minAlpha, 1, seconds, ease.Linear)
	f.Alpha = minAlpha
}

// Advance moves the fade forward by dt seconds.
func (f *FlashData) Advance(dt float32) {
	if f.Tween == nil {
		f.Alpha = 1
		return
	}
	alpha, done := f.Tween.Update(dt)
	f.Alpha = alpha
	if done {
		f.Tween = nil
		f.Alpha = 1
	}
}

func (f *FlashData) Active() bool { return f.Tween != nil }
