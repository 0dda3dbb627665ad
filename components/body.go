package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is the collision rectangle of a block, actor or bullet. Width and
// height never change after creation.
type BodyData struct {
	*resolv.Object
	FacingRight bool
	SpeedX      float64 // horizontal speed magnitude in px/frame
}

var Body = donburi.NewComponentType[BodyData]()

func (b *BodyData) Left() float64   { return b.X }
func (b *BodyData) Top() float64    { return b.Y }
func (b *BodyData) Right() float64  { return b.X + b.W }
func (b *BodyData) Bottom() float64 { return b.Y + b.H }
func (b *BodyData) CenterX() float64 { return b.X + b.W/2 }
func (b *BodyData) CenterY() float64 { return b.Y + b.H/2 }

// MoveTo places the body and refreshes its cells in the space.
func (b *BodyData) MoveTo(x, y float64) {
	b.X, b.Y = x, y
	b.Update()
}
