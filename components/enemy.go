package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	BaseSpeed float64
	Direction int // +1 right, -1 left
}

var Enemy = donburi.NewComponentType[EnemyData]()

// Reverse flips the patrol direction.
func (e *EnemyData) Reverse() {
	e.Direction = -e.Direction
}
