package components

import (
	"github.com/automoto/blockdude/geometry"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[resolv.Space]()

type GeometryData struct {
	*geometry.StaticGeometry
}

var Geometry = donburi.NewComponentType[GeometryData]()
