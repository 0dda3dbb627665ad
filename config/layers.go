package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer every entity and renderer lives on.
const Default ecs.LayerID = 0
