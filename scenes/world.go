package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/fonts"
	"github.com/automoto/blockdude/levels"
	"github.com/automoto/blockdude/simulation"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// lingerSeconds is how long the finished level stays on screen before exit.
const lingerSeconds = 2

type PlatformerScene struct {
	ecs    *ecs.ECS
	level  *levels.Level
	once   sync.Once
	err    error
	linger int // frames shown since the level ended
}

func NewPlatformerScene(level *levels.Level) *PlatformerScene {
	return &PlatformerScene{level: level}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}

	if simulation.Running(ps.ecs) {
		ps.ecs.Update()
		return nil
	}

	state := simulation.State(ps.ecs)
	if state.Quit {
		return ebiten.Termination
	}
	ps.linger++
	if ps.linger >= lingerSeconds*cfg.C.TPS {
		return ebiten.Termination
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	if err := fonts.LoadDefaults(); err != nil {
		ps.err = err
		return
	}

	world, err := simulation.NewWorld(ps.level, simulation.WithDeviceInput(), simulation.WithRenderers())
	if err != nil {
		ps.err = err
		return
	}
	ps.ecs = world
	log.Info("scene ready", "level", ps.level.Name)
}
