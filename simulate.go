package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/automoto/blockdude/config"
	"github.com/automoto/blockdude/simulation"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagScript string
	flagFrames int
	flagPaced  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation without a window",
	Long: `Step the simulation from an input script and print a summary.

A script is a comma separated list of steps. Each step names one or more
actions joined by '+' and may repeat with '*N':

  left, right, up (jump), down (shoot), none, quit

Examples:
  blockdude simulate --script "right*40,up,down*3,none*10"
  blockdude simulate --level arena.tmx --frames 600 --script "right+down*600"`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "none*600", "Input script")
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 0, "Frames to run (0 = length of the script)")
	simulateCmd.Flags().BoolVar(&flagPaced, "paced", false, "Run at the configured tick rate instead of flat out")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	script, err := simulation.ParseScript(flagScript)
	if err != nil {
		return err
	}
	level, err := loadLevel()
	if err != nil {
		return err
	}
	world, err := simulation.NewWorld(level)
	if err != nil {
		return err
	}

	tps := 0
	if flagPaced {
		tps = config.C.TPS
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := simulation.NewRunner(world, script, tps, flagFrames).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("simulation done",
		"frames", res.Frames,
		"respawns", res.Respawns,
		"kills", res.Kills,
		"enemies_left", res.EnemiesLeft,
		"finished", res.Finished,
		"quit", res.Quit,
	)
	return nil
}
