package main

import (
	"ceosim/internal/config"
	"ceosim/internal/game"
	"ceosim/internal/runner"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadFromEnv()
			if seed != 0 {
				cfg.Seed = seed
			}

			engine := game.NewEngine(newLogger(true), cfg.Seed)
			session := runner.NewSession(game.NewGameState(cfg.CompanyName))
			run := runner.New(engine, session, cfg.AutoTurnEvery, cfg.ManualTurnDelay, newLogger(true))

			model := newPlayModel(engine, session, run)
			program := tea.NewProgram(model, tea.WithAltScreen())
			run.SetOnUpdate(func(st *game.GameState) {
				program.Send(stateUpdatedMsg{state: st})
			})

			_, err := program.Run()
			run.Stop()
			return err
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	return cmd
}
