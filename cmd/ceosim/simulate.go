package main

import (
	"fmt"

	"ceosim/internal/config"
	"ceosim/internal/game"

	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		turns     int
		delegated bool
		directive string
		seed      int64
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a headless simulation for a number of months",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadFromEnv()
			if seed != 0 {
				cfg.Seed = seed
			}

			engine := game.NewEngine(newLogger(!verbose), cfg.Seed)
			st := game.NewGameState(cfg.CompanyName)

			if directive != "" {
				d, err := parseDirective(directive)
				if err != nil {
					return err
				}
				st = engine.SetDirective(st, d)
			}
			if delegated {
				st = engine.SetDelegated(st, true)
			}

			logged := len(st.EventLog)
			for i := 0; i < turns && !st.IsGameOver; i++ {
				st = engine.AdvanceTurn(st)
				for _, ev := range st.EventLog[logged:] {
					printEvent(ev)
				}
				logged = len(st.EventLog)
			}

			fmt.Println()
			printSummary(st)
			return nil
		},
	}

	cmd.Flags().IntVarP(&turns, "turns", "t", 12, "months to simulate")
	cmd.Flags().BoolVar(&delegated, "delegated", false, "hand the company to the AI delegate")
	cmd.Flags().StringVar(&directive, "directive", "", "standing AI directive (e.g. \"cost reduction\")")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine activity to stderr")
	return cmd
}

func parseDirective(s string) (game.AIDirective, error) {
	for _, d := range game.DirectiveOptions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown directive %q", s)
}
