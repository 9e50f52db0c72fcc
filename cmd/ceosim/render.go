package main

import (
	"fmt"

	"ceosim/internal/game"

	"github.com/fatih/color"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen, color.Bold)
	warn    = color.New(color.FgYellow, color.Bold)
	danger  = color.New(color.FgRed, color.Bold)
	neutral = color.New(color.FgHiWhite)
)

func severityColor(s game.EventSeverity) *color.Color {
	switch s {
	case game.SeveritySuccess:
		return success
	case game.SeverityWarning:
		return warn
	case game.SeverityCritical:
		return danger
	default:
		return neutral
	}
}

func printEvent(ev game.GameEvent) {
	severityColor(ev.Severity).Printf("[M%02d] %s", ev.Turn, ev.Title)
	if ev.Description != "" {
		fmt.Printf(": %s", ev.Description)
	}
	fmt.Println()
}

func printSummary(st *game.GameState) {
	fin := st.Financials
	accent.Printf("%s after month %d\n", st.CompanyName, st.CurrentTurn)
	neutral.Printf("  Cash:           %s\n", game.FormatMoney(fin.Cash))
	neutral.Printf("  Debt:           %s\n", game.FormatMoney(fin.Debt))
	neutral.Printf("  Monthly profit: %s\n", game.FormatMoney(fin.MonthlyProfit))
	neutral.Printf("  Stock price:    %s\n", game.FormatPrice(fin.StockPrice))
	neutral.Printf("  Market cap:     %s\n", game.FormatMoney(fin.MarketCap))
	neutral.Printf("  CEO ownership:  %d / %d shares\n", fin.CEOShares, fin.SharesOutstanding)
	for _, seg := range st.MarketSegments {
		neutral.Printf("  %s share:  %.1f%%\n", seg.Name, seg.PlayerShare)
	}
	if st.IsGameOver {
		danger.Println(st.GameOverMessage)
	}
}
