package game

import (
	"fmt"
	"strings"
)

// AdvanceTurn resolves one month: reset the monthly accumulators, let the AI
// delegate act if delegation is on, then run the directive and market
// simulations with win/loss checks around them. A terminal state is returned
// unchanged, and the game-over announcement is appended exactly once.
func (e *Engine) AdvanceTurn(gs *GameState) *GameState {
	if gs.IsGameOver {
		return gs
	}

	st := gs.Clone()
	st.CurrentTurn++
	st.Financials.MonthlyRevenue = 0
	st.Financials.MonthlyCosts = 0
	st.Financials.MonthlyProfit = 0

	if st.IsDelegated {
		st = e.runDelegatedPolicy(st)
	}

	// The delegate can trigger game over on its own (a losing sale, a
	// draining purchase), so check before simulating the month.
	st = CheckWinLoss(st)
	if st.IsGameOver {
		appendGameOverEvent(st)
		e.log.Info("game over", "turn", st.CurrentTurn, "message", st.GameOverMessage)
		return st
	}

	simulateDirective(st)
	e.simulateMarket(st)
	st = CheckWinLoss(st)

	if st.IsGameOver {
		appendGameOverEvent(st)
		e.log.Info("game over", "turn", st.CurrentTurn, "message", st.GameOverMessage)
	} else {
		appendEvent(st, newEvent(st.CurrentTurn, EventSystemMessage,
			fmt.Sprintf("Month %d begins", st.CurrentTurn),
			"Review the reports and make your strategic decisions.", SeverityInfo, nil, OriginPlayer))
		e.log.Info("turn completed", "turn", st.CurrentTurn,
			"cash", st.Financials.Cash, "profit", st.Financials.MonthlyProfit)
	}
	return st
}

func appendGameOverEvent(gs *GameState) {
	for _, ev := range gs.EventLog {
		if strings.Contains(ev.Title, "Game over") && ev.Description == gs.GameOverMessage {
			return
		}
	}
	appendEvent(gs, newEvent(gs.CurrentTurn, EventSystemMessage, "Game over",
		gs.GameOverMessage, SeverityCritical, nil, OriginPlayer))
}

// SetDelegated flips delegation and records the handover in the event log.
// No-op once the game is over or when the flag already matches.
func (e *Engine) SetDelegated(gs *GameState, delegated bool) *GameState {
	if gs.IsGameOver || gs.IsDelegated == delegated {
		return gs
	}
	out := gs.Clone()
	out.IsDelegated = delegated
	title := "AI delegation disabled"
	desc := "You are back in charge of decisions, trades, and turn progression."
	if delegated {
		title = "AI delegation enabled"
		desc = "The AI now manages key decisions, stock trades, and turn progression automatically."
	}
	appendEvent(out, newEvent(out.CurrentTurn, EventSystemMessage, title, desc, SeverityInfo, nil, OriginPlayer))
	e.log.Info("delegation toggled", "delegated", delegated)
	return out
}

// SetDirective changes the standing directive. It takes effect from the next
// simulated turn.
func (e *Engine) SetDirective(gs *GameState, directive AIDirective) *GameState {
	if gs.IsGameOver || gs.CurrentAIDirective == directive {
		return gs
	}
	out := gs.Clone()
	out.CurrentAIDirective = directive
	e.log.Info("directive changed", "directive", directive)
	return out
}
