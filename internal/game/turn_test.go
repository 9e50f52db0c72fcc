package game

import (
	"strings"
	"testing"
)

func TestAdvanceTurnBasics(t *testing.T) {
	e := newTestEngine(42)
	gs := NewGameState("")

	out := e.AdvanceTurn(gs)
	if out.CurrentTurn != 2 {
		t.Fatalf("turn = %d, want 2", out.CurrentTurn)
	}
	if gs.CurrentTurn != 1 {
		t.Fatalf("input state mutated")
	}
	if out.Financials.MonthlyRevenue <= 0 {
		t.Fatalf("a launched product should sell something, revenue = %v", out.Financials.MonthlyRevenue)
	}

	var sawReport, sawMonthBegins bool
	for _, ev := range out.EventLog {
		if ev.Type == EventFinancialReport && ev.Turn == 2 {
			sawReport = true
			if ev.Data == nil {
				t.Fatalf("financial report should carry a snapshot")
			}
			if ev.Data.Cash != out.Financials.Cash {
				t.Fatalf("snapshot cash %v != state cash %v", ev.Data.Cash, out.Financials.Cash)
			}
		}
		if strings.HasPrefix(ev.Title, "Month 2 begins") {
			sawMonthBegins = true
		}
	}
	if !sawReport || !sawMonthBegins {
		t.Fatalf("report=%v monthBegins=%v", sawReport, sawMonthBegins)
	}
}

func TestAdvanceTurnMonotonic(t *testing.T) {
	e := newTestEngine(7)
	st := NewGameState("")
	prev := st.CurrentTurn
	for i := 0; i < 30 && !st.IsGameOver; i++ {
		st = e.AdvanceTurn(st)
		if st.CurrentTurn != prev+1 {
			t.Fatalf("turn jumped from %d to %d", prev, st.CurrentTurn)
		}
		prev = st.CurrentTurn
		for _, seg := range st.MarketSegments {
			if seg.PlayerShare < 0 || seg.PlayerShare > 100 {
				t.Fatalf("segment share out of bounds: %v", seg.PlayerShare)
			}
		}
		if st.Financials.StockPrice < minStockPrice {
			t.Fatalf("stock price below floor: %v", st.Financials.StockPrice)
		}
	}
}

func TestAdvanceTurnTerminalNoOp(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")
	gs.IsGameOver = true
	gs.GameOverMessage = "done"

	if out := e.AdvanceTurn(gs); out != gs {
		t.Fatalf("terminal state must be returned unchanged")
	}
}

func TestGameOverEventAppendedOnce(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")
	gs.Financials.CEOShares = 40_000 // loses control on the post-policy check

	out := e.AdvanceTurn(gs)
	if !out.IsGameOver {
		t.Fatalf("expected game over")
	}
	count := 0
	for _, ev := range out.EventLog {
		if strings.Contains(ev.Title, "Game over") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("game-over events = %d, want 1", count)
	}

	// Advancing a terminal state appends nothing further.
	again := e.AdvanceTurn(out)
	if len(again.EventLog) != len(out.EventLog) {
		t.Fatalf("terminal advance grew the log")
	}
}

func TestStabilizeDirectivePaysDebt(t *testing.T) {
	e := newTestEngine(3)
	gs := NewGameState("") // stabilize is the starting directive

	out := e.AdvanceTurn(gs)
	// min(2% of 100000 debt, 10% of 100000 cash) = 2000, before R&D and sales.
	if out.Financials.Debt != 98_000 {
		t.Fatalf("debt = %v, want 98000 after the stabilize paydown", out.Financials.Debt)
	}
}

func TestRDFundingBilledAsMonthlyCost(t *testing.T) {
	e := newTestEngine(5)
	gs := NewGameState("")
	gs.CurrentAIDirective = DirectiveCostReduction // no debt paydown noise

	out := e.AdvanceTurn(gs)
	// rd1 funds at 5000/month and stays active, so the month's costs carry it
	// on top of production costs.
	prod := out.Products[0]
	wantCosts := 5_000 + float64(prod.UnitsSoldPerQuarter)*prod.ProductionCost
	if out.Financials.MonthlyCosts != wantCosts {
		t.Fatalf("costs = %v, want %v", out.Financials.MonthlyCosts, wantCosts)
	}
	if out.RDProjects[0].Progress <= 10 {
		t.Fatalf("active project should progress, got %v", out.RDProjects[0].Progress)
	}
}

func TestInnovationDirectiveCompletesRDFaster(t *testing.T) {
	e := newTestEngine(9)
	gs := NewGameState("")
	gs.CurrentAIDirective = DirectiveTechInnovationPriority
	gs.RDProjects[0].Progress = 90

	out := e.AdvanceTurn(gs)
	// Base increase is max(5, 5000/35000*25) + 10 innovation bonus, which
	// carries 90 past 100.
	if out.RDProjects[0].Status != RDCompleted {
		t.Fatalf("project status = %q, want completed", out.RDProjects[0].Status)
	}
	if out.RDProjects[0].Progress != 100 {
		t.Fatalf("progress = %v, want capped at 100", out.RDProjects[0].Progress)
	}
	// A project that completed this month does not bill its funding.
	prod := out.Products[0]
	wantCosts := float64(prod.UnitsSoldPerQuarter) * prod.ProductionCost
	if out.Financials.MonthlyCosts != wantCosts {
		t.Fatalf("costs = %v, want %v without the completed project's funding", out.Financials.MonthlyCosts, wantCosts)
	}
}

func TestExpansionDirectiveScalesShare(t *testing.T) {
	e := newTestEngine(11)
	gs := NewGameState("")
	gs.CurrentAIDirective = DirectiveAggressiveMarketExpansion

	out := e.AdvanceTurn(gs)
	if got := out.MarketSegments[0].PlayerShare; got != 2*1.03 {
		t.Fatalf("seg1 share = %v, want scaled by 1.03", got)
	}
	// Zero-share segments stay untouched.
	if got := out.MarketSegments[1].PlayerShare; got != 0 {
		t.Fatalf("seg2 share = %v, want 0", got)
	}
}

func TestSetDelegated(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")

	on := e.SetDelegated(gs, true)
	if !on.IsDelegated {
		t.Fatalf("delegation not enabled")
	}
	if ev := lastEvent(t, on); !strings.Contains(ev.Title, "delegation enabled") {
		t.Fatalf("expected a handover event, got %+v", ev)
	}
	if gs.IsDelegated {
		t.Fatalf("input state mutated")
	}

	if same := e.SetDelegated(on, true); same != on {
		t.Fatalf("matching flag should be a no-op")
	}

	off := e.SetDelegated(on, false)
	if off.IsDelegated {
		t.Fatalf("delegation not disabled")
	}

	gs.IsGameOver = true
	if out := e.SetDelegated(gs, true); out != gs {
		t.Fatalf("terminal state should refuse the toggle")
	}
}

func TestSetDirective(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")

	out := e.SetDirective(gs, DirectiveCostReduction)
	if out.CurrentAIDirective != DirectiveCostReduction {
		t.Fatalf("directive = %q", out.CurrentAIDirective)
	}
	if gs.CurrentAIDirective != DirectiveStabilizeCompany {
		t.Fatalf("input state mutated")
	}
	if same := e.SetDirective(out, DirectiveCostReduction); same != out {
		t.Fatalf("matching directive should be a no-op")
	}
}
