package game

import (
	"math"
	"testing"
)

func TestBuyCEOShares(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")

	out := e.BuyCEOShares(gs, 1_000, OriginPlayer)
	if out.Financials.Cash != 95_000 {
		t.Fatalf("cash = %v, want 95000", out.Financials.Cash)
	}
	if out.Financials.CEOShares != 61_000 {
		t.Fatalf("ceo shares = %d, want 61000", out.Financials.CEOShares)
	}
	if gs.Financials.Cash != 100_000 || gs.Financials.CEOShares != 60_000 {
		t.Fatalf("input state mutated")
	}
	if ev := lastEvent(t, out); ev.Type != EventStockTrade || ev.Severity != SeveritySuccess {
		t.Fatalf("unexpected trade event: %+v", ev)
	}

	// Conservation: cash spent equals share value gained.
	spent := gs.Financials.Cash - out.Financials.Cash
	gained := float64(out.Financials.CEOShares-gs.Financials.CEOShares) * gs.Financials.StockPrice
	if math.Abs(spent-gained) > 1e-9 {
		t.Fatalf("spent %v but gained %v in shares", spent, gained)
	}
}

func TestBuyCEOSharesInsufficientCash(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")

	out := e.BuyCEOShares(gs, 1_000_000, OriginPlayer)
	if out.Financials.Cash != 100_000 || out.Financials.CEOShares != 60_000 {
		t.Fatalf("failed buy changed financials: %+v", out.Financials)
	}
	ev := lastEvent(t, out)
	if ev.Severity != SeverityWarning {
		t.Fatalf("expected a warning event, got %+v", ev)
	}

	aiOut := e.BuyCEOShares(gs, 1_000_000, OriginAI)
	if aiOut != gs {
		t.Fatalf("AI failure should return the state untouched")
	}
}

func TestBuyCEOSharesInvalidAmount(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")
	out := e.BuyCEOShares(gs, 0, OriginPlayer)
	if ev := lastEvent(t, out); ev.Severity != SeverityWarning {
		t.Fatalf("expected warning for zero shares, got %+v", ev)
	}
}

func TestSellCEOSharesTriggersLossOfControl(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")

	// 20% of 60000 is 12000 shares, leaving 48000 of 100000 outstanding.
	out := e.SellCEOShares(gs, 20, OriginPlayer)
	if out.Financials.CEOShares != 48_000 {
		t.Fatalf("ceo shares = %d, want 48000", out.Financials.CEOShares)
	}
	if out.Financials.Cash != 100_000+12_000*5.00 {
		t.Fatalf("cash = %v", out.Financials.Cash)
	}
	if !out.IsGameOver {
		t.Fatalf("expected loss of control below 50%% ownership")
	}
}

func TestSellCEOSharesSmallStaySafe(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")

	out := e.SellCEOShares(gs, 10, OriginPlayer)
	if out.Financials.CEOShares != 54_000 {
		t.Fatalf("ceo shares = %d, want 54000", out.Financials.CEOShares)
	}
	if out.IsGameOver {
		t.Fatalf("54%% ownership should not end the game")
	}
}

func TestSellCEOSharesValidation(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")
	for _, pct := range []float64{0, -5, 101} {
		out := e.SellCEOShares(gs, pct, OriginPlayer)
		if ev := lastEvent(t, out); ev.Severity != SeverityWarning {
			t.Fatalf("pct=%v expected warning, got %+v", pct, ev)
		}
		if out.Financials.CEOShares != 60_000 {
			t.Fatalf("pct=%v changed holdings", pct)
		}
	}

	// A tiny percentage of a tiny holding floors to zero shares.
	gs.Financials.CEOShares = 5
	out := e.SellCEOShares(gs, 1, OriginPlayer)
	if ev := lastEvent(t, out); ev.Severity != SeverityWarning {
		t.Fatalf("expected warning when the floor rounds to zero, got %+v", ev)
	}
}

func TestCompetitorShareRoundTrip(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")

	bought := e.BuyCompetitorShares(gs, "comp3", 500, OriginPlayer)
	if got := bought.Financials.CompetitorShareHoldings["comp3"]; got != 500 {
		t.Fatalf("holding = %d, want 500", got)
	}
	wantCash := 100_000 - 500*12.00
	if bought.Financials.Cash != wantCash {
		t.Fatalf("cash = %v, want %v", bought.Financials.Cash, wantCash)
	}

	partial := e.SellCompetitorShares(bought, "comp3", 200, OriginPlayer)
	if got := partial.Financials.CompetitorShareHoldings["comp3"]; got != 300 {
		t.Fatalf("holding = %d, want 300", got)
	}

	// Selling the remainder removes the map entry entirely.
	emptied := e.SellCompetitorShares(partial, "comp3", 300, OriginPlayer)
	if _, ok := emptied.Financials.CompetitorShareHoldings["comp3"]; ok {
		t.Fatalf("holding entry should be deleted at zero")
	}
	if emptied.Financials.Cash != 100_000 {
		t.Fatalf("round trip at a flat price should conserve cash, got %v", emptied.Financials.Cash)
	}
}

func TestTerminalStateFreezesOperations(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")
	gs.IsGameOver = true
	gs.GameOverMessage = "done"

	if out := e.BuyCEOShares(gs, 100, OriginPlayer); out != gs {
		t.Fatalf("buy on a terminal state should be a no-op")
	}
	if out := e.SellCEOShares(gs, 10, OriginPlayer); out != gs {
		t.Fatalf("sell on a terminal state should be a no-op")
	}
	if out := e.BuyCompetitorShares(gs, "comp1", 10, OriginPlayer); out != gs {
		t.Fatalf("competitor buy on a terminal state should be a no-op")
	}
	if out := e.SellCompetitorShares(gs, "comp1", 10, OriginPlayer); out != gs {
		t.Fatalf("competitor sell on a terminal state should be a no-op")
	}
	if out := e.ApplyDecision(gs, DecisionKey{Kind: DecisionMarketingCampaign}, OriginPlayer); out != gs {
		t.Fatalf("decision on a terminal state should be a no-op")
	}
}

func TestCompetitorTradeErrors(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")

	out := e.BuyCompetitorShares(gs, "ghost", 100, OriginPlayer)
	if ev := lastEvent(t, out); ev.Severity != SeverityWarning {
		t.Fatalf("unknown competitor should warn, got %+v", ev)
	}

	out = e.SellCompetitorShares(gs, "comp1", 10, OriginPlayer)
	if ev := lastEvent(t, out); ev.Severity != SeverityWarning {
		t.Fatalf("selling shares not held should warn, got %+v", ev)
	}

	out = e.BuyCompetitorShares(gs, "comp1", 100_000, OriginPlayer)
	if ev := lastEvent(t, out); ev.Severity != SeverityWarning {
		t.Fatalf("unaffordable buy should warn, got %+v", ev)
	}
	if aiOut := e.BuyCompetitorShares(gs, "comp1", 100_000, OriginAI); aiOut != gs {
		t.Fatalf("AI failure should be silent and untouched")
	}
}

func TestCompetitorTradesSkipWinLossCheck(t *testing.T) {
	e := newTestEngine(1)
	gs := NewGameState("")
	// A bankrupt-looking balance sheet: the evaluator would end the game,
	// but competitor trades never invoke it.
	gs.Financials.Cash = -500
	gs.Financials.MonthlyProfit = -200
	gs.Financials.CompetitorShareHoldings["comp3"] = 100

	if check := CheckWinLoss(gs); !check.IsGameOver {
		t.Fatalf("sanity: evaluator should flag this state")
	}

	out := e.SellCompetitorShares(gs, "comp3", 10, OriginPlayer)
	if out.IsGameOver {
		t.Fatalf("competitor trades must not run the win/loss evaluator")
	}
	if out.Financials.Cash != -500+10*12.00 {
		t.Fatalf("cash = %v", out.Financials.Cash)
	}
}
