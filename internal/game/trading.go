package game

import (
	"fmt"
	"math"
)

// rejectTrade appends a warning for player-originated failures and leaves the
// caller's state untouched either way. AI failures stay out of the log.
func rejectTrade(gs *GameState, origin Origin, title, desc string) *GameState {
	if origin == OriginAI {
		return gs
	}
	out := gs.Clone()
	appendEvent(out, newEvent(out.CurrentTurn, EventStockTrade, title, desc, SeverityWarning, nil, OriginPlayer))
	return out
}

// BuyCEOShares buys shares of the player's own company at the current stock
// price. The purchase can restore control, so win/loss is re-checked.
func (e *Engine) BuyCEOShares(gs *GameState, shares int, origin Origin) *GameState {
	if gs.IsGameOver {
		return gs
	}
	if shares <= 0 {
		return rejectTrade(gs, origin, "Own-share purchase error", "Enter a valid number of shares to buy.")
	}
	cost := float64(shares) * gs.Financials.StockPrice
	if gs.Financials.Cash < cost {
		return rejectTrade(gs, origin, "Own-share purchase failed",
			"Not enough cash to buy the shares (needed: "+FormatMoney(cost)+").")
	}

	out := gs.Clone()
	out.Financials.Cash -= cost
	out.Financials.CEOShares += shares
	who := "CEO"
	if origin == OriginAI {
		who = "CEO (AI)"
	}
	appendEvent(out, newEvent(out.CurrentTurn, EventStockTrade, "Own shares bought",
		fmt.Sprintf("%s bought %s shares of %s at %s each (total %s).",
			who, comma(int64(shares)), out.CompanyName, FormatPrice(gs.Financials.StockPrice), FormatMoney(cost)),
		SeveritySuccess, nil, origin))
	out = CheckWinLoss(out)
	e.log.Info("own shares bought", "shares", shares, "cost", cost, "origin", origin)
	return out
}

// SellCEOShares sells a percentage of the CEO's holding, rounded down to
// whole shares. Dropping below half ownership loses the game, so win/loss is
// re-checked.
func (e *Engine) SellCEOShares(gs *GameState, percentage float64, origin Origin) *GameState {
	if gs.IsGameOver {
		return gs
	}
	if percentage <= 0 || percentage > 100 {
		return rejectTrade(gs, origin, "Own-share sale error",
			"The percentage of holdings to sell must be above 0% and at most 100%.")
	}
	shares := int(math.Floor(float64(gs.Financials.CEOShares) * (percentage / 100)))
	if shares <= 0 {
		return rejectTrade(gs, origin, "Own-share sale error",
			fmt.Sprintf("No shares to sell (computed amount: %d). Check your holdings.", shares))
	}

	proceeds := float64(shares) * gs.Financials.StockPrice
	out := gs.Clone()
	out.Financials.Cash += proceeds
	out.Financials.CEOShares -= shares
	who := "CEO"
	if origin == OriginAI {
		who = "CEO (AI)"
	}
	appendEvent(out, newEvent(out.CurrentTurn, EventStockTrade, "Own shares sold",
		fmt.Sprintf("%s sold %s shares of %s (%.1f%%) at %s each (total %s).",
			who, comma(int64(shares)), out.CompanyName, percentage, FormatPrice(gs.Financials.StockPrice), FormatMoney(proceeds)),
		SeveritySuccess, nil, origin))
	out = CheckWinLoss(out)
	e.log.Info("own shares sold", "shares", shares, "proceeds", proceeds, "origin", origin)
	return out
}

// BuyCompetitorShares buys into a rival at its current price. Competitor
// positions never affect the win/loss conditions, so no re-check happens.
func (e *Engine) BuyCompetitorShares(gs *GameState, competitorID string, shares int, origin Origin) *GameState {
	if gs.IsGameOver {
		return gs
	}
	comp := findCompetitor(gs, competitorID)
	if comp == nil {
		return rejectTrade(gs, origin, "Competitor purchase error", "The selected competitor could not be found.")
	}
	if shares <= 0 {
		return rejectTrade(gs, origin, "Competitor purchase error", "Enter a valid number of shares to buy.")
	}
	cost := float64(shares) * comp.StockPrice
	if gs.Financials.Cash < cost {
		return rejectTrade(gs, origin, "Competitor purchase failed",
			"Not enough cash to buy "+comp.Name+" shares (needed: "+FormatMoney(cost)+").")
	}

	out := gs.Clone()
	out.Financials.Cash -= cost
	out.Financials.CompetitorShareHoldings[competitorID] += shares
	who := "CEO"
	if origin == OriginAI {
		who = "CEO (AI)"
	}
	appendEvent(out, newEvent(out.CurrentTurn, EventStockTrade, "Competitor shares bought",
		fmt.Sprintf("%s bought %s shares of %s at %s each (total %s).",
			who, comma(int64(shares)), comp.Name, FormatPrice(comp.StockPrice), FormatMoney(cost)),
		SeveritySuccess, nil, origin))
	e.log.Info("competitor shares bought", "competitor", competitorID, "shares", shares, "origin", origin)
	return out
}

// SellCompetitorShares sells from an existing holding. The holdings entry is
// removed entirely when it reaches zero.
func (e *Engine) SellCompetitorShares(gs *GameState, competitorID string, shares int, origin Origin) *GameState {
	if gs.IsGameOver {
		return gs
	}
	comp := findCompetitor(gs, competitorID)
	if comp == nil {
		return rejectTrade(gs, origin, "Competitor sale error", "The selected competitor could not be found.")
	}
	if shares <= 0 {
		return rejectTrade(gs, origin, "Competitor sale error", "Enter a valid number of shares to sell.")
	}
	owned := gs.Financials.CompetitorShareHoldings[competitorID]
	if owned < shares {
		return rejectTrade(gs, origin, "Competitor sale failed",
			fmt.Sprintf("Not enough %s shares held (held: %s, attempted: %s).",
				comp.Name, comma(int64(owned)), comma(int64(shares))))
	}

	proceeds := float64(shares) * comp.StockPrice
	out := gs.Clone()
	out.Financials.Cash += proceeds
	remaining := owned - shares
	if remaining <= 0 {
		delete(out.Financials.CompetitorShareHoldings, competitorID)
	} else {
		out.Financials.CompetitorShareHoldings[competitorID] = remaining
	}
	who := "CEO"
	if origin == OriginAI {
		who = "CEO (AI)"
	}
	appendEvent(out, newEvent(out.CurrentTurn, EventStockTrade, "Competitor shares sold",
		fmt.Sprintf("%s sold %s shares of %s at %s each (total %s).",
			who, comma(int64(shares)), comp.Name, FormatPrice(comp.StockPrice), FormatMoney(proceeds)),
		SeveritySuccess, nil, origin))
	e.log.Info("competitor shares sold", "competitor", competitorID, "shares", shares, "origin", origin)
	return out
}

func findCompetitor(gs *GameState, id string) *Competitor {
	for i := range gs.Competitors {
		if gs.Competitors[i].ID == id {
			return &gs.Competitors[i]
		}
	}
	return nil
}
