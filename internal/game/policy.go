package game

import (
	"math"
	"sort"
)

// runDelegatedPolicy runs the AI delegate's three independently rolled
// sub-policies: a strategic decision, an own-share trade, and competitor
// trades. Trigger checks read fin, the financials snapshot taken before the
// first sub-policy fires, so one action does not unlock another within the
// same turn. All actions route through the validated operations with AI
// origin.
func (e *Engine) runDelegatedPolicy(st *GameState) *GameState {
	fin := st.Financials.Clone()

	if e.nextFloat() < aiDecisionChance && !st.IsGameOver {
		if decision, ok := pickScoredDecision(st, fin); ok {
			st = e.ApplyDecision(st, decision.Key, OriginAI)
		}
	}

	if e.nextFloat() < aiOwnTradeChance && fin.StockPrice > 0.01 && !st.IsGameOver {
		st = e.tradeOwnShares(st, fin)
	}

	if e.nextFloat() < aiCompetitorTradeChance && len(st.Competitors) > 0 && !st.IsGameOver {
		st = e.tradeCompetitorShares(st, fin)
	}

	return st
}

// pickScoredDecision scores the affordable decisions against the standing
// directive and returns the winner. Ties break toward the cheaper decision;
// when every candidate scores below the floor, the cheapest affordable one is
// taken anyway.
func pickScoredDecision(st *GameState, fin CompanyFinancials) (StrategicDecision, bool) {
	var affordable []StrategicDecision
	for _, d := range AvailableDecisions(st) {
		if d.Cost == 0 || fin.Cash >= d.Cost+aiCashBuffer {
			affordable = append(affordable, d)
		}
	}
	if len(affordable) == 0 {
		return StrategicDecision{}, false
	}

	var best *StrategicDecision
	maxScore := -1
	for i := range affordable {
		d := &affordable[i]
		score := 0
		if d.Cost > 0 && d.Cost > fin.Cash*0.5 {
			score -= 5
		}
		switch st.CurrentAIDirective {
		case DirectiveTechInnovationPriority:
			if d.Category == CategoryRD {
				score += 10
			}
			if d.Key.Kind == DecisionFundRD && projectProgressAbove(st, d.Key.TargetID, 50) {
				score += 5
			}
		case DirectiveMarketShareExpansion, DirectiveAggressiveMarketExpansion:
			if d.Category == CategoryMarketing {
				score += 10
			}
		case DirectiveProfitMaximization:
			if d.Cost == 0 || d.Cost < 10_000 {
				score += 5
			}
		case DirectiveCostReduction:
			if d.Cost > 30_000 {
				score -= 5
			}
		case DirectiveStabilizeCompany:
			if d.Category == CategoryFinance && d.Key.Kind == DecisionRepayDebt {
				score += 10
			}
			if d.Cost > 25_000 {
				score -= 3
			}
		}
		if score > maxScore {
			maxScore = score
			best = d
		} else if score == maxScore && best != nil && d.Cost > 0 && best.Cost > 0 && d.Cost < best.Cost {
			best = d
		}
	}

	if best == nil {
		sort.Slice(affordable, func(i, j int) bool { return affordable[i].Cost < affordable[j].Cost })
		best = &affordable[0]
	}
	return *best, true
}

func projectProgressAbove(st *GameState, projectID string, progress float64) bool {
	for _, p := range st.RDProjects {
		if p.ID == projectID {
			return p.Progress > progress
		}
	}
	return false
}

// tradeOwnShares accumulates toward the target ownership when cash is
// comfortable and profit non-negative, or trims the stake toward the safe
// floor when cash runs short at an inflated ownership level.
func (e *Engine) tradeOwnShares(st *GameState, fin CompanyFinancials) *GameState {
	ownership := ownershipPercent(fin)

	switch {
	case ownership < aiTargetOwnership && fin.Cash > aiBuyTriggerCash && fin.MonthlyProfit >= 0:
		budget := math.Min(fin.Cash-aiBuyTriggerCash, fin.Cash*0.1)
		shares := int(math.Floor(budget / fin.StockPrice))
		if limit := int(math.Floor(float64(fin.SharesOutstanding) * 0.01)); shares > limit {
			shares = limit
		}
		if shares > 0 {
			return e.BuyCEOShares(st, shares, OriginAI)
		}

	case ownership > aiSellOwnershipThreshold && fin.Cash < aiSellTriggerCash:
		floorShares := int(math.Ceil(float64(fin.SharesOutstanding) * aiSafeOwnershipFloor / 100))
		maxSell := fin.CEOShares - floorShares
		if maxSell < 0 {
			maxSell = 0
		}
		sell := int(math.Floor(float64(fin.CEOShares) * ((e.nextFloat()*1.5 + 0.5) / 100)))
		if sell > maxSell {
			sell = maxSell
		}
		if sell > 0 && fin.CEOShares > 0 {
			pct := float64(sell) / float64(fin.CEOShares) * 100
			return e.SellCEOShares(st, pct, OriginAI)
		}
	}
	return st
}

// tradeCompetitorShares walks the roster once, taking profits on holdings
// that ran 30% past their day-one price (or when cash is tight), and buying
// into weak or discounted rivals when cash is plentiful.
func (e *Engine) tradeCompetitorShares(st *GameState, fin CompanyFinancials) *GameState {
	roster := append([]Competitor(nil), st.Competitors...)
	for _, comp := range roster {
		if comp.StockPrice <= minCompetitorStockPrice {
			continue
		}
		anchor, ok := initialCompetitorPrice(comp.ID)
		if !ok {
			continue
		}
		owned := fin.CompetitorShareHoldings[comp.ID]

		switch {
		case owned > 0 && (fin.Cash < aiCompetitorSellCash || comp.StockPrice > anchor*1.3):
			sell := int(math.Floor(float64(owned) * (e.nextFloat()*0.25 + 0.25)))
			if sell < 1 {
				sell = 1
			}
			if owned >= sell {
				st = e.SellCompetitorShares(st, comp.ID, sell, OriginAI)
			}

		case fin.Cash > aiCompetitorBuyCash && (comp.Strength == StrengthWeak || comp.StockPrice < anchor*0.9):
			budget := math.Min(fin.Cash-aiCompetitorBuyCash, fin.Cash*0.05)
			buy := int(math.Floor(budget / comp.StockPrice))
			if buy > aiCompetitorBuyShareCap {
				buy = aiCompetitorBuyShareCap
			}
			if buy > 0 {
				st = e.BuyCompetitorShares(st, comp.ID, buy, OriginAI)
			}
		}
	}
	return st
}
