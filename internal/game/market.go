package game

import (
	"fmt"
	"math"
)

// simulateMarket runs the month's economy on gs in place: product sales,
// profit and cash settlement, stock price moves for the player and the
// competitors, an occasional stochastic market event, and the month's
// financial report. Random draws happen in a fixed order so seeded runs
// replay exactly.
func (e *Engine) simulateMarket(gs *GameState) {
	fin := &gs.Financials

	var revenue float64
	costs := fin.MonthlyCosts

	for i := range gs.Products {
		p := &gs.Products[i]
		if p.Status != ProductLaunched {
			continue
		}
		demand := (p.Quality / p.SalePrice) * 10
		switch gs.GlobalMarketSentiment {
		case SentimentPositive:
			demand *= 1.2
		case SentimentNegative:
			demand *= 0.8
		}
		units := int(math.Floor(e.nextFloat()*500 + demand*50))
		p.UnitsSoldPerQuarter = units
		revenue += float64(units) * p.SalePrice
		costs += float64(units) * p.ProductionCost
	}

	fin.MonthlyRevenue = revenue
	fin.MonthlyCosts = costs
	fin.MonthlyProfit = revenue - costs
	fin.Cash += fin.MonthlyProfit

	denom := fin.MarketCap
	if denom == 0 {
		denom = 1
	}
	impact := (fin.MonthlyProfit / denom) * 0.15
	if fin.MonthlyProfit < 0 {
		impact *= 0.8
	} else if fin.MonthlyProfit > 0 {
		impact *= 1.1
	}
	fin.StockPrice = math.Max(minStockPrice, fin.StockPrice*(1+impact))
	if math.IsNaN(fin.StockPrice) || math.IsInf(fin.StockPrice, 0) {
		fin.StockPrice = minStockPrice
	}
	fin.MarketCap = fin.StockPrice * float64(fin.SharesOutstanding)

	for i := range gs.Competitors {
		c := &gs.Competitors[i]
		fluctuation := (e.nextFloat() - 0.48) * 0.08
		price := math.Max(minCompetitorStockPrice, c.StockPrice*(1+fluctuation))
		c.StockPrice = math.Round(price*100) / 100
	}

	if e.nextFloat() < 0.15 {
		if e.nextFloat() < 0.5 {
			sentiment := SentimentNegative
			severity := SeverityWarning
			if e.nextFloat() < 0.5 {
				sentiment = SentimentPositive
				severity = SeverityInfo
			}
			gs.GlobalMarketSentiment = sentiment
			appendEvent(gs, newEvent(gs.CurrentTurn, EventMarketNews, "Market sentiment shift",
				fmt.Sprintf("Economic indicators point to %s market sentiment.", sentiment), severity, nil, OriginPlayer))
		} else if len(gs.Competitors) > 0 {
			c := gs.Competitors[int(e.nextFloat()*float64(len(gs.Competitors)))]
			appendEvent(gs, newEvent(gs.CurrentTurn, EventCompetitorMove, c.Name+" announcement",
				c.Name+" has launched a new marketing campaign that may shift market dynamics.", SeverityInfo, nil, OriginPlayer))
		}
	}

	appendEvent(gs, newEvent(gs.CurrentTurn, EventFinancialReport,
		fmt.Sprintf("Month %d financial report", gs.CurrentTurn),
		fmt.Sprintf("Revenue: %s, Net profit: %s, Cash: %s",
			FormatMoney(fin.MonthlyRevenue), FormatMoney(fin.MonthlyProfit), FormatMoney(fin.Cash)),
		SeverityInfo, fin.snapshot(), OriginPlayer))
}
