package game

import "fmt"

// CheckWinLoss evaluates the terminal conditions in precedence order and
// returns a terminal state for the first one that holds. A state that is
// already over passes through untouched, as does one where nothing fires;
// cloning only happens when a condition trips.
func CheckWinLoss(gs *GameState) *GameState {
	if gs.IsGameOver {
		return gs
	}

	for _, seg := range gs.MarketSegments {
		if seg.PlayerShare >= TargetMarketShareForWin {
			fin := gs.Financials
			msg := fmt.Sprintf(
				"Victory! You reached %.0f%% market share in %s within %d months!\n\n"+
					"Final financial overview:\n"+
					"  Cash: %s\n"+
					"  Debt: %s\n"+
					"  Monthly profit: %s\n"+
					"  Stock price: %s\n"+
					"  Market cap: %s",
				TargetMarketShareForWin, seg.Name, gs.CurrentTurn,
				FormatMoney(fin.Cash), FormatMoney(fin.Debt), FormatMoney(fin.MonthlyProfit),
				FormatPrice(fin.StockPrice), FormatMoney(fin.MarketCap))
			return endGame(gs, msg)
		}
	}

	if gs.Financials.Cash < 0 && gs.Financials.MonthlyProfit < 0 {
		return endGame(gs, "Bankruptcy! The company ran out of cash with sustained losses. Game over.")
	}

	if gs.Financials.SharesOutstanding > 0 && float64(gs.Financials.CEOShares) < float64(gs.Financials.SharesOutstanding)*0.5 {
		return endGame(gs, "Loss of control! The CEO no longer controls the company (below 50% ownership). Game over.")
	}

	if gs.CurrentTurn >= MaxTurns {
		if gs.Financials.MarketCap > globalLeaderMarketCap && anySegmentAbove(gs, globalLeaderSegmentShare) {
			return endGame(gs, "Congratulations, CEO! You built the company into a global powerhouse! Victory!")
		}
		return endGame(gs, "The CEO's term has ended. The company's future is stable. Game over.")
	}

	return gs
}

func anySegmentAbove(gs *GameState, share float64) bool {
	for _, seg := range gs.MarketSegments {
		if seg.PlayerShare > share {
			return true
		}
	}
	return false
}

func endGame(gs *GameState, msg string) *GameState {
	out := gs.Clone()
	out.IsGameOver = true
	out.GameOverMessage = msg
	return out
}
