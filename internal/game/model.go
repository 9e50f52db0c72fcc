package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MaxTurns is the length of a CEO tenure in months.
	MaxTurns = 100
	// TargetMarketShareForWin ends the game as a win when any segment's
	// player share reaches it.
	TargetMarketShareForWin = 70.0

	// Fallback win at term end: market cap above this plus a segment share
	// above 50 counts as "global leader".
	globalLeaderMarketCap    = 10_000_000.0
	globalLeaderSegmentShare = 50.0

	minStockPrice           = 0.1
	minCompetitorStockPrice = 0.01

	productLaunchCost       = 50_000.0
	marketingCampaignCost   = 20_000.0
	debtIssueAmount         = 50_000.0
	debtRepayCap            = 25_000.0
	fundRDUpfrontShare      = 0.10 // one-off cost as a share of completion cost
	fundRDMonthlyShare      = 0.05 // recurring funding as a share of completion cost
	launchedProductQuality  = 70.0
	launchedProductUnitCost = 30.0
	launchedProductPrice    = 60.0
)

// Delegated-AI tunables. The probabilities and bands are deliberate design
// values, kept stable for replay compatibility.
const (
	aiCashBuffer             = 25_000.0
	aiDecisionChance         = 0.30
	aiOwnTradeChance         = 0.25
	aiCompetitorTradeChance  = 0.20
	aiTargetOwnership        = 62.5
	aiSellOwnershipThreshold = 75.0
	aiSafeOwnershipFloor     = 55.0
	aiBuyTriggerCash         = 50_000.0 + aiCashBuffer
	aiSellTriggerCash        = 15_000.0
	aiCompetitorBuyCash      = 75_000.0 + aiCashBuffer
	aiCompetitorSellCash     = 20_000.0
	aiCompetitorBuyShareCap  = 5_000
)

// ownershipPercent is the CEO's stake in the company as a percentage of
// shares outstanding, 0 when nothing is outstanding.
func ownershipPercent(fin CompanyFinancials) float64 {
	if fin.SharesOutstanding <= 0 {
		return 0
	}
	return float64(fin.CEOShares) / float64(fin.SharesOutstanding) * 100
}

// FormatMoney renders a dollar amount with thousands separators and no
// decimals, e.g. "$50,000". Negative amounts keep the sign before the symbol.
func FormatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + comma(int64(math.Round(v)))
}

// FormatPrice renders a per-share price with two decimals, e.g. "$5.00".
func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func comma(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteByte(',')
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
