package game

// Starting balance sheet and roster. Cash and debt are tuned so the first
// months are survivable but not comfortable.
var initialCompetitors = []Competitor{
	{ID: "comp1", Name: "Innovatech Inc.", LogoSeed: "innovatech", MarketShare: 30, StockPrice: 55.00, Strength: StrengthStrong},
	{ID: "comp2", Name: "Global Devices Co.", LogoSeed: "globaldev", MarketShare: 25, StockPrice: 40.00, Strength: StrengthModerate},
	{ID: "comp3", Name: "Budgetronics", LogoSeed: "budgetronics", MarketShare: 15, StockPrice: 12.00, Strength: StrengthWeak},
}

// initialCompetitorPrice anchors the delegated trader's valuation checks to
// the day-one price, not the drifting one.
func initialCompetitorPrice(id string) (float64, bool) {
	for _, c := range initialCompetitors {
		if c.ID == id {
			return c.StockPrice, true
		}
	}
	return 0, false
}

// NewGameState builds the starting state for a fresh tenure. An empty name
// falls back to the default company.
func NewGameState(companyName string) *GameState {
	if companyName == "" {
		companyName = "Synergy Corp"
	}
	gs := &GameState{
		CompanyName:        companyName,
		CurrentTurn:        1,
		CurrentAIDirective: DirectiveStabilizeCompany,
		Financials: CompanyFinancials{
			Cash:                    100_000,
			Debt:                    100_000,
			TotalAssets:             300_000,
			TotalLiabilities:        200_000,
			StockPrice:              5.00,
			SharesOutstanding:       100_000,
			MarketCap:               5.00 * 100_000,
			CEOShares:               60_000,
			CompetitorShareHoldings: map[string]int{},
		},
		Products: []Product{
			{ID: "prod1", Name: "Legacy Gadget Alpha", SegmentID: "seg1", Quality: 50, ProductionCost: 12, SalePrice: 25, Status: ProductLaunched},
		},
		Competitors: append([]Competitor(nil), initialCompetitors...),
		MarketSegments: []MarketSegment{
			{ID: "seg1", Name: "Consumer Electronics", Icon: "📱", TotalMarketValue: 50_000_000, PlayerShare: 2, GrowthPotential: "medium", Trends: []string{"miniaturization", "connectivity"}},
			{ID: "seg2", Name: "Sustainable Solutions", Icon: "🌿", TotalMarketValue: 20_000_000, PlayerShare: 0, GrowthPotential: "high", Trends: []string{"eco materials", "carbon neutrality"}},
		},
		RDProjects: []RDProject{
			{ID: "rd1", Name: "Project Phoenix", Description: "Quality overhaul for Legacy Gadget Alpha.", Progress: 10, CostToComplete: 30_000, MonthlyFunding: 5_000, PotentialImpact: "Legacy Gadget Alpha quality +20", Status: RDActive},
			{ID: "rd2", Name: "Green Initiative Research", Description: "Sustainable materials for a new product line.", Progress: 0, CostToComplete: 100_000, MonthlyFunding: 0, PotentialImpact: "New product: Verdant Line", Status: RDPending},
		},
		GlobalMarketSentiment: SentimentNeutral,
	}
	appendEvent(gs, newEvent(0, EventSystemMessage, "Welcome aboard, CEO!",
		"You have taken over "+companyName+" on the edge of insolvency. Good luck.",
		SeverityInfo, nil, OriginPlayer))
	return gs
}
