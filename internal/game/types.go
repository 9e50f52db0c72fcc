package game

// AIDirective is the standing strategic posture consulted every turn to bias
// simulation outcomes. The player may change it at any time, even while the
// company is delegated to the AI.
type AIDirective string

const (
	DirectiveStabilizeCompany          AIDirective = "stabilize company"
	DirectiveProfitMaximization        AIDirective = "profit maximization"
	DirectiveMarketShareExpansion      AIDirective = "market share expansion"
	DirectiveTechInnovationPriority    AIDirective = "tech innovation priority"
	DirectiveCostReduction             AIDirective = "cost reduction"
	DirectiveAggressiveMarketExpansion AIDirective = "aggressive market expansion"
)

// DirectiveOptions lists every directive in dashboard order.
var DirectiveOptions = []AIDirective{
	DirectiveStabilizeCompany,
	DirectiveProfitMaximization,
	DirectiveMarketShareExpansion,
	DirectiveTechInnovationPriority,
	DirectiveCostReduction,
	DirectiveAggressiveMarketExpansion,
}

type MarketSentiment string

const (
	SentimentPositive MarketSentiment = "positive"
	SentimentNeutral  MarketSentiment = "neutral"
	SentimentNegative MarketSentiment = "negative"
)

type ProductStatus string

const (
	ProductInDevelopment ProductStatus = "in development"
	ProductLaunched      ProductStatus = "launched"
	ProductDiscontinued  ProductStatus = "discontinued"
)

type RDStatus string

const (
	RDPending   RDStatus = "pending"
	RDActive    RDStatus = "active"
	RDCompleted RDStatus = "completed"
	RDCancelled RDStatus = "cancelled"
)

type CompetitorStrength string

const (
	StrengthWeak     CompetitorStrength = "weak"
	StrengthModerate CompetitorStrength = "moderate"
	StrengthStrong   CompetitorStrength = "strong"
)

// CompanyFinancials is the player company's balance sheet plus the three
// per-turn accumulators, which are zeroed at the start of each turn.
type CompanyFinancials struct {
	Cash              float64 `json:"cash"`
	Debt              float64 `json:"debt"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	MonthlyCosts      float64 `json:"monthly_costs"`
	MonthlyProfit     float64 `json:"monthly_profit"`
	TotalAssets       float64 `json:"total_assets"`
	TotalLiabilities  float64 `json:"total_liabilities"`
	StockPrice        float64 `json:"stock_price"`
	SharesOutstanding int     `json:"shares_outstanding"`
	MarketCap         float64 `json:"market_cap"`
	CEOShares         int     `json:"ceo_shares"`
	// CompetitorShareHoldings maps competitor id to the CEO's personal
	// holding. Entries are deleted when a holding reaches zero.
	CompetitorShareHoldings map[string]int `json:"competitor_share_holdings"`
}

type Product struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	SegmentID           string        `json:"segment_id"`
	Quality             float64       `json:"quality"` // 0-100
	ProductionCost      float64       `json:"production_cost"`
	SalePrice           float64       `json:"sale_price"`
	UnitsSoldPerQuarter int           `json:"units_sold_per_quarter"` // recomputed every turn
	Status              ProductStatus `json:"status"`
}

type Competitor struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	LogoSeed    string             `json:"logo_seed"`
	MarketShare float64            `json:"market_share"` // 0-100
	StockPrice  float64            `json:"stock_price"`
	Strength    CompetitorStrength `json:"strength"`
}

type MarketSegment struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Icon             string   `json:"icon"`
	TotalMarketValue float64  `json:"total_market_value"`
	PlayerShare      float64  `json:"player_market_share"` // 0-100
	GrowthPotential  string   `json:"growth_potential"`    // low, medium, high
	Trends           []string `json:"trends"`
}

type RDProject struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Progress        float64  `json:"progress"` // 0-100, non-decreasing until completion
	CostToComplete  float64  `json:"cost_to_complete"`
	MonthlyFunding  float64  `json:"monthly_funding"` // 0 when not active
	PotentialImpact string   `json:"potential_impact"`
	Status          RDStatus `json:"status"`
}

type GameEventType string

const (
	EventAIAction        GameEventType = "ai action"
	EventMarketNews      GameEventType = "market news"
	EventCompetitorMove  GameEventType = "competitor move"
	EventFinancialReport GameEventType = "financial report"
	EventPlayerDecision  GameEventType = "player decision"
	EventCrisis          GameEventType = "crisis"
	EventSystemMessage   GameEventType = "system message"
	EventStockTrade      GameEventType = "stock trade"
)

type EventSeverity string

const (
	SeverityInfo     EventSeverity = "info"
	SeverityWarning  EventSeverity = "warning"
	SeverityCritical EventSeverity = "critical"
	SeveritySuccess  EventSeverity = "success"
)

// GameEvent is one immutable entry of the append-only event log. Data is a
// financials snapshot on financial-report events and nil otherwise.
type GameEvent struct {
	ID          string             `json:"id"`
	Turn        int                `json:"turn"`
	Type        GameEventType      `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Severity    EventSeverity      `json:"severity"`
	Data        *CompanyFinancials `json:"data,omitempty"`
}

// GameState is the root simulation value. It is replaced wholesale on every
// transition; callers never see a partially mutated state.
type GameState struct {
	CompanyName           string            `json:"company_name"`
	CurrentTurn           int               `json:"current_turn"`
	CurrentAIDirective    AIDirective       `json:"current_ai_directive"`
	Financials            CompanyFinancials `json:"financials"`
	Products              []Product         `json:"products"`
	Competitors           []Competitor      `json:"competitors"`
	MarketSegments        []MarketSegment   `json:"market_segments"`
	RDProjects            []RDProject       `json:"rd_projects"`
	EventLog              []GameEvent       `json:"event_log"`
	GlobalMarketSentiment MarketSentiment   `json:"global_market_sentiment"`
	IsGameOver            bool              `json:"is_game_over"`
	GameOverMessage       string            `json:"game_over_message"`
	IsDelegated           bool              `json:"is_delegated"`
}

// Origin identifies who initiated a transition. AI-originated failures are
// silent, and AI-originated decision/trade events are relabeled as AI actions.
type Origin int

const (
	OriginPlayer Origin = iota
	OriginAI
)

func (o Origin) String() string {
	if o == OriginAI {
		return "ai"
	}
	return "player"
}

type DecisionKind string

const (
	DecisionFundRD            DecisionKind = "fund_rd"
	DecisionLaunchProduct     DecisionKind = "launch_product"
	DecisionMarketingCampaign DecisionKind = "marketing_campaign"
	DecisionIssueDebt         DecisionKind = "issue_debt"
	DecisionRepayDebt         DecisionKind = "repay_debt"
)

// DecisionKey addresses a strategic decision across turns. TargetID is set
// for kinds that act on a specific entity (the R&D project id) and empty for
// the company-wide kinds.
type DecisionKey struct {
	Kind     DecisionKind `json:"kind"`
	TargetID string       `json:"target_id,omitempty"`
}

type DecisionCategory string

const (
	CategoryFinance    DecisionCategory = "finance"
	CategoryRD         DecisionCategory = "R&D"
	CategoryMarketing  DecisionCategory = "marketing"
	CategoryOperations DecisionCategory = "operations"
	CategoryMA         DecisionCategory = "M&A"
)

// StrategicDecision is a one-shot, conditionally available action. Decisions
// are re-derived from state on every query and never persisted. Apply clones
// the state it receives; the caller's value is never mutated.
type StrategicDecision struct {
	Key         DecisionKey
	Title       string
	Description string
	Cost        float64 // 0 means the decision has no upfront cost
	Category    DecisionCategory
	Apply       func(gs *GameState, origin Origin) *GameState
}
