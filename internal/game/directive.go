package game

// directiveProfile holds the per-directive simulation biases. Revenue and
// cost factors are surfaced on the dashboard as the delegate's stated focus;
// the measurable effects are the share scaling, the innovation bonus, and the
// stabilize debt paydown.
type directiveProfile struct {
	revenueFactor   float64
	costFactor      float64
	innovationFocus float64
	shareScale      float64
	focusTitle      string
	focusDesc       string
}

var directiveProfiles = map[AIDirective]directiveProfile{
	DirectiveProfitMaximization: {
		revenueFactor: 1.02, costFactor: 0.98,
		focusTitle: "AI focus: profitability",
		focusDesc:  "The AI is optimizing for profitability. Expect a slight revenue lift and cost savings.",
	},
	DirectiveMarketShareExpansion: {
		revenueFactor: 1.05, costFactor: 1.01, shareScale: 1.01,
		focusTitle: "AI focus: market share",
		focusDesc:  "The AI is pushing market expansion. Aggressive sales and marketing are being simulated.",
	},
	DirectiveCostReduction: {
		revenueFactor: 1.0, costFactor: 0.95,
		focusTitle: "AI focus: cost cutting",
		focusDesc:  "The AI is enforcing cost-saving measures across operations.",
	},
	DirectiveTechInnovationPriority: {
		revenueFactor: 1.0, costFactor: 1.0, innovationFocus: 0.1,
		focusTitle: "AI focus: innovation",
		focusDesc:  "The AI is prioritizing R&D efforts. Faster project completion is expected.",
	},
	DirectiveAggressiveMarketExpansion: {
		revenueFactor: 1.08, costFactor: 1.03, shareScale: 1.03,
		focusTitle: "AI focus: aggressive expansion",
		focusDesc:  "The AI is launching aggressive marketing campaigns and sales pushes.",
	},
}

// simulateDirective applies the standing directive's per-turn effects to gs
// in place: the focus log entry, stabilize debt paydown, segment share
// scaling, and active R&D funding and progress. Completed projects flip
// status and are excluded from the month's cost total.
func simulateDirective(gs *GameState) {
	fin := &gs.Financials
	profile, ok := directiveProfiles[gs.CurrentAIDirective]

	switch {
	case gs.CurrentAIDirective == DirectiveStabilizeCompany:
		if fin.Cash > fin.Debt*0.1 && fin.Debt > 0 {
			payment := fin.Debt * 0.02
			if limit := fin.Cash * 0.1; limit < payment {
				payment = limit
			}
			fin.Cash -= payment
			fin.Debt -= payment
			appendEvent(gs, newEvent(gs.CurrentTurn, EventAIAction, "AI action: debt paydown",
				"The AI paid down "+FormatMoney(payment)+" of debt.", SeverityInfo, nil, OriginAI))
		} else {
			appendEvent(gs, newEvent(gs.CurrentTurn, EventAIAction, "AI focus: stabilization",
				"The AI is holding current operating levels and focusing on stability.", SeverityInfo, nil, OriginAI))
		}
	case ok:
		if profile.shareScale > 0 {
			for i := range gs.MarketSegments {
				seg := &gs.MarketSegments[i]
				if seg.PlayerShare > 0 {
					seg.PlayerShare = min(100, seg.PlayerShare*profile.shareScale)
				}
			}
		}
		appendEvent(gs, newEvent(gs.CurrentTurn, EventAIAction, profile.focusTitle, profile.focusDesc, SeverityInfo, nil, OriginAI))
	}

	for i := range gs.RDProjects {
		p := &gs.RDProjects[i]
		if p.Status != RDActive || p.MonthlyFunding <= 0 || fin.Cash < p.MonthlyFunding {
			continue
		}
		fin.Cash -= p.MonthlyFunding
		increase := (p.MonthlyFunding/(p.CostToComplete+p.MonthlyFunding))*25 + profile.innovationFocus*100
		if increase < 5 {
			increase = 5
		}
		p.Progress = min(100, p.Progress+increase)
		if p.Progress >= 100 {
			p.Status = RDCompleted
			appendEvent(gs, newEvent(gs.CurrentTurn, EventAIAction, "R&D complete!",
				p.Name+" has been successfully developed. Impact: "+p.PotentialImpact, SeveritySuccess, nil, OriginAI))
		}
	}

	// The cost total is taken after the status flips, so a project that
	// finished this month does not bill its funding as a recurring cost.
	var totalFunding float64
	for i := range gs.RDProjects {
		p := &gs.RDProjects[i]
		if p.Status == RDActive && p.MonthlyFunding > 0 {
			totalFunding += p.MonthlyFunding
		}
	}
	fin.MonthlyCosts += totalFunding
}
