package game

import (
	"fmt"
	"strings"
)

// AvailableDecisions derives the strategic decision catalog from the current
// state. The catalog is ephemeral; callers re-derive it after every state
// change, and a decision stays addressable by its key for as long as its
// trigger holds.
func AvailableDecisions(gs *GameState) []StrategicDecision {
	var decisions []StrategicDecision
	fin := gs.Financials

	if pending := firstPendingProject(gs); pending != nil && fin.Cash > pending.CostToComplete*fundRDUpfrontShare {
		projectID := pending.ID
		upfront := pending.CostToComplete * fundRDUpfrontShare
		decisions = append(decisions, StrategicDecision{
			Key:         DecisionKey{Kind: DecisionFundRD, TargetID: projectID},
			Title:       "Fund R&D: " + pending.Name,
			Description: fmt.Sprintf("Allocate initial funding to start %s. Potential: %s", pending.Name, pending.PotentialImpact),
			Cost:        upfront,
			Category:    CategoryRD,
			Apply: func(gs *GameState, origin Origin) *GameState {
				out := gs.Clone()
				for i := range out.RDProjects {
					p := &out.RDProjects[i]
					if p.ID != projectID {
						continue
					}
					if out.Financials.Cash < upfront {
						break
					}
					p.Status = RDActive
					p.MonthlyFunding = p.CostToComplete * fundRDMonthlyShare
					out.Financials.Cash -= upfront
					appendEvent(out, newEvent(out.CurrentTurn, EventPlayerDecision, "R&D project funded",
						p.Name+" is now active.", SeveritySuccess, nil, origin))
					break
				}
				return out
			},
		})
	}

	if completed, name := launchableProduct(gs); completed != nil {
		projectID := completed.ID
		projectName := completed.Name
		productName := name
		decisions = append(decisions, StrategicDecision{
			Key:         DecisionKey{Kind: DecisionLaunchProduct, TargetID: projectID},
			Title:       "Launch new product: " + productName,
			Description: fmt.Sprintf("Bring the product developed by %s to market.", projectName),
			Cost:        productLaunchCost,
			Category:    CategoryMarketing,
			Apply: func(gs *GameState, origin Origin) *GameState {
				out := gs.Clone()
				if out.Financials.Cash < productLaunchCost {
					return out
				}
				segmentID := "seg1"
				if len(out.MarketSegments) > 0 {
					segmentID = out.MarketSegments[0].ID
				}
				out.Products = append(out.Products, Product{
					ID:             "prod-" + projectID,
					Name:           productName,
					SegmentID:      segmentID,
					Quality:        launchedProductQuality,
					ProductionCost: launchedProductUnitCost,
					SalePrice:      launchedProductPrice,
					Status:         ProductLaunched,
				})
				out.Financials.Cash -= productLaunchCost
				for i := range out.RDProjects {
					if out.RDProjects[i].ID == projectID {
						out.RDProjects[i].PotentialImpact += " (launched)"
						break
					}
				}
				appendEvent(out, newEvent(out.CurrentTurn, EventPlayerDecision, "New product launched!",
					productName+" has hit the market.", SeveritySuccess, nil, origin))
				return out
			},
		})
	}

	if fin.Cash > marketingCampaignCost {
		decisions = append(decisions, StrategicDecision{
			Key:         DecisionKey{Kind: DecisionMarketingCampaign},
			Title:       "Run basic marketing campaign",
			Description: "A general awareness campaign. A modest revenue bump is expected.",
			Cost:        marketingCampaignCost,
			Category:    CategoryMarketing,
			Apply: func(gs *GameState, origin Origin) *GameState {
				out := gs.Clone()
				if out.Financials.Cash < marketingCampaignCost {
					return out
				}
				out.Financials.Cash -= marketingCampaignCost
				appendEvent(out, newEvent(out.CurrentTurn, EventPlayerDecision, "Marketing campaign started",
					"The basic campaign is underway.", SeveritySuccess, nil, origin))
				return out
			},
		})
	}

	if fin.Debt < fin.TotalAssets*0.8 && fin.Cash < 50_000 {
		decisions = append(decisions, StrategicDecision{
			Key:         DecisionKey{Kind: DecisionIssueDebt},
			Title:       "Issue small bond (" + FormatMoney(debtIssueAmount) + " raise)",
			Description: "Raise capital through a bond issue. Debt and cash both increase.",
			Category:    CategoryFinance,
			Apply: func(gs *GameState, origin Origin) *GameState {
				out := gs.Clone()
				out.Financials.Cash += debtIssueAmount
				out.Financials.Debt += debtIssueAmount
				appendEvent(out, newEvent(out.CurrentTurn, EventPlayerDecision, "Bond issued",
					"Successfully raised "+FormatMoney(debtIssueAmount)+" through a bond issue.", SeveritySuccess, nil, origin))
				return out
			},
		})
	}

	if fin.Cash > 50_000 && fin.Debt > 10_000 {
		repay := fin.Debt
		if repay > debtRepayCap {
			repay = debtRepayCap
		}
		decisions = append(decisions, StrategicDecision{
			Key:         DecisionKey{Kind: DecisionRepayDebt},
			Title:       "Repay small debt (" + FormatMoney(repay) + ")",
			Description: "Pay down part of the bank debt to reduce the interest burden.",
			Cost:        repay,
			Category:    CategoryFinance,
			Apply: func(gs *GameState, origin Origin) *GameState {
				out := gs.Clone()
				if out.Financials.Cash < repay {
					return out
				}
				out.Financials.Cash -= repay
				out.Financials.Debt -= repay
				appendEvent(out, newEvent(out.CurrentTurn, EventPlayerDecision, "Debt repaid",
					"Paid down "+FormatMoney(repay)+" of debt.", SeveritySuccess, nil, origin))
				return out
			},
		})
	}

	return decisions
}

func firstPendingProject(gs *GameState) *RDProject {
	for i := range gs.RDProjects {
		if gs.RDProjects[i].Status == RDPending {
			return &gs.RDProjects[i]
		}
	}
	return nil
}

// launchableProduct finds a completed R&D project whose impact text promises a
// new product that has not been launched yet, and extracts the product name.
func launchableProduct(gs *GameState) (*RDProject, string) {
	for i := range gs.RDProjects {
		p := &gs.RDProjects[i]
		if p.Status != RDCompleted {
			continue
		}
		impact := strings.ToLower(p.PotentialImpact)
		if !strings.Contains(impact, "new product") || strings.Contains(impact, "(launched)") {
			continue
		}
		name := p.PotentialImpact
		if idx := strings.Index(impact, "new product:"); idx >= 0 {
			name = name[idx+len("new product:"):]
		}
		if idx := strings.IndexByte(name, '('); idx >= 0 {
			name = name[:idx]
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		for _, prod := range gs.Products {
			if prod.Name == name {
				name = ""
				break
			}
		}
		if name == "" {
			continue
		}
		return p, name
	}
	return nil, ""
}

// ApplyDecision re-derives the catalog, locates the decision by key, and
// applies it. An unaffordable decision logs a warning for the player and is
// silently skipped for the AI; an unknown key returns the state unchanged.
func (e *Engine) ApplyDecision(gs *GameState, key DecisionKey, origin Origin) *GameState {
	if gs.IsGameOver {
		return gs
	}
	var decision *StrategicDecision
	for _, d := range AvailableDecisions(gs) {
		if d.Key == key {
			decision = &d
			break
		}
	}
	if decision == nil {
		return gs
	}

	if decision.Cost > 0 && gs.Financials.Cash < decision.Cost {
		if origin == OriginAI {
			return gs
		}
		out := gs.Clone()
		appendEvent(out, newEvent(out.CurrentTurn, EventSystemMessage, "Decision failed",
			"Insufficient funds for this decision.", SeverityWarning, nil, OriginPlayer))
		return out
	}

	out := decision.Apply(gs, origin)
	out = CheckWinLoss(out)
	e.log.Info("decision applied", "kind", key.Kind, "target", key.TargetID, "origin", origin)
	return out
}
