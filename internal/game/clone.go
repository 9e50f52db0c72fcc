package game

// Clone returns a deep copy. Every exported transition clones before mutating
// so the caller's value is never touched.
func (gs *GameState) Clone() *GameState {
	if gs == nil {
		return nil
	}
	out := *gs
	out.Financials = gs.Financials.Clone()
	out.Products = append([]Product(nil), gs.Products...)
	out.Competitors = append([]Competitor(nil), gs.Competitors...)
	out.MarketSegments = make([]MarketSegment, len(gs.MarketSegments))
	for i, seg := range gs.MarketSegments {
		seg.Trends = append([]string(nil), seg.Trends...)
		out.MarketSegments[i] = seg
	}
	out.RDProjects = append([]RDProject(nil), gs.RDProjects...)
	out.EventLog = append([]GameEvent(nil), gs.EventLog...)
	return &out
}

// Clone copies the financials including the holdings map.
func (f CompanyFinancials) Clone() CompanyFinancials {
	out := f
	out.CompetitorShareHoldings = make(map[string]int, len(f.CompetitorShareHoldings))
	for id, n := range f.CompetitorShareHoldings {
		out.CompetitorShareHoldings[id] = n
	}
	return out
}

// snapshot returns a detached financials copy for event payloads.
func (f CompanyFinancials) snapshot() *CompanyFinancials {
	c := f.Clone()
	return &c
}
