package game

import "github.com/google/uuid"

// newEvent builds one event-log entry. Decision and trade events raised on
// behalf of the AI are relabeled so the log reads as delegate activity.
func newEvent(turn int, typ GameEventType, title, desc string, severity EventSeverity, data *CompanyFinancials, origin Origin) GameEvent {
	if origin == OriginAI && (typ == EventPlayerDecision || typ == EventStockTrade) {
		typ = EventAIAction
		title = "AI delegate: " + title
	}
	return GameEvent{
		ID:          uuid.NewString(),
		Turn:        turn,
		Type:        typ,
		Title:       title,
		Description: desc,
		Severity:    severity,
		Data:        data,
	}
}

func appendEvent(gs *GameState, ev GameEvent) {
	gs.EventLog = append(gs.EventLog, ev)
}
