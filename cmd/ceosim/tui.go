package main

import (
	"fmt"
	"strings"

	"ceosim/internal/game"
	"ceosim/internal/runner"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Border(lipgloss.DoubleBorder()).Padding(1, 2)
)

type stateUpdatedMsg struct {
	state *game.GameState
}

type turnDoneMsg struct {
	state *game.GameState
	ok    bool
}

type playModel struct {
	engine  *game.Engine
	session *runner.Session
	run     *runner.Runner

	state     *game.GameState
	decisions []game.StrategicDecision

	log  viewport.Model
	spin spinner.Model
	busy bool

	width  int
	height int
}

func newPlayModel(engine *game.Engine, session *runner.Session, run *runner.Runner) playModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	vp := viewport.New(80, 12)

	st := session.State()
	m := playModel{
		engine:  engine,
		session: session,
		run:     run,
		state:   st,
		log:     vp,
		spin:    sp,
	}
	m.refresh(st)
	return m
}

func (m playModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m *playModel) refresh(st *game.GameState) {
	m.state = st
	m.decisions = game.AvailableDecisions(st)
	m.log.SetContent(renderEventLog(st))
	m.log.GotoBottom()
}

func (m *playModel) apply(fn func(*game.GameState) *game.GameState) {
	m.refresh(m.session.Apply(fn))
}

func (m playModel) advanceCmd() tea.Cmd {
	return func() tea.Msg {
		st, ok := m.run.AdvanceManual()
		return turnDoneMsg{state: st, ok: ok}
	}
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log.Width = msg.Width - 4
		if h := msg.Height - 18; h > 4 {
			m.log.Height = h
		}
		return m, nil

	case stateUpdatedMsg:
		m.refresh(msg.state)
		return m, nil

	case turnDoneMsg:
		m.busy = false
		m.refresh(msg.state)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

func (m playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd
	}

	if m.state.IsGameOver {
		return m, nil
	}

	switch key {
	case "n":
		if m.state.IsDelegated || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.advanceCmd()

	case "d":
		m.refresh(m.run.SetDelegated(!m.state.IsDelegated))
		return m, nil

	case "tab":
		next := nextDirective(m.state.CurrentAIDirective)
		m.apply(func(gs *game.GameState) *game.GameState {
			return m.engine.SetDirective(gs, next)
		})
		return m, nil

	case "b":
		if m.state.IsDelegated {
			return m, nil
		}
		m.apply(func(gs *game.GameState) *game.GameState {
			return m.engine.BuyCEOShares(gs, 1000, game.OriginPlayer)
		})
		return m, nil

	case "s":
		if m.state.IsDelegated {
			return m, nil
		}
		m.apply(func(gs *game.GameState) *game.GameState {
			return m.engine.SellCEOShares(gs, 10, game.OriginPlayer)
		})
		return m, nil

	case "1", "2", "3", "4", "5":
		if m.state.IsDelegated {
			return m, nil
		}
		idx := int(key[0] - '1')
		if idx >= len(m.decisions) {
			return m, nil
		}
		decisionKey := m.decisions[idx].Key
		m.apply(func(gs *game.GameState) *game.GameState {
			return m.engine.ApplyDecision(gs, decisionKey, game.OriginPlayer)
		})
		return m, nil
	}
	return m, nil
}

func nextDirective(current game.AIDirective) game.AIDirective {
	for i, d := range game.DirectiveOptions {
		if d == current {
			return game.DirectiveOptions[(i+1)%len(game.DirectiveOptions)]
		}
	}
	return game.DirectiveOptions[0]
}

func (m playModel) View() string {
	st := m.state
	var b strings.Builder

	mode := ""
	if st.IsDelegated {
		mode = "  🤖 AI delegation (auto-advancing)"
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  |  Month %d%s", st.CompanyName, st.CurrentTurn, mode)))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(renderFinancials(st)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Directive: ") + valueStyle.Render(string(st.CurrentAIDirective)))
	b.WriteString("   " + labelStyle.Render("Sentiment: ") + renderSentiment(st.GlobalMarketSentiment))
	b.WriteString("\n\n")
	b.WriteString(renderDecisions(m.decisions))
	b.WriteString("\n")
	b.WriteString(m.log.View())
	b.WriteString("\n")

	if st.IsGameOver {
		b.WriteString(gameOverStyle.Render(st.GameOverMessage))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}

	if m.busy {
		b.WriteString(m.spin.View() + " resolving month...")
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("n next month · d delegation · tab directive · 1-5 decision · b buy 1,000 shares · s sell 10% · q quit"))
	return b.String()
}

func renderFinancials(st *game.GameState) string {
	fin := st.Financials
	profit := valueStyle
	if fin.MonthlyProfit > 0 {
		profit = goodStyle
	} else if fin.MonthlyProfit < 0 {
		profit = badStyle
	}
	rows := []string{
		labelStyle.Render("Cash ") + valueStyle.Render(game.FormatMoney(fin.Cash)),
		labelStyle.Render("Debt ") + valueStyle.Render(game.FormatMoney(fin.Debt)),
		labelStyle.Render("Profit ") + profit.Render(game.FormatMoney(fin.MonthlyProfit)),
		labelStyle.Render("Stock ") + valueStyle.Render(game.FormatPrice(fin.StockPrice)),
		labelStyle.Render("Mkt cap ") + valueStyle.Render(game.FormatMoney(fin.MarketCap)),
		labelStyle.Render("CEO stake ") + valueStyle.Render(fmt.Sprintf("%d/%d", fin.CEOShares, fin.SharesOutstanding)),
	}
	return strings.Join(rows, "   ")
}

func renderSentiment(s game.MarketSentiment) string {
	switch s {
	case game.SentimentPositive:
		return goodStyle.Render(string(s))
	case game.SentimentNegative:
		return badStyle.Render(string(s))
	default:
		return valueStyle.Render(string(s))
	}
}

func renderDecisions(decisions []game.StrategicDecision) string {
	if len(decisions) == 0 {
		return labelStyle.Render("No strategic decisions available this month.")
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render("Strategic decisions:"))
	b.WriteString("\n")
	for i, d := range decisions {
		cost := "free"
		if d.Cost > 0 {
			cost = game.FormatMoney(d.Cost)
		}
		b.WriteString(fmt.Sprintf("  %d. %s (%s, %s)\n", i+1, d.Title, d.Category, cost))
	}
	return b.String()
}

func renderEventLog(st *game.GameState) string {
	var b strings.Builder
	for _, ev := range st.EventLog {
		style := valueStyle
		switch ev.Severity {
		case game.SeveritySuccess:
			style = goodStyle
		case game.SeverityWarning:
			style = warnStyle
		case game.SeverityCritical:
			style = badStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("[M%02d] %s", ev.Turn, ev.Title)))
		if ev.Description != "" {
			b.WriteString(labelStyle.Render(" " + ev.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}
