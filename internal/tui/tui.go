// Package tui implements the hotseat terminal interface. Both players share
// the keyboard and enter moves in board notation; the model renders the
// position, a move log, and a contextual prompt for the phase in progress.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/longyuxi/yinsh"
	"github.com/longyuxi/yinsh/internal/config"
	"github.com/longyuxi/yinsh/internal/match"
)

// Model represents the Bubble Tea model for a hotseat match
type Model struct {
	match  *match.Match
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	moveInput   textinput.Model

	// State
	moveLog     []string
	focusedPane int // 0 = log, 1 = input
	quitting    bool
	showHints   bool

	// Display settings
	names      [2]string
	whiteStyle lipgloss.Style
	blackStyle lipgloss.Style

	// Dimensions
	width       int
	height      int
	initialized bool
}

// NewModel creates a hotseat model for the given match. It subscribes to
// the match's event bus; accepted moves, rejections, and scoring all arrive
// in the move log through events.
func NewModel(m *match.Match, cfg *config.Config, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "coordinate like f6, or 'help'"
	ti.Focus()
	ti.CharLimit = 12
	ti.Width = 32
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	white, black := pieceStyles(cfg.UI.Theme)

	model := &Model{
		match:       m,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		moveInput:   ti,
		moveLog:     []string{},
		focusedPane: 1, // Start with input focused
		showHints:   cfg.UI.ShowHints,
		names:       [2]string{cfg.PlayerName(yinsh.White), cfg.PlayerName(yinsh.Black)},
		whiteStyle:  white,
		blackStyle:  black,
	}
	m.Bus().Subscribe(model)
	return model
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			// Switch focus between log and input
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.moveInput.Focus()
			} else {
				m.focusedPane = 0
				m.moveInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				input := strings.TrimSpace(m.moveInput.Value())
				m.moveInput.SetValue("")
				if cmd := m.handleSubmit(input); cmd != nil {
					return m, cmd
				}
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	// Update components
	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.moveInput, cmd = m.moveInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleSubmit interprets one line of input: a command or a coordinate.
func (m *Model) handleSubmit(input string) tea.Cmd {
	switch strings.ToLower(input) {
	case "":
		return nil
	case "quit", "q", "exit":
		m.quitting = true
		return tea.Sequence(tea.ClearScreen, tea.Quit)
	case "help", "?":
		m.AddLogEntry(InfoStyle.Render("enter a coordinate to act on: column a-k, row 1-11, like f6"))
		m.AddLogEntry(InfoStyle.Render("commands: hints (toggle landing marks), board (dump position to log), quit"))
		return nil
	case "hints":
		m.showHints = !m.showHints
		if m.showHints {
			m.AddLogEntry(InfoStyle.Render("hints on"))
		} else {
			m.AddLogEntry(InfoStyle.Render("hints off"))
		}
		return nil
	case "board":
		state := m.match.State()
		m.logger.Info("position dump\n" + canvasString(buildBoardCanvas(state.Board, nil, nil)))
		m.AddLogEntry(InfoStyle.Render("position written to the log file"))
		return nil
	}

	target, err := ParseCoord(input)
	if err != nil {
		m.AddLogEntry(ErrorStyle.Render(err.Error()))
		return nil
	}

	// Rejections surface through the event bus; only the match-over case
	// needs handling here since it is not a move rejection.
	if _, err := m.match.Play(target); errors.Is(err, match.ErrMatchOver) {
		m.AddLogEntry(InfoStyle.Render("the match is over"))
	}
	return nil
}

// OnEvent receives match events and turns them into move log entries.
func (m *Model) OnEvent(event match.MatchEvent) {
	switch e := event.(type) {
	case match.MoveAcceptedEvent:
		m.AddLogEntry(m.describeMove(e))
	case match.MoveRejectedEvent:
		m.AddLogEntry(ErrorStyle.Render(fmt.Sprintf("%s: %v", m.names[e.Player], e.Reason)))
	case match.RunFormedEvent:
		m.AddLogEntry(SuccessStyle.Render(fmt.Sprintf("%s completes a run", m.names[e.Player])))
	case match.RingScoredEvent:
		m.AddLogEntry(ScoreStyle.Render(fmt.Sprintf("%s scores a ring (%d)", m.names[e.Player], e.Score)))
	case match.GameWonEvent:
		m.AddLogEntry(HeaderStyle.Render(fmt.Sprintf(" %s wins %d-%d ",
			m.names[e.Winner], e.ScoreWhite, e.ScoreBlack)))
	}
}

// describeMove narrates an accepted move using the phase that interpreted it.
func (m *Model) describeMove(e match.MoveAcceptedEvent) string {
	name := m.names[e.Player]
	at := FormatCoord(e.Target)
	switch ph := e.Phase.(type) {
	case yinsh.PlaceRing:
		return fmt.Sprintf("%s places a ring at %s", name, at)
	case yinsh.PlaceMarker:
		return fmt.Sprintf("%s drops a marker at %s", name, at)
	case yinsh.SlideRing:
		return fmt.Sprintf("%s slides the ring from %s to %s", name, FormatCoord(ph.Origin), at)
	case yinsh.RemoveRun:
		return fmt.Sprintf("%s clears the run through %s", name, at)
	case yinsh.RemoveRing:
		return fmt.Sprintf("%s lifts the ring at %s", name, at)
	default:
		return fmt.Sprintf("%s plays %s", name, at)
	}
}

// AddLogEntry adds an entry to the move log
func (m *Model) AddLogEntry(entry string) {
	m.moveLog = append(m.moveLog, entry)

	// Update content and auto-scroll to bottom
	m.logViewport.SetContent(strings.Join(m.moveLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Action pane (bottom, full width)
	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	calculatedActionWidth := max(m.width-2, 1)
	calculatedActionHeight := max(actionHeight-2, 1)

	actionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(calculatedActionWidth).
		Height(calculatedActionHeight)
	if m.focusedPane == 1 {
		actionStyle = actionStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	actionPane := actionStyle.Render(actionContent)

	topHeight := max(m.height-lipgloss.Height(actionPane)-2, 1)

	// Board pane (left, sized to the canvas)
	boardContent := m.renderBoardPane()
	boardWidth := max(lipgloss.Width(boardContent), canvasCols)
	boardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(boardWidth).
		Height(topHeight)
	boardPane := boardStyle.Render(boardContent)

	// Sidebar pane (middle)
	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 24)
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(topHeight)
	sidebarPane := sidebarStyle.Render(sidebarContent)

	// Log pane (right, takes the remaining width)
	calculatedLogWidth := max(m.width-boardWidth-sidebarWidth-6, 1)
	m.logViewport.Width = calculatedLogWidth
	m.logViewport.Height = topHeight

	if !m.initialized && calculatedLogWidth > 1 && topHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(calculatedLogWidth).
		Height(topHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, boardPane, sidebarPane, logPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

// renderSidebarPane creates the sidebar content
func (m *Model) renderSidebarPane() string {
	state := m.match.State()
	var content strings.Builder

	content.WriteString(ScoreStyle.Render(fmt.Sprintf("%s %d : %d %s",
		m.names[yinsh.White], state.ScoreWhite, state.ScoreBlack, m.names[yinsh.Black])))
	content.WriteString("\n")
	content.WriteString(InfoStyle.Render(fmt.Sprintf("first to %d", yinsh.PointsForWin)))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("moves: %d\n", m.match.Moves()))
	content.WriteString(fmt.Sprintf("%s: %s\n", m.names[yinsh.White],
		m.match.ThinkingTime(yinsh.White).Round(time.Second)))
	content.WriteString(fmt.Sprintf("%s: %s\n", m.names[yinsh.Black],
		m.match.ThinkingTime(yinsh.Black).Round(time.Second)))
	content.WriteString("\n")

	content.WriteString(m.whiteStyle.Render("W"))
	content.WriteString(" ring   ")
	content.WriteString(m.whiteStyle.Render("w"))
	content.WriteString(" marker\n")
	content.WriteString(m.blackStyle.Render("B"))
	content.WriteString(" ring   ")
	content.WriteString(m.blackStyle.Render("b"))
	content.WriteString(" marker\n")

	if slide, ok := state.Phase.(yinsh.SlideRing); ok && m.showHints {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render("destinations:"))
		content.WriteString("\n")
		content.WriteString(SuccessStyle.Render(destinationList(state.Board, slide.Origin)))
		content.WriteString("\n")
	}

	return content.String()
}

// renderActionPane renders the prompt and input line
func (m *Model) renderActionPane() string {
	state := m.match.State()
	var content strings.Builder

	if winner, over := m.match.Winner(); over {
		content.WriteString(HeaderStyle.Render(fmt.Sprintf(" %s wins ", m.names[winner])))
		content.WriteString("\n")
		m.moveInput.Placeholder = "match over, 'quit' to exit"
	} else {
		content.WriteString(TurnStyle.Render(fmt.Sprintf("%s (%s) to move",
			m.names[state.Active], state.Active)))
		content.WriteString(InfoStyle.Render("  " + phaseInstruction(state)))
		content.WriteString("\n")
		m.moveInput.Placeholder = "coordinate like f6, or 'help'"
	}

	content.WriteString(m.moveInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render(
			"Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render(
			"Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}

	return content.String()
}

// phaseInstruction tells the active player what kind of selection the
// current phase expects.
func phaseInstruction(state yinsh.GameState) string {
	switch ph := state.Phase.(type) {
	case yinsh.PlaceRing:
		return fmt.Sprintf("place a ring on a free point (%d of 10 placed)", state.Board.RingCount())
	case yinsh.PlaceMarker:
		return "pick one of your rings to drop a marker in"
	case yinsh.SlideRing:
		return fmt.Sprintf("slide the ring from %s to a landing point", FormatCoord(ph.Origin))
	case yinsh.RemoveRun:
		return "remove your run: pick a marker inside it"
	case yinsh.RemoveRing:
		return "score: pick one of your rings to lift"
	default:
		return ""
	}
}
