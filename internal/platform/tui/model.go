package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Options configures a game screen. All fields are optional.
type Options struct {
	Store     *storage.Store // nil disables score saving
	Logger    *log.Logger
	Variant   string // Score table key, e.g. "4x4-2048"
	ReplayDir string // Where ctrl+s writes replays
	Width     int
	Height    int
}

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	rec        *t2048.Recorder
	store      *storage.Store
	logger     *log.Logger
	variant    string
	replayDir  string
	keys       KeyMap
	help       help.Model
	width      int
	height     int
	storedBest int  // All-time best for the variant from the store
	moves      int  // Effective moves in the current game
	scoreSaved bool  // Whether the current game has been saved
	savedID    int64 // Row of the current game in the store, 0 if none
	status     string
	statusID   int
	quitting   bool
}

// NewModel creates a game screen driving the recorder's session.
func NewModel(rec *t2048.Recorder, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		rec:       rec,
		store:     opts.Store,
		logger:    logger,
		variant:   opts.Variant,
		replayDir: opts.ReplayDir,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		width:     opts.Width,
		height:    opts.Height,
	}
	if m.variant == "" {
		m.variant = rec.Session().Config().Variant()
	}

	if m.store != nil {
		best, err := m.store.HighScore(m.variant)
		if err != nil {
			m.logger.Warn("cannot load high score", "variant", m.variant, "error", err)
		}
		m.storedBest = best
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveScore()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.saveScore()
		m.rec.Restart()
		m.moves = 0
		m.scoreSaved = false
		m.savedID = 0
		return m.setStatus("New game")

	case key.Matches(msg, m.keys.Undo):
		wasOver := m.rec.Session().Over()
		if !m.rec.Undo() {
			return m.setStatus("Nothing to undo")
		}
		if m.moves > 0 {
			m.moves--
		}
		// The game continues, so its saved result is overwritten later.
		if wasOver && !m.rec.Session().Over() {
			m.scoreSaved = false
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		path, err := m.saveReplay()
		if err != nil {
			m.logger.Error("cannot save replay", "error", err)
			return m.setStatus("Replay not saved: " + err.Error())
		}
		m.logger.Info("replay saved", "path", path)
		return m.setStatus("Replay saved to " + path)
	}

	if dir, ok := m.keys.Direction(msg); ok {
		res := m.rec.Move(dir)
		if res.Moved {
			m.moves++
		}
		if m.rec.Session().Over() {
			m.saveScore()
		}
	}

	return m, nil
}

// setStatus shows a transient status line.
func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = text
	return m, clearStatusCmd(m.statusID)
}

// saveScore records the current game once. Empty games are not recorded.
// A game resumed by undo after it was saved updates its existing row.
func (m *Model) saveScore() {
	s := m.rec.Session()
	if m.scoreSaved || s.Score() == 0 {
		return
	}
	m.scoreSaved = true

	if s.Score() > m.storedBest {
		m.storedBest = s.Score()
	}
	if m.store == nil {
		return
	}

	entry := storage.ScoreEntry{
		Variant: m.variant,
		Score:   s.Score(),
		MaxTile: t2048.MaxTile(s.Grid()),
		Moves:   m.moves,
		Won:     s.Won(),
	}
	if m.savedID != 0 {
		if err := m.store.UpdateScore(m.savedID, entry); err != nil {
			m.logger.Warn("cannot update score", "variant", m.variant, "id", m.savedID, "error", err)
			return
		}
		if best, err := m.store.HighScore(m.variant); err == nil {
			m.storedBest = best
		}
		m.logger.Info("score updated", "variant", m.variant, "score", entry.Score, "moves", entry.Moves)
		return
	}

	id, err := m.store.SaveScore(entry)
	if err != nil {
		m.logger.Warn("cannot save score", "variant", m.variant, "error", err)
		return
	}
	m.savedID = id
	m.logger.Info("score saved", "variant", m.variant, "score", entry.Score, "moves", entry.Moves)
}

// saveReplay writes the recorded game as YAML and returns the file path.
func (m Model) saveReplay() (string, error) {
	dir := m.replayDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".t2048", "replays")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create replay directory: %w", err)
	}

	data, err := yaml.Marshal(m.rec.Replay())
	if err != nil {
		return "", fmt.Errorf("cannot encode replay: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.yaml", m.variant, timestamp))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("cannot write replay: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.rec.Session()
	width := max(m.width, BoardWidth(s.Size()))

	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("2 0 4 8")+labelStyle.Render("  "+m.variant), width))
	b.WriteString("\n\n")

	record := max(m.storedBest, s.Best())
	stats := strings.Join([]string{
		renderStat("SCORE", s.Score()),
		renderStat("BEST", s.Best()),
		renderStat("RECORD", record),
		renderStat("TARGET", s.WinValue()),
	}, "   ")
	b.WriteString(centerText(stats, width))
	b.WriteString("\n\n")

	b.WriteString(centerText(RenderBoard(s.Grid()), width))
	b.WriteString("\n")

	switch s.Snapshot().State() {
	case t2048.StateGameOver:
		b.WriteString("\n")
		b.WriteString(centerText(overStyle.Render("Game over"), width))
		b.WriteString("\n")
		b.WriteString(centerText(labelStyle.Render("r: new game  u: undo  q: quit"), width))
		b.WriteString("\n")
	case t2048.StateWin:
		b.WriteString("\n")
		b.WriteString(centerText(winStyle.Render("You win!"), width))
		b.WriteString("\n")
		b.WriteString(centerText(labelStyle.Render("keep going for a higher score"), width))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(statusStyle.Render(m.status), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), width))

	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

// Quitting returns true once the user has quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Moves returns the number of effective moves in the current game.
func (m Model) Moves() int {
	return m.moves
}

// Run starts the Bubble Tea program for the recorder's session.
func Run(rec *t2048.Recorder, opts Options) error {
	model := NewModel(rec, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
