package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bonsai/internal/base"
	"github.com/san-kum/bonsai/internal/bonsai"
	"github.com/san-kum/bonsai/internal/config"
	"github.com/san-kum/bonsai/internal/message"
	"github.com/san-kum/bonsai/internal/render"
)

// TickMsg paints the next cell of the tree it was scheduled for.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// regrowMsg starts the next tree in infinite mode.
type regrowMsg struct{}

// Model replays grown trees one cell per tick.
type Model struct {
	cfg      *config.Config
	seed     int64
	rng      bonsai.Rand
	canvas   *Canvas
	tree     *bonsai.Tree
	next     int
	finished bool
	trees    int
	width    int
	height   int
	gen      int
}

func NewModel(cfg *config.Config, seed int64) Model {
	return Model{
		cfg:  cfg,
		seed: seed,
		rng:  bonsai.NewRand(seed),
	}
}

// Init waits for the first window size before growing anything.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.grow()
			return m, m.tick()
		case " ":
			if !m.finished {
				m.finish()
				return m, m.afterFinish()
			}
		}
	case tea.WindowSizeMsg:
		// last row is the status line
		m.width, m.height = msg.Width, max(msg.Height-1, 1)
		m.grow()
		return m, m.tick()
	case TickMsg:
		if msg.Gen != m.gen || m.tree == nil || m.finished {
			return m, nil
		}
		if m.next < len(m.tree.Events) {
			render.Paint(m.canvas, m.tree.Events[m.next])
			m.next++
		}
		if m.Done() {
			m.finish()
			return m, m.afterFinish()
		}
		return m, m.tick()
	case regrowMsg:
		m.grow()
		return m, m.tick()
	}
	return m, nil
}

// grow clears the canvas and grows a fresh tree for the current size. The
// generation counter invalidates ticks scheduled for the previous tree.
func (m *Model) grow() {
	m.canvas = NewCanvas(m.width, m.height)
	base.Draw(m.canvas, m.cfg.Base, m.width, m.height)

	growth := m.cfg.Growth(m.width, m.height)
	if growth.Validate() != nil {
		m.tree = &bonsai.Tree{}
	} else {
		m.tree = bonsai.Grow(growth, m.rng)
	}
	m.next = 0
	m.finished = false
	m.trees++
	m.gen++
}

// finish paints whatever is left of the tree and the message box.
func (m *Model) finish() {
	if m.tree == nil || m.finished {
		return
	}
	m.finished = true
	for ; m.next < len(m.tree.Events); m.next++ {
		render.Paint(m.canvas, m.tree.Events[m.next])
	}
	message.Draw(m.canvas, m.cfg.Message, m.width, m.height)
}

func (m Model) afterFinish() tea.Cmd {
	if !m.cfg.Infinite {
		return nil
	}
	return tea.Tick(m.cfg.WaitDuration(), func(time.Time) tea.Msg { return regrowMsg{} })
}

func (m Model) tick() tea.Cmd {
	if m.tree == nil {
		return nil
	}
	gen := m.gen
	interval := m.cfg.Interval()
	if interval <= 0 {
		interval = time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// Done reports whether every cell of the current tree has been painted.
func (m Model) Done() bool {
	return m.tree != nil && m.next >= len(m.tree.Events)
}

func (m Model) Canvas() *Canvas { return m.canvas }

func (m Model) Tree() *bonsai.Tree { return m.tree }

func (m Model) View() string {
	if m.canvas == nil {
		return "growing..."
	}
	var s strings.Builder
	s.WriteString(m.canvas.Render())
	s.WriteString("\n")
	s.WriteString(m.status())
	return s.String()
}

func (m Model) status() string {
	total := 0
	if m.tree != nil {
		total = len(m.tree.Events)
	}
	parts := []string{
		statusStyle.Render("seed ") + statusValue.Render(fmt.Sprint(m.seed)),
		statusStyle.Render("tree ") + statusValue.Render(fmt.Sprint(m.trees)),
		statusStyle.Render("cells ") + statusValue.Render(fmt.Sprintf("%d/%d", m.next, total)),
		keyHint.Render("space finish · r regrow · q quit"),
	}
	return strings.Join(parts, "  ")
}

// Run starts the replay in the alternate screen.
func Run(cfg *config.Config, seed int64) error {
	_, err := tea.NewProgram(NewModel(cfg, seed), tea.WithAltScreen()).Run()
	return err
}
