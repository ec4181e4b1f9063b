package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gridlife/internal/life"
)

var (
	frameStyle = lipgloss.NewStyle().Padding(1, 2)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Player steps through a precomputed sequence. Without looping it stops on
// the last generation.
type Player struct {
	seq     []*life.Grid
	pops    []int
	frame   time.Duration
	current int
	running bool
	loop    bool
	theme   Theme
}

func NewPlayer(seq []*life.Grid, frame time.Duration, loop bool, theme Theme) Player {
	return Player{
		seq:     seq,
		pops:    life.Populations(seq),
		frame:   frame,
		running: true,
		loop:    loop,
		theme:   theme,
	}
}

func (m Player) Current() int  { return m.current }
func (m Player) Running() bool { return m.running }
func (m Player) Theme() Theme  { return m.theme }

func (m Player) Init() tea.Cmd {
	return tick(m.frame)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.current = 0
		case "l":
			m.loop = !m.loop
		case "left":
			m.running = false
			m.seek(-1)
		case "right":
			m.running = false
			m.seek(1)
		case "t":
			m.theme = next(m.theme)
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, tick(m.frame)
	}
	return m, nil
}

func (m *Player) advance() {
	if m.current < len(m.seq)-1 {
		m.current++
		return
	}
	if m.loop {
		m.current = 0
		return
	}
	m.running = false
}

func (m *Player) seek(dir int) {
	m.current = max(0, min(len(m.seq)-1, m.current+dir))
}

func (m Player) View() string {
	if len(m.seq) == 0 {
		return "no generations\n"
	}

	var sb strings.Builder
	status := StatusPaused.Render("PAUSED")
	if m.running {
		status = StatusRunning.Render("PLAYING")
	}
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("gridlife  %s", status)))
	sb.WriteString("\n")
	sb.WriteString(frameStyle.Render(RenderGrid(m.seq[m.current], m.theme)))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s %s   %s %s   %s %s\n",
		MetricLabel.Render("generation"), MetricValue.Render(fmt.Sprintf("%d/%d", m.current+1, len(m.seq))),
		MetricLabel.Render("population"), MetricValue.Render(fmt.Sprint(m.pops[m.current])),
		MetricLabel.Render("theme"), MetricValue.Render(m.theme.Name))

	progress := 1.0
	if len(m.seq) > 1 {
		progress = float64(m.current) / float64(len(m.seq)-1)
	}
	sb.WriteString(ProgressBar(progress, 40))
	sb.WriteString("  ")
	sb.WriteString(Sparkline(m.pops, 40))
	sb.WriteString("\n")

	loop := "off"
	if m.loop {
		loop = "on"
	}
	sb.WriteString(helpStyle.Render(KeyHint.Render(
		fmt.Sprintf("space pause · ←/→ step · r rewind · l loop (%s) · t theme · q quit", loop))))
	return sb.String()
}
