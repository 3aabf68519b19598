package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/diffuse1d/internal/diffusion"
	"github.com/san-kum/diffuse1d/internal/grid"
)

const (
	graphWidth      = 72
	graphHeight     = 12
	historyCapacity = 600
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives the live terminal view of a diffusing field.
type Model struct {
	eq      diffusion.Equation
	stepper *diffusion.EulerStepper
	field   grid.Field
	initial grid.Field
	t, dt   float64
	steps   int
	running bool
	err     error

	massHistory []float64
}

func NewModel(eq diffusion.Equation, f0 grid.Field, dt float64) Model {
	return Model{
		eq:          eq,
		stepper:     diffusion.NewEuler(eq),
		field:       f0.Clone(),
		initial:     f0.Clone(),
		dt:          dt,
		running:     true,
		massHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "up", "k":
			m.adjustDiffusivity(1.1)
		case "down", "j":
			m.adjustDiffusivity(0.9)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) reset() {
	m.field = m.initial.Clone()
	m.t = 0
	m.steps = 0
	m.err = nil
	m.running = true
	m.massHistory = m.massHistory[:0]
}

func (m *Model) adjustDiffusivity(factor float64) {
	m.eq.Diffusivity *= factor
	m.stepper = diffusion.NewEuler(m.eq)
}

func (m *Model) step() {
	next, err := m.stepper.Step(m.field, m.dt)
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.field = next
	m.t += m.dt
	m.steps++

	m.massHistory = append(m.massHistory, m.field.Sum())
	if len(m.massHistory) > historyCapacity {
		m.massHistory = m.massHistory[1:]
	}
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("diffuse1d - explicit 1D diffusion"))
	sb.WriteString("\n")

	graph := asciigraph.Plot(m.field,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("c(x)"),
	)
	sb.WriteString(graphStyle.Render(graph))
	sb.WriteString("\n")

	sb.WriteString(m.statsView())

	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(warnStyle.Render("error: " + m.err.Error()))
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("space pause/resume | r reset | up/down diffusivity | q quit"))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) statsView() string {
	rows := []struct {
		label string
		value string
	}{
		{"time", fmt.Sprintf("%.2f", m.t)},
		{"steps", fmt.Sprintf("%d", m.steps)},
		{"dt", fmt.Sprintf("%.4f", m.dt)},
		{"diffusivity", fmt.Sprintf("%.4f", m.eq.Diffusivity)},
		{"boundaries", fmt.Sprintf("%s / %s", m.eq.Lower, m.eq.Upper)},
		{"mass", fmt.Sprintf("%.4f", m.field.Sum())},
		{"peak", fmt.Sprintf("%.4f", m.field.Peak())},
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(labelStyle.Render(row.label))
		sb.WriteString(valueStyle.Render(row.value))
		sb.WriteString("\n")
	}

	ratio := diffusion.DiffusionNumber(m.eq.Diffusivity, m.dt, m.eq.Dx)
	sb.WriteString(labelStyle.Render("D*dt/h^2"))
	if diffusion.IsStable(m.eq.Diffusivity, m.dt, m.eq.Dx) {
		sb.WriteString(valueStyle.Render(fmt.Sprintf("%.3f (stable)", ratio)))
	} else {
		sb.WriteString(warnStyle.Render(fmt.Sprintf("%.3f (UNSTABLE)", ratio)))
	}
	sb.WriteString("\n")

	status := "running"
	if !m.running {
		status = "paused"
	}
	sb.WriteString(labelStyle.Render("status"))
	sb.WriteString(valueStyle.Render(status))
	sb.WriteString("\n")

	return sb.String()
}

// Run starts the live view and blocks until the user quits.
func Run(eq diffusion.Equation, f0 grid.Field, dt float64) error {
	p := tea.NewProgram(NewModel(eq, f0, dt))
	_, err := p.Run()
	return err
}
