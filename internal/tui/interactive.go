package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/material"
	"github.com/san-kum/heatsim/internal/sim"
	"github.com/san-kum/heatsim/internal/solver"
	"github.com/san-kum/heatsim/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const (
	maxSpeedBar   = 50
	maxSpeedPlate = 20
	speedStep     = 5

	// display resolutions; headless runs use the full-resolution defaults
	displayBarPoints   = 201
	displayPlatePoints = 61
)

type mode struct {
	label string
	desc  string
	kind  sim.Kind
	grid  bool
}

var modes = []mode{
	{"bar", "1d rod, thomas solve", sim.Bar1D, false},
	{"plate", "2d plate, gauss-seidel", sim.Plate2D, false},
	{"grid", "all four materials side by side", sim.Plate2D, true},
}

type state int

const (
	stateMenu state = iota
	stateMaterial
	stateConfig
	stateSim
)

type model struct {
	state  state
	cursor int

	mode     mode
	material material.Material
	matIdx   int

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	session  *sim.Session
	sessions []*sim.Session
	cm       *viz.Colormap
	history  []float64
	paused   bool
	speed    int

	width  int
	height int
}

func NewApp(cfg *config.Config) *model {
	m := &model{
		state:    stateMenu,
		mode:     modes[0],
		material: material.Iron,
		params: map[string]float64{
			"length": cfg.Length,
			"tmax":   cfg.Tmax,
			"u0":     cfg.InitialTemp,
			"f":      cfg.SourceAmplitude,
			"points": 0,
		},
		paramNames: []string{"length", "tmax", "u0", "f", "points"},
		speed:      cfg.Speed,
		cm:         viz.NewColormap(273, 374),
		width:      80,
		height:     24,
	}
	if cfg.GridPoints > 0 {
		m.params["points"] = float64(cfg.GridPoints)
	}
	return m
}

// NewLiveApp skips the menu and starts stepping immediately.
func NewLiveApp(cfg *config.Config, kind sim.Kind) (*model, error) {
	m := NewApp(cfg)
	for _, md := range modes {
		if md.kind == kind && md.grid == cfg.GridMode {
			m.mode = md
		}
	}
	mat, err := material.ByName(cfg.Material)
	if err != nil {
		return nil, err
	}
	m.material = mat
	if err := m.start(); err != nil {
		return nil, err
	}
	m.state = stateSim
	return m, nil
}

func (m model) Init() tea.Cmd {
	if m.state == stateSim {
		return tick()
	}
	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateSim {
			return m, nil
		}
		m.advance()
		return m, tick()
	}
	return m, nil
}

func (m *model) advance() {
	if m.paused {
		return
	}
	if m.mode.grid {
		allDone := true
		for _, s := range m.sessions {
			for i := 0; i < m.speed; i++ {
				if !s.Step() {
					break
				}
			}
			if !s.Done() {
				allDone = false
			}
		}
		if allDone {
			m.paused = true
		}
		return
	}
	for i := 0; i < m.speed; i++ {
		if !m.session.Step() {
			m.paused = true
			break
		}
	}
	sum := m.session.Summary()
	m.history = append(m.history, sum.Max)
	if len(m.history) > 120 {
		m.history = m.history[1:]
	}
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateMaterial:
		return m.materialKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		return m.simKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(modes)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.mode = modes[m.cursor]
		if m.mode.grid {
			m.state = stateConfig
			m.paramCursor = 0
		} else {
			m.state = stateMaterial
			m.matIdx = 0
		}
	}
	return m, nil
}

func (m model) materialKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.matIdx > 0 {
			m.matIdx--
		}
	case "down", "j":
		if m.matIdx < len(material.All)-1 {
			m.matIdx++
		}
	case "enter", " ":
		m.material = material.All[m.matIdx]
		m.state = stateConfig
		m.paramCursor = 0
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		if m.mode.grid {
			m.state = stateMenu
		} else {
			m.state = stateMaterial
		}
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%g", m.params[m.paramNames[m.paramCursor]])
	case "s":
		if err := m.start(); err == nil {
			m.state = stateSim
			return m, tea.Batch(tea.ClearScreen, tick())
		}
	}
	return m, nil
}

func (m model) simKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.session = nil
		m.sessions = nil
		m.history = nil
		m.state = stateMenu
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "r":
		if m.mode.grid {
			for _, s := range m.sessions {
				s.Reset()
			}
		} else if m.session != nil {
			m.session.Reset()
		}
		m.history = nil
		m.paused = false
	case "up":
		m.speed = clampSpeed(m.speed+speedStep, m.mode.kind)
	case "down":
		m.speed = clampSpeed(m.speed-speedStep, m.mode.kind)
	}
	return m, nil
}

func clampSpeed(speed int, kind sim.Kind) int {
	max := maxSpeedBar
	if kind == sim.Plate2D {
		max = maxSpeedPlate
	}
	if speed < 1 {
		return 1
	}
	if speed > max {
		return max
	}
	return speed
}

func (m *model) solverParams(mat material.Material) solver.Params {
	n := int(m.params["points"])
	if n < 2 {
		if m.mode.kind == sim.Plate2D {
			n = displayPlatePoints
		} else {
			n = displayBarPoints
		}
	}
	return solver.Params{
		Material:        mat,
		Length:          m.params["length"],
		Tmax:            m.params["tmax"],
		InitialTemp:     m.params["u0"],
		SourceAmplitude: m.params["f"],
		GridPoints:      n,
	}
}

func (m *model) start() error {
	m.history = nil
	m.paused = false
	m.speed = clampSpeed(m.speed, m.mode.kind)

	if m.mode.grid {
		m.sessions = make([]*sim.Session, 0, len(material.All))
		for _, mat := range material.All {
			s, err := sim.NewSession(m.mode.kind, m.solverParams(mat))
			if err != nil {
				return err
			}
			m.sessions = append(m.sessions, s)
		}
		m.session = nil
		return nil
	}

	s, err := sim.NewSession(m.mode.kind, m.solverParams(m.material))
	if err != nil {
		return err
	}
	m.session = s
	m.sessions = nil
	return nil
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateMaterial:
		return m.viewMaterial()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		if m.mode.grid {
			return m.viewGrid()
		}
		return m.viewSim()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("h e a t s i m") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, md := range modes {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-8s", md.label)) + dim.Render(md.desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-8s", md.label)) + dimmer.Render(md.desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter next   q quit") + "\n")
	return b.String()
}

func (m model) viewMaterial() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.mode.label) + "  " + dim.Render("choose material") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 36)) + "\n\n")

	for i, mat := range material.All {
		info := fmt.Sprintf("λ=%-6.4g α=%.3g m²/s", mat.Conductivity, mat.Alpha())
		if i == m.matIdx {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-13s", mat.Name)) + dim.Render(info) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-13s", mat.Name)) + dimmer.Render(info) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter next   esc back") + "\n")
	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder

	label := m.mode.label
	if !m.mode.grid {
		label += " / " + m.material.Name
	}
	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(label) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%8.3f", m.params[name])
		if name == "points" {
			val = fmt.Sprintf("%8d", int(m.params[name]))
			if m.params[name] == 0 {
				val = fmt.Sprintf("%8s", "auto")
			}
		}
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  enter edit  s start  esc back") + "\n")
	return b.String()
}

func (m model) viewSim() string {
	if m.session == nil {
		return ""
	}
	sum := m.session.Summary()
	m.cm.AutoRange(m.session.Field())

	hw := m.width - 8
	if hw < 40 {
		hw = 40
	}

	var b strings.Builder
	b.WriteString("\n   " + m.statusLine(sum) + "\n\n")

	if m.mode.kind == sim.Plate2D {
		ph := m.height - 16
		if ph < 8 {
			ph = 8
		}
		b.WriteString(indent(viz.RenderPlate(m.session.Grid(), hw, ph, m.cm), 3))
	} else {
		b.WriteString("   " + viz.RenderBar(m.session.Field(), hw, m.cm))
	}
	b.WriteString("\n\n")
	b.WriteString(indent(viz.Colorbar(m.cm, hw), 3) + "\n")

	b.WriteString("\n" + m.statsPanel(sum))

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(hw-10),
			asciigraph.Caption("max temperature (K)"))
		b.WriteString("\n" + indent(graph, 3) + "\n")
	}

	b.WriteString("\n" + dim.Render("   space pause  ↑↓ speed  r reset  esc menu") + "\n")
	return b.String()
}

func (m model) viewGrid() string {
	if len(m.sessions) != 4 {
		return ""
	}

	cellW := (m.width - 12) / 2
	if cellW < 20 {
		cellW = 20
	}
	cellH := (m.height - 12) / 2
	if cellH < 5 {
		cellH = 5
	}

	panels := make([]string, 4)
	for i, s := range m.sessions {
		m.cm.AutoRange(s.Field())
		sum := s.Summary()
		title := fmt.Sprintf("%s  %.1fs  max %.1fK", sum.Material, sum.Time, sum.Max)
		panels[i] = cyan.Render(title) + "\n" + viz.RenderPlate(s.Grid(), cellW, cellH, m.cm)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, panels[0], "  ", panels[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, panels[2], "  ", panels[3])

	status := green.Render("● running")
	if m.paused {
		status = yellow.Render("○ paused")
	}

	var b strings.Builder
	b.WriteString("\n   " + status + dim.Render(fmt.Sprintf("  speed %d", m.speed)) + "\n\n")
	b.WriteString(indent(lipgloss.JoinVertical(lipgloss.Left, top, "", bottom), 3))
	b.WriteString("\n\n" + dim.Render("   space pause  ↑↓ speed  r reset  esc menu") + "\n")
	return b.String()
}

func (m model) statusLine(sum sim.Summary) string {
	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	if m.session.Done() {
		statusIcon = cyan.Render("●")
		statusText = cyan.Render("finished")
	}

	progress := sum.Time / sum.Tmax
	if progress > 1 {
		progress = 1
	}
	barWidth := 30
	filled := int(progress * float64(barWidth))
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))

	return fmt.Sprintf("%s %s %s  %s %s", statusIcon, cyan.Render(sum.Material), statusText,
		bar, dim.Render(fmt.Sprintf("%.2fs/%.0fs", sum.Time, sum.Tmax)))
}

func (m model) statsPanel(sum sim.Summary) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString("   " + dim.Render(fmt.Sprintf("%-10s", label)) + white.Render(value) + "\n")
	}
	row("alpha", fmt.Sprintf("%.4g m²/s", sum.Alpha))
	row("length", fmt.Sprintf("%.3g m", sum.Length))
	row("boundary", fmt.Sprintf("%.2f K", sum.InitialTemp+solver.KelvinOffset))
	row("range", fmt.Sprintf("%.2f to %.2f K", sum.Min, sum.Max))
	row("speed", fmt.Sprintf("%d steps/frame", m.speed))
	if sum.Kind == sim.Plate2D {
		row("sweeps", fmt.Sprintf("%d", sum.Sweeps))
	}
	return b.String()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
