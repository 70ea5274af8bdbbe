package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/frame"
	"github.com/san-kum/artgen/internal/module"
)

const (
	sidebarWidth = 30
	chromeHeight = 5
	historyLen   = 120
)

// TickMsg advances the animation by one frame.
type TickMsg time.Time

type Options struct {
	World art.Vec2
	Theme string
	FPS   int
}

// Model is the bubbletea model driving a frame.Driver onto a Braille canvas.
type Model struct {
	driver  *frame.Driver
	keys    module.KeyState
	surface *Surface
	theme   Theme
	st      styles
	fps     int

	width, height int
	frameMs       []float64
	last          time.Time
	showHelp      bool
	quitting      bool
}

func NewModel(d *frame.Driver, opts Options) *Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.World.X <= 0 || opts.World.Y <= 0 {
		opts.World = art.V(1280, 720)
	}
	d.Overlay = false
	th := GetTheme(opts.Theme)
	m := &Model{
		driver: d,
		theme:  th,
		st:     newStyles(th),
		fps:    opts.FPS,
		width:  100,
		height: 30,
	}
	m.surface = NewSurface(opts.World, NewCanvas(m.canvasSize()))
	return m
}

func (m *Model) canvasSize() (int, int) {
	return max(m.width-sidebarWidth-2, 10), max(m.height-chromeHeight, 4)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	m.driver.Start()
	return m.tick()
}

// keyFor maps a bubbletea key name to module keys; held reports modifiers
// that must be down while the key is pressed.
func keyFor(name string) (key module.Key, held []module.Key, ok bool) {
	switch name {
	case "shift+tab":
		return module.KeyTab, []module.Key{module.KeyShift}, true
	case " ":
		return module.KeySpace, nil, true
	}
	k, ok := module.ParseKey(name)
	if !ok || k == module.KeyShift || k == module.KeyT || k == module.KeyF12 {
		return 0, nil, false
	}
	return k, nil, true
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch name := msg.String(); name {
		case "ctrl+c", "esc":
			m.quitting = true
			m.driver.Stop()
			return m, tea.Quit
		case "t":
			m.theme = NextTheme(m.theme)
			m.st = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		default:
			if k, held, ok := keyFor(name); ok {
				for _, h := range held {
					m.keys.Hold(h)
				}
				m.keys.Press(k)
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.Attach(NewCanvas(m.canvasSize()))

	case TickMsg:
		now := time.Time(msg)
		dt := 1 / float64(m.fps)
		if !m.last.IsZero() {
			dt = min(now.Sub(m.last).Seconds(), 0.25)
		}
		m.last = now
		m.step(dt)
		return m, m.tick()
	}
	return m, nil
}

// step runs one driver frame and flushes it into the canvas. Terminals report
// no key releases, so every key is released at the end of the frame.
func (m *Model) step(dt float64) {
	start := time.Now()
	m.driver.Frame(dt, &m.keys, m.surface)
	m.surface.Flush()
	m.keys.EndFrame(true)

	m.frameMs = append(m.frameMs, float64(time.Since(start).Microseconds())/1000)
	if len(m.frameMs) > historyLen {
		m.frameMs = m.frameMs[len(m.frameMs)-historyLen:]
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	r := m.driver.Registry
	name := r.NameAt(r.Index())
	if r.Count() == 0 {
		name = "None"
	}
	header := m.st.header.Render(GradientText("artgen", m.theme.Primary, m.theme.Secondary) + "  " + name)

	canvas := m.st.canvas.Render(strings.TrimRight(m.surface.Canvas().String(), "\n"))
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", m.sidebar())

	footer := m.st.hint.Render("tab/shift+tab switch · t theme · ? help · esc quit")
	if m.showHelp {
		footer = m.st.hint.Render(helpText)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

const helpText = `arrows speed · r reset · p pause · wasd pan · q/e zoom · h detail · j julia
1-4 gallery kind · c color scheme · space cycle · t theme · esc quit`

func (m *Model) sidebar() string {
	var b strings.Builder
	r := m.driver.Registry
	b.WriteString(m.st.label.Render("Modules") + "\n")
	for i, n := range r.Names() {
		line := fmt.Sprintf("%d. %s", i+1, n)
		if i == r.Index() {
			b.WriteString(m.st.selected.Render("> "+line) + "\n")
		} else {
			b.WriteString(m.st.item.Render("  "+line) + "\n")
		}
	}

	if cur, ok := r.Current(); ok {
		if c, ok := cur.(module.Configurable); ok {
			b.WriteString(separator(sidebarWidth-4, m.st.label) + "\n")
			params := c.Params()
			names := make([]string, 0, len(params))
			for n := range params {
				names = append(names, n)
			}
			sort.Strings(names)
			for _, n := range names {
				b.WriteString(m.st.label.Render(fmt.Sprintf("%-12s", n)) + m.st.value.Render(fmt.Sprintf("%8.3f", params[n])) + "\n")
			}
		}
	}

	b.WriteString(separator(sidebarWidth-4, m.st.label) + "\n")
	b.WriteString(m.st.label.Render("frame ms ") + m.st.value.Render(fmt.Sprintf("%.2f", m.lastFrameMs())) + "\n")
	b.WriteString(m.st.value.Render(Sparkline(m.frameMs, sidebarWidth-4)))
	return m.st.panel.Width(sidebarWidth - 2).Render(b.String())
}

func (m *Model) lastFrameMs() float64 {
	if len(m.frameMs) == 0 {
		return 0
	}
	return m.frameMs[len(m.frameMs)-1]
}

// Run opens the terminal viewer on the alternate screen until the user quits.
func Run(d *frame.Driver, opts Options) error {
	_, err := tea.NewProgram(NewModel(d, opts), tea.WithAltScreen()).Run()
	return err
}
