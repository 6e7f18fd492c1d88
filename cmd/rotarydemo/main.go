// rotarydemo drives the focus engine with the keyboard standing in for a
// rotary controller: arrow keys nudge between areas, [ and ] rotate within
// the focused area. The engine names each focus target and the demo
// re-renders to show where focus landed.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"rotary"
)

//go:embed layout.toml
var layoutTOML []byte

func main() {
	os.Exit(run())
}

func run() int {
	debug := flag.Bool("debug", false, "log engine activity to rotarydemo.log")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "rotarydemo: stdout is not a terminal")
		return 1
	}
	if *debug {
		f, err := tea.LogToFile("rotarydemo.log", "debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "rotarydemo: %v\n", err)
			return 1
		}
		defer f.Close()
	}

	eng, err := rotary.ParseLayout(layoutTOML)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rotarydemo: %v\n", err)
		return 1
	}

	m := model{eng: eng, keys: defaultKeyMap()}
	if _, err := tea.NewProgram(&m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "rotarydemo: %v\n", err)
		return 1
	}
	return 0
}

// keyMap maps the keyboard onto rotary controller inputs.
type keyMap struct {
	NudgeLeft  key.Binding
	NudgeRight key.Binding
	NudgeUp    key.Binding
	NudgeDown  key.Binding
	RotateFwd  key.Binding
	RotateBack key.Binding
	Park       key.Binding
	Toggle     key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NudgeLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "nudge left")),
		NudgeRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "nudge right")),
		NudgeUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "nudge up")),
		NudgeDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "nudge down")),
		RotateFwd:  key.NewBinding(key.WithKeys("]", "tab"), key.WithHelp("]", "rotate")),
		RotateBack: key.NewBinding(key.WithKeys("[", "shift+tab"), key.WithHelp("[", "rotate back")),
		Park:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "park focus")),
		Toggle:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "disable focused")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	eng    *rotary.Engine
	keys   keyMap
	status string
	width  int
}

func (m *model) Init() tea.Cmd {
	if _, err := m.eng.Dispatch(rotary.FocusRequest{AreaID: "menu", Mode: rotary.ModeDefault}); err != nil {
		m.status = err.Error()
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NudgeLeft):
			m.dispatch(rotary.NudgeEvent{Direction: rotary.Left})
		case key.Matches(msg, m.keys.NudgeRight):
			m.dispatch(rotary.NudgeEvent{Direction: rotary.Right})
		case key.Matches(msg, m.keys.NudgeUp):
			m.dispatch(rotary.NudgeEvent{Direction: rotary.Up})
		case key.Matches(msg, m.keys.NudgeDown):
			m.dispatch(rotary.NudgeEvent{Direction: rotary.Down})
		case key.Matches(msg, m.keys.RotateFwd):
			m.dispatch(rotary.RotateEvent{Steps: 1})
		case key.Matches(msg, m.keys.RotateBack):
			m.dispatch(rotary.RotateEvent{Steps: -1})
		case key.Matches(msg, m.keys.Park):
			if p := m.eng.Park(); p != nil {
				m.status = "focus parked"
			}
		case key.Matches(msg, m.keys.Toggle):
			m.toggleFocused()
		}
	}
	return m, nil
}

func (m *model) dispatch(ev rotary.Event) {
	el, err := m.eng.Dispatch(ev)
	if err != nil {
		m.status = err.Error()
		return
	}
	if a, aerr := m.eng.Registry().ContainingArea(el.ID); aerr == nil {
		m.status = fmt.Sprintf("focus: %s (%s)", el.ID, a.ID)
	} else {
		m.status = "focus: " + el.ID
	}
}

// toggleFocused disables the focused element, forcing the engine to restore
// focus elsewhere — the same path a host takes when a control disappears.
func (m *model) toggleFocused() {
	el := m.eng.Focused()
	if el == nil {
		return
	}
	el.Enabled = false
	restored, err := m.eng.RestoreFocus()
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("disabled %s, focus restored to %s", el.ID, restored.ID)
}

var (
	areaStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activeAreaStyle = areaStyle.
			BorderForeground(lipgloss.Color("205"))
	buttonStyle = lipgloss.NewStyle().Padding(0, 1)
	focusStyle  = buttonStyle.Reverse(true).Bold(true)
	dimStyle    = buttonStyle.Faint(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

func (m *model) View() string {
	top := m.renderArea("top-bar", true)
	menu := m.renderArea("menu", false)
	content := m.renderArea("content", false)
	bottom := m.renderArea("media-bar", true)

	status := statusStyle
	if m.width > 0 {
		status = status.Width(m.width)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		lipgloss.JoinHorizontal(lipgloss.Top, menu, content),
		bottom,
		status.Render(m.status),
		status.Render("←↑↓→ nudge · [ ] rotate · p park · x disable · q quit"),
	)
}

// renderArea draws one focus area as a bordered box of element labels,
// horizontal for bars and vertical for panels.
func (m *model) renderArea(id string, horizontal bool) string {
	a, err := m.eng.Registry().Area(id)
	if err != nil {
		return ""
	}

	focusedID := ""
	if f := m.eng.Focused(); f != nil {
		focusedID = f.ID
	}

	var labels []string
	collect(a.Members, func(el *rotary.Element) {
		switch {
		case el.ID == focusedID:
			labels = append(labels, focusStyle.Render(el.ID))
		case !el.Enabled:
			labels = append(labels, dimStyle.Render(el.ID))
		case el.Selected:
			labels = append(labels, buttonStyle.Underline(true).Render(el.ID))
		default:
			labels = append(labels, buttonStyle.Render(el.ID))
		}
	})

	var inner string
	if horizontal {
		inner = lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	} else {
		inner = lipgloss.JoinVertical(lipgloss.Left, labels...)
	}

	style := areaStyle
	if owner, err := m.eng.Registry().ContainingArea(focusedID); err == nil && owner.ID == id {
		style = activeAreaStyle
	}
	pad := a.HighlightPadding()
	if pad.Left > 0 || pad.Right > 0 {
		style = style.Padding(0, pad.Left+1)
	}
	return style.Render(inner)
}

// collect walks members and scrollable items, skipping the containers
// themselves since only their items are drawn.
func collect(els []*rotary.Element, fn func(*rotary.Element)) {
	for _, el := range els {
		if el.Kind == rotary.Scrollable {
			collect(el.Items, fn)
			continue
		}
		fn(el)
	}
}
