package cli

import (
	"strings"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli/formatter"
	"github.com/DiegoRozo23/lexpro-abogados/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI. It owns the route
// history (nav.Stack) and a parallel stack of live views, kept in lockstep:
// every push, pop and root jump mutates both.
type appModel struct {
	state    *SharedState
	stack    *nav.Stack
	views    []View
	quitting bool

	// opErr is the last failed wizard write, shown in the status bar and
	// cleared on the next key press.
	opErr error

	// bodyVP scrolls view content that exceeds the terminal height.
	bodyVP viewport.Model
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	vp := viewport.New(0, 0)
	vp.KeyMap = bodyViewportKeyMap()
	m := appModel{
		state:  state,
		stack:  nav.New(nav.Frame{Name: nav.ViewLogin}),
		bodyVP: vp,
	}
	m.views = []View{newLoginView(state)}
	return m
}

// bodyViewportKeyMap only binds page keys. Arrow keys stay free for the
// list cursors and letter keys for shortcuts.
func bodyViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}

// isBodyScrollKey reports whether the key scrolls the body viewport.
func isBodyScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.views) == 0 {
		return nil
	}
	return m.views[len(m.views)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.views) > 0 {
		m.views[len(m.views)-1] = v
	}
}

// rootView constructs the view for a root-level route. Unknown names return
// nil; the caller treats that as a no-op so stale notification links are
// harmless.
func (m *appModel) rootView(name nav.ViewName) View {
	switch name {
	case nav.ViewLogin:
		return newLoginView(m.state)
	case nav.ViewDashboard:
		return newDashboardView(m.state)
	case nav.ViewProyectos:
		return newProjectListView(m.state)
	case nav.ViewTareas:
		return newTaskListView(m.state, "")
	case nav.ViewClientes:
		return newClientListView(m.state)
	case nav.ViewMiPanel:
		return newMiPanelView(m.state)
	case nav.ViewTiempos:
		return newTimeListView(m.state)
	case nav.ViewNotificaciones:
		return newNotificationsView(m.state)
	}
	return nil
}

// rootTitle names a root route for the breadcrumb when its frame carries no
// title of its own.
func rootTitle(name nav.ViewName) string {
	switch name {
	case nav.ViewLogin:
		return "Acceso"
	case nav.ViewDashboard:
		return "Dashboard"
	case nav.ViewProyectos:
		return "Proyectos"
	case nav.ViewTareas:
		return "Tareas"
	case nav.ViewClientes:
		return "Clientes"
	case nav.ViewMiPanel:
		return "Mi Panel"
	case nav.ViewTiempos:
		return "Tiempos"
	case nav.ViewNotificaciones:
		return "Notificaciones"
	}
	return string(name)
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.bodyVP.Width = msg.Width
		m.bodyVP.Height = m.state.ContentHeight()
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.stack.Push(msg.frame)
		m.views = append(m.views, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		m.popView()
		return m, nil

	case popToMsg:
		before := m.stack.Len()
		m.stack.PopTo(msg.index)
		if m.stack.Len() < before {
			m.views = m.views[:m.stack.Len()]
		}
		return m, nil

	case navigateRootMsg:
		v := m.rootView(msg.name)
		if v == nil {
			return m, nil
		}
		m.stack.NavigateRoot(msg.name)
		m.views = []View{v}
		return m, v.Init()

	case logoutMsg:
		m.state.CurrentUser = nil
		v := newLoginView(m.state)
		m.stack.NavigateRoot(nav.ViewLogin)
		m.views = []View{v}
		return m, v.Init()

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so underlying views reload
		// data after mutations made in views above them.
		var cmds []tea.Cmd
		for i, v := range m.views {
			updated, cmd := v.Update(msg)
			m.views[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case opErrMsg:
		m.opErr = msg.err
		return m, nil

	case wizardCompleteMsg:
		// Atomically pop the form view and execute the follow-up command.
		m.popView()
		return m, tea.Batch(msg.nextCmd, refreshCmd())
	}

	// Forward other messages to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// popView removes the current frame and view unless only the root remains.
func (m *appModel) popView() {
	if m.stack.Len() > 1 {
		m.stack.Back()
		m.views = m.views[:len(m.views)-1]
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.opErr = nil

	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Views with their own text input receive all keys, bypassing global
	// bindings so typed characters like 'q' reach the input.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	if isBodyScrollKey(msg) {
		if v := m.activeView(); v != nil {
			m.bodyVP.SetContent(v.View())
		}
		var cmd tea.Cmd
		m.bodyVP, cmd = m.bodyVP.Update(msg)
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyCtrlL:
		if m.state.LoggedIn() {
			return m.Update(logoutMsg{})
		}
		return m, nil

	case msg.Type == tea.KeyEsc:
		m.popView()
		return m, nil
	}

	// Digit keys jump to a breadcrumb segment: 1 is the root, 2 the next
	// frame, and so on. A digit at or past the current depth is a no-op.
	if m.state.LoggedIn() {
		if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			return m.Update(popToMsg{index: int(k[0] - '1')})
		}
		if cmd := m.sectionKey(msg.String()); cmd != nil {
			return m, cmd
		}
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// sectionKey maps the capital-letter shortcuts that mirror the sidebar of a
// web admin: a root jump to each section, from anywhere.
func (m *appModel) sectionKey(k string) tea.Cmd {
	var name nav.ViewName
	switch k {
	case "D":
		if m.state.IsAdmin() {
			name = nav.ViewDashboard
		} else {
			name = nav.ViewMiPanel
		}
	case "P":
		name = nav.ViewProyectos
	case "T":
		name = nav.ViewTareas
	case "C":
		name = nav.ViewClientes
	case "H":
		name = nav.ViewTiempos
	case "N":
		name = nav.ViewNotificaciones
	default:
		return nil
	}
	return navigateRootCmd(name)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		body := v.View()
		// Clip through the viewport only when the content overflows, so
		// short screens keep their natural layout.
		if h := m.state.ContentHeight(); m.state.Height > 0 && strings.Count(body, "\n")+1 > h {
			vp := m.bodyVP
			vp.Width = m.state.Width
			vp.Height = h
			vp.SetContent(body)
			body = vp.View()
		}
		sections = append(sections, body)
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("lexpro")

	var crumbs []string
	for _, f := range m.stack.Frames() {
		t := f.Title
		if t == "" {
			t = rootTitle(f.Name)
		}
		crumbs = append(crumbs, t)
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb
	if u := m.state.CurrentUser; u != nil {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(u.Name) + " " + formatter.RoleLabel(u.Role) + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", maxInt(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if m.stack.Len() > 1 {
		hints = append(hints, formatter.Dim("esc: atras"))
	}
	if m.state.LoggedIn() {
		hints = append(hints, formatter.Dim("ctrl+l: salir"))
	}

	bar := strings.Join(hints, "  ")
	if m.opErr != nil {
		bar = formatter.StyleRed.Render("Error: "+m.opErr.Error()) + "  " + bar
	}
	sep := formatter.Dim(strings.Repeat("─", maxInt(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if v.ID() == ViewForm {
		return true
	}
	if c, ok := v.(interface{ capturingInput() bool }); ok {
		return c.capturingInput()
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
