package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli/formatter"
	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clientListLoadedMsg signals that client data has been loaded.
type clientListLoadedMsg struct {
	clients []*domain.Client
	err     error
}

// clientListView lists the firm's clients with live matter counts.
type clientListView struct {
	state   *SharedState
	clients []*domain.Client
	cursor  int
	loading bool
	err     error
	search  searchBar
}

func newClientListView(state *SharedState) *clientListView {
	return &clientListView{state: state, loading: true, search: newSearchBar()}
}

func (v *clientListView) ID() ViewID    { return ViewClientList }
func (v *clientListView) Title() string { return "Clientes" }

func (v *clientListView) capturingInput() bool { return v.search.Active() }

func (v *clientListView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
	}
	if v.state.IsAdmin() {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "nuevo")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "eliminar")),
		)
	}
	return bindings
}

func (v *clientListView) Init() tea.Cmd {
	return v.loadClients()
}

func (v *clientListView) loadClients() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		clients, err := app.Clients.List(context.Background())
		return clientListLoadedMsg{clients: clients, err: err}
	}
}

func (v *clientListView) filtered() []*domain.Client {
	q := v.search.Query()
	if q == "" {
		return v.clients
	}
	var out []*domain.Client
	for _, c := range v.clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.ContactName), q) {
			out = append(out, c)
		}
	}
	return out
}

func (v *clientListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clientListLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.clients = msg.clients
		if v.cursor >= len(v.clients) {
			v.cursor = 0
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadClients()

	case tea.KeyMsg:
		if v.search.Active() {
			cmd := v.search.HandleKey(msg)
			v.cursor = 0
			return v, cmd
		}
		visible := v.filtered()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(visible)-1 {
				v.cursor++
			}
		case "/":
			v.cursor = 0
			return v, v.search.Open()
		case "enter":
			if v.cursor < len(visible) {
				c := visible[v.cursor]
				return v, pushViewCmd(
					newClientDetailView(v.state, c.ID),
					nav.Frame{Name: nav.ViewClientDetail, Params: map[string]string{"id": c.ID}, Title: c.Name},
				)
			}
		case "a":
			if v.state.IsAdmin() {
				return v, clientFormCmd(v.state, nil)
			}
		case "e":
			if v.state.IsAdmin() && v.cursor < len(visible) {
				return v, clientFormCmd(v.state, visible[v.cursor])
			}
		case "x":
			if v.state.IsAdmin() && v.cursor < len(visible) {
				c := visible[v.cursor]
				return v, confirmDeleteCmd(v.state,
					fmt.Sprintf("Eliminar el cliente %q?", c.Name),
					func(ctx context.Context) error { return v.state.App.Clients.Delete(ctx, c.ID) },
				)
			}
		case "r":
			v.loading = true
			return v, v.loadClients()
		}
	}
	return v, nil
}

func (v *clientListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando clientes...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")
	if sv := v.search.View(); sv != "" {
		b.WriteString("  " + sv + "\n\n")
	}

	visible := v.filtered()
	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("Sin clientes.") + "\n")
		return b.String()
	}

	for i, c := range visible {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			cursor,
			formatter.Bold(formatter.PadRight(c.Name, 36)),
			formatter.Dim(formatter.PadRight(c.ContactName, 24)),
			formatter.Dim(fmt.Sprintf("%d asuntos", c.ProjectCount)),
		))
	}
	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d clientes", len(visible))) + "\n")
	return b.String()
}
