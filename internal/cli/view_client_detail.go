package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli/formatter"
	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clientDetailLoadedMsg signals that a client and their matters loaded.
type clientDetailLoadedMsg struct {
	client   *domain.Client
	projects []*domain.Project
	err      error
}

// clientDetailView shows one client's contact card and their matters.
type clientDetailView struct {
	state    *SharedState
	clientID string
	client   *domain.Client
	projects []*domain.Project
	cursor   int
	loading  bool
	err      error
}

func newClientDetailView(state *SharedState, clientID string) *clientDetailView {
	return &clientDetailView{state: state, clientID: clientID, loading: true}
}

func (v *clientDetailView) ID() ViewID { return ViewClientDetail }
func (v *clientDetailView) Title() string {
	if v.client != nil {
		return v.client.Name
	}
	return "Cliente"
}

func (v *clientDetailView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir proyecto")),
	}
	if v.state.IsAdmin() {
		bindings = append(bindings, key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")))
	}
	return bindings
}

func (v *clientDetailView) Init() tea.Cmd {
	return v.loadDetail()
}

func (v *clientDetailView) loadDetail() tea.Cmd {
	app := v.state.App
	clientID := v.clientID
	return func() tea.Msg {
		ctx := context.Background()
		client, err := app.Clients.GetByID(ctx, clientID)
		if err != nil {
			return clientDetailLoadedMsg{err: err}
		}
		projects, err := app.Projects.ListByClient(ctx, clientID)
		if err != nil {
			return clientDetailLoadedMsg{err: err}
		}
		return clientDetailLoadedMsg{client: client, projects: projects}
	}
}

func (v *clientDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clientDetailLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.client = msg.client
		v.projects = msg.projects
		if v.cursor >= len(v.projects) {
			v.cursor = 0
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadDetail()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.projects)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.projects) {
				p := v.projects[v.cursor]
				return v, pushViewCmd(
					newProjectDetailView(v.state, p.ID),
					nav.Frame{Name: nav.ViewProjectDetail, Params: map[string]string{"id": p.ID}, Title: p.Name},
				)
			}
		case "e":
			if v.state.IsAdmin() && v.client != nil {
				return v, clientFormCmd(v.state, v.client)
			}
		case "r":
			v.loading = true
			return v, v.loadDetail()
		}
	}
	return v, nil
}

func (v *clientDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando cliente...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	c := v.client

	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold(c.Name) + "\n")
	if c.ContactName != "" {
		b.WriteString("  " + formatter.Dim("Contacto: ") + c.ContactName + "\n")
	}
	if c.Email != "" {
		b.WriteString("  " + formatter.Dim("Email: ") + c.Email + "\n")
	}
	if c.Phone != "" {
		b.WriteString("  " + formatter.Dim("Telefono: ") + c.Phone + "\n")
	}
	if c.Address != "" {
		b.WriteString("  " + formatter.Dim("Direccion: ") + c.Address + "\n")
	}

	b.WriteString("\n  " + formatter.Header("Asuntos") + "\n")
	if len(v.projects) == 0 {
		b.WriteString("  " + formatter.Dim("Sin asuntos para este cliente.") + "\n")
		return b.String()
	}

	now := time.Now()
	for i, p := range v.projects {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s  %s %s\n",
			cursor,
			formatter.ProjectStatusPill(p.Status),
			formatter.PriorityBadge(p.Priority),
			p.Name,
			formatter.CategoryTag(p.Category),
			formatter.DueBadge(now, p.DueDate),
		))
	}
	return b.String()
}
