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

// projectListLoadedMsg signals that project data has been loaded.
type projectListLoadedMsg struct {
	projects []*domain.Project
	err      error
}

// projectSort selects the ordering of the project list.
type projectSort int

const (
	sortDueAsc projectSort = iota
	sortDueDesc
	sortPriority
	sortProgress
)

func (s projectSort) String() string {
	switch s {
	case sortDueDesc:
		return "vencimiento ↓"
	case sortPriority:
		return "prioridad"
	case sortProgress:
		return "avance"
	default:
		return "vencimiento ↑"
	}
}

// projectStatusTabs is the status filter cycle; the empty leading entry
// means no filter.
var projectStatusTabs = append([]domain.ProjectStatus{""}, domain.AllProjectStatuses...)

var projectDivisionTabs = []domain.Division{"", domain.DivisionFiscal, domain.DivisionCorporativo}

var projectCategoryTabs = append([]domain.Category{""}, domain.AllCategories...)

// projectListView lists the firm's matters. Admins see everything; lawyers
// see only the matters they are assigned to. "/" filters by name, client or
// expediente, "f" cycles the status filter, "s" cycles the sort order.
type projectListView struct {
	state       *SharedState
	projects    []*domain.Project
	cursor      int
	loading     bool
	err         error
	search      searchBar
	statusTab   int
	divisionTab int
	categoryTab int
	sortBy      projectSort
}

func newProjectListView(state *SharedState) *projectListView {
	return &projectListView{state: state, loading: true, search: newSearchBar()}
}

func (v *projectListView) ID() ViewID    { return ViewProjectList }
func (v *projectListView) Title() string { return "Proyectos" }

func (v *projectListView) capturingInput() bool { return v.search.Active() }

func (v *projectListView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "estado")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "division")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "categoria")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "orden")),
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

func (v *projectListView) Init() tea.Cmd {
	return v.loadProjects()
}

func (v *projectListView) loadProjects() tea.Cmd {
	app := v.state.App
	user := v.state.CurrentUser
	admin := v.state.IsAdmin()
	return func() tea.Msg {
		ctx := context.Background()
		var (
			projects []*domain.Project
			err      error
		)
		if admin || user == nil {
			projects, err = app.Projects.List(ctx)
		} else {
			projects, err = app.Projects.ListForUser(ctx, user.ID)
		}
		return projectListLoadedMsg{projects: projects, err: err}
	}
}

// tabLabel renders an empty filter value as "Todos".
func tabLabel(s string) string {
	if s == "" {
		return "Todos"
	}
	return s
}

// filtered returns the projects matching the current status filter and
// search query, in the selected sort order.
func (v *projectListView) filtered() []*domain.Project {
	status := projectStatusTabs[v.statusTab]
	division := projectDivisionTabs[v.divisionTab]
	category := projectCategoryTabs[v.categoryTab]
	q := v.search.Query()
	var out []*domain.Project
	for _, p := range v.projects {
		if status != "" && p.Status != status {
			continue
		}
		if division != "" && p.Division() != division {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.ClientName), q) &&
			!strings.Contains(strings.ToLower(p.Expediente), q) {
			continue
		}
		out = append(out, p)
	}
	switch v.sortBy {
	case sortDueDesc:
		domain.SortProjectsByDueDate(out, true)
	case sortPriority:
		domain.SortProjectsByPriority(out)
	case sortProgress:
		domain.SortProjectsByProgress(out)
	default:
		domain.SortProjectsByDueDate(out, false)
	}
	return out
}

func (v *projectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectListLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.projects = msg.projects
		if v.cursor >= len(v.projects) {
			v.cursor = 0
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadProjects()

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
				p := visible[v.cursor]
				return v, pushViewCmd(
					newProjectDetailView(v.state, p.ID),
					nav.Frame{Name: nav.ViewProjectDetail, Params: map[string]string{"id": p.ID}, Title: p.Name},
				)
			}
		case "f":
			v.statusTab = (v.statusTab + 1) % len(projectStatusTabs)
			v.cursor = 0
		case "d":
			v.divisionTab = (v.divisionTab + 1) % len(projectDivisionTabs)
			v.cursor = 0
		case "g":
			v.categoryTab = (v.categoryTab + 1) % len(projectCategoryTabs)
			v.cursor = 0
		case "s":
			v.sortBy = (v.sortBy + 1) % 4
			v.cursor = 0
		case "a":
			if v.state.IsAdmin() {
				return v, projectFormCmd(v.state, nil)
			}
		case "e":
			if v.state.IsAdmin() && v.cursor < len(visible) {
				return v, projectFormCmd(v.state, visible[v.cursor])
			}
		case "x":
			if v.state.IsAdmin() && v.cursor < len(visible) {
				p := visible[v.cursor]
				return v, confirmDeleteCmd(v.state,
					fmt.Sprintf("Eliminar el proyecto %q?", p.Name),
					func(ctx context.Context) error { return v.state.App.Projects.Delete(ctx, p.ID) },
				)
			}
		case "r":
			v.loading = true
			return v, v.loadProjects()
		}
	}
	return v, nil
}

func (v *projectListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando proyectos...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	filters := []string{
		"estado: " + tabLabel(string(projectStatusTabs[v.statusTab])),
		"division: " + tabLabel(string(projectDivisionTabs[v.divisionTab])),
		"categoria: " + tabLabel(string(projectCategoryTabs[v.categoryTab])),
		"orden: " + v.sortBy.String(),
	}
	b.WriteString("\n  " + formatter.Dim(strings.Join(filters, " · ")) + "\n\n")
	if sv := v.search.View(); sv != "" {
		b.WriteString("  " + sv + "\n\n")
	}

	visible := v.filtered()
	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("Sin proyectos.") + "\n")
		return b.String()
	}

	now := time.Now()
	for i, p := range visible {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		line := fmt.Sprintf("%s%s %s %s  %s %s %s",
			cursor,
			formatter.ProjectStatusPill(p.Status),
			formatter.PriorityBadge(p.Priority),
			formatter.Bold(p.Name),
			formatter.Dim(p.ClientName),
			formatter.RenderProgress(float64(p.Progress)/100, 8),
			formatter.DueBadge(now, p.DueDate),
		)
		b.WriteString(line + "\n")
	}
	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d proyectos", len(visible))) + "\n")
	return b.String()
}
