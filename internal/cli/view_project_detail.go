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

// projectDetailLoadedMsg signals that a project and its related data loaded.
type projectDetailLoadedMsg struct {
	project *domain.Project
	tasks   []*domain.Task
	team    []*domain.User
	hours   float64
	err     error
}

// projectDetailView shows one matter: court data, team, progress, and its
// task list with a cursor for drilling into task detail.
type projectDetailView struct {
	state     *SharedState
	projectID string
	project   *domain.Project
	tasks     []*domain.Task
	team      []*domain.User
	hours     float64
	cursor    int
	loading   bool
	err       error
}

func newProjectDetailView(state *SharedState, projectID string) *projectDetailView {
	return &projectDetailView{state: state, projectID: projectID, loading: true}
}

func (v *projectDetailView) ID() ViewID { return ViewProjectDetail }
func (v *projectDetailView) Title() string {
	if v.project != nil {
		return v.project.Name
	}
	return "Proyecto"
}

func (v *projectDetailView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir tarea")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "nueva tarea")),
	}
	if v.state.IsAdmin() {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "eliminar")),
		)
	}
	return bindings
}

func (v *projectDetailView) Init() tea.Cmd {
	return v.loadDetail()
}

func (v *projectDetailView) loadDetail() tea.Cmd {
	app := v.state.App
	projectID := v.projectID
	return func() tea.Msg {
		ctx := context.Background()
		project, err := app.Projects.GetByID(ctx, projectID)
		if err != nil {
			return projectDetailLoadedMsg{err: err}
		}
		tasks, err := app.Tasks.ListByProject(ctx, projectID)
		if err != nil {
			return projectDetailLoadedMsg{err: err}
		}
		domain.SortTasksByDueDate(tasks, false)

		var team []*domain.User
		for _, id := range project.AssignedTo {
			if u, err := app.Users.GetByID(ctx, id); err == nil {
				team = append(team, u)
			}
		}

		var hours float64
		for _, t := range tasks {
			entries, err := app.TimeEntries.ListByTask(ctx, t.ID)
			if err != nil {
				return projectDetailLoadedMsg{err: err}
			}
			hours += domain.SumHours(entries)
		}

		return projectDetailLoadedMsg{project: project, tasks: tasks, team: team, hours: hours}
	}
}

func (v *projectDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectDetailLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.project = msg.project
		v.tasks = msg.tasks
		v.team = msg.team
		v.hours = msg.hours
		if v.cursor >= len(v.tasks) {
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
			if v.cursor < len(v.tasks)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.tasks) {
				t := v.tasks[v.cursor]
				return v, pushViewCmd(
					newTaskDetailView(v.state, t.ID),
					nav.Frame{Name: nav.ViewTaskDetail, Params: map[string]string{"id": t.ID}, Title: t.Title},
				)
			}
		case "a":
			return v, taskFormCmd(v.state, nil, v.projectID)
		case "e":
			if v.state.IsAdmin() && v.project != nil {
				return v, projectFormCmd(v.state, v.project)
			}
		case "x":
			if v.state.IsAdmin() && v.project != nil {
				p := v.project
				return v, confirmDeleteCmd(v.state,
					fmt.Sprintf("Eliminar el proyecto %q?", p.Name),
					func(ctx context.Context) error { return v.state.App.Projects.Delete(ctx, p.ID) },
				)
			}
		case "r":
			v.loading = true
			return v, v.loadDetail()
		}
	}
	return v, nil
}

func (v *projectDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando proyecto...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	p := v.project

	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold(p.Name) + "  " + formatter.ProjectStatusPill(p.Status) + " " + formatter.PriorityBadge(p.Priority) + "\n")
	b.WriteString("  " + formatter.Dim("Cliente: ") + p.ClientName + "  " + formatter.DivisionBadge(p.Division()) + " " + formatter.CategoryTag(p.Category) + "\n")

	if p.Juzgado != "" || p.Expediente != "" {
		b.WriteString("  " + formatter.Dim("Juzgado: ") + p.Juzgado + "  " + formatter.Dim("Exp: ") + p.Expediente + "\n")
	}
	b.WriteString(fmt.Sprintf("  %s%s  %s%s\n",
		formatter.Dim("Inicio: "), p.StartDate.Format(domain.DateLayout),
		formatter.Dim("Limite: "), p.DueDate.Format(domain.DateLayout),
	))
	if p.Budget > 0 {
		b.WriteString("  " + formatter.Dim("Honorarios: ") + formatter.FormatMoney(p.Budget) + "\n")
	}

	if len(v.team) > 0 {
		names := make([]string, 0, len(v.team))
		for _, u := range v.team {
			names = append(names, u.Name)
		}
		b.WriteString("  " + formatter.Dim("Equipo: ") + strings.Join(names, ", ") + "\n")
	}

	b.WriteString(fmt.Sprintf("  %s %s  %s\n",
		formatter.Dim("Avance:"),
		formatter.RenderProgress(float64(p.Progress)/100, 16),
		formatter.Dim(formatter.FormatHours(v.hours)+" registradas"),
	))
	if p.Avance != "" {
		b.WriteString("  " + formatter.Dim(p.Avance) + "\n")
	}
	if p.Description != "" {
		b.WriteString("\n  " + p.Description + "\n")
	}

	b.WriteString("\n  " + formatter.Header("Tareas") + "\n")
	if len(v.tasks) == 0 {
		b.WriteString("  " + formatter.Dim("Sin tareas en este asunto.") + "\n")
		return b.String()
	}

	now := time.Now()
	for i, t := range v.tasks {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s  %s %s\n",
			cursor,
			formatter.TaskStatusPill(t.Status),
			formatter.PriorityBadge(t.Priority),
			t.Title,
			formatter.Dim(t.AssignedToName),
			formatter.DueBadge(now, t.DueDate),
		))
	}
	return b.String()
}
