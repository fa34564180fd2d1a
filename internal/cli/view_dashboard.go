package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli/formatter"
	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/nav"
	"github.com/DiegoRozo23/lexpro-abogados/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	stats  *service.DashboardStats
	unread int
	err    error
}

// dashboardView is the admin home screen: firm-wide metrics, practice area
// distribution, upcoming deadlines and the per-lawyer workload table.
type dashboardView struct {
	state   *SharedState
	stats   *service.DashboardStats
	unread  int
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "proyectos")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tareas")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clientes")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "tiempos")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "avisos")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refrescar")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	role := v.state.Role()
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := app.Stats.Dashboard(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		unread, err := app.Notifications.UnreadCount(ctx, role)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{stats: stats, unread: unread}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.stats = msg.stats
		v.unread = msg.unread
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			return v, navigateRootCmd(nav.ViewProyectos)
		case "t":
			return v, navigateRootCmd(nav.ViewTareas)
		case "c":
			return v, navigateRootCmd(nav.ViewClientes)
		case "h":
			return v, navigateRootCmd(nav.ViewTiempos)
		case "n":
			return v, navigateRootCmd(nav.ViewNotificaciones)
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando resumen...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	s := v.stats

	var b strings.Builder
	b.WriteString("\n")

	// Metric cards row.
	cards := []string{
		fmt.Sprintf("%s %s", formatter.Bold(fmt.Sprintf("%d", s.ActiveProjects)), formatter.Dim(fmt.Sprintf("proyectos activos de %d", s.TotalProjects))),
		fmt.Sprintf("%s %s", formatter.Bold(fmt.Sprintf("%d", s.PendingTasks)), formatter.Dim("tareas abiertas")),
		fmt.Sprintf("%s %s", formatter.Bold(fmt.Sprintf("%d", s.TotalClients)), formatter.Dim("clientes")),
	}
	b.WriteString("  " + strings.Join(cards, formatter.Dim("  │  ")) + "\n")

	alerts := ""
	if s.OverdueTasks > 0 {
		alerts += formatter.StyleRed.Render(fmt.Sprintf("%d vencidas", s.OverdueTasks)) + "  "
	}
	if s.CriticalTasks > 0 {
		alerts += formatter.StyleYellow.Render(fmt.Sprintf("%d criticas", s.CriticalTasks)) + "  "
	}
	if v.unread > 0 {
		alerts += formatter.Dim(fmt.Sprintf("%d avisos sin leer", v.unread))
	}
	if alerts != "" {
		b.WriteString("  " + alerts + "\n")
	}
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("Semana: %s registradas, %s facturables",
		formatter.FormatHours(s.WeekHours), formatter.FormatHours(s.WeekBillableHours))) + "\n\n")

	// Practice area distribution.
	b.WriteString("  " + formatter.Header("Por division") + "\n")
	for _, d := range []domain.Division{domain.DivisionFiscal, domain.DivisionCorporativo} {
		b.WriteString(fmt.Sprintf("  %s %s\n", formatter.DivisionBadge(d), formatter.Dim(fmt.Sprintf("%d proyectos", s.ByDivision[d]))))
	}
	b.WriteString("\n  " + formatter.Header("Por categoria") + "\n")
	for _, c := range domain.AllCategories {
		if s.ByCategory[c] == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-32s %s\n", formatter.CategoryTag(c), formatter.Dim(fmt.Sprintf("%d", s.ByCategory[c]))))
	}

	now := time.Now()

	// Active matters closest to their deadline.
	if len(s.ActiveByDue) > 0 {
		b.WriteString("\n  " + formatter.Header("Asuntos activos por vencimiento") + "\n")
		active := s.ActiveByDue
		if len(active) > 5 {
			active = active[:5]
		}
		for _, p := range active {
			b.WriteString(fmt.Sprintf("  %s %s %s  %s\n",
				formatter.DueBadge(now, p.DueDate),
				formatter.PriorityBadge(p.Priority),
				p.Name,
				formatter.Dim(p.ClientName),
			))
		}
	}

	// Upcoming deadlines.
	b.WriteString("\n  " + formatter.Header("Proximos vencimientos") + "\n")
	upcoming := s.UpcomingTasks
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}
	if len(upcoming) == 0 {
		b.WriteString("  " + formatter.Dim("Sin tareas abiertas.") + "\n")
	}
	for _, t := range upcoming {
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			formatter.DueBadge(now, t.DueDate),
			formatter.PriorityBadge(t.Priority),
			t.Title,
			formatter.Dim(t.ProjectName),
		))
	}

	// Per-lawyer workload.
	if len(s.Workloads) > 0 {
		b.WriteString("\n  " + formatter.Header("Carga por abogado") + "\n")
		rows := make([][]string, 0, len(s.Workloads))
		for _, w := range s.Workloads {
			rows = append(rows, []string{
				w.User.Name,
				fmt.Sprintf("%d tareas", w.PendingTasks),
				formatter.FormatHours(w.WeekHours),
			})
		}
		b.WriteString(formatter.RenderTable([]string{"Abogado", "Abiertas", "Horas semana"}, rows))
	}

	return b.String()
}
