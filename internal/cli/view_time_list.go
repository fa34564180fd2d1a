package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli/formatter"
	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// timeListLoadedMsg signals that time entry data has been loaded.
type timeListLoadedMsg struct {
	entries []*domain.TimeEntry
	err     error
}

// timeListView lists logged hours with billable and total sums. Admins see
// the whole firm's entries; lawyers see their own.
type timeListView struct {
	state   *SharedState
	entries []*domain.TimeEntry
	cursor  int
	loading bool
	err     error
}

func newTimeListView(state *SharedState) *timeListView {
	return &timeListView{state: state, loading: true}
}

func (v *timeListView) ID() ViewID    { return ViewTimeList }
func (v *timeListView) Title() string { return "Tiempos" }

func (v *timeListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "registrar")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "eliminar")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refrescar")),
	}
}

func (v *timeListView) Init() tea.Cmd {
	return v.loadEntries()
}

func (v *timeListView) loadEntries() tea.Cmd {
	app := v.state.App
	user := v.state.CurrentUser
	admin := v.state.IsAdmin()
	return func() tea.Msg {
		ctx := context.Background()
		var (
			entries []*domain.TimeEntry
			err     error
		)
		if admin || user == nil {
			entries, err = app.TimeEntries.List(ctx)
		} else {
			entries, err = app.TimeEntries.ListByUser(ctx, user.ID)
		}
		return timeListLoadedMsg{entries: entries, err: err}
	}
}

func (v *timeListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timeListLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.entries = msg.entries
		if v.cursor >= len(v.entries) {
			v.cursor = 0
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadEntries()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.entries)-1 {
				v.cursor++
			}
		case "a":
			return v, timeEntryFormCmd(v.state, "")
		case "e":
			if v.cursor < len(v.entries) {
				return v, timeEntryEditFormCmd(v.state, v.entries[v.cursor])
			}
		case "x":
			if v.cursor < len(v.entries) {
				te := v.entries[v.cursor]
				return v, confirmDeleteCmd(v.state,
					fmt.Sprintf("Eliminar el registro de %s del %s?", formatter.FormatHours(te.Hours), te.Date.Format(domain.DateLayout)),
					func(ctx context.Context) error { return v.state.App.TimeEntries.Delete(ctx, te.ID) },
				)
			}
		case "r":
			v.loading = true
			return v, v.loadEntries()
		}
	}
	return v, nil
}

// writeLawyerSummary renders firm-wide hours grouped per lawyer, in the
// order each lawyer first appears in the loaded entries.
func (v *timeListView) writeLawyerSummary(b *strings.Builder) {
	totals := make(map[string]float64)
	var order []string
	for _, te := range v.entries {
		if _, seen := totals[te.UserName]; !seen {
			order = append(order, te.UserName)
		}
		totals[te.UserName] += te.Hours
	}
	if len(order) == 0 {
		return
	}
	b.WriteString("  " + formatter.Bold("Por abogado") + "\n")
	for _, name := range order {
		b.WriteString(fmt.Sprintf("    %s %s\n", formatter.PadRight(name, 24), formatter.FormatHours(totals[name])))
	}
	b.WriteString("\n")
}

func (v *timeListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando tiempos...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")
	if len(v.entries) == 0 {
		b.WriteString("  " + formatter.Dim("Sin horas registradas.") + "\n")
		return b.String()
	}

	total := domain.SumHours(v.entries)
	billable := domain.SumBillableHours(v.entries)
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n\n",
		formatter.Bold(formatter.FormatHours(total)), formatter.Dim("totales"),
		formatter.StyleGreen.Render(formatter.FormatHours(billable)), formatter.Dim("facturables"),
	))

	if v.state.IsAdmin() {
		v.writeLawyerSummary(&b)
	}

	for i, te := range v.entries {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		bill := formatter.Dim("no fact.")
		if te.Billable {
			bill = formatter.StyleGreen.Render("fact.")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s  %s %s  %s\n",
			cursor,
			formatter.Dim(te.Date.Format(domain.DateLayout)),
			formatter.Bold(formatter.FormatHours(te.Hours)),
			bill,
			te.TaskTitle,
			formatter.Dim(te.ProjectName),
			formatter.Dim(te.UserName),
		))
	}
	return b.String()
}
