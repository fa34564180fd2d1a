package cli

import (
	"context"
	"strings"

	"github.com/DiegoRozo23/lexpro-abogados/internal/cli/formatter"
	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// notificationsLoadedMsg signals that notifications have been loaded.
type notificationsLoadedMsg struct {
	notifications []*domain.Notification
	err           error
}

// notificationFollowMsg carries the link target after a mark-read.
type notificationFollowMsg struct {
	linkTo string
}

// notificationsView lists the inbox for the current role. Enter marks the
// selected notification read and follows its link, when it has one.
type notificationsView struct {
	state         *SharedState
	notifications []*domain.Notification
	cursor        int
	loading       bool
	err           error
	unreadOnly    bool
}

func newNotificationsView(state *SharedState) *notificationsView {
	return &notificationsView{state: state, loading: true}
}

func (v *notificationsView) ID() ViewID    { return ViewNotifications }
func (v *notificationsView) Title() string { return "Notificaciones" }

func (v *notificationsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "marcar leida")),
		key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "marcar todas")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "solo no leidas")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refrescar")),
	}
}

func (v *notificationsView) Init() tea.Cmd {
	return v.loadNotifications()
}

func (v *notificationsView) loadNotifications() tea.Cmd {
	app := v.state.App
	role := v.state.Role()
	return func() tea.Msg {
		notifications, err := app.Notifications.ListForRole(context.Background(), role)
		if err == nil {
			domain.SortNotificationsNewestFirst(notifications)
		}
		return notificationsLoadedMsg{notifications: notifications, err: err}
	}
}

// visible applies the unread-only filter.
func (v *notificationsView) visible() []*domain.Notification {
	if !v.unreadOnly {
		return v.notifications
	}
	var out []*domain.Notification
	for _, n := range v.notifications {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

func (v *notificationsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.notifications = msg.notifications
		if v.cursor >= len(v.notifications) {
			v.cursor = 0
		}
		return v, nil

	case notificationFollowMsg:
		if msg.linkTo == "" {
			return v, refreshCmd()
		}
		return v, navigateRootCmd(nav.ViewName(msg.linkTo))

	case refreshViewMsg:
		v.loading = true
		return v, v.loadNotifications()

	case tea.KeyMsg:
		visible := v.visible()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(visible)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(visible) {
				return v, v.openNotification(visible[v.cursor])
			}
		case "m":
			if v.cursor < len(visible) {
				return v, v.markRead(visible[v.cursor].ID)
			}
		case "M":
			return v, v.markAllRead()
		case "u":
			v.unreadOnly = !v.unreadOnly
			v.cursor = 0
		case "r":
			v.loading = true
			return v, v.loadNotifications()
		}
	}
	return v, nil
}

// openNotification marks the entry read, then follows its link target.
// The root-view mapping in appModel ignores link names it does not know.
func (v *notificationsView) openNotification(n *domain.Notification) tea.Cmd {
	app := v.state.App
	id, linkTo := n.ID, n.LinkTo
	return func() tea.Msg {
		if err := app.Notifications.MarkRead(context.Background(), id); err != nil {
			return notificationsLoadedMsg{err: err}
		}
		return notificationFollowMsg{linkTo: linkTo}
	}
}

func (v *notificationsView) markRead(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if err := app.Notifications.MarkRead(context.Background(), id); err != nil {
			return notificationsLoadedMsg{err: err}
		}
		return refreshViewMsg{}
	}
}

func (v *notificationsView) markAllRead() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if err := app.Notifications.MarkAllRead(context.Background()); err != nil {
			return notificationsLoadedMsg{err: err}
		}
		return refreshViewMsg{}
	}
}

func (v *notificationsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Cargando avisos...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")
	if v.unreadOnly {
		b.WriteString("  " + formatter.Dim("mostrando solo no leidas") + "\n\n")
	}
	visible := v.visible()
	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("Sin notificaciones.") + "\n")
		return b.String()
	}

	for i, n := range visible {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		title := n.Title
		if n.Read {
			title = formatter.Dim(title)
		} else {
			title = formatter.Bold(title)
		}
		b.WriteString(cursor + formatter.NotificationGlyph(n.Type) + " " + title + "  " + formatter.Dim(n.Date.Format(domain.DateLayout)) + "\n")
		b.WriteString("    " + formatter.Dim(n.Message) + "\n")
	}
	return b.String()
}
