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

// loginDoneMsg carries the result of resolving the demo account for a role.
type loginDoneMsg struct {
	user *domain.User
	err  error
}

// Focus positions on the login screen: two demo credential fields, then one
// row per role.
const (
	loginFocusEmail = iota
	loginFocusPassword
	loginFocusAdmin
	loginFocusAbogado
)

// loginView is the entry screen. Email and password are demo inputs and are
// not verified; the role row actually chosen decides the session. Admins land
// on the dashboard, lawyers on their personal panel.
type loginView struct {
	state    *SharedState
	focus    int
	email    string
	password string
	err      error
}

func newLoginView(state *SharedState) *loginView {
	return &loginView{state: state}
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "Acceso" }

func (v *loginView) capturingInput() bool { return v.focus <= loginFocusPassword }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "mover")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "entrar")),
	}
}

func (v *loginView) Init() tea.Cmd { return nil }

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.state.CurrentUser = msg.user
		home := nav.ViewDashboard
		if msg.user.Role == domain.RoleAbogado {
			home = nav.ViewMiPanel
		}
		return v, navigateRootCmd(home)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *loginView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if v.focus > loginFocusEmail {
			v.focus--
		}
		return v, nil
	case tea.KeyDown:
		if v.focus < loginFocusAbogado {
			v.focus++
		}
		return v, nil
	case tea.KeyEnter:
		switch v.focus {
		case loginFocusEmail, loginFocusPassword:
			v.focus++
			return v, nil
		case loginFocusAdmin:
			return v, v.login(domain.RoleAdmin)
		case loginFocusAbogado:
			return v, v.login(domain.RoleAbogado)
		}
	case tea.KeyBackspace:
		switch v.focus {
		case loginFocusEmail:
			if len(v.email) > 0 {
				v.email = v.email[:len(v.email)-1]
			}
		case loginFocusPassword:
			if len(v.password) > 0 {
				v.password = v.password[:len(v.password)-1]
			}
		}
		return v, nil
	case tea.KeyRunes:
		switch v.focus {
		case loginFocusEmail:
			v.email += string(msg.Runes)
		case loginFocusPassword:
			v.password += string(msg.Runes)
		}
		return v, nil
	}

	if v.focus >= loginFocusAdmin {
		switch msg.String() {
		case "k":
			if v.focus > loginFocusEmail {
				v.focus--
			}
		case "j":
			if v.focus < loginFocusAbogado {
				v.focus++
			}
		}
	}
	return v, nil
}

func (v *loginView) login(role domain.UserRole) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		user, err := app.Users.Login(context.Background(), role)
		return loginDoneMsg{user: user, err: err}
	}
}

func (v *loginView) renderField(label, value string, focused, mask bool) string {
	shown := value
	if mask {
		shown = strings.Repeat("•", len(value))
	}
	cursor := "  "
	if focused {
		cursor = formatter.StyleGreen.Render("▸ ")
		shown += formatter.StyleHeader.Render("▌")
	}
	return fmt.Sprintf("  %s%s %s", cursor, formatter.Dim(label), shown)
}

func (v *loginView) View() string {
	var b strings.Builder
	banner := formatter.Bold("Lopez Garcia Cano Abogados") + "\n" +
		formatter.Dim("Sistema de administracion del despacho")
	b.WriteString("\n" + formatter.RenderBox("", banner) + "\n\n")

	b.WriteString(v.renderField("Email:     ", v.email, v.focus == loginFocusEmail, false) + "\n")
	b.WriteString(v.renderField("Contraseña:", v.password, v.focus == loginFocusPassword, true) + "\n")
	b.WriteString("  " + formatter.Dim("(credenciales de demostracion, no se verifican)") + "\n\n")

	b.WriteString("  Entrar como:\n")
	roles := []struct {
		focus int
		label string
		hint  string
	}{
		{loginFocusAdmin, "Administrador", "acceso completo al despacho"},
		{loginFocusAbogado, "Abogado", "mis asuntos y tareas"},
	}
	for _, r := range roles {
		cursor := "  "
		if v.focus == r.focus {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("  %s%s  %s\n", cursor, formatter.Bold(r.label), formatter.Dim(r.hint)))
	}

	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	}
	return b.String()
}
