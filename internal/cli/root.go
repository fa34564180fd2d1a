package cli

import (
	"fmt"

	"github.com/DiegoRozo23/lexpro-abogados/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by the TUI.
type App struct {
	Clients       service.ClientService
	Projects      service.ProjectService
	Tasks         service.TaskService
	TimeEntries   service.TimeEntryService
	Notifications service.NotificationService
	Users         service.UserService
	Stats         service.StatsService

	// IsInteractive reports whether stdin is attached to a terminal.
	// Set by main; nil means assume interactive (tests).
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "lexpro" command. Running it without a
// subcommand starts the interactive interface.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "lexpro",
		Short:        "Administracion del despacho Lopez Garcia Cano",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("lexpro requires an interactive terminal")
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
	root.AddCommand(newVersionCmd())
	return root
}

// Version is set at build time via -ldflags.
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la version de lexpro",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "lexpro "+Version)
		},
	}
}
